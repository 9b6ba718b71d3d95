package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/ysqsimon/Remotely/pkg/models"
)

const coverLetterErrorText = "Error generating cover letter. Please try again."

// defaultSkills is used when the caller does not supply a skills string.
const defaultSkills = "React, TypeScript, Node.js"

// DraftCoverLetter produces a cover letter for the given job via a single
// plain completion. It never fails: without a credential it returns a
// templated placeholder letter, and upstream errors resolve to a retry
// message. The job is looked up by the caller and must be non-nil.
func (a *Assistant) DraftCoverLetter(ctx context.Context, job *models.Job, skills string) string {
	skills = strings.TrimSpace(skills)
	if skills == "" {
		skills = defaultSkills
	}

	if !a.client.Enabled() {
		return offlineCoverLetter(job.Company, job.Title)
	}

	prompt := fmt.Sprintf(
		"Write a professional, concise cover letter for: Role: %s, Company: %s. My skills: %s. Description: %s. Keep it under 200 words.",
		job.Title, job.Company, skills, job.Description,
	)

	text, err := a.client.Complete(ctx, prompt)
	if err != nil {
		a.logger.Error("Cover letter generation failed", map[string]interface{}{
			"job_id": job.ID,
			"error":  err.Error(),
		})
		return coverLetterErrorText
	}

	return text
}

func offlineCoverLetter(company, title string) string {
	return fmt.Sprintf(`[Simulated AI Mode - No API Key]

Dear Hiring Manager at %[1]s,

I am writing to express my enthusiastic interest in the %[2]s position at %[1]s. With a strong background in building and shipping production software for distributed teams, I am confident I can contribute from day one.

I would welcome the chance to discuss how my experience aligns with the needs of your team.

Best regards,
Your Applicant`, company, title)
}
