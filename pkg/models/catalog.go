package models

// JobType is the employment type of a job posting.
type JobType string

const (
	JobTypeFullTime JobType = "Full-time"
	JobTypeContract JobType = "Contract"
	JobTypePartTime JobType = "Part-time"
)

// JobExperienceLevel is the seniority bucket of a job posting.
type JobExperienceLevel string

const (
	JobLevelEntry  JobExperienceLevel = "Entry"
	JobLevelMid    JobExperienceLevel = "Mid"
	JobLevelSenior JobExperienceLevel = "Senior"
	JobLevelLead   JobExperienceLevel = "Lead"
)

// TalentExperienceLevel is the seniority bucket of a talent profile.
type TalentExperienceLevel string

const (
	TalentLevelJunior TalentExperienceLevel = "Junior"
	TalentLevelMid    TalentExperienceLevel = "Mid"
	TalentLevelSenior TalentExperienceLevel = "Senior"
	TalentLevelExpert TalentExperienceLevel = "Expert"
)

// Job represents a remote job posting in the catalog
type Job struct {
	ID              string             `json:"id"`
	Title           string             `json:"title"`
	Company         string             `json:"company"`
	CompanyLogo     string             `json:"company_logo"`
	Salary          string             `json:"salary"`
	SalaryMin       int                `json:"salary_min"`
	SalaryMax       int                `json:"salary_max"`
	Type            JobType            `json:"type"`
	Location        string             `json:"location"`
	Tags            []string           `json:"tags"`
	PostedAt        string             `json:"posted_at"`
	Description     string             `json:"description"`
	ExperienceLevel JobExperienceLevel `json:"experience_level"`
}

// Talent represents a freelancer profile in the catalog.
// HourlyRate is the display string; HourlyRateValue is the numeric
// source of truth for comparisons.
type Talent struct {
	ID              string                `json:"id"`
	Name            string                `json:"name"`
	Role            string                `json:"role"`
	Avatar          string                `json:"avatar"`
	HourlyRate      string                `json:"hourly_rate"`
	HourlyRateValue int                   `json:"hourly_rate_value"`
	Skills          []string              `json:"skills"`
	Availability    string                `json:"availability"`
	Bio             string                `json:"bio"`
	Rating          float64               `json:"rating"`
	ExperienceLevel TalentExperienceLevel `json:"experience_level"`
}

// Company represents a hiring company derived from the job catalog.
// OpenRoles always equals the number of jobs referencing the company name.
type Company struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Industry    string `json:"industry"`
	Size        string `json:"size"`
	Description string `json:"description"`
	Logo        string `json:"logo"`
	OpenRoles   int    `json:"open_roles"`
	Website     string `json:"website"`
}
