package models

// ChatRequest represents one conversational turn sent to the assistant
type ChatRequest struct {
	SessionID string `json:"session_id,omitempty" validate:"omitempty,uuid"`
	Message   string `json:"message" validate:"required"`
}

// CoverLetterRequest represents a request to draft a cover letter for a job
type CoverLetterRequest struct {
	JobID  string `json:"job_id" validate:"required"`
	Skills string `json:"skills,omitempty"`
}
