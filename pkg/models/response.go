package models

import "time"

// ChatResponse is the envelope for a completed assistant turn
type ChatResponse struct {
	SessionID string      `json:"session_id"`
	Message   ChatMessage `json:"message"`
	RequestID string      `json:"request_id"`
}

// TranscriptResponse carries the full transcript of a search session
type TranscriptResponse struct {
	SessionID string        `json:"session_id"`
	Messages  []ChatMessage `json:"messages"`
}

// CoverLetterResponse carries a drafted cover letter
type CoverLetterResponse struct {
	JobID     string `json:"job_id"`
	Letter    string `json:"letter"`
	RequestID string `json:"request_id"`
}

// JobListResponse is the envelope for job browse/search results
type JobListResponse struct {
	Jobs  []Job `json:"jobs"`
	Total int   `json:"total"`
}

// TalentListResponse is the envelope for talent browse/search results
type TalentListResponse struct {
	Talents []Talent `json:"talents"`
	Total   int      `json:"total"`
}

// CompanyListResponse is the envelope for company browse/search results
type CompanyListResponse struct {
	Companies []Company `json:"companies"`
	Total     int       `json:"total"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Uptime    time.Duration     `json:"uptime"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
}
