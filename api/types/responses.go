package types

import (
	"time"

	"github.com/summarize-anything/summarize-api/internal/models"
)

// Response status values
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// ErrorResponse is the standard error body
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// SubmitResponse acknowledges an accepted submission
type SubmitResponse struct {
	Status string `json:"status"`
	JobID  string `json:"job_id"`
}

// StatusResponse reports a job's progress
type StatusResponse struct {
	JobID     string    `json:"job_id"`
	Status    string    `json:"status"`
	Progress  float64   `json:"progress"`
	Error     string    `json:"error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ResultResponse carries a completed job's full output
type ResultResponse struct {
	JobID  string         `json:"job_id"`
	Result *models.Result `json:"result"`
}

// TranslateResponse carries a standalone translation
type TranslateResponse struct {
	Status      string                   `json:"status"`
	Translation models.TranslationResult `json:"translation"`
}

// JobSummary is one entry in a job listing
type JobSummary struct {
	JobID     string    `json:"job_id"`
	Status    string    `json:"status"`
	Progress  float64   `json:"progress"`
	CreatedAt time.Time `json:"created_at"`
}

// JobListResponse is the job listing body
type JobListResponse struct {
	Status string       `json:"status"`
	Count  int          `json:"count"`
	Jobs   []JobSummary `json:"jobs"`
}
