package jobs

import (
	"context"
	"errors"

	"github.com/summarize-anything/summarize-api/internal/models"
)

// Store errors
var (
	ErrJobNotFound      = errors.New("job not found")
	ErrJobAlreadyExists = errors.New("job already exists")
)

// Update is a partial job update. Nil fields are left unchanged.
type Update struct {
	Status   *models.JobStatus
	Progress *float64
	Result   *models.Result
	Error    *string
}

// Store defines the persistence interface for jobs. Each running job has a
// single writer (the pipeline goroutine executing it); the store must be safe
// for concurrent reads while a write is in flight - readers observe either the
// pre- or post-update state, never a partially applied one.
type Store interface {
	// Create registers a new job with status initializing and zero progress
	Create(ctx context.Context, id string, options models.JobOptions) (*models.Job, error)

	// Update applies a partial update and returns the new state
	Update(ctx context.Context, id string, update Update) (*models.Job, error)

	// Get returns a snapshot of a job
	Get(ctx context.Context, id string) (*models.Job, error)

	// List returns jobs ordered by recency
	List(ctx context.Context, limit, offset int) ([]*models.Job, error)
}

// Helper constructors for partial updates

// StatusUpdate builds an update that only changes the status
func StatusUpdate(status models.JobStatus) Update {
	return Update{Status: &status}
}

// ProgressUpdate builds an update that only changes the progress
func ProgressUpdate(progress float64) Update {
	return Update{Progress: &progress}
}

// FailureUpdate builds the terminal update for a failed job. Progress is
// deliberately untouched so it freezes at the last checkpoint.
func FailureUpdate(errMsg string) Update {
	status := models.JobStatusFailed
	return Update{Status: &status, Error: &errMsg}
}

// CompletionUpdate builds the terminal update for a successful job
func CompletionUpdate(result *models.Result) Update {
	status := models.JobStatusCompleted
	progress := models.ProgressCompleted
	return Update{Status: &status, Progress: &progress, Result: result}
}
