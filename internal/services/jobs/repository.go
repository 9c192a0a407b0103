package jobs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/summarize-anything/summarize-api/internal/models"
	"gorm.io/gorm"
)

// Repository is a gorm-backed job store
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new persistent job store
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create registers a new job
func (r *Repository) Create(ctx context.Context, id string, options models.JobOptions) (*models.Job, error) {
	job := &models.Job{
		ID:       id,
		Status:   models.JobStatusInitializing,
		Progress: 0,
		Options:  options,
	}

	if err := r.db.WithContext(ctx).Create(job).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrJobAlreadyExists
		}
		return nil, fmt.Errorf("creating job: %w", err)
	}

	return job, nil
}

// Update applies a partial update inside a single UPDATE statement
func (r *Repository) Update(ctx context.Context, id string, update Update) (*models.Job, error) {
	updates := map[string]interface{}{
		"updated_at": time.Now().UTC(),
	}
	if update.Status != nil {
		updates["status"] = *update.Status
	}
	if update.Progress != nil {
		updates["progress"] = *update.Progress
	}
	if update.Result != nil {
		updates["result"] = update.Result
	}
	if update.Error != nil {
		updates["error"] = *update.Error
	}

	result := r.db.WithContext(ctx).
		Model(&models.Job{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return nil, fmt.Errorf("updating job: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrJobNotFound
	}

	return r.Get(ctx, id)
}

// Get returns a job by ID
func (r *Repository) Get(ctx context.Context, id string) (*models.Job, error) {
	var job models.Job
	err := r.db.WithContext(ctx).First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("getting job: %w", err)
	}
	return &job, nil
}

// List returns jobs ordered newest first
func (r *Repository) List(ctx context.Context, limit, offset int) ([]*models.Job, error) {
	var jobList []*models.Job
	query := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset)
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&jobList).Error; err != nil {
		return nil, fmt.Errorf("listing jobs: %w", err)
	}
	return jobList, nil
}
