package jobs

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/summarize-anything/summarize-api/internal/models"
)

// MemoryStore is an in-memory job store. It backs tests and deployments
// without a configured database.
type MemoryStore struct {
	mu   sync.RWMutex
	jobs map[string]*models.Job
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		jobs: make(map[string]*models.Job),
	}
}

// Create registers a new job
func (s *MemoryStore) Create(ctx context.Context, id string, options models.JobOptions) (*models.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.jobs[id]; exists {
		return nil, ErrJobAlreadyExists
	}

	now := time.Now().UTC()
	job := &models.Job{
		ID:        id,
		Status:    models.JobStatusInitializing,
		Progress:  0,
		Options:   options,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.jobs[id] = job

	return job.Clone(), nil
}

// Update applies a partial update under the write lock so concurrent readers
// never observe a half-applied state.
func (s *MemoryStore) Update(ctx context.Context, id string, update Update) (*models.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, exists := s.jobs[id]
	if !exists {
		return nil, ErrJobNotFound
	}

	if update.Status != nil {
		job.Status = *update.Status
	}
	if update.Progress != nil {
		job.Progress = *update.Progress
	}
	if update.Result != nil {
		job.Result = update.Result
	}
	if update.Error != nil {
		job.Error = *update.Error
	}
	job.UpdatedAt = time.Now().UTC()

	return job.Clone(), nil
}

// Get returns a snapshot of a job
func (s *MemoryStore) Get(ctx context.Context, id string) (*models.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	job, exists := s.jobs[id]
	if !exists {
		return nil, ErrJobNotFound
	}
	return job.Clone(), nil
}

// List returns jobs ordered newest first
func (s *MemoryStore) List(ctx context.Context, limit, offset int) ([]*models.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]*models.Job, 0, len(s.jobs))
	for _, job := range s.jobs {
		all = append(all, job)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	if offset >= len(all) {
		return []*models.Job{}, nil
	}
	all = all[offset:]
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}

	out := make([]*models.Job, len(all))
	for i, job := range all {
		out[i] = job.Clone()
	}
	return out, nil
}
