package jobs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/summarize-anything/summarize-api/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Job{}))
	return db
}

func TestRepositoryCreateAndGet(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	job, err := repo.Create(ctx, "job-1", models.JobOptions{"type": "url", "url": "https://example.com/a.mp3"})
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusInitializing, job.Status)

	fetched, err := repo.Get(ctx, "job-1")
	require.NoError(t, err)
	assert.Equal(t, "job-1", fetched.ID)
	assert.Equal(t, "url", fetched.Options["type"])

	_, err = repo.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestRepositoryUpdate(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	_, err := repo.Create(ctx, "job-1", nil)
	require.NoError(t, err)

	job, err := repo.Update(ctx, "job-1", Update{
		Status:   statusPtr(models.JobStatusSummarizing),
		Progress: floatPtr(models.ProgressTranscribed),
	})
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusSummarizing, job.Status)
	assert.Equal(t, models.ProgressTranscribed, job.Progress)

	// Result round-trips through the JSON column
	result := &models.Result{Transcript: "some text", Language: "en"}
	job, err = repo.Update(ctx, "job-1", Update{Result: result})
	require.NoError(t, err)
	require.NotNil(t, job.Result)
	assert.Equal(t, "some text", job.Result.Transcript)

	_, err = repo.Update(ctx, "missing", StatusUpdate(models.JobStatusFailed))
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestRepositoryList(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		_, err := repo.Create(ctx, id, nil)
		require.NoError(t, err)
	}

	jobList, err := repo.List(ctx, 2, 0)
	require.NoError(t, err)
	assert.Len(t, jobList, 2)

	jobList, err = repo.List(ctx, 0, 0)
	require.NoError(t, err)
	assert.Len(t, jobList, 3)
}

func statusPtr(s models.JobStatus) *models.JobStatus { return &s }
func floatPtr(f float64) *float64                    { return &f }
