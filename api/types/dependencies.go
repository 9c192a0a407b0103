package types

import (
	"context"

	"github.com/summarize-anything/summarize-api/internal/database"
	"github.com/summarize-anything/summarize-api/internal/models"
	"github.com/summarize-anything/summarize-api/internal/services/jobs"
	"github.com/summarize-anything/summarize-api/internal/services/pipeline"
	"github.com/summarize-anything/summarize-api/pkg/download"
)

// Dispatcher starts background processing for an accepted job
type Dispatcher interface {
	Dispatch(jobID string, submission pipeline.Submission)
}

// Translator translates text on demand for the translation endpoint
type Translator interface {
	Translate(ctx context.Context, text, sourceLang, targetLang string) (*models.TranslationResult, error)
	DetectLanguage(ctx context.Context, text string) string
}

// ReportBuilder renders a completed result as a document
type ReportBuilder interface {
	Build(jobID string, result *models.Result) (string, error)
}

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB            *database.DB
	JobStore      jobs.Store
	Runner        Dispatcher
	Downloader    *download.Downloader
	Translator    Translator
	ReportBuilder ReportBuilder
}
