package pipeline

import (
	"context"

	"github.com/summarize-anything/summarize-api/internal/models"
	"github.com/summarize-anything/summarize-api/pkg/ffmpeg"
)

// Stage collaborators. Each is satisfied by the concrete service and by test
// stubs.

type Downloader interface {
	Download(ctx context.Context, url string) (string, error)
}

type MediaProcessor interface {
	ExtractAudio(ctx context.Context, mediaPath string) (string, error)
	GetMetadata(ctx context.Context, mediaPath string) (*ffmpeg.Metadata, error)
	GenerateThumbnail(ctx context.Context, videoPath string) (string, error)
}

type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (*models.Transcript, error)
}

type Summarizer interface {
	Summarize(ctx context.Context, text string) (*models.SummaryResult, error)
}

type QuizGenerator interface {
	Generate(ctx context.Context, transcript string) (*models.QuizResult, error)
}

type SentimentAnalyzer interface {
	Analyze(ctx context.Context, text string) (*models.SentimentResult, error)
}

type LanguageTranslator interface {
	Translate(ctx context.Context, text, sourceLang, targetLang string) (*models.TranslationResult, error)
	DetectLanguage(ctx context.Context, text string) string
}

type ChapterExtractor interface {
	Extract(transcript string, segments []models.TranscriptSegment, duration float64) []models.Chapter
}
