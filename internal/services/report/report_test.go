package report

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/summarize-anything/summarize-api/internal/models"
)

func TestBuildReport(t *testing.T) {
	builder := NewBuilder(t.TempDir())

	result := &models.Result{
		Transcript: "hello world, this is the transcript",
		Language:   "en",
		Summaries: models.SummaryResult{
			Short:  "a short summary",
			Models: map[string]string{"facebook/bart-large-cnn": "a short summary"},
		},
		Chapters: []models.Chapter{
			{Title: "Introduction", StartTime: "0:00:00", EndTime: "0:01:00", Content: "opening remarks"},
		},
		Sentiment: models.SentimentResult{
			Sentiment:  models.SentimentPositive,
			Confidence: 0.8,
			Emotions:   models.EmotionBreakdown{Positive: 0.8, Negative: 0.1, Neutral: 0.1},
		},
		Quiz: models.QuizResult{
			MCQ: []models.MCQQuestion{
				{Question: "What was said?", Options: []string{"hello", "goodbye"}, CorrectAnswer: "hello"},
			},
			TrueFalse: []models.TrueFalseQuestion{
				{Question: "The speaker said hello.", CorrectAnswer: true},
			},
		},
		Translations: map[string]models.TranslationResult{
			"hi": {TranslatedText: "नमस्ते", SourceLang: "en", TargetLang: "hi"},
		},
	}

	path, err := builder.Build("job-123", result)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
	assert.Contains(t, path, "report_job-123.docx")
}

func TestBuildReportNilResult(t *testing.T) {
	builder := NewBuilder(t.TempDir())

	_, err := builder.Build("job-123", nil)
	assert.Error(t, err)
}
