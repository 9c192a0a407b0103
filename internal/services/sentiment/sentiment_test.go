package sentiment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/summarize-anything/summarize-api/internal/models"
	"github.com/summarize-anything/summarize-api/internal/services/inference"
)

func TestBucketEmotions(t *testing.T) {
	result := BucketEmotions(map[string]float64{
		"joy":     0.6,
		"anger":   0.1,
		"neutral": 0.1,
	})

	assert.Equal(t, models.SentimentPositive, result.Sentiment)
	assert.InDelta(t, 0.6, result.Confidence, 0.001)
	assert.InDelta(t, 0.6, result.Emotions.Positive, 0.001)
	assert.InDelta(t, 0.1, result.Emotions.Negative, 0.001)
	assert.InDelta(t, 0.1, result.Emotions.Neutral, 0.001)
}

func TestBucketEmotionsNegative(t *testing.T) {
	result := BucketEmotions(map[string]float64{
		"sadness": 0.4,
		"anger":   0.3,
		"joy":     0.2,
	})

	assert.Equal(t, models.SentimentNegative, result.Sentiment)
	assert.InDelta(t, 0.7, result.Confidence, 0.001)
}

func TestBucketEmotionsIgnoresUnknownLabels(t *testing.T) {
	result := BucketEmotions(map[string]float64{
		"neutral":       0.5,
		"made_up_label": 0.9,
	})

	assert.Equal(t, models.SentimentNeutral, result.Sentiment)
	assert.InDelta(t, 0.5, result.Confidence, 0.001)
}

func TestAnalyzeRemote(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[[{"label":"joy","score":0.7},{"label":"neutral","score":0.2},{"label":"anger","score":0.1}]]`))
	}))
	defer server.Close()

	client := inference.NewClient(server.URL, "test-token", time.Minute)
	a := New(client, Config{})

	result, err := a.Analyze(context.Background(), "what a wonderful day")
	require.NoError(t, err)
	assert.Equal(t, models.SentimentPositive, result.Sentiment)
	assert.InDelta(t, 0.7, result.Confidence, 0.001)
	assert.InDelta(t, 0.7, result.DetailedEmotions["joy"], 0.001)
}

func TestAnalyzeFallsBackToLexicon(t *testing.T) {
	client := inference.NewClient("https://example.com", "", time.Minute)
	a := New(client, Config{})

	result, err := a.Analyze(context.Background(), "this was a terrible awful failure, the worst")
	require.NoError(t, err)
	assert.Equal(t, models.SentimentNegative, result.Sentiment)
	assert.Empty(t, result.DetailedEmotions)
}

func TestAnalyzeLexiconMirrorsOppositePolarity(t *testing.T) {
	result := AnalyzeLexicon("great great great bad")
	assert.Equal(t, models.SentimentPositive, result.Sentiment)
	assert.InDelta(t, 0.75, result.Confidence, 0.001)
	assert.InDelta(t, 0.75, result.Emotions.Positive, 0.001)
	assert.InDelta(t, 0.25, result.Emotions.Negative, 0.001)
	assert.Equal(t, 0.0, result.Emotions.Neutral)
}

func TestAnalyzeLexiconNoSignal(t *testing.T) {
	result := AnalyzeLexicon("the cat sat on the mat")
	assert.Equal(t, models.SentimentNeutral, result.Sentiment)
	assert.Equal(t, 1.0, result.Confidence)
	assert.Equal(t, 1.0, result.Emotions.Neutral)
}
