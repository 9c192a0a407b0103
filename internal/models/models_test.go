package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobIsTerminal(t *testing.T) {
	tests := []struct {
		status   JobStatus
		terminal bool
	}{
		{JobStatusInitializing, false},
		{JobStatusDownloading, false},
		{JobStatusExtracting, false},
		{JobStatusTranscribing, false},
		{JobStatusSummarizing, false},
		{JobStatusCompleted, true},
		{JobStatusFailed, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			job := &Job{Status: tt.status}
			assert.Equal(t, tt.terminal, job.IsTerminal())
		})
	}
}

func TestJobClone(t *testing.T) {
	job := &Job{
		ID:       "job-1",
		Status:   JobStatusCompleted,
		Progress: 1.0,
		Options:  JobOptions{"type": "video"},
		Result:   &Result{Transcript: "hello world", Language: "en"},
	}

	clone := job.Clone()
	require.NotSame(t, job, clone)
	assert.Equal(t, job.ID, clone.ID)
	assert.Equal(t, job.Result.Transcript, clone.Result.Transcript)

	// Mutating the clone must not leak into the original
	clone.Options["type"] = "audio"
	clone.Result.Transcript = "changed"
	assert.Equal(t, "video", job.Options["type"])
	assert.Equal(t, "hello world", job.Result.Transcript)
}

func TestResultValueScan(t *testing.T) {
	original := &Result{
		Transcript: "some transcript",
		Language:   "en",
		Summaries: SummaryResult{
			Short:  "short summary",
			Models: map[string]string{"facebook/bart-large-cnn": "short summary"},
		},
		Sentiment: SentimentResult{
			Sentiment:  SentimentPositive,
			Confidence: 0.91,
			Emotions:   EmotionBreakdown{Positive: 0.91, Negative: 0.09},
		},
	}

	value, err := original.Value()
	require.NoError(t, err)

	var decoded Result
	require.NoError(t, decoded.Scan(value))
	assert.Equal(t, original.Transcript, decoded.Transcript)
	assert.Equal(t, original.Summaries.Short, decoded.Summaries.Short)
	assert.Equal(t, original.Sentiment.Sentiment, decoded.Sentiment.Sentiment)
}

func TestJobOptionsScanNil(t *testing.T) {
	var opts JobOptions
	require.NoError(t, opts.Scan(nil))
	assert.NotNil(t, opts)
	assert.Empty(t, opts)
}

func TestJobJSONShape(t *testing.T) {
	job := &Job{ID: "abc", Status: JobStatusFailed, Progress: 0.6, Error: "transcription failed"}

	raw, err := json.Marshal(job)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "failed", decoded["status"])
	assert.Equal(t, 0.6, decoded["progress"])
	assert.Equal(t, "transcription failed", decoded["error"])
	assert.NotContains(t, decoded, "result")
}
