package chapters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/summarize-anything/summarize-api/internal/models"
)

func TestIsMarker(t *testing.T) {
	tests := []struct {
		sentence string
		want     bool
	}{
		{"Chapter 2: Overview", true},
		{"chapter 14", true},
		{"Section 3 covers networking", true},
		{"Part 1 of the series", true},
		{"Topic: scaling databases", true},
		{"1. First we configure the server", true},
		{"Introduction", true},
		{"In conclusion, the approach works", true},
		{"just a regular sentence", false},
		{"the weather was nice that day", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsMarker(tt.sentence), "sentence: %q", tt.sentence)
	}
}

func TestExtractFromSegments(t *testing.T) {
	e := NewExtractor()

	segments := []models.TranscriptSegment{
		{Start: 0, End: 30, Text: "Welcome to the show, glad you could join us."},
		{Start: 30, End: 80, Text: "We have a lot of ground to cover today."},
		{Start: 80, End: 100, Text: "Chapter 1: Getting Started"},
		{Start: 100, End: 140, Text: "We begin with the basics of the system."},
	}

	result := e.Extract("ignored when segments exist", segments, 140)
	require.Len(t, result, 2)

	assert.Equal(t, "Introduction", result[0].Title)
	assert.Equal(t, 0.0, result[0].StartSeconds)

	// The new chapter opens at the marker segment's own timestamps, not at
	// an even split of the duration.
	assert.Equal(t, "Chapter 1: Getting Started", result[1].Title)
	assert.Equal(t, 80.0, result[1].StartSeconds)
	assert.Equal(t, 140.0, result[1].EndSeconds)
	assert.Equal(t, "0:01:20", result[1].StartTime)
}

func TestExtractFromSegmentsFollowsSegmentEnds(t *testing.T) {
	e := NewExtractor()

	segments := []models.TranscriptSegment{
		{Start: 0, End: 12.5, Text: "Some opening words about the subject."},
		{Start: 12.5, End: 47, Text: "More discussion continues here."},
	}

	result := e.Extract("", segments, 0)
	require.Len(t, result, 1)
	assert.Equal(t, "Introduction", result[0].Title)
	assert.Equal(t, 0.0, result[0].StartSeconds)
	assert.Equal(t, 47.0, result[0].EndSeconds)
	assert.Contains(t, result[0].Content, "opening words")
	assert.Contains(t, result[0].Content, "discussion continues")
}

func TestExtractFromSegmentsMarkerFirst(t *testing.T) {
	e := NewExtractor()

	segments := []models.TranscriptSegment{
		{Start: 0, End: 10, Text: "Chapter 1: Setup"},
		{Start: 10, End: 25, Text: "Install the binary first."},
	}

	// A leading marker replaces the empty Introduction seed
	result := e.Extract("", segments, 25)
	require.Len(t, result, 1)
	assert.Equal(t, "Chapter 1: Setup", result[0].Title)
	assert.Equal(t, 0.0, result[0].StartSeconds)
	assert.Equal(t, 25.0, result[0].EndSeconds)
}

func TestExtractSingleChapter(t *testing.T) {
	e := NewExtractor()

	result := e.Extract("Nothing here looks like a heading at all. Just plain talk about the weather.", nil, 120)
	require.Len(t, result, 1)
	assert.Equal(t, "Introduction", result[0].Title)
	assert.Equal(t, "0:00:00", result[0].StartTime)
	assert.Equal(t, "0:02:00", result[0].EndTime)
	assert.Equal(t, 0.0, result[0].StartSeconds)
	assert.Equal(t, 120.0, result[0].EndSeconds)
}

func TestExtractMultipleChapters(t *testing.T) {
	e := NewExtractor()

	transcript := "Welcome to the show, glad you could join us. " +
		"We have a lot of ground to cover today. " +
		"Chapter 1: Getting Started. We begin with the basics of the system. " +
		"Chapter 2: Advanced Usage. Now things get more interesting."

	result := e.Extract(transcript, nil, 300)
	require.Len(t, result, 3)
	assert.Equal(t, "Introduction", result[0].Title)
	assert.Equal(t, "Chapter 1: Getting Started", result[1].Title)
	assert.Equal(t, "Chapter 2: Advanced Usage", result[2].Title)
}

func TestExtractPartitionsDuration(t *testing.T) {
	e := NewExtractor()

	transcript := "Opening remarks go here. Section 1 begins now with details. Section 2 follows after that."
	result := e.Extract(transcript, nil, 600)
	require.NotEmpty(t, result)

	assert.Equal(t, 0.0, result[0].StartSeconds)
	for i := 1; i < len(result); i++ {
		assert.Equal(t, result[i-1].EndSeconds, result[i].StartSeconds)
	}
	assert.InDelta(t, 600.0, result[len(result)-1].EndSeconds, 0.001)
}

func TestExtractTitleStripsTimestamps(t *testing.T) {
	title := extractTitle("00:15 Chapter 3: Deployment")
	assert.Equal(t, "Chapter 3: Deployment", title)
}

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "0:00:00"},
		{59, "0:00:59"},
		{61, "0:01:01"},
		{3661, "1:01:01"},
		{-5, "0:00:00"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatTimestamp(tt.seconds))
	}
}

func TestExtractEmptyTranscript(t *testing.T) {
	e := NewExtractor()

	result := e.Extract("", nil, 60)
	require.Len(t, result, 1)
	assert.Equal(t, "Introduction", result[0].Title)
}
