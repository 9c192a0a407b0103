package chapters

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/summarize-anything/summarize-api/internal/models"
)

// Phrases that signal the start of a new topic within a transcript
var markerPattern = regexp.MustCompile(`(?i)chapter \d+|section \d+|part \d+|topic \d*:?|\d+\.|introduction|conclusion`)

// Timestamps are stripped from chapter titles
var timestampPattern = regexp.MustCompile(`\d{2}:\d{2}:\d{2}|\d{2}:\d{2}`)

var sentencePattern = regexp.MustCompile(`[.!?]+\s+|\n+`)

// Extractor derives chapter boundaries from the transcript. Timed segments
// place each chapter at the marker segment's timestamps; plain text falls
// back to splitting the duration evenly across marker sentences.
type Extractor struct{}

// NewExtractor creates a chapter extractor
func NewExtractor() *Extractor {
	return &Extractor{}
}

// section is a chapter under construction
type section struct {
	title   string
	start   float64
	end     float64
	content []string
}

func (s section) chapter() models.Chapter {
	return models.Chapter{
		Title:        s.title,
		StartTime:    FormatTimestamp(s.start),
		EndTime:      FormatTimestamp(s.end),
		Duration:     FormatTimestamp(s.end - s.start),
		Content:      strings.Join(s.content, " "),
		StartSeconds: s.start,
		EndSeconds:   s.end,
	}
}

// Extract segments a transcript into chapters. The transcript always yields
// at least one chapter; when no markers are present everything becomes a
// single Introduction chapter.
func (e *Extractor) Extract(transcript string, segments []models.TranscriptSegment, duration float64) []models.Chapter {
	if len(segments) > 0 {
		if result := fromSegments(segments); len(result) > 0 {
			return result
		}
	}
	return fromText(transcript, duration)
}

// fromSegments walks the timed segments in order. The running chapter's end
// follows every segment seen; a marker segment closes it and opens a new
// chapter at the marker's own start time.
func fromSegments(segments []models.TranscriptSegment) []models.Chapter {
	current := section{title: "Introduction"}
	var sections []section

	for _, seg := range segments {
		text := strings.TrimSpace(seg.Text)
		current.end = seg.End

		if IsMarker(text) {
			if len(current.content) > 0 {
				sections = append(sections, current)
			}
			current = section{
				title:   extractTitle(text),
				start:   seg.Start,
				end:     seg.End,
				content: []string{text},
			}
			continue
		}
		if text != "" {
			current.content = append(current.content, text)
		}
	}
	if len(current.content) > 0 {
		sections = append(sections, current)
	}

	result := make([]models.Chapter, len(sections))
	for i, sec := range sections {
		result[i] = sec.chapter()
	}
	return result
}

// fromText has no timestamps to work with, so the media duration is split
// evenly across the marker sentences.
func fromText(transcript string, duration float64) []models.Chapter {
	sentences := splitSentences(transcript)
	if len(sentences) == 0 {
		sentences = []string{transcript}
	}

	current := section{title: "Introduction"}
	var sections []section

	for _, sentence := range sentences {
		if IsMarker(sentence) && len(current.content) > 0 {
			sections = append(sections, current)
			current = section{title: extractTitle(sentence)}
		}
		current.content = append(current.content, sentence)
	}
	sections = append(sections, current)

	perChapter := duration / float64(len(sections))
	result := make([]models.Chapter, len(sections))
	for i, sec := range sections {
		sec.start = float64(i) * perChapter
		sec.end = float64(i+1) * perChapter
		result[i] = sec.chapter()
	}
	return result
}

// IsMarker reports whether a sentence opens a new topic
func IsMarker(sentence string) bool {
	return markerPattern.MatchString(sentence)
}

// extractTitle derives a chapter title from the sentence that opened it.
// Short sentences are used whole; long ones are cut at the first clause
// boundary. Any embedded timestamps are removed.
func extractTitle(sentence string) string {
	title := strings.TrimSpace(sentence)
	if len(title) >= 100 {
		if idx := strings.IndexAny(title, ".!?,;:"); idx > 0 {
			title = title[:idx]
		} else {
			title = title[:100]
		}
	}
	title = timestampPattern.ReplaceAllString(title, "")
	title = strings.TrimSpace(strings.Trim(title, "-–: "))
	if title == "" {
		title = "Untitled"
	}
	return title
}

// FormatTimestamp renders seconds as H:MM:SS
func FormatTimestamp(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int(seconds)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	return fmt.Sprintf("%d:%02d:%02d", h, m, s)
}

func splitSentences(text string) []string {
	parts := sentencePattern.Split(text, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
