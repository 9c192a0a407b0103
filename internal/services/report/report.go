package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
	"github.com/summarize-anything/summarize-api/internal/models"
)

const (
	fontName = "Calibri"
	bodySize = 11
)

// Builder renders a completed job's result as a DOCX report
type Builder struct {
	outputDir string
}

// NewBuilder creates a report builder writing into outputDir
func NewBuilder(outputDir string) *Builder {
	return &Builder{outputDir: outputDir}
}

// Build writes a report for a completed job and returns the file path
func (b *Builder) Build(jobID string, result *models.Result) (string, error) {
	if result == nil {
		return "", fmt.Errorf("job %s has no result", jobID)
	}
	if err := os.MkdirAll(b.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("creating report directory: %w", err)
	}

	doc, err := godocx.NewDocument()
	if err != nil {
		return "", fmt.Errorf("creating document: %w", err)
	}

	addHeading(doc, "Media Summary Report", 16)
	addBody(doc, fmt.Sprintf("Job: %s", jobID))
	addBody(doc, fmt.Sprintf("Language: %s", result.Language))
	doc.AddParagraph("")

	if result.Summaries.Short != "" {
		addHeading(doc, "Summary", 14)
		addBody(doc, result.Summaries.Short)
		doc.AddParagraph("")
	}

	if len(result.Chapters) > 0 {
		addHeading(doc, "Chapters", 14)
		for _, ch := range result.Chapters {
			addHeading(doc, fmt.Sprintf("%s (%s - %s)", ch.Title, ch.StartTime, ch.EndTime), 12)
			addBody(doc, ch.Content)
		}
		doc.AddParagraph("")
	}

	addHeading(doc, "Sentiment", 14)
	addBody(doc, fmt.Sprintf("Overall: %s (confidence %.2f)", result.Sentiment.Sentiment, result.Sentiment.Confidence))
	addBody(doc, fmt.Sprintf("Positive %.2f / Negative %.2f / Neutral %.2f",
		result.Sentiment.Emotions.Positive, result.Sentiment.Emotions.Negative, result.Sentiment.Emotions.Neutral))
	doc.AddParagraph("")

	if len(result.Quiz.MCQ) > 0 || len(result.Quiz.TrueFalse) > 0 {
		addHeading(doc, "Quiz", 14)
		for i, q := range result.Quiz.MCQ {
			addBody(doc, fmt.Sprintf("%d. %s", i+1, q.Question))
			for j, opt := range q.Options {
				addBody(doc, fmt.Sprintf("   %c) %s", 'a'+j, opt))
			}
			addBody(doc, fmt.Sprintf("   Answer: %s", q.CorrectAnswer))
		}
		for i, q := range result.Quiz.TrueFalse {
			answer := "False"
			if q.CorrectAnswer {
				answer = "True"
			}
			addBody(doc, fmt.Sprintf("%d. %s (%s)", len(result.Quiz.MCQ)+i+1, q.Question, answer))
		}
		doc.AddParagraph("")
	}

	if len(result.Translations) > 0 {
		addHeading(doc, "Translations", 14)
		for lang, tr := range result.Translations {
			addHeading(doc, strings.ToUpper(lang), 12)
			addBody(doc, tr.TranslatedText)
		}
		doc.AddParagraph("")
	}

	if result.Transcript != "" {
		addHeading(doc, "Transcript", 14)
		addBody(doc, result.Transcript)
	}

	outputPath := filepath.Join(b.outputDir, fmt.Sprintf("report_%s.docx", jobID))
	if err := doc.SaveTo(outputPath); err != nil {
		return "", fmt.Errorf("saving report: %w", err)
	}
	return outputPath, nil
}

func addHeading(doc *docx.RootDoc, text string, size uint64) {
	p := doc.AddParagraph("")
	p.AddText(text).Font(fontName).Size(size).Color("000000").Bold(true)
}

func addBody(doc *docx.RootDoc, text string) {
	p := doc.AddParagraph("")
	p.AddText(text).Font(fontName).Size(bodySize).Color("000000")
}
