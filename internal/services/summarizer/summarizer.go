package summarizer

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"sort"
	"strings"

	"github.com/summarize-anything/summarize-api/internal/models"
	"github.com/summarize-anything/summarize-api/internal/services/inference"
)

// Summarizer produces abstractive summaries via hosted models, with an
// extractive in-process fallback when no model responds.
type Summarizer struct {
	client *inference.Client
	models []string
}

// New creates a summarizer. The model list controls which hosted models are
// queried and the order their results appear in.
func New(client *inference.Client, modelIDs []string) *Summarizer {
	if len(modelIDs) == 0 {
		modelIDs = []string{"facebook/bart-large-cnn"}
	}
	return &Summarizer{client: client, models: modelIDs}
}

type summaryResponse []struct {
	SummaryText string `json:"summary_text"`
}

// Summarize returns a summary per configured model plus a short headline
// summary. Models that fail are skipped; if every model fails the extractive
// fallback fills in a single entry.
func (s *Summarizer) Summarize(ctx context.Context, text string) (*models.SummaryResult, error) {
	result := &models.SummaryResult{
		Models: make(map[string]string),
	}

	for _, model := range s.models {
		summary, err := s.summarizeRemote(ctx, model, text)
		if err != nil {
			log.Printf("[DEBUG] Summary model %s failed: %v", model, err)
			continue
		}
		result.Models[model] = summary
		if result.Short == "" {
			result.Short = summary
		}
	}

	if len(result.Models) == 0 {
		summary := ExtractiveSummary(text, 3)
		if summary == "" {
			return nil, fmt.Errorf("no summary could be produced")
		}
		result.Models["extractive"] = summary
		result.Short = summary
	}

	return result, nil
}

func (s *Summarizer) summarizeRemote(ctx context.Context, model, text string) (string, error) {
	payload := map[string]interface{}{
		"inputs": text,
		"parameters": map[string]interface{}{
			"max_length": 1024,
			"min_length": 40,
			"do_sample":  false,
		},
	}

	var resp summaryResponse
	if err := s.client.PostJSON(ctx, model, payload, &resp); err != nil {
		return "", err
	}
	if len(resp) == 0 || strings.TrimSpace(resp[0].SummaryText) == "" {
		return "", fmt.Errorf("model %s returned no summary", model)
	}
	return strings.TrimSpace(resp[0].SummaryText), nil
}

var sentenceSplit = regexp.MustCompile(`[.!?]+\s+`)
var wordPattern = regexp.MustCompile(`[a-zA-Z']+`)

// Common words carry no topical signal and are excluded from scoring
var stopwords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true, "but": true,
	"is": true, "are": true, "was": true, "were": true, "be": true, "been": true,
	"to": true, "of": true, "in": true, "on": true, "at": true, "for": true,
	"with": true, "that": true, "this": true, "it": true, "as": true, "by": true,
	"we": true, "you": true, "they": true, "i": true, "he": true, "she": true,
	"so": true, "not": true, "have": true, "has": true, "had": true, "do": true,
}

// ExtractiveSummary picks the highest scoring sentences by word frequency
// and returns them in their original order.
func ExtractiveSummary(text string, maxSentences int) string {
	sentences := splitSentences(text)
	if len(sentences) <= maxSentences {
		return strings.TrimSpace(text)
	}

	freq := make(map[string]int)
	for _, sentence := range sentences {
		for _, word := range wordPattern.FindAllString(strings.ToLower(sentence), -1) {
			if !stopwords[word] {
				freq[word]++
			}
		}
	}

	type scored struct {
		index int
		score float64
	}
	scores := make([]scored, len(sentences))
	for i, sentence := range sentences {
		wordList := wordPattern.FindAllString(strings.ToLower(sentence), -1)
		if len(wordList) == 0 {
			scores[i] = scored{index: i}
			continue
		}
		total := 0
		for _, word := range wordList {
			total += freq[word]
		}
		scores[i] = scored{index: i, score: float64(total) / float64(len(wordList))}
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].score > scores[j].score
	})
	top := scores[:maxSentences]
	sort.Slice(top, func(i, j int) bool {
		return top[i].index < top[j].index
	})

	parts := make([]string, len(top))
	for i, sc := range top {
		parts[i] = ensureTerminated(sentences[sc.index])
	}
	return strings.Join(parts, " ")
}

func ensureTerminated(sentence string) string {
	sentence = strings.TrimSpace(sentence)
	if sentence == "" {
		return sentence
	}
	last := sentence[len(sentence)-1]
	if last != '.' && last != '!' && last != '?' {
		sentence += "."
	}
	return sentence
}

func splitSentences(text string) []string {
	parts := sentenceSplit.Split(text, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
