package sentiment

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/summarize-anything/summarize-api/internal/models"
	"github.com/summarize-anything/summarize-api/internal/services/inference"
)

// Emotion labels grouped by polarity, matching the label set of the hosted
// emotion model.
var (
	positiveEmotions = []string{"joy", "gratitude", "optimism", "pride", "admiration", "love"}
	negativeEmotions = []string{"anger", "disgust", "fear", "sadness", "disappointment", "grief"}
	neutralEmotions  = []string{"neutral", "surprise", "curiosity", "realization"}
)

// Config holds sentiment analysis settings
type Config struct {
	RemoteModel string
	MaxChars    int
}

// Analyzer scores the emotional tone of a transcript. The hosted emotion
// classifier is tried first; a keyword lexicon is the fallback.
type Analyzer struct {
	client *inference.Client
	config Config
}

// New creates a sentiment analyzer
func New(client *inference.Client, config Config) *Analyzer {
	if config.RemoteModel == "" {
		config.RemoteModel = "SamLowe/roberta-base-go_emotions"
	}
	if config.MaxChars <= 0 {
		config.MaxChars = 2000
	}
	return &Analyzer{client: client, config: config}
}

// Analyze returns the overall sentiment with a per-polarity breakdown
func (a *Analyzer) Analyze(ctx context.Context, text string) (*models.SentimentResult, error) {
	return inference.Fallback(ctx, "sentiment analysis",
		func(ctx context.Context) (*models.SentimentResult, error) {
			return a.analyzeRemote(ctx, text)
		},
		func(ctx context.Context) (*models.SentimentResult, error) {
			return AnalyzeLexicon(text), nil
		},
	)
}

type labelScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

func (a *Analyzer) analyzeRemote(ctx context.Context, text string) (*models.SentimentResult, error) {
	text = inference.TruncateText(text, a.config.MaxChars)

	var resp [][]labelScore
	err := a.client.PostJSON(ctx, a.config.RemoteModel, map[string]interface{}{"inputs": text}, &resp)
	if err != nil {
		return nil, err
	}
	if len(resp) == 0 || len(resp[0]) == 0 {
		return nil, fmt.Errorf("model %s returned no emotion scores", a.config.RemoteModel)
	}

	emotions := make(map[string]float64, len(resp[0]))
	for _, ls := range resp[0] {
		emotions[strings.ToLower(ls.Label)] = ls.Score
	}

	result := BucketEmotions(emotions)
	result.DetailedEmotions = emotions
	return result, nil
}

// BucketEmotions folds per-emotion scores into the three polarity buckets.
// The overall sentiment is the bucket with the highest mass and the
// confidence is that mass.
func BucketEmotions(emotions map[string]float64) *models.SentimentResult {
	sum := func(labels []string) float64 {
		var total float64
		for _, label := range labels {
			total += emotions[label]
		}
		return total
	}

	breakdown := models.EmotionBreakdown{
		Positive: sum(positiveEmotions),
		Negative: sum(negativeEmotions),
		Neutral:  sum(neutralEmotions),
	}

	overall := models.SentimentNeutral
	confidence := breakdown.Neutral
	if breakdown.Positive >= confidence {
		overall = models.SentimentPositive
		confidence = breakdown.Positive
	}
	if breakdown.Negative > confidence {
		overall = models.SentimentNegative
		confidence = breakdown.Negative
	}

	return &models.SentimentResult{
		Sentiment:  overall,
		Confidence: confidence,
		Emotions:   breakdown,
	}
}

var lexiconWord = regexp.MustCompile(`[a-zA-Z']+`)

var positiveWords = map[string]bool{
	"good": true, "great": true, "excellent": true, "happy": true, "love": true,
	"wonderful": true, "amazing": true, "best": true, "fantastic": true, "joy": true,
	"success": true, "successful": true, "win": true, "beautiful": true, "enjoy": true,
	"excited": true, "exciting": true, "positive": true, "perfect": true, "thank": true,
	"thanks": true, "helpful": true, "improve": true, "improved": true, "better": true,
}

var negativeWords = map[string]bool{
	"bad": true, "terrible": true, "awful": true, "sad": true, "hate": true,
	"worst": true, "horrible": true, "fail": true, "failure": true, "angry": true,
	"anger": true, "fear": true, "problem": true, "wrong": true, "broken": true,
	"disappointing": true, "disappointed": true, "negative": true, "poor": true,
	"worse": true, "difficult": true, "crisis": true, "loss": true, "pain": true,
}

// AnalyzeLexicon scores sentiment by counting polarity keywords. The losing
// polarity mirrors the winner's score and the neutral share is zero, so the
// shape matches the model-backed breakdown.
func AnalyzeLexicon(text string) *models.SentimentResult {
	var positive, negative int
	for _, word := range lexiconWord.FindAllString(strings.ToLower(text), -1) {
		if positiveWords[word] {
			positive++
		}
		if negativeWords[word] {
			negative++
		}
	}

	total := positive + negative
	if total == 0 {
		return &models.SentimentResult{
			Sentiment:  models.SentimentNeutral,
			Confidence: 1.0,
			Emotions:   models.EmotionBreakdown{Neutral: 1.0},
		}
	}

	score := float64(positive) / float64(total)
	if score >= 0.5 {
		return &models.SentimentResult{
			Sentiment:  models.SentimentPositive,
			Confidence: score,
			Emotions:   models.EmotionBreakdown{Positive: score, Negative: 1 - score},
		}
	}
	return &models.SentimentResult{
		Sentiment:  models.SentimentNegative,
		Confidence: 1 - score,
		Emotions:   models.EmotionBreakdown{Positive: score, Negative: 1 - score},
	}
}
