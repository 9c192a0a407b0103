package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// TranscriptSegment is one time-aligned span of transcribed speech.
// Segments are ordered and non-overlapping by construction of the transcriber.
type TranscriptSegment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// Transcript is the normalized transcription output
type Transcript struct {
	Text     string              `json:"text"`
	Segments []TranscriptSegment `json:"segments"`
	Language string              `json:"language"`
}

// Chapter is one contiguous span of the transcript. Chapters partition the
// segment sequence: every segment falls in exactly one chapter.
type Chapter struct {
	Title        string  `json:"title"`
	StartTime    string  `json:"start_time"`
	EndTime      string  `json:"end_time"`
	Duration     string  `json:"duration"`
	Content      string  `json:"content"`
	StartSeconds float64 `json:"start_seconds"`
	EndSeconds   float64 `json:"end_seconds"`
}

// SummaryResult maps model identifiers to their summaries. Short is the
// first successfully produced summary.
type SummaryResult struct {
	Short  string            `json:"short"`
	Models map[string]string `json:"models"`
}

// MCQQuestion is a multiple-choice quiz question
type MCQQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
}

// TrueFalseQuestion is a true/false quiz question
type TrueFalseQuestion struct {
	Question      string `json:"question"`
	CorrectAnswer bool   `json:"correct_answer"`
}

// QuizResult holds generated quiz questions
type QuizResult struct {
	MCQ       []MCQQuestion       `json:"mcq"`
	TrueFalse []TrueFalseQuestion `json:"true_false"`
}

// Sentiment labels
const (
	SentimentPositive = "POSITIVE"
	SentimentNegative = "NEGATIVE"
	SentimentNeutral  = "NEUTRAL"
)

// EmotionBreakdown is the three-way sentiment bucket split
type EmotionBreakdown struct {
	Positive float64 `json:"positive"`
	Negative float64 `json:"negative"`
	Neutral  float64 `json:"neutral"`
}

// SentimentResult is the normalized sentiment analysis output.
// DetailedEmotions is only populated by the remote emotion model.
type SentimentResult struct {
	Sentiment        string             `json:"sentiment"`
	Confidence       float64            `json:"confidence"`
	Emotions         EmotionBreakdown   `json:"emotions"`
	DetailedEmotions map[string]float64 `json:"detailed_emotions,omitempty"`
}

// TranslationResult is the output of one translation
type TranslationResult struct {
	TranslatedText string `json:"translated_text"`
	SourceLang     string `json:"source_lang"`
	TargetLang     string `json:"target_lang"`
}

// Result is the complete output of a finished job
type Result struct {
	Transcript    string                       `json:"transcript"`
	Segments      []TranscriptSegment          `json:"segments"`
	Chapters      []Chapter                    `json:"chapters"`
	Summaries     SummaryResult                `json:"summaries"`
	Quiz          QuizResult                   `json:"quiz"`
	Sentiment     SentimentResult              `json:"sentiment"`
	Translations  map[string]TranslationResult `json:"translations"`
	Language      string                       `json:"language"`
	ThumbnailPath string                       `json:"thumbnail_path,omitempty"`
}

// Value implements driver.Valuer interface for Result
func (r *Result) Value() (driver.Value, error) {
	if r == nil {
		return nil, nil
	}
	return json.Marshal(r)
}

// Scan implements sql.Scanner interface for Result
func (r *Result) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}

	return json.Unmarshal(bytes, r)
}
