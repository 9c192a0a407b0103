package quiz

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"github.com/summarize-anything/summarize-api/internal/models"
	"github.com/summarize-anything/summarize-api/internal/services/inference"
)

const quizPrompt = `Generate a quiz from the following transcript.
Respond with JSON only, no prose, in exactly this shape:
{
  "mcq": [{"question": "...", "options": ["...", "...", "...", "..."], "correct_answer": "..."}],
  "true_false": [{"question": "...", "correct_answer": true}]
}
Produce %d multiple-choice questions and %d true/false questions.

Transcript:
%s`

// Config holds quiz generation settings
type Config struct {
	Model    string
	MCQCount int
	TFCount  int
	MaxChars int
}

// Generator produces quizzes from transcripts. A chat-completion model is
// tried first; a deterministic heuristic builds the quiz when no model is
// reachable.
type Generator struct {
	chat   *openai.Client
	config Config
}

// New creates a quiz generator. A nil chat client disables the remote path.
func New(chat *openai.Client, config Config) *Generator {
	if config.Model == "" {
		config.Model = "Qwen/Qwen2.5-7B-Instruct"
	}
	if config.MCQCount <= 0 {
		config.MCQCount = 5
	}
	if config.TFCount <= 0 {
		config.TFCount = 5
	}
	if config.MaxChars <= 0 {
		config.MaxChars = 6000
	}
	return &Generator{chat: chat, config: config}
}

// Generate builds a quiz for the given transcript
func (g *Generator) Generate(ctx context.Context, transcript string) (*models.QuizResult, error) {
	return inference.Fallback(ctx, "quiz generation",
		func(ctx context.Context) (*models.QuizResult, error) {
			return g.generateRemote(ctx, transcript)
		},
		func(ctx context.Context) (*models.QuizResult, error) {
			return GenerateHeuristic(transcript, g.config.MCQCount, g.config.TFCount)
		},
	)
}

func (g *Generator) generateRemote(ctx context.Context, transcript string) (*models.QuizResult, error) {
	if g.chat == nil {
		return nil, fmt.Errorf("chat model not configured")
	}
	transcript = inference.TruncateText(transcript, g.config.MaxChars)

	resp, err := g.chat.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.config.Model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf(quizPrompt, g.config.MCQCount, g.config.TFCount, transcript),
			},
		},
		Temperature: 0.3,
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("chat model returned no choices")
	}

	return ParseQuizJSON(resp.Choices[0].Message.Content)
}

// ParseQuizJSON decodes a model's quiz response, tolerating markdown code
// fences around the JSON.
func ParseQuizJSON(content string) (*models.QuizResult, error) {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx >= 0 {
			content = content[:idx]
		}
		content = strings.TrimSpace(content)
	}

	var result models.QuizResult
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		return nil, fmt.Errorf("parsing quiz response: %w", err)
	}
	if len(result.MCQ) == 0 && len(result.TrueFalse) == 0 {
		return nil, fmt.Errorf("quiz response contained no questions")
	}
	return &result, nil
}

// GenerateHeuristic builds a simple comprehension quiz from the transcript's
// own sentences. Every fourth usable sentence becomes a question so the
// output is deterministic for a given input.
func GenerateHeuristic(transcript string, mcqCount, tfCount int) (*models.QuizResult, error) {
	sentences := usableSentences(transcript)
	if len(sentences) == 0 {
		return nil, fmt.Errorf("transcript too short for quiz generation")
	}

	result := &models.QuizResult{}

	for i := 0; i < len(sentences) && len(result.MCQ) < mcqCount; i += 2 {
		sentence := sentences[i]
		result.MCQ = append(result.MCQ, models.MCQQuestion{
			Question: "According to the content, which statement is accurate?",
			Options: []string{
				sentence,
				"None of the material covered this point.",
				"The content stated the opposite.",
				"This was left as an open question.",
			},
			CorrectAnswer: sentence,
		})
	}

	for i := 1; i < len(sentences) && len(result.TrueFalse) < tfCount; i += 2 {
		result.TrueFalse = append(result.TrueFalse, models.TrueFalseQuestion{
			Question:      fmt.Sprintf("The content states: %q", sentences[i]),
			CorrectAnswer: true,
		})
	}

	if len(result.MCQ) == 0 && len(result.TrueFalse) == 0 {
		return nil, fmt.Errorf("transcript too short for quiz generation")
	}
	return result, nil
}

func usableSentences(text string) []string {
	var out []string
	for _, part := range strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?' || r == '\n'
	}) {
		part = strings.TrimSpace(part)
		if len(part) >= 30 && len(part) <= 200 {
			out = append(out, part)
		}
	}
	return out
}
