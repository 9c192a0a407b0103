package transcriber

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/exec"
	"regexp"
	"strconv"
	"strings"

	"github.com/summarize-anything/summarize-api/internal/models"
	"github.com/summarize-anything/summarize-api/internal/services/inference"
)

// Config holds transcription settings
type Config struct {
	RemoteModel string
	WhisperPath string
	ModelPath   string
	Language    string
}

// Transcriber converts extracted audio into a transcript. The hosted whisper
// model is tried first; a local whisper binary is the fallback.
type Transcriber struct {
	client *inference.Client
	config Config
}

// New creates a transcriber
func New(client *inference.Client, config Config) *Transcriber {
	if config.RemoteModel == "" {
		config.RemoteModel = "openai/whisper-large-v3"
	}
	if config.WhisperPath == "" {
		config.WhisperPath = "whisper-cli"
	}
	return &Transcriber{client: client, config: config}
}

// Transcribe produces a transcript for a 16kHz mono WAV file
func (t *Transcriber) Transcribe(ctx context.Context, audioPath string) (*models.Transcript, error) {
	return inference.Fallback(ctx, "transcription",
		func(ctx context.Context) (*models.Transcript, error) {
			return t.transcribeRemote(ctx, audioPath)
		},
		func(ctx context.Context) (*models.Transcript, error) {
			return t.transcribeLocal(ctx, audioPath)
		},
	)
}

type remoteResponse struct {
	Text   string `json:"text"`
	Chunks []struct {
		Timestamp []float64 `json:"timestamp"`
		Text      string    `json:"text"`
	} `json:"chunks"`
}

func (t *Transcriber) transcribeRemote(ctx context.Context, audioPath string) (*models.Transcript, error) {
	var resp remoteResponse
	if err := t.client.PostFile(ctx, t.config.RemoteModel, audioPath, "audio/wav", &resp); err != nil {
		return nil, err
	}
	if strings.TrimSpace(resp.Text) == "" {
		return nil, fmt.Errorf("model %s returned an empty transcript", t.config.RemoteModel)
	}

	transcript := &models.Transcript{
		Text:     strings.TrimSpace(resp.Text),
		Language: t.config.Language,
	}
	for _, chunk := range resp.Chunks {
		seg := models.TranscriptSegment{Text: strings.TrimSpace(chunk.Text)}
		if len(chunk.Timestamp) == 2 {
			seg.Start = chunk.Timestamp[0]
			seg.End = chunk.Timestamp[1]
		}
		transcript.Segments = append(transcript.Segments, seg)
	}
	return transcript, nil
}

func (t *Transcriber) transcribeLocal(ctx context.Context, audioPath string) (*models.Transcript, error) {
	if _, err := exec.LookPath(t.config.WhisperPath); err != nil {
		return nil, fmt.Errorf("whisper binary not found at %s: %w", t.config.WhisperPath, err)
	}
	if t.config.ModelPath != "" {
		if _, err := os.Stat(t.config.ModelPath); err != nil {
			return nil, fmt.Errorf("whisper model not found at %s: %w", t.config.ModelPath, err)
		}
	}

	args := []string{"-f", audioPath, "-t", "4"}
	if t.config.ModelPath != "" {
		args = append(args, "-m", t.config.ModelPath)
	}
	if t.config.Language != "" {
		args = append(args, "-l", t.config.Language)
	}

	log.Printf("[DEBUG] Running local transcription: %s %s", t.config.WhisperPath, strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, t.config.WhisperPath, args...)
	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return nil, fmt.Errorf("whisper failed: %s", truncate(string(exitErr.Stderr), 200))
		}
		return nil, fmt.Errorf("running whisper: %w", err)
	}

	transcript := ParseWhisperOutput(string(output))
	if transcript.Text == "" {
		return nil, fmt.Errorf("whisper produced no transcript")
	}
	transcript.Language = t.config.Language
	return transcript, nil
}

// whisper.cpp prints lines like:
// [00:00:00.000 --> 00:00:04.500]   Hello and welcome to the show.
var whisperLine = regexp.MustCompile(`^\[(\d{2}):(\d{2}):(\d{2})\.(\d{3}) --> (\d{2}):(\d{2}):(\d{2})\.(\d{3})\]\s*(.*)$`)

// ParseWhisperOutput converts whisper.cpp stdout into a transcript with
// timed segments. Lines that do not carry a timestamp are ignored.
func ParseWhisperOutput(output string) *models.Transcript {
	transcript := &models.Transcript{}
	var parts []string

	for _, line := range strings.Split(output, "\n") {
		m := whisperLine.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		text := strings.TrimSpace(m[9])
		if text == "" {
			continue
		}
		transcript.Segments = append(transcript.Segments, models.TranscriptSegment{
			Start: timestampSeconds(m[1], m[2], m[3], m[4]),
			End:   timestampSeconds(m[5], m[6], m[7], m[8]),
			Text:  text,
		})
		parts = append(parts, text)
	}

	transcript.Text = strings.Join(parts, " ")
	return transcript
}

func timestampSeconds(h, m, s, ms string) float64 {
	hours, _ := strconv.Atoi(h)
	minutes, _ := strconv.Atoi(m)
	seconds, _ := strconv.Atoi(s)
	millis, _ := strconv.Atoi(ms)
	return float64(hours)*3600 + float64(minutes)*60 + float64(seconds) + float64(millis)/1000
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
