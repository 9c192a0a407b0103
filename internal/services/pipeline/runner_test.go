package pipeline

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/summarize-anything/summarize-api/internal/models"
	"github.com/summarize-anything/summarize-api/internal/services/jobs"
	"github.com/summarize-anything/summarize-api/pkg/ffmpeg"
)

type stubDownloader struct {
	path string
	err  error
}

func (s *stubDownloader) Download(ctx context.Context, url string) (string, error) {
	return s.path, s.err
}

type stubMedia struct {
	audioPath  string
	extractErr error
	metadata   *ffmpeg.Metadata
	thumbPath  string
}

func (s *stubMedia) ExtractAudio(ctx context.Context, mediaPath string) (string, error) {
	return s.audioPath, s.extractErr
}

func (s *stubMedia) GetMetadata(ctx context.Context, mediaPath string) (*ffmpeg.Metadata, error) {
	if s.metadata == nil {
		return nil, errors.New("no metadata")
	}
	return s.metadata, nil
}

func (s *stubMedia) GenerateThumbnail(ctx context.Context, videoPath string) (string, error) {
	if s.thumbPath == "" {
		return "", errors.New("no thumbnail")
	}
	return s.thumbPath, nil
}

type stubTranscriber struct {
	transcript *models.Transcript
	err        error
}

func (s *stubTranscriber) Transcribe(ctx context.Context, audioPath string) (*models.Transcript, error) {
	return s.transcript, s.err
}

type stubSummarizer struct{ err error }

func (s *stubSummarizer) Summarize(ctx context.Context, text string) (*models.SummaryResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.SummaryResult{Short: "summary of: " + text[:min(20, len(text))], Models: map[string]string{"m": "s"}}, nil
}

type stubQuiz struct{ err error }

func (s *stubQuiz) Generate(ctx context.Context, transcript string) (*models.QuizResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.QuizResult{TrueFalse: []models.TrueFalseQuestion{{Question: "q", CorrectAnswer: true}}}, nil
}

type stubSentiment struct{}

func (s *stubSentiment) Analyze(ctx context.Context, text string) (*models.SentimentResult, error) {
	return &models.SentimentResult{Sentiment: models.SentimentNeutral, Confidence: 1}, nil
}

type stubTranslator struct {
	lang     string
	err      error
	received []string
}

func (s *stubTranslator) Translate(ctx context.Context, text, sourceLang, targetLang string) (*models.TranslationResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.received = append(s.received, text)
	return &models.TranslationResult{TranslatedText: "translated", SourceLang: sourceLang, TargetLang: targetLang}, nil
}

func (s *stubTranslator) DetectLanguage(ctx context.Context, text string) string {
	if s.lang == "" {
		return "en"
	}
	return s.lang
}

type stubChapters struct {
	segments []models.TranscriptSegment
}

func (s *stubChapters) Extract(transcript string, segments []models.TranscriptSegment, duration float64) []models.Chapter {
	s.segments = segments
	return []models.Chapter{{Title: "Introduction", StartSeconds: 0, EndSeconds: duration}}
}

func newTestRunner(store jobs.Store, overrides func(*testDeps)) *Runner {
	deps := &testDeps{
		downloader: &stubDownloader{path: "/tmp/media.mp3"},
		media:      &stubMedia{audioPath: "/tmp/audio.wav", metadata: &ffmpeg.Metadata{Duration: 120}},
		transcribe: &stubTranscriber{transcript: &models.Transcript{Text: "the spoken words of the recording"}},
		summarize:  &stubSummarizer{},
		quiz:       &stubQuiz{},
		sentiment:  &stubSentiment{},
		translate:  &stubTranslator{},
		chapters:   &stubChapters{},
	}
	if overrides != nil {
		overrides(deps)
	}
	return NewRunner(store, deps.downloader, deps.media, deps.transcribe, deps.summarize,
		deps.quiz, deps.sentiment, deps.translate, deps.chapters,
		Config{JobTimeout: time.Minute, SecondaryTargets: []string{"ta", "hi"}})
}

type testDeps struct {
	downloader *stubDownloader
	media      *stubMedia
	transcribe *stubTranscriber
	summarize  *stubSummarizer
	quiz       *stubQuiz
	sentiment  *stubSentiment
	translate  *stubTranslator
	chapters   *stubChapters
}

func waitForTerminal(t *testing.T, store jobs.Store, jobID string) *models.Job {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		job, err := store.Get(context.Background(), jobID)
		require.NoError(t, err)
		if job.IsTerminal() {
			return job
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("job never reached a terminal state")
	return nil
}

func TestRunnerURLJobCompletes(t *testing.T) {
	store := jobs.NewMemoryStore()
	runner := newTestRunner(store, nil)

	_, err := store.Create(context.Background(), "job-1", models.JobOptions{"type": "url"})
	require.NoError(t, err)

	runner.Dispatch("job-1", Submission{Type: "url", URL: "https://example.com/a.mp3"})

	job := waitForTerminal(t, store, "job-1")
	assert.Equal(t, models.JobStatusCompleted, job.Status)
	assert.Equal(t, models.ProgressCompleted, job.Progress)
	require.NotNil(t, job.Result)
	assert.Equal(t, "the spoken words of the recording", job.Result.Transcript)
	assert.Equal(t, "en", job.Result.Language)
	assert.NotEmpty(t, job.Result.Chapters)
	assert.NotEmpty(t, job.Result.Summaries.Short)
	assert.NotEmpty(t, job.Result.Quiz.TrueFalse)
	// English source fans out to the secondary targets
	assert.Len(t, job.Result.Translations, 2)
}

func TestRunnerTextJobSkipsMediaStages(t *testing.T) {
	store := jobs.NewMemoryStore()
	runner := newTestRunner(store, func(d *testDeps) {
		d.downloader = &stubDownloader{err: errors.New("should not be called")}
	})

	_, err := store.Create(context.Background(), "job-1", models.JobOptions{"type": "text"})
	require.NoError(t, err)

	runner.Dispatch("job-1", Submission{Type: "text", Text: "some pasted article text to analyze"})

	job := waitForTerminal(t, store, "job-1")
	assert.Equal(t, models.JobStatusCompleted, job.Status)
	assert.Equal(t, "some pasted article text to analyze", job.Result.Transcript)
	assert.Empty(t, job.Result.Segments)
}

func TestRunnerNonEnglishTranslatesToEnglishOnly(t *testing.T) {
	store := jobs.NewMemoryStore()
	runner := newTestRunner(store, func(d *testDeps) {
		d.translate = &stubTranslator{lang: "hi"}
	})

	_, err := store.Create(context.Background(), "job-1", nil)
	require.NoError(t, err)

	runner.Dispatch("job-1", Submission{Type: "text", Text: "some hindi text"})

	job := waitForTerminal(t, store, "job-1")
	assert.Equal(t, models.JobStatusCompleted, job.Status)
	assert.Equal(t, "hi", job.Result.Language)
	require.Len(t, job.Result.Translations, 1)
	assert.Contains(t, job.Result.Translations, "en")
}

func TestRunnerDownloadFailureFreezesProgress(t *testing.T) {
	store := jobs.NewMemoryStore()
	runner := newTestRunner(store, func(d *testDeps) {
		d.downloader = &stubDownloader{err: errors.New("connection refused")}
	})

	_, err := store.Create(context.Background(), "job-1", nil)
	require.NoError(t, err)

	runner.Dispatch("job-1", Submission{Type: "url", URL: "https://example.com/a.mp3"})

	job := waitForTerminal(t, store, "job-1")
	assert.Equal(t, models.JobStatusFailed, job.Status)
	assert.Contains(t, job.Error, "download failed")
	assert.Equal(t, 0.0, job.Progress)
	assert.Nil(t, job.Result)
}

func TestRunnerTranscriptionFailure(t *testing.T) {
	store := jobs.NewMemoryStore()
	runner := newTestRunner(store, func(d *testDeps) {
		d.transcribe = &stubTranscriber{err: errors.New("whisper crashed")}
	})

	_, err := store.Create(context.Background(), "job-1", nil)
	require.NoError(t, err)

	runner.Dispatch("job-1", Submission{Type: "url", URL: "https://example.com/a.mp3"})

	job := waitForTerminal(t, store, "job-1")
	assert.Equal(t, models.JobStatusFailed, job.Status)
	assert.Contains(t, job.Error, "transcription failed")
	// Progress frozen at the last completed stage
	assert.Equal(t, models.ProgressExtracted, job.Progress)
}

func TestRunnerTranslationFailureFailsJob(t *testing.T) {
	store := jobs.NewMemoryStore()
	runner := newTestRunner(store, func(d *testDeps) {
		d.translate = &stubTranslator{err: errors.New("no models reachable")}
	})

	_, err := store.Create(context.Background(), "job-1", nil)
	require.NoError(t, err)

	runner.Dispatch("job-1", Submission{Type: "text", Text: "plain english text"})

	job := waitForTerminal(t, store, "job-1")
	assert.Equal(t, models.JobStatusFailed, job.Status)
	assert.Contains(t, job.Error, "translation")
	// Progress frozen at the last completed stage
	assert.Equal(t, models.ProgressSentiment, job.Progress)
	assert.Nil(t, job.Result)
}

func TestRunnerTranslatesFullTranscript(t *testing.T) {
	store := jobs.NewMemoryStore()
	translate := &stubTranslator{lang: "hi"}
	runner := newTestRunner(store, func(d *testDeps) {
		d.translate = translate
	})

	_, err := store.Create(context.Background(), "job-1", nil)
	require.NoError(t, err)

	runner.Dispatch("job-1", Submission{Type: "text", Text: "the whole transcript goes to the translator"})

	job := waitForTerminal(t, store, "job-1")
	require.Equal(t, models.JobStatusCompleted, job.Status)
	require.Len(t, translate.received, 1)
	assert.Equal(t, "the whole transcript goes to the translator", translate.received[0])
}

func TestRunnerPassesSegmentsToChapters(t *testing.T) {
	store := jobs.NewMemoryStore()
	segments := []models.TranscriptSegment{
		{Start: 0, End: 40, Text: "opening words"},
		{Start: 40, End: 90, Text: "Chapter 1: the middle part"},
	}
	extractor := &stubChapters{}
	runner := newTestRunner(store, func(d *testDeps) {
		d.transcribe = &stubTranscriber{transcript: &models.Transcript{
			Text:     "opening words Chapter 1: the middle part",
			Segments: segments,
		}}
		d.chapters = extractor
	})

	_, err := store.Create(context.Background(), "job-1", nil)
	require.NoError(t, err)

	runner.Dispatch("job-1", Submission{Type: "url", URL: "https://example.com/a.mp3"})

	job := waitForTerminal(t, store, "job-1")
	require.Equal(t, models.JobStatusCompleted, job.Status)
	assert.Equal(t, segments, extractor.segments)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
