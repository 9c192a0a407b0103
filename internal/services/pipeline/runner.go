package pipeline

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/summarize-anything/summarize-api/internal/models"
	"github.com/summarize-anything/summarize-api/internal/services/jobs"
	"github.com/summarize-anything/summarize-api/internal/services/translator"
	"github.com/summarize-anything/summarize-api/pkg/download"
)

// Submission describes one piece of media to process
type Submission struct {
	// Type is "url", "file" or "text"
	Type string
	// URL of the media, when Type is url
	URL string
	// FilePath of an already saved upload, when Type is file
	FilePath string
	// Text to analyze directly, when Type is text
	Text string
}

// Config holds pipeline settings
type Config struct {
	JobTimeout       time.Duration
	SecondaryTargets []string
}

// Runner executes the processing pipeline for submitted jobs. Each dispatch
// spawns one goroutine that walks the stages in order and checkpoints
// progress in the job store after each one.
type Runner struct {
	store      jobs.Store
	downloader Downloader
	media      MediaProcessor
	transcribe Transcriber
	summarize  Summarizer
	quiz       QuizGenerator
	sentiment  SentimentAnalyzer
	translate  LanguageTranslator
	chapters   ChapterExtractor
	config     Config
}

// NewRunner creates a pipeline runner
func NewRunner(
	store jobs.Store,
	downloader Downloader,
	media MediaProcessor,
	transcribe Transcriber,
	summarize Summarizer,
	quiz QuizGenerator,
	sentiment SentimentAnalyzer,
	translate LanguageTranslator,
	chapters ChapterExtractor,
	config Config,
) *Runner {
	if config.JobTimeout <= 0 {
		config.JobTimeout = 30 * time.Minute
	}
	return &Runner{
		store:      store,
		downloader: downloader,
		media:      media,
		transcribe: transcribe,
		summarize:  summarize,
		quiz:       quiz,
		sentiment:  sentiment,
		translate:  translate,
		chapters:   chapters,
		config:     config,
	}
}

// Dispatch starts processing a job in the background. The job must already
// exist in the store.
func (r *Runner) Dispatch(jobID string, submission Submission) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), r.config.JobTimeout)
		defer cancel()

		start := time.Now()
		log.Printf("[DEBUG] Job %s started: type=%s", jobID, submission.Type)

		if err := r.run(ctx, jobID, submission); err != nil {
			log.Printf("[ERROR] Job %s failed after %s: %v", jobID, time.Since(start), err)
			// The job context may already be expired; the failure record
			// still has to land.
			recordCtx, recordCancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer recordCancel()
			if _, updateErr := r.store.Update(recordCtx, jobID, jobs.FailureUpdate(err.Error())); updateErr != nil {
				log.Printf("[ERROR] Job %s failure could not be recorded: %v", jobID, updateErr)
			}
			return
		}

		log.Printf("[DEBUG] Job %s completed in %s", jobID, time.Since(start))
	}()
}

func (r *Runner) run(ctx context.Context, jobID string, submission Submission) error {
	result := &models.Result{}

	var mediaPath string
	var duration float64
	var isVideo bool

	if submission.Type == "text" {
		// Direct text skips the media stages; the early milestones are still
		// recorded in order so clients see a consistent progression.
		result.Transcript = strings.TrimSpace(submission.Text)
		for _, p := range []float64{models.ProgressDownloaded, models.ProgressExtracted} {
			if _, err := r.store.Update(ctx, jobID, jobs.ProgressUpdate(p)); err != nil {
				return err
			}
		}
		if _, err := r.store.Update(ctx, jobID, jobs.Update{
			Status:   statusPtr(models.JobStatusSummarizing),
			Progress: floatPtr(models.ProgressTranscribed),
		}); err != nil {
			return err
		}
	} else {
		var err error
		mediaPath, err = r.acquireMedia(ctx, jobID, submission)
		if err != nil {
			return err
		}
		defer download.CleanupFile(mediaPath)

		duration, isVideo = r.probeMedia(ctx, mediaPath)

		audioPath, err := r.extractAudio(ctx, jobID, mediaPath)
		if err != nil {
			return err
		}
		defer download.CleanupFile(audioPath)

		transcript, err := r.transcribeAudio(ctx, jobID, audioPath)
		if err != nil {
			return err
		}
		result.Transcript = transcript.Text
		result.Segments = transcript.Segments
	}

	if strings.TrimSpace(result.Transcript) == "" {
		return fmt.Errorf("no transcript could be produced")
	}

	result.Language = r.translate.DetectLanguage(ctx, result.Transcript)

	if duration <= 0 {
		duration = estimateDuration(result)
	}
	result.Chapters = r.chapters.Extract(result.Transcript, result.Segments, duration)

	summaries, err := r.summarize.Summarize(ctx, result.Transcript)
	if err != nil {
		return fmt.Errorf("summarization failed: %w", err)
	}
	result.Summaries = *summaries
	if _, err := r.store.Update(ctx, jobID, jobs.ProgressUpdate(models.ProgressSummarized)); err != nil {
		return err
	}

	quizResult, err := r.quiz.Generate(ctx, result.Transcript)
	if err != nil {
		return fmt.Errorf("quiz generation failed: %w", err)
	}
	result.Quiz = *quizResult
	if _, err := r.store.Update(ctx, jobID, jobs.ProgressUpdate(models.ProgressQuizDone)); err != nil {
		return err
	}

	sentimentResult, err := r.sentiment.Analyze(ctx, result.Transcript)
	if err != nil {
		return fmt.Errorf("sentiment analysis failed: %w", err)
	}
	result.Sentiment = *sentimentResult
	if _, err := r.store.Update(ctx, jobID, jobs.ProgressUpdate(models.ProgressSentiment)); err != nil {
		return err
	}

	if err := r.addTranslations(ctx, result); err != nil {
		return err
	}

	if isVideo && mediaPath != "" {
		if thumbPath, err := r.media.GenerateThumbnail(ctx, mediaPath); err == nil {
			result.ThumbnailPath = thumbPath
		} else {
			log.Printf("[DEBUG] Job %s thumbnail skipped: %v", jobID, err)
		}
	}

	_, err = r.store.Update(ctx, jobID, jobs.CompletionUpdate(result))
	return err
}

func (r *Runner) acquireMedia(ctx context.Context, jobID string, submission Submission) (string, error) {
	switch submission.Type {
	case "url":
		if _, err := r.store.Update(ctx, jobID, jobs.StatusUpdate(models.JobStatusDownloading)); err != nil {
			return "", err
		}
		mediaPath, err := r.downloader.Download(ctx, submission.URL)
		if err != nil {
			return "", fmt.Errorf("download failed: %w", err)
		}
		if _, err := r.store.Update(ctx, jobID, jobs.ProgressUpdate(models.ProgressDownloaded)); err != nil {
			return "", err
		}
		return mediaPath, nil
	case "file":
		if _, err := r.store.Update(ctx, jobID, jobs.Update{
			Status:   statusPtr(models.JobStatusDownloading),
			Progress: floatPtr(models.ProgressDownloaded),
		}); err != nil {
			return "", err
		}
		return submission.FilePath, nil
	default:
		return "", fmt.Errorf("unknown submission type %q", submission.Type)
	}
}

func (r *Runner) probeMedia(ctx context.Context, mediaPath string) (duration float64, isVideo bool) {
	metadata, err := r.media.GetMetadata(ctx, mediaPath)
	if err != nil {
		log.Printf("[DEBUG] Metadata probe failed for %s: %v", filepath.Base(mediaPath), err)
		return 0, false
	}
	return metadata.Duration, isVideoFormat(mediaPath)
}

func (r *Runner) extractAudio(ctx context.Context, jobID, mediaPath string) (string, error) {
	if _, err := r.store.Update(ctx, jobID, jobs.StatusUpdate(models.JobStatusExtracting)); err != nil {
		return "", err
	}
	audioPath, err := r.media.ExtractAudio(ctx, mediaPath)
	if err != nil {
		return "", fmt.Errorf("audio extraction failed: %w", err)
	}
	if _, err := r.store.Update(ctx, jobID, jobs.ProgressUpdate(models.ProgressExtracted)); err != nil {
		return "", err
	}
	return audioPath, nil
}

func (r *Runner) transcribeAudio(ctx context.Context, jobID, audioPath string) (*models.Transcript, error) {
	if _, err := r.store.Update(ctx, jobID, jobs.StatusUpdate(models.JobStatusTranscribing)); err != nil {
		return nil, err
	}
	transcript, err := r.transcribe.Transcribe(ctx, audioPath)
	if err != nil {
		return nil, fmt.Errorf("transcription failed: %w", err)
	}
	if _, err := r.store.Update(ctx, jobID, jobs.Update{
		Status:   statusPtr(models.JobStatusSummarizing),
		Progress: floatPtr(models.ProgressTranscribed),
	}); err != nil {
		return nil, err
	}
	return transcript, nil
}

// addTranslations fills in the translation map from the full transcript. A
// non-English transcript is translated to English; an English one fans out
// to the secondary targets. A failed translation fails the job like any
// other stage.
func (r *Runner) addTranslations(ctx context.Context, result *models.Result) error {
	targets := translator.SecondaryTargets(result.Language, r.config.SecondaryTargets)
	if len(targets) == 0 {
		return nil
	}

	result.Translations = make(map[string]models.TranslationResult, len(targets))
	for _, target := range targets {
		tr, err := r.translate.Translate(ctx, result.Transcript, result.Language, target)
		if err != nil {
			return fmt.Errorf("translation to %s failed: %w", target, err)
		}
		result.Translations[target] = *tr
	}
	return nil
}

// estimateDuration guesses a duration when no media metadata exists, from
// segment timestamps or a 150 words-per-minute reading rate.
func estimateDuration(result *models.Result) float64 {
	if n := len(result.Segments); n > 0 {
		if end := result.Segments[n-1].End; end > 0 {
			return end
		}
	}
	words := len(strings.Fields(result.Transcript))
	duration := float64(words) / 150.0 * 60.0
	if duration < 60 {
		duration = 60
	}
	return duration
}

var videoExtensions = map[string]bool{
	".mp4": true, ".mkv": true, ".mov": true, ".avi": true, ".webm": true, ".flv": true,
}

func isVideoFormat(path string) bool {
	return videoExtensions[strings.ToLower(filepath.Ext(path))]
}

func statusPtr(s models.JobStatus) *models.JobStatus { return &s }
func floatPtr(f float64) *float64                    { return &f }
