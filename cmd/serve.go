package cmd

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	openai "github.com/sashabaranov/go-openai"
	"github.com/spf13/cobra"
	"github.com/summarize-anything/summarize-api/api"
	"github.com/summarize-anything/summarize-api/api/types"
	"github.com/summarize-anything/summarize-api/internal/database"
	"github.com/summarize-anything/summarize-api/internal/models"
	"github.com/summarize-anything/summarize-api/internal/services/chapters"
	"github.com/summarize-anything/summarize-api/internal/services/inference"
	"github.com/summarize-anything/summarize-api/internal/services/jobs"
	"github.com/summarize-anything/summarize-api/internal/services/pipeline"
	"github.com/summarize-anything/summarize-api/internal/services/quiz"
	"github.com/summarize-anything/summarize-api/internal/services/report"
	"github.com/summarize-anything/summarize-api/internal/services/sentiment"
	"github.com/summarize-anything/summarize-api/internal/services/summarizer"
	"github.com/summarize-anything/summarize-api/internal/services/transcriber"
	"github.com/summarize-anything/summarize-api/internal/services/translator"
	"github.com/summarize-anything/summarize-api/pkg/config"
	"github.com/summarize-anything/summarize-api/pkg/download"
	apperrors "github.com/summarize-anything/summarize-api/pkg/errors"
	"github.com/summarize-anything/summarize-api/pkg/ffmpeg"
)

var (
	serverHost string
	serverPort int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long: `Start the Summarize Anything API server with the configured settings.

The server accepts media URLs, file uploads and raw text, runs the
processing pipeline asynchronously and serves results over HTTP.

Example:
  summarize-api serve
  summarize-api serve --port 9090
  summarize-api serve --host 0.0.0.0 --port 8080`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	// Server flags
	serveCmd.Flags().StringVar(&serverHost, "host", "", "server host (overrides config)")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "server port (overrides config)")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if serverHost == "" {
		serverHost = cfg.Server.Host
	}
	if serverPort == 0 {
		serverPort = cfg.Server.Port
	}

	deps, db, err := buildDependencies(cfg)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
	}

	address := fmt.Sprintf("%s:%d", serverHost, serverPort)
	server := api.NewServer(address)
	server.SetDependencies(deps)
	if db != nil {
		server.SetDatabase(db)
	}
	if err := server.Initialize(); err != nil {
		return fmt.Errorf("initializing server: %w", err)
	}

	log.Printf("[DEBUG] Starting API server on %s", address)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			serverErr <- fmt.Errorf("server error: %w", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case <-stop:
		log.Printf("[DEBUG] Shutting down server")
	case err := <-serverErr:
		log.Printf("[ERROR] %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("forced shutdown: %w", err)
	}

	log.Printf("[DEBUG] Server stopped")
	return nil
}

// buildDependencies wires the job store, pipeline and handler dependencies
// from configuration. Without a database path the job store is in-memory.
func buildDependencies(cfg *config.Config) (*types.Dependencies, *database.DB, error) {
	var db *database.DB
	var store jobs.Store

	if cfg.Database.Path != "" {
		var err error
		db, err = database.Initialize(cfg.Database.Path, cfg.Database.Verbose)
		if err != nil {
			return nil, nil, apperrors.Wrap(err, apperrors.ErrCodeDatabaseConnection, "initializing database")
		}
		if err := db.AutoMigrate(&models.Job{}); err != nil {
			return nil, nil, fmt.Errorf("migrating database: %w", err)
		}
		store = jobs.NewRepository(db.DB)
	} else {
		log.Printf("[DEBUG] No database configured, using in-memory job store")
		store = jobs.NewMemoryStore()
	}

	downloadOpts := download.DefaultOptions()
	if cfg.Storage.DownloadDir != "" {
		downloadOpts.DownloadDir = cfg.Storage.DownloadDir
	}
	if cfg.Storage.UploadDir != "" {
		downloadOpts.UploadDir = cfg.Storage.UploadDir
	}
	downloadOpts.YtDlpPath = cfg.Processing.YtDlpPath
	downloader := download.NewDownloader(downloadOpts)

	media := ffmpeg.New(cfg.Processing.FFmpegPath, cfg.Processing.FFprobePath, cfg.Processing.FFmpegTimeout)
	if err := media.ValidateBinaries(); err != nil {
		log.Printf("[DEBUG] Media binaries not fully available: %v", err)
	}

	client := inference.NewClient(cfg.Inference.BaseURL, cfg.Inference.APIKey, cfg.Inference.Timeout)

	var chatClient *openai.Client
	if cfg.OpenAI.APIKey != "" {
		chatConfig := openai.DefaultConfig(cfg.OpenAI.APIKey)
		if cfg.OpenAI.BaseURL != "" {
			chatConfig.BaseURL = cfg.OpenAI.BaseURL
		}
		chatClient = openai.NewClientWithConfig(chatConfig)
	}

	transcribe := transcriber.New(client, transcriber.Config{
		RemoteModel: cfg.Transcription.RemoteModel,
		WhisperPath: cfg.Transcription.WhisperPath,
		ModelPath:   cfg.Transcription.ModelPath,
		Language:    cfg.Transcription.Language,
	})
	summarize := summarizer.New(client, cfg.Summarize.Models)
	quizGen := quiz.New(chatClient, quiz.Config{Model: cfg.OpenAI.Model})
	sentimentAnalyzer := sentiment.New(client, sentiment.Config{})
	translate := translator.New(client, translator.Config{
		LocalRuntimeURL: cfg.Inference.LocalRuntimeURL,
	})
	chapterExtractor := chapters.NewExtractor()

	runner := pipeline.NewRunner(
		store,
		downloader,
		media,
		transcribe,
		summarize,
		quizGen,
		sentimentAnalyzer,
		translate,
		chapterExtractor,
		pipeline.Config{
			JobTimeout:       cfg.Processing.JobTimeout,
			SecondaryTargets: cfg.Translate.SecondaryTargets,
		},
	)

	return &types.Dependencies{
		DB:            db,
		JobStore:      store,
		Runner:        runner,
		Downloader:    downloader,
		Translator:    translate,
		ReportBuilder: report.NewBuilder(cfg.Storage.TempDir),
	}, db, nil
}
