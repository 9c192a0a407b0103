package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/summarize-anything/summarize-api/pkg/config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "summarize-api",
	Short: "Summarize Anything API server",
	Long: `Summarize Anything API - a media summarization pipeline

Submit a URL, file or raw text and the pipeline downloads the media,
extracts audio, transcribes it and derives summaries, chapters, a quiz,
sentiment analysis and translations.

Features:
  • URL and file submission with async job tracking
  • Transcription via hosted inference or a local whisper model
  • Multi-model summarization with local fallback
  • Chapter extraction, quiz generation, sentiment and translation`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// NewRootCmd creates a new root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	cobra.OnInitialize(loadConfig)

	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
}

// loadConfig loads the configuration when a command needs it
// This is called lazily only when a command that needs config runs
func loadConfig() {
	cmd, _, _ := rootCmd.Find(os.Args[1:])
	if cmd != nil && cmd.Name() == "version" {
		return // Version command doesn't need config
	}

	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}
}
