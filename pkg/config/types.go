package config

import "time"

// Config holds the complete application configuration
type Config struct {
	Environment   string              `mapstructure:"environment"`
	Server        ServerConfig        `mapstructure:"server"`
	Database      DatabaseConfig      `mapstructure:"database"`
	Storage       StorageConfig       `mapstructure:"storage"`
	Inference     InferenceConfig     `mapstructure:"inference"`
	OpenAI        OpenAIConfig        `mapstructure:"openai"`
	Transcription TranscriptionConfig `mapstructure:"transcription"`
	Summarize     SummarizeConfig     `mapstructure:"summarize"`
	Translate     TranslateConfig     `mapstructure:"translate"`
	Processing    ProcessingConfig    `mapstructure:"processing"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxHeaderBytes  int           `mapstructure:"max_header_bytes"`
}

// DatabaseConfig holds persistence settings. An empty path means jobs are
// kept in memory only.
type DatabaseConfig struct {
	Path    string `mapstructure:"path"`
	Verbose bool   `mapstructure:"verbose"`
}

// StorageConfig holds directories for downloaded and uploaded media
type StorageConfig struct {
	DownloadDir string `mapstructure:"download_dir"`
	UploadDir   string `mapstructure:"upload_dir"`
	TempDir     string `mapstructure:"temp_dir"`
}

// InferenceConfig holds settings for the hosted inference API and the
// optional local inference runtime used as fallback.
type InferenceConfig struct {
	APIKey          string        `mapstructure:"api_key"`
	BaseURL         string        `mapstructure:"base_url"`
	Timeout         time.Duration `mapstructure:"timeout"`
	LocalRuntimeURL string        `mapstructure:"local_runtime_url"`
}

// OpenAIConfig holds settings for the OpenAI-compatible chat endpoint used
// by the quiz generator.
type OpenAIConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
	Model   string `mapstructure:"model"`
}

// TranscriptionConfig holds whisper settings for the local transcription path
type TranscriptionConfig struct {
	RemoteModel string `mapstructure:"remote_model"`
	WhisperPath string `mapstructure:"whisper_path"`
	ModelPath   string `mapstructure:"model_path"`
	Language    string `mapstructure:"language"`
}

// SummarizeConfig holds the default summarization model set
type SummarizeConfig struct {
	Models []string `mapstructure:"models"`
}

// TranslateConfig holds the secondary translation targets used when the
// source material is already English.
type TranslateConfig struct {
	SecondaryTargets []string `mapstructure:"secondary_targets"`
}

// ProcessingConfig holds media tooling and pipeline settings
type ProcessingConfig struct {
	FFmpegPath    string        `mapstructure:"ffmpeg_path"`
	FFprobePath   string        `mapstructure:"ffprobe_path"`
	FFmpegTimeout time.Duration `mapstructure:"ffmpeg_timeout"`
	YtDlpPath     string        `mapstructure:"ytdlp_path"`
	JobTimeout    time.Duration `mapstructure:"job_timeout"`
}
