package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

var (
	once    sync.Once
	initErr error
)

// Init initializes the configuration system
// This should be called once at application startup
func Init() error {
	once.Do(func() {
		setDefaults()

		viper.SetEnvPrefix("SUMMARIZE")
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.AutomaticEnv()

		configPath := filepath.Clean("./config/settings.yaml")
		viper.SetConfigFile(configPath)

		if err := viper.ReadInConfig(); err != nil {
			// Missing config file is fine - defaults and env vars apply
			if !os.IsNotExist(err) {
				initErr = fmt.Errorf("error reading config file %s: %w", configPath, err)
				return
			}
		}

		if err := validate(); err != nil {
			initErr = fmt.Errorf("invalid configuration: %w", err)
		}
	})

	return initErr
}

// GetConfig returns the current configuration as a struct
// Init() must be called before using this
func GetConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &config, nil
}

// GetString returns a string config value
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDuration returns a time.Duration config value
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

// validate validates the configuration using Viper values
func validate() error {
	port := viper.GetInt("server.port")
	if port <= 0 || port > 65535 {
		return fmt.Errorf("invalid server port: %d", port)
	}

	if viper.GetString("inference.api_key") == "" {
		fmt.Println("Warning: No inference API key configured, all stages will use local fallbacks")
	}

	if viper.GetDuration("inference.timeout") <= 0 {
		viper.Set("inference.timeout", 60*time.Second)
	}

	if viper.GetDuration("processing.job_timeout") <= 0 {
		viper.Set("processing.job_timeout", 30*time.Minute)
	}

	return nil
}

// Validate validates a Config struct (for testing)
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Inference.Timeout <= 0 {
		c.Inference.Timeout = 60 * time.Second
	}

	if c.Processing.JobTimeout <= 0 {
		c.Processing.JobTimeout = 30 * time.Minute
	}

	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("environment", "development")

	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 30*time.Second)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("server.max_header_bytes", 1048576)

	// Database defaults (empty path = in-memory job store)
	viper.SetDefault("database.path", "./data/summarize.db")
	viper.SetDefault("database.verbose", false)

	// Storage defaults
	viper.SetDefault("storage.download_dir", "./downloads")
	viper.SetDefault("storage.upload_dir", "./uploads")
	viper.SetDefault("storage.temp_dir", os.TempDir())

	// Inference defaults
	viper.SetDefault("inference.base_url", "https://api-inference.huggingface.co")
	viper.SetDefault("inference.timeout", 60*time.Second)
	viper.SetDefault("inference.local_runtime_url", "")

	// OpenAI-compatible endpoint defaults (quiz generation)
	viper.SetDefault("openai.base_url", "")
	viper.SetDefault("openai.model", "Qwen/Qwen2.5-7B-Instruct")

	// Transcription defaults
	viper.SetDefault("transcription.remote_model", "openai/whisper-large-v3")
	viper.SetDefault("transcription.whisper_path", "whisper-cli")
	viper.SetDefault("transcription.model_path", "./models/ggml-base.en.bin")
	viper.SetDefault("transcription.language", "en")

	// Summarization defaults
	viper.SetDefault("summarize.models", []string{"facebook/bart-large-cnn"})

	// Translation defaults
	viper.SetDefault("translate.secondary_targets", []string{"ta", "hi"})

	// Processing defaults
	viper.SetDefault("processing.ffmpeg_path", "ffmpeg")
	viper.SetDefault("processing.ffprobe_path", "ffprobe")
	viper.SetDefault("processing.ffmpeg_timeout", 5*time.Minute)
	viper.SetDefault("processing.ytdlp_path", "yt-dlp")
	viper.SetDefault("processing.job_timeout", 30*time.Minute)
}
