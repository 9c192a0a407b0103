package ffmpeg

import (
	"context"
	"fmt"
	"log"
	"os/exec"
	"strings"
	"time"
)

// FFmpeg wraps ffmpeg and ffprobe functionality
type FFmpeg struct {
	ffmpegPath  string
	ffprobePath string
	timeout     time.Duration
}

// New creates a new FFmpeg instance
func New(ffmpegPath, ffprobePath string, timeout time.Duration) *FFmpeg {
	return &FFmpeg{
		ffmpegPath:  ffmpegPath,
		ffprobePath: ffprobePath,
		timeout:     timeout,
	}
}

// ValidateBinaries checks if ffmpeg and ffprobe are available
func (f *FFmpeg) ValidateBinaries() error {
	if _, err := exec.LookPath(f.ffmpegPath); err != nil {
		return fmt.Errorf("%w: %s", ErrFFmpegNotFound, f.ffmpegPath)
	}
	if _, err := exec.LookPath(f.ffprobePath); err != nil {
		return fmt.Errorf("%w: %s", ErrFFprobeNotFound, f.ffprobePath)
	}
	return nil
}

// ExtractAudio converts a media file into 16kHz mono PCM WAV suitable for
// speech-to-text, returning the path of the extracted file.
func (f *FFmpeg) ExtractAudio(ctx context.Context, mediaPath string) (string, error) {
	outputPath := replaceExtension(mediaPath, ".wav")

	runCtx := ctx
	if f.timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	args := []string{
		"-i", mediaPath,
		"-vn",                // drop the video stream
		"-acodec", "pcm_s16le",
		"-ac", "1",
		"-ar", "16000",
		"-y",
		outputPath,
	}

	cmd := exec.CommandContext(runCtx, f.ffmpegPath, args...)
	if output, err := cmd.CombinedOutput(); err != nil {
		log.Printf("[ERROR] ffmpeg audio extraction failed: %v: %s", err, truncate(string(output), 500))
		return "", fmt.Errorf("extracting audio from %s: %w", mediaPath, err)
	}

	log.Printf("[DEBUG] Extracted audio from %s to %s", mediaPath, outputPath)
	return outputPath, nil
}

// GenerateThumbnail captures a frame from the middle of a video, scaled to
// 480px wide, and returns the JPEG path.
func (f *FFmpeg) GenerateThumbnail(ctx context.Context, videoPath string) (string, error) {
	metadata, err := f.GetMetadata(ctx, videoPath)
	if err != nil {
		return "", err
	}

	outputPath := replaceExtension(videoPath, ".jpg")
	midpoint := metadata.Duration / 2

	runCtx := ctx
	if f.timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	args := []string{
		"-ss", fmt.Sprintf("%.2f", midpoint),
		"-i", videoPath,
		"-vframes", "1",
		"-vf", "scale=480:-1",
		"-y",
		outputPath,
	}

	cmd := exec.CommandContext(runCtx, f.ffmpegPath, args...)
	if output, err := cmd.CombinedOutput(); err != nil {
		log.Printf("[ERROR] ffmpeg thumbnail generation failed: %v: %s", err, truncate(string(output), 500))
		return "", fmt.Errorf("generating thumbnail from %s: %w", videoPath, err)
	}

	return outputPath, nil
}

// replaceExtension swaps the extension of a path
func replaceExtension(path, newExt string) string {
	if idx := strings.LastIndex(path, "."); idx > strings.LastIndex(path, "/") {
		return path[:idx] + newExt
	}
	return path + newExt
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
