package ffmpeg

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
)

// probeOutput mirrors the ffprobe -print_format json output we consume
type probeOutput struct {
	Streams []struct {
		CodecType  string `json:"codec_type"`
		SampleRate string `json:"sample_rate"`
		Channels   int    `json:"channels"`
	} `json:"streams"`
	Format struct {
		FormatName string `json:"format_name"`
		Duration   string `json:"duration"`
		BitRate    string `json:"bit_rate"`
	} `json:"format"`
}

// GetMetadata probes a media file and returns duration and stream information
func (f *FFmpeg) GetMetadata(ctx context.Context, mediaPath string) (*Metadata, error) {
	runCtx := ctx
	if f.timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(runCtx, f.ffprobePath,
		"-v", "quiet",
		"-print_format", "json",
		"-show_format",
		"-show_streams",
		mediaPath,
	)

	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidMedia, mediaPath)
	}

	var probe probeOutput
	if err := json.Unmarshal(output, &probe); err != nil {
		return nil, fmt.Errorf("parsing ffprobe output: %w", err)
	}

	metadata := &Metadata{Format: probe.Format.FormatName}

	if probe.Format.Duration != "" {
		if d, err := strconv.ParseFloat(probe.Format.Duration, 64); err == nil {
			metadata.Duration = d
		}
	}
	if probe.Format.BitRate != "" {
		if b, err := strconv.ParseInt(probe.Format.BitRate, 10, 64); err == nil {
			metadata.Bitrate = b
		}
	}

	for _, stream := range probe.Streams {
		if stream.CodecType == "audio" {
			metadata.Channels = stream.Channels
			if sr, err := strconv.Atoi(stream.SampleRate); err == nil {
				metadata.SampleRate = sr
			}
			break
		}
	}

	return metadata, nil
}
