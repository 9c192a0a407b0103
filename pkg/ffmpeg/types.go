package ffmpeg

import "time"

// Metadata holds probed information about a media file
type Metadata struct {
	Duration   float64 // seconds
	SampleRate int
	Channels   int
	Format     string
	Bitrate    int64
}

// Options configures audio extraction
type Options struct {
	TempDir     string
	MaxDuration time.Duration // 0 = no limit
}
