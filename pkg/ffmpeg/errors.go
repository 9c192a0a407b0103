package ffmpeg

import "errors"

var (
	ErrFFmpegNotFound  = errors.New("ffmpeg binary not found")
	ErrFFprobeNotFound = errors.New("ffprobe binary not found")
	ErrInvalidMedia    = errors.New("invalid or unreadable media file")
	ErrMediaTooLong    = errors.New("media duration exceeds limit")
)
