package ffmpeg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReplaceExtension(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		newExt   string
		expected string
	}{
		{"mp4 to wav", "/tmp/video.mp4", ".wav", "/tmp/video.wav"},
		{"no extension", "/tmp/video", ".wav", "/tmp/video.wav"},
		{"dot in directory", "/tmp/my.dir/video", ".wav", "/tmp/my.dir/video.wav"},
		{"double extension", "/tmp/archive.tar.gz", ".jpg", "/tmp/archive.tar.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, replaceExtension(tt.path, tt.newExt))
		})
	}
}

func TestValidateBinariesMissing(t *testing.T) {
	f := New("definitely-not-ffmpeg-xyz", "definitely-not-ffprobe-xyz", 0)
	err := f.ValidateBinaries()
	assert.ErrorIs(t, err, ErrFFmpegNotFound)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 10))
	assert.Equal(t, "abcde...", truncate("abcdefghij", 5))
}
