package download

import (
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	apperrors "github.com/summarize-anything/summarize-api/pkg/errors"
)

// urlPattern matches http(s) URLs with a hostname, IP or localhost
var urlPattern = regexp.MustCompile(`(?i)^https?://(?:(?:[A-Z0-9](?:[A-Z0-9-]{0,61}[A-Z0-9])?\.)+[A-Z]{2,6}\.?|localhost|\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3})(?::\d+)?(?:/?|[/?]\S+)$`)

// Options configures the download behavior
type Options struct {
	DownloadDir string        // Directory for downloaded media
	UploadDir   string        // Directory for saved uploads
	MaxSize     int64         // Maximum file size in bytes (0 = no limit)
	Timeout     time.Duration // Download timeout
	UserAgent   string        // User agent string
	YtDlpPath   string        // Path to the yt-dlp binary for non-direct URLs
}

// DefaultOptions returns default download options
func DefaultOptions() Options {
	return Options{
		DownloadDir: "./downloads",
		UploadDir:   "./uploads",
		MaxSize:     500 * 1024 * 1024, // 500MB default max
		Timeout:     5 * time.Minute,
		UserAgent:   "SummarizeAnythingAPI/1.0",
		YtDlpPath:   "yt-dlp",
	}
}

// Downloader fetches media from URLs and stores client uploads
type Downloader struct {
	client  *http.Client
	options Options
}

// NewDownloader creates a new downloader with the given options
func NewDownloader(options Options) *Downloader {
	return &Downloader{
		client: &http.Client{
			Timeout: options.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				IdleConnTimeout:     30 * time.Second,
				DisableCompression:  true, // Don't compress media payloads
				TLSHandshakeTimeout: 10 * time.Second,
			},
		},
		options: options,
	}
}

// ValidateURL checks the URL is well-formed before any download is attempted
func ValidateURL(url string) error {
	if !urlPattern.MatchString(url) {
		return apperrors.ValidationError("url", fmt.Sprintf("invalid URL format: %s", url))
	}
	return nil
}

// Download fetches media from a URL and returns the local file path.
// Direct media URLs are fetched over HTTP; anything else (video platforms,
// playlists) goes through yt-dlp.
func (d *Downloader) Download(ctx context.Context, url string) (string, error) {
	if err := ValidateURL(url); err != nil {
		return "", err
	}

	if err := os.MkdirAll(d.options.DownloadDir, 0755); err != nil {
		return "", fmt.Errorf("creating download directory: %w", err)
	}

	if isDirectMediaURL(url) {
		return d.downloadDirect(ctx, url)
	}
	return d.downloadWithYtDlp(ctx, url)
}

// downloadDirect streams a direct media URL to the download directory
func (d *Downloader) downloadDirect(ctx context.Context, url string) (string, error) {
	log.Printf("[DEBUG] Starting direct download from %s", url)

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", d.options.UserAgent)
	req.Header.Set("Accept", "audio/*,video/*,*/*")

	resp, err := d.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("downloading media: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusPartialContent {
		return "", fmt.Errorf("server returned status %d", resp.StatusCode)
	}

	if d.options.MaxSize > 0 && resp.ContentLength > d.options.MaxSize {
		return "", fmt.Errorf("file too large: %d bytes (max %d)", resp.ContentLength, d.options.MaxSize)
	}

	out, err := os.CreateTemp(d.options.DownloadDir, "media_*"+mediaExtension(url))
	if err != nil {
		return "", fmt.Errorf("creating media file: %w", err)
	}
	defer out.Close()

	var reader io.Reader = resp.Body
	if d.options.MaxSize > 0 {
		reader = io.LimitReader(resp.Body, d.options.MaxSize)
	}

	written, err := io.Copy(out, reader)
	if err != nil {
		os.Remove(out.Name())
		return "", fmt.Errorf("writing media file: %w", err)
	}

	log.Printf("[DEBUG] Downloaded %d bytes to %s", written, out.Name())
	return out.Name(), nil
}

// downloadWithYtDlp shells out to yt-dlp for URLs that are not direct media files
func (d *Downloader) downloadWithYtDlp(ctx context.Context, url string) (string, error) {
	if _, err := exec.LookPath(d.options.YtDlpPath); err != nil {
		return "", fmt.Errorf("yt-dlp binary not found at %s: %w", d.options.YtDlpPath, err)
	}

	log.Printf("[DEBUG] Downloading %s via yt-dlp", url)

	template := filepath.Join(d.options.DownloadDir, "%(id)s.%(ext)s")
	cmd := exec.CommandContext(ctx, d.options.YtDlpPath,
		"--format", "best",
		"--no-playlist",
		"--quiet",
		"--no-warnings",
		"--print", "after_move:filepath",
		"--output", template,
		url,
	)

	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("yt-dlp failed: %w", err)
	}

	path := strings.TrimSpace(string(output))
	if path == "" {
		return "", fmt.Errorf("yt-dlp produced no output file for %s", url)
	}

	log.Printf("[DEBUG] yt-dlp saved %s", path)
	return path, nil
}

// SaveUpload writes an uploaded file into the upload directory and returns its path
func (d *Downloader) SaveUpload(file *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(d.options.UploadDir, 0755); err != nil {
		return "", fmt.Errorf("creating upload directory: %w", err)
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("opening upload: %w", err)
	}
	defer src.Close()

	// Keep only the base name so a crafted filename cannot escape the upload dir
	name := filepath.Base(filepath.Clean(file.Filename))
	dstPath := filepath.Join(d.options.UploadDir, name)

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("creating upload file: %w", err)
	}
	defer dst.Close()

	written, err := io.Copy(dst, src)
	if err != nil {
		os.Remove(dstPath)
		return "", fmt.Errorf("saving upload: %w", err)
	}

	log.Printf("[DEBUG] Saved upload %s (%d bytes)", dstPath, written)
	return dstPath, nil
}

// CleanupFile removes a temporary media file, ignoring already-deleted files
func CleanupFile(path string) error {
	if path == "" {
		return nil
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// isDirectMediaURL reports whether a URL points straight at a media file
func isDirectMediaURL(url string) bool {
	trimmed := url
	if idx := strings.IndexAny(trimmed, "?#"); idx >= 0 {
		trimmed = trimmed[:idx]
	}
	switch strings.ToLower(filepath.Ext(trimmed)) {
	case ".mp3", ".wav", ".m4a", ".ogg", ".flac", ".aac", ".mp4", ".webm", ".mkv", ".mov", ".avi":
		return true
	}
	return false
}

// mediaExtension extracts the file extension from a URL, defaulting to .mp3
func mediaExtension(url string) string {
	trimmed := url
	if idx := strings.IndexAny(trimmed, "?#"); idx >= 0 {
		trimmed = trimmed[:idx]
	}
	if ext := filepath.Ext(trimmed); ext != "" && len(ext) <= 5 {
		return ext
	}
	return ".mp3"
}
