package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"
)

// ErrNotConfigured is returned when a remote call is attempted without an API key
var ErrNotConfigured = fmt.Errorf("inference API key not configured")

// Client talks to a hosted model-inference API. Models are addressed by
// repository ID and invoked with a bearer token, either as a JSON payload or
// as raw file bytes.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates an inference client. An empty token produces a client
// whose Configured() reports false; callers use that to skip straight to
// local fallbacks.
func NewClient(baseURL, token string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Configured reports whether remote inference can be attempted
func (c *Client) Configured() bool {
	return c.token != ""
}

// PostJSON sends a JSON payload to a model endpoint and decodes the response
// into out.
func (c *Client) PostJSON(ctx context.Context, model string, payload interface{}, out interface{}) error {
	if !c.Configured() {
		return ErrNotConfigured
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding request for %s: %w", model, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.modelURL(model), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating request for %s: %w", model, err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, model, out)
}

// PostFile streams a file's bytes to a model endpoint and decodes the
// response into out. Used for audio transcription.
func (c *Client) PostFile(ctx context.Context, model, filePath, contentType string, out interface{}) error {
	if !c.Configured() {
		return ErrNotConfigured
	}

	file, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("opening %s: %w", filePath, err)
	}
	defer file.Close()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.modelURL(model), file)
	if err != nil {
		return fmt.Errorf("creating request for %s: %w", model, err)
	}
	req.Header.Set("Content-Type", contentType)

	return c.do(req, model, out)
}

func (c *Client) do(req *http.Request, model string, out interface{}) error {
	req.Header.Set("Authorization", "Bearer "+c.token)

	log.Printf("[DEBUG] Inference request: model=%s", model)
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("calling %s: %w", model, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		return fmt.Errorf("reading response from %s: %w", model, err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Printf("[ERROR] Inference request failed: model=%s status=%d elapsed=%s", model, resp.StatusCode, time.Since(start))
		return fmt.Errorf("model %s returned status %d: %s", model, resp.StatusCode, truncate(string(respBody), 200))
	}

	log.Printf("[DEBUG] Inference request completed: model=%s elapsed=%s", model, time.Since(start))

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decoding response from %s: %w", model, err)
	}
	return nil
}

func (c *Client) modelURL(model string) string {
	return fmt.Sprintf("%s/models/%s", c.baseURL, model)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
