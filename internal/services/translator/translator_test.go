package translator

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/summarize-anything/summarize-api/internal/services/inference"
)

func TestDetectByScript(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"hello world", "en"},
		{"नमस्ते दुनिया", "hi"},
		{"வணக்கம் உலகம்", "ta"},
		{"", "en"},
		{"mixed नमस्ते text", "hi"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DetectByScript(tt.text), "text: %q", tt.text)
	}
}

func TestSupportedTarget(t *testing.T) {
	assert.True(t, SupportedTarget("ta"))
	assert.True(t, SupportedTarget("hi"))
	assert.True(t, SupportedTarget("en"))
	assert.False(t, SupportedTarget("fr"))
}

func TestTranslateRemote(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "Helsinki-NLP/opus-mt-en-ta")
		w.Write([]byte(`[{"translation_text":"தமிழ் உரை"}]`))
	}))
	defer server.Close()

	client := inference.NewClient(server.URL, "test-token", time.Minute)
	tr := New(client, Config{})

	result, err := tr.Translate(context.Background(), "some english text", "en", "ta")
	require.NoError(t, err)
	assert.Equal(t, "தமிழ் உரை", result.TranslatedText)
	assert.Equal(t, "en", result.SourceLang)
	assert.Equal(t, "ta", result.TargetLang)
}

func TestTranslateUnsupportedTarget(t *testing.T) {
	client := inference.NewClient("https://example.com", "", time.Minute)
	tr := New(client, Config{})

	_, err := tr.Translate(context.Background(), "text", "en", "de")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported target")
}

func TestTranslateFallsBackToLocalRuntime(t *testing.T) {
	local := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/translate"))
		w.Write([]byte(`{"translation_text":"अनुवादित पाठ"}`))
	}))
	defer local.Close()

	// Unconfigured hosted client forces the local path
	client := inference.NewClient("https://example.com", "", time.Minute)
	tr := New(client, Config{LocalRuntimeURL: local.URL})

	result, err := tr.Translate(context.Background(), "some english text", "en", "hi")
	require.NoError(t, err)
	assert.Equal(t, "अनुवादित पाठ", result.TranslatedText)
}

func TestTranslateBothPathsFail(t *testing.T) {
	client := inference.NewClient("https://example.com", "", time.Minute)
	tr := New(client, Config{})

	_, err := tr.Translate(context.Background(), "text", "en", "hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "local inference runtime not configured")
}

func TestDetectLanguageRemote(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[[{"label":"HI","score":0.98},{"label":"en","score":0.02}]]`))
	}))
	defer server.Close()

	client := inference.NewClient(server.URL, "test-token", time.Minute)
	tr := New(client, Config{})

	assert.Equal(t, "hi", tr.DetectLanguage(context.Background(), "some text"))
}

func TestDetectLanguageFallsBackToScript(t *testing.T) {
	client := inference.NewClient("https://example.com", "", time.Minute)
	tr := New(client, Config{})

	assert.Equal(t, "ta", tr.DetectLanguage(context.Background(), "வணக்கம்"))
	assert.Equal(t, "en", tr.DetectLanguage(context.Background(), "plain text"))
}

func TestSecondaryTargets(t *testing.T) {
	assert.Equal(t, []string{"ta", "hi"}, SecondaryTargets("en", []string{"ta", "hi"}))
	assert.Equal(t, []string{"en"}, SecondaryTargets("hi", []string{"ta", "hi"}))
	assert.Equal(t, []string{"en"}, SecondaryTargets("ta", []string{"ta", "hi"}))
	// Unsupported configured targets are dropped
	assert.Equal(t, []string{"ta"}, SecondaryTargets("en", []string{"ta", "fr"}))
}
