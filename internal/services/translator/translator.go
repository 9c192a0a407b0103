package translator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/summarize-anything/summarize-api/internal/models"
	"github.com/summarize-anything/summarize-api/internal/services/inference"
)

// Translation models per target language. Non-English sources are translated
// to English only; English sources fan out to the secondary targets.
var targetModels = map[string]string{
	"ta": "Helsinki-NLP/opus-mt-en-ta",
	"hi": "Helsinki-NLP/opus-mt-en-hi",
	"en": "Helsinki-NLP/opus-mt-mul-en",
}

const detectionModel = "papluca/xlm-roberta-base-language-detection"

// Config holds translation settings
type Config struct {
	LocalRuntimeURL string
	MaxChars        int
}

// Translator translates text between the supported languages. The hosted
// translation models are tried first, then a locally resident inference
// runtime if one is configured.
type Translator struct {
	client     *inference.Client
	config     Config
	httpClient *http.Client
}

// New creates a translator
func New(client *inference.Client, config Config) *Translator {
	if config.MaxChars <= 0 {
		config.MaxChars = 4000
	}
	return &Translator{
		client:     client,
		config:     config,
		httpClient: &http.Client{Timeout: 120 * time.Second},
	}
}

// SupportedTarget reports whether a target language can be translated to
func SupportedTarget(lang string) bool {
	_, ok := targetModels[lang]
	return ok
}

// Translate translates text into the target language
func (t *Translator) Translate(ctx context.Context, text, sourceLang, targetLang string) (*models.TranslationResult, error) {
	model, ok := targetModels[targetLang]
	if !ok {
		return nil, fmt.Errorf("unsupported target language %q", targetLang)
	}
	text = inference.TruncateText(text, t.config.MaxChars)

	translated, err := inference.Fallback(ctx, "translation",
		func(ctx context.Context) (string, error) {
			return t.translateRemote(ctx, model, text)
		},
		func(ctx context.Context) (string, error) {
			return t.translateLocal(ctx, model, text)
		},
	)
	if err != nil {
		return nil, err
	}

	return &models.TranslationResult{
		TranslatedText: translated,
		SourceLang:     sourceLang,
		TargetLang:     targetLang,
	}, nil
}

type translationResponse []struct {
	TranslationText string `json:"translation_text"`
}

func (t *Translator) translateRemote(ctx context.Context, model, text string) (string, error) {
	var resp translationResponse
	err := t.client.PostJSON(ctx, model, map[string]interface{}{"inputs": text}, &resp)
	if err != nil {
		return "", err
	}
	if len(resp) == 0 || strings.TrimSpace(resp[0].TranslationText) == "" {
		return "", fmt.Errorf("model %s returned no translation", model)
	}
	return strings.TrimSpace(resp[0].TranslationText), nil
}

// translateLocal posts to a locally resident inference runtime exposing the
// same request shape as the hosted API.
func (t *Translator) translateLocal(ctx context.Context, model, text string) (string, error) {
	if t.config.LocalRuntimeURL == "" {
		return "", fmt.Errorf("local inference runtime not configured")
	}

	body, err := json.Marshal(map[string]interface{}{
		"model":  model,
		"inputs": text,
	})
	if err != nil {
		return "", fmt.Errorf("encoding local translation request: %w", err)
	}

	url := strings.TrimRight(t.config.LocalRuntimeURL, "/") + "/translate"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating local translation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	httpResp, err := t.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling local runtime: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("local runtime returned status %d", httpResp.StatusCode)
	}

	var resp struct {
		TranslationText string `json:"translation_text"`
	}
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return "", fmt.Errorf("decoding local translation: %w", err)
	}
	if strings.TrimSpace(resp.TranslationText) == "" {
		return "", fmt.Errorf("local runtime returned no translation")
	}
	return strings.TrimSpace(resp.TranslationText), nil
}

// DetectLanguage identifies the language of a text sample. The hosted
// classifier is tried first; the script-based heuristic never fails.
func (t *Translator) DetectLanguage(ctx context.Context, text string) string {
	sample := inference.TruncateText(text, 500)

	var resp [][]struct {
		Label string  `json:"label"`
		Score float64 `json:"score"`
	}
	err := t.client.PostJSON(ctx, detectionModel, map[string]interface{}{"inputs": sample}, &resp)
	if err == nil && len(resp) > 0 && len(resp[0]) > 0 {
		best := resp[0][0]
		for _, ls := range resp[0][1:] {
			if ls.Score > best.Score {
				best = ls
			}
		}
		if best.Label != "" {
			return strings.ToLower(best.Label)
		}
	}

	return DetectByScript(text)
}

// DetectByScript guesses the language from the Unicode script in use.
// Devanagari means Hindi, Tamil script means Tamil, anything else defaults
// to English.
func DetectByScript(text string) string {
	for _, r := range text {
		switch {
		case r >= 0x0900 && r <= 0x097F:
			return "hi"
		case r >= 0x0B80 && r <= 0x0BFF:
			return "ta"
		}
	}
	return "en"
}

// SecondaryTargets returns the translation targets for a detected source
// language. English fans out to the configured secondary languages; anything
// else is translated to English only.
func SecondaryTargets(sourceLang string, configured []string) []string {
	if sourceLang == "en" {
		targets := make([]string, 0, len(configured))
		for _, lang := range configured {
			if lang != "en" && SupportedTarget(lang) {
				targets = append(targets, lang)
			}
		}
		return targets
	}
	return []string{"en"}
}
