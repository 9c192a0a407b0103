package types

// SubmitRequest is the JSON body for media submissions. File uploads use
// multipart form data instead.
type SubmitRequest struct {
	// URL of the media to download and process
	URL string `json:"url,omitempty"`
	// Text to analyze directly, skipping download and transcription
	Text string `json:"text,omitempty"`
}

// TranslateRequest is the body for standalone translation requests
type TranslateRequest struct {
	Text       string `json:"text" binding:"required"`
	TargetLang string `json:"target_lang" binding:"required"`
	SourceLang string `json:"source_lang,omitempty"`
}
