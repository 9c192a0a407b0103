package inference

import "unicode/utf8"

// TruncateText caps text at max bytes without splitting a multibyte
// character.
func TruncateText(text string, max int) string {
	if max <= 0 || len(text) <= max {
		return text
	}
	for max > 0 && !utf8.RuneStart(text[max]) {
		max--
	}
	return text[:max]
}
