package ai

import (
	"regexp"
	"strings"
)

// codeFenceRegex matches a ``` marker with an optional language tag and the
// newline that follows it.
var codeFenceRegex = regexp.MustCompile("```[A-Za-z0-9_+-]*\\r?\\n?")

// NormalizeResponse strips code fences and any text around the outermost
// JSON object. When both braces exist the result starts at the first '{' and
// ends at the last '}'. It does not check that the result is valid JSON.
func NormalizeResponse(raw string) string {
	text := codeFenceRegex.ReplaceAllString(raw, "")
	text = strings.TrimSpace(text)

	if start := strings.IndexByte(text, '{'); start > 0 {
		text = text[start:]
	}

	if end := strings.LastIndexByte(text, '}'); end > 0 && end < len(text)-1 {
		text = text[:end+1]
	}

	return text
}
