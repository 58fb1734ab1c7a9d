package model

import (
	"errors"
	"fmt"
)

// Error kinds. Call sites wrap one of these together with the underlying
// cause so errors.Is matches both.
var (
	ErrInputValidation = errors.New("input validation")
	ErrNetworkFailure  = errors.New("network failure")
	ErrEmptyResponse   = errors.New("empty response")
	ErrAnalysisFailed  = errors.New("analysis failed")
	ErrDownloadBlocked = errors.New("download blocked")
)

const (
	msgMissingJob     = "Please paste a job description"
	msgAnalysisFailed = "Could not analyze job. The response was too complex. Try a simpler job description or try again."
)

// UserMessage maps an analysis error to the text shown to the user.
// Every failure other than input validation collapses to one generic message;
// the distinct cause is only logged.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, ErrInputValidation) {
		return msgMissingJob
	}
	return msgAnalysisFailed
}

// HTTPError wraps a non-2xx status returned by the model endpoint.
type HTTPError struct {
	StatusCode int
	Body       string // response body, truncated
	Err        error
}

func (e *HTTPError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("HTTP %d: %v", e.StatusCode, e.Err)
	}
	if e.Body != "" {
		return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("HTTP %d", e.StatusCode)
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}
