// Package jobsource turns a pasted job posting URL into readable job text.
package jobsource

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/amishk599/vaplan/internal/model"
)

const (
	userAgent    = "vaplan/1.0 (+https://github.com/amishk599/vaplan)"
	maxPageBytes = 5 << 20
)

// Source fetches job pages. Input that is not a single http(s) URL passes
// through unchanged.
type Source struct {
	httpClient *http.Client
	enabled    bool
	maxChars   int
	logger     *slog.Logger
}

// New returns a Source. When enabled is false Resolve never fetches.
func New(httpClient *http.Client, enabled bool, maxChars int, logger *slog.Logger) *Source {
	if logger == nil {
		logger = slog.Default()
	}
	return &Source{
		httpClient: httpClient,
		enabled:    enabled,
		maxChars:   maxChars,
		logger:     logger,
	}
}

// Resolve returns the job text for input.
func (s *Source) Resolve(ctx context.Context, input string) (string, error) {
	pageURL, ok := parseJobURL(input)
	if !s.enabled || !ok {
		return input, nil
	}

	body, err := s.fetch(ctx, pageURL)
	if err != nil {
		return "", err
	}

	text, method := extract(body, pageURL)
	if text == "" {
		return "", fmt.Errorf("%w: no readable text at %s", model.ErrInputValidation, pageURL)
	}
	text = truncateRunes(text, s.maxChars)

	s.logger.Info("job page fetched", "url", pageURL.String(), "method", method, "chars", len(text))
	return text, nil
}

func (s *Source) fetch(ctx context.Context, pageURL *url.URL) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create page request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch job page: %w", model.ErrNetworkFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: %w", model.ErrNetworkFailure, &model.HTTPError{
			StatusCode: resp.StatusCode,
			Body:       strings.ToValidUTF8(string(snippet), ""),
		})
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPageBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read job page: %w", model.ErrNetworkFailure, err)
	}
	return body, nil
}

// parseJobURL reports whether input, once trimmed, is exactly one absolute
// http(s) URL.
func parseJobURL(input string) (*url.URL, bool) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" || strings.ContainsAny(trimmed, " \t\r\n") {
		return nil, false
	}
	u, err := url.Parse(trimmed)
	if err != nil || u.Host == "" {
		return nil, false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, false
	}
	return u, true
}

func truncateRunes(s string, n int) string {
	if n <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
