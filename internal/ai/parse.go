package ai

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/amishk599/vaplan/internal/model"
)

// Repair rewrites malformed model output before a retried parse.
type Repair func(string) string

// controlWhitespace turns literal newlines, carriage returns and tabs into
// spaces, which fixes line breaks the model left inside string values.
var controlWhitespace = strings.NewReplacer("\n", " ", "\r", " ", "\t", " ")

// CollapseWhitespace is the default repair.
func CollapseWhitespace(s string) string {
	return controlWhitespace.Replace(s)
}

// DefaultRepairs are tried in order after the direct parse fails.
var DefaultRepairs = []Repair{CollapseWhitespace}

// ParseError records every failed parse attempt.
type ParseError struct {
	Attempts []error
}

func (e *ParseError) Error() string {
	msgs := make([]string, len(e.Attempts))
	for i, err := range e.Attempts {
		msgs[i] = fmt.Sprintf("attempt %d: %v", i+1, err)
	}
	return "parse model output: " + strings.Join(msgs, "; ")
}

func (e *ParseError) Unwrap() []error {
	return e.Attempts
}

// ParseModelOutput normalizes raw model text and parses it into an
// AnalysisResult using DefaultRepairs.
func ParseModelOutput(raw string) (*model.AnalysisResult, error) {
	return ParseModelOutputWith(raw, DefaultRepairs)
}

// ParseModelOutputWith parses the normalized text directly, then once per
// repair on the repaired text. The first successful parse is validated; a
// structurally valid but incomplete result is not retried.
func ParseModelOutputWith(raw string, repairs []Repair) (*model.AnalysisResult, error) {
	text := NormalizeResponse(raw)

	result, err := decodeResult(text)
	if err != nil {
		perr := &ParseError{Attempts: []error{err}}
		for _, repair := range repairs {
			result, err = decodeResult(repair(text))
			if err == nil {
				break
			}
			perr.Attempts = append(perr.Attempts, err)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", model.ErrAnalysisFailed, perr)
		}
	}

	if err := result.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrAnalysisFailed, err)
	}
	return result, nil
}

func decodeResult(text string) (*model.AnalysisResult, error) {
	if text == "" {
		return nil, errors.New("no JSON object in model output")
	}
	var result model.AnalysisResult
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ParseAttempts reports how many parse attempts a failed parse made, or zero
// when err did not come from the parser.
func ParseAttempts(err error) int {
	var perr *ParseError
	if errors.As(err, &perr) {
		return len(perr.Attempts)
	}
	return 0
}
