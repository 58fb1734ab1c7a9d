package ai

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/amishk599/vaplan/internal/model"
)

// ReplayProvider returns a saved raw model response instead of calling an
// endpoint. Used with `analyze --replay` to debug parse failures offline.
type ReplayProvider struct {
	path string
}

// NewReplayProvider returns a provider that reads its response from path.
func NewReplayProvider(path string) *ReplayProvider {
	return &ReplayProvider{path: path}
}

// Complete ignores the prompt and returns the file contents.
func (r *ReplayProvider) Complete(_ context.Context, _ Prompt) (string, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return "", fmt.Errorf("read replay file: %w", err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return "", fmt.Errorf("%w: replay file %s is empty", model.ErrEmptyResponse, r.path)
	}
	return string(data), nil
}
