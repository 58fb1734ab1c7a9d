package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/amishk599/vaplan/internal/ai"
	"github.com/amishk599/vaplan/internal/config"
	"github.com/amishk599/vaplan/internal/model"
	"github.com/amishk599/vaplan/internal/tui"
)

func TestLoadConfig_ImplicitDefault(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("VAPLAN_CONFIG", "")
	t.Setenv("ANTHROPIC_API_KEY", "sk-test")

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.AI.APIKey != "sk-test" {
		t.Errorf("APIKey = %q, want key from env", cfg.AI.APIKey)
	}
}

func TestLoadConfig_EnvPathMustExist(t *testing.T) {
	t.Setenv("VAPLAN_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
	if _, err := loadConfig(""); err == nil {
		t.Error("expected error for missing VAPLAN_CONFIG file")
	}
}

func TestSetupProvider(t *testing.T) {
	cfg := config.Default()
	cfg.AI.APIKey = ""
	logger := newLogger(os.Stderr, false)

	if _, err := setupProvider(cfg, "", logger); err == nil {
		t.Error("expected credentials error")
	}

	p, err := setupProvider(cfg, "saved.txt", logger)
	if err != nil {
		t.Fatalf("replay provider: %v", err)
	}
	if _, ok := p.(*ai.ReplayProvider); !ok {
		t.Errorf("provider = %T, want *ai.ReplayProvider", p)
	}

	cfg.AI.APIKey = "sk-test"
	cfg.AI.Provider = config.ProviderOpenAI
	p, err = setupProvider(cfg, "", logger)
	if err != nil {
		t.Fatalf("openai provider: %v", err)
	}
	if _, ok := p.(*ai.OpenAIProvider); !ok {
		t.Errorf("provider = %T, want *ai.OpenAIProvider", p)
	}
}

func TestReadJobInput(t *testing.T) {
	t.Cleanup(func() { jobText, jobFile = "", "" })

	jobText = "Inline job"
	got, err := readJobInput(strings.NewReader("ignored"))
	if err != nil || got != "Inline job" {
		t.Errorf("inline = %q, %v", got, err)
	}

	jobText = ""
	jobFile = "-"
	got, err = readJobInput(strings.NewReader("From stdin"))
	if err != nil || got != "From stdin" {
		t.Errorf("stdin = %q, %v", got, err)
	}

	path := filepath.Join(t.TempDir(), "job.txt")
	if err := os.WriteFile(path, []byte("From file"), 0644); err != nil {
		t.Fatal(err)
	}
	jobFile = path
	got, err = readJobInput(strings.NewReader(""))
	if err != nil || got != "From file" {
		t.Errorf("file = %q, %v", got, err)
	}
}

func TestInterrupted(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{tui.ErrCancelled, true},
		{fmt.Errorf("%w: llm request: %w", model.ErrNetworkFailure, context.Canceled), true},
		{model.ErrNetworkFailure, false},
		{errors.New("other"), false},
	}
	for _, tt := range tests {
		if got := interrupted(tt.err); got != tt.want {
			t.Errorf("interrupted(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}
