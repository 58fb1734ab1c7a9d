package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/amishk599/vaplan/internal/model"
)

// stubSource is a JobSource that returns a fixed text or error.
type stubSource struct {
	text  string
	err   error
	input string
}

func (s *stubSource) Resolve(_ context.Context, input string) (string, error) {
	s.input = input
	return s.text, s.err
}

func planJSON(t *testing.T) string {
	t.Helper()
	data, err := json.Marshal(samplePlan())
	if err != nil {
		t.Fatalf("marshal plan: %v", err)
	}
	return string(data)
}

func newTestAnalyzer(provider LLMProvider, source JobSource) *PlanAnalyzer {
	return NewPlanAnalyzer(provider, LearningPlanUserTemplate, source, discardLogger())
}

func TestAnalyze_EmptyJobSkipsProvider(t *testing.T) {
	provider := &mockProvider{}
	analyzer := newTestAnalyzer(provider, nil)

	for _, job := range []string{"", "   ", "\n\t"} {
		_, err := analyzer.Analyze(context.Background(), Request{JobText: job, SkillsText: "Excel"})
		if !errors.Is(err, model.ErrInputValidation) {
			t.Errorf("job %q: error = %v, want ErrInputValidation", job, err)
		}
	}
	if provider.calls != 0 {
		t.Errorf("provider called %d times, want 0", provider.calls)
	}
}

func TestAnalyze_Success(t *testing.T) {
	provider := &mockProvider{response: "```json\n" + planJSON(t) + "\n```"}
	analyzer := newTestAnalyzer(provider, nil)

	result, err := analyzer.Analyze(context.Background(), Request{
		JobText:    "Executive assistant for a busy founder",
		SkillsText: "Gmail, Excel",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.JobTitle != "Executive Virtual Assistant" {
		t.Errorf("JobTitle = %q", result.JobTitle)
	}
	if provider.calls != 1 {
		t.Errorf("provider called %d times, want 1", provider.calls)
	}
	if !strings.Contains(provider.prompt.User, "JOB: Executive assistant for a busy founder") {
		t.Errorf("user prompt missing job text: %q", provider.prompt.User)
	}
	if !strings.Contains(provider.prompt.User, "SKILLS: Gmail, Excel") {
		t.Errorf("user prompt missing skills: %q", provider.prompt.User)
	}
}

func TestAnalyze_BlankSkillsDefaultToBeginner(t *testing.T) {
	provider := &mockProvider{response: planJSON(t)}
	analyzer := newTestAnalyzer(provider, nil)

	if _, err := analyzer.Analyze(context.Background(), Request{JobText: "Data entry", SkillsText: "  "}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(provider.prompt.User, "SKILLS: Beginner") {
		t.Errorf("user prompt = %q, want default skills", provider.prompt.User)
	}
}

func TestAnalyze_ProviderErrorPassesThrough(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"network", model.ErrNetworkFailure},
		{"empty response", model.ErrEmptyResponse},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analyzer := newTestAnalyzer(&mockProvider{err: tt.err}, nil)
			_, err := analyzer.Analyze(context.Background(), Request{JobText: "VA role"})
			if !errors.Is(err, tt.err) {
				t.Errorf("error = %v, want %v", err, tt.err)
			}
		})
	}
}

func TestAnalyze_UnparseableResponse(t *testing.T) {
	analyzer := newTestAnalyzer(&mockProvider{response: "Sorry, I cannot help with that."}, nil)

	_, err := analyzer.Analyze(context.Background(), Request{JobText: "VA role"})
	if !errors.Is(err, model.ErrAnalysisFailed) {
		t.Fatalf("error = %v, want ErrAnalysisFailed", err)
	}
	if got := model.UserMessage(err); !strings.HasPrefix(got, "Could not analyze job.") {
		t.Errorf("UserMessage = %q", got)
	}
}

func TestAnalyze_ResolvesJobThroughSource(t *testing.T) {
	source := &stubSource{text: "Fetched posting: inbox management"}
	provider := &mockProvider{response: planJSON(t)}
	analyzer := newTestAnalyzer(provider, source)

	if _, err := analyzer.Analyze(context.Background(), Request{JobText: "https://jobs.example.com/1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if source.input != "https://jobs.example.com/1" {
		t.Errorf("source input = %q", source.input)
	}
	if !strings.Contains(provider.prompt.User, "JOB: Fetched posting: inbox management") {
		t.Errorf("user prompt = %q, want resolved text", provider.prompt.User)
	}
}

func TestAnalyze_SourceErrorSkipsProvider(t *testing.T) {
	source := &stubSource{err: model.ErrNetworkFailure}
	provider := &mockProvider{}
	analyzer := newTestAnalyzer(provider, source)

	_, err := analyzer.Analyze(context.Background(), Request{JobText: "https://jobs.example.com/1"})
	if !errors.Is(err, model.ErrNetworkFailure) {
		t.Errorf("error = %v, want ErrNetworkFailure", err)
	}
	if provider.calls != 0 {
		t.Errorf("provider called %d times, want 0", provider.calls)
	}
}

func TestAnalyze_SourceErrorLogsItsKind(t *testing.T) {
	var buf bytes.Buffer
	source := &stubSource{err: fmt.Errorf("%w: no readable text", model.ErrInputValidation)}
	analyzer := NewPlanAnalyzer(&mockProvider{}, LearningPlanUserTemplate, source, slog.New(slog.NewTextHandler(&buf, nil)))

	_, err := analyzer.Analyze(context.Background(), Request{JobText: "https://jobs.example.com/1"})
	if !errors.Is(err, model.ErrInputValidation) {
		t.Fatalf("error = %v, want ErrInputValidation", err)
	}
	if !strings.Contains(buf.String(), "cause=input") {
		t.Errorf("log = %q, want cause=input", buf.String())
	}
}

func TestAnalyze_CancelledIsNotLoggedAsError(t *testing.T) {
	var buf bytes.Buffer
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	provider := &mockProvider{err: fmt.Errorf("%w: llm request: %w", model.ErrNetworkFailure, context.Canceled)}
	analyzer := NewPlanAnalyzer(provider, LearningPlanUserTemplate, nil, slog.New(slog.NewTextHandler(&buf, nil)))

	_, err := analyzer.Analyze(ctx, Request{JobText: "Need a VA"})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
	if strings.Contains(buf.String(), "level=ERROR") {
		t.Errorf("cancelled run logged an error: %s", buf.String())
	}
}

func TestFailureCause(t *testing.T) {
	_, parseErr := ParseModelOutput(`{"jobTitle": "broken`)
	_, invalidErr := ParseModelOutput(`{"jobTitle": "x"}`)

	tests := []struct {
		err  error
		want string
	}{
		{model.ErrNetworkFailure, "network"},
		{model.ErrEmptyResponse, "empty_response"},
		{parseErr, "parse"},
		{fmt.Errorf("%w: no readable text", model.ErrInputValidation), "input"},
		{invalidErr, "invalid_plan"},
		{errors.New("other"), "unknown"},
	}
	for _, tt := range tests {
		if got := failureCause(tt.err); got != tt.want {
			t.Errorf("failureCause(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}
