package ai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"text/template"

	"github.com/amishk599/vaplan/internal/model"
)

// JobSource turns pasted job input into job text, e.g. by fetching a URL.
type JobSource interface {
	Resolve(ctx context.Context, input string) (string, error)
}

// Request is the user's form input for one analysis.
type Request struct {
	JobText    string
	SkillsText string
}

// PlanAnalyzer runs one analysis: prompt, model call, normalize, parse.
type PlanAnalyzer struct {
	provider LLMProvider
	tmpl     *template.Template
	source   JobSource
	logger   *slog.Logger
}

// NewPlanAnalyzer creates an analyzer. source may be nil, in which case job
// text is used as pasted.
func NewPlanAnalyzer(provider LLMProvider, tmpl *template.Template, source JobSource, logger *slog.Logger) *PlanAnalyzer {
	if logger == nil {
		logger = slog.Default()
	}
	return &PlanAnalyzer{
		provider: provider,
		tmpl:     tmpl,
		source:   source,
		logger:   logger,
	}
}

// Analyze returns the parsed plan or an error wrapping one of the model error
// kinds. Empty job text fails before any network call.
func (a *PlanAnalyzer) Analyze(ctx context.Context, req Request) (*model.AnalysisResult, error) {
	if strings.TrimSpace(req.JobText) == "" {
		return nil, fmt.Errorf("%w: job text is empty", model.ErrInputValidation)
	}

	jobText := req.JobText
	if a.source != nil {
		resolved, err := a.source.Resolve(ctx, jobText)
		if err != nil {
			a.logFailure(ctx, "job source failed", err)
			return nil, err
		}
		jobText = resolved
	}

	prompt, err := BuildPrompt(a.tmpl, jobText, req.SkillsText)
	if err != nil {
		return nil, err
	}

	raw, err := a.provider.Complete(ctx, prompt)
	if err != nil {
		a.logFailure(ctx, "llm complete failed", err)
		return nil, err
	}
	a.logger.Debug("llm response received", "chars", len(raw))

	result, err := ParseModelOutput(raw)
	if err != nil {
		a.logger.Error("parse model output failed",
			"cause", failureCause(err),
			"attempts", ParseAttempts(err),
			"error", err,
		)
		return nil, err
	}

	if n := len(result.LearningPlan.Week1); n != 7 {
		a.logger.Warn("unexpected week length", "week", 1, "days", n)
	}
	if n := len(result.LearningPlan.Week2); n != 7 {
		a.logger.Warn("unexpected week length", "week", 2, "days", n)
	}

	a.logger.Info("analysis complete",
		"job_title", result.JobTitle,
		"need_to_learn", len(result.SkillGap.NeedToLearn),
	)
	return result, nil
}

// logFailure logs err with its kind. A failure caused by the caller
// cancelling ctx is only logged at debug level.
func (a *PlanAnalyzer) logFailure(ctx context.Context, msg string, err error) {
	if ctx.Err() != nil {
		a.logger.Debug(msg, "cause", "cancelled", "error", err)
		return
	}
	a.logger.Error(msg, "cause", failureCause(err), "error", err)
}

// failureCause names the error kind for diagnostic logs.
func failureCause(err error) string {
	switch {
	case errors.Is(err, model.ErrInputValidation):
		return "input"
	case errors.Is(err, model.ErrNetworkFailure):
		return "network"
	case errors.Is(err, model.ErrEmptyResponse):
		return "empty_response"
	case ParseAttempts(err) > 0:
		return "parse"
	case errors.Is(err, model.ErrAnalysisFailed):
		return "invalid_plan"
	default:
		return "unknown"
	}
}
