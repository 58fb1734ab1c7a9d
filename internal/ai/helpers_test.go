package ai

import (
	"context"
	"io"
	"log/slog"

	"github.com/amishk599/vaplan/internal/model"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// mockProvider is a stub LLMProvider that records the prompts it receives.
type mockProvider struct {
	response string
	err      error
	calls    int
	prompt   Prompt
}

func (m *mockProvider) Complete(_ context.Context, p Prompt) (string, error) {
	m.calls++
	m.prompt = p
	return m.response, m.err
}

// samplePlan returns a complete plan exercising every optional field.
func samplePlan() model.AnalysisResult {
	return model.AnalysisResult{
		JobTitle:    "Executive Virtual Assistant",
		SalaryRange: "$15-25/hour",
		SkillGap: model.SkillGap{
			HasAlready:  []string{"Gmail"},
			NeedToLearn: []string{"Calendar management", "Canva"},
			HighImpact:  []string{"AI-assisted drafting"},
		},
		LearningPlan: model.LearningPlan{
			Week1: []model.FoundationDay{
				{
					Day:           1,
					Focus:         "Email triage",
					Lesson:        model.Some("Use labels and filters to keep the inbox at zero."),
					VideoSearch:   "gmail filters tutorial",
					Practice:      "Create five filters",
					Deliverable:   "Screenshot of filters",
					EstimatedTime: model.Some("2 hours"),
				},
				{
					Day:         2,
					Focus:       "Calendars",
					VideoSearch: "google calendar basics",
					Practice:    "Schedule a week",
					Deliverable: "Calendar screenshot",
				},
			},
			Week2: []model.PortfolioDay{
				{
					Day:         8,
					Focus:       "Portfolio Part 1",
					Lesson:      model.Some("Show a before and after."),
					Steps:       model.Some([]string{"Open Google Docs", "Create title"}),
					Deliverable: model.Some("First portfolio piece"),
				},
				{
					Day:   9,
					Focus: "Applications",
					Task:  model.Some("Apply to three roles"),
				},
			},
		},
		PortfolioPieces: model.Some([]model.PortfolioPiece{{Title: "Inbox zero", Description: "Email workflow"}}),
		AIAdvantage:     "Draft replies with AI and edit them.",
		AIUseCases:      model.Some([]string{"Draft emails", "Summarize meetings"}),
		ApplicationTips: model.Some([]string{"Lead with results"}),
	}
}
