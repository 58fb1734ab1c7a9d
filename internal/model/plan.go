package model

import (
	"errors"
	"fmt"
)

// AnalysisResult is the learning plan parsed from one model response.
// It is built once per analysis and shared read-only by the view and the
// artifact generators.
type AnalysisResult struct {
	JobTitle        string                     `json:"jobTitle"`
	SalaryRange     string                     `json:"salaryRange"`
	SkillGap        SkillGap                   `json:"skillGap"`
	LearningPlan    LearningPlan               `json:"learningPlan"`
	AIAdvantage     string                     `json:"aiAdvantage"`
	AIUseCases      Optional[[]string]         `json:"aiUseCases,omitzero"`
	ApplicationTips Optional[[]string]         `json:"applicationTips,omitzero"`
	PortfolioPieces Optional[[]PortfolioPiece] `json:"portfolioPieces,omitzero"`
}

// SkillGap groups the skills the candidate has, lacks, and should prioritise.
type SkillGap struct {
	HasAlready  []string `json:"hasAlready"`
	NeedToLearn []string `json:"needToLearn"`
	HighImpact  []string `json:"highImpact"`
}

// LearningPlan is the two-week plan. Week 1 covers days 1-7, week 2 days 8-14.
type LearningPlan struct {
	Week1 []FoundationDay `json:"week1"`
	Week2 []PortfolioDay  `json:"week2"`
}

// FoundationDay is one week-1 entry.
type FoundationDay struct {
	Day           int              `json:"day"`
	Focus         string           `json:"focus"`
	Lesson        Optional[string] `json:"lesson,omitzero"`
	VideoSearch   string           `json:"videoSearch"`
	Practice      string           `json:"practice"`
	Deliverable   string           `json:"deliverable"`
	EstimatedTime Optional[string] `json:"estimatedTime,omitzero"`
}

// PortfolioDay is one week-2 entry. Everything past Focus is optional.
type PortfolioDay struct {
	Day           int                `json:"day"`
	Focus         string             `json:"focus"`
	Lesson        Optional[string]   `json:"lesson,omitzero"`
	Steps         Optional[[]string] `json:"steps,omitzero"`
	Task          Optional[string]   `json:"task,omitzero"`
	Deliverable   Optional[string]   `json:"deliverable,omitzero"`
	EstimatedTime Optional[string]   `json:"estimatedTime,omitzero"`
}

// PortfolioPiece is a suggested work sample. Not rendered today.
type PortfolioPiece struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

const (
	// DefaultFoundationTime is shown for week-1 days without an estimate.
	DefaultFoundationTime = "2-3 hours"
	// DefaultPortfolioTime is shown for week-2 days without an estimate.
	DefaultPortfolioTime = "3-4 hours"
)

// Validate checks the fields rendering and export depend on.
func (r *AnalysisResult) Validate() error {
	var errs []error
	if len(r.SkillGap.NeedToLearn) == 0 {
		errs = append(errs, errors.New("skillGap.needToLearn is empty"))
	}
	if len(r.LearningPlan.Week1) == 0 {
		errs = append(errs, errors.New("learningPlan.week1 is missing"))
	}
	if len(r.LearningPlan.Week2) == 0 {
		errs = append(errs, errors.New("learningPlan.week2 is missing"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid analysis: %w", errors.Join(errs...))
	}
	return nil
}
