// Package view projects page state into terminal text or HTML. Rendering
// never modifies the analysis.
package view

import "github.com/amishk599/vaplan/internal/model"

// Page is everything the analyzer page shows at one moment.
type Page struct {
	JobText    string
	SkillsText string
	Loading    bool
	Result     *model.AnalysisResult
	// Error is the user-facing message from the last failed analysis.
	Error string
}

const (
	loadingText  = "This takes 30-60 seconds..."
	downloadHint = "If downloads are blocked, the text will be copied to your clipboard automatically"
	ctaTitle     = "Ready to Become a VA!"
	ctaBody      = "Download your materials and start Day 1 tomorrow!"
)

func timeOr(o model.Optional[string], fallback string) string {
	if model.HasText(o) {
		return o.Value
	}
	return fallback
}
