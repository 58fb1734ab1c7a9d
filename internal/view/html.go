package view

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"

	"github.com/amishk599/vaplan/internal/artifact"
	"github.com/amishk599/vaplan/internal/model"
)

//go:embed templates/page.html.tmpl
var templateFS embed.FS

var pageTemplate = template.Must(template.New("page.html.tmpl").Funcs(template.FuncMap{
	"hasText":    model.HasText,
	"hasStrings": model.HasItems[string],
	"inc":        func(i int) int { return i + 1 },
	"week1Time": func(d model.FoundationDay) string {
		return timeOr(d.EstimatedTime, model.DefaultFoundationTime)
	},
	"week2Time": func(d model.PortfolioDay) string {
		return timeOr(d.EstimatedTime, model.DefaultPortfolioTime)
	},
}).ParseFS(templateFS, "templates/page.html.tmpl"))

// htmlPage adds the derived values the template needs to Page.
type htmlPage struct {
	Page
	LoadingText   string
	DownloadHint  string
	CTATitle      string
	CTABody       string
	ChecklistFile string
	ChecklistText string
	PortfolioFile string
	PortfolioText string
	// AnalysisJSON round-trips the result through a hidden form field so
	// the checklist download needs no server-side state.
	AnalysisJSON string
}

// HTML writes the full analyzer page for p.
func HTML(w io.Writer, p Page) error {
	data := htmlPage{
		Page:         p,
		LoadingText:  loadingText,
		DownloadHint: downloadHint,
		CTATitle:     ctaTitle,
		CTABody:      ctaBody,
	}
	if p.Result != nil {
		raw, err := json.Marshal(p.Result)
		if err != nil {
			return fmt.Errorf("encode analysis: %w", err)
		}
		data.AnalysisJSON = string(raw)
		data.ChecklistFile = artifact.ChecklistFileName
		data.ChecklistText = artifact.Checklist(p.Result)
		data.PortfolioFile = artifact.PortfolioFileName
		data.PortfolioText = artifact.Portfolio()
	}
	if err := pageTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return nil
}
