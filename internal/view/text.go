package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/amishk599/vaplan/internal/artifact"
	"github.com/amishk599/vaplan/internal/model"
)

var (
	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")). // bright blue
			MarginTop(1)

	weekStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("135")) // purple

	dayTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			Width(14)

	subLabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("245"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Italic(true)

	loadingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("33"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	aiPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("135")).
			Padding(0, 1)

	ctaStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("39")).
			Padding(0, 2).
			Align(lipgloss.Center)
)

// Text renders p for a terminal of the given width. It returns "" when there
// is nothing to show.
func Text(p Page, width int) string {
	width = max(width, 40)

	var b strings.Builder
	if p.Error != "" {
		b.WriteString(errorStyle.Render("⚠ "+p.Error) + "\n")
	}
	if p.Loading {
		b.WriteString(loadingStyle.Render("Creating Your Plan... "+loadingText) + "\n")
		return b.String()
	}
	if p.Result != nil {
		writeResult(&b, p.Result, width)
	}
	return b.String()
}

func writeResult(b *strings.Builder, r *model.AnalysisResult, width int) {
	wrap := lipgloss.NewStyle().Width(width - 4)
	para := func(s string) {
		b.WriteString(wrap.Render(s) + "\n")
	}
	field := func(label, value string) {
		b.WriteString(labelStyle.Render(label) + value + "\n")
	}

	b.WriteString(sectionStyle.Render("Get Your Training Materials") + "\n")
	field("Checklist", artifact.ChecklistFileName)
	field("Portfolio", artifact.PortfolioFileName)
	b.WriteString(hintStyle.Render(downloadHint) + "\n")

	b.WriteString(sectionStyle.Render("Job Analysis") + "\n")
	field("Job Title", r.JobTitle)
	field("Salary Range", r.SalaryRange)

	b.WriteString(sectionStyle.Render("Your Skill Gap") + "\n")
	if len(r.SkillGap.HasAlready) > 0 {
		field("Have", strings.Join(r.SkillGap.HasAlready, ", "))
	}
	field("Learn", strings.Join(r.SkillGap.NeedToLearn, ", "))
	field("High Impact", strings.Join(r.SkillGap.HighImpact, ", "))

	var ai strings.Builder
	ai.WriteString(weekStyle.Render("Your AI Superpower") + "\n")
	ai.WriteString(r.AIAdvantage)
	if model.HasItems(r.AIUseCases) {
		ai.WriteString("\n\nDaily AI uses:")
		for _, u := range r.AIUseCases.Value {
			ai.WriteString("\n  ✓ " + u)
		}
	}
	b.WriteString("\n" + aiPanelStyle.Width(width-2).Render(ai.String()) + "\n")

	if model.HasItems(r.ApplicationTips) {
		b.WriteString(sectionStyle.Render("Application Tips") + "\n")
		for _, tip := range r.ApplicationTips.Value {
			para("  • " + tip)
		}
	}

	b.WriteString(sectionStyle.Render("Your 14-Day Learning Plan") + "\n\n")
	b.WriteString(weekStyle.Render("Week 1: Foundation Skills") + "\n")
	for _, d := range r.LearningPlan.Week1 {
		b.WriteString("\n" + dayTitle(d.Day, d.Focus, timeOr(d.EstimatedTime, model.DefaultFoundationTime)) + "\n")
		if model.HasText(d.Lesson) {
			b.WriteString(subLabelStyle.Render("LESSON: Learn This Concept") + "\n")
			para(d.Lesson.Value)
		}
		b.WriteString(subLabelStyle.Render("WATCH (Supplementary)") + "\n")
		para("Search YouTube: " + d.VideoSearch)
		b.WriteString(subLabelStyle.Render("PRACTICE") + "\n")
		para(d.Practice)
		b.WriteString(subLabelStyle.Render("SUBMIT") + "\n")
		para(d.Deliverable)
		b.WriteString(hintStyle.Render(fmt.Sprintf("Upload to Day %d folder", d.Day)) + "\n")
	}

	b.WriteString("\n" + weekStyle.Render("Week 2: Portfolio & Applications") + "\n")
	for _, d := range r.LearningPlan.Week2 {
		b.WriteString("\n" + dayTitle(d.Day, d.Focus, timeOr(d.EstimatedTime, model.DefaultPortfolioTime)) + "\n")
		if model.HasText(d.Lesson) {
			b.WriteString(subLabelStyle.Render("INSTRUCTIONS") + "\n")
			para(d.Lesson.Value)
		}
		if model.HasItems(d.Steps) {
			b.WriteString(subLabelStyle.Render("STEP-BY-STEP GUIDE") + "\n")
			for i, step := range d.Steps.Value {
				para(fmt.Sprintf("%d. %s", i+1, step))
			}
		}
		if model.HasText(d.Task) {
			para(d.Task.Value)
		}
		if model.HasText(d.Deliverable) {
			b.WriteString(subLabelStyle.Render("TODAY'S DELIVERABLE:") + "\n")
			para(d.Deliverable.Value)
		}
	}

	b.WriteString("\n" + ctaStyle.Width(width-2).Render(ctaTitle+"\n"+ctaBody) + "\n")
}

func dayTitle(day int, focus, estimate string) string {
	return dayTitleStyle.Render(fmt.Sprintf("Day %d · %s", day, focus)) + "  " + hintStyle.Render(estimate)
}
