package artifact

import (
	"strconv"
	"strings"

	"github.com/amishk599/vaplan/internal/model"
)

const (
	// ChecklistFileName is the suggested name for the exported checklist.
	ChecklistFileName = "VA-14-Day-Checklist.txt"
	// PortfolioFileName is the suggested name for the exported portfolio template.
	PortfolioFileName = "VA-Portfolio-Template.txt"

	ruleLine = "-------------------------------------------"
)

const checklistSetup = "GOOGLE DRIVE SETUP:\n" +
	"- Create folder: VA Training - [Your Name]\n" +
	"- Inside create: Day 1, Day 2, ... Day 14 folders\n" +
	"- Share with your coach\n\n"

// Checklist flattens both weeks of the plan into the printable checklist.
// It reads r and never modifies it.
func Checklist(r *model.AnalysisResult) string {
	var b strings.Builder

	b.WriteString("VA 14-DAY CHECKLIST\n\n")
	b.WriteString("Job: " + r.JobTitle + "\n")
	b.WriteString("Salary: " + r.SalaryRange + "\n\n")
	b.WriteString(checklistSetup)

	b.WriteString("WEEK 1: FOUNDATION SKILLS\n\n")
	for _, d := range r.LearningPlan.Week1 {
		writeFoundationDay(&b, d)
	}

	b.WriteString("WEEK 2: PORTFOLIO & APPLICATIONS\n\n")
	for _, d := range r.LearningPlan.Week2 {
		writePortfolioDay(&b, d)
	}

	return b.String()
}

func writeFoundationDay(b *strings.Builder, d model.FoundationDay) {
	writeDayHeader(b, d.Day, d.Focus, timeOr(d.EstimatedTime, model.DefaultFoundationTime))
	if model.HasText(d.Lesson) {
		b.WriteString("LESSON (Read This First):\n")
		b.WriteString(d.Lesson.Value + "\n\n")
	}
	b.WriteString("VIDEO (Supplementary):\n")
	b.WriteString("Search YouTube for: " + d.VideoSearch + "\n\n")
	b.WriteString("PRACTICE: " + d.Practice + "\n\n")
	b.WriteString("SUBMIT: " + d.Deliverable + "\n")
	b.WriteString("Upload to: Day " + strconv.Itoa(d.Day) + " folder\n")
	b.WriteString(ruleLine + "\n\n")
}

func writePortfolioDay(b *strings.Builder, d model.PortfolioDay) {
	writeDayHeader(b, d.Day, d.Focus, timeOr(d.EstimatedTime, model.DefaultPortfolioTime))
	if model.HasText(d.Lesson) {
		b.WriteString("INSTRUCTIONS:\n" + d.Lesson.Value + "\n\n")
	}
	if model.HasItems(d.Steps) {
		b.WriteString("STEP-BY-STEP:\n")
		for i, step := range d.Steps.Value {
			b.WriteString(strconv.Itoa(i+1) + ". " + step + "\n")
		}
		b.WriteString("\n")
	}
	if model.HasText(d.Task) {
		b.WriteString(d.Task.Value + "\n\n")
	}
	if model.HasText(d.Deliverable) {
		b.WriteString("DELIVERABLE: " + d.Deliverable.Value + "\n")
	}
	b.WriteString(ruleLine + "\n\n")
}

func writeDayHeader(b *strings.Builder, day int, focus, estimate string) {
	b.WriteString("DAY " + strconv.Itoa(day) + ": " + focus + "\n")
	b.WriteString("Time: " + estimate + "\n\n")
}

// timeOr treats an empty estimate like a missing one.
func timeOr(o model.Optional[string], fallback string) string {
	if model.HasText(o) {
		return o.Value
	}
	return fallback
}
