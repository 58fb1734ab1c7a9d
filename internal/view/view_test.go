package view

import (
	"bytes"
	"encoding/json"
	"html"
	"reflect"
	"strings"
	"testing"

	"github.com/amishk599/vaplan/internal/artifact"
	"github.com/amishk599/vaplan/internal/model"
)

func samplePlan() *model.AnalysisResult {
	return &model.AnalysisResult{
		JobTitle:    "Executive Virtual Assistant",
		SalaryRange: "$15-25/hour",
		SkillGap: model.SkillGap{
			NeedToLearn: []string{"Calendar management"},
			HighImpact:  []string{"AI drafting"},
		},
		LearningPlan: model.LearningPlan{
			Week1: []model.FoundationDay{
				{Day: 1, Focus: "Email triage", VideoSearch: "gmail filters", Practice: "Create filters", Deliverable: "Screenshot"},
				{Day: 2, Focus: "Calendars", Lesson: model.Some("Time blocking basics"), VideoSearch: "google calendar", Practice: "Block a week", Deliverable: "Calendar screenshot"},
			},
			Week2: []model.PortfolioDay{
				{Day: 8, Focus: "Portfolio Part 1", Steps: model.Some([]string{"Open Docs", "Write title"}), Deliverable: model.Some("Draft doc")},
			},
		},
		AIAdvantage: "Use AI to draft replies.",
	}
}

// indexes returns the position of each needle in s, failing on any miss.
func indexes(t *testing.T, s string, needles ...string) []int {
	t.Helper()
	out := make([]int, len(needles))
	for i, n := range needles {
		out[i] = strings.Index(s, n)
		if out[i] < 0 {
			t.Fatalf("output missing %q", n)
		}
	}
	return out
}

func assertAscending(t *testing.T, pos []int) {
	t.Helper()
	for i := 1; i < len(pos); i++ {
		if pos[i] <= pos[i-1] {
			t.Errorf("sections out of order: %v", pos)
			return
		}
	}
}

func TestText_EmptyPage(t *testing.T) {
	if got := Text(Page{}, 80); got != "" {
		t.Errorf("Text(empty) = %q, want empty", got)
	}
}

func TestText_Loading(t *testing.T) {
	got := Text(Page{Loading: true, Result: samplePlan()}, 80)
	if !strings.Contains(got, loadingText) {
		t.Errorf("loading page missing %q: %q", loadingText, got)
	}
	if strings.Contains(got, "Job Analysis") {
		t.Error("loading page should not render the result")
	}
}

func TestText_SectionOrder(t *testing.T) {
	plan := samplePlan()
	plan.ApplicationTips = model.Some([]string{"Lead with results"})
	got := Text(Page{Result: plan}, 120)

	assertAscending(t, indexes(t, got,
		"Get Your Training Materials",
		"Job Analysis",
		"Your Skill Gap",
		"Your AI Superpower",
		"Application Tips",
		"Week 1: Foundation Skills",
		"Day 1 · Email triage",
		"Day 2 · Calendars",
		"Week 2: Portfolio & Applications",
		"Day 8 · Portfolio Part 1",
		ctaTitle,
	))
}

func TestText_OptionalSections(t *testing.T) {
	got := Text(Page{Result: samplePlan()}, 120)

	for _, absent := range []string{"Have", "Daily AI uses:", "Application Tips", "INSTRUCTIONS"} {
		if strings.Contains(got, absent) {
			t.Errorf("output should not contain %q", absent)
		}
	}
	for _, present := range []string{"LESSON: Learn This Concept", "1. Open Docs", "2. Write title", "TODAY'S DELIVERABLE:", "2-3 hours", "3-4 hours"} {
		if !strings.Contains(got, present) {
			t.Errorf("output missing %q", present)
		}
	}
}

func TestText_PresentButEmptyUseCasesRenderNothing(t *testing.T) {
	plan := samplePlan()
	plan.AIUseCases = model.Some([]string{})
	plan.SkillGap.HasAlready = []string{"Gmail"}

	got := Text(Page{Result: plan}, 120)
	if strings.Contains(got, "Daily AI uses:") {
		t.Error("empty use cases should not render a heading")
	}
	if !strings.Contains(got, "Gmail") {
		t.Error("non-empty hasAlready should render")
	}
}

func TestText_ShowsError(t *testing.T) {
	msg := model.UserMessage(model.ErrAnalysisFailed)
	got := Text(Page{Error: msg}, 200)
	if !strings.Contains(got, "Could not analyze job.") {
		t.Errorf("error page = %q", got)
	}
}

func TestText_DoesNotMutate(t *testing.T) {
	plan := samplePlan()
	before, _ := json.Marshal(plan)
	_ = Text(Page{Result: plan}, 80)
	after, _ := json.Marshal(plan)
	if !reflect.DeepEqual(before, after) {
		t.Error("Text modified the analysis")
	}
}

func TestHTML_FormOnly(t *testing.T) {
	var buf bytes.Buffer
	if err := HTML(&buf, Page{}); err != nil {
		t.Fatalf("HTML: %v", err)
	}
	got := buf.String()
	if !strings.Contains(got, `action="/analyze"`) {
		t.Error("page missing analyze form")
	}
	if strings.Contains(got, "Get Your Training Materials") {
		t.Error("form-only page should not render result sections")
	}
	if !strings.Contains(got, `<section id="loading" hidden>`) {
		t.Error("loading section should be hidden when not loading")
	}
}

func TestHTML_Result(t *testing.T) {
	plan := samplePlan()
	plan.AIUseCases = model.Some([]string{"Draft emails"})
	var buf bytes.Buffer
	if err := HTML(&buf, Page{JobText: "VA <role>", Result: plan}); err != nil {
		t.Fatalf("HTML: %v", err)
	}
	got := buf.String()

	assertAscending(t, indexes(t, got,
		"Get Your Training Materials",
		"Job Analysis",
		"Your Skill Gap",
		"Your AI Superpower",
		"Daily AI uses:",
		"Week 1: Foundation Skills",
		"Day 1: Email triage",
		"Week 2: Portfolio &amp; Applications",
		"Day 8: Portfolio Part 1",
		ctaTitle,
		`id="checklist-text"`,
	))

	if !strings.Contains(got, "VA &lt;role&gt;") {
		t.Error("job text should be escaped into the form")
	}
	if strings.Contains(got, "You Already Have") {
		t.Error("empty hasAlready should not render")
	}
	if !strings.Contains(got, "DAY 1: Email triage") {
		t.Error("checklist textarea missing checklist text")
	}
}

func TestHTML_HiddenAnalysisRoundTrips(t *testing.T) {
	plan := samplePlan()
	var buf bytes.Buffer
	if err := HTML(&buf, Page{Result: plan}); err != nil {
		t.Fatalf("HTML: %v", err)
	}

	got := buf.String()
	const marker = `name="analysis" value="`
	start := strings.Index(got, marker)
	if start < 0 {
		t.Fatal("hidden analysis field missing")
	}
	rest := got[start+len(marker):]
	value := html.UnescapeString(rest[:strings.IndexByte(rest, '"')])

	var decoded model.AnalysisResult
	if err := json.Unmarshal([]byte(value), &decoded); err != nil {
		t.Fatalf("decode hidden field: %v", err)
	}
	if !reflect.DeepEqual(&decoded, plan) {
		t.Errorf("hidden analysis mismatch\n got: %+v\nwant: %+v", decoded, *plan)
	}
}

// textareaValue returns the unescaped contents of the textarea with id.
func textareaValue(t *testing.T, page, id string) string {
	t.Helper()
	open := `<textarea id="` + id + `" readonly>`
	start := strings.Index(page, open)
	if start < 0 {
		t.Fatalf("textarea %s missing", id)
	}
	rest := page[start+len(open):]
	end := strings.Index(rest, "</textarea>")
	if end < 0 {
		t.Fatalf("textarea %s not closed", id)
	}
	return html.UnescapeString(rest[:end])
}

func TestHTML_ExportFallbacks(t *testing.T) {
	plan := samplePlan()
	var buf bytes.Buffer
	if err := HTML(&buf, Page{Result: plan}); err != nil {
		t.Fatalf("HTML: %v", err)
	}
	got := buf.String()

	for _, want := range []string{
		`<section id="checklist-fallback" class="fallback" hidden>`,
		`<section id="portfolio-fallback" class="fallback" hidden>`,
		`data-export="checklist-text" data-filename="VA-14-Day-Checklist.txt"`,
		`data-export="portfolio-text" data-filename="VA-Portfolio-Template.txt"`,
		`id="export-status"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("page missing %q", want)
		}
	}

	if v := textareaValue(t, got, "checklist-text"); v != artifact.Checklist(plan) {
		t.Error("checklist fallback text differs from generated checklist")
	}
	if v := textareaValue(t, got, "portfolio-text"); v != artifact.Portfolio() {
		t.Error("portfolio fallback text differs from portfolio template")
	}

	// File save first, clipboard second, visible text last.
	assertAscending(t, indexes(t, got,
		"URL.createObjectURL",
		"navigator.clipboard.writeText",
		"box.parentElement.hidden = false",
	))
}

func TestHTML_FormOnlyHasNoFallbacks(t *testing.T) {
	var buf bytes.Buffer
	if err := HTML(&buf, Page{}); err != nil {
		t.Fatalf("HTML: %v", err)
	}
	if strings.Contains(buf.String(), `id="checklist-fallback"`) {
		t.Error("fallback sections should only render with a result")
	}
}
