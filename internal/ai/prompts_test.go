package ai

import (
	"errors"
	"strings"
	"testing"

	"github.com/amishk599/vaplan/internal/model"
)

func TestBuildPrompt_EmbedsInputsVerbatim(t *testing.T) {
	job := `Need a VA for "inbox" & <calendar> work`
	p, err := BuildPrompt(LearningPlanUserTemplate, job, "Excel, Gmail")
	if err != nil {
		t.Fatalf("BuildPrompt: %v", err)
	}
	if !strings.Contains(p.User, "JOB: "+job) {
		t.Errorf("user turn does not embed job text verbatim: %q", p.User)
	}
	if !strings.Contains(p.User, "SKILLS: Excel, Gmail") {
		t.Errorf("user turn does not embed skills: %q", p.User)
	}
}

func TestBuildPrompt_DefaultsBlankSkills(t *testing.T) {
	for _, skills := range []string{"", "   ", "\n\t"} {
		p, err := BuildPrompt(LearningPlanUserTemplate, "Virtual assistant needed", skills)
		if err != nil {
			t.Fatalf("BuildPrompt(%q): %v", skills, err)
		}
		if !strings.Contains(p.User, "SKILLS: "+DefaultSkills) {
			t.Errorf("skills %q: user turn = %q, want default skills", skills, p.User)
		}
	}
}

func TestBuildPrompt_RejectsBlankJob(t *testing.T) {
	for _, job := range []string{"", "  ", "\n"} {
		_, err := BuildPrompt(LearningPlanUserTemplate, job, "")
		if !errors.Is(err, model.ErrInputValidation) {
			t.Errorf("BuildPrompt(%q) error = %v, want ErrInputValidation", job, err)
		}
	}
}

func TestBuildPrompt_InstructionsStayOutOfUserTurn(t *testing.T) {
	p, err := BuildPrompt(LearningPlanUserTemplate, "job", "skills")
	if err != nil {
		t.Fatalf("BuildPrompt: %v", err)
	}
	if strings.Contains(p.User, "Return valid JSON") {
		t.Error("schema instructions leaked into the user turn")
	}
	for _, want := range []string{"VA career coach", "escape all quotes, no line breaks in strings", `"needToLearn"`, `"week2"`, "concise"} {
		if !strings.Contains(p.System, want) {
			t.Errorf("system prompt missing %q", want)
		}
	}
}
