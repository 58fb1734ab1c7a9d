package ai

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/amishk599/vaplan/internal/model"
)

//go:embed prompts/learning_plan_system.md
var learningPlanSystemPrompt string

//go:embed prompts/learning_plan_user.md
var learningPlanUserRaw string

// LearningPlanUserTemplate renders the user turn. Parsed once at package init.
var LearningPlanUserTemplate = template.Must(template.New("learning_plan_user").Parse(learningPlanUserRaw))

// DefaultSkills stands in for a blank skills field.
const DefaultSkills = "Beginner"

// Prompt is one model instruction. System carries the role, rules and JSON
// schema; User carries only the job and skills text, embedded verbatim.
type Prompt struct {
	System string
	User   string
}

// BuildPrompt renders the learning-plan prompt. jobText must be non-empty
// after trimming; a blank skillsText becomes DefaultSkills.
func BuildPrompt(tmpl *template.Template, jobText, skillsText string) (Prompt, error) {
	if strings.TrimSpace(jobText) == "" {
		return Prompt{}, fmt.Errorf("%w: job text is empty", model.ErrInputValidation)
	}
	if strings.TrimSpace(skillsText) == "" {
		skillsText = DefaultSkills
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, struct{ Job, Skills string }{
		Job:    jobText,
		Skills: skillsText,
	}); err != nil {
		return Prompt{}, fmt.Errorf("render prompt: %w", err)
	}

	return Prompt{System: learningPlanSystemPrompt, User: buf.String()}, nil
}
