package tui

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/amishk599/vaplan/internal/artifact"
	"github.com/amishk599/vaplan/internal/export"
	"github.com/amishk599/vaplan/internal/model"
	"github.com/amishk599/vaplan/internal/view"
)

type viewState int

const (
	viewPlan viewState = iota
	viewFallback
)

var (
	borderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("39")) // bright blue

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Padding(0, 1)

	statusBarStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("236"))

	noticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))
)

// textareaStrategy is the in-app last tier: it hands the document to the
// viewer, which shows it in a textarea for manual copying.
type textareaStrategy struct {
	doc *export.Document
}

func (s *textareaStrategy) Name() string { return "textarea" }

func (s *textareaStrategy) Export(doc export.Document) error {
	*s.doc = doc
	return nil
}

type viewerModel struct {
	result   *model.AnalysisResult
	chain    *export.Chain
	fallback *export.Document

	viewport viewport.Model
	textarea textarea.Model
	view     viewState
	width    int
	height   int
	ready    bool
	status   string
}

func newViewerModel(result *model.AnalysisResult, strategies []export.Strategy, logger *slog.Logger) viewerModel {
	fallback := &export.Document{}
	all := append(append([]export.Strategy{}, strategies...), &textareaStrategy{doc: fallback})

	ta := textarea.New()
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.ShowLineNumbers = false

	return viewerModel{
		result:   result,
		chain:    export.NewChain(logger, all...),
		fallback: fallback,
		textarea: ta,
	}
}

func (m viewerModel) Init() tea.Cmd {
	return nil
}

func (m viewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.recalcLayout()
		return m, nil

	case tea.KeyMsg:
		if m.view == viewFallback {
			return m.updateFallbackView(msg)
		}
		return m.updatePlanView(msg)
	}
	return m, nil
}

func (m viewerModel) updatePlanView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "c":
		return m.exportDocument(export.Document{Name: artifact.ChecklistFileName, Text: artifact.Checklist(m.result)})
	case "p":
		return m.exportDocument(export.Document{Name: artifact.PortfolioFileName, Text: artifact.Portfolio()})
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m viewerModel) updateFallbackView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = viewPlan
		m.textarea.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	return m, cmd
}

func (m viewerModel) exportDocument(doc export.Document) (tea.Model, tea.Cmd) {
	strategy, err := m.chain.Run(doc)
	switch {
	case err != nil:
		m.status = fmt.Sprintf("Could not export %s", doc.Name)
		return m, nil
	case strategy == "textarea":
		m.view = viewFallback
		m.status = "Download blocked. Copy the text below."
		m.textarea.SetValue(m.fallback.Text)
		return m, m.textarea.Focus()
	case strategy == "clipboard":
		m.status = fmt.Sprintf("%s copied to clipboard. Paste it into a text file.", doc.Name)
	default:
		m.status = fmt.Sprintf("Saved %s", doc.Name)
	}
	return m, nil
}

func (m *viewerModel) recalcLayout() {
	// Title (1) + border top/bottom (2) + status bar (1) = 4 lines overhead.
	width := max(m.width-2, 20)
	height := max(m.height-4, 5)

	if !m.ready {
		m.viewport = viewport.New(width, height)
		m.ready = true
	} else {
		m.viewport.Width = width
		m.viewport.Height = height
	}
	m.viewport.SetContent(view.Text(view.Page{Result: m.result}, width-2))

	m.textarea.SetWidth(width)
	m.textarea.SetHeight(height)
}

func (m viewerModel) View() string {
	if !m.ready {
		return "Initializing..."
	}

	title := titleStyle.Render("VA Job Analyzer · " + m.result.JobTitle)
	body := m.viewport.View()
	help := " c checklist  p portfolio  ↑/↓ scroll  q quit"
	if m.view == viewFallback {
		body = m.textarea.View()
		help = " esc back  ctrl+c quit"
	}

	status := help
	if m.status != "" {
		status = noticeStyle.Render(m.status) + "  " + help
	}

	return title + "\n" +
		borderStyle.Width(m.width-2).Render(body) + "\n" +
		statusBarStyle.Width(m.width).Render(status)
}

// Run opens the full-screen plan viewer. Exports try strategies in order and
// fall back to an in-app textarea when all of them fail.
func Run(result *model.AnalysisResult, strategies []export.Strategy, logger *slog.Logger) error {
	m := newViewerModel(result, strategies, logger)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
