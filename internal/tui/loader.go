package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/amishk599/vaplan/internal/model"
)

// ErrCancelled is returned when the user interrupts the loader.
var ErrCancelled = errors.New("cancelled")

type analysisDoneMsg struct {
	result *model.AnalysisResult
	err    error
}

type loaderModel struct {
	label     string
	analyzeFn func(ctx context.Context) (*model.AnalysisResult, error)
	ctx       context.Context
	cancel    context.CancelFunc
	spinner   spinner.Model
	result    *model.AnalysisResult
	err       error
	done      bool
}

func newLoaderModel(ctx context.Context, label string, analyzeFn func(ctx context.Context) (*model.AnalysisResult, error)) loaderModel {
	ctx, cancel := context.WithCancel(ctx)
	s := spinner.New(spinner.WithSpinner(spinner.Dot))
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("33"))
	return loaderModel{
		label:     label,
		analyzeFn: analyzeFn,
		ctx:       ctx,
		cancel:    cancel,
		spinner:   s,
	}
}

func (m loaderModel) Init() tea.Cmd {
	return tea.Batch(m.doAnalyze(), m.spinner.Tick)
}

func (m loaderModel) doAnalyze() tea.Cmd {
	analyzeFn, ctx := m.analyzeFn, m.ctx
	return func() tea.Msg {
		result, err := analyzeFn(ctx)
		return analysisDoneMsg{result: result, err: err}
	}
}

func (m loaderModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case analysisDoneMsg:
		m.result = msg.result
		m.err = msg.err
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.cancel()
			m.done = true
			m.err = ErrCancelled
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m loaderModel) View() string {
	if m.done {
		return ""
	}
	return fmt.Sprintf("%s %s\n", m.spinner.View(), m.label)
}

// RunLoader shows a spinner while analyzeFn runs. It renders inline (no alt
// screen) and cancels ctx passed to analyzeFn on ctrl+c.
func RunLoader(ctx context.Context, label string, analyzeFn func(ctx context.Context) (*model.AnalysisResult, error)) (*model.AnalysisResult, error) {
	m := newLoaderModel(ctx, label, analyzeFn)
	defer m.cancel()

	p := tea.NewProgram(m)
	result, err := p.Run()
	if err != nil {
		return nil, err
	}
	final := result.(loaderModel)
	return final.result, final.err
}
