package export

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Ensure DisplayStrategy implements Strategy.
var _ Strategy = (*DisplayStrategy)(nil)

var (
	displayTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#059669"))
	displayBox   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#059669")).
			Padding(0, 1)
)

// DisplayStrategy prints the document so the user can copy it by hand. It is
// the last tier and only fails if the writer does.
type DisplayStrategy struct {
	out io.Writer
}

// NewDisplayStrategy prints to out.
func NewDisplayStrategy(out io.Writer) *DisplayStrategy {
	return &DisplayStrategy{out: out}
}

func (d *DisplayStrategy) Name() string { return "display" }

func (d *DisplayStrategy) Export(doc Document) error {
	title := displayTitle.Render("Download blocked. Copy " + doc.Name + " from the box below.")
	if _, err := fmt.Fprintf(d.out, "%s\n%s\n", title, displayBox.Render(doc.Text)); err != nil {
		return fmt.Errorf("display %s: %w", doc.Name, err)
	}
	return nil
}
