package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aymanbagabas/go-osc52/v2"
	"github.com/mattn/go-isatty"
)

// Ensure ClipboardStrategy implements Strategy.
var _ Strategy = (*ClipboardStrategy)(nil)

// errNoTerminal is returned when the output cannot carry a clipboard escape.
var errNoTerminal = errors.New("clipboard unavailable: output is not a terminal")

// ClipboardStrategy copies the document to the terminal's clipboard with an
// OSC 52 escape sequence.
type ClipboardStrategy struct {
	out      io.Writer
	terminal bool
	env      func(string) string
}

// NewClipboardStrategy writes to f when f is a terminal.
func NewClipboardStrategy(f *os.File) *ClipboardStrategy {
	fd := f.Fd()
	return &ClipboardStrategy{
		out:      f,
		terminal: isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd),
		env:      os.Getenv,
	}
}

func (c *ClipboardStrategy) Name() string { return "clipboard" }

func (c *ClipboardStrategy) Export(doc Document) error {
	if !c.terminal {
		return errNoTerminal
	}

	seq := osc52.New(doc.Text)
	switch {
	case c.env("TMUX") != "":
		seq = seq.Tmux()
	case strings.HasPrefix(c.env("TERM"), "screen"):
		seq = seq.Screen()
	}

	if _, err := seq.WriteTo(c.out); err != nil {
		return fmt.Errorf("write clipboard sequence: %w", err)
	}
	return nil
}
