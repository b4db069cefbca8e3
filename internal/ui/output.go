package ui

import (
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"golang.org/x/term"
)

// Stdout returns a writer for the standard output, that is able to render ANSI colors on every platform.
// The writer is resolved on every call, so replacing os.Stdout (e.g. in tests) is respected.
func Stdout() io.Writer { return colorable.NewColorable(os.Stdout) }

// Stderr returns a writer for the standard error (see Stdout for details).
func Stderr() io.Writer { return colorable.NewColorable(os.Stderr) }

// DefaultTerminalWidth is used when the terminal size cannot be detected.
const DefaultTerminalWidth = 80

// TerminalWidth returns the current terminal width (in columns), DefaultTerminalWidth when the width is
// unknown (e.g. the output is redirected).
func TerminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}

	return DefaultTerminalWidth
}

// PanelWidth returns the terminal width, capped by the given limit.
func PanelWidth(limit int) int { return min(TerminalWidth(), limit) }
