package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/mitchellh/go-wordwrap"
	"github.com/pterm/pterm"
)

// Strip removes all ANSI styles from the string.
func Strip(s string) string { return pterm.RemoveColorFromString(s) }

// Width returns the amount of terminal cells the string takes (styles are ignored).
func Width(s string) int { return runewidth.StringWidth(Strip(s)) }

// PadRight appends spaces to the string until it takes the given width.
func PadRight(s string, width int) string {
	if w := Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}

	return s
}

// Center surrounds the string with spaces, so it is centered within the given width. When the padding can't be
// split evenly, the extra space goes to the right.
func Center(s string, width int) string {
	var w = Width(s)

	if w >= width {
		return s
	}

	var left = (width - w) / 2 //nolint:mnd

	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-w-left)
}

// AlignRight prepends spaces to the string until it takes the given width.
func AlignRight(s string, width int) string {
	if w := Width(s); w < width {
		return strings.Repeat(" ", width-w) + s
	}

	return s
}

// Wrap splits the plain text into lines no wider than the given width (words longer than the width are kept
// intact). Existing line breaks are preserved.
func Wrap(s string, width int) []string {
	var out []string

	for _, line := range strings.Split(s, "\n") {
		out = append(out, strings.Split(wordwrap.WrapString(line, uint(max(width, 1))), "\n")...) //nolint:gosec
	}

	return out
}
