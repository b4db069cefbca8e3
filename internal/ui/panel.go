package ui

import (
	"strings"

	"github.com/pterm/pterm"
)

// panelChrome is the amount of columns taken by the panel borders and paddings (on both sides).
const panelChrome = 4

// PanelContentWidth returns the width available for the content of a panel with the given total width.
func PanelContentWidth(panelWidth int) int { return max(panelWidth-panelChrome, 1) }

// Panel renders the lines inside a rounded box that takes exactly `width` columns (as long as no line is wider
// than the content area). Every line may contain ANSI styles and line breaks.
func Panel(title string, width int, lines ...string) string {
	var (
		inner = PanelContentWidth(width)
		rows  = make([]string, 0, len(lines))
	)

	for _, line := range lines {
		for _, row := range strings.Split(line, "\n") {
			rows = append(rows, PadRight(row, inner))
		}
	}

	var box = pterm.DefaultBox.
		WithTopLeftCornerString("╭").
		WithTopRightCornerString("╮").
		WithBottomLeftCornerString("╰").
		WithBottomRightCornerString("╯").
		WithVerticalString("│").
		WithHorizontalString("─").
		WithLeftPadding(1).
		WithRightPadding(1).
		WithTopPadding(0).
		WithBottomPadding(0)

	if title != "" {
		box = box.WithTitle(" " + title + " ").WithTitleTopCenter()
	}

	return box.Sprint(strings.Join(rows, "\n"))
}
