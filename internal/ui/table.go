package ui

import (
	"strings"

	"github.com/fatih/color"
)

type (
	// Cell is a piece of plain text with an optional style. Text is wrapped before styling, so the styles never
	// affect the layout.
	Cell struct {
		Text  string
		Color *color.Color
	}

	// Row is a two-column table row. The left part is rendered as is (it may be styled already), the right part
	// is wrapped to fit the column.
	Row struct {
		Left  string
		Right []Cell
	}
)

// columnGap separates table columns.
const columnGap = "  "

// Table renders rows as two aligned columns within the given width. The left column takes a third of the width
// (but never less than the widest left cell). The result contains one string per printed line.
func Table(width int, rows ...Row) []string {
	var leftWidth = width / 3 //nolint:mnd

	for _, row := range rows {
		for _, l := range strings.Split(row.Left, "\n") {
			leftWidth = max(leftWidth, Width(l)+len(columnGap))
		}
	}

	var (
		rightWidth = max(width-leftWidth, 1)
		out        = make([]string, 0, len(rows))
	)

	for _, row := range rows {
		var left, right = strings.Split(row.Left, "\n"), wrapCells(rightWidth, row.Right...)

		for i := 0; i < max(len(left), len(right)); i++ {
			var line string

			if i < len(left) {
				line = left[i]
			}

			if i < len(right) {
				line = PadRight(line, leftWidth) + right[i]
			}

			out = append(out, line)
		}
	}

	return out
}

// wrapCells wraps every cell to the given width and applies cell styles line by line.
func wrapCells(width int, cells ...Cell) []string {
	var out = make([]string, 0, len(cells))

	for _, cell := range cells {
		for _, line := range strings.Split(cell.Text, "\n") {
			var indent = line[:len(line)-len(strings.TrimLeft(line, " "))]

			for _, wrapped := range Wrap(line, width) {
				if !strings.HasPrefix(wrapped, indent) {
					wrapped = indent + wrapped // keep hanging indents for wrapped hints
				}

				out = append(out, Paint(cell.Color, wrapped))
			}
		}
	}

	return out
}
