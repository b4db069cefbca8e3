package ui_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nuztalgia/queemoji/internal/ui"
)

func TestTable(t *testing.T) {
	ui.ColorsEnabled(false)

	var lines = ui.Table(30,
		ui.Row{Left: "  -a", Right: []ui.Cell{{Text: "first"}}},
		ui.Row{Left: "  -b", Right: []ui.Cell{{Text: "second one is long enough to wrap"}, {Text: " ╰─ hint"}}},
	)

	require.Len(t, lines, 4)
	assert.Equal(t, "  -a      first", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "  -b      second one is"), lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "          "), lines[2])
	assert.Equal(t, "           ╰─ hint", lines[3])

	for _, line := range lines {
		assert.LessOrEqual(t, ui.Width(line), 30)
	}
}

func TestTable_WideLeftColumn(t *testing.T) {
	ui.ColorsEnabled(false)

	var lines = ui.Table(12, ui.Row{Left: "generate-pngs", Right: []ui.Cell{{Text: "x"}}})

	require.Len(t, lines, 1)
	assert.Equal(t, "generate-pngs  x", lines[0])
}

func TestPanel(t *testing.T) {
	ui.ColorsEnabled(false)

	var (
		out   = strings.TrimRight(ui.Panel("title", 40, "foo", "bar\nbaz"), "\n")
		lines = strings.Split(out, "\n")
	)

	require.Len(t, lines, 5)
	assert.Contains(t, lines[0], "title")

	for i, want := range []string{"foo", "bar", "baz"} {
		assert.Equal(t, 40, ui.Width(lines[i+1]), lines[i+1])
		assert.Contains(t, lines[i+1], want)
	}

	assert.Equal(t, 36, ui.PanelContentWidth(40))
	assert.Equal(t, 1, ui.PanelContentWidth(2))
}
