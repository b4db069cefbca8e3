package ui_test

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/nuztalgia/queemoji/internal/ui"
)

func TestWidth(t *testing.T) {
	var red = color.New(color.FgRed)

	red.EnableColor()

	for name, tt := range map[string]struct {
		give string
		want int
	}{
		"empty":       {give: "", want: 0},
		"plain":       {give: "foo bar", want: 7},
		"styled":      {give: red.Sprint("foo"), want: 3},
		"box drawing": {give: "╰─ Default:", want: 11},
	} {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, ui.Width(tt.give))
		})
	}
}

func TestCenter(t *testing.T) {
	assert.Equal(t, "  ab  ", ui.Center("ab", 6))
	assert.Equal(t, " ab  ", ui.Center("ab", 5))
	assert.Equal(t, "abcdef", ui.Center("abcdef", 3))
}

func TestPadRightAndAlignRight(t *testing.T) {
	assert.Equal(t, "ab   ", ui.PadRight("ab", 5))
	assert.Equal(t, "   ab", ui.AlignRight("ab", 5))
	assert.Equal(t, "abc", ui.PadRight("abc", 2))
}

func TestColorsEnabled(t *testing.T) {
	var orig = ui.ColorsEnabled()

	defer ui.ColorsEnabled(orig)

	assert.False(t, ui.ColorsEnabled(false))
	assert.False(t, ui.ColorsEnabled())
	assert.True(t, color.NoColor)
	assert.Equal(t, "foo", ui.Paint(ui.BrightRed, "foo"))

	assert.True(t, ui.ColorsEnabled(true))
	assert.True(t, ui.ColorsEnabled())
	assert.False(t, color.NoColor)
	assert.NotEqual(t, "foo", ui.Paint(ui.BrightRed, "foo"))
	assert.Equal(t, "foo", ui.Strip(ui.Paint(ui.BrightRed, "foo")))
	assert.Equal(t, "foo", ui.Paint(nil, "foo"))
}

func TestWrap(t *testing.T) {
	assert.Equal(t, []string{"foo bar", "baz"}, ui.Wrap("foo bar baz", 7))
	assert.Equal(t, []string{"first", "second"}, ui.Wrap("first\nsecond", 20))
	assert.Equal(t, []string{"unbreakable"}, ui.Wrap("unbreakable", 3))
}
