// Package ui contains terminal presentation helpers: colors, panels and tables.
package ui

import (
	"os"
	"sync/atomic"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"

	"github.com/nuztalgia/queemoji/internal/env"
)

var colorsEnabled atomic.Bool //nolint:gochecknoglobals // atomic usage only

func init() { ColorsEnabled(DetectColors()) } //nolint:gochecknoinits

// DetectColors reports whether the output should be colored, based on the environment and the stdout type.
func DetectColors() bool {
	if _, exists := env.ForceColors.Lookup(); exists {
		return true
	} else if _, exists = env.NoColors.Lookup(); exists { //nolint:gocritic // docs: <https://no-color.org/>
		return false
	} else if v, _ := env.Term.Lookup(); v == "dumb" {
		return false
	} else if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return false
	}

	return true
}

// ColorsEnabled returns true if colors are enabled. Also, you can set a new state (enable or disable colors).
// The state is propagated to the styling libraries, so it affects every piece of the output.
func ColorsEnabled(newState ...bool) bool {
	if len(newState) == 0 {
		return colorsEnabled.Load()
	}

	colorsEnabled.Store(newState[0])

	color.NoColor = !newState[0]

	if newState[0] {
		pterm.EnableColor()
	} else {
		pterm.DisableColor()
	}

	return newState[0]
}
