// Package cli assembles the console application.
package cli

import (
	"github.com/pkg/errors"

	"github.com/nuztalgia/queemoji/internal/cli/cmd"
	"github.com/nuztalgia/queemoji/internal/cli/generatepngs"
	"github.com/nuztalgia/queemoji/internal/ui"
	"github.com/nuztalgia/queemoji/internal/version"
)

const (
	pkgName     = "queemoji-scripts"
	description = "Utility scripts for working with the queemoji emoji set."
)

// commands lists the constructors of every available command.
var commands = []func() (cmd.Descriptor, error){ //nolint:gochecknoglobals
	generatepngs.NewCommand,
}

// banner returns the ASCII banner shown on top of the root help. The package name and version are placed into the
// gap of the last line.
func banner() []cmd.BannerLine {
	return []cmd.BannerLine{
		{Text: "                                        __ __ ", Color: ui.BrightMagenta},
		{Text: ".-----.--.--.-----.-----.--------.-----|__|__|", Color: ui.BrightMagenta},
		{Text: "|  _  |  |  |  -__|  -__|  .  .  |  _  |  |  |", Color: ui.BrightYellow},
		{Text: "|__   |_____|_____|_____|__|__|__|_____|  |__|", Color: ui.BrightCyan},
		{Text: "   |__|                              |____|   ", Color: ui.BrightCyan},
	}
}

// NewApp creates new console application.
func NewApp() (*cmd.Root, error) {
	root, err := cmd.NewRoot(pkgName, version.Version(), description, banner()...)
	if err != nil {
		return nil, err
	}

	for _, newCommand := range commands {
		d, dErr := newCommand()
		if dErr != nil {
			return nil, errors.Wrapf(cmd.ErrModuleLoad, "%s", dErr)
		}

		if err = root.AddCommand(d); err != nil {
			return nil, err
		}
	}

	return root, nil
}
