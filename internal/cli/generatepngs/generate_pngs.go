// Package generatepngs implements the `generate-pngs` command: batch conversion of SVG emoji sources into PNG
// images for every combination of the border styles and sizes.
package generatepngs

import (
	"context"
	"fmt"
	"runtime"

	"github.com/pkg/errors"

	"github.com/nuztalgia/queemoji/internal/cli/cmd"
	"github.com/nuztalgia/queemoji/internal/env"
	"github.com/nuztalgia/queemoji/internal/render"
)

// description of the command, the first line is used as a summary.
const description = "Creates PNG images from source SVG files."

// sourceFile identifies the command, its name is derived from the file name.
var _, sourceFile, _, _ = runtime.Caller(0) //nolint:gochecknoglobals,dogsled

// rasterizer is used to produce the images.
var rasterizer render.Rasterizer = render.PNG{} //nolint:gochecknoglobals

// NewCommand returns the command descriptor. The command line definition is checked here, so a broken
// declaration prevents the application from starting.
func NewCommand() (cmd.Descriptor, error) {
	if _, err := newParser(); err != nil {
		return cmd.Descriptor{}, err
	}

	return cmd.Descriptor{Identifier: sourceFile, Summary: description, Action: run}, nil
}

func newParser() (*cmd.Parser, error) {
	p, err := cmd.NewParser(sourceFile, description)
	if err != nil {
		return nil, err
	}

	if err = p.AddPositional(cmd.Positional{
		Name:        "input_paths",
		Description: "Path(s) to SVG files (or folders containing SVGs). Will not recurse into sub-folders.",
		Label:       "PATHS",
		DefaultText: "./" + DefaultInputDir,
	}); err != nil {
		return nil, err
	}

	for _, o := range []cmd.Optioner{
		&cmd.Option[string]{
			Name:        "output",
			Description: "Output file path, relative to current dir.",
			Default:     DefaultTemplate,
			Label:       "OUT",
			EnvVars:     []string{env.OutputTemplate.String()},
			Validator: func(s string) error {
				_, tErr := ParseTemplate(s)

				return tErr
			},
		},
		&cmd.Option[[]string]{
			Name:        "border",
			Description: "Emoji border style(s).",
			Default:     []string{string(BorderBlack)},
			Choices:     BorderStrings(),
			EnvVars:     []string{env.BorderStyles.String()},
		},
		&cmd.Option[[]int]{
			Name:        "size",
			Description: "Size(s) of output PNGs.",
			Default:     []int{DefaultSize},
			EnvVars:     []string{env.ImageSizes.String()},
			Validator: func(sizes []int) error {
				for _, size := range sizes {
					if sErr := ValidateSize(size); sErr != nil {
						return sErr
					}
				}

				return nil
			},
		},
		&cmd.Option[bool]{
			Name:        "replace",
			Description: "Allow existing PNG files to be overwritten.",
			EnvVars:     []string{env.ReplaceFiles.String()},
		},
	} {
		if err = p.AddOption(o); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// run is the command action.
func run(ctx context.Context, s cmd.Streams, argv []string) int {
	p, err := newParser()
	if err != nil {
		_, _ = fmt.Fprintf(s.Stderr, "error: %s\n", err)

		return cmd.ExitError
	}

	p.Stdout, p.Stderr = s.Stdout, s.Stderr

	args, err := p.Parse(argv)
	if err != nil {
		return cmd.ExitCode(err)
	}

	tpl, err := ParseTemplate(args.String("output"))
	if err != nil { // already validated by the parser
		args.Log.Error(err.Error())

		return cmd.ExitUsage
	}

	var opts = Options{
		Paths:    args.Positional,
		Template: tpl,
		Sizes:    args.Ints("size"),
		Replace:  args.Bool("replace"),
	}

	for _, b := range args.Strings("border") {
		border, bErr := ParseBorder(b)
		if bErr != nil {
			args.Log.Error(bErr.Error())

			return cmd.ExitUsage
		}

		opts.Borders = append(opts.Borders, border)
	}

	var conv = &Converter{Log: args.Log, Rasterizer: rasterizer}

	if _, err = conv.Run(ctx, opts); err != nil {
		if errors.Is(err, ErrInvalidOptions) {
			args.Log.Error(err.Error())

			return cmd.ExitUsage
		}

		return cmd.ExitError
	}

	return cmd.ExitOK
}
