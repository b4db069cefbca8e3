package cmd

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/nuztalgia/queemoji/internal/ui"
)

// rootHelpWidth is the maximal width of the root help panel.
const rootHelpWidth = 68

// unknownVersion is shown when the version is not known.
const unknownVersion = "?.?.?"

// bannerTailRe matches the last banner line: the gap between the two "|" groups receives the caption.
var bannerTailRe = regexp.MustCompile(`^([ |_]+\|)( +)(\|[_| ]+)$`)

type (
	// Streams are the output streams of a command.
	Streams struct {
		Stdout, Stderr io.Writer
	}

	// Action runs the command with the remaining command line arguments and returns the exit code.
	Action = func(ctx context.Context, s Streams, args []string) int

	// Descriptor describes a command for the Root registry.
	Descriptor struct {
		Identifier string // source file identifier, the command name is derived from it
		Summary    string // description, the first line is shown in the commands list
		Action     Action
	}

	// BannerLine is a line of the ASCII banner.
	BannerLine struct {
		Text  string
		Color *color.Color
	}

	// Root lists the registered commands and dispatches the command line to them.
	Root struct {
		Stdout, Stderr io.Writer // nil means the process standard streams

		pkg, version, description string
		banner                    []string // styled banner lines, excluding the last one
		tail                      bannerTail
		commands                  []command
	}

	bannerTail struct {
		prefix, caption, postfix string
		color                    *color.Color
	}

	command struct {
		name, summary string
		action        Action
	}
)

// NewRoot creates a new Root. The last banner line must contain a gap surrounded by "|" characters, the package
// name and version are placed there.
func NewRoot(pkg, version, description string, banner ...BannerLine) (*Root, error) {
	if version == "" {
		version = unknownVersion
	}

	if len(banner) == 0 {
		return nil, errors.Wrap(ErrMalformedBanner, "at least one line is required")
	}

	var last = banner[len(banner)-1]

	m := bannerTailRe.FindStringSubmatch(last.Text)
	if m == nil {
		return nil, errors.Wrapf(ErrMalformedBanner, "the last line %q has no caption gap", last.Text)
	}

	var r = &Root{
		pkg:         pkg,
		version:     version,
		description: description,
		banner:      make([]string, 0, len(banner)-1),
		tail: bannerTail{
			prefix:  m[1],
			caption: ui.Center(pkg+" "+version, len(m[2])),
			postfix: m[3],
			color:   last.Color,
		},
	}

	for _, line := range banner[:len(banner)-1] {
		r.banner = append(r.banner, ui.Paint(line.Color, line.Text))
	}

	return r, nil
}

// AddCommand registers the command.
func (r *Root) AddCommand(d Descriptor) error {
	name, err := ScriptName(d.Identifier)
	if err != nil {
		return errors.Wrap(ErrModuleLoad, err.Error())
	}

	if d.Action == nil {
		return errors.Wrapf(ErrModuleLoad, "command %s has no action", name)
	}

	for _, c := range r.commands {
		if c.name == name {
			return errors.Wrapf(ErrDuplicateCommand, "command %s", name)
		}
	}

	summary, _, _ := strings.Cut(d.Summary, "\n")

	r.commands = append(r.commands, command{name: name, summary: strings.TrimSpace(summary), action: d.Action})

	return nil
}

// Commands returns the registered command names and summaries in registration order.
func (r *Root) Commands() [][2]string {
	var out = make([][2]string, len(r.commands))

	for i, c := range r.commands {
		out[i] = [2]string{c.name, c.summary}
	}

	return out
}

// Caption returns the package name with the version.
func (r *Root) Caption() string { return r.pkg + " " + r.version }

func (r *Root) streams() Streams {
	var s = Streams{Stdout: r.Stdout, Stderr: r.Stderr}

	if s.Stdout == nil {
		s.Stdout = ui.Stdout()
	}

	if s.Stderr == nil {
		s.Stderr = ui.Stderr()
	}

	return s
}

// Help returns the root help message: the banner, the description and the list of commands.
func (r *Root) Help() string {
	var (
		width  = ui.PanelWidth(rootHelpWidth)
		inner  = ui.PanelContentWidth(width)
		lines  = make([]string, 0, len(r.banner)+len(r.commands)+8) //nolint:mnd
		before string
	)

	for _, line := range r.banner {
		before = ui.Center(line, inner)
		lines = append(lines, before)
	}

	var plain = ui.Strip(before)

	lines = append(lines, plain[:len(plain)-len(strings.TrimLeft(plain, " "))]+
		ui.Paint(r.tail.color, r.tail.prefix)+
		ui.Paint(ui.BrightBlack, r.tail.caption)+
		ui.Paint(r.tail.color, r.tail.postfix),
	)

	if r.description != "" {
		lines = append(lines, "")

		for _, line := range ui.Wrap(r.description, inner) {
			lines = append(lines, ui.Center(line, inner))
		}
	}

	var rows = make([]ui.Row, 0, len(r.commands)+1)

	rows = append(rows, ui.Row{
		Left:  ui.Paint(ui.BrightMagenta, "Command"),
		Right: []ui.Cell{{Text: "Description", Color: ui.BrightMagenta}},
	})

	for _, c := range r.commands {
		rows = append(rows, ui.Row{Left: ui.Paint(ui.BrightCyan, c.name), Right: []ui.Cell{{Text: c.summary}}})
	}

	lines = append(lines, "")
	lines = append(lines, ui.Table(inner, rows...)...)

	return ui.Panel("", width, lines...)
}

// PrintHelp writes the root help message to stdout.
func (r *Root) PrintHelp() { _, _ = fmt.Fprintln(r.streams().Stdout, r.Help()) }

// Run dispatches the command line arguments (without the program name) and returns the exit code.
func (r *Root) Run(ctx context.Context, args []string) int {
	var s = r.streams()

	if wantsHelp(args) { // urfave/cli would render its own template for a flag named "help"
		r.PrintHelp()

		return ExitOK
	}

	var app = &cli.App{
		Name:            r.pkg,
		Usage:           r.description,
		Version:         r.version,
		HideHelp:        true,
		HideHelpCommand: true,
		HideVersion:     true,
		Writer:          s.Stdout,
		ErrWriter:       s.Stderr,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "version", Usage: "Print the version."},
		},
		ExitErrHandler: func(*cli.Context, error) {}, // exit codes are returned, not applied
		OnUsageError: func(_ *cli.Context, err error, _ bool) error {
			r.PrintHelp()
			_, _ = fmt.Fprintf(s.Stderr, "%s: error: %s\n", r.pkg, err)

			return cli.Exit("", ExitUsage)
		},
		Action: func(c *cli.Context) error {
			switch {
			case c.Bool("version"):
				_, _ = fmt.Fprintln(s.Stdout, r.Caption())
			case c.Args().Present():
				_, _ = fmt.Fprintf(s.Stderr, "%s: error: unknown command: %q\n", r.pkg, c.Args().First())

				return cli.Exit("", ExitUsage)
			default:
				r.PrintHelp()
			}

			return nil
		},
		Commands: make([]*cli.Command, 0, len(r.commands)),
	}

	for _, c := range r.commands {
		var action = c.action

		app.Commands = append(app.Commands, &cli.Command{
			Name:            c.name,
			Usage:           c.summary,
			SkipFlagParsing: true,
			HideHelp:        true,
			Action: func(c *cli.Context) error {
				if code := action(c.Context, s, c.Args().Slice()); code != ExitOK {
					return cli.Exit("", code)
				}

				return nil
			},
		})
	}

	if err := app.RunContext(ctx, append([]string{r.pkg}, args...)); err != nil {
		var exitErr cli.ExitCoder

		if errors.As(err, &exitErr) {
			return exitErr.ExitCode()
		}

		_, _ = fmt.Fprintf(s.Stderr, "%s: error: %s\n", r.pkg, err)

		return ExitError
	}

	return ExitOK
}

// wantsHelp reports whether the root level flags (the ones before the command name) ask for help.
func wantsHelp(args []string) bool {
	for _, arg := range args {
		switch {
		case arg == "--help", arg == "-h":
			return true
		case arg == "--", !strings.HasPrefix(arg, "-"):
			return false
		}
	}

	return false
}
