package cmd

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/nuztalgia/queemoji/internal/env"
	"github.com/nuztalgia/queemoji/internal/logger"
	"github.com/nuztalgia/queemoji/internal/ui"
)

// helpWidth is the maximal width of the command help panel.
const helpWidth = 69

var (
	positionalNameRe = regexp.MustCompile(`^[a-z][a-z_]+$`)
	optionNameRe     = regexp.MustCompile(`^[a-z]+$`)
)

// reserved option names (and abbreviations) of the built-in options.
var reserved = map[string]struct{}{"verbose": {}, "help": {}, "v": {}, "h": {}} //nolint:gochecknoglobals

type (
	// Positional describes the (only) multi-value positional argument of a command.
	Positional struct {
		Name        string // Argument name, e.g. "input_paths".
		Description string // Description of the argument.
		Label       string // Placeholder for the usage line and help. Defaults to the upper-cased name.
		DefaultText string // Optional text describing what is used when no values are given.
	}

	// Parser defines and parses the arguments of a single command.
	Parser struct {
		Stdout, Stderr io.Writer // nil means the process standard streams

		name, description string
		positional        *Positional
		options           []Optioner

		initOnce sync.Once
		builtins []Optioner // --verbose and --help
	}

	// Args is the result of a successful parsing.
	Args struct {
		Positional []string      // values of the positional argument
		Log        logger.Logger // the logger for this invocation (debug level with --verbose)

		values map[string]any
	}
)

func (p *Positional) label() string {
	if p.Label != "" {
		return p.Label
	}

	return strings.ToUpper(p.Name)
}

// NewParser creates a new Parser for the command defined in the given source file.
func NewParser(identifier, description string) (*Parser, error) {
	name, err := ScriptName(identifier)
	if err != nil {
		return nil, err
	}

	return &Parser{name: name, description: description}, nil
}

// Name returns the command name.
func (p *Parser) Name() string { return p.name }

// AddPositional registers the positional argument. Only one positional argument is allowed.
func (p *Parser) AddPositional(arg Positional) error {
	if err := validateArg(arg.Name, arg.Description, positionalNameRe); err != nil {
		return err
	}

	if p.positional != nil {
		return errors.Wrapf(ErrDuplicateArgument, "only one positional argument is allowed (%q is registered)",
			p.positional.Name,
		)
	}

	p.positional = &arg

	return nil
}

// AddOption registers a named option.
func (p *Parser) AddOption(o Optioner) error {
	if err := validateArg(o.optionName(), o.optionDescription(), optionNameRe); err != nil {
		return err
	}

	var name, short = o.optionName(), o.optionName()[:1]

	if _, ok := reserved[name]; ok {
		return errors.Wrapf(ErrDuplicateArgument, "option --%s is reserved", name)
	} else if _, ok = reserved[short]; ok {
		return errors.Wrapf(ErrDuplicateArgument, "option -%s is reserved", short)
	}

	for _, existing := range p.options {
		if existing.optionName() == name {
			return errors.Wrapf(ErrDuplicateArgument, "option --%s", name)
		} else if existing.optionName()[:1] == short {
			return errors.Wrapf(ErrDuplicateArgument, "option -%s (--%s and --%s)", short, existing.optionName(), name)
		}
	}

	p.options = append(p.options, o)

	return nil
}

func validateArg(name, description string, re *regexp.Regexp) error {
	if name == "" || description == "" {
		return errors.Wrap(ErrInvalidArgumentName, "both name and description are required")
	}

	if !re.MatchString(name) {
		return errors.Wrapf(ErrInvalidArgumentName, "%q does not match %s", name, re.String())
	}

	return nil
}

func (p *Parser) init() {
	p.initOnce.Do(func() {
		p.builtins = []Optioner{
			&Option[bool]{Name: "verbose", Description: "Enable verbose console output."},
			&Option[bool]{Name: "help", Description: "Show this help message."},
		}
	})
}

func (p *Parser) allOptions() []Optioner {
	p.init()

	return append(append(make([]Optioner, 0, len(p.options)+len(p.builtins)), p.options...), p.builtins...)
}

func (p *Parser) stdout() io.Writer {
	if p.Stdout == nil {
		return ui.Stdout()
	}

	return p.Stdout
}

func (p *Parser) stderr() io.Writer {
	if p.Stderr == nil {
		return ui.Stderr()
	}

	return p.Stderr
}

// Parse parses the command line arguments (without the command name). The --verbose and --help options are
// registered automatically.
//
// With --help the help message is printed and ErrHelp is returned. A malformed command line results in the help
// message on stdout, the error on stderr, and a *ParseError. Option values that are not allowed are reported
// using the logger and ErrInvalidValue is returned.
func (p *Parser) Parse(argv []string) (*Args, error) { //nolint:funlen
	var (
		options = p.allOptions()
		fs      = pflag.NewFlagSet(p.name, pflag.ContinueOnError)
		bound   = make([]*boundOption, len(options))
	)

	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	fs.SortFlags = false

	for i, o := range options {
		bound[i] = o.bind(fs)
	}

	if err := fs.Parse(argv); err != nil {
		return nil, p.parseError(err)
	}

	var values = make(map[string]any, len(bound))

	for _, b := range bound {
		values[b.name] = b.value()
	}

	if help, _ := values["help"].(bool); help {
		p.PrintHelp()

		return nil, ErrHelp
	}

	if p.positional == nil && fs.NArg() > 0 {
		return nil, p.parseError(errors.Errorf("unrecognized arguments: %s", strings.Join(fs.Args(), " ")))
	}

	verbose, _ := values["verbose"].(bool)

	var log = p.newLogger(verbose)

	for _, b := range bound {
		if err := b.fromEnv(fs); err != nil {
			log.Error(err.Error())

			return nil, err
		}

		values[b.name] = b.value()
	}

	for _, b := range bound {
		if err := b.validate(); err != nil {
			log.Error(err.Error())

			return nil, err
		}
	}

	delete(values, "verbose")
	delete(values, "help")

	return &Args{Positional: fs.Args(), Log: log, values: values}, nil
}

func (p *Parser) parseError(err error) error {
	p.PrintHelp()

	_, _ = fmt.Fprintf(p.stderr(), "%s: error: %s\n", p.name, err)

	return &ParseError{Command: p.name, Err: err}
}

func (p *Parser) newLogger(verbose bool) logger.Logger {
	var warnings []string

	rawLevel, _ := env.LogLevel.Lookup()

	lvl, lErr := logger.ParseLevel(rawLevel)
	if lErr != nil {
		warnings = append(warnings, fmt.Sprintf("Ignoring %s: %s", env.LogLevel, lErr))
	}

	if verbose { // the flag wins over the environment
		lvl = logger.DebugLevel
	}

	var opts = []logger.LogOption{logger.WithStdOut(p.stdout()), logger.WithStdErr(p.stderr())}

	rawFormat, _ := env.LogFormat.Lookup()

	f, fErr := logger.ParseFormat(rawFormat)
	if fErr != nil {
		warnings = append(warnings, fmt.Sprintf("Ignoring %s: %s", env.LogFormat, fErr))
	}

	var log = logger.New(lvl, append(opts, logger.WithFormat(f))...)

	for _, w := range warnings {
		log.Warn(w)
	}

	return log
}

// Help returns the help message of the command (a panel with the description, the usage line and the tables of
// arguments and options).
func (p *Parser) Help() string {
	var (
		options = p.allOptions()
		width   = ui.PanelWidth(helpWidth)
		inner   = ui.PanelContentWidth(width)
		lines   = make([]string, 0, 16) //nolint:mnd
	)

	for _, line := range ui.Wrap(p.description, inner) {
		lines = append(lines, ui.Center(line, inner))
	}

	lines = append(lines, "", ui.Paint(ui.BrightMagenta, "Usage:"))
	lines = append(lines, p.usageLines(options, inner)...)

	if p.positional != nil {
		lines = append(lines, "", ui.Paint(ui.BrightMagenta, "Arguments:"))

		var hints []string

		if p.positional.DefaultText != "" {
			hints = append(hints, "Default:  "+p.positional.DefaultText)
		}

		lines = append(lines, ui.Table(inner, helpRow(
			"  "+ui.Paint(ui.BrightGreen, p.positional.label()), p.positional.Description, hints,
		))...)
	}

	lines = append(lines, "", ui.Paint(ui.BrightMagenta, "Options:"))

	var rows = make([]ui.Row, 0, len(options))

	for _, o := range options {
		var flags, description, hints = o.optionHelp()

		short, long, _ := strings.Cut(flags, " | ")

		rows = append(rows, helpRow(
			"  "+ui.Paint(ui.BrightCyan, short)+ui.Paint(ui.BrightBlack, " | ")+ui.Paint(ui.BrightCyan, long),
			description, hints,
		))
	}

	lines = append(lines, ui.Table(inner, rows...)...)
	lines = append(lines, "", ui.AlignRight(signature(), inner))

	return ui.Panel(ui.Paint(ui.BrightYellow, p.name), width, lines...)
}

// PrintHelp writes the help message to stdout.
func (p *Parser) PrintHelp() { _, _ = fmt.Fprintln(p.stdout(), p.Help()) }

func helpRow(left, description string, hints []string) ui.Row {
	var cells = []ui.Cell{{Text: description}}

	for _, hint := range hints {
		cells = append(cells, ui.Cell{Text: "  ╰─ " + hint, Color: ui.BrightBlack})
	}

	return ui.Row{Left: left, Right: cells}
}

// usageLines renders the usage line, wrapped to the given width.
func (p *Parser) usageLines(options []Optioner, width int) []string {
	var tokens = make([]string, 0, len(options)+1)

	if p.positional != nil {
		tokens = append(tokens, "["+p.positional.label()+" ...]")
	}

	for _, o := range options {
		tokens = append(tokens, o.usageToken())
	}

	var (
		indent = strings.Repeat(" ", ui.Width(p.name)+3) //nolint:mnd
		line   = "  " + ui.Paint(ui.BrightYellow, p.name)
		used   = ui.Width(p.name) + 2 //nolint:mnd
		lines  []string
	)

	for i, token := range tokens {
		var w = ui.Width(token)

		if i > 0 && used+1+w > width {
			lines = append(lines, line)
			line, used = indent+p.styleUsageToken(token), len(indent)+w

			continue
		}

		line += " " + p.styleUsageToken(token)
		used += 1 + w
	}

	return append(lines, line)
}

// styleUsageToken highlights brackets, flags and the positional label of the usage token.
func (p *Parser) styleUsageToken(token string) string {
	var inner = strings.TrimSuffix(strings.TrimPrefix(token, "["), "]")

	head, tail, found := strings.Cut(inner, " ")

	switch {
	case strings.HasPrefix(head, "-"):
		head = ui.Paint(ui.BrightCyan, head)
	case p.positional != nil && head == p.positional.label():
		head = ui.Paint(ui.BrightGreen, head)
	}

	if found {
		head += " " + tail
	}

	return ui.Paint(ui.BrightBlack, "[") + head + ui.Paint(ui.BrightBlack, "]")
}

// signature is the styled application name shown at the bottom of help panels.
func signature() string {
	return ui.Paint(ui.BrightYellow, "qu") +
		ui.Paint(ui.BrightWhite, "ee") +
		ui.Paint(ui.Magenta, "mo") +
		ui.Paint(ui.BrightBlack, "ji")
}

// Bool returns the value of the boolean option.
func (a *Args) Bool(name string) bool {
	v, _ := a.values[name].(bool)

	return v
}

// Int returns the value of the integer option.
func (a *Args) Int(name string) int {
	v, _ := a.values[name].(int)

	return v
}

// String returns the value of the string option.
func (a *Args) String(name string) string {
	v, _ := a.values[name].(string)

	return v
}

// Ints returns the values of the multi-value integer option.
func (a *Args) Ints(name string) []int {
	v, _ := a.values[name].([]int)

	return v
}

// Strings returns the values of the multi-value string option.
func (a *Args) Strings(name string) []string {
	v, _ := a.values[name].([]string)

	return v
}
