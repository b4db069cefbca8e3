package generatepngs

import (
	"cmp"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
	"github.com/pkg/errors"

	"github.com/nuztalgia/queemoji/internal/finder"
	"github.com/nuztalgia/queemoji/internal/logger"
	"github.com/nuztalgia/queemoji/internal/render"
	"github.com/nuztalgia/queemoji/internal/ui"
)

// Image size limits (in pixels).
const (
	MinSize     = 16
	MaxSize     = 1024
	DefaultSize = 128
)

const (
	// DefaultTemplate is the default output path template.
	DefaultTemplate = "./png/${input_name}"

	// DefaultInputDir is the directory (relative to the working directory) used when no input paths are given.
	DefaultInputDir = "svg"

	// SourceExt is the extension of the source files.
	SourceExt = "svg"
)

var (
	ErrNoValidInputs  = errors.New("no valid SVG source files")
	ErrInvalidOptions = errors.New("invalid conversion options")
)

type (
	// Options of a conversion run.
	Options struct {
		Paths    []string // input files and directories, DefaultInputDir when empty
		Template Template
		Borders  []Border
		Sizes    []int
		Replace  bool
	}

	// Summary is the outcome of a conversion run.
	Summary struct {
		Generated, Skipped, Failed int
	}

	// Converter generates PNG images for every combination of the input files, border styles and sizes.
	Converter struct {
		Log        logger.Logger
		Rasterizer render.Rasterizer
		WorkDir    string // empty means the current working directory
	}
)

// ValidateSize checks that the size is within the allowed limits.
func ValidateSize(size int) error {
	if size < MinSize || size > MaxSize {
		return errors.Errorf("size must be a number between %d and %d: %d", MinSize, MaxSize, size)
	}

	return nil
}

// Validate checks the options. Values are invariant across all the jobs of a run, so they are checked once.
func (o Options) Validate() error {
	if o.Template.IsZero() {
		return errors.Wrap(ErrInvalidOptions, "output path template is not set")
	}

	if len(o.Borders) == 0 || len(o.Sizes) == 0 {
		return errors.Wrap(ErrInvalidOptions, "at least one border style and one size are required")
	}

	for _, b := range o.Borders {
		if _, err := ParseBorder(string(b)); err != nil {
			return errors.Wrap(ErrInvalidOptions, err.Error())
		}
	}

	for _, s := range o.Sizes {
		if err := ValidateSize(s); err != nil {
			return errors.Wrap(ErrInvalidOptions, err.Error())
		}
	}

	return nil
}

// Run validates the options, collects the input files and runs the jobs one by one. A failed job does not stop
// the run. The error is returned only for invalid options, no valid inputs, or a canceled context.
func (c *Converter) Run(ctx context.Context, opts Options) (Summary, error) { //nolint:funlen
	var summary Summary

	if err := opts.Validate(); err != nil {
		return summary, err
	}

	workDir, err := c.workDir()
	if err != nil {
		return summary, err
	}

	var paths = make([]string, 0, max(len(opts.Paths), 1))

	for _, path := range opts.Paths {
		if !filepath.IsAbs(path) {
			path = filepath.Join(workDir, path)
		}

		paths = append(paths, path)
	}

	if len(paths) == 0 {
		var def = filepath.Join(workDir, DefaultInputDir)

		c.Log.Debug(fmt.Sprintf("No input paths provided. Checking '%s'.", finder.DisplayPath(def, workDir)))

		paths = append(paths, def)
	}

	var files = finder.ValidFiles(ctx, paths, workDir, c.Log.Warn, SourceExt)

	if len(files) == 0 {
		c.Log.Error(ui.Paint(ui.BrightRed, "No valid SVG source files were detected."))

		return summary, ErrNoValidInputs
	}

	c.Log.Info(ui.Paint(ui.BrightGreen, fmt.Sprintf("Detected %s. Starting PNG image creation.",
		english.Plural(len(files), "SVG source file", "SVG source files"),
	)))

	var (
		borders = sortedUnique(opts.Borders)
		sizes   = sortedUnique(opts.Sizes)
	)

	for _, file := range files {
		var (
			display    = finder.DisplayPath(file, workDir)
			jobsInFile = len(borders) * len(sizes)
		)

		svg, loadErr := loadSVG(file)
		if loadErr != nil {
			c.Log.Error(fmt.Sprintf("Cannot use the SVG source file %s: %s", display, loadErr))
			summary.Failed += jobsInFile

			continue
		}

		for _, border := range borders {
			data, bErr := svg.WithBorder(string(border))
			if bErr != nil {
				c.Log.Error(fmt.Sprintf("Cannot set the %s border for %s: %s", border, display, bErr))
				summary.Failed += len(sizes)

				continue
			}

			for _, size := range sizes {
				if err = ctx.Err(); err != nil {
					c.Log.Warn("Interrupted, the remaining images are not generated.")

					return summary, err
				}

				c.Log.Debug(fmt.Sprintf("Creating %dpx image with %s border for input file: %s",
					size, border.Describe(), display,
				))

				switch c.attempt(Job{
					Input:    file,
					Border:   border,
					Size:     size,
					Template: opts.Template,
					Replace:  opts.Replace,
				}, data, workDir) {
				case outcomeGenerated:
					summary.Generated++
				case outcomeSkipped:
					summary.Skipped++
				case outcomeFailed:
					summary.Failed++
				}
			}
		}
	}

	c.Log.Debug("Jobs outcome", "generated:", summary.Generated, "skipped:", summary.Skipped, "failed:", summary.Failed)

	var summaryColor = ui.BrightYellow

	if summary.Generated > 0 {
		summaryColor = ui.BrightGreen
	}

	c.Log.Info(ui.Paint(summaryColor,
		fmt.Sprintf("Script complete. Generated %s.", english.Plural(summary.Generated, "new file", "new files")),
	))

	return summary, nil
}

type outcome uint8

const (
	outcomeGenerated outcome = iota
	outcomeSkipped
	outcomeFailed
)

// attempt runs a single job.
func (c *Converter) attempt(job Job, svg []byte, workDir string) outcome {
	var (
		out     = job.OutputPath(workDir)
		display = finder.DisplayPath(out, workDir)
	)

	if _, err := os.Stat(out); err == nil && !job.Replace {
		c.Log.Info("Output file already exists and '-r' was not specified: " + display)

		return outcomeSkipped
	}

	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil { //nolint:mnd
		c.Log.Error(fmt.Sprintf("Cannot create the directory for %s: %s", display, err))

		return outcomeFailed
	}

	if err := c.Rasterizer.Rasterize(svg, job.Size, job.Size, out); err != nil {
		c.Log.Error(fmt.Sprintf("Failed to generate image %s: %s", display, err))

		return outcomeFailed
	}

	if stat, err := os.Stat(out); err == nil {
		c.Log.Info("Successfully generated image: "+display, humanize.Bytes(uint64(stat.Size()))) //nolint:gosec
	} else {
		c.Log.Info("Successfully generated image: " + display)
	}

	return outcomeGenerated
}

func (c *Converter) workDir() (string, error) {
	if c.WorkDir != "" {
		return filepath.Abs(c.WorkDir)
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(err, "cannot detect the working directory")
	}

	return wd, nil
}

// loadSVG reads the SVG source and locates its border element.
func loadSVG(path string) (*render.SVG, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "cannot open the file")
	}

	defer func() { _ = f.Close() }()

	return render.ParseSVG(f)
}

// sortedUnique returns a sorted copy of the values without duplicates.
func sortedUnique[T cmp.Ordered](values []T) []T {
	var out = slices.Clone(values)

	slices.Sort(out)

	return slices.Compact(out)
}
