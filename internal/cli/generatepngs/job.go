package generatepngs

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Border is the stroke color of the emoji border element.
type Border string

const (
	BorderBlack Border = "black"
	BorderWhite Border = "white"
	BorderNone  Border = "none"
)

// ErrInvalidBorder is returned for unknown border styles.
var ErrInvalidBorder = errors.New("invalid border style")

// Borders returns all border styles.
func Borders() []Border { return []Border{BorderBlack, BorderWhite, BorderNone} }

// BorderStrings returns all border styles as a strings slice.
func BorderStrings() []string {
	var (
		borders = Borders()
		result  = make([]string, len(borders))
	)

	for i := 0; i < len(borders); i++ {
		result[i] = string(borders[i])
	}

	return result
}

// ParseBorder parses a border style (case is ignored).
func ParseBorder(s string) (Border, error) {
	switch b := Border(strings.ToLower(strings.TrimSpace(s))); b {
	case BorderBlack, BorderWhite, BorderNone:
		return b, nil
	}

	return "", errors.Wrapf(ErrInvalidBorder, "%q (must be one of %s)", s, strings.Join(BorderStrings(), "/"))
}

// Label returns the value of the border_label template placeholder.
func (b Border) Label() string {
	if b == BorderNone {
		return "borderless"
	}

	return "border-" + string(b)
}

// Describe returns the border description for log messages ("black" in "with black border").
func (b Border) Describe() string {
	if b == BorderNone {
		return "no"
	}

	return string(b)
}

// Job is a single conversion: one input file, one border style and one size.
type Job struct {
	Input    string // absolute path to the SVG source
	Border   Border
	Size     int
	Template Template
	Replace  bool
}

// OutputPath resolves the output file path. Relative paths are resolved against the given directory.
func (j Job) OutputPath(workDir string) string {
	var name = filepath.Base(j.Input)

	name = strings.TrimSuffix(name, filepath.Ext(name))

	var path = filepath.FromSlash(j.Template.Resolve(map[string]string{
		PlaceholderInputName:   name,
		PlaceholderBorderLabel: j.Border.Label(),
		PlaceholderSize:        strconv.Itoa(j.Size),
	})) + ".png"

	if !filepath.IsAbs(path) {
		path = filepath.Join(workDir, path)
	}

	return filepath.Clean(path)
}
