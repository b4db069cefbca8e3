package logger

import (
	"fmt"
	"strings"
)

// A Format is a logging format.
type Format uint8

const (
	ConsoleFormat Format = iota // colored lines for humans
	JSONFormat                  // one zap JSON object per line
)

// AllFormats returns the supported formats.
func AllFormats() []Format { return []Format{ConsoleFormat, JSONFormat} }

// AllFormatStrings returns the names of AllFormats.
func AllFormatStrings() []string {
	var result = make([]string, 0, len(AllFormats()))

	for _, f := range AllFormats() {
		result = append(result, f.String())
	}

	return result
}

func (f Format) String() string {
	switch f {
	case ConsoleFormat:
		return "console"
	case JSONFormat:
		return "json"
	}

	return fmt.Sprintf("format(%d)", f)
}

// ParseFormat parses a format name, as set in the LOG_FORMAT environment variable. The case and surrounding
// spaces are ignored, an empty value means ConsoleFormat.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "console", "":
		return ConsoleFormat, nil
	case "json":
		return JSONFormat, nil
	}

	return ConsoleFormat, fmt.Errorf("unrecognized logging format %q (choose from %s)",
		s, strings.Join(AllFormatStrings(), ", "),
	)
}
