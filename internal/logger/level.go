package logger

import (
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap/zapcore"
)

// A Level is a logging level.
type Level int8

const (
	DebugLevel Level = iota - 1
	InfoLevel        // default level (zero-value)
	WarnLevel
	ErrorLevel

	noLevel Level = math.MaxInt8 // nothing is logged
)

// AllLevels returns the levels that can be configured.
func AllLevels() []Level { return []Level{DebugLevel, InfoLevel, WarnLevel, ErrorLevel} }

// AllLevelStrings returns the names of AllLevels.
func AllLevelStrings() []string {
	var result = make([]string, 0, len(AllLevels()))

	for _, l := range AllLevels() {
		result = append(result, l.String())
	}

	return result
}

func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "debug"
	case InfoLevel:
		return "info"
	case WarnLevel:
		return "warn"
	case ErrorLevel:
		return "error"
	case noLevel:
		return "none"
	}

	return fmt.Sprintf("level(%d)", l)
}

// zap returns the matching zap level (the numeric values are the same).
func (l Level) zap() zapcore.Level { return zapcore.Level(l) }

// ParseLevel parses a level name, as set in the LOG_LEVEL environment variable. The case and surrounding spaces
// are ignored, an empty value means InfoLevel.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug", "verbose", "trace":
		return DebugLevel, nil
	case "info", "":
		return InfoLevel, nil
	case "warn", "warning":
		return WarnLevel, nil
	case "error":
		return ErrorLevel, nil
	}

	return InfoLevel, fmt.Errorf("unrecognized logging level %q (choose from %s)",
		s, strings.Join(AllLevelStrings(), ", "),
	)
}
