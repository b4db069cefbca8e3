// Package env contains all about environment variables, that can be used by current application.
package env

import "os"

type envVariable string

const (
	LogLevel  envVariable = "LOG_LEVEL"  // logging level
	LogFormat envVariable = "LOG_FORMAT" // logging format

	ForceColors envVariable = "FORCE_COLOR" // force colored output
	NoColors    envVariable = "NO_COLOR"    // disable colored output, docs: <https://no-color.org/>
	Term        envVariable = "TERM"        // terminal type

	OutputTemplate envVariable = "QUEEMOJI_OUTPUT"  // output path template for generated PNGs
	BorderStyles   envVariable = "QUEEMOJI_BORDER"  // comma-separated border styles
	ImageSizes     envVariable = "QUEEMOJI_SIZE"    // comma-separated image sizes
	ReplaceFiles   envVariable = "QUEEMOJI_REPLACE" // allow existing files to be overwritten
)

// String returns environment variable name in the string representation.
func (e envVariable) String() string { return string(e) }

// Lookup retrieves the value of the environment variable. If the variable is present in the environment the value
// (which may be empty) is returned and the boolean is true. Otherwise the returned value will be empty and the
// boolean will be false.
func (e envVariable) Lookup() (string, bool) { return os.LookupEnv(string(e)) }
