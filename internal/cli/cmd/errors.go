package cmd

import (
	"fmt"

	"github.com/pkg/errors"
)

// Construction-time errors. They mean the command line interface is declared incorrectly.
var (
	ErrInvalidIdentifier   = errors.New("invalid command identifier")
	ErrInvalidArgumentName = errors.New("invalid argument name or description")
	ErrDuplicateArgument   = errors.New("duplicate argument")
	ErrMalformedBanner     = errors.New("malformed banner")
	ErrModuleLoad          = errors.New("command cannot be loaded")
	ErrDuplicateCommand    = errors.New("duplicate command")
)

// Invocation errors.
var (
	ErrHelp         = errors.New("help requested")
	ErrInvalidValue = errors.New("invalid option value")
)

// ParseError is returned when the command line cannot be parsed (unknown flags, malformed values and so on).
type ParseError struct {
	Command string
	Err     error
}

func (e *ParseError) Error() string { return e.Err.Error() }
func (e *ParseError) Unwrap() error { return e.Err }

// valueError describes an option value rejected by the choices or the validator. It matches ErrInvalidValue.
type valueError struct{ msg string }

func (e *valueError) Error() string        { return e.msg }
func (e *valueError) Is(target error) bool { return target == ErrInvalidValue } //nolint:errorlint

func invalidValuef(format string, v ...any) error { return &valueError{msg: fmt.Sprintf(format, v...)} }

// Exit codes.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// ExitCode maps the error returned by the parser to a process exit code.
func ExitCode(err error) int {
	var parseErr *ParseError

	switch {
	case err == nil, errors.Is(err, ErrHelp):
		return ExitOK
	case errors.As(err, &parseErr), errors.Is(err, ErrInvalidValue):
		return ExitUsage
	}

	return ExitError
}
