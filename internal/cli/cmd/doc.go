// Package cmd contains the command line framework: the Root dispatcher that lists the registered commands, and
// the per-command Parser with declarative options, styled help panels and the logger wiring.
//
// Flag parsing is delegated to `github.com/spf13/pflag` (commands) and `github.com/urfave/cli/v2` (root).
package cmd
