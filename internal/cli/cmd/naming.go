package cmd

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

// scriptNameRe matches the trailing source file name segment, e.g. "generate_pngs" in "cli/generate_pngs.go".
var scriptNameRe = regexp.MustCompile(`(?:^|\W)([a-z_]+)\.go$`)

// ScriptName returns the user-facing command name for the given source file identifier (underscores become
// hyphens).
func ScriptName(identifier string) (string, error) {
	var m = scriptNameRe.FindStringSubmatch(identifier)
	if m == nil {
		return "", errors.Wrapf(ErrInvalidIdentifier, "%q", identifier)
	}

	return strings.ReplaceAll(m[1], "_", "-"), nil
}
