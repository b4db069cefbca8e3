package cli_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nuztalgia/queemoji/internal/cli"
	"github.com/nuztalgia/queemoji/internal/cli/cmd"
	"github.com/nuztalgia/queemoji/internal/ui"
)

func TestNewApp(t *testing.T) {
	ui.ColorsEnabled(false)

	root, err := cli.NewApp()
	require.NoError(t, err)

	assert.Equal(t, [][2]string{{"generate-pngs", "Creates PNG images from source SVG files."}}, root.Commands())
	assert.True(t, strings.HasPrefix(root.Caption(), "queemoji-scripts "))

	var help = root.Help()

	assert.Contains(t, help, ".-----.--.--.-----.-----.--------.-----|__|__|")
	assert.Contains(t, help, root.Caption())
	assert.Contains(t, help, "Utility scripts for working with the queemoji emoji set.")
	assert.Contains(t, help, "generate-pngs")
}

func TestNewApp_Run(t *testing.T) {
	ui.ColorsEnabled(false)

	root, err := cli.NewApp()
	require.NoError(t, err)

	var stdout, stderr bytes.Buffer

	root.Stdout, root.Stderr = &stdout, &stderr

	assert.Equal(t, cmd.ExitOK, root.Run(context.Background(), []string{"--version"}))
	assert.Equal(t, root.Caption()+"\n", stdout.String())

	for _, flag := range []string{"--help", "-h"} {
		stdout.Reset()

		assert.Equal(t, cmd.ExitOK, root.Run(context.Background(), []string{flag}))
		assert.Equal(t, root.Help()+"\n", stdout.String())
		assert.NotContains(t, stdout.String(), "GLOBAL OPTIONS")
	}

	stdout.Reset()

	assert.Equal(t, cmd.ExitOK, root.Run(context.Background(), []string{"generate-pngs", "--help"}))
	assert.Contains(t, stdout.String(), "Creates PNG images from source SVG files.")
	assert.Contains(t, stdout.String(), "--border")
	assert.Empty(t, stderr.String())

	assert.Equal(t, cmd.ExitUsage, root.Run(context.Background(), []string{"generate-png"}))
	assert.Contains(t, stderr.String(), `unknown command: "generate-png"`)
}
