package cmd_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nuztalgia/queemoji/internal/cli/cmd"
	"github.com/nuztalgia/queemoji/internal/ui"
)

var testBanner = []cmd.BannerLine{ //nolint:gochecknoglobals
	{Text: " _____ ", Color: ui.BrightMagenta},
	{Text: "|_   _|", Color: ui.BrightYellow},
	{Text: "  |_|                    |_|  "},
}

func newTestRoot(t *testing.T) (*cmd.Root, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	ui.ColorsEnabled(false)

	r, err := cmd.NewRoot("test-pkg", "1.2.3", "Does test things.", testBanner...)
	require.NoError(t, err)

	var stdOut, stdErr bytes.Buffer

	r.Stdout, r.Stderr = &stdOut, &stdErr

	return r, &stdOut, &stdErr
}

func TestNewRoot(t *testing.T) {
	for name, tc := range map[string]struct {
		giveBanner []cmd.BannerLine
		wantErr    bool
	}{
		"valid":            {giveBanner: testBanner},
		"single line":      {giveBanner: []cmd.BannerLine{{Text: "|_|   |_|"}}},
		"no lines":         {wantErr: true},
		"no gap":           {giveBanner: []cmd.BannerLine{{Text: "|_|_|"}}, wantErr: true},
		"no right border":  {giveBanner: []cmd.BannerLine{{Text: "|_|    "}}, wantErr: true},
		"letters in there": {giveBanner: []cmd.BannerLine{{Text: "|a|   |_|"}}, wantErr: true},
	} {
		t.Run(name, func(t *testing.T) {
			r, err := cmd.NewRoot("pkg", "1.0.0", "desc", tc.giveBanner...)

			if tc.wantErr {
				require.ErrorIs(t, err, cmd.ErrMalformedBanner)
				assert.Nil(t, r)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "pkg 1.0.0", r.Caption())
		})
	}

	t.Run("unknown version", func(t *testing.T) {
		r, err := cmd.NewRoot("pkg", "", "desc", testBanner...)
		require.NoError(t, err)

		assert.Equal(t, "pkg ?.?.?", r.Caption())
	})
}

func TestRoot_AddCommand(t *testing.T) {
	var action = func(context.Context, cmd.Streams, []string) int { return 0 }

	r, _, _ := newTestRoot(t)

	require.NoError(t, r.AddCommand(cmd.Descriptor{
		Identifier: "/src/generate_pngs.go",
		Summary:    "Creates PNG images.\n\nMore details here.",
		Action:     action,
	}))
	require.NoError(t, r.AddCommand(cmd.Descriptor{Identifier: "/src/aaa.go", Summary: "First?", Action: action}))

	assert.ErrorIs(t, r.AddCommand(cmd.Descriptor{Identifier: "/other/generate_pngs.go", Action: action}),
		cmd.ErrDuplicateCommand,
	)
	assert.ErrorIs(t, r.AddCommand(cmd.Descriptor{Identifier: "/src/Bad.go", Action: action}), cmd.ErrModuleLoad)
	assert.ErrorIs(t, r.AddCommand(cmd.Descriptor{Identifier: "/src/no_action.go"}), cmd.ErrModuleLoad)

	assert.Equal(t, [][2]string{
		{"generate-pngs", "Creates PNG images."},
		{"aaa", "First?"},
	}, r.Commands())
}

func TestRoot_Help(t *testing.T) {
	r, _, _ := newTestRoot(t)

	for _, name := range []string{"zzz", "make_things", "aaa"} {
		require.NoError(t, r.AddCommand(cmd.Descriptor{
			Identifier: "/src/" + name + ".go",
			Summary:    "Summary of " + name,
			Action:     func(context.Context, cmd.Streams, []string) int { return 0 },
		}))
	}

	var (
		help  = strings.TrimRight(r.Help(), "\n")
		lines = strings.Split(help, "\n")
	)

	for _, line := range lines {
		assert.Equal(t, 68, ui.Width(line), line)
	}

	var inner = ui.PanelContentWidth(68)

	assert.Contains(t, lines[1], ui.Center(" _____ ", inner))
	assert.Contains(t, lines[2], ui.Center("|_   _|", inner))
	assert.Contains(t, lines[3], strings.Repeat(" ", (inner-7)/2)+"  |_|"+"   test-pkg 1.2.3   "+"|_|  ")

	var rest = help

	for _, want := range []string{
		"Does test things.",
		"Command", "Description",
		"zzz", "Summary of zzz",
		"make-things", "Summary of make_things",
		"aaa", "Summary of aaa",
	} {
		var idx = strings.Index(rest, want)

		require.NotEqual(t, -1, idx, "%q not found in:\n%s", want, help)

		rest = rest[idx+len(want):]
	}
}

func TestRoot_Run(t *testing.T) {
	var (
		gotArgs []string
		gotCtx  context.Context
	)

	newRoot := func(t *testing.T) (*cmd.Root, *bytes.Buffer, *bytes.Buffer) {
		t.Helper()

		r, stdOut, stdErr := newTestRoot(t)

		require.NoError(t, r.AddCommand(cmd.Descriptor{
			Identifier: "/src/do_it.go",
			Summary:    "Does it.",
			Action: func(ctx context.Context, s cmd.Streams, args []string) int {
				gotCtx, gotArgs = ctx, args
				_, _ = s.Stdout.Write([]byte("done\n"))

				if len(args) > 0 && args[0] == "fail" {
					return 3
				}

				return 0
			},
		}))

		return r, stdOut, stdErr
	}

	for name, tc := range map[string]struct {
		giveArgs   []string
		wantCode   int
		wantHelp   bool
		wantStdOut string
		wantStdErr string
		wantArgs   []string
	}{
		"no arguments":    {wantHelp: true},
		"help":            {giveArgs: []string{"--help"}, wantHelp: true},
		"help (short)":    {giveArgs: []string{"-h"}, wantHelp: true},
		"version":         {giveArgs: []string{"--version"}, wantStdOut: "test-pkg 1.2.3\n"},
		"help wins":       {giveArgs: []string{"--version", "--help"}, wantHelp: true},
		"help before cmd": {giveArgs: []string{"-h", "do-it"}, wantHelp: true},
		"command":         {giveArgs: []string{"do-it"}, wantStdOut: "done\n", wantArgs: []string{}},
		"command flags":   {giveArgs: []string{"do-it", "-h", "--x=1", "a"}, wantStdOut: "done\n", wantArgs: []string{"-h", "--x=1", "a"}},
		"command failure": {giveArgs: []string{"do-it", "fail"}, wantCode: 3, wantStdOut: "done\n", wantArgs: []string{"fail"}},
		"unknown command": {giveArgs: []string{"nope"}, wantCode: 2, wantStdErr: `unknown command: "nope"`},
		"unknown flag":    {giveArgs: []string{"--nope"}, wantCode: 2, wantHelp: true, wantStdErr: "error:"},
	} {
		t.Run(name, func(t *testing.T) {
			gotArgs, gotCtx = nil, nil

			r, stdOut, stdErr := newRoot(t)

			type ctxKey struct{}

			var ctx = context.WithValue(context.Background(), ctxKey{}, "value")

			assert.Equal(t, tc.wantCode, r.Run(ctx, tc.giveArgs))

			if tc.wantHelp {
				assert.Equal(t, r.Help()+"\n", stdOut.String())
			} else {
				assert.Equal(t, tc.wantStdOut, stdOut.String())
			}

			if tc.wantStdErr != "" {
				assert.Contains(t, stdErr.String(), tc.wantStdErr)
			} else {
				assert.Empty(t, stdErr.String())
			}

			if tc.wantArgs != nil {
				if len(tc.wantArgs) == 0 {
					assert.Empty(t, gotArgs)
				} else {
					assert.Equal(t, tc.wantArgs, gotArgs)
				}

				require.NotNil(t, gotCtx)
				assert.Equal(t, "value", gotCtx.Value(ctxKey{}))
			} else {
				assert.Nil(t, gotCtx)
			}
		})
	}
}
