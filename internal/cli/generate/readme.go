//go:build readme

package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/nuztalgia/queemoji/internal/cli"
	"github.com/nuztalgia/queemoji/internal/ui"
)

func main() {
	const readmePath = "../../../README.md"

	ui.ColorsEnabled(false)

	stat, statErr := os.Stat(readmePath)
	if statErr != nil {
		fmt.Println("⚠ readme file not found, cli docs not updated:", statErr.Error())

		return
	} else if !stat.Mode().IsRegular() {
		fmt.Println("⚠ readme is not a regular file, cli docs not updated")

		return
	}

	help, err := usage()
	if err != nil {
		panic(err)
	}

	if err = replaceWith(readmePath, help); err != nil {
		panic(err)
	}

	fmt.Println("✔ cli docs updated successfully")
}

// usage renders the root help followed by the help of every command.
func usage() (string, error) {
	app, err := cli.NewApp()
	if err != nil {
		return "", err
	}

	var (
		buf   bytes.Buffer
		parts = []string{app.Help()}
	)

	app.Stdout, app.Stderr = &buf, &buf

	for _, c := range app.Commands() {
		buf.Reset()

		if code := app.Run(context.Background(), []string{c[0], "--help"}); code != 0 {
			return "", fmt.Errorf("%s: help exited with code %d", c[0], code)
		}

		parts = append(parts, strings.TrimRight(buf.String(), "\n"))
	}

	return strings.Join(parts, "\n\n"), nil
}

func replaceWith(filePath string, content string) error {
	const start, end = "<!--GENERATED:APP_README-->", "<!--/GENERATED:APP_README-->"

	// read original file content
	original, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}

	from, to := strings.Index(string(original), start), strings.Index(string(original), end)
	if from == -1 || to == -1 {
		return errors.New("start or end tag not found")
	}

	// write updated content to file
	return os.WriteFile(filePath, []byte(strings.Join([]string{
		string(original[:from+len(start)]),
		"## Command line interface\n",
		"```", content, "```",
		string(original[to:]),
	}, "\n")), 0o664) //nolint:gosec,mnd
}
