package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nuztalgia/queemoji/internal/cli"
	"github.com/nuztalgia/queemoji/internal/env"
	"github.com/nuztalgia/queemoji/internal/ui"
)

func main() {
	if code := run(os.Args[1:]); code != 0 {
		os.Exit(code)
	}
}

func run(args []string) int {
	if err := env.LoadDotEnv(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "error: "+err.Error())

		return 1
	}

	ui.ColorsEnabled(ui.DetectColors()) // the .env file may change the colors state

	// create a context that is canceled when the user interrupts the program
	var ctx, cancel = signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	app, err := cli.NewApp()
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "error: "+err.Error())

		return 1
	}

	return app.Run(ctx, args)
}
