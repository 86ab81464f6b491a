// Package main provides the entry point for the dataquality CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Srinivasan2005RV/financial-data-qualtity/internal/cli"
	"github.com/Srinivasan2005RV/financial-data-qualtity/internal/errors"
)

// Build information set via ldflags.
var (
	version = "" //nolint:gochecknoglobals // Set at build time
	commit  = "" //nolint:gochecknoglobals // Set at build time
	date    = "" //nolint:gochecknoglobals // Set at build time
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := cli.Execute(ctx, cli.BuildInfo{Version: version, Commit: commit, Date: date})
	cli.CloseLogFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", errors.UserMessage(err))
		if action := errors.Actionable(err); action != "" {
			fmt.Fprintf(os.Stderr, "Hint:  %s\n", action)
		}
		os.Exit(cli.ExitCodeForError(err))
	}
}
