// Package main provides the entry point for the focusfive CLI.
package main

import (
	"context"
	"os"

	"github.com/mrz1836/focusfive/internal/cli"
	"github.com/mrz1836/focusfive/internal/signal"
)

// Build information set via ldflags at release time.
var (
	version = "dev"     //nolint:gochecknoglobals // Set via ldflags
	commit  = "none"    //nolint:gochecknoglobals // Set via ldflags
	date    = "unknown" //nolint:gochecknoglobals // Set via ldflags
)

func main() {
	os.Exit(run())
}

// run holds the real entry point so deferred cleanup executes before the
// process exits.
func run() int {
	handler := signal.NewHandler(context.Background())
	defer handler.Stop()

	info := cli.BuildInfo{Version: version, Commit: commit, Date: date}

	err := cli.Execute(handler.Context(), info)
	cli.CloseLogFile()
	return cli.ExitCodeForError(err)
}
