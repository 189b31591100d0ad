// Package main is the entrypoint of vidfetch.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"vidfetch/internal/cfg"
	"vidfetch/internal/process"
)

// main runs the download and exits non-zero on any failure.
func main() {
	// Termination stops the engine; there is no other cancellation path
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := cfg.Execute(ctx)
	cancel()

	os.Exit(process.ExitCode(err))
}
