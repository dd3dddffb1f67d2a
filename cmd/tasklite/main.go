// Package main is the entry point for the tasklite CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"tasklite/internal/cli"
	"tasklite/internal/commands"
)

func main() {
	// Cancel on interrupt so an open TUI or pending write can stop cleanly
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	// nil factory: open the backend named by config
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, nil)

	code := dispatcher.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
