// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"tasklite/internal/config"
	"tasklite/internal/exitcode"
	"tasklite/internal/task"
)

// Command defines the interface for CLI commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// NeedsStore returns true if the command reads or changes tasks.
	// Commands like help and version return false.
	NeedsStore() bool

	// RegisterFlags registers command-specific flags.
	RegisterFlags(fs *pflag.FlagSet)

	// Run executes the command.
	// cfg is always provided.
	// store is loaded, or nil if NeedsStore() returns false.
	// args contains positional arguments after flag parsing.
	// Returns exit code.
	Run(ctx context.Context, cfg *config.Config, store *task.Store, args []string, out, errOut io.Writer) int
}

// storageFailure reports a failed store operation.
func storageFailure(cfg *config.Config, errOut io.Writer, err error) int {
	cfg.Log().Error("storage operation failed", "err", err)
	fmt.Fprintf(errOut, "error: storage error: %v\n", err)
	return exitcode.StorageError
}

// rejectArgs fails if a command that takes no arguments got some.
func rejectArgs(args []string, errOut io.Writer) bool {
	if len(args) == 0 {
		return false
	}
	fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
	return true
}

func reportOK(cfg *config.Config, out io.Writer) int {
	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
