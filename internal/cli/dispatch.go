// Package cli parses the command line and dispatches to commands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"

	"tasklite/internal/backend"
	"tasklite/internal/commands"
	"tasklite/internal/config"
	"tasklite/internal/exitcode"
	"tasklite/internal/persist"
	"tasklite/internal/storage"
	"tasklite/internal/task"
)

// StorageFactory opens the storage backend for a config.
// Used to inject a fake backend in tests.
type StorageFactory func(ctx context.Context, cfg *config.Config) (storage.Storage, error)

// Dispatcher handles command-line parsing and dispatch.
type Dispatcher struct {
	registry *commands.Registry
	factory  StorageFactory
}

// NewDispatcher creates a dispatcher. A nil factory opens the backend
// named by the configuration.
func NewDispatcher(registry *commands.Registry, factory StorageFactory) *Dispatcher {
	if factory == nil {
		factory = backend.Open
	}
	return &Dispatcher{
		registry: registry,
		factory:  factory,
	}
}

// Run parses arguments and dispatches to the appropriate command.
// Returns the exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, out, errOut io.Writer) int {
	// No args -> list
	if len(args) == 0 {
		return d.dispatch(ctx, "list", nil, out, errOut)
	}

	name := args[0]
	switch name {
	case "-h", "--help":
		return d.dispatch(ctx, "help", nil, out, errOut)
	case "--version":
		return d.dispatch(ctx, "version", nil, out, errOut)
	}

	// Flags require a command
	if strings.HasPrefix(name, "-") {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", name)
		return exitcode.UserError
	}

	return d.dispatch(ctx, name, args[1:], out, errOut)
}

func (d *Dispatcher) dispatch(ctx context.Context, name string, args []string, out, errOut io.Writer) int {
	cmd, ok := d.registry.Find(name)
	if !ok {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", name)
		return exitcode.UserError
	}
	return d.dispatchCommand(ctx, cmd, args, out, errOut)
}

// commonFlags are accepted by every command.
type commonFlags struct {
	configDir string
	backend   string
	quiet     bool
	debug     bool
}

func (c *commonFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&c.configDir, "config", "", "override config directory")
	fs.StringVar(&c.backend, "backend", "", "storage backend: file, sqlite or memory")
	fs.BoolVarP(&c.quiet, "quiet", "q", false, "suppress informational output")
	fs.BoolVar(&c.debug, "debug", false, "print debug logs to stderr")
}

func (d *Dispatcher) dispatchCommand(ctx context.Context, cmd commands.Command, args []string, out, errOut io.Writer) int {
	fs := pflag.NewFlagSet(cmd.Name(), pflag.ContinueOnError)
	fs.SetOutput(io.Discard) // errors are reported below
	fs.SortFlags = false

	var common commonFlags
	common.register(fs)
	cmd.RegisterFlags(fs)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			fmt.Fprintf(out, "Usage:\n  %s\n\n%s\n\nFlags:\n%s", cmd.Usage(), cmd.Synopsis(), fs.FlagUsages())
			return exitcode.Success
		}
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.UserError
	}

	cfg, err := config.New(common.configDir)
	if err != nil {
		fmt.Fprintf(errOut, "error: config error: %s\n", err)
		return exitcode.ConfigError
	}
	if fs.Changed("backend") {
		if err := config.ValidateBackend(common.backend); err != nil {
			fmt.Fprintf(errOut, "error: config error: %s\n", err)
			return exitcode.ConfigError
		}
		cfg.Backend = common.backend
	}
	cfg.Quiet = common.quiet
	cfg.Debug = common.debug
	if cfg.Debug {
		cfg.Logger = slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	logger := cfg.Log()
	logger.Debug("dispatching", "command", cmd.Name(), "config", cfg.Dir, "backend", cfg.Backend)

	var store *task.Store
	if cmd.NeedsStore() {
		st, err := d.factory(ctx, cfg)
		if err != nil {
			fmt.Fprintf(errOut, "error: storage error: %s\n", err)
			return exitcode.StorageError
		}
		if closer, ok := st.(io.Closer); ok {
			defer func() {
				if err := closer.Close(); err != nil {
					logger.Warn("closing storage", "err", err)
				}
			}()
		}

		store = task.NewStore(persist.New(st, logger), logger)
		if err := store.Load(ctx); err != nil {
			fmt.Fprintf(errOut, "error: storage error: %s\n", err)
			return exitcode.StorageError
		}
	}

	return cmd.Run(ctx, cfg, store, fs.Args(), out, errOut)
}
