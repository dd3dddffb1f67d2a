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

func init() {
	Register(&ClearCmd{})
}

// ClearCmd implements the clear command.
type ClearCmd struct{}

func (c *ClearCmd) Name() string      { return "clear" }
func (c *ClearCmd) Aliases() []string { return nil }
func (c *ClearCmd) Synopsis() string  { return "Delete all completed tasks" }
func (c *ClearCmd) Usage() string     { return "tasklite clear" }
func (c *ClearCmd) NeedsStore() bool  { return true }

func (c *ClearCmd) RegisterFlags(fs *pflag.FlagSet) {}

func (c *ClearCmd) Run(ctx context.Context, cfg *config.Config, store *task.Store, args []string, out, errOut io.Writer) int {
	if rejectArgs(args, errOut) {
		return exitcode.UserError
	}

	n, err := store.ClearCompleted(ctx)
	if err != nil {
		return storageFailure(cfg, errOut, err)
	}
	if n == 0 {
		if !cfg.Quiet {
			fmt.Fprintln(out, "nothing to clear")
		}
		return exitcode.Success
	}
	return reportOK(cfg, out)
}
