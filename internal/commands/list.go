package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"tasklite/internal/config"
	"tasklite/internal/exitcode"
	"tasklite/internal/output"
	"tasklite/internal/task"
)

func init() {
	Register(&ListCmd{})
	Register(&StatusCmd{})
}

// ListCmd implements the list command.
// Handles both `tasklite` (no args) and `tasklite list`.
type ListCmd struct {
	active    bool
	completed bool
	verbose   bool
}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "List tasks" }
func (c *ListCmd) Usage() string {
	return "tasklite list [--active | --completed] [--verbose]"
}
func (c *ListCmd) NeedsStore() bool { return true }

func (c *ListCmd) RegisterFlags(fs *pflag.FlagSet) {
	fs.BoolVarP(&c.active, "active", "a", false, "show only active tasks")
	fs.BoolVarP(&c.completed, "completed", "c", false, "show only completed tasks")
	fs.BoolVarP(&c.verbose, "verbose", "v", false, "show task ids")
}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, store *task.Store, args []string, out, errOut io.Writer) int {
	if rejectArgs(args, errOut) {
		return exitcode.UserError
	}
	if c.active && c.completed {
		fmt.Fprintln(errOut, "error: cannot use both --active and --completed")
		return exitcode.UserError
	}

	tasks := store.Tasks()
	if len(tasks) == 0 {
		if !cfg.Quiet {
			fmt.Fprintln(out, "no tasks found")
		}
		return exitcode.Success
	}

	// Numbers stay those of the full listing so they work as refs.
	for i, t := range tasks {
		if c.active && t.Completed || c.completed && !t.Completed {
			continue
		}
		if c.verbose {
			output.FormatTaskVerbose(out, i+1, t)
		} else {
			output.FormatTask(out, i+1, t)
		}
	}
	output.FormatStatus(out, store.ActiveCount(), store.CompletedCount())
	return exitcode.Success
}

// StatusCmd implements the status command.
type StatusCmd struct{}

func (c *StatusCmd) Name() string      { return "status" }
func (c *StatusCmd) Aliases() []string { return nil }
func (c *StatusCmd) Synopsis() string  { return "Print active and completed counts" }
func (c *StatusCmd) Usage() string     { return "tasklite status" }
func (c *StatusCmd) NeedsStore() bool  { return true }

func (c *StatusCmd) RegisterFlags(fs *pflag.FlagSet) {}

func (c *StatusCmd) Run(ctx context.Context, cfg *config.Config, store *task.Store, args []string, out, errOut io.Writer) int {
	if rejectArgs(args, errOut) {
		return exitcode.UserError
	}
	fmt.Fprintln(out, output.StatusLine(store.ActiveCount(), store.CompletedCount()))
	return exitcode.Success
}
