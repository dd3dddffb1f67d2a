package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"

	"tasklite/internal/config"
	"tasklite/internal/exitcode"
	"tasklite/internal/task"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct {
	printID bool
}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return []string{"new"} }
func (c *AddCmd) Synopsis() string  { return "Create a task" }
func (c *AddCmd) Usage() string     { return "tasklite add [--print-id] <title...>" }
func (c *AddCmd) NeedsStore() bool  { return true }

func (c *AddCmd) RegisterFlags(fs *pflag.FlagSet) {
	fs.BoolVar(&c.printID, "print-id", false, "print the new task's id instead of ok")
}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, store *task.Store, args []string, out, errOut io.Writer) int {
	// The input field trims; the store keeps whatever it is given.
	title := strings.TrimSpace(strings.Join(args, " "))
	if title == "" {
		fmt.Fprintln(errOut, "error: title required")
		return exitcode.UserError
	}

	t, err := store.Add(ctx, title)
	if err != nil {
		return storageFailure(cfg, errOut, err)
	}

	if c.printID {
		fmt.Fprintln(out, t.ID)
		return exitcode.Success
	}
	return reportOK(cfg, out)
}
