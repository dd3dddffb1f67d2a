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
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "tasklite help [command]" }
func (c *HelpCmd) NeedsStore() bool  { return false }

func (c *HelpCmd) RegisterFlags(fs *pflag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, store *task.Store, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(out, helpText)
		return exitcode.Success
	}

	cmd, ok := DefaultRegistry.Find(args[0])
	if !ok {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", args[0])
		return exitcode.UserError
	}
	fmt.Fprintf(out, "Usage:\n  %s\n\n%s\n", cmd.Usage(), cmd.Synopsis())
	if aliases := cmd.Aliases(); len(aliases) > 0 {
		fmt.Fprintf(out, "Aliases: %v\n", aliases)
	}
	return exitcode.Success
}

const helpText = `Usage:
  tasklite                                   List all tasks
  tasklite list [common flags] [-a | -c] [-v]
  tasklite add [common flags] [--print-id] <title...>
  tasklite toggle [common flags] <ref>...
  tasklite rm [common flags] <ref>...
  tasklite clear [common flags]
  tasklite status [common flags]
  tasklite ui [common flags]
  tasklite help [command]
  tasklite version

A <ref> is a task number from the listing, a task id, or a unique id
prefix of at least 4 characters.

Common flags:
  --config <dir>      Override config directory
  --backend <name>    Storage backend: file, sqlite or memory
  --quiet             Suppress informational output
  --debug             Print debug logs to stderr
`
