package commands

import (
	"context"
	"flag"
	"fmt"

	"todoview/internal/exitcode"
)

func init() {
	Register(&DoneCmd{})
}

// DoneCmd implements the done command. It flips the status, so running it
// on a checked task reopens it.
type DoneCmd struct{}

func (c *DoneCmd) Name() string       { return "done" }
func (c *DoneCmd) Aliases() []string  { return []string{"toggle", "check"} }
func (c *DoneCmd) Synopsis() string   { return "Check or uncheck a task" }
func (c *DoneCmd) Usage() string      { return "todoview done <ref>" }
func (c *DoneCmd) NeedsBackend() bool { return true }

func (c *DoneCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DoneCmd) Run(ctx context.Context, env *Env, args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(env.ErrOut, "error: task reference required")
		return exitcode.UserError
	}
	if len(args) > 1 {
		fmt.Fprintf(env.ErrOut, "error: unexpected argument: %s\n", args[1])
		return exitcode.UserError
	}

	row, code := resolveArg(ctx, env, args[0])
	if code != exitcode.Success {
		return code
	}

	ctrl := newController(env, env.Config.Quiet)
	return exitCodeFor(ctrl.ToggleStatus(ctx, row.ID, row.Done))
}
