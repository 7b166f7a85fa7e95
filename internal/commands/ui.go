package commands

import (
	"context"
	"flag"
	"fmt"

	"todoview/internal/exitcode"
	"todoview/internal/tui"
)

func init() {
	Register(&UICmd{})
}

// UICmd starts the interactive screen.
type UICmd struct{}

func (c *UICmd) Name() string       { return "ui" }
func (c *UICmd) Aliases() []string  { return nil }
func (c *UICmd) Synopsis() string   { return "Open the interactive task screen" }
func (c *UICmd) Usage() string      { return "todoview ui" }
func (c *UICmd) NeedsBackend() bool { return true }
func (c *UICmd) Interactive() bool  { return true }

func (c *UICmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *UICmd) Run(ctx context.Context, env *Env, args []string) int {
	if len(args) > 0 {
		fmt.Fprintf(env.ErrOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}
	if err := tui.Run(ctx, env.Service, env.Logger, env.Out); err != nil {
		fmt.Fprintf(env.ErrOut, "error: %v\n", err)
		return exitcode.UserError
	}
	return exitcode.Success
}
