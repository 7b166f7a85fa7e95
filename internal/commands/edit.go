package commands

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"todoview/internal/exitcode"
)

func init() {
	Register(&EditCmd{})
}

// EditCmd implements the edit command.
type EditCmd struct{}

func (c *EditCmd) Name() string       { return "edit" }
func (c *EditCmd) Aliases() []string  { return []string{"rename"} }
func (c *EditCmd) Synopsis() string   { return "Change a task title" }
func (c *EditCmd) Usage() string      { return "todoview edit <ref> <title...>" }
func (c *EditCmd) NeedsBackend() bool { return true }

func (c *EditCmd) RegisterFlags(fs *flag.FlagSet) {}

// Run submits the new title. An empty title keeps the current one and
// just prints the list again.
func (c *EditCmd) Run(ctx context.Context, env *Env, args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(env.ErrOut, "error: task reference required")
		return exitcode.UserError
	}

	row, code := resolveArg(ctx, env, args[0])
	if code != exitcode.Success {
		return code
	}

	title := strings.Join(args[1:], " ")
	ctrl := newController(env, env.Config.Quiet)
	return exitCodeFor(ctrl.SubmitTitleEdit(ctx, row.ID, title))
}
