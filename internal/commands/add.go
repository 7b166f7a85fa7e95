package commands

import (
	"context"
	"flag"
	"strings"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct{}

func (c *AddCmd) Name() string       { return "add" }
func (c *AddCmd) Aliases() []string  { return []string{"create"} }
func (c *AddCmd) Synopsis() string   { return "Create a task" }
func (c *AddCmd) Usage() string      { return "todoview add <title...>" }
func (c *AddCmd) NeedsBackend() bool { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *AddCmd) Run(ctx context.Context, env *Env, args []string) int {
	// Join args to form title; blank titles are rejected by the controller
	title := strings.Join(args, " ")

	ctrl := newController(env, env.Config.Quiet)
	return exitCodeFor(ctrl.SubmitNewTask(ctx, title))
}
