package commands

import (
	"context"
	"flag"

	"todoview/internal/exitcode"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string       { return "help" }
func (c *HelpCmd) Aliases() []string  { return nil }
func (c *HelpCmd) Synopsis() string   { return "Print usage" }
func (c *HelpCmd) Usage() string      { return "todoview help" }
func (c *HelpCmd) NeedsBackend() bool { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, env *Env, args []string) int {
	DefaultRegistry.WriteUsage(env.Out)
	return exitcode.Success
}

const commonFlagsText = `Common flags:
  --config <dir>   Override config directory
  --url <url>      Override API base URL
  --quiet          Suppress informational output
  --debug          Write debug logs

A <ref> is a row number as printed by list, or #<id>.
`
