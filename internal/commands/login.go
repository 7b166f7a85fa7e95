package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/oauth2"

	"todoview/internal/exitcode"
)

// EnvToken supplies the token when --token is not given.
const EnvToken = "TODOVIEW_TOKEN"

func init() {
	Register(&LoginCmd{})
}

// LoginCmd stores a bearer token for the API.
type LoginCmd struct {
	token string
}

// SetToken sets the token (for testing).
func (c *LoginCmd) SetToken(token string) {
	c.token = token
}

func (c *LoginCmd) Name() string       { return "login" }
func (c *LoginCmd) Aliases() []string  { return nil }
func (c *LoginCmd) Synopsis() string   { return "Store an API token" }
func (c *LoginCmd) Usage() string      { return "todoview login --token <token>" }
func (c *LoginCmd) NeedsBackend() bool { return false }

func (c *LoginCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.token, "token", "", "")
}

func (c *LoginCmd) Run(ctx context.Context, env *Env, args []string) int {
	token := strings.TrimSpace(c.token)
	if token == "" {
		token = strings.TrimSpace(os.Getenv(EnvToken))
	}
	if token == "" {
		fmt.Fprintf(env.ErrOut, "error: token required (use --token or %s)\n", EnvToken)
		return exitcode.UserError
	}

	err := env.Config.SaveToken(&oauth2.Token{
		AccessToken: token,
		TokenType:   "Bearer",
	})
	if err != nil {
		fmt.Fprintf(env.ErrOut, "error: failed to save token: %v\n", err)
		return exitcode.AuthError
	}

	if !env.Config.Quiet {
		fmt.Fprintln(env.Out, "ok")
	}
	return exitcode.Success
}
