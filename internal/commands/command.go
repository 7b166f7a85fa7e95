// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"flag"
	"io"

	"github.com/charmbracelet/log"

	"todoview/internal/config"
	"todoview/internal/service"
)

// Env is everything a command runs with.
type Env struct {
	// Config is always provided (config dir, base URL, paths).
	Config *config.Config

	// Service is nil if NeedsBackend() returns false.
	Service service.Service

	// Logger receives error and debug logs.
	Logger *log.Logger

	Out    io.Writer
	ErrOut io.Writer
}

// Command defines the interface for CLI commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// NeedsBackend returns true if the command talks to the API.
	// Commands like help, version, login, logout return false.
	NeedsBackend() bool

	// RegisterFlags registers command-specific flags.
	RegisterFlags(fs *flag.FlagSet)

	// Run executes the command.
	// args contains positional arguments after flag parsing.
	// Returns exit code.
	Run(ctx context.Context, env *Env, args []string) int
}

// Interactive is implemented by commands that take over the terminal.
// Their logs go to the log file instead of stderr.
type Interactive interface {
	Interactive() bool
}
