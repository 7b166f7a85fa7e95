package commands

import (
	"errors"
	"fmt"
	"io"

	"todoview/internal/controller"
	"todoview/internal/exitcode"
	"todoview/internal/output"
	"todoview/internal/service"
	"todoview/internal/view"
)

// textDisplay prints what the controller renders.
type textDisplay struct {
	out     io.Writer
	errOut  io.Writer
	silent  bool // skip list output entirely
	quiet   bool // skip "no tasks found"
	current view.View
}

func (d *textDisplay) Render(v view.View) {
	d.current = v
	if d.silent {
		return
	}
	output.FormatView(d.out, v, d.quiet)
}

// FocusInput is a no-op: the CLI has no entry field.
func (d *textDisplay) FocusInput() {}

func (d *textDisplay) Alert(msg string) {
	fmt.Fprintf(d.errOut, "error: %s\n", msg)
}

// newController wires a controller that prints to the command's output.
// Mutating commands pass silent=cfg.Quiet so --quiet hides the reloaded list.
func newController(env *Env, silent bool) *controller.Controller {
	display := &textDisplay{
		out:    env.Out,
		errOut: env.ErrOut,
		silent: silent,
		quiet:  env.Config.Quiet,
	}
	return controller.New(env.Service, display, env.Logger)
}

// exitCodeFor maps a controller error to an exit code.
// The controller has already logged backend failures.
func exitCodeFor(err error) int {
	switch {
	case err == nil:
		return exitcode.Success
	case errors.Is(err, controller.ErrEmptyTitle):
		return exitcode.UserError
	case errors.Is(err, service.ErrUnauthorized):
		return exitcode.AuthError
	default:
		return exitcode.BackendError
	}
}
