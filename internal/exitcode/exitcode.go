// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, empty title, unknown task).
	UserError = 1

	// AuthError indicates a missing, invalid or rejected token.
	AuthError = 2

	// BackendError indicates an API, network or timeout error.
	BackendError = 3
)
