// Package service defines the backend-agnostic interface for task operations.
package service

import (
	"errors"
	"fmt"
)

// Status is the open/done flag of a task as stored by the remote API.
type Status string

const (
	// StatusOpen marks a task that still needs doing.
	StatusOpen Status = "0"

	// StatusDone marks a checked-off task.
	StatusDone Status = "1"
)

// Done reports whether the status is StatusDone.
func (s Status) Done() bool {
	return s == StatusDone
}

// StatusFromDone returns the status matching the done flag.
func StatusFromDone(done bool) Status {
	if done {
		return StatusDone
	}
	return StatusOpen
}

// ParseStatus validates a wire status value.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusOpen, StatusDone:
		return Status(s), nil
	default:
		return "", fmt.Errorf("invalid status: %q", s)
	}
}

// Task represents a single task item.
type Task struct {
	ID     string // opaque, assigned by the server
	Title  string
	Status Status
}

// Errors the backend reports in a transport-independent way.
var (
	ErrUnauthorized = errors.New("unauthorized (run: todoview login)")
	ErrNotFound     = errors.New("not found")
	ErrTimeout      = errors.New("request timed out")
)
