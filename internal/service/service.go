// Package service defines the backend-agnostic interface for task operations.
package service

import "context"

// Service defines the interface for task backend operations.
// All remote API calls go through this interface.
// The controller and commands never import transport code directly.
type Service interface {
	// ListTasks returns the full task collection in server order.
	ListTasks(ctx context.Context) ([]Task, error)

	// AddTask creates a new task with the given title and status.
	AddTask(ctx context.Context, title string, status Status) error

	// UpdateTitle renames a task.
	UpdateTitle(ctx context.Context, id, title string) error

	// UpdateStatus sets the open/done flag of a task.
	UpdateStatus(ctx context.Context, id string, status Status) error

	// DeleteTask deletes a task.
	DeleteTask(ctx context.Context, id string) error
}
