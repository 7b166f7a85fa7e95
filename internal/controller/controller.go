// Package controller keeps the rendered task list in sync with the remote store.
//
// Every write is followed by a full reload, so the display always shows what
// the list endpoint returned last. Failures are logged and leave the display
// as it was.
package controller

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"todoview/internal/service"
	"todoview/internal/view"
)

// EmptyTitleAlert is shown when the user submits a blank title.
const EmptyTitleAlert = "You must write something!"

// ErrEmptyTitle indicates a blank title was submitted. No request is sent.
var ErrEmptyTitle = errors.New("title required")

// Display is where the controller draws.
type Display interface {
	// Render replaces all rendered rows.
	Render(v view.View)

	// FocusInput moves focus to the new-task entry field.
	FocusInput()

	// Alert shows a blocking user-facing message.
	Alert(msg string)
}

// Controller drives the fetch-render loop.
// It holds no task state, so concurrent calls are allowed; the last
// response to reach the display wins.
type Controller struct {
	svc     service.Service
	display Display
	logger  *log.Logger
}

// New creates a controller. A nil logger discards log output.
func New(svc service.Service, display Display, logger *log.Logger) *Controller {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Controller{
		svc:     svc,
		display: display,
		logger:  logger,
	}
}

// LoadAndRender fetches the task collection and redraws it.
func (c *Controller) LoadAndRender(ctx context.Context) error {
	c.display.FocusInput()

	tasks, err := c.svc.ListTasks(ctx)
	if err != nil {
		c.logger.Error("error fetching tasks", "err", err)
		return err
	}

	c.display.Render(view.Render(tasks))
	c.logger.Debug("rendered tasks", "count", len(tasks))
	return nil
}

// SubmitNewTask creates an open task and reloads.
func (c *Controller) SubmitNewTask(ctx context.Context, title string) error {
	if isBlank(title) {
		c.display.Alert(EmptyTitleAlert)
		return ErrEmptyTitle
	}

	if err := c.svc.AddTask(ctx, title, service.StatusOpen); err != nil {
		c.logger.Error("failed to add task", "err", err)
		return err
	}
	return c.LoadAndRender(ctx)
}

// SubmitTitleEdit commits an inline edit. A blank title discards the edit
// and redraws from the server instead of sending an update.
func (c *Controller) SubmitTitleEdit(ctx context.Context, id, newTitle string) error {
	if isBlank(newTitle) {
		c.logger.Debug("empty edit reverted", "id", id)
		return c.LoadAndRender(ctx)
	}

	if err := c.svc.UpdateTitle(ctx, id, newTitle); err != nil {
		c.logger.Error("failed to update task title", "id", id, "err", err)
		return err
	}
	return c.LoadAndRender(ctx)
}

// ToggleStatus flips the done flag and reloads.
func (c *Controller) ToggleStatus(ctx context.Context, id string, currentlyDone bool) error {
	status := service.StatusFromDone(!currentlyDone)
	if err := c.svc.UpdateStatus(ctx, id, status); err != nil {
		c.logger.Error("failed to update task status", "id", id, "status", string(status), "err", err)
		return err
	}
	return c.LoadAndRender(ctx)
}

// RemoveTask deletes a task and reloads.
func (c *Controller) RemoveTask(ctx context.Context, id string) error {
	if err := c.svc.DeleteTask(ctx, id); err != nil {
		c.logger.Error("failed to delete the task", "id", id, "err", err)
		return err
	}
	return c.LoadAndRender(ctx)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
