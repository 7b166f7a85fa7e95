// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"fmt"
	"sync"

	"todoview/internal/service"
)

// ErrNotFound is returned when a task is not found.
var ErrNotFound = service.ErrNotFound

// FakeService is an in-memory implementation of service.Service for testing.
type FakeService struct {
	mu     sync.RWMutex
	tasks  []service.Task
	nextID int
	calls  []string

	// Error injection for testing
	ListTasksErr    error
	AddTaskErr      error
	UpdateTitleErr  error
	UpdateStatusErr error
	DeleteTaskErr   error
}

// NewFakeService creates a new empty FakeService.
func NewFakeService() *FakeService {
	return &FakeService{nextID: 1}
}

// Seed stores a task with an explicit ID.
func (f *FakeService) Seed(id, title string, status service.Status) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks = append(f.tasks, service.Task{ID: id, Title: title, Status: status})
}

// Tasks returns a copy of the stored tasks.
func (f *FakeService) Tasks() []service.Task {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]service.Task, len(f.tasks))
	copy(out, f.tasks)
	return out
}

// Calls returns the names of the methods invoked so far, in order.
func (f *FakeService) Calls() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]string, len(f.calls))
	copy(out, f.calls)
	return out
}

// MutationCount returns how many write requests were issued.
func (f *FakeService) MutationCount() int {
	n := 0
	for _, c := range f.Calls() {
		if c != "ListTasks" {
			n++
		}
	}
	return n
}

func (f *FakeService) record(name string) {
	f.mu.Lock()
	f.calls = append(f.calls, name)
	f.mu.Unlock()
}

// ListTasks implements service.Service.
func (f *FakeService) ListTasks(ctx context.Context) ([]service.Task, error) {
	f.record("ListTasks")
	if f.ListTasksErr != nil {
		return nil, f.ListTasksErr
	}
	return f.Tasks(), nil
}

// AddTask implements service.Service.
func (f *FakeService) AddTask(ctx context.Context, title string, status service.Status) error {
	f.record("AddTask")
	if f.AddTaskErr != nil {
		return f.AddTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	id := fmt.Sprintf("id-%d", f.nextID)
	f.nextID++
	f.tasks = append(f.tasks, service.Task{ID: id, Title: title, Status: status})
	return nil
}

// UpdateTitle implements service.Service.
func (f *FakeService) UpdateTitle(ctx context.Context, id, title string) error {
	f.record("UpdateTitle")
	if f.UpdateTitleErr != nil {
		return f.UpdateTitleErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, t := range f.tasks {
		if t.ID == id {
			f.tasks[i].Title = title
			return nil
		}
	}
	return ErrNotFound
}

// UpdateStatus implements service.Service.
func (f *FakeService) UpdateStatus(ctx context.Context, id string, status service.Status) error {
	f.record("UpdateStatus")
	if f.UpdateStatusErr != nil {
		return f.UpdateStatusErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, t := range f.tasks {
		if t.ID == id {
			f.tasks[i].Status = status
			return nil
		}
	}
	return ErrNotFound
}

// DeleteTask implements service.Service.
func (f *FakeService) DeleteTask(ctx context.Context, id string) error {
	f.record("DeleteTask")
	if f.DeleteTaskErr != nil {
		return f.DeleteTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, t := range f.tasks {
		if t.ID == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
