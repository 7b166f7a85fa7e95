package testutil

import (
	"sync"

	"todoview/internal/view"
)

// FakeDisplay records everything the controller asks it to show.
type FakeDisplay struct {
	mu      sync.Mutex
	current view.View
	renders int
	focuses int
	alerts  []string
}

// NewFakeDisplay creates a display showing the given initial view.
func NewFakeDisplay(initial view.View) *FakeDisplay {
	return &FakeDisplay{current: initial}
}

// Render implements controller.Display.
func (d *FakeDisplay) Render(v view.View) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.current = v
	d.renders++
}

// FocusInput implements controller.Display.
func (d *FakeDisplay) FocusInput() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.focuses++
}

// Alert implements controller.Display.
func (d *FakeDisplay) Alert(msg string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.alerts = append(d.alerts, msg)
}

// Current returns the last rendered view.
func (d *FakeDisplay) Current() view.View {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.current
}

// Renders returns how many times Render was called.
func (d *FakeDisplay) Renders() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.renders
}

// Focuses returns how many times FocusInput was called.
func (d *FakeDisplay) Focuses() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.focuses
}

// Alerts returns the alert messages shown so far.
func (d *FakeDisplay) Alerts() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]string, len(d.alerts))
	copy(out, d.alerts)
	return out
}
