package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"todoview/internal/view"
)

type renderMsg struct {
	view view.View
}

type focusInputMsg struct{}

type alertMsg struct {
	text string
}

// opDoneMsg reports the end of a controller operation.
type opDoneMsg struct {
	err error
}

// programDisplay forwards controller output into the bubbletea event loop,
// so the model is only ever changed inside Update.
type programDisplay struct {
	mu   sync.RWMutex
	send func(tea.Msg)
}

func (d *programDisplay) attach(send func(tea.Msg)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.send = send
}

func (d *programDisplay) post(msg tea.Msg) {
	d.mu.RLock()
	send := d.send
	d.mu.RUnlock()
	if send != nil {
		send(msg)
	}
}

func (d *programDisplay) Render(v view.View) { d.post(renderMsg{view: v}) }

func (d *programDisplay) FocusInput() { d.post(focusInputMsg{}) }

func (d *programDisplay) Alert(text string) { d.post(alertMsg{text: text}) }
