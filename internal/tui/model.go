// Package tui provides the interactive task screen.
package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"todoview/internal/controller"
	"todoview/internal/service"
	"todoview/internal/view"
)

type focusArea int

const (
	focusEntry focusArea = iota
	focusList
	focusEdit
)

// Model is the bubbletea model for the task screen.
type Model struct {
	ctx     context.Context
	ctrl    *controller.Controller
	display *programDisplay

	rows    view.View
	loaded  bool
	focus   focusArea
	cursor  int
	entry   textinput.Model
	edit    textinput.Model
	editID  string
	alert   string
	pending int
	width   int
	height  int
}

// New creates the screen model. Nothing is drawn by the controller until
// Attach connects the model to a running program.
func New(ctx context.Context, svc service.Service, logger *log.Logger) *Model {
	display := &programDisplay{}

	entry := textinput.New()
	entry.Placeholder = "Add your task"
	entry.Prompt = "> "
	entry.CharLimit = 0 // titles have no length limit
	entry.Focus()

	edit := textinput.New()
	edit.Prompt = ""
	edit.CharLimit = 0

	return &Model{
		ctx:     ctx,
		ctrl:    controller.New(svc, display, logger),
		display: display,
		focus:   focusEntry,
		entry:   entry,
		edit:    edit,
	}
}

// Attach routes controller output to send, normally tea.Program.Send.
func (m *Model) Attach(send func(tea.Msg)) {
	m.display.attach(send)
}

// Run starts the screen on out and blocks until the user quits.
func Run(ctx context.Context, svc service.Service, logger *log.Logger, out io.Writer) error {
	if !IsTTY(out) {
		return fmt.Errorf("interactive mode requires a terminal (try: todoview list)")
	}

	m := New(ctx, svc, logger)
	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx), tea.WithOutput(out))
	m.Attach(program.Send)

	_, err := program.Run()
	return err
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.run(m.ctrl.LoadAndRender))
}

// run executes a controller operation off the event loop.
func (m *Model) run(op func(ctx context.Context) error) tea.Cmd {
	m.pending++
	ctx := m.ctx
	return func() tea.Msg {
		return opDoneMsg{err: op(ctx)}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case renderMsg:
		m.applyView(msg.view)
		return m, nil
	case focusInputMsg:
		// An open inline edit keeps focus; losing it would commit the edit.
		if m.focus != focusEdit {
			m.focusEntry()
		}
		return m, nil
	case alertMsg:
		m.alert = msg.text
		return m, nil
	case opDoneMsg:
		if m.pending > 0 {
			m.pending--
		}
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.alert != "" {
			m.alert = ""
			return m, nil
		}
		switch m.focus {
		case focusEdit:
			return m.handleEditKeys(msg)
		case focusList:
			return m.handleListKeys(msg)
		default:
			return m.handleEntryKeys(msg)
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusEntry:
		m.entry, cmd = m.entry.Update(msg)
	case focusEdit:
		m.edit, cmd = m.edit.Update(msg)
	}
	return m, cmd
}

func (m *Model) handleEntryKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		title := m.entry.Value()
		if strings.TrimSpace(title) != "" {
			m.entry.SetValue("")
		}
		return m, m.run(func(ctx context.Context) error {
			return m.ctrl.SubmitNewTask(ctx, title)
		})
	case "tab", "down", "esc":
		m.focusList()
		return m, nil
	}

	var cmd tea.Cmd
	m.entry, cmd = m.entry.Update(msg)
	return m, cmd
}

func (m *Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		m.moveCursor(-1)
	case "down", "j":
		m.moveCursor(1)
	case "tab", "a", "i":
		m.focusEntry()
		return m, textinput.Blink
	case "r":
		return m, m.run(m.ctrl.LoadAndRender)
	case " ", "space", "x":
		row, ok := m.rows.At(m.cursor)
		if !ok {
			return m, nil
		}
		return m, m.run(func(ctx context.Context) error {
			return m.ctrl.ToggleStatus(ctx, row.ID, row.Done)
		})
	case "d", "delete":
		row, ok := m.rows.At(m.cursor)
		if !ok {
			return m, nil
		}
		return m, m.run(func(ctx context.Context) error {
			return m.ctrl.RemoveTask(ctx, row.ID)
		})
	case "e", "enter":
		row, ok := m.rows.At(m.cursor)
		if !ok {
			return m, nil
		}
		m.beginEdit(row)
		return m, textinput.Blink
	}
	return m, nil
}

func (m *Model) handleEditKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc", "tab", "up", "down":
		// Commit key or focus loss both submit the edit.
		return m, m.commitEdit()
	}

	var cmd tea.Cmd
	m.edit, cmd = m.edit.Update(msg)
	return m, cmd
}

func (m *Model) beginEdit(row view.Row) {
	m.focus = focusEdit
	m.editID = row.ID
	m.entry.Blur()
	m.edit.SetValue(row.Title)
	m.edit.CursorEnd()
	m.edit.Focus()
}

func (m *Model) commitEdit() tea.Cmd {
	id, title := m.editID, m.edit.Value()
	m.editID = ""
	m.edit.Blur()
	m.focus = focusList
	return m.run(func(ctx context.Context) error {
		return m.ctrl.SubmitTitleEdit(ctx, id, title)
	})
}

func (m *Model) focusEntry() {
	m.focus = focusEntry
	m.edit.Blur()
	m.entry.Focus()
}

func (m *Model) focusList() {
	m.focus = focusList
	m.entry.Blur()
	m.clampCursor()
}

// applyView replaces every rendered row with the fresh view.
// The cursor follows the selected task if it is still there.
func (m *Model) applyView(v view.View) {
	if row, ok := m.rows.At(m.cursor); ok {
		if i := v.Index(row.ID); i >= 0 {
			m.cursor = i
		}
	}
	m.rows = v
	m.loaded = true
	if m.focus == focusEdit {
		if _, ok := v.Find(m.editID); !ok {
			m.editID = ""
			m.edit.Blur()
			m.focus = focusList
		}
	}
	m.clampCursor()
}

func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	m.clampCursor()
}

func (m *Model) clampCursor() {
	if m.cursor >= m.rows.Len() {
		m.cursor = m.rows.Len() - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
