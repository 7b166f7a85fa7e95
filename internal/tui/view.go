package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"todoview/internal/view"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "25", Dark: "212"}).
			Bold(true)

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "236", Dark: "252"})

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "25", Dark: "212"}).
			Bold(true)

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "34"}).
			Strikethrough(true)

	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "230", Dark: "230"}).
			Background(lipgloss.AdaptiveColor{Light: "25", Dark: "61"}).
			Bold(true).
			Padding(0, 1)

	descStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "243", Dark: "241"})

	entryStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.AdaptiveColor{Light: "243", Dark: "241"}).
			Padding(0, 1)

	focusedEntryStyle = entryStyle.
				BorderForeground(lipgloss.AdaptiveColor{Light: "25", Dark: "212"})

	alertStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.AdaptiveColor{Light: "160", Dark: "196"}).
			Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "196"}).
			Bold(true).
			Padding(0, 2)
)

const (
	checkedBox   = "[x]"
	uncheckedBox = "[ ]"
)

func helpKey(key, desc string) string {
	return keyStyle.Render(key) + " " + descStyle.Render(desc)
}

func (m *Model) View() string {
	var b strings.Builder

	header := "To-Do List"
	if m.pending > 0 {
		header += descStyle.Render("  syncing...")
	}
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n")

	box := entryStyle
	if m.focus == focusEntry {
		box = focusedEntryStyle
	}
	width := m.width - 4
	if width < 30 {
		width = 30
	}
	b.WriteString(box.Width(width).Render(m.entry.View()))
	b.WriteString("\n")

	switch {
	case !m.loaded:
		b.WriteString(descStyle.Render("Loading..."))
		b.WriteString("\n")
	case m.rows.Len() == 0:
		b.WriteString(descStyle.Render("Nothing to do."))
		b.WriteString("\n")
	default:
		for i, row := range m.rows.Rows() {
			b.WriteString(m.renderRow(i, row))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	if m.alert != "" {
		b.WriteString(alertStyle.Render(m.alert))
		b.WriteString("\n")
		b.WriteString(descStyle.Render("press any key"))
		return b.String()
	}
	b.WriteString(m.helpLine())
	return b.String()
}

// renderRow draws one task. Done rows are checked and struck through.
func (m *Model) renderRow(i int, row view.Row) string {
	cursor := "  "
	selected := m.focus != focusEntry && i == m.cursor
	if selected {
		cursor = selectedStyle.Render("> ")
	}

	box := uncheckedBox
	if row.Checked() {
		box = checkedBox
	}

	if m.focus == focusEdit && row.ID == m.editID {
		return cursor + box + " " + m.edit.View()
	}

	title := normalStyle.Render(row.Title)
	switch {
	case row.Struck():
		title = doneStyle.Render(row.Title)
	case selected:
		title = selectedStyle.Render(row.Title)
	}
	return cursor + box + " " + title
}

func (m *Model) helpLine() string {
	var keys []string
	switch m.focus {
	case focusEntry:
		keys = []string{
			helpKey("enter", "add"),
			helpKey("tab", "list"),
			helpKey("ctrl+c", "quit"),
		}
	case focusEdit:
		keys = []string{
			helpKey("enter", "save"),
			helpKey("esc", "save"),
		}
	default:
		keys = []string{
			helpKey("j/k", "nav"),
			helpKey("space", "check"),
			helpKey("e", "edit"),
			helpKey("d", "del"),
			helpKey("r", "reload"),
			helpKey("a", "add"),
			helpKey("q", "quit"),
		}
	}
	return strings.Join(keys, "  ")
}
