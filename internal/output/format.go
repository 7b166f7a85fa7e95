// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"todoview/internal/view"
)

const (
	// CheckedBox marks a done row.
	CheckedBox = "[x]"

	// UncheckedBox marks an open row.
	UncheckedBox = "[ ]"

	// StrikeMarker wraps the title of a done row.
	StrikeMarker = "~~"
)

// FormatRow formats a task row.
// Format: "{N:>4}  {BOX} {TITLE}\n" (4-wide right-aligned number, two spaces,
// checkbox, title). Done titles are wrapped in StrikeMarker.
func FormatRow(w io.Writer, num int, row view.Row) {
	box := UncheckedBox
	if row.Checked() {
		box = CheckedBox
	}
	title := normalizeTitle(row.Title)
	if row.Struck() {
		title = StrikeMarker + title + StrikeMarker
	}
	fmt.Fprintf(w, "%4d  %s %s\n", num, box, title)
}

// FormatView formats all rows of a view, numbered from 1.
// An empty view prints "no tasks found" unless quiet is set.
func FormatView(w io.Writer, v view.View, quiet bool) {
	if v.Len() == 0 {
		if !quiet {
			fmt.Fprintln(w, "no tasks found")
		}
		return
	}
	for i, row := range v.Rows() {
		FormatRow(w, i+1, row)
	}
}

// normalizeTitle normalizes a task title for display.
// - Empty or whitespace-only titles become "(untitled)"
// - Newlines are replaced with spaces
func normalizeTitle(title string) string {
	// Replace newlines with spaces
	title = strings.ReplaceAll(title, "\r", " ")
	title = strings.ReplaceAll(title, "\n", " ")

	// Trim and check for empty
	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}
