// Package view turns a task collection into the rows shown to the user.
//
// Render is the only way a View is produced. Callers redraw from a fresh
// View after every state-changing call instead of patching rows in place.
package view

import "todoview/internal/service"

// Row is one rendered task.
type Row struct {
	ID    string
	Title string
	Done  bool
}

// Struck reports whether the row title is drawn with a strikethrough.
func (r Row) Struck() bool { return r.Done }

// Checked reports whether the row checkbox is ticked.
func (r Row) Checked() bool { return r.Done }

// View is an immutable snapshot of the rendered list.
type View struct {
	rows []Row
}

// Render builds a View with one row per task, in the order given.
func Render(tasks []service.Task) View {
	rows := make([]Row, len(tasks))
	for i, t := range tasks {
		rows[i] = Row{
			ID:    t.ID,
			Title: t.Title,
			Done:  t.Status.Done(),
		}
	}
	return View{rows: rows}
}

// Len returns the number of rows.
func (v View) Len() int { return len(v.rows) }

// At returns the row at index i (0-based).
func (v View) At(i int) (Row, bool) {
	if i < 0 || i >= len(v.rows) {
		return Row{}, false
	}
	return v.rows[i], true
}

// Rows returns a copy of all rows.
func (v View) Rows() []Row {
	out := make([]Row, len(v.rows))
	copy(out, v.rows)
	return out
}

// Find looks up a row by task ID.
func (v View) Find(id string) (Row, bool) {
	for _, r := range v.rows {
		if r.ID == id {
			return r, true
		}
	}
	return Row{}, false
}

// Index returns the position of the row with the given ID, or -1.
func (v View) Index(id string) int {
	for i, r := range v.rows {
		if r.ID == id {
			return i
		}
	}
	return -1
}
