package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"

	"todoview/internal/controller"
	"todoview/internal/service"
	"todoview/internal/testutil"
)

// harness runs the model like a program would, but synchronously.
type harness struct {
	t      *testing.T
	m      *Model
	svc    *testutil.FakeService
	outbox []tea.Msg
}

func newHarness(t *testing.T, svc *testutil.FakeService) *harness {
	t.Helper()
	h := &harness{t: t, svc: svc}
	h.m = New(context.Background(), svc, nil)
	// Blinking cursors return timer commands that would stall exec.
	h.m.entry.Cursor.SetMode(cursor.CursorStatic)
	h.m.edit.Cursor.SetMode(cursor.CursorStatic)
	h.m.Attach(func(msg tea.Msg) { h.outbox = append(h.outbox, msg) })
	h.m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return h
}

// exec runs cmd, then delivers its result and everything the controller
// posted back into Update.
func (h *harness) exec(cmd tea.Cmd) {
	h.t.Helper()
	if cmd == nil {
		return
	}
	msg := cmd()
	if _, ok := msg.(opDoneMsg); !ok {
		// Blink and similar cursor commands are not controller work.
		return
	}
	posted := h.outbox
	h.outbox = nil
	for _, p := range posted {
		h.m.Update(p)
	}
	h.m.Update(msg)
}

func (h *harness) load() {
	h.t.Helper()
	h.exec(h.m.run(h.m.ctrl.LoadAndRender))
}

func (h *harness) key(k tea.KeyMsg) {
	h.t.Helper()
	_, cmd := h.m.Update(k)
	h.exec(cmd)
}

func (h *harness) typeText(s string) {
	h.t.Helper()
	h.key(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

var (
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	tabKey   = tea.KeyMsg{Type: tea.KeyTab}
	escKey   = tea.KeyMsg{Type: tea.KeyEsc}
)

func TestLoad_RendersRowsAndFocusesEntry(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.Seed("a", "Buy milk", service.StatusOpen)
	svc.Seed("b", "Walk dog", service.StatusDone)
	h := newHarness(t, svc)
	h.m.focusList()

	h.load()

	if h.m.rows.Len() != 2 {
		t.Fatalf("expected 2 rows, got %d", h.m.rows.Len())
	}
	if h.m.focus != focusEntry {
		t.Errorf("expected entry focus after load, got %v", h.m.focus)
	}
	if h.m.pending != 0 {
		t.Errorf("expected no pending ops, got %d", h.m.pending)
	}

	out := h.m.View()
	if !strings.Contains(out, "[x] ") || !strings.Contains(out, "[ ] ") {
		t.Errorf("expected checkboxes in view:\n%s", out)
	}
	if !strings.Contains(out, "Walk dog") || !strings.Contains(out, "Buy milk") {
		t.Errorf("expected titles in view:\n%s", out)
	}
}

func TestEntry_SubmitAddsTask(t *testing.T) {
	svc := testutil.NewFakeService()
	h := newHarness(t, svc)
	h.load()

	h.typeText("Buy milk")
	h.key(enterKey)

	tasks := svc.Tasks()
	if len(tasks) != 1 || tasks[0].Title != "Buy milk" || tasks[0].Status != service.StatusOpen {
		t.Fatalf("unexpected tasks: %+v", tasks)
	}
	if h.m.rows.Len() != 1 {
		t.Errorf("expected 1 rendered row, got %d", h.m.rows.Len())
	}
	if h.m.entry.Value() != "" {
		t.Errorf("expected entry cleared, got %q", h.m.entry.Value())
	}
}

func TestEntry_EmptySubmitAlertsWithoutRequest(t *testing.T) {
	svc := testutil.NewFakeService()
	h := newHarness(t, svc)
	h.load()
	before := len(svc.Calls())

	h.key(enterKey)

	if len(svc.Calls()) != before {
		t.Errorf("empty submit issued requests: %v", svc.Calls()[before:])
	}
	if h.m.alert != controller.EmptyTitleAlert {
		t.Errorf("expected alert, got %q", h.m.alert)
	}
	if !strings.Contains(h.m.View(), controller.EmptyTitleAlert) {
		t.Error("alert not drawn")
	}

	// Any key dismisses the alert and is swallowed.
	h.key(runeKey('z'))
	if h.m.alert != "" {
		t.Errorf("alert not dismissed: %q", h.m.alert)
	}
	if h.m.entry.Value() != "" {
		t.Errorf("dismiss key reached the entry: %q", h.m.entry.Value())
	}
}

func TestList_ToggleTwiceRestoresRow(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.Seed("a", "Buy milk", service.StatusOpen)
	h := newHarness(t, svc)
	h.load()
	original, _ := h.m.rows.At(0)

	h.key(tabKey)
	h.key(runeKey('x'))
	toggled, _ := h.m.rows.At(0)
	if !toggled.Done {
		t.Fatalf("expected done after toggle, got %+v", toggled)
	}

	h.key(tabKey)
	h.key(runeKey('x'))
	restored, _ := h.m.rows.At(0)
	if restored != original {
		t.Errorf("expected %+v, got %+v", original, restored)
	}
}

func TestList_DeleteRemovesSelectedRow(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.Seed("a", "one", service.StatusOpen)
	svc.Seed("b", "two", service.StatusOpen)
	svc.Seed("c", "three", service.StatusOpen)
	h := newHarness(t, svc)
	h.load()

	h.key(tabKey)
	h.key(runeKey('j'))
	h.key(runeKey('d'))

	if h.m.rows.Len() != 2 {
		t.Fatalf("expected 2 rows, got %d", h.m.rows.Len())
	}
	if _, ok := h.m.rows.Find("b"); ok {
		t.Error("row b still rendered")
	}
}

func TestEdit_CommitOnEnter(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.Seed("a", "Buy milk", service.StatusOpen)
	h := newHarness(t, svc)
	h.load()

	h.key(tabKey)
	h.key(runeKey('e'))
	if h.m.focus != focusEdit || h.m.editID != "a" {
		t.Fatalf("expected edit mode on a, got focus %v id %q", h.m.focus, h.m.editID)
	}
	if h.m.edit.Value() != "Buy milk" {
		t.Errorf("edit field should start with title, got %q", h.m.edit.Value())
	}

	h.typeText(" now")
	h.key(enterKey)

	row, _ := h.m.rows.Find("a")
	if row.Title != "Buy milk now" {
		t.Errorf("expected renamed row, got %q", row.Title)
	}
	if h.m.focus == focusEdit {
		t.Error("edit mode should be closed")
	}
}

func TestEdit_FocusLossCommits(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.Seed("a", "Buy milk", service.StatusOpen)
	h := newHarness(t, svc)
	h.load()

	h.key(tabKey)
	h.key(runeKey('e'))
	h.typeText("!")
	h.key(escKey)

	if got := svc.Tasks()[0].Title; got != "Buy milk!" {
		t.Errorf("expected edit committed on focus loss, got %q", got)
	}
}

func TestEdit_EmptyRevertsWithoutUpdate(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.Seed("a", "Buy milk", service.StatusOpen)
	h := newHarness(t, svc)
	h.load()

	h.key(tabKey)
	h.key(runeKey('e'))
	h.m.edit.SetValue("")
	h.key(enterKey)

	for _, c := range svc.Calls() {
		if c == "UpdateTitle" {
			t.Fatal("empty edit sent an update")
		}
	}
	row, _ := h.m.rows.Find("a")
	if row.Title != "Buy milk" {
		t.Errorf("expected original title, got %q", row.Title)
	}
}

func TestEdit_LongTitleSurvivesFocusLoss(t *testing.T) {
	long := strings.Repeat("a", 250)
	svc := testutil.NewFakeService()
	svc.Seed("a", long, service.StatusOpen)
	h := newHarness(t, svc)
	h.load()

	h.key(tabKey)
	h.key(runeKey('e'))
	h.key(escKey)

	if got := svc.Tasks()[0].Title; got != long {
		t.Errorf("untouched edit changed title: %d -> %d chars", len(long), len(got))
	}
}

func TestEntry_LongTitleNotTruncated(t *testing.T) {
	long := strings.Repeat("b", 300)
	svc := testutil.NewFakeService()
	h := newHarness(t, svc)
	h.load()

	h.typeText(long)
	h.key(enterKey)

	tasks := svc.Tasks()
	if len(tasks) != 1 || tasks[0].Title != long {
		t.Fatalf("expected %d-char title, got %+v", len(long), tasks)
	}
}

func TestReload_CursorFollowsSelectedTask(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.Seed("a", "one", service.StatusOpen)
	svc.Seed("b", "two", service.StatusOpen)
	svc.Seed("c", "three", service.StatusOpen)
	h := newHarness(t, svc)
	h.load()

	h.key(tabKey)
	h.key(runeKey('j'))

	// Another client removes the row above the selection.
	if err := svc.DeleteTask(context.Background(), "a"); err != nil {
		t.Fatal(err)
	}
	h.key(runeKey('r'))

	row, ok := h.m.rows.At(h.m.cursor)
	if !ok || row.ID != "b" {
		t.Errorf("expected cursor on b, got %+v (cursor %d)", row, h.m.cursor)
	}
}

func TestFocusInput_IgnoredWhileEditing(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.Seed("a", "Buy milk", service.StatusOpen)
	h := newHarness(t, svc)
	h.load()

	h.key(tabKey)
	h.key(runeKey('e'))
	h.m.Update(focusInputMsg{})

	if h.m.focus != focusEdit {
		t.Errorf("edit lost focus to entry")
	}
}

func TestLoadFailure_KeepsRows(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.Seed("a", "Buy milk", service.StatusOpen)
	h := newHarness(t, svc)
	h.load()

	svc.ListTasksErr = errors.New("connection refused")
	svc.Seed("b", "hidden", service.StatusOpen)
	h.key(tabKey)
	h.key(runeKey('r'))

	if h.m.rows.Len() != 1 {
		t.Errorf("expected previous rows kept, got %d", h.m.rows.Len())
	}
	if strings.Contains(h.m.View(), "connection refused") {
		t.Error("network errors must not be shown on screen")
	}
}

func TestQuit(t *testing.T) {
	h := newHarness(t, testutil.NewFakeService())

	_, cmd := h.m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c should quit")
	}

	h.m.focusList()
	_, cmd = h.m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit from the list")
	}
}
