package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/textable/grid"
	"github.com/iw2rmb/textable/latex"
)

func TestOnChange_FiresForTableAndFocus(t *testing.T) {
	var events []ChangeEvent
	m := New(Config{OnChange: func(ev ChangeEvent) { events = append(events, ev) }})
	if len(events) != 0 {
		t.Fatalf("New should not notify, got %d events", len(events))
	}

	m = m.SetFocus(0, 0)
	if len(events) != 1 {
		t.Fatalf("events after focus: got %d, want 1", len(events))
	}
	if ev := events[0]; !ev.Focused || ev.Focus != (grid.Pos{}) || ev.HasChange {
		t.Fatalf("focus event: %+v", ev)
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlL})
	if len(events) != 2 {
		t.Fatalf("events after merge: got %d, want 2", len(events))
	}
	ev := events[1]
	if !ev.HasChange || ev.Change.Kind != grid.ChangeMerge {
		t.Fatalf("merge event change: %+v", ev.Change)
	}
	if ev.Version != m.Grid().Version() {
		t.Fatalf("event version: got %d, want %d", ev.Version, m.Grid().Version())
	}
	if ev.LaTeX != m.LaTeX() {
		t.Fatalf("event LaTeX differs from the model")
	}

	// Moving off the table and unbound keys stay quiet.
	m = press(m, tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyF5})
	if len(events) != 2 {
		t.Fatalf("no-op keys notified: got %d events", len(events))
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlB})
	if len(events) != 3 || events[2].Options.Mode != latex.ModeStandard {
		t.Fatalf("mode toggle event: %+v", events[len(events)-1])
	}
	_ = m
}

func TestOnChange_EditNotifiesOnCommitOnly(t *testing.T) {
	count := 0
	m := New(Config{OnChange: func(ChangeEvent) { count++ }})
	m = m.SetFocus(1, 1)
	count = 0

	m = press(m, tea.KeyMsg{Type: tea.KeyEnter}, keyRunes("abc"))
	if count != 0 {
		t.Fatalf("drafting notified %d times", count)
	}
	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if count != 1 {
		t.Fatalf("commit notifications: got %d, want 1", count)
	}

	// Committing the unchanged text is not a mutation.
	m = press(m, tea.KeyMsg{Type: tea.KeyEnter}, tea.KeyMsg{Type: tea.KeyEnter})
	if count != 1 {
		t.Fatalf("unchanged commit notified: got %d, want 1", count)
	}
	_ = m
}
