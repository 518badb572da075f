package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/textable/grid"
	"github.com/iw2rmb/textable/latex"
)

func keyRunes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func altRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s), Alt: true}
}

func press(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	return m
}

func TestNew_Defaults(t *testing.T) {
	m := New(Config{})
	if got, want := m.Grid().Rows(), 2; got != want {
		t.Fatalf("rows: got %d, want %d", got, want)
	}
	if got, want := m.Grid().Cols(), 2; got != want {
		t.Fatalf("cols: got %d, want %d", got, want)
	}
	if got, want := m.EmitOptions(), latex.DefaultOptions(); got != want {
		t.Fatalf("emit options: got %+v, want %+v", got, want)
	}
	if got, want := m.cfg.CellWidth, defaultCellWidth; got != want {
		t.Fatalf("cell width: got %d, want %d", got, want)
	}
	if _, ok := m.FocusPos(); ok {
		t.Fatalf("fresh editor should have no focused cell")
	}
	if got := m.LaTeX(); got != latex.Emit(m.Grid(), m.EmitOptions()) {
		t.Fatalf("initial LaTeX out of date:\n%s", got)
	}
}

func TestNew_UsesProvidedGridAndOptions(t *testing.T) {
	g, err := grid.New(3, 1, grid.Options{})
	if err != nil {
		t.Fatalf("grid.New: %v", err)
	}
	opt := latex.Options{Mode: latex.ModeStandard, Caption: "c"}
	m := New(Config{Grid: g, Emit: &opt})

	if m.Grid() != g {
		t.Fatalf("editor should edit the provided grid")
	}
	if m.EmitOptions() != opt {
		t.Fatalf("emit options: got %+v, want %+v", m.EmitOptions(), opt)
	}
}

func TestSetFocus_SnapsToOwnerAndClears(t *testing.T) {
	m := New(Config{Rows: 2, Cols: 3})
	if err := m.Grid().MergeRight(grid.Pos{Row: 0, Col: 0}); err != nil {
		t.Fatalf("MergeRight: %v", err)
	}

	m = m.SetFocus(0, 1)
	if p, ok := m.FocusPos(); !ok || p != (grid.Pos{Row: 0, Col: 0}) {
		t.Fatalf("focus: got %v (ok=%v), want (0,0)", p, ok)
	}

	m = m.SetFocus(5, 5)
	if _, ok := m.FocusPos(); ok {
		t.Fatalf("out-of-range focus should clear")
	}

	m = m.SetFocus(1, 2).ClearFocus()
	if _, ok := m.FocusPos(); ok {
		t.Fatalf("ClearFocus should clear")
	}
}

func TestSync_PicksUpHostMutations(t *testing.T) {
	m := New(Config{})
	before := m.LaTeX()

	if err := m.Grid().SetText(0, 0, "x"); err != nil {
		t.Fatalf("SetText: %v", err)
	}
	m = press(m, struct{}{})
	if m.LaTeX() == before {
		t.Fatalf("LaTeX should refresh after a host mutation")
	}
}

func TestBlur_IgnoresKeys(t *testing.T) {
	m := New(Config{}).Blur()
	m = press(m, tea.KeyMsg{Type: tea.KeyDown})
	if _, ok := m.FocusPos(); ok {
		t.Fatalf("blurred editor moved focus")
	}
	m = m.Focus()
	m = press(m, tea.KeyMsg{Type: tea.KeyDown})
	if _, ok := m.FocusPos(); !ok {
		t.Fatalf("focused editor should move focus")
	}
}
