package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/textable/grid"
)

func TestCellAt(t *testing.T) {
	m := New(Config{Rows: 3, Cols: 3, CellWidth: 3})
	_ = m.Grid().MergeRight(grid.Pos{Row: 1, Col: 0})

	cases := []struct {
		name   string
		x, y   int
		want   grid.Pos
		wantOK bool
	}{
		{"top-left frame", 0, 0, grid.Pos{}, true},
		{"first content", 1, 1, grid.Pos{}, true},
		{"separator belongs left", 4, 1, grid.Pos{Row: 0, Col: 0}, true},
		{"second column", 5, 1, grid.Pos{Row: 0, Col: 1}, true},
		{"rule belongs above", 2, 2, grid.Pos{Row: 0, Col: 0}, true},
		{"hidden resolves to owner", 6, 3, grid.Pos{Row: 1, Col: 0}, true},
		{"last cell", 11, 5, grid.Pos{Row: 2, Col: 2}, true},
		{"bottom frame", 12, 6, grid.Pos{Row: 2, Col: 2}, true},
		{"right of table", 13, 1, grid.Pos{}, false},
		{"below table", 1, 7, grid.Pos{}, false},
		{"negative", -1, 0, grid.Pos{}, false},
	}
	for _, tc := range cases {
		got, ok := m.CellAt(tc.x, tc.y)
		if ok != tc.wantOK || got != tc.want {
			t.Fatalf("%s: CellAt(%d,%d) = %v,%v, want %v,%v", tc.name, tc.x, tc.y, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestCellOrigin(t *testing.T) {
	m := New(Config{Rows: 2, Cols: 2, CellWidth: 4})
	_ = m.Grid().MergeDown(grid.Pos{Row: 0, Col: 1})

	x, y, ok := m.CellOrigin(grid.Pos{Row: 1, Col: 1})
	if !ok || x != 6 || y != 1 {
		t.Fatalf("origin of hidden (1,1): got %d,%d,%v, want 6,1,true", x, y, ok)
	}
	if _, _, ok := m.CellOrigin(grid.Pos{Row: 5, Col: 0}); ok {
		t.Fatalf("origin outside the table should fail")
	}
}

func TestMouse_WheelScrollsPreviewOnly(t *testing.T) {
	m := New(Config{CellWidth: 3})
	m = m.SetSize(40, 10)
	m = press(m, tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	if _, ok := m.FocusPos(); ok {
		t.Fatalf("wheel should not focus a cell")
	}
	if m.PreviewState().TopLine == 0 {
		t.Fatalf("wheel should scroll the preview")
	}
}

func TestMouse_ClickCommitsEdit(t *testing.T) {
	m := New(Config{CellWidth: 3})
	m = m.SetFocus(0, 0)
	m = press(m, keyRunes("hi"))
	m = press(m, tea.MouseMsg{X: 5, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

	if got := cellText(t, m, 0, 0); got != "hi" {
		t.Fatalf("click should commit the draft, got %q", got)
	}
	if got, want := focusOf(t, m), (grid.Pos{Row: 1, Col: 1}); got != want {
		t.Fatalf("click focus: got %v, want %v", got, want)
	}
	if m.Editing() {
		t.Fatalf("click should leave edit mode")
	}
}

func TestMouse_IgnoredWhenBlurred(t *testing.T) {
	m := New(Config{CellWidth: 3}).Blur()
	m = press(m, tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if _, ok := m.FocusPos(); ok {
		t.Fatalf("blurred editor should ignore clicks")
	}
}
