package grid

import (
	"errors"
	"testing"
)

func mustNew(t *testing.T, rows, cols int) *Grid {
	t.Helper()
	g, err := New(rows, cols, Options{})
	if err != nil {
		t.Fatalf("New(%d,%d): %v", rows, cols, err)
	}
	return g
}

func mustValid(t *testing.T, g *Grid) {
	t.Helper()
	if err := g.Validate(); err != nil {
		t.Fatalf("invalid grid: %v", err)
	}
}

func TestNew_RejectsInvalidSize(t *testing.T) {
	cases := []struct {
		rows, cols int
	}{
		{rows: 0, cols: 1},
		{rows: 1, cols: 0},
		{rows: -1, cols: 3},
	}

	for _, tc := range cases {
		g, err := New(tc.rows, tc.cols, Options{})
		if !errors.Is(err, ErrInvalidSize) {
			t.Fatalf("New(%d,%d) err: got %v, want InvalidSize", tc.rows, tc.cols, err)
		}
		if g != nil {
			t.Fatalf("New(%d,%d): expected nil grid", tc.rows, tc.cols)
		}
	}
}

func TestNew_DefaultsAndBorders(t *testing.T) {
	g := mustNew(t, 2, 3)
	if g.Rows() != 2 || g.Cols() != 3 {
		t.Fatalf("size: got %dx%d, want 2x3", g.Rows(), g.Cols())
	}
	if g.Version() != 0 {
		t.Fatalf("version: got %d, want 0", g.Version())
	}
	for r := 0; r < 2; r++ {
		for c := 0; c < 3; c++ {
			cell, ok := g.Cell(r, c)
			if !ok {
				t.Fatalf("cell (%d,%d) missing", r, c)
			}
			want := Cell{ColSpan: 1, RowSpan: 1, Owner: Pos{Row: r, Col: c}}
			if cell != want {
				t.Fatalf("cell (%d,%d): got %+v, want %+v", r, c, cell, want)
			}
		}
	}

	b := g.Borders()
	if len(b.ColumnRight) != 3 || len(b.RowBottom) != 2 {
		t.Fatalf("border lengths: got %d/%d, want 3/2", len(b.ColumnRight), len(b.RowBottom))
	}
	for i, on := range append(b.ColumnRight, b.RowBottom...) {
		if !on {
			t.Fatalf("border %d: got false, want true", i)
		}
	}
	mustValid(t, g)
}

func TestSetText_VersionsAndRejectsHidden(t *testing.T) {
	g := mustNew(t, 1, 2)

	if err := g.SetText(0, 0, "a"); err != nil {
		t.Fatalf("SetText: %v", err)
	}
	if g.Version() != 1 {
		t.Fatalf("version: got %d, want 1", g.Version())
	}

	// Same text is a no-op.
	if err := g.SetText(0, 0, "a"); err != nil {
		t.Fatalf("SetText: %v", err)
	}
	if g.Version() != 1 {
		t.Fatalf("version after no-op: got %d, want 1", g.Version())
	}

	if err := g.MergeRight(Pos{Row: 0, Col: 0}); err != nil {
		t.Fatalf("MergeRight: %v", err)
	}
	v := g.Version()
	if err := g.SetText(0, 1, "b"); !errors.Is(err, ErrCellIsHidden) {
		t.Fatalf("SetText on hidden: got %v, want CellIsHidden", err)
	}
	if g.Version() != v {
		t.Fatalf("version after rejected SetText: got %d, want %d", g.Version(), v)
	}

	if err := g.SetText(5, 0, "x"); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("SetText out of range: got %v, want OutOfRange", err)
	}
}

func TestOwnerAndCoverage_ResolveHiddenCells(t *testing.T) {
	g := mustNew(t, 3, 3)
	if err := g.MergeRight(Pos{Row: 1, Col: 0}); err != nil {
		t.Fatalf("MergeRight: %v", err)
	}
	// MergeDown needs a partner of the same width below.
	if err := g.MergeRight(Pos{Row: 2, Col: 0}); err != nil {
		t.Fatalf("MergeRight row 2: %v", err)
	}
	if err := g.MergeDown(Pos{Row: 1, Col: 0}); err != nil {
		t.Fatalf("MergeDown: %v", err)
	}
	mustValid(t, g)

	for _, p := range []Pos{{1, 0}, {1, 1}, {2, 0}, {2, 1}} {
		owner, ok := g.Owner(p.Row, p.Col)
		if !ok || owner != (Pos{Row: 1, Col: 0}) {
			t.Fatalf("owner of %v: got %v (ok=%v), want (1,0)", p, owner, ok)
		}
	}
	rect, ok := g.Coverage(2, 1)
	if !ok {
		t.Fatalf("expected coverage for (2,1)")
	}
	if want := (Rect{Row: 1, Col: 0, RowSpan: 2, ColSpan: 2}); rect != want {
		t.Fatalf("coverage: got %+v, want %+v", rect, want)
	}
	if rect.Anchor() != (Pos{Row: 1, Col: 0}) || rect.LastRow() != 2 || rect.LastCol() != 1 {
		t.Fatalf("rect bounds: anchor %v last (%d,%d)", rect.Anchor(), rect.LastRow(), rect.LastCol())
	}
	if _, ok := g.Owner(3, 0); ok {
		t.Fatalf("expected no owner outside the grid")
	}
}

func TestReset_RebuildsAndRecordsHistory(t *testing.T) {
	g := mustNew(t, 3, 3)
	_ = g.SetText(0, 0, "x")
	_ = g.MergeRight(Pos{Row: 0, Col: 0})
	_, _ = g.ToggleRowBorder(Pos{Row: 1, Col: 1})

	if err := g.Reset(2, 2); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if g.Rows() != 2 || g.Cols() != 2 {
		t.Fatalf("size after reset: got %dx%d, want 2x2", g.Rows(), g.Cols())
	}
	if got := g.Texts(); got[0][0] != "" {
		t.Fatalf("text after reset: got %q, want empty", got[0][0])
	}
	mustValid(t, g)

	if err := g.Reset(0, 2); !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("Reset(0,2): got %v, want InvalidSize", err)
	}

	if !g.Undo() {
		t.Fatalf("expected undo of reset")
	}
	if g.Rows() != 3 || g.Texts()[0][0] != "x" {
		t.Fatalf("undo reset: got %dx%d text %q", g.Rows(), g.Cols(), g.Texts()[0][0])
	}
	mustValid(t, g)
}

func TestLastChange_DescribesOperation(t *testing.T) {
	g := mustNew(t, 2, 2)
	if _, ok := g.LastChange(); ok {
		t.Fatalf("expected no change on a fresh grid")
	}

	g.InsertColumn()
	ch, ok := g.LastChange()
	if !ok {
		t.Fatalf("expected a change")
	}
	if ch.Kind != ChangeInsertColumn || ch.Index != 2 {
		t.Fatalf("change: got kind=%v index=%d, want insert column/2", ch.Kind, ch.Index)
	}
	if ch.VersionBefore != 0 || ch.VersionAfter != 1 {
		t.Fatalf("change versions: got %d->%d, want 0->1", ch.VersionBefore, ch.VersionAfter)
	}
	if ch.ColsBefore != 2 || ch.ColsAfter != 3 {
		t.Fatalf("change cols: got %d->%d, want 2->3", ch.ColsBefore, ch.ColsAfter)
	}

	// Rejected operations leave the last change alone.
	_ = g.MergeDown(Pos{Row: 1, Col: 0})
	_ = g.MergeDown(Pos{Row: 1, Col: 0})
	before, _ := g.LastChange()
	if err := g.MergeDown(Pos{Row: 0, Col: 2}); err != nil {
		t.Fatalf("MergeDown: %v", err)
	}
	after, _ := g.LastChange()
	if after.Kind != ChangeMerge || after.Anchor != (Pos{Row: 0, Col: 2}) {
		t.Fatalf("merge change: got %+v", after)
	}
	if after.VersionBefore != before.VersionAfter {
		t.Fatalf("version chain: got %d, want %d", after.VersionBefore, before.VersionAfter)
	}
}
