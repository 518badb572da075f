package grid

import (
	"errors"
	"testing"
)

func TestToggleColumnBorder_TargetsTrailingEdgeOfSpan(t *testing.T) {
	g := mustNew(t, 2, 3)
	anchor := Pos{Row: 0, Col: 0}
	if err := g.MergeRight(anchor); err != nil {
		t.Fatalf("MergeRight: %v", err)
	}

	i, err := g.ToggleColumnBorder(anchor)
	if err != nil {
		t.Fatalf("ToggleColumnBorder: %v", err)
	}
	if i != anchor.Col+1 {
		t.Fatalf("toggled index: got %d, want %d", i, anchor.Col+1)
	}
	b := g.Borders()
	if !b.ColumnRight[0] || b.ColumnRight[1] || !b.ColumnRight[2] {
		t.Fatalf("column borders: got %v, want [true false true]", b.ColumnRight)
	}
	if g.EffectiveRightBorder(anchor) {
		t.Fatalf("effective right border: got true, want false")
	}
}

func TestToggleRowBorder_TargetsTrailingEdgeOfSpan(t *testing.T) {
	g := mustNew(t, 3, 2)
	anchor := Pos{Row: 0, Col: 1}
	_ = g.MergeDown(anchor)
	_ = g.MergeDown(anchor)

	i, err := g.ToggleRowBorder(anchor)
	if err != nil {
		t.Fatalf("ToggleRowBorder: %v", err)
	}
	if i != 2 {
		t.Fatalf("toggled index: got %d, want 2", i)
	}
	if g.EffectiveBottomBorder(anchor) {
		t.Fatalf("effective bottom border: got true, want false")
	}
	if !g.EffectiveBottomBorder(Pos{Row: 0, Col: 0}) {
		t.Fatalf("row 0 bottom border should stay on")
	}

	// Toggling twice restores the flag.
	if _, err := g.ToggleRowBorder(anchor); err != nil {
		t.Fatalf("ToggleRowBorder: %v", err)
	}
	if !g.EffectiveBottomBorder(anchor) {
		t.Fatalf("effective bottom border after second toggle: got false, want true")
	}
}

func TestToggleBorder_HiddenPositionResolvesToOwner(t *testing.T) {
	g := mustNew(t, 1, 3)
	_ = g.MergeRight(Pos{Row: 0, Col: 1})

	i, err := g.ToggleColumnBorder(Pos{Row: 0, Col: 2})
	if err != nil {
		t.Fatalf("ToggleColumnBorder: %v", err)
	}
	if i != 2 {
		t.Fatalf("toggled index: got %d, want 2", i)
	}
	ch, _ := g.LastChange()
	if ch.Kind != ChangeBorder || ch.Anchor != (Pos{Row: 0, Col: 1}) || ch.Index != 2 {
		t.Fatalf("change: got %+v", ch)
	}

	if _, err := g.ToggleColumnBorder(Pos{Row: 3, Col: 0}); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("toggle out of range: got %v, want OutOfRange", err)
	}
}

func TestSetBorder_NoOpAndRange(t *testing.T) {
	g := mustNew(t, 2, 2)
	if err := g.SetColumnBorder(1, true); err != nil {
		t.Fatalf("SetColumnBorder: %v", err)
	}
	if g.Version() != 0 {
		t.Fatalf("version after no-op: got %d, want 0", g.Version())
	}
	if err := g.SetRowBorder(0, false); err != nil {
		t.Fatalf("SetRowBorder: %v", err)
	}
	if g.Borders().RowBottom[0] {
		t.Fatalf("row border 0: got true, want false")
	}
	if err := g.SetColumnBorder(2, false); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("SetColumnBorder(2): got %v, want OutOfRange", err)
	}
	if err := g.SetRowBorder(-1, false); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("SetRowBorder(-1): got %v, want OutOfRange", err)
	}
}

func TestBorders_ReturnsCopy(t *testing.T) {
	g := mustNew(t, 1, 1)
	b := g.Borders()
	b.ColumnRight[0] = false
	if !g.Borders().ColumnRight[0] {
		t.Fatalf("mutating the returned borders changed the grid")
	}
}
