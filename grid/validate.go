package grid

import "github.com/olekukonko/errors"

// Validate checks the structural invariants of the grid:
//
// - every hidden cell's owner is visible and its span covers the hidden cell;
// - every position covered by a visible span (other than its anchor) is a
//   hidden cell owned by that anchor, which also rules out overlaps;
// - spans stay inside the grid and border slices match the grid size.
func (g *Grid) Validate() error {
	if g.rows < 1 || g.cols < 1 || len(g.cells) != g.rows*g.cols {
		return errors.Newf("grid: size %dx%d with %d cells", g.rows, g.cols, len(g.cells))
	}
	if len(g.borders.ColumnRight) != g.cols || len(g.borders.RowBottom) != g.rows {
		return errors.Newf("grid: border lengths %d/%d for %dx%d grid",
			len(g.borders.ColumnRight), len(g.borders.RowBottom), g.rows, g.cols)
	}

	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			cell := g.cells[g.index(r, c)]
			if cell.Hidden {
				o := cell.Owner
				if !g.inBounds(o.Row, o.Col) {
					return errors.Newf("grid: hidden (%d,%d) owned by out-of-range (%d,%d)", r, c, o.Row, o.Col)
				}
				owner := g.cells[g.index(o.Row, o.Col)]
				if owner.Hidden {
					return errors.Newf("grid: hidden (%d,%d) owned by hidden (%d,%d)", r, c, o.Row, o.Col)
				}
				rect := Rect{Row: o.Row, Col: o.Col, RowSpan: owner.RowSpan, ColSpan: owner.ColSpan}
				if !rect.Contains(Pos{Row: r, Col: c}) {
					return errors.Newf("grid: hidden (%d,%d) outside span of (%d,%d)", r, c, o.Row, o.Col)
				}
				continue
			}

			if cell.ColSpan < 1 || cell.RowSpan < 1 {
				return errors.Newf("grid: (%d,%d) has span %dx%d", r, c, cell.RowSpan, cell.ColSpan)
			}
			if cell.Owner != (Pos{Row: r, Col: c}) {
				return errors.Newf("grid: visible (%d,%d) owned by (%d,%d)", r, c, cell.Owner.Row, cell.Owner.Col)
			}
			rect := Rect{Row: r, Col: c, RowSpan: cell.RowSpan, ColSpan: cell.ColSpan}
			if rect.LastRow() >= g.rows || rect.LastCol() >= g.cols {
				return errors.Newf("grid: span of (%d,%d) leaves the grid", r, c)
			}
			for rr := rect.Row; rr <= rect.LastRow(); rr++ {
				for cc := rect.Col; cc <= rect.LastCol(); cc++ {
					if rr == r && cc == c {
						continue
					}
					covered := g.cells[g.index(rr, cc)]
					if !covered.Hidden || covered.Owner != (Pos{Row: r, Col: c}) {
						return errors.Newf("grid: (%d,%d) covered by (%d,%d) is not hidden under it", rr, cc, r, c)
					}
				}
			}
		}
	}
	return nil
}
