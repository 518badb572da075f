package editor

import "github.com/iw2rmb/textable/grid"

// CellAt maps view coordinates to the anchor drawn there.
//
// Coordinates are terminal cells relative to the top-left of View. Rule
// lines and separators belong to the cell above or to the left of them;
// the outer frame belongs to the first row or column.
func (m Model) CellAt(x, y int) (grid.Pos, bool) {
	l := m.layout()
	if x < 0 || y < 0 || x >= l.width() || y >= l.height() {
		return grid.Pos{}, false
	}
	col := clampInt((x-1)/(l.cellWidth+1), 0, l.cols-1)
	row := clampInt((y-1)/2, 0, l.rows-1)
	return m.g.Owner(row, col)
}

// CellOrigin returns the view coordinates of the first content cell drawn
// for the anchor covering p.
func (m Model) CellOrigin(p grid.Pos) (x, y int, ok bool) {
	rect, ok := m.g.Coverage(p.Row, p.Col)
	if !ok {
		return 0, 0, false
	}
	l := m.layout()
	return l.colX(rect.Col), l.rowY(rect.Row), true
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
