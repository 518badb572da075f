package grid

// Pos points at a grid position by (row, col).
// Row and Col are 0-based.
type Pos struct {
	Row int
	Col int
}

// Cell is one grid position.
//
// For a visible cell, ColSpan and RowSpan describe the rectangle it covers and
// Owner equals its own position. For a hidden cell, Owner is the anchor that
// covers it; Text and spans carry no meaning.
type Cell struct {
	Text    string
	ColSpan int
	RowSpan int
	Hidden  bool
	Owner   Pos
}

// Rect is a coverage rectangle: rows [Row, Row+RowSpan), cols [Col, Col+ColSpan).
type Rect struct {
	Row     int
	Col     int
	RowSpan int
	ColSpan int
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Pos) bool {
	return p.Row >= r.Row && p.Row < r.Row+r.RowSpan &&
		p.Col >= r.Col && p.Col < r.Col+r.ColSpan
}

// Overlaps reports whether r and o share at least one position.
func (r Rect) Overlaps(o Rect) bool {
	return r.Row < o.Row+o.RowSpan && o.Row < r.Row+r.RowSpan &&
		r.Col < o.Col+o.ColSpan && o.Col < r.Col+r.ColSpan
}

// Anchor is the top-left position of the rectangle.
func (r Rect) Anchor() Pos { return Pos{Row: r.Row, Col: r.Col} }

// LastRow is the trailing row index of the rectangle.
func (r Rect) LastRow() int { return r.Row + r.RowSpan - 1 }

// LastCol is the trailing column index of the rectangle.
func (r Rect) LastCol() int { return r.Col + r.ColSpan - 1 }

func newCell(row, col int) Cell {
	return Cell{
		ColSpan: 1,
		RowSpan: 1,
		Owner:   Pos{Row: row, Col: col},
	}
}
