package grid

type Options struct {
	HistoryLimit int // default: 1000; negative disables undo
}

// Grid is the pure table state: cells, spans and border flags.
type Grid struct {
	rows    int
	cols    int
	cells   []Cell
	borders Borders
	version uint64

	opt  Options
	hist historyState

	lastChange    Change
	hasLastChange bool
}

func New(rows, cols int, opt Options) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, newError(InvalidSize, "new", Pos{Row: rows, Col: cols})
	}
	if opt.HistoryLimit == 0 {
		opt.HistoryLimit = 1000
	}
	g := &Grid{opt: opt}
	g.rebuild(rows, cols)
	return g, nil
}

func (g *Grid) Rows() int { return g.rows }

func (g *Grid) Cols() int { return g.cols }

func (g *Grid) Version() uint64 { return g.version }

// Cell returns the cell stored at (row, col).
func (g *Grid) Cell(row, col int) (Cell, bool) {
	if !g.inBounds(row, col) {
		return Cell{}, false
	}
	return g.cells[g.index(row, col)], true
}

// Owner resolves (row, col) to the anchor that covers it. Visible cells own
// themselves.
func (g *Grid) Owner(row, col int) (Pos, bool) {
	c, ok := g.Cell(row, col)
	if !ok {
		return Pos{}, false
	}
	if !c.Hidden {
		return Pos{Row: row, Col: col}, true
	}
	return c.Owner, true
}

// Coverage returns the rectangle covered by the anchor owning (row, col).
func (g *Grid) Coverage(row, col int) (Rect, bool) {
	p, ok := g.Owner(row, col)
	if !ok {
		return Rect{}, false
	}
	c := g.cells[g.index(p.Row, p.Col)]
	return Rect{Row: p.Row, Col: p.Col, RowSpan: c.RowSpan, ColSpan: c.ColSpan}, true
}

// Texts returns the visible text by position; hidden positions are "".
func (g *Grid) Texts() [][]string {
	out := make([][]string, g.rows)
	for r := 0; r < g.rows; r++ {
		row := make([]string, g.cols)
		for c := 0; c < g.cols; c++ {
			cell := g.cells[g.index(r, c)]
			if !cell.Hidden {
				row[c] = cell.Text
			}
		}
		out[r] = row
	}
	return out
}

// SetText replaces the text of a visible cell. Hidden targets are rejected;
// callers resolve them with Owner first.
func (g *Grid) SetText(row, col int, text string) error {
	p := Pos{Row: row, Col: col}
	if !g.inBounds(row, col) {
		return newError(OutOfRange, "set text", p)
	}
	i := g.index(row, col)
	if g.cells[i].Hidden {
		return newError(CellIsHidden, "set text", p)
	}
	if g.cells[i].Text == text {
		return nil
	}

	prev := g.snapshot()
	change := g.beginChange(ChangeText, p, -1)
	g.cells[i].Text = text
	g.commit(prev, change)
	return nil
}

// Reset discards all content and rebuilds a fresh rows x cols grid.
func (g *Grid) Reset(rows, cols int) error {
	if rows < 1 || cols < 1 {
		return newError(InvalidSize, "reset", Pos{Row: rows, Col: cols})
	}
	prev := g.snapshot()
	change := g.beginChange(ChangeReset, Pos{}, -1)
	g.rebuild(rows, cols)
	g.commit(prev, change)
	return nil
}

// rebuild replaces the cells with unhidden 1x1 cells and all borders on.
func (g *Grid) rebuild(rows, cols int) {
	g.rows = rows
	g.cols = cols
	g.cells = make([]Cell, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			g.cells[g.index(r, c)] = newCell(r, c)
		}
	}
	g.borders = newBorders(rows, cols)
}

// commit finalizes an effective mutation: version, undo record, change.
func (g *Grid) commit(prev gridSnapshot, change changeBuilder) {
	g.version++
	g.recordUndo(prev)
	g.commitChange(change)
}

func (g *Grid) index(row, col int) int { return row*g.cols + col }

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}
