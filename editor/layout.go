package editor

import "github.com/iw2rmb/textable/latex"

// tableLayout is the drawn geometry of the grid. Every column is cellWidth
// wide with a one-cell separator on each side; every row is one content line
// with a rule line above and below.
//
//	x: 0 | col 0 | col 1 | ...      y: 0 rule, 1 row 0, 2 rule, 3 row 1, ...
type tableLayout struct {
	rows      int
	cols      int
	cellWidth int
}

func (m Model) layout() tableLayout {
	return tableLayout{rows: m.g.Rows(), cols: m.g.Cols(), cellWidth: m.cfg.CellWidth}
}

func (l tableLayout) width() int { return l.cols*(l.cellWidth+1) + 1 }

func (l tableLayout) height() int { return 2*l.rows + 1 }

// colX is the x of the first content cell of column c.
func (l tableLayout) colX(c int) int { return 1 + c*(l.cellWidth+1) }

// rowY is the y of the content line of row r.
func (l tableLayout) rowY(r int) int { return 1 + 2*r }

// spanWidth is the drawn width of n adjacent columns, swallowing the
// separators between them.
func (l tableLayout) spanWidth(n int) int { return n*l.cellWidth + n - 1 }

// vRule reports whether a vertical rule is drawn right of column c in row r.
// c == -1 is the left frame. Positions inside a span never carry a rule.
func (m Model) vRule(r, c int) bool {
	if r < 0 || r >= m.g.Rows() {
		return false
	}
	if c < 0 {
		return m.emit.Mode == latex.ModeStandard && m.emit.OuterBorder
	}
	rect, ok := m.g.Coverage(r, c)
	if !ok || rect.LastCol() != c {
		return false
	}
	if m.emit.Mode == latex.ModeRuled {
		return m.emit.FirstColumnLine && rect.Col == 0 && m.g.Cols() > 1
	}
	b := m.g.Borders()
	return b.ColumnRight[c] || (m.emit.OuterBorder && c == m.g.Cols()-1)
}

// hRule reports whether a horizontal rule is drawn below row r across column
// c. r == -1 is the top frame.
func (m Model) hRule(r, c int) bool {
	if c < 0 || c >= m.g.Cols() {
		return false
	}
	if m.emit.Mode == latex.ModeRuled {
		return r == -1 || r == 0 || r == m.g.Rows()-1
	}
	if r < 0 {
		return m.emit.OuterBorder
	}
	rect, ok := m.g.Coverage(r, c)
	if !ok || rect.LastRow() != r {
		return false
	}
	return m.g.Borders().RowBottom[r]
}

const (
	edgeUp = 1 << iota
	edgeDown
	edgeLeft
	edgeRight
)

var junctions = [16]string{
	0:                                       " ",
	edgeUp:                                  "│",
	edgeDown:                                "│",
	edgeUp | edgeDown:                       "│",
	edgeLeft:                                "─",
	edgeRight:                               "─",
	edgeLeft | edgeRight:                    "─",
	edgeDown | edgeRight:                    "┌",
	edgeDown | edgeLeft:                     "┐",
	edgeUp | edgeRight:                      "└",
	edgeUp | edgeLeft:                       "┘",
	edgeUp | edgeDown | edgeRight:           "├",
	edgeUp | edgeDown | edgeLeft:            "┤",
	edgeDown | edgeLeft | edgeRight:         "┬",
	edgeUp | edgeLeft | edgeRight:           "┴",
	edgeUp | edgeDown | edgeLeft | edgeRight: "┼",
}

// junction is the glyph where the rule below row r meets the rule right of
// column c.
func (m Model) junction(r, c int) string {
	var edges int
	if m.vRule(r, c) {
		edges |= edgeUp
	}
	if m.vRule(r+1, c) {
		edges |= edgeDown
	}
	if m.hRule(r, c) {
		edges |= edgeLeft
	}
	if m.hRule(r, c+1) {
		edges |= edgeRight
	}
	return junctions[edges]
}
