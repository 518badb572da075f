package latex

import (
	"strconv"
	"strings"

	"github.com/iw2rmb/textable/grid"
)

// Source is the read side of a grid. *grid.Grid implements it.
type Source interface {
	Rows() int
	Cols() int
	Cell(row, col int) (grid.Cell, bool)
	Borders() grid.Borders
}

const (
	colSep = " & "
	rowEnd = ` \\`

	ruleFull   = `\hline`
	ruleTop    = `\toprule`
	ruleMid    = `\midrule`
	ruleBottom = `\bottomrule`
)

// emitter carries one emission; it is discarded after Emit returns.
type emitter struct {
	src     Source
	opt     Options
	rows    int
	cols    int
	borders grid.Borders
	lines   []string
}

// Emit renders the complete table environment.
func Emit(src Source, opt Options) string {
	e := &emitter{
		src:     src,
		opt:     opt.normalized(),
		rows:    src.Rows(),
		cols:    src.Cols(),
		borders: src.Borders(),
	}
	return e.emit()
}

func (e *emitter) emit() string {
	in := e.opt.Indent
	body := in + in

	e.lines = append(e.lines, `\begin{table}[`+e.opt.Placement+`]`, in+`\centering`)
	if e.opt.Caption != "" {
		e.lines = append(e.lines, in+`\caption{`+e.opt.Caption+`}`)
	}
	if e.opt.Label != "" {
		e.lines = append(e.lines, in+`\label{`+e.opt.Label+`}`)
	}
	e.lines = append(e.lines, in+`\begin{tabular}{`+e.columnSpec()+`}`)

	if rule := e.topRule(); rule != "" {
		e.lines = append(e.lines, body+rule)
	}
	for r := 0; r < e.rows; r++ {
		e.lines = append(e.lines, body+strings.Join(e.rowCells(r), colSep)+rowEnd)
		for _, rule := range e.rulesAfter(r) {
			e.lines = append(e.lines, body+rule)
		}
	}

	e.lines = append(e.lines, in+`\end{tabular}`, `\end{table}`)
	return strings.Join(e.lines, "\n")
}

// rowCells returns the emitted cells of row r, walking columns by span.
//
// Positions hidden under a colspan contribute nothing. A position that
// continues a rowspan (the first column of its owner, below the owner's row)
// contributes an empty placeholder so that later cells stay in their columns.
func (e *emitter) rowCells(r int) []string {
	var out []string
	for c := 0; c < e.cols; {
		cell, _ := e.src.Cell(r, c)
		if cell.Hidden {
			owner, _ := e.src.Cell(cell.Owner.Row, cell.Owner.Col)
			if cell.Owner.Row < r && cell.Owner.Col == c {
				if owner.ColSpan > 1 {
					out = append(out, multicolumn(owner.ColSpan, e.alignSpec(c, owner.ColSpan), ""))
					c += owner.ColSpan
					continue
				}
				out = append(out, "")
			}
			c++
			continue
		}

		text := TransformText(cell.Text)
		if cell.ColSpan > 1 {
			text = multicolumn(cell.ColSpan, e.alignSpec(c, cell.ColSpan), text)
		}
		if cell.RowSpan > 1 {
			text = `\multirow{` + strconv.Itoa(cell.RowSpan) + `}{*}{` + text + `}`
		}
		out = append(out, text)
		c += cell.ColSpan
	}
	return out
}

func multicolumn(n int, align, text string) string {
	return `\multicolumn{` + strconv.Itoa(n) + `}{` + align + `}{` + text + `}`
}
