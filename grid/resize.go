package grid

// InsertRow appends an empty row with its bottom rule on. Existing spans are
// not extended.
func (g *Grid) InsertRow() {
	prev := g.snapshot()
	change := g.beginChange(ChangeInsertRow, Pos{}, g.rows)

	r := g.rows
	for c := 0; c < g.cols; c++ {
		g.cells = append(g.cells, newCell(r, c))
	}
	g.rows++
	g.borders.RowBottom = append(g.borders.RowBottom, true)
	g.commit(prev, change)
}

// InsertColumn appends an empty column with its right rule on.
func (g *Grid) InsertColumn() {
	prev := g.snapshot()
	change := g.beginChange(ChangeInsertColumn, Pos{}, g.cols)

	cols := g.cols + 1
	cells := make([]Cell, 0, g.rows*cols)
	for r := 0; r < g.rows; r++ {
		cells = append(cells, g.cells[r*g.cols:(r+1)*g.cols]...)
		cells = append(cells, newCell(r, g.cols))
	}
	g.cells = cells
	g.cols = cols
	g.borders.ColumnRight = append(g.borders.ColumnRight, true)
	g.commit(prev, change)
}

// RemoveRow deletes row index.
//
// The grid is flattened: visible text is kept by position, every merge is
// dropped. The bottom rule of the removed row goes with it.
func (g *Grid) RemoveRow(index int) error {
	p := Pos{Row: index, Col: -1}
	if g.rows <= 1 {
		return newError(CannotShrinkBelowOne, "remove row", p)
	}
	if index < 0 || index >= g.rows {
		return newError(OutOfRange, "remove row", p)
	}

	prev := g.snapshot()
	change := g.beginChange(ChangeRemoveRow, Pos{}, index)

	texts := g.Texts()
	texts = append(texts[:index], texts[index+1:]...)
	borders := g.borders.clone()
	borders.RowBottom = append(borders.RowBottom[:index], borders.RowBottom[index+1:]...)

	g.flatten(g.rows-1, g.cols, texts, borders)
	g.commit(prev, change)
	return nil
}

// RemoveColumn deletes column index with the same flattening as RemoveRow.
func (g *Grid) RemoveColumn(index int) error {
	p := Pos{Row: -1, Col: index}
	if g.cols <= 1 {
		return newError(CannotShrinkBelowOne, "remove column", p)
	}
	if index < 0 || index >= g.cols {
		return newError(OutOfRange, "remove column", p)
	}

	prev := g.snapshot()
	change := g.beginChange(ChangeRemoveColumn, Pos{}, index)

	texts := g.Texts()
	for r := range texts {
		texts[r] = append(texts[r][:index], texts[r][index+1:]...)
	}
	borders := g.borders.clone()
	borders.ColumnRight = append(borders.ColumnRight[:index], borders.ColumnRight[index+1:]...)

	g.flatten(g.rows, g.cols-1, texts, borders)
	g.commit(prev, change)
	return nil
}

func (g *Grid) flatten(rows, cols int, texts [][]string, borders Borders) {
	g.rebuild(rows, cols)
	for r := 0; r < rows && r < len(texts); r++ {
		for c := 0; c < cols && c < len(texts[r]); c++ {
			g.cells[g.index(r, c)].Text = texts[r][c]
		}
	}
	g.borders = borders
}
