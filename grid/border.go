package grid

// Borders holds the per-line rule flags. Index i is the rule on the trailing
// edge of column/row i.
type Borders struct {
	ColumnRight []bool
	RowBottom   []bool
}

func newBorders(rows, cols int) Borders {
	b := Borders{
		ColumnRight: make([]bool, cols),
		RowBottom:   make([]bool, rows),
	}
	for i := range b.ColumnRight {
		b.ColumnRight[i] = true
	}
	for i := range b.RowBottom {
		b.RowBottom[i] = true
	}
	return b
}

func (b Borders) clone() Borders {
	return Borders{
		ColumnRight: append([]bool(nil), b.ColumnRight...),
		RowBottom:   append([]bool(nil), b.RowBottom...),
	}
}

// Borders returns a copy of the current border flags.
func (g *Grid) Borders() Borders { return g.borders.clone() }

// ToggleColumnBorder flips the rule on the trailing column of the anchor's
// span and returns the flipped column index. A hidden position resolves to its
// owner, so a merged cell's inner columns are never toggled on their own.
func (g *Grid) ToggleColumnBorder(anchor Pos) (int, error) {
	r, ok := g.Coverage(anchor.Row, anchor.Col)
	if !ok {
		return -1, newError(OutOfRange, "toggle column border", anchor)
	}
	i := r.LastCol()

	prev := g.snapshot()
	change := g.beginChange(ChangeBorder, Pos{Row: r.Row, Col: r.Col}, i)
	g.borders.ColumnRight[i] = !g.borders.ColumnRight[i]
	g.commit(prev, change)
	return i, nil
}

// ToggleRowBorder flips the rule under the trailing row of the anchor's span
// and returns the flipped row index.
func (g *Grid) ToggleRowBorder(anchor Pos) (int, error) {
	r, ok := g.Coverage(anchor.Row, anchor.Col)
	if !ok {
		return -1, newError(OutOfRange, "toggle row border", anchor)
	}
	i := r.LastRow()

	prev := g.snapshot()
	change := g.beginChange(ChangeBorder, Pos{Row: r.Row, Col: r.Col}, i)
	g.borders.RowBottom[i] = !g.borders.RowBottom[i]
	g.commit(prev, change)
	return i, nil
}

// EffectiveRightBorder reports the column rule at the trailing edge of the
// span covering anchor.
func (g *Grid) EffectiveRightBorder(anchor Pos) bool {
	r, ok := g.Coverage(anchor.Row, anchor.Col)
	if !ok {
		return false
	}
	return g.borders.ColumnRight[r.LastCol()]
}

// EffectiveBottomBorder reports the row rule at the trailing edge of the span
// covering anchor.
func (g *Grid) EffectiveBottomBorder(anchor Pos) bool {
	r, ok := g.Coverage(anchor.Row, anchor.Col)
	if !ok {
		return false
	}
	return g.borders.RowBottom[r.LastRow()]
}

// SetColumnBorder sets the rule after column i.
func (g *Grid) SetColumnBorder(i int, on bool) error {
	if i < 0 || i >= g.cols {
		return newError(OutOfRange, "set column border", Pos{Row: -1, Col: i})
	}
	if g.borders.ColumnRight[i] == on {
		return nil
	}
	prev := g.snapshot()
	change := g.beginChange(ChangeBorder, Pos{Row: -1, Col: i}, i)
	g.borders.ColumnRight[i] = on
	g.commit(prev, change)
	return nil
}

// SetRowBorder sets the rule under row i.
func (g *Grid) SetRowBorder(i int, on bool) error {
	if i < 0 || i >= g.rows {
		return newError(OutOfRange, "set row border", Pos{Row: i, Col: -1})
	}
	if g.borders.RowBottom[i] == on {
		return nil
	}
	prev := g.snapshot()
	change := g.beginChange(ChangeBorder, Pos{Row: i, Col: -1}, i)
	g.borders.RowBottom[i] = on
	g.commit(prev, change)
	return nil
}
