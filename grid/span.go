package grid

// MergeRight absorbs the visible cell immediately right of the anchor's span.
//
// The target must be visible and have the same RowSpan as the anchor;
// otherwise MergeIncompatible is returned and the grid is unchanged.
func (g *Grid) MergeRight(anchor Pos) error {
	cell, err := g.anchorCell("merge right", anchor)
	if err != nil {
		return err
	}
	target, ok := g.Cell(anchor.Row, anchor.Col+cell.ColSpan)
	if !ok || target.Hidden || target.RowSpan != cell.RowSpan {
		return newError(MergeIncompatible, "merge right", anchor)
	}

	prev := g.snapshot()
	change := g.beginChange(ChangeMerge, anchor, -1)
	g.absorb(anchor, Rect{
		Row:     anchor.Row,
		Col:     anchor.Col + cell.ColSpan,
		RowSpan: target.RowSpan,
		ColSpan: target.ColSpan,
	})
	g.cells[g.index(anchor.Row, anchor.Col)].ColSpan += target.ColSpan
	g.commit(prev, change)
	return nil
}

// MergeDown absorbs the visible cell immediately below the anchor's span.
//
// The target must be visible and have the same ColSpan as the anchor.
func (g *Grid) MergeDown(anchor Pos) error {
	cell, err := g.anchorCell("merge down", anchor)
	if err != nil {
		return err
	}
	target, ok := g.Cell(anchor.Row+cell.RowSpan, anchor.Col)
	if !ok || target.Hidden || target.ColSpan != cell.ColSpan {
		return newError(MergeIncompatible, "merge down", anchor)
	}

	prev := g.snapshot()
	change := g.beginChange(ChangeMerge, anchor, -1)
	g.absorb(anchor, Rect{
		Row:     anchor.Row + cell.RowSpan,
		Col:     anchor.Col,
		RowSpan: target.RowSpan,
		ColSpan: target.ColSpan,
	})
	g.cells[g.index(anchor.Row, anchor.Col)].RowSpan += target.RowSpan
	g.commit(prev, change)
	return nil
}

// Unmerge splits the anchor's span back into 1x1 cells. The anchor keeps its
// text; every other position of the span comes back empty.
func (g *Grid) Unmerge(anchor Pos) error {
	cell, err := g.anchorCell("unmerge", anchor)
	if err != nil {
		return err
	}
	if cell.ColSpan == 1 && cell.RowSpan == 1 {
		return nil
	}

	prev := g.snapshot()
	change := g.beginChange(ChangeUnmerge, anchor, -1)
	for r := anchor.Row; r < anchor.Row+cell.RowSpan; r++ {
		for c := anchor.Col; c < anchor.Col+cell.ColSpan; c++ {
			if r == anchor.Row && c == anchor.Col {
				continue
			}
			g.cells[g.index(r, c)] = newCell(r, c)
		}
	}
	i := g.index(anchor.Row, anchor.Col)
	g.cells[i].ColSpan = 1
	g.cells[i].RowSpan = 1
	g.commit(prev, change)
	return nil
}

// absorb hides every position of rect under owner.
func (g *Grid) absorb(owner Pos, rect Rect) {
	for r := rect.Row; r < rect.Row+rect.RowSpan; r++ {
		for c := rect.Col; c < rect.Col+rect.ColSpan; c++ {
			g.cells[g.index(r, c)] = Cell{
				ColSpan: 1,
				RowSpan: 1,
				Hidden:  true,
				Owner:   owner,
			}
		}
	}
}

func (g *Grid) anchorCell(op string, anchor Pos) (Cell, error) {
	cell, ok := g.Cell(anchor.Row, anchor.Col)
	if !ok {
		return Cell{}, newError(OutOfRange, op, anchor)
	}
	if cell.Hidden {
		return Cell{}, newError(CellIsHidden, op, anchor)
	}
	return cell, nil
}
