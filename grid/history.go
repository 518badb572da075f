package grid

type gridSnapshot struct {
	rows    int
	cols    int
	cells   []Cell
	borders Borders
}

type historyState struct {
	undo []gridSnapshot
	redo []gridSnapshot
}

func (g *Grid) snapshot() gridSnapshot {
	return gridSnapshot{
		rows:    g.rows,
		cols:    g.cols,
		cells:   append([]Cell(nil), g.cells...),
		borders: g.borders.clone(),
	}
}

func (g *Grid) restore(s gridSnapshot) {
	g.rows = s.rows
	g.cols = s.cols
	g.cells = append([]Cell(nil), s.cells...)
	g.borders = s.borders.clone()
}

func (g *Grid) recordUndo(prev gridSnapshot) {
	limit := g.opt.HistoryLimit
	if limit <= 0 {
		return
	}

	g.hist.undo = append(g.hist.undo, prev)
	if len(g.hist.undo) > limit {
		g.hist.undo = g.hist.undo[len(g.hist.undo)-limit:]
	}
	g.hist.redo = nil
}

func (g *Grid) CanUndo() bool { return len(g.hist.undo) > 0 }

func (g *Grid) CanRedo() bool { return len(g.hist.redo) > 0 }

func (g *Grid) Undo() bool {
	if len(g.hist.undo) == 0 {
		return false
	}

	cur := g.snapshot()
	change := g.beginChange(ChangeUndo, Pos{}, -1)

	i := len(g.hist.undo) - 1
	prev := g.hist.undo[i]
	g.hist.undo = g.hist.undo[:i]
	g.hist.redo = append(g.hist.redo, cur)

	g.restore(prev)
	g.version++
	g.commitChange(change)
	return true
}

func (g *Grid) Redo() bool {
	if len(g.hist.redo) == 0 {
		return false
	}

	cur := g.snapshot()
	change := g.beginChange(ChangeRedo, Pos{}, -1)

	i := len(g.hist.redo) - 1
	next := g.hist.redo[i]
	g.hist.redo = g.hist.redo[:i]

	limit := g.opt.HistoryLimit
	if limit > 0 {
		g.hist.undo = append(g.hist.undo, cur)
		if len(g.hist.undo) > limit {
			g.hist.undo = g.hist.undo[len(g.hist.undo)-limit:]
		}
	}

	g.restore(next)
	g.version++
	g.commitChange(change)
	return true
}

// ClearHistory drops undo and redo state. Version is kept.
func (g *Grid) ClearHistory() {
	g.hist = historyState{}
}
