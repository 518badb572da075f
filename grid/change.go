package grid

// ChangeKind identifies which operation produced a change.
type ChangeKind uint8

const (
	ChangeText ChangeKind = iota
	ChangeInsertRow
	ChangeInsertColumn
	ChangeRemoveRow
	ChangeRemoveColumn
	ChangeMerge
	ChangeUnmerge
	ChangeBorder
	ChangeReset
	ChangeUndo
	ChangeRedo
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeText:
		return "text"
	case ChangeInsertRow:
		return "insert row"
	case ChangeInsertColumn:
		return "insert column"
	case ChangeRemoveRow:
		return "remove row"
	case ChangeRemoveColumn:
		return "remove column"
	case ChangeMerge:
		return "merge"
	case ChangeUnmerge:
		return "unmerge"
	case ChangeBorder:
		return "border"
	case ChangeReset:
		return "reset"
	case ChangeUndo:
		return "undo"
	case ChangeRedo:
		return "redo"
	default:
		return "unknown"
	}
}

// Change is a normalized, versioned mutation record.
type Change struct {
	Kind          ChangeKind
	VersionBefore uint64
	VersionAfter  uint64

	// Anchor is the cell the operation acted on, when it has one.
	Anchor Pos
	// Index is the row/column/border index for line operations, -1 otherwise.
	Index int

	RowsBefore, ColsBefore int
	RowsAfter, ColsAfter   int
}

type changeBuilder struct {
	kind          ChangeKind
	versionBefore uint64
	anchor        Pos
	index         int
	rowsBefore    int
	colsBefore    int
}

// LastChange returns the most recent effective change.
func (g *Grid) LastChange() (Change, bool) {
	if !g.hasLastChange {
		return Change{}, false
	}
	return g.lastChange, true
}

func (g *Grid) beginChange(kind ChangeKind, anchor Pos, index int) changeBuilder {
	return changeBuilder{
		kind:          kind,
		versionBefore: g.version,
		anchor:        anchor,
		index:         index,
		rowsBefore:    g.rows,
		colsBefore:    g.cols,
	}
}

func (g *Grid) commitChange(cb changeBuilder) {
	if g.version == cb.versionBefore {
		return
	}
	g.lastChange = Change{
		Kind:          cb.kind,
		VersionBefore: cb.versionBefore,
		VersionAfter:  g.version,
		Anchor:        cb.anchor,
		Index:         cb.index,
		RowsBefore:    cb.rowsBefore,
		ColsBefore:    cb.colsBefore,
		RowsAfter:     g.rows,
		ColsAfter:     g.cols,
	}
	g.hasLastChange = true
}
