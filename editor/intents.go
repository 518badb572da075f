package editor

import "github.com/iw2rmb/textable/grid"

// IntentKind identifies the table mutation requested by input handling.
type IntentKind uint8

const (
	IntentSetText IntentKind = iota
	IntentInsertRow
	IntentInsertColumn
	IntentRemoveRow
	IntentRemoveColumn
	IntentMergeRight
	IntentMergeDown
	IntentUnmerge
	IntentToggleColumnBorder
	IntentToggleRowBorder
	IntentReset
	IntentUndo
	IntentRedo
)

func (k IntentKind) String() string {
	switch k {
	case IntentSetText:
		return "set-text"
	case IntentInsertRow:
		return "insert-row"
	case IntentInsertColumn:
		return "insert-column"
	case IntentRemoveRow:
		return "remove-row"
	case IntentRemoveColumn:
		return "remove-column"
	case IntentMergeRight:
		return "merge-right"
	case IntentMergeDown:
		return "merge-down"
	case IntentUnmerge:
		return "unmerge"
	case IntentToggleColumnBorder:
		return "toggle-column-border"
	case IntentToggleRowBorder:
		return "toggle-row-border"
	case IntentReset:
		return "reset"
	case IntentUndo:
		return "undo"
	case IntentRedo:
		return "redo"
	default:
		return "unknown"
	}
}

// Intent describes one mutation before it is applied.
type Intent struct {
	Kind IntentKind

	// Version is the grid version the intent was computed against.
	Version uint64

	// Anchor is the focused anchor, when the intent has one.
	Anchor grid.Pos
	// Index is the row or column for insert/remove, -1 otherwise.
	Index int
	// Text is the new cell text for IntentSetText.
	Text string
}

// IntentDecision is the host's answer to OnIntent.
type IntentDecision struct {
	Apply bool
}

func (m *Model) allow(in Intent) bool {
	if m.cfg.OnIntent == nil {
		return true
	}
	in.Version = m.g.Version()
	if m.cfg.OnIntent(in).Apply {
		return true
	}
	m.log.Debugf("intent %s vetoed by host", in.Kind)
	return false
}
