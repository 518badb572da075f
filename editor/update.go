package editor

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/textable/grid"
	"github.com/iw2rmb/textable/latex"
	"github.com/iw2rmb/textable/tabledoc"
)

const (
	noticeCannotMerge  = "cannot merge"
	noticeCopied       = "copied to clipboard"
	noticeNoClipboard  = "clipboard unavailable"
	noticeNoSavePath   = "no save path"
	noticeSelectFirst  = "select a cell first"
	noticeRuledBorders = "rules are fixed in ruled mode"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}
	m.notice = ""

	if m.prompt.active {
		return m.updatePrompt(msg)
	}
	if m.edit.active {
		return m.updateCellEdit(msg), nil
	}

	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Up):
		m.moveFocus(-1, 0)
	case key.Matches(msg, km.Down):
		m.moveFocus(1, 0)
	case key.Matches(msg, km.Left):
		m.moveFocus(0, -1)
	case key.Matches(msg, km.Right):
		m.moveFocus(0, 1)

	case key.Matches(msg, km.Edit):
		m.beginEdit()
	case key.Matches(msg, km.Cancel):
		m.sel, m.hasSel = grid.Pos{}, false

	case key.Matches(msg, km.AddRow):
		if m.allow(Intent{Kind: IntentInsertRow, Index: m.g.Rows()}) {
			m.g.InsertRow()
			m.log.Debugf("row added, now %dx%d", m.g.Rows(), m.g.Cols())
		}
	case key.Matches(msg, km.AddColumn):
		if m.allow(Intent{Kind: IntentInsertColumn, Index: m.g.Cols()}) {
			m.g.InsertColumn()
			m.log.Debugf("column added, now %dx%d", m.g.Rows(), m.g.Cols())
		}
	case key.Matches(msg, km.RemoveRow):
		m.removeLine(IntentRemoveRow)
	case key.Matches(msg, km.RemoveColumn):
		m.removeLine(IntentRemoveColumn)

	case key.Matches(msg, km.MergeRight):
		m.applyAtFocus(IntentMergeRight, m.g.MergeRight)
	case key.Matches(msg, km.MergeDown):
		m.applyAtFocus(IntentMergeDown, m.g.MergeDown)
	case key.Matches(msg, km.Unmerge):
		m.applyAtFocus(IntentUnmerge, m.g.Unmerge)

	case key.Matches(msg, km.ToggleColumnBorder):
		m.toggleBorder(IntentToggleColumnBorder, m.g.ToggleColumnBorder)
	case key.Matches(msg, km.ToggleRowBorder):
		m.toggleBorder(IntentToggleRowBorder, m.g.ToggleRowBorder)

	case key.Matches(msg, km.ToggleMode):
		if m.emit.Mode == latex.ModeRuled {
			m.emit.Mode = latex.ModeStandard
		} else {
			m.emit.Mode = latex.ModeRuled
		}
	case key.Matches(msg, km.ToggleOuterBorder):
		m.emit.OuterBorder = !m.emit.OuterBorder
	case key.Matches(msg, km.ToggleFirstColumnLine):
		m.emit.FirstColumnLine = !m.emit.FirstColumnLine

	case key.Matches(msg, km.Reset):
		if m.allow(Intent{Kind: IntentReset, Index: -1}) {
			if err := m.g.Reset(m.cfg.Rows, m.cfg.Cols); err != nil {
				m.notify(err.Error())
			}
			m.sel, m.hasSel = grid.Pos{}, false
		}
	case key.Matches(msg, km.Undo):
		if m.allow(Intent{Kind: IntentUndo, Index: -1}) {
			_ = m.g.Undo()
		}
	case key.Matches(msg, km.Redo):
		if m.allow(Intent{Kind: IntentRedo, Index: -1}) {
			_ = m.g.Redo()
		}

	case key.Matches(msg, km.EditCaption):
		return m.openPrompt(promptCaption)
	case key.Matches(msg, km.EditLabel):
		return m.openPrompt(promptLabel)

	case key.Matches(msg, km.Copy):
		m.copyLaTeX()
	case key.Matches(msg, km.Save):
		m.save()

	case key.Matches(msg, km.PreviewUp):
		m.preview.HalfPageUp()
	case key.Matches(msg, km.PreviewDown):
		m.preview.HalfPageDown()

	default:
		// Typing on a focused cell starts editing at the end of its text.
		if m.hasSel && !msg.Alt && (msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace) && !msg.Paste {
			m.beginEdit()
			return m.updateCellEdit(msg), nil
		}
	}

	return m, nil
}

// moveFocus steps from the focused anchor to the anchor covering the
// neighbouring position past its span. Without focus any move lands on (0,0).
func (m *Model) moveFocus(dr, dc int) {
	if !m.hasSel {
		m.focusAt(0, 0)
		return
	}
	rect, ok := m.g.Coverage(m.sel.Row, m.sel.Col)
	if !ok {
		m.focusAt(0, 0)
		return
	}

	row, col := m.sel.Row, m.sel.Col
	switch {
	case dr < 0:
		row = rect.Row - 1
	case dr > 0:
		row = rect.LastRow() + 1
	case dc < 0:
		col = rect.Col - 1
	case dc > 0:
		col = rect.LastCol() + 1
	}
	if _, ok := m.g.Owner(row, col); !ok {
		return
	}
	m.focusAt(row, col)
}

func (m *Model) applyAtFocus(kind IntentKind, op func(grid.Pos) error) {
	if !m.hasSel {
		m.notify(noticeSelectFirst)
		return
	}
	if !m.allow(Intent{Kind: kind, Anchor: m.sel, Index: -1}) {
		return
	}
	if err := op(m.sel); err != nil {
		m.log.Debugf("%s at %v: %v", kind, m.sel, err)
		if errors.Is(err, grid.ErrMergeIncompatible) {
			m.notify(noticeCannotMerge)
			return
		}
		m.notify(err.Error())
	}
}

func (m *Model) toggleBorder(kind IntentKind, op func(grid.Pos) (int, error)) {
	if m.emit.Mode == latex.ModeRuled {
		m.notify(noticeRuledBorders)
		return
	}
	if !m.hasSel {
		m.notify(noticeSelectFirst)
		return
	}
	if !m.allow(Intent{Kind: kind, Anchor: m.sel, Index: -1}) {
		return
	}
	i, err := op(m.sel)
	if err != nil {
		m.notify(err.Error())
		return
	}
	m.log.Debugf("%s: flipped index %d", kind, i)
}

// removeLine removes the focused row or column, or the last one without
// focus. Focus is cleared afterwards.
func (m *Model) removeLine(kind IntentKind) {
	index := m.g.Rows() - 1
	remove := m.g.RemoveRow
	what := "row"
	if kind == IntentRemoveColumn {
		index = m.g.Cols() - 1
		remove = m.g.RemoveColumn
		what = "column"
	}
	if m.hasSel {
		index = m.sel.Row
		if kind == IntentRemoveColumn {
			index = m.sel.Col
		}
	}

	if !m.allow(Intent{Kind: kind, Anchor: m.sel, Index: index}) {
		return
	}
	if err := remove(index); err != nil {
		if errors.Is(err, grid.ErrCannotShrinkBelowOne) {
			m.notify("cannot remove the last " + what)
			return
		}
		m.notify(err.Error())
		return
	}
	m.sel, m.hasSel = grid.Pos{}, false
}

func (m *Model) copyLaTeX() {
	if m.cfg.Clipboard == nil {
		m.notify(noticeNoClipboard)
		return
	}
	if err := m.cfg.Clipboard.WriteText(m.latex); err != nil {
		m.log.Warnf("copy: %v", err)
		m.notify("copy failed: " + err.Error())
		return
	}
	m.notify(noticeCopied)
}

func (m *Model) save() {
	if m.cfg.SavePath == "" {
		m.notify(noticeNoSavePath)
		return
	}
	if err := tabledoc.Save(m.cfg.SavePath, tabledoc.FromGrid(m.g, m.emit)); err != nil {
		m.log.Errorf("save: %v", err)
		m.notify(err.Error())
		return
	}
	m.log.Infof("saved %s", m.cfg.SavePath)
	m.notify("saved " + m.cfg.SavePath)
}
