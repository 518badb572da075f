package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/textable/internal/grapheme"
)

// cellEdit is the in-progress text of the focused cell. Columns are grapheme
// indexes into text.
type cellEdit struct {
	active bool
	text   string
	col    int
}

func (m *Model) beginEdit() {
	if !m.hasSel {
		return
	}
	cell, ok := m.g.Cell(m.sel.Row, m.sel.Col)
	if !ok || cell.Hidden {
		return
	}
	m.edit = cellEdit{active: true, text: cell.Text, col: grapheme.Count(cell.Text)}
}

// commitEdit writes the draft to the grid and leaves edit mode.
func (m *Model) commitEdit() {
	if !m.edit.active {
		return
	}
	text := m.edit.text
	m.edit = cellEdit{}
	if !m.hasSel {
		return
	}
	if cell, ok := m.g.Cell(m.sel.Row, m.sel.Col); ok && cell.Text == text {
		return
	}
	if !m.allow(Intent{Kind: IntentSetText, Anchor: m.sel, Index: -1, Text: text}) {
		return
	}
	if err := m.g.SetText(m.sel.Row, m.sel.Col, text); err != nil {
		m.log.Warnf("set text at %v: %v", m.sel, err)
		m.notify(err.Error())
	}
}

func (m *Model) cancelEdit() {
	m.edit = cellEdit{}
}

func (m Model) updateCellEdit(msg tea.KeyMsg) Model {
	km := m.cfg.KeyMap
	e := &m.edit

	// Pasted text is inserted literally; cell text is a single line.
	if msg.Type == tea.KeyRunes && msg.Paste {
		s := strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(string(msg.Runes))
		e.text, e.col = grapheme.Insert(e.text, e.col, s)
		return m
	}

	switch {
	case key.Matches(msg, km.Edit):
		m.commitEdit()
	case key.Matches(msg, km.Cancel):
		m.cancelEdit()
	case msg.Type == tea.KeyTab:
		m.commitEdit()
		m.moveFocus(0, 1)

	case key.Matches(msg, km.Left):
		e.col = max(e.col-1, 0)
	case key.Matches(msg, km.Right):
		e.col = min(e.col+1, grapheme.Count(e.text))
	case key.Matches(msg, km.Home):
		e.col = 0
	case key.Matches(msg, km.End):
		e.col = grapheme.Count(e.text)

	case key.Matches(msg, km.Backspace):
		e.text, e.col = grapheme.DeleteBefore(e.text, e.col)
	case key.Matches(msg, km.Delete):
		e.text = grapheme.DeleteAt(e.text, e.col)
	case key.Matches(msg, km.DeleteWord):
		start := grapheme.WordStart(e.text, e.col)
		e.text = grapheme.Slice(e.text, 0, start) + grapheme.Slice(e.text, e.col, grapheme.Count(e.text))
		e.col = start

	case msg.Type == tea.KeySpace:
		e.text, e.col = grapheme.Insert(e.text, e.col, " ")
	case msg.Type == tea.KeyRunes && !msg.Alt:
		e.text, e.col = grapheme.Insert(e.text, e.col, string(msg.Runes))
	}
	return m
}
