package editor

import tea "github.com/charmbracelet/bubbletea"

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if isWheel(msg) {
		var cmd tea.Cmd
		m.preview, cmd = m.preview.Update(msg)
		return m, cmd
	}

	if !m.focused || m.prompt.active {
		return m, nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	p, ok := m.CellAt(msg.X, msg.Y)
	if !ok {
		return m, nil
	}
	if m.edit.active && p == m.sel {
		return m, nil
	}
	m.notice = ""
	m.commitEdit()
	m.focusAt(p.Row, p.Col)
	return m, nil
}

func isWheel(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress &&
		(msg.Button == tea.MouseButtonWheelUp ||
			msg.Button == tea.MouseButtonWheelDown)
}
