package editor

import "fmt"

// Status is the one-line summary under the table: the pending notice, the
// focused cell with its trailing rules, or a hint to pick a cell.
func (m Model) Status() string {
	if m.notice != "" {
		return m.notice
	}
	if !m.hasSel {
		return "Select a cell"
	}
	s := fmt.Sprintf("Row:%d Col:%d | V-Line:%s H-Line:%s",
		m.sel.Row+1, m.sel.Col+1,
		onOff(m.g.EffectiveRightBorder(m.sel)), onOff(m.g.EffectiveBottomBorder(m.sel)))
	if m.edit.active {
		s += " | editing"
	}
	return s
}

func onOff(b bool) string {
	if b {
		return "ON"
	}
	return "OFF"
}
