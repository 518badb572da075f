package editor

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/iw2rmb/textable/internal/grapheme"
)

const ellipsis = "…"

func (m Model) View() string {
	parts := []string{m.renderTable(), m.cfg.Style.Status.Render(m.Status())}
	if m.prompt.active {
		parts = append(parts, m.prompt.input.View())
	}
	parts = append(parts, m.preview.View(), m.renderHint())
	base := strings.Join(parts, "\n")

	if m.notice == "" {
		return base
	}
	box := m.cfg.Style.Notice.Render(m.notice)
	x := max(m.layout().width()-lipgloss.Width(box), 0)
	return overlay.New(staticView(box), staticView(base), overlay.Left, overlay.Top, x, 0).View()
}

// staticView is a pre-rendered string presented as a tea.Model, the form the
// overlay compositor takes.
type staticView string

func (v staticView) Init() tea.Cmd                       { return nil }
func (v staticView) Update(tea.Msg) (tea.Model, tea.Cmd) { return v, nil }
func (v staticView) View() string                        { return string(v) }

// renderTable draws the grid: a rule line, then each row followed by its
// rule line.
func (m Model) renderTable() string {
	l := m.layout()
	lines := make([]string, 0, l.height())
	lines = append(lines, m.renderRuleLine(-1))
	for r := 0; r < l.rows; r++ {
		lines = append(lines, m.renderRow(r), m.renderRuleLine(r))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderRuleLine(r int) string {
	l := m.layout()
	var sb strings.Builder
	sb.WriteString(m.junction(r, -1))
	for c := 0; c < l.cols; c++ {
		seg := " "
		if m.hRule(r, c) {
			seg = "─"
		}
		sb.WriteString(strings.Repeat(seg, l.cellWidth))
		sb.WriteString(m.junction(r, c))
	}
	return m.cfg.Style.Rule.Render(sb.String())
}

func (m Model) renderRow(r int) string {
	l := m.layout()
	st := m.cfg.Style

	var sb strings.Builder
	sb.WriteString(m.renderVRule(r, -1))
	for c := 0; c < l.cols; {
		rect, ok := m.g.Coverage(r, c)
		if !ok {
			break
		}
		owner := rect.Anchor()
		w := l.spanWidth(rect.ColSpan)

		style := st.Cell
		if rect.Row == 0 {
			style = st.Header
		}
		focused := m.hasSel && owner == m.sel
		if focused {
			style = st.Focus
		}

		var content string
		switch {
		case focused && m.edit.active && r == rect.Row:
			content = m.renderDraft(w)
		case r == rect.Row:
			cell, _ := m.g.Cell(owner.Row, owner.Col)
			content = style.Width(w).Align(lipgloss.Center).Render(grapheme.Truncate(cell.Text, w, ellipsis))
		default:
			content = style.Width(w).Render("")
		}
		sb.WriteString(content)
		sb.WriteString(m.renderVRule(r, rect.LastCol()))
		c = rect.LastCol() + 1
	}
	return sb.String()
}

func (m Model) renderVRule(r, c int) string {
	if m.vRule(r, c) {
		return m.cfg.Style.Rule.Render("│")
	}
	return " "
}

// renderDraft draws the edited text left-aligned with the cursor, keeping the
// cursor visible when the text is wider than the cell.
func (m Model) renderDraft(width int) string {
	st := m.cfg.Style
	clusters := grapheme.Split(m.edit.text)
	col := min(m.edit.col, len(clusters))

	// Drop clusters from the left until the cursor cell fits.
	start := 0
	for start < col && grapheme.Width(strings.Join(clusters[start:col], ""))+1 > width {
		start++
	}

	var sb strings.Builder
	used := 0
	for i := start; i < len(clusters); i++ {
		cw := grapheme.Width(clusters[i])
		if used+cw > width {
			break
		}
		if i == col {
			sb.WriteString(st.Cursor.Render(clusters[i]))
		} else {
			sb.WriteString(st.Editing.Render(clusters[i]))
		}
		used += cw
	}
	if col == len(clusters) && used < width {
		sb.WriteString(st.Cursor.Render(" "))
		used++
	}
	if used < width {
		sb.WriteString(st.Editing.Render(strings.Repeat(" ", width-used)))
	}
	return sb.String()
}

func (m Model) renderHint() string {
	var parts []string
	for _, b := range m.cfg.KeyMap.ShortHelp() {
		h := b.Help()
		if h.Key == "" {
			continue
		}
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return m.cfg.Style.Hint.Render(strings.Join(parts, " · "))
}
