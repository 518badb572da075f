package editor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// fixedLines counts the non-table, non-preview lines of View: status and hint.
const fixedLines = 2

// resizePreview fits the LaTeX preview under the table. Before the host
// sets a size the preview grows to show the whole emission.
func (m *Model) resizePreview() {
	frameW := m.preview.Style.GetHorizontalFrameSize()
	frameH := m.preview.Style.GetVerticalFrameSize()

	if m.width == 0 && m.height == 0 {
		m.preview.Width = lipgloss.Width(m.latex) + frameW
		m.preview.Height = strings.Count(m.latex, "\n") + 1 + frameH
		return
	}

	used := m.layout().height() + fixedLines
	if m.prompt.active {
		used++
	}
	m.preview.Width = m.width
	m.preview.Height = max(m.height-used, frameH+1)

	// Keep the offset valid after the content shrank.
	if maxOffset := m.preview.TotalLineCount() - m.previewRows(); m.preview.YOffset > maxOffset {
		m.preview.SetYOffset(max(maxOffset, 0))
	}
}

// previewRows is the number of LaTeX lines visible at once.
func (m Model) previewRows() int {
	h := m.preview.Height - m.preview.Style.GetVerticalFrameSize()
	if h < 0 {
		return 0
	}
	return h
}

// PreviewState describes the scroll position of the LaTeX preview.
type PreviewState struct {
	TopLine      int
	VisibleLines int
	TotalLines   int
}

func (m Model) PreviewState() PreviewState {
	return PreviewState{
		TopLine:      max(m.preview.YOffset, 0),
		VisibleLines: m.previewRows(),
		TotalLines:   m.preview.TotalLineCount(),
	}
}
