package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/textable/latex"
)

type promptKind uint8

const (
	promptCaption promptKind = iota + 1
	promptLabel
)

const labelPrefix = "tab:"

// promptState is the one-line input used for the caption and the label.
type promptState struct {
	active bool
	kind   promptKind
	input  textinput.Model
}

func (m Model) openPrompt(kind promptKind) (Model, tea.Cmd) {
	in := textinput.New()
	in.PromptStyle = m.cfg.Style.Prompt
	switch kind {
	case promptCaption:
		in.Prompt = "Caption: "
		in.Placeholder = "table caption"
		in.SetValue(m.emit.Caption)
	case promptLabel:
		in.Prompt = "Label: " + labelPrefix
		in.Placeholder = "suffix"
		in.SetValue(strings.TrimPrefix(m.emit.Label, labelPrefix))
	}
	in.CursorEnd()
	cmd := in.Focus()

	m.prompt = promptState{active: true, kind: kind, input: in}
	m.resizePreview()
	return m, cmd
}

func (m Model) updatePrompt(msg tea.KeyMsg) (Model, tea.Cmd) {
	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Edit):
		value := strings.TrimSpace(m.prompt.input.Value())
		switch m.prompt.kind {
		case promptCaption:
			m.emit.Caption = value
		case promptLabel:
			m.emit.Label = latex.LabelFromSuffix(value)
		}
		m.closePrompt()
		return m, nil
	case key.Matches(msg, km.Cancel):
		m.closePrompt()
		return m, nil
	}

	var cmd tea.Cmd
	m.prompt.input, cmd = m.prompt.input.Update(msg)
	return m, cmd
}

func (m *Model) closePrompt() {
	m.prompt.input.Blur()
	m.prompt.active = false
	m.prompt.kind = 0
	m.resizePreview()
}

// Prompting reports whether the caption or label prompt is open.
func (m Model) Prompting() bool { return m.prompt.active }
