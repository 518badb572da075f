package editor

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the editor key bindings.
//
// Bindings must be portable across terminals (ctrl/alt fallbacks).
type KeyMap struct {
	Up, Down, Left, Right key.Binding

	Edit, Cancel key.Binding

	AddRow, AddColumn       key.Binding
	RemoveRow, RemoveColumn key.Binding

	MergeRight, MergeDown, Unmerge key.Binding

	ToggleColumnBorder, ToggleRowBorder key.Binding
	ToggleMode, ToggleOuterBorder       key.Binding
	ToggleFirstColumnLine               key.Binding

	Reset      key.Binding
	Undo, Redo key.Binding

	EditCaption, EditLabel key.Binding

	Copy, Save key.Binding

	PreviewUp, PreviewDown key.Binding

	// In-cell editing.
	Backspace, Delete, DeleteWord key.Binding
	Home, End                     key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "cell up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "cell down")),
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "cell left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "cell right")),

		Edit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit cell")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "leave")),

		AddRow:       key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "add row")),
		AddColumn:    key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "add column")),
		RemoveRow:    key.NewBinding(key.WithKeys("alt+r"), key.WithHelp("alt+r", "remove row")),
		RemoveColumn: key.NewBinding(key.WithKeys("alt+d"), key.WithHelp("alt+d", "remove column")),

		MergeRight: key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "merge right")),
		MergeDown:  key.NewBinding(key.WithKeys("ctrl+j"), key.WithHelp("ctrl+j", "merge down")),
		Unmerge:    key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "unmerge")),

		ToggleColumnBorder:    key.NewBinding(key.WithKeys("|"), key.WithHelp("|", "column rule")),
		ToggleRowBorder:       key.NewBinding(key.WithKeys("_"), key.WithHelp("_", "row rule")),
		ToggleMode:            key.NewBinding(key.WithKeys("ctrl+b"), key.WithHelp("ctrl+b", "ruled/standard")),
		ToggleOuterBorder:     key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "outer border")),
		ToggleFirstColumnLine: key.NewBinding(key.WithKeys("ctrl+f"), key.WithHelp("ctrl+f", "first column rule")),

		Reset: key.NewBinding(key.WithKeys("ctrl+k"), key.WithHelp("ctrl+k", "clear table")),
		Undo:  key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "undo")),
		Redo:  key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "redo")),

		EditCaption: key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "caption")),
		EditLabel:   key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "label")),

		Copy: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "copy LaTeX")),
		Save: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),

		PreviewUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "scroll preview")),
		PreviewDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "scroll preview")),

		Backspace:  key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Delete:     key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete right")),
		DeleteWord: key.NewBinding(key.WithKeys("ctrl+w", "alt+backspace"), key.WithHelp("ctrl+w", "delete word")),
		Home:       key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "text start")),
		End:        key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "text end")),
	}
}

// ShortHelp lists the table bindings shown in the hint line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Edit, k.MergeRight, k.MergeDown, k.Unmerge,
		k.ToggleColumnBorder, k.ToggleRowBorder, k.ToggleMode, k.Copy,
	}
}
