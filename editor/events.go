package editor

import (
	"github.com/iw2rmb/textable/grid"
	"github.com/iw2rmb/textable/latex"
)

type ChangeEvent struct {
	Version uint64

	// Change is the last grid mutation; HasChange is false before the first.
	Change    grid.Change
	HasChange bool

	Focus   grid.Pos
	Focused bool

	Options latex.Options

	// LaTeX is the full emitted table; hosts can diff if needed.
	LaTeX string
}

func buildChangeEvent(m *Model) ChangeEvent {
	ev := ChangeEvent{
		Version: m.g.Version(),
		Focus:   m.sel,
		Focused: m.hasSel,
		Options: m.emit,
		LaTeX:   m.latex,
	}
	ev.Change, ev.HasChange = m.g.LastChange()
	return ev
}
