package editor

import (
	"github.com/olekukonko/ll"

	"github.com/iw2rmb/textable/grid"
	"github.com/iw2rmb/textable/latex"
)

// Config configures the editor Model.
type Config struct {
	// Size of a fresh table and of the table after Reset. Default 2x2.
	Rows int
	Cols int

	// Grid, when set, is edited in place instead of a fresh Rows x Cols
	// table. Rows and Cols still drive Reset.
	Grid *grid.Grid

	// Forwarded to grid.Options.
	HistoryLimit int

	// Emit holds the initial emission options. Zero value means
	// latex.DefaultOptions.
	Emit *latex.Options

	// Style zero value renders unstyled. KeyMap zero value means
	// DefaultKeyMap.
	Style  Style
	KeyMap KeyMap

	// CellWidth is the drawn width of one column in terminal cells.
	// Default 15.
	CellWidth int

	// Clipboard receives the LaTeX on Copy. Nil disables copying.
	Clipboard Clipboard

	// SavePath is where Save writes the table document. Empty disables
	// saving.
	SavePath string

	// OnChange is called after the table, the emission options or the focus
	// changed.
	OnChange func(ChangeEvent)

	// OnIntent lets the host veto table mutations. Nil applies everything.
	OnIntent func(Intent) IntentDecision

	Logger *ll.Logger
}

const (
	defaultRows      = 2
	defaultCols      = 2
	defaultCellWidth = 15
	minCellWidth     = 3
)

func (c Config) normalized() Config {
	if c.Rows < 1 {
		c.Rows = defaultRows
	}
	if c.Cols < 1 {
		c.Cols = defaultCols
	}
	if c.CellWidth == 0 {
		c.CellWidth = defaultCellWidth
	}
	if c.CellWidth < minCellWidth {
		c.CellWidth = minCellWidth
	}
	if len(c.KeyMap.Up.Keys()) == 0 {
		c.KeyMap = DefaultKeyMap()
	}
	return c
}
