package tabledoc

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/olekukonko/errors"

	"github.com/iw2rmb/textable/grid"
	"github.com/iw2rmb/textable/latex"
)

// Document is the on-disk form of a table.
type Document struct {
	Rows    int          `toml:"rows"`
	Cols    int          `toml:"cols"`
	Options Settings     `toml:"options"`
	Borders *BorderFlags `toml:"borders,omitempty"`
	Cells   []CellEntry  `toml:"cells,omitempty"`
}

// Settings mirrors latex.Options with a textual mode.
type Settings struct {
	Mode            string `toml:"mode,omitempty"`
	OuterBorder     bool   `toml:"outer_border"`
	FirstColumnLine bool   `toml:"first_column_line"`
	Caption         string `toml:"caption,omitempty"`
	Label           string `toml:"label,omitempty"`
}

// BorderFlags holds per-column and per-row rule flags. A nil document field
// means every rule is on.
type BorderFlags struct {
	ColumnRight []bool `toml:"column_right"`
	RowBottom   []bool `toml:"row_bottom"`
}

// CellEntry describes one anchor. Spans default to 1.
type CellEntry struct {
	Row     int    `toml:"row"`
	Col     int    `toml:"col"`
	Text    string `toml:"text,omitempty"`
	ColSpan int    `toml:"colspan,omitempty"`
	RowSpan int    `toml:"rowspan,omitempty"`
}

// Decode reads a document. Unknown keys are rejected.
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	md, err := toml.NewDecoder(r).Decode(&doc)
	if err != nil {
		return nil, errors.Newf("tabledoc: decode").Wrap(err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.Newf("tabledoc: unknown key %q", undecoded[0].String())
	}
	return &doc, nil
}

// Load reads the document stored at path.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Newf("tabledoc: open %s", path).Wrap(err)
	}
	defer f.Close()
	return Decode(f)
}

// Encode writes doc as TOML.
func Encode(w io.Writer, doc *Document) error {
	if err := toml.NewEncoder(w).Encode(doc); err != nil {
		return errors.Newf("tabledoc: encode").Wrap(err)
	}
	return nil
}

// Save writes doc to path, replacing any existing file.
func Save(path string, doc *Document) error {
	var buf bytes.Buffer
	if err := Encode(&buf, doc); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".textable-*.toml")
	if err != nil {
		return errors.Newf("tabledoc: save %s", path).Wrap(err)
	}
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return errors.Newf("tabledoc: save %s", path).Wrap(err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return errors.Newf("tabledoc: save %s", path).Wrap(err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return errors.Newf("tabledoc: save %s", path).Wrap(err)
	}
	return nil
}

// Build creates the grid described by doc and the emission options it
// carries. The returned grid has no undo history.
func (doc *Document) Build(opt grid.Options) (*grid.Grid, latex.Options, error) {
	mode, err := latex.ParseMode(doc.Options.Mode)
	if err != nil {
		return nil, latex.Options{}, err
	}
	emit := latex.Options{
		Mode:            mode,
		OuterBorder:     doc.Options.OuterBorder,
		FirstColumnLine: doc.Options.FirstColumnLine,
		Caption:         doc.Options.Caption,
		Label:           doc.Options.Label,
	}

	g, err := grid.New(doc.Rows, doc.Cols, opt)
	if err != nil {
		return nil, latex.Options{}, errors.Newf("tabledoc: build").Wrap(err)
	}

	cells := append([]CellEntry(nil), doc.Cells...)
	sort.SliceStable(cells, func(i, j int) bool {
		if cells[i].Row != cells[j].Row {
			return cells[i].Row < cells[j].Row
		}
		return cells[i].Col < cells[j].Col
	})
	for _, c := range cells {
		if err := replaySpan(g, c); err != nil {
			return nil, latex.Options{}, errors.Newf("tabledoc: cell (%d,%d)", c.Row, c.Col).Wrap(err)
		}
	}
	// Texts go in last: merges clear the positions they absorb.
	for _, c := range cells {
		if err := g.SetText(c.Row, c.Col, c.Text); err != nil {
			return nil, latex.Options{}, errors.Newf("tabledoc: cell (%d,%d)", c.Row, c.Col).Wrap(err)
		}
	}

	if doc.Borders != nil {
		if err := applyBorders(g, *doc.Borders); err != nil {
			return nil, latex.Options{}, err
		}
	}
	if err := g.Validate(); err != nil {
		return nil, latex.Options{}, errors.Newf("tabledoc: build").Wrap(err)
	}
	g.ClearHistory()
	return g, emit, nil
}

// replaySpan widens every row of the span first, then stacks the rows, so
// each MergeDown sees a target with the anchor's ColSpan.
func replaySpan(g *grid.Grid, c CellEntry) error {
	cs, rs := max(c.ColSpan, 1), max(c.RowSpan, 1)
	for r := c.Row; r < c.Row+rs; r++ {
		for i := 1; i < cs; i++ {
			if err := g.MergeRight(grid.Pos{Row: r, Col: c.Col}); err != nil {
				return err
			}
		}
	}
	anchor := grid.Pos{Row: c.Row, Col: c.Col}
	for i := 1; i < rs; i++ {
		if err := g.MergeDown(anchor); err != nil {
			return err
		}
	}
	return nil
}

func applyBorders(g *grid.Grid, b BorderFlags) error {
	if len(b.ColumnRight) != g.Cols() || len(b.RowBottom) != g.Rows() {
		return errors.Newf("tabledoc: borders: got %d column and %d row flags for a %dx%d table",
			len(b.ColumnRight), len(b.RowBottom), g.Rows(), g.Cols())
	}
	for i, on := range b.ColumnRight {
		if err := g.SetColumnBorder(i, on); err != nil {
			return errors.Newf("tabledoc: borders").Wrap(err)
		}
	}
	for i, on := range b.RowBottom {
		if err := g.SetRowBorder(i, on); err != nil {
			return errors.Newf("tabledoc: borders").Wrap(err)
		}
	}
	return nil
}

// FromGrid captures g and the emission options as a document. Only anchors
// with text or a span are listed.
func FromGrid(g *grid.Grid, opt latex.Options) *Document {
	b := g.Borders()
	doc := &Document{
		Rows: g.Rows(),
		Cols: g.Cols(),
		Options: Settings{
			Mode:            opt.Mode.String(),
			OuterBorder:     opt.OuterBorder,
			FirstColumnLine: opt.FirstColumnLine,
			Caption:         opt.Caption,
			Label:           opt.Label,
		},
		Borders: &BorderFlags{ColumnRight: b.ColumnRight, RowBottom: b.RowBottom},
	}
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			cell, _ := g.Cell(r, c)
			if cell.Hidden {
				continue
			}
			if cell.Text == "" && cell.ColSpan == 1 && cell.RowSpan == 1 {
				continue
			}
			e := CellEntry{Row: r, Col: c, Text: cell.Text}
			if cell.ColSpan > 1 {
				e.ColSpan = cell.ColSpan
			}
			if cell.RowSpan > 1 {
				e.RowSpan = cell.RowSpan
			}
			doc.Cells = append(doc.Cells, e)
		}
	}
	return doc
}
