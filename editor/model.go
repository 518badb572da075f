package editor

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/olekukonko/ll"

	"github.com/iw2rmb/textable/grid"
	"github.com/iw2rmb/textable/internal/logging"
	"github.com/iw2rmb/textable/latex"
)

// Model is a Bubble Tea component that edits a table grid and previews the
// LaTeX emitted for it.
type Model struct {
	cfg  Config
	g    *grid.Grid
	emit latex.Options
	log  *ll.Logger

	focused bool

	// sel is the focused anchor when hasSel is set.
	sel    grid.Pos
	hasSel bool

	edit   cellEdit
	prompt promptState

	preview viewport.Model
	width   int
	height  int

	notice string
	latex  string

	lastVersion uint64
	lastEmit    latex.Options
	lastSel     grid.Pos
	lastHasSel  bool
}

func New(cfg Config) Model {
	cfg = cfg.normalized()

	g := cfg.Grid
	if g == nil {
		// normalized keeps Rows and Cols positive, so New cannot fail.
		g, _ = grid.New(cfg.Rows, cfg.Cols, grid.Options{HistoryLimit: cfg.HistoryLimit})
	}
	emit := latex.DefaultOptions()
	if cfg.Emit != nil {
		emit = *cfg.Emit
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	m := Model{
		cfg:     cfg,
		g:       g,
		emit:    emit,
		log:     logger.Namespace("editor"),
		focused: true,
		preview: viewport.New(0, 0),
		prompt:  promptState{input: textinput.New()},
	}
	m.preview.Style = cfg.Style.Preview
	m.latex = latex.Emit(m.g, m.emit)
	m.preview.SetContent(m.latex)
	m.resizePreview()
	m.lastVersion = m.g.Version()
	m.lastEmit = m.emit
	return m
}

// Grid returns the edited grid. Hosts may mutate it directly; the editor
// picks the change up on the next Update.
func (m Model) Grid() *grid.Grid { return m.g }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.width = width
	m.height = height
	m.resizePreview()
	return m
}

func (m Model) Focus() Model {
	m.focused = true
	return m
}

func (m Model) Blur() Model {
	m.focused = false
	return m
}

func (m Model) Focused() bool { return m.focused }

// FocusPos returns the focused anchor.
func (m Model) FocusPos() (grid.Pos, bool) { return m.sel, m.hasSel }

// SetFocus focuses the anchor covering (row, col). Out-of-range positions
// clear the focus.
func (m Model) SetFocus(row, col int) Model {
	m.commitEdit()
	m.focusAt(row, col)
	m.sync()
	return m
}

// ClearFocus leaves the table without a focused cell.
func (m Model) ClearFocus() Model {
	m.commitEdit()
	m.sel, m.hasSel = grid.Pos{}, false
	m.sync()
	return m
}

// Editing reports whether the focused cell is being edited.
func (m Model) Editing() bool { return m.edit.active }

// EmitOptions returns the current emission options.
func (m Model) EmitOptions() latex.Options { return m.emit }

func (m Model) SetEmitOptions(opt latex.Options) Model {
	m.emit = opt
	m.sync()
	return m
}

// LaTeX returns the table as currently emitted.
func (m Model) LaTeX() string { return m.latex }

// Notice returns the pending notification, if any.
func (m Model) Notice() string { return m.notice }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		m, cmd = m.updateKey(msg)
	case tea.MouseMsg:
		m, cmd = m.updateMouse(msg)
	default:
		if m.prompt.active {
			m.prompt.input, cmd = m.prompt.input.Update(msg)
		}
	}
	m.sync()
	return m, cmd
}

func (m *Model) focusAt(row, col int) {
	owner, ok := m.g.Owner(row, col)
	if !ok {
		m.sel, m.hasSel = grid.Pos{}, false
		return
	}
	m.sel = owner
	m.hasSel = true
}

// revalidateFocus snaps the focus to the anchor now covering it, or drops
// it when the position left the table.
func (m *Model) revalidateFocus() {
	if !m.hasSel {
		return
	}
	prev := m.sel
	m.focusAt(m.sel.Row, m.sel.Col)
	if !m.hasSel || m.sel != prev {
		m.edit = cellEdit{}
	}
}

// sync refreshes derived state after the grid, the emission options or the
// focus changed, and notifies the host.
func (m *Model) sync() {
	m.revalidateFocus()

	ver := m.g.Version()
	tableChanged := ver != m.lastVersion || m.emit != m.lastEmit
	focusChanged := m.sel != m.lastSel || m.hasSel != m.lastHasSel
	if !tableChanged && !focusChanged {
		return
	}

	m.lastVersion = ver
	m.lastEmit = m.emit
	m.lastSel = m.sel
	m.lastHasSel = m.hasSel

	if tableChanged {
		m.latex = latex.Emit(m.g, m.emit)
		m.preview.SetContent(m.latex)
		m.resizePreview()
	}
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(buildChangeEvent(m))
	}
}

func (m *Model) notify(msg string) {
	m.notice = msg
}
