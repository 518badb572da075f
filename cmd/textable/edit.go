package main

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/olekukonko/errors"
	"github.com/olekukonko/ll"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/textable/editor"
	"github.com/iw2rmb/textable/grid"
	"github.com/iw2rmb/textable/internal/config"
	"github.com/iw2rmb/textable/internal/logging"
	"github.com/iw2rmb/textable/latex"
	"github.com/iw2rmb/textable/tabledoc"
)

type editFlags struct {
	doc     string
	config  string
	logFile string
	debug   bool
}

func newEditCmd() *cobra.Command {
	var f editFlags
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Open the table editor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
				return errors.New("stdout is not a terminal; use textable render for scripted output")
			}

			logger, closeLog, err := openLog(f.logFile, f.debug)
			if err != nil {
				return err
			}
			defer closeLog()

			cfg, err := loadConfig(f.config)
			if err != nil {
				return err
			}
			ecfg, err := editorConfig(cfg, f.doc, logger)
			if err != nil {
				return err
			}

			m := editor.New(ecfg).SetFocus(0, 0)
			logger.Infof("editor started, %dx%d", m.Grid().Rows(), m.Grid().Cols())
			_, err = tea.NewProgram(app{editor: m}, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
			return err
		},
	}
	cmd.Flags().StringVar(&f.doc, "doc", "", "table document to open; ctrl+s saves back to it")
	cmd.Flags().StringVar(&f.config, "config", "", "config file (default $XDG_CONFIG_HOME/textable/config.toml)")
	cmd.Flags().StringVar(&f.logFile, "log-file", "", "append logs to this file")
	cmd.Flags().BoolVar(&f.debug, "debug", false, "enable debug logging")
	return cmd
}

func openLog(path string, debug bool) (*ll.Logger, func(), error) {
	if path == "" {
		return logging.New(nil, debug), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, errors.Newf("open log %s", path).Wrap(err)
	}
	// A log file was asked for, so info lines go there even without --debug.
	return logging.New(f, true), func() { _ = f.Close() }, nil
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return config.Config{}, nil
		}
		path = p
	}
	return config.Load(path)
}

// editorConfig combines the user config and the optional document. A
// document path that does not exist yet starts an empty table saved there.
func editorConfig(cfg config.Config, docPath string, logger *ll.Logger) (editor.Config, error) {
	emit := cfg.EmitOptions(latex.DefaultOptions())
	ecfg := editor.Config{
		Rows:         cfg.Rows,
		Cols:         cfg.Cols,
		HistoryLimit: cfg.HistoryLimit,
		CellWidth:    cfg.CellWidth,
		Style:        editor.NewStyle(nil, editor.DefaultPalette().Merge(palette(cfg.Colors))),
		SavePath:     docPath,
		Logger:       logger,
	}
	if editor.SystemClipboardAvailable() {
		ecfg.Clipboard = editor.SystemClipboard{}
	}

	if docPath != "" {
		if _, err := os.Stat(docPath); errors.Is(err, os.ErrNotExist) {
			logger.Infof("%s does not exist yet, starting empty", docPath)
		} else {
			doc, err := tabledoc.Load(docPath)
			if err != nil {
				return editor.Config{}, err
			}
			g, opt, err := doc.Build(grid.Options{HistoryLimit: cfg.HistoryLimit})
			if err != nil {
				return editor.Config{}, errors.Newf("open %s", docPath).Wrap(err)
			}
			ecfg.Grid = g
			emit = opt
		}
	}
	ecfg.Emit = &emit
	return ecfg, nil
}

func palette(c config.Colors) editor.Palette {
	return editor.Palette{
		Accent: c.Accent,
		Header: c.Header,
		Focus:  c.Focus,
		Border: c.Border,
		Status: c.Status,
	}
}

// app hosts the editor full screen. ctrl+q quits; ctrl+c belongs to the
// editor's copy binding.
type app struct {
	editor editor.Model
}

func (a app) Init() tea.Cmd { return a.editor.Init() }

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "ctrl+q" {
		return a, tea.Quit
	}
	var cmd tea.Cmd
	a.editor, cmd = a.editor.Update(msg)
	return a, cmd
}

func (a app) View() string { return a.editor.View() }
