// Package config loads the optional textable user configuration file.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/olekukonko/errors"

	"github.com/iw2rmb/textable/latex"
)

// Config is the decoded user configuration. Zero values mean "use the
// default"; Emit options are pointers so an explicit false survives.
type Config struct {
	Rows         int    `toml:"rows"`
	Cols         int    `toml:"cols"`
	HistoryLimit int    `toml:"history_limit"`
	CellWidth    int    `toml:"cell_width"`
	Mode         string `toml:"mode"`

	OuterBorder     *bool `toml:"outer_border"`
	FirstColumnLine *bool `toml:"first_column_line"`

	Colors Colors `toml:"colors"`
}

// Colors are lipgloss color strings (ANSI index or hex).
type Colors struct {
	Accent string `toml:"accent"`
	Header string `toml:"header"`
	Focus  string `toml:"focus"`
	Border string `toml:"border"`
	Status string `toml:"status"`
}

// DefaultPath is $XDG_CONFIG_HOME/textable/config.toml, or the platform
// equivalent.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Newf("config: locate config dir").Wrap(err)
	}
	return filepath.Join(dir, "textable", "config.toml"), nil
}

// Load reads path. A missing file yields the zero Config.
func Load(path string) (Config, error) {
	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, nil
		}
		return Config{}, errors.Newf("config: %s", path).Wrap(err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.Newf("config: %s: unknown key %q", path, undecoded[0].String())
	}
	if err := cfg.validate(); err != nil {
		return Config{}, errors.Newf("config: %s", path).Wrap(err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Rows < 0 || c.Cols < 0 {
		return errors.Newf("rows and cols must be positive, got %dx%d", c.Rows, c.Cols)
	}
	if c.CellWidth < 0 {
		return errors.Newf("cell_width must be positive, got %d", c.CellWidth)
	}
	_, err := latex.ParseMode(c.Mode)
	return err
}

// EmitOptions applies the file's emission settings over base.
func (c Config) EmitOptions(base latex.Options) latex.Options {
	if c.Mode != "" {
		if m, err := latex.ParseMode(c.Mode); err == nil {
			base.Mode = m
		}
	}
	if c.OuterBorder != nil {
		base.OuterBorder = *c.OuterBorder
	}
	if c.FirstColumnLine != nil {
		base.FirstColumnLine = *c.FirstColumnLine
	}
	return base
}
