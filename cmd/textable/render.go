package main

import (
	"fmt"
	"os"

	"github.com/olekukonko/errors"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/textable/editor"
	"github.com/iw2rmb/textable/grid"
	"github.com/iw2rmb/textable/latex"
	"github.com/iw2rmb/textable/tabledoc"
)

type renderFlags struct {
	mode            string
	outer           bool
	firstColumnLine bool
	caption         string
	label           string
	output          string
	copy            bool
}

func newRenderCmd() *cobra.Command {
	var f renderFlags
	cmd := &cobra.Command{
		Use:   "render <file.toml>",
		Short: "Emit the LaTeX for a table document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := tabledoc.Load(args[0])
			if err != nil {
				return err
			}
			g, opt, err := doc.Build(grid.Options{})
			if err != nil {
				return errors.Newf("render %s", args[0]).Wrap(err)
			}
			if opt, err = f.apply(cmd, opt); err != nil {
				return err
			}

			out := latex.Emit(g, opt) + "\n"
			switch {
			case f.output != "":
				if err := os.WriteFile(f.output, []byte(out), 0o644); err != nil {
					return errors.Newf("write %s", f.output).Wrap(err)
				}
			case !f.copy:
				fmt.Fprint(cmd.OutOrStdout(), out)
			}
			if f.copy {
				if err := copyToClipboard(out); err != nil {
					return err
				}
			}
			return nil
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&f.mode, "mode", "", "rule style: standard or ruled (default from the document)")
	fl.BoolVar(&f.outer, "outer", false, "frame the table in standard mode")
	fl.BoolVar(&f.firstColumnLine, "first-col-line", false, "rule after the first column in ruled mode")
	fl.StringVar(&f.caption, "caption", "", "table caption")
	fl.StringVar(&f.label, "label", "", "label suffix, emitted as tab:<suffix>")
	fl.StringVarP(&f.output, "output", "o", "", "write to this file instead of stdout")
	fl.BoolVar(&f.copy, "copy", false, "copy the LaTeX to the clipboard")
	return cmd
}

// apply overrides the document's options with the flags set on the command
// line.
func (f renderFlags) apply(cmd *cobra.Command, opt latex.Options) (latex.Options, error) {
	fl := cmd.Flags()
	if fl.Changed("mode") {
		mode, err := latex.ParseMode(f.mode)
		if err != nil {
			return opt, err
		}
		opt.Mode = mode
	}
	if fl.Changed("outer") {
		opt.OuterBorder = f.outer
	}
	if fl.Changed("first-col-line") {
		opt.FirstColumnLine = f.firstColumnLine
	}
	if fl.Changed("caption") {
		opt.Caption = f.caption
	}
	if fl.Changed("label") {
		opt.Label = latex.LabelFromSuffix(f.label)
	}
	return opt, nil
}

var copyToClipboard = func(s string) error {
	if !editor.SystemClipboardAvailable() {
		return errors.New("clipboard unavailable")
	}
	if err := (editor.SystemClipboard{}).WriteText(s); err != nil {
		return errors.New("copy to clipboard").Wrap(err)
	}
	return nil
}
