// Package logging builds the ll loggers used across textable.
package logging

import (
	"io"

	"github.com/olekukonko/ll"
	"github.com/olekukonko/ll/lh"
	"github.com/olekukonko/ll/lx"
)

// Namespace is the root logger namespace.
const Namespace = "textable"

// New returns a text logger writing to w. Without debug the logger is
// disabled; a nil w discards output.
func New(w io.Writer, debug bool) *ll.Logger {
	if w == nil {
		w = io.Discard
	}
	logger := ll.New(Namespace, ll.WithHandler(lh.NewTextHandler(w)), ll.WithLevel(lx.LevelDebug))
	if debug {
		return logger.Enable()
	}
	return logger.Disable()
}

// Discard returns a disabled logger, for hosts that pass no logger.
func Discard() *ll.Logger {
	return New(io.Discard, false)
}
