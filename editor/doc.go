// Package editor provides a Bubble Tea table editor component backed by the
// grid package.
//
// The component owns the focused cell, in-cell text editing, the caption and
// label prompts, and the LaTeX preview. Every table mutation goes through
// grid; every preview is produced by latex. Hosts embed Model and forward
// messages to Update.
package editor
