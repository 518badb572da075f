// Package tabledoc reads and writes table documents.
//
// A document is a TOML description of one table: its size, cell texts and
// spans, border flags and emission options. Build turns a document into a
// grid by replaying merges through the grid API, so a document can never
// describe a table the editor could not have produced.
package tabledoc
