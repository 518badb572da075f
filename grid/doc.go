// Package grid implements the pure merged-cell table model for textable.
//
// Coordinates are 0-based (Row, Col). Every position of a rows x cols grid
// holds exactly one Cell. A visible cell with ColSpan/RowSpan > 1 covers a
// rectangle anchored at its own position; the other positions of that
// rectangle are hidden cells whose Owner is the anchor.
//
// Border flags live next to the cells: ColumnRight[i] is the rule on the
// trailing edge of column i, RowBottom[i] the rule under row i.
package grid
