// Package latex renders a grid as a LaTeX table environment.
//
// Emit is a pure function of the grid, its border flags and Options: every
// call recomputes the whole text, so callers simply re-emit after each edit.
// Two styles are supported. ModeStandard draws vertical rules from the
// column flags and horizontal rules from the row flags, using \cline for rows
// where a multirow cell continues below. ModeRuled produces the three-rule
// (booktabs) layout used for manuscript tables.
package latex
