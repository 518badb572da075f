package latex

import (
	"strconv"
	"strings"
)

// columnSpec builds the tabular column specification.
func (e *emitter) columnSpec() string {
	var sb strings.Builder
	if e.opt.Mode == ModeRuled {
		for i := 0; i < e.cols; i++ {
			sb.WriteByte('c')
			if i == 0 && e.opt.FirstColumnLine && e.cols > 1 {
				sb.WriteByte('|')
			}
		}
		return sb.String()
	}

	if e.opt.OuterBorder {
		sb.WriteByte('|')
	}
	for i := 0; i < e.cols; i++ {
		sb.WriteByte('c')
		if e.rightRule(i) {
			sb.WriteByte('|')
		}
	}
	return sb.String()
}

// rightRule reports whether a vertical rule follows column i in standard
// mode. The outer border adds the last rule without touching the stored flag.
func (e *emitter) rightRule(i int) bool {
	if i >= 0 && i < len(e.borders.ColumnRight) && e.borders.ColumnRight[i] {
		return true
	}
	return e.opt.OuterBorder && i == e.cols-1
}

// alignSpec is the \multicolumn alignment for a span of n columns at col.
func (e *emitter) alignSpec(col, n int) string {
	if e.opt.Mode == ModeRuled {
		if col == 0 && e.opt.FirstColumnLine {
			return "c|"
		}
		return "c"
	}

	left := ""
	if col == 0 {
		if e.opt.OuterBorder {
			left = "|"
		}
	} else if e.rightRule(col - 1) {
		left = "|"
	}
	right := ""
	if e.rightRule(col + n - 1) {
		right = "|"
	}
	return left + "c" + right
}

func (e *emitter) topRule() string {
	if e.opt.Mode == ModeRuled {
		if e.opt.FirstColumnLine {
			return ruleFull
		}
		return ruleTop
	}
	if e.opt.OuterBorder {
		return ruleFull
	}
	return ""
}

// rulesAfter returns the rule lines emitted after row r.
func (e *emitter) rulesAfter(r int) []string {
	if e.opt.Mode == ModeRuled {
		var out []string
		if r == 0 {
			out = append(out, e.ruled(ruleMid))
		}
		if r == e.rows-1 {
			out = append(out, e.ruled(ruleBottom))
		}
		return out
	}

	if r >= len(e.borders.RowBottom) || !e.borders.RowBottom[r] {
		return nil
	}
	segs := e.ruleSegments(r)
	if len(segs) == 0 {
		return nil
	}
	if len(segs) == 1 && segs[0] == [2]int{1, e.cols} {
		return []string{ruleFull}
	}
	parts := make([]string, 0, len(segs))
	for _, s := range segs {
		parts = append(parts, `\cline{`+strconv.Itoa(s[0])+`-`+strconv.Itoa(s[1])+`}`)
	}
	return []string{strings.Join(parts, " ")}
}

func (e *emitter) ruled(token string) string {
	if e.opt.FirstColumnLine {
		return ruleFull
	}
	return token
}

// ruleSegments returns 1-based inclusive column ranges that can carry a rule
// under row r: columns whose covering cell ends at r.
func (e *emitter) ruleSegments(r int) [][2]int {
	var segs [][2]int
	start := 0
	for c := 0; c < e.cols; c++ {
		if e.endsAt(r, c) {
			if start == 0 {
				start = c + 1
			}
			continue
		}
		if start != 0 {
			segs = append(segs, [2]int{start, c})
			start = 0
		}
	}
	if start != 0 {
		segs = append(segs, [2]int{start, e.cols})
	}
	return segs
}

// endsAt reports whether the cell covering (r, c) has its last row at r.
func (e *emitter) endsAt(r, c int) bool {
	cell, ok := e.src.Cell(r, c)
	if !ok {
		return false
	}
	ownerRow := r
	if cell.Hidden {
		ownerRow = cell.Owner.Row
		cell, ok = e.src.Cell(cell.Owner.Row, cell.Owner.Col)
		if !ok {
			return false
		}
	}
	return ownerRow+cell.RowSpan-1 == r
}
