// Package grapheme holds grapheme-cluster helpers for editing cell text.
//
// Columns are grapheme indexes, never byte or rune offsets.
package grapheme

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Split returns the grapheme clusters of text.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// Slice returns clusters [start, end) of text.
func Slice(text string, start, end int) string {
	clusters := Split(text)
	start, end = clampRange(start, end, len(clusters))
	return strings.Join(clusters[start:end], "")
}

// Insert puts s before cluster col and returns the new text and the column
// just after the inserted clusters.
func Insert(text string, col int, s string) (string, int) {
	clusters := Split(text)
	col = clamp(col, 0, len(clusters))
	out := strings.Join(clusters[:col], "") + s + strings.Join(clusters[col:], "")
	return out, col + Count(s)
}

// DeleteBefore removes the cluster before col (backspace).
func DeleteBefore(text string, col int) (string, int) {
	clusters := Split(text)
	col = clamp(col, 0, len(clusters))
	if col == 0 {
		return text, 0
	}
	return strings.Join(clusters[:col-1], "") + strings.Join(clusters[col:], ""), col - 1
}

// DeleteAt removes the cluster at col (delete key).
func DeleteAt(text string, col int) string {
	clusters := Split(text)
	if col < 0 || col >= len(clusters) {
		return text
	}
	return strings.Join(clusters[:col], "") + strings.Join(clusters[col+1:], "")
}

// WordStart returns the column where the word ending at col begins. Spaces
// directly before col are skipped first.
func WordStart(text string, col int) int {
	clusters := Split(text)
	col = clamp(col, 0, len(clusters))
	for col > 0 && IsSpace(clusters[col-1]) {
		col--
	}
	if col > 0 && IsPunct(clusters[col-1]) {
		return col - 1
	}
	for col > 0 && !IsSpace(clusters[col-1]) && !IsPunct(clusters[col-1]) {
		col--
	}
	return col
}

// Width is the terminal cell width of text.
func Width(text string) int {
	w := runewidth.StringWidth(text)
	if w == 0 && text != "" {
		w = uniseg.StringWidth(text)
	}
	return w
}

// Truncate cuts text to at most width cells without splitting a cluster.
// When text is cut the last cell holds tail.
func Truncate(text string, width int, tail string) string {
	if Width(text) <= width {
		return text
	}
	limit := width - Width(tail)
	if limit < 0 {
		return ""
	}
	var sb strings.Builder
	used := 0
	for _, c := range Split(text) {
		w := Width(c)
		if used+w > limit {
			break
		}
		sb.WriteString(c)
		used += w
	}
	return sb.String() + tail
}

// IsSpace reports whether all runes in cluster are Unicode whitespace.
func IsSpace(cluster string) bool {
	return allRunes(cluster, unicode.IsSpace)
}

// IsPunct reports whether all runes in cluster are Unicode punctuation.
func IsPunct(cluster string) bool {
	return allRunes(cluster, unicode.IsPunct)
}

func allRunes(cluster string, pred func(rune) bool) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !pred(r) {
			return false
		}
	}
	return true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampRange(start, end, n int) (int, int) {
	start = clamp(start, 0, n)
	end = clamp(end, start, n)
	return start, end
}
