package latex

import (
	"strings"
	"unicode"
)

// TransformText turns raw cell text into math-mode cell content.
//
// The text is trimmed. If it contains a letter and does not start with a
// backslash it is wrapped in \mathrm{}. Unless the result already starts and
// ends with '$', it is wrapped in '$'. Empty text stays empty.
func TransformText(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if strings.IndexFunc(s, unicode.IsLetter) >= 0 && !strings.HasPrefix(s, `\`) {
		s = `\mathrm{` + s + `}`
	}
	if !(strings.HasPrefix(s, "$") && strings.HasSuffix(s, "$")) {
		s = "$" + s + "$"
	}
	return s
}
