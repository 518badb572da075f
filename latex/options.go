package latex

import (
	"strings"

	"github.com/olekukonko/errors"
)

// Mode selects the rule style.
type Mode int

const (
	ModeStandard Mode = iota
	ModeRuled
)

func (m Mode) String() string {
	switch m {
	case ModeRuled:
		return "ruled"
	default:
		return "standard"
	}
}

// ParseMode accepts "standard" and "ruled" ("booktabs" is an alias of ruled).
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "standard":
		return ModeStandard, nil
	case "ruled", "booktabs":
		return ModeRuled, nil
	default:
		return ModeStandard, errors.Newf("latex: unknown mode %q", s)
	}
}

// Options controls emission.
type Options struct {
	Mode Mode

	// OuterBorder frames the table in ModeStandard.
	OuterBorder bool
	// FirstColumnLine draws a rule after the first column in ModeRuled.
	FirstColumnLine bool

	Caption string
	Label   string

	// Placement is the float specifier; default "H".
	Placement string
	// Indent is one indentation step; default two spaces.
	Indent string
}

// DefaultOptions matches a freshly opened editor: ruled mode, outer border
// enabled for when the user switches to standard mode.
func DefaultOptions() Options {
	return Options{
		Mode:        ModeRuled,
		OuterBorder: true,
	}
}

// LabelFromSuffix builds a table label from the part typed after "tab:".
func LabelFromSuffix(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return "tab:" + s
}

func (o Options) normalized() Options {
	if o.Placement == "" {
		o.Placement = "H"
	}
	if o.Indent == "" {
		o.Indent = "  "
	}
	return o
}
