package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the editor's rendering.
type Style struct {
	Cell    lipgloss.Style
	Header  lipgloss.Style // anchors in row 0
	Focus   lipgloss.Style
	Editing lipgloss.Style
	Cursor  lipgloss.Style // in-cell text cursor

	Rule lipgloss.Style

	Status  lipgloss.Style
	Notice  lipgloss.Style
	Prompt  lipgloss.Style
	Hint    lipgloss.Style
	Preview lipgloss.Style
}

// Palette names the colors a Style is built from. Values are lipgloss color
// strings; empty means "keep the default".
type Palette struct {
	Accent string
	Header string
	Focus  string
	Border string
	Status string
}

func DefaultPalette() Palette {
	return Palette{
		Accent: "63",
		Header: "213",
		Focus:  "212",
		Border: "240",
		Status: "245",
	}
}

// Merge returns p with every non-empty color of o applied.
func (p Palette) Merge(o Palette) Palette {
	pick := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	pick(&p.Accent, o.Accent)
	pick(&p.Header, o.Header)
	pick(&p.Focus, o.Focus)
	pick(&p.Border, o.Border)
	pick(&p.Status, o.Status)
	return p
}

// NewStyle builds a Style for renderer r.
func NewStyle(r *lipgloss.Renderer, p Palette) Style {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	accent := lipgloss.Color(p.Accent)
	return Style{
		Cell:    r.NewStyle(),
		Header:  r.NewStyle().Bold(true).Foreground(lipgloss.Color(p.Header)),
		Focus:   r.NewStyle().Reverse(true).Foreground(lipgloss.Color(p.Focus)),
		Editing: r.NewStyle().Underline(true).Foreground(lipgloss.Color(p.Focus)),
		Cursor:  r.NewStyle().Reverse(true),
		Rule:    r.NewStyle().Foreground(lipgloss.Color(p.Border)),
		Status:  r.NewStyle().Foreground(lipgloss.Color(p.Status)),
		Notice: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Foreground(accent).
			Padding(0, 1),
		Prompt: r.NewStyle().Foreground(accent).Bold(true),
		Hint:   r.NewStyle().Faint(true),
		Preview: r.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(p.Border)),
	}
}

func DefaultStyle() Style {
	return NewStyle(lipgloss.DefaultRenderer(), DefaultPalette())
}
