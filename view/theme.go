package view

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/iw2rmb/stylerun/run"
)

// Theme controls how runs are drawn in a terminal.
//
// Terminals cannot switch typefaces, so each font family maps to a set of text
// attributes instead. Run colors are hex strings applied as foreground colors.
type Theme struct {
	Base        lipgloss.Style
	Fonts       map[string]lipgloss.Style
	Caret       lipgloss.Style
	Selection   lipgloss.Style
	Placeholder lipgloss.Style
}

var fontAttributes = []func(lipgloss.Style) lipgloss.Style{
	func(s lipgloss.Style) lipgloss.Style { return s.Bold(true) },
	func(s lipgloss.Style) lipgloss.Style { return s },
	func(s lipgloss.Style) lipgloss.Style { return s.Italic(true) },
	func(s lipgloss.Style) lipgloss.Style { return s.Underline(true) },
	func(s lipgloss.Style) lipgloss.Style { return s.Bold(true).Italic(true) },
	func(s lipgloss.Style) lipgloss.Style { return s.Faint(true) },
}

// DefaultTheme assigns a distinct attribute set to each font, cycling when
// there are more fonts than attribute sets.
func DefaultTheme(fonts []string) Theme {
	t := Theme{
		Base:        lipgloss.NewStyle(),
		Fonts:       make(map[string]lipgloss.Style, len(fonts)),
		Caret:       lipgloss.NewStyle().Reverse(true),
		Selection:   lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Placeholder: lipgloss.NewStyle().Faint(true),
	}
	for i, f := range fonts {
		t.Fonts[f] = fontAttributes[i%len(fontAttributes)](lipgloss.NewStyle())
	}
	return t
}

// RunStyle returns the lipgloss style for a run style.
func (t Theme) RunStyle(s run.Style) lipgloss.Style {
	st := t.Base
	if fs, ok := t.Fonts[s.FontFamily]; ok {
		st = fs.Inherit(st)
	}
	if c, ok := TerminalColor(s.Color); ok {
		st = st.Foreground(c)
	}
	return st
}

// TerminalColor converts a hex color to a terminal color. ok is false when
// hex does not parse.
func TerminalColor(hex string) (lipgloss.TerminalColor, bool) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return lipgloss.NoColor{}, false
	}
	return lipgloss.Color(c.Hex()), true
}
