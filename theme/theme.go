// Package theme holds the semantic color slots consumed by trailkit widgets.
//
// Widgets never pick raw colors; they ask the theme for one of a fixed set
// of semantic slots (muted, foreground, warning, ...). The default palette
// uses ANSI colors 0–15 so it follows the terminal's own theme (Solarized,
// Dracula, Gruvbox, etc. all remap these).
package theme

import "github.com/charmbracelet/lipgloss"

// Theme is a fixed set of semantic color slots.
type Theme struct {
	Muted      lipgloss.TerminalColor // secondary text, separators, empty fills
	Foreground lipgloss.TerminalColor // full-emphasis text
	Warning    lipgloss.TerminalColor // star ratings
	Danger     lipgloss.TerminalColor // heart ratings
	Success    lipgloss.TerminalColor // thumb ratings
	Primary    lipgloss.TerminalColor // custom-variant ratings
	Accent     lipgloss.TerminalColor // hover highlight
}

// Default returns the ANSI 0–15 palette.
//
//	7: white   8: bright black (dark gray)  15: bright white
//	9: bright red   10: bright green   11: bright yellow   12: bright blue
func Default() Theme {
	return Theme{
		Muted:      lipgloss.ANSIColor(8),
		Foreground: lipgloss.ANSIColor(15),
		Warning:    lipgloss.ANSIColor(11),
		Danger:     lipgloss.ANSIColor(9),
		Success:    lipgloss.ANSIColor(10),
		Primary:    lipgloss.ANSIColor(12),
		Accent:     lipgloss.ANSIColor(14),
	}
}

// MutedStyle returns a style rendering in the muted slot.
func (t Theme) MutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Muted)
}

// EmphasisStyle returns the full-emphasis style used for the current
// breadcrumb location: foreground color, medium (bold) weight.
func (t Theme) EmphasisStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(t.Foreground)
}

// DisabledStyle renders in the muted slot at reduced intensity.
func (t Theme) DisabledStyle() lipgloss.Style {
	return lipgloss.NewStyle().Faint(true).Foreground(t.Muted)
}
