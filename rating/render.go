package rating

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"trailkit/icons"
	"trailkit/theme"
)

// Color returns the variant's semantic theme slot.
func (v Variant) Color(t theme.Theme) lipgloss.TerminalColor {
	switch v.kind {
	case variantStar:
		return t.Warning
	case variantHeart:
		return t.Danger
	case variantThumb:
		return t.Success
	case variantCustom:
		return t.Primary
	}
	return t.Warning
}

// Renderer draws a rating model as a styled line. Hover is the 1-based
// position under the pointer (0 for none); hovered positions take the
// variant color even when empty, provided the model is interactive.
type Renderer struct {
	Theme theme.Theme
	Hover int
}

// NewRenderer returns a renderer on the given theme with no hover.
func NewRenderer(t theme.Theme) Renderer {
	return Renderer{Theme: t}
}

// Render draws every position in order, then the numeric value when
// ShowText is set.
func (r Renderer) Render(m *Model) string {
	gap := strings.Repeat(" ", m.Size.Gap())

	parts := make([]string, 0, m.MaxScale()+1)
	for i := 1; i <= m.MaxScale(); i++ {
		parts = append(parts, r.renderPosition(m, i))
	}
	line := strings.Join(parts, gap)

	if m.ShowText {
		text := r.Theme.MutedStyle().Render(fmt.Sprintf("%.1f", m.Value()))
		line += " " + text
	}
	return line
}

func (r Renderer) renderPosition(m *Model, i int) string {
	fill := m.FillAt(i)
	lit := fill != Empty
	hovered := m.Interactive() && r.Hover == i

	icon := m.Variant.Icon(lit)
	if fill == Half {
		// Terminal stand-in for the left-half overlay clip: a dedicated
		// half glyph where the catalog has one, else the filled glyph.
		icon = icons.HalfVariant(icon)
	}

	style := lipgloss.NewStyle()
	switch {
	case m.Disabled:
		style = style.Foreground(r.Theme.Muted).Faint(true)
	case lit || hovered:
		style = style.Foreground(m.Variant.Color(r.Theme))
	default:
		style = style.Foreground(r.Theme.Muted)
	}
	if fill == Half && icon == m.Variant.Icon(true) {
		// No half glyph in the catalog; dim the filled glyph instead.
		style = style.Faint(true)
	}
	return style.Render(icons.Glyph(icon))
}
