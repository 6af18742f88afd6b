package trail

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"trailkit/icons"
	"trailkit/theme"
)

// Renderer turns a composed node sequence into a styled line.
//
// Items render muted by default, full-emphasis and bold when terminal,
// faint when disabled. Separators and the ellipsis marker always render
// muted regardless of item state. Hover is the display index of the item
// under the pointer (-1 for none); hovered interactive items take the
// foreground color.
type Renderer struct {
	Theme theme.Theme
	Hover int
}

// NewRenderer returns a renderer on the given theme with no hover.
func NewRenderer(t theme.Theme) Renderer {
	return Renderer{Theme: t, Hover: -1}
}

// Render draws the breadcrumb as a single line. An empty item sequence
// renders as an empty string.
func (r Renderer) Render(cfg Config) string {
	nodes := Compose(cfg)
	if len(nodes) == 0 {
		return ""
	}

	gap := strings.Repeat(" ", cfg.Size.Gap())
	muted := r.Theme.MutedStyle()

	parts := make([]string, 0, len(nodes))
	for _, n := range nodes {
		switch n.Kind {
		case NodeSeparator:
			parts = append(parts, muted.Render(n.Separator.Glyph()))
		case NodeEllipsis:
			parts = append(parts, muted.Render(icons.Glyph(icons.Ellipsis)))
		case NodeItem:
			parts = append(parts, r.renderItem(n))
		}
	}
	return strings.Join(parts, gap)
}

func (r Renderer) renderItem(n Node) string {
	var style lipgloss.Style
	switch {
	case n.Disabled:
		style = r.Theme.DisabledStyle()
	case n.IsLast:
		style = r.Theme.EmphasisStyle()
	case n.Interactive && n.ItemIndex == r.Hover:
		style = lipgloss.NewStyle().Foreground(r.Theme.Foreground)
	default:
		style = r.Theme.MutedStyle()
	}

	label := n.Item.Label
	if n.Item.Icon != "" {
		label = icons.Glyph(n.Item.Icon) + " " + label
	}
	return style.Render(label)
}
