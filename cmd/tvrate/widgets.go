package main

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/tview"

	"trailkit/icons"
	"trailkit/rating"
	"trailkit/trail"
)

// span maps a clickable cell range back to a widget position.
type span struct {
	startX, endX int // inclusive, exclusive
	index        int
}

func findSpan(spans []span, x int) (int, bool) {
	for _, s := range spans {
		if x >= s.startX && x < s.endX {
			return s.index, true
		}
	}
	return 0, false
}

// trailConfig rebuilds the breadcrumb config, capping visible items on
// narrow views.
func (a *App) trailConfig() trail.Config {
	_, _, width, _ := a.crumbs.GetInnerRect()
	maxVisible := 0
	if width > 0 && width < 60 {
		maxVisible = 4
	}
	return trail.Config{
		Items:      a.navigator.Items(),
		Separator:  trail.SeparatorChevron(),
		MaxVisible: maxVisible,
		Size:       trail.DefaultSize(),
	}
}

// drawCrumbs renders the composed node sequence with tview markup and
// records the cell span of every item for click resolution.
func (a *App) drawCrumbs() {
	cfg := a.trailConfig()
	nodes := trail.Compose(cfg)
	gap := cfg.Size.Gap()

	var b strings.Builder
	var spans []span
	x := 0

	for i, n := range nodes {
		if i > 0 {
			b.WriteString(strings.Repeat(" ", gap))
			x += gap
		}
		switch n.Kind {
		case trail.NodeSeparator:
			glyph := n.Separator.Glyph()
			fmt.Fprintf(&b, "[gray]%s[-]", glyph)
			x += runewidth.StringWidth(glyph)
		case trail.NodeEllipsis:
			marker := icons.Glyph(icons.Ellipsis)
			fmt.Fprintf(&b, "[gray]%s[-]", marker)
			x += runewidth.StringWidth(marker)
		case trail.NodeItem:
			label := n.Item.Label
			if n.Item.Icon != "" {
				label = icons.Glyph(n.Item.Icon) + " " + label
			}
			w := runewidth.StringWidth(label)
			switch {
			case n.Disabled:
				fmt.Fprintf(&b, "[darkgray]%s[-]", tview.Escape(label))
			case n.IsLast:
				fmt.Fprintf(&b, "[white::b]%s[-:-:-]", tview.Escape(label))
			default:
				fmt.Fprintf(&b, "[gray]%s[-]", tview.Escape(label))
			}
			if n.Interactive {
				spans = append(spans, span{startX: x, endX: x + w, index: n.ItemIndex})
			}
			x += w
		}
	}

	a.crumbSpans = spans
	a.crumbs.SetText(b.String())
}

// crumbClick resolves a click to a breadcrumb item and activates it.
func (a *App) crumbClick(action tview.MouseAction, event *tcell.EventMouse) (tview.MouseAction, *tcell.EventMouse) {
	if action != tview.MouseLeftClick {
		return action, event
	}
	x, y := event.Position()
	innerX, innerY, _, _ := a.crumbs.GetInnerRect()
	if y != innerY {
		return action, event
	}

	ix, ok := findSpan(a.crumbSpans, x-innerX)
	if !ok {
		return action, event
	}
	if trail.Activate(a.trailConfig(), ix) {
		a.redraw()
	}
	return tview.MouseConsumed, nil
}

// drawRating renders every position with tview markup and records the
// cell span of each for click resolution.
func (a *App) drawRating() {
	m := a.ratingModel()
	gap := m.Size.Gap()

	var b strings.Builder
	var spans []span
	x := 0

	for i := 1; i <= m.MaxScale(); i++ {
		if i > 1 {
			b.WriteString(strings.Repeat(" ", gap))
			x += gap
		}

		fill := m.FillAt(i)
		icon := m.Variant.Icon(fill != rating.Empty)
		if fill == rating.Half {
			icon = icons.HalfVariant(icon)
		}
		glyph := icons.Glyph(icon)
		w := runewidth.StringWidth(glyph)

		switch {
		case m.Disabled:
			fmt.Fprintf(&b, "[darkgray]%s[-]", glyph)
		case fill != rating.Empty:
			fmt.Fprintf(&b, "[yellow]%s[-]", glyph)
		default:
			fmt.Fprintf(&b, "[gray]%s[-]", glyph)
		}

		if m.Interactive() {
			spans = append(spans, span{startX: x, endX: x + w, index: i})
		}
		x += w
	}

	if m.ShowText {
		fmt.Fprintf(&b, " [gray]%.1f[-]", m.Value())
	}
	if m.Readonly {
		b.WriteString(" [darkgray](readonly)[-]")
	}

	a.ratingSpans = spans
	a.stars.SetText(b.String())
}

// ratingClick resolves a click to a 1-based rating position.
func (a *App) ratingClick(action tview.MouseAction, event *tcell.EventMouse) (tview.MouseAction, *tcell.EventMouse) {
	if action != tview.MouseLeftClick {
		return action, event
	}
	x, y := event.Position()
	innerX, innerY, _, _ := a.stars.GetInnerRect()
	if y != innerY {
		return action, event
	}

	pos, ok := findSpan(a.ratingSpans, x-innerX)
	if !ok {
		return action, event
	}
	a.ratingModel().Activate(pos)
	return tview.MouseConsumed, nil
}
