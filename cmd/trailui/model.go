package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"trailkit/icons"
	"trailkit/nav"
	"trailkit/rating"
	"trailkit/theme"
	"trailkit/trail"
)

// Model is the root Bubble Tea model. It owns the authoritative widget
// state (path, rating value, flags); the widgets themselves are rebuilt
// from it on every View call.
type Model struct {
	navigator *nav.Navigator
	theme     theme.Theme

	cursor int // display index over breadcrumb items

	ratingValue float64
	precision   bool
	readonly    bool
	variantIx   int
	separatorIx int

	width  int
	status string
}

var variants = []struct {
	name    string
	variant rating.Variant
}{
	{"star", rating.Star()},
	{"heart", rating.Heart()},
	{"thumb", rating.Thumb()},
	{"custom", rating.Custom(icons.Dot)},
}

var separators = []struct {
	name string
	sep  trail.Separator
}{
	{"chevron", trail.SeparatorChevron()},
	{"slash", trail.SeparatorSlash()},
	{"dot", trail.SeparatorDot()},
	{"icon", trail.SeparatorIcon(icons.Dot)},
}

// NewModel creates the root model at the tree root with a 3.5-star rating
// so the half-fill display is visible immediately.
func NewModel(root *nav.Node, th theme.Theme) Model {
	return Model{
		navigator:   nav.NewNavigator(root),
		theme:       th,
		ratingValue: 3.5,
		precision:   true,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// trailConfig rebuilds the breadcrumb config from current state. The
// visible cap follows the window width so narrow terminals truncate.
func (m Model) trailConfig() trail.Config {
	maxVisible := 0
	if m.width > 0 && m.width < 72 {
		maxVisible = 4
	}
	return trail.Config{
		Items:      m.navigator.Items(),
		Separator:  separators[m.separatorIx].sep,
		MaxVisible: maxVisible,
		Size:       trail.DefaultSize(),
	}
}

// ratingModel rebuilds the rating model from current state.
func (m *Model) ratingModel() *rating.Model {
	rm := rating.New().SetValue(m.ratingValue)
	rm.Variant = variants[m.variantIx].variant
	rm.Precision = m.precision
	rm.Readonly = m.readonly
	rm.ShowText = true
	rm.OnChange = func(v float64) { m.ratingValue = v }
	return rm
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Left):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, keys.Right):
		cfg := m.trailConfig()
		display, _ := trail.Truncate(cfg.Items, cfg.MaxVisible)
		if m.cursor < len(display)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, keys.Enter):
		cfg := m.trailConfig()
		if trail.Activate(cfg, m.cursor) {
			m.cursor = 0
			m.status = "navigated to " + m.navigator.Current().Label
		} else {
			m.status = "crumb is not activatable"
		}
		return m, nil

	case key.Matches(msg, keys.Descend):
		cur := m.navigator.Current()
		if len(cur.Children) == 0 {
			m.status = "no children here"
			return m, nil
		}
		if err := m.navigator.Descend(cur.Children[0].Label); err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.cursor = m.navigator.Depth() - 1
		m.status = "descended into " + m.navigator.Current().Label
		return m, nil

	case key.Matches(msg, keys.Up):
		m.navigator.Up()
		if m.cursor >= m.navigator.Depth() {
			m.cursor = m.navigator.Depth() - 1
		}
		return m, nil

	case key.Matches(msg, keys.RateUp):
		rm := m.ratingModel()
		rm.SetValue(m.ratingValue + 0.5)
		m.ratingValue = rm.Value()
		return m, nil

	case key.Matches(msg, keys.RateDown):
		rm := m.ratingModel()
		rm.SetValue(m.ratingValue - 0.5)
		m.ratingValue = rm.Value()
		return m, nil

	case key.Matches(msg, keys.Precision):
		m.precision = !m.precision
		return m, nil

	case key.Matches(msg, keys.Readonly):
		m.readonly = !m.readonly
		return m, nil

	case key.Matches(msg, keys.Variant):
		m.variantIx = (m.variantIx + 1) % len(variants)
		return m, nil

	case key.Matches(msg, keys.Separator):
		m.separatorIx = (m.separatorIx + 1) % len(separators)
		return m, nil
	}

	// Digits act as clicks on rating positions.
	if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
		rm := m.ratingModel()
		if !rm.Activate(int(s[0] - '0')) {
			m.status = "rating is readonly"
		} else {
			m.status = fmt.Sprintf("rated %s", s)
		}
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("trailkit demo"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Breadcrumb"))
	b.WriteString("\n")
	tr := trail.NewRenderer(m.theme)
	tr.Hover = m.cursor
	b.WriteString("  " + tr.Render(m.trailConfig()))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Children"))
	b.WriteString("\n")
	cur := m.navigator.Current()
	if len(cur.Children) == 0 {
		b.WriteString("  " + statusStyle.Render("(empty)"))
		b.WriteString("\n")
	}
	for _, c := range cur.Children {
		style := childStyle
		if c.Disabled {
			style = disabledStyle
		}
		b.WriteString("  " + style.Render(icons.Glyph(c.Icon)+" "+c.Label))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render(fmt.Sprintf("Rating (%s)", variants[m.variantIx].name)))
	b.WriteString("\n")
	b.WriteString("  " + rating.NewRenderer(m.theme).Render(m.ratingModel()))
	b.WriteString("\n\n")

	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString(m.helpView())
	return b.String()
}

func (m Model) helpView() string {
	bindings := []key.Binding{
		keys.Left, keys.Right, keys.Enter, keys.Descend, keys.Up,
		keys.RateUp, keys.RateDown, keys.Precision, keys.Readonly,
		keys.Variant, keys.Separator, keys.Quit,
	}
	parts := make([]string, 0, len(bindings)+1)
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, helpKeyStyle.Render(h.Key)+" "+helpDescStyle.Render(h.Desc))
	}
	parts = append(parts, helpKeyStyle.Render("1-9")+" "+helpDescStyle.Render("rate"))
	return strings.Join(parts, helpKeyStyle.Render(" · "))
}
