package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"trailkit/icons"
	"trailkit/nav"
	"trailkit/rating"
	"trailkit/theme"
	"trailkit/trail"
)

// Shell owns all widget state and re-renders after every state change.
type Shell struct {
	navigator *nav.Navigator
	theme     theme.Theme

	value     float64
	maxScale  int
	variant   rating.Variant
	precision bool
	readonly  bool
	separator trail.Separator
}

func NewShell(root *nav.Node, th theme.Theme) *Shell {
	return &Shell{
		navigator: nav.NewNavigator(root),
		theme:     th,
		value:     3.5,
		maxScale:  5,
		variant:   rating.Star(),
		precision: true,
		separator: trail.SeparatorChevron(),
	}
}

func (s *Shell) prompt() string {
	cur := s.navigator.Current().Label
	return colorPrompt.Sprintf("%s> ", cur)
}

// trailConfig rebuilds the breadcrumb config. The terminal width decides
// whether the trail gets a visible cap.
func (s *Shell) trailConfig() trail.Config {
	maxVisible := 0
	if w := termWidth(); w > 0 && w < 72 {
		maxVisible = 4
	}
	return trail.Config{
		Items:      s.navigator.Items(),
		Separator:  s.separator,
		MaxVisible: maxVisible,
		Size:       trail.DefaultSize(),
	}
}

// ratingModel rebuilds the rating model; OnChange commits back into the
// shell's authoritative value.
func (s *Shell) ratingModel() *rating.Model {
	m := rating.New().SetMaxScale(s.maxScale).SetValue(s.value)
	m.Variant = s.variant
	m.Precision = s.precision
	m.Readonly = s.readonly
	m.ShowText = true
	m.OnChange = func(v float64) { s.value = v }
	return m
}

// render draws both widgets from current state.
func (s *Shell) render() {
	fmt.Println(trail.NewRenderer(s.theme).Render(s.trailConfig()))
	fmt.Println(rating.NewRenderer(s.theme).Render(s.ratingModel()))
}

func (s *Shell) execute(cmd string, args []string) error {
	switch cmd {
	case "help":
		s.printHelp()
		return nil

	case "ls":
		cur := s.navigator.Current()
		if len(cur.Children) == 0 {
			colorDim.Println("(empty)")
			return nil
		}
		for _, c := range cur.Children {
			if c.Disabled {
				colorDim.Printf("  %s %s (disabled)\n", icons.Glyph(c.Icon), c.Label)
			} else {
				colorChild.Printf("  %s %s\n", icons.Glyph(c.Icon), c.Label)
			}
		}
		return nil

	case "cd":
		if len(args) == 0 {
			return fmt.Errorf("usage: cd NAME")
		}
		if err := s.navigator.Descend(strings.Join(args, " ")); err != nil {
			return err
		}
		s.render()
		return nil

	case "up":
		s.navigator.Up()
		s.render()
		return nil

	case "top":
		s.navigator.ActivateItem(0)
		s.render()
		return nil

	case "go":
		// Activate a crumb by its display position, through the same
		// gate the TUIs use.
		if len(args) != 1 {
			return fmt.Errorf("usage: go INDEX")
		}
		ix, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("not a number: %s", args[0])
		}
		if !trail.Activate(s.trailConfig(), ix) {
			return fmt.Errorf("crumb %d is not activatable", ix)
		}
		s.render()
		return nil

	case "rate":
		if len(args) != 1 {
			return fmt.Errorf("usage: rate POSITION")
		}
		i, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("not a number: %s", args[0])
		}
		if !s.ratingModel().Activate(i) {
			return fmt.Errorf("position %d not accepted", i)
		}
		s.render()
		return nil

	case "value":
		// Programmatic fractional values, the thing precision display
		// exists for.
		if len(args) != 1 {
			return fmt.Errorf("usage: value NUMBER")
		}
		v, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("not a number: %s", args[0])
		}
		m := s.ratingModel()
		m.SetValue(v)
		s.value = m.Value()
		s.render()
		return nil

	case "max":
		if len(args) != 1 {
			return fmt.Errorf("usage: max SCALE")
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("not a number: %s", args[0])
		}
		m := s.ratingModel()
		m.SetMaxScale(n)
		s.maxScale = m.MaxScale()
		s.value = m.Value()
		s.render()
		return nil

	case "variant":
		if len(args) != 1 {
			return fmt.Errorf("usage: variant star|heart|thumb|custom")
		}
		switch args[0] {
		case "star":
			s.variant = rating.Star()
		case "heart":
			s.variant = rating.Heart()
		case "thumb":
			s.variant = rating.Thumb()
		case "custom":
			s.variant = rating.Custom(icons.Dot)
		default:
			return fmt.Errorf("unknown variant: %s", args[0])
		}
		s.render()
		return nil

	case "sep":
		if len(args) != 1 {
			return fmt.Errorf("usage: sep slash|chevron|dot")
		}
		switch args[0] {
		case "slash":
			s.separator = trail.SeparatorSlash()
		case "chevron":
			s.separator = trail.SeparatorChevron()
		case "dot":
			s.separator = trail.SeparatorDot()
		default:
			return fmt.Errorf("unknown separator: %s", args[0])
		}
		s.render()
		return nil

	case "precision":
		s.precision = !s.precision
		colorInfo.Printf("precision %v\n", s.precision)
		s.render()
		return nil

	case "readonly":
		s.readonly = !s.readonly
		colorInfo.Printf("readonly %v\n", s.readonly)
		return nil

	case "show":
		s.render()
		return nil
	}

	return fmt.Errorf("unknown command: %s (try 'help')", cmd)
}

func (s *Shell) printHelp() {
	help := [][2]string{
		{"ls", "list children of the current location"},
		{"cd NAME", "descend into a child"},
		{"up", "go to the parent"},
		{"top", "jump to the root"},
		{"go INDEX", "activate a breadcrumb position"},
		{"rate POS", "click a rating position (integer input)"},
		{"value N", "set a fractional value programmatically"},
		{"max N", "set the rating scale"},
		{"variant V", "star, heart, thumb or custom"},
		{"sep S", "slash, chevron or dot"},
		{"precision", "toggle half-step display"},
		{"readonly", "toggle click handling"},
		{"show", "re-render the widgets"},
		{"exit", "leave the shell"},
	}
	for _, h := range help {
		fmt.Printf("  %-12s %s\n", h[0], h[1])
	}
}

// completer offers the command vocabulary plus the current children for cd.
func (s *Shell) completer() readline.AutoCompleter {
	children := func(string) []string {
		cur := s.navigator.Current()
		names := make([]string, 0, len(cur.Children))
		for _, c := range cur.Children {
			names = append(names, c.Label)
		}
		return names
	}

	return readline.NewPrefixCompleter(
		readline.PcItem("ls"),
		readline.PcItem("cd", readline.PcItemDynamic(children)),
		readline.PcItem("up"),
		readline.PcItem("top"),
		readline.PcItem("go"),
		readline.PcItem("rate"),
		readline.PcItem("value"),
		readline.PcItem("max"),
		readline.PcItem("variant",
			readline.PcItem("star"), readline.PcItem("heart"),
			readline.PcItem("thumb"), readline.PcItem("custom")),
		readline.PcItem("sep",
			readline.PcItem("slash"), readline.PcItem("chevron"), readline.PcItem("dot")),
		readline.PcItem("precision"),
		readline.PcItem("readonly"),
		readline.PcItem("show"),
		readline.PcItem("help"),
		readline.PcItem("exit"),
	)
}
