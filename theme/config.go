package theme

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// fileTheme is the YAML shape of a theme file. Every slot is optional;
// empty slots keep their default.
type fileTheme struct {
	Muted      string `yaml:"muted"`
	Foreground string `yaml:"foreground"`
	Warning    string `yaml:"warning"`
	Danger     string `yaml:"danger"`
	Success    string `yaml:"success"`
	Primary    string `yaml:"primary"`
	Accent     string `yaml:"accent"`
}

// Load reads a theme file. Colors are either ANSI indexes ("8") or hex
// values ("#ffcc00"). Slots left empty fall back to the default palette.
func Load(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), fmt.Errorf("failed to read theme file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML theme data over the default palette.
func Parse(data []byte) (Theme, error) {
	var ft fileTheme
	if err := yaml.Unmarshal(data, &ft); err != nil {
		return Default(), fmt.Errorf("failed to parse theme file: %w", err)
	}

	t := Default()
	setColor(&t.Muted, ft.Muted)
	setColor(&t.Foreground, ft.Foreground)
	setColor(&t.Warning, ft.Warning)
	setColor(&t.Danger, ft.Danger)
	setColor(&t.Success, ft.Success)
	setColor(&t.Primary, ft.Primary)
	setColor(&t.Accent, ft.Accent)
	return t, nil
}

func setColor(dst *lipgloss.TerminalColor, spec string) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return
	}
	if strings.HasPrefix(spec, "#") {
		*dst = lipgloss.Color(spec)
		return
	}
	if n, err := strconv.Atoi(spec); err == nil && n >= 0 && n <= 255 {
		*dst = lipgloss.ANSIColor(n)
	}
	// Anything else is ignored; the slot keeps its default.
}
