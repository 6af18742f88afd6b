package main

import "github.com/charmbracelet/lipgloss"

// ANSI 0–15 only, so the demo follows the terminal's own theme.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.ANSIColor(11)).
			Padding(0, 1)

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.ANSIColor(3)).
			Bold(true)

	childStyle    = lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(12))
	disabledStyle = lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(8))

	helpKeyStyle  = lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(8))
	helpDescStyle = lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(7))

	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(8)).Italic(true)
)
