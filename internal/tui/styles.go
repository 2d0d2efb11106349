package tui

import "github.com/charmbracelet/lipgloss"

var (
	// BoldStyle styles headings.
	BoldStyle = lipgloss.NewStyle().Bold(true)

	// InfoStyle, WarnStyle and ErrorStyle render the severity markers used
	// across command output.
	InfoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	WarnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	ErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))

	// FaintStyle styles secondary detail lines.
	FaintStyle = lipgloss.NewStyle().Faint(true)
)
