// Package tui implements the interactive expression explorer.
package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette for the explorer.
var (
	ColorPrimary   = lipgloss.Color("#7C3AED") // Purple
	ColorSecondary = lipgloss.Color("#10B981") // Green
	ColorMuted     = lipgloss.Color("#6B7280") // Gray
	ColorWarning   = lipgloss.Color("#F59E0B") // Yellow
	ColorError     = lipgloss.Color("#EF4444") // Red
	ColorActive    = lipgloss.Color("#3B82F6") // Blue
	ColorBorder    = lipgloss.Color("#4B5563") // Dark gray
)

var (
	StyleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1)

	StyleSubtitle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// StyleExpr is used for TIMEX expressions.
	StyleExpr = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// StyleType is used for type names.
	StyleType = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	// StylePhrase is used for English renderings.
	StylePhrase = lipgloss.NewStyle().
			Italic(true).
			Foreground(ColorActive)

	StyleLabel = lipgloss.NewStyle().
			Bold(true).
			Width(11)

	StyleWarning = lipgloss.NewStyle().
			Foreground(ColorWarning)

	StyleError = lipgloss.NewStyle().
			Foreground(ColorError)

	StyleCursor = lipgloss.NewStyle().
			Reverse(true)

	StyleHelp = lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1)

	StyleHelpKey = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	StyleHelpDesc = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// Box styles for the sections.
var (
	StyleInputBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorActive).
			Padding(0, 1)

	StyleResultBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2).
			MarginTop(1)

	StyleInvalidBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorError).
			Padding(1, 2).
			MarginTop(1)
)

// HelpBar renders the key bindings.
func HelpBar() string {
	keys := []struct {
		key  string
		desc string
	}{
		{"enter", "keep"},
		{"↑/↓", "recall"},
		{"tab", "relative/absolute"},
		{"ctrl+u", "clear"},
		{"esc", "quit"},
	}

	var parts []string
	for _, k := range keys {
		parts = append(parts, StyleHelpKey.Render(k.key)+" "+StyleHelpDesc.Render(k.desc))
	}
	return StyleHelp.Render(strings.Join(parts, "  •  "))
}
