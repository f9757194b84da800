// Package components provides reusable UI components and styles.
// Call InitStyles() before use to initialize all style variables.
package components

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tareas/internal/config"
	"github.com/thenoetrevino/tareas/internal/tui/theme"
)

// These are cached to avoid recomputing on every redraw.
var (
	// ColumnStyle defines the border of a kanban column
	ColumnStyle lipgloss.Style

	// TaskStyle defines the border of a card
	TaskStyle lipgloss.Style

	// TitleStyle defines the appearance of titles (column names, app header)
	TitleStyle lipgloss.Style

	// SubtleStyle is used for ids, timestamps and placeholders
	SubtleStyle lipgloss.Style

	// ButtonStyle defines an action button on a card
	ButtonStyle lipgloss.Style

	// KeyHintStyle renders the key that triggers a button
	KeyHintStyle lipgloss.Style

	// FormBoxStyle wraps the registration form
	FormBoxStyle lipgloss.Style

	// HelpBoxStyle defines the base style for help screen
	HelpBoxStyle lipgloss.Style

	// InfoStyle and ErrorStyle color status line messages
	InfoStyle  lipgloss.Style
	ErrorStyle lipgloss.Style

	// InputPromptStyle labels the add-task input
	InputPromptStyle lipgloss.Style
)

// InitStyles initializes all styles with the given color scheme
func InitStyles(colors config.ColorScheme) {
	// Initialize theme colors
	theme.Init(colors)

	ColumnStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.ColumnBorder))

	TaskStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.TaskBorder))

	TitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Title)).
		Bold(true)

	SubtleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle))

	ButtonStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.ButtonFg)).
		Background(lipgloss.Color(theme.ButtonBg)).
		Padding(0, 1)

	KeyHintStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Highlight)).
		Bold(true)

	FormBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Highlight)).
		Padding(1, 2)

	HelpBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.InfoFg)).
		Padding(1, 2)

	InfoStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.InfoFg))
	ErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ErrorFg)).Bold(true)

	InputPromptStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Create)).
		Bold(true)
}
