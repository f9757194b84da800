// Package styles holds the lipgloss styles used for human-readable CLI output
package styles

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tareas/internal/config"
	"github.com/thenoetrevino/tareas/internal/models"
)

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 60

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Stage:", "Modified:"
	ValueStyle    lipgloss.Style // For field values
	SectionStyle  lipgloss.Style // For column headers on the static board

	// Status styles
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style

	stageStyles map[models.Stage]lipgloss.Style
)

func init() {
	Init(config.DefaultColorScheme())
}

// Init initializes all CLI styles with the given color scheme
func Init(colors config.ColorScheme) {
	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Accent)).
		Padding(0, 1).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Normal))

	SectionStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Accent)).
		Bold(true)

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.InfoFg))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.ErrorFg))

	stageStyles = map[models.Stage]lipgloss.Style{
		models.StageTodo:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colors.Accent)),
		models.StageCompleted: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colors.Create)),
		models.StageArchived:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colors.Subtle)),
	}
}

// Stage renders a stage name in its color
func Stage(s models.Stage) string {
	style, ok := stageStyles[s]
	if !ok {
		return string(s)
	}
	return style.Render(string(s))
}
