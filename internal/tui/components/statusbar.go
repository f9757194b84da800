package components

import (
	"strings"

	"charm.land/lipgloss/v2"
)

type StatusBarProps struct {
	Width   int
	Message string
	IsError bool
	Hint    string
}

// RenderStatusBar renders a status bar with left and right aligned text
// Left side: the latest notification, if any
// Right side: the key hint
func RenderStatusBar(props StatusBarProps) string {
	style := InfoStyle
	if props.IsError {
		style = ErrorStyle
	}

	leftRendered := style.Render(props.Message)
	rightRendered := SubtleStyle.Render(props.Hint)

	// Calculate space between left and right text
	leftWidth := lipgloss.Width(leftRendered)
	rightWidth := lipgloss.Width(rightRendered)
	gapWidth := max(props.Width-leftWidth-rightWidth, 1)

	return leftRendered + strings.Repeat(" ", gapWidth) + rightRendered
}

// RenderHeader renders the title line with a greeting on the right
func RenderHeader(width int, name string) string {
	left := TitleStyle.Render("tareas")
	right := SubtleStyle.Render("Hello, " + name)
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}
