package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tareas/internal/tui/theme"
)

// ColumnHeaderRows is the heading line plus the spacer below it
const ColumnHeaderRows = 2

// ColumnProps describes one column to render
type ColumnProps struct {
	Heading    string
	Cards      []string // already rendered, top to bottom
	Width      int      // outer width including border
	Height     int      // outer height including border
	Selected   bool
	DropTarget bool
	Loading    bool
	MoreAbove  bool
	MoreBelow  bool
}

// RenderColumn renders a complete column with its title and visible cards
//
// Layout:
//
//	{Title} ({count})    ▲
//	{Card 1}
//	{Card 2}
//	...                  ▼
func RenderColumn(props ColumnProps) string {
	inner := max(props.Width-2, 1)
	innerHeight := max(props.Height-2, 1)

	header := TitleStyle.Render(props.Heading)
	if props.MoreAbove {
		header += SubtleStyle.Render(" ▲")
	}

	parts := []string{header, ""}
	switch {
	case props.Loading:
		parts = append(parts, SubtleStyle.Italic(true).Render("Loading tasks..."))
	case len(props.Cards) == 0:
		parts = append(parts, SubtleStyle.Italic(true).Render("No tasks"))
	default:
		parts = append(parts, props.Cards...)
	}
	if props.MoreBelow {
		parts = append(parts, SubtleStyle.Render("▼ more below"))
	}

	body := lipgloss.NewStyle().
		Width(inner).
		Height(innerHeight).
		MaxHeight(innerHeight).
		Render(strings.Join(parts, "\n"))

	border := theme.ColumnBorder
	switch {
	case props.DropTarget:
		border = theme.DropTarget
	case props.Selected:
		border = theme.SelectedBorder
	}

	return ColumnStyle.BorderForeground(lipgloss.Color(border)).Render(body)
}
