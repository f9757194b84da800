package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
	"github.com/thenoetrevino/tareas/internal/board"
	"github.com/thenoetrevino/tareas/internal/tui/theme"
)

// cardBorder is the number of rows (and columns) the card border adds
const cardBorder = 2

// RenderCard renders a single task as a card of the given outer width
//
//	╭──────────────────────╮
//	│ 1a2b3c4d             │
//	│ {wrapped task text}  │
//	│ 2024-03-09 14:30     │
//	│ 1 Complete           │
//	│ 2 Archive            │
//	╰──────────────────────╯
func RenderCard(card board.Card, width int, selected, dragging bool) string {
	inner := max(width-cardBorder, 1)

	bg := theme.TaskBg
	border := theme.TaskBorder
	if selected {
		bg = theme.SelectedBg
		border = theme.SelectedBorder
	}
	if dragging {
		border = theme.DropTarget
	}

	line := lipgloss.NewStyle().
		Width(inner).
		MaxHeight(1).
		Background(lipgloss.Color(bg))

	var lines []string
	lines = append(lines, line.Inherit(SubtleStyle).Render(card.ShortID))
	for _, l := range WrapText(card.Text, inner) {
		lines = append(lines, line.Foreground(lipgloss.Color(theme.Normal)).Bold(true).Render(l))
	}
	lines = append(lines, line.Inherit(SubtleStyle).Render(card.Modified))
	for i, action := range card.Actions {
		hint := KeyHintStyle.Background(lipgloss.Color(bg)).Render(fmt.Sprintf("%d ", i+1))
		lines = append(lines, line.Render(hint+ButtonStyle.Render(action.Label)))
	}

	return TaskStyle.
		BorderForeground(lipgloss.Color(border)).
		BorderBackground(lipgloss.Color(bg)).
		Render(strings.Join(lines, "\n"))
}

// CardHeight is the number of rows RenderCard produces for card at width.
func CardHeight(card board.Card, width int) int {
	return cardBorder + 2 + len(WrapText(card.Text, max(width-cardBorder, 1))) + len(card.Actions)
}

// ButtonRow is the row of action i, counted from the card's top border.
func ButtonRow(card board.Card, width, i int) int {
	return 1 + 1 + len(WrapText(card.Text, max(width-cardBorder, 1))) + 1 + i
}

// WrapText word-wraps s to width, hard-breaking words that are too long.
func WrapText(s string, width int) []string {
	width = max(width, 1)
	wrapped := wrap.String(wordwrap.String(s, width), width)
	lines := strings.Split(wrapped, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	return lines
}
