package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tareas/internal/tui/components"
	"github.com/thenoetrevino/tareas/internal/tui/state"
	"github.com/thenoetrevino/tareas/internal/tui/theme"
)

// View renders the current state of the application
// This implements the "View" part of the Model-View-Update pattern
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.MouseMode = tea.MouseModeCellMotion

	if m.uiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	switch m.uiState.Mode() {
	case state.RegisterMode:
		view.Content = m.viewRegister()
	case state.HelpMode:
		view.Content = m.centered(components.HelpBoxStyle.Render(components.RenderHelp(m.config.KeyMappings)))
	default:
		view.Content = m.viewBoard()
	}
	return view
}

func (m Model) centered(content string) string {
	return lipgloss.Place(
		m.uiState.Width(), m.uiState.Height(),
		lipgloss.Center, lipgloss.Center,
		content,
	)
}

func (m Model) viewRegister() string {
	parts := []string{
		components.TitleStyle.Render("Welcome to tareas"),
		components.SubtleStyle.Render("Tell us who you are to get started."),
		"",
		m.registerForm.View(),
	}
	if m.registerErr != "" {
		parts = append(parts, "", components.ErrorStyle.Render(m.registerErr))
	}
	if n, ok := m.notificationState.Current(); ok && n.Level == state.LevelError {
		parts = append(parts, "", components.ErrorStyle.Render(n.Message))
	}
	parts = append(parts, "", components.SubtleStyle.Render("enter: next  ctrl+c: quit"))

	return m.centered(components.FormBoxStyle.Render(strings.Join(parts, "\n")))
}

func (m Model) viewBoard() string {
	width := m.uiState.Width()
	b := m.displayBoard()
	lay := m.layout(b)

	dragging := m.dragState.Active() && m.dragState.Moved()
	selCol, selRow := m.uiState.SelectedColumn(), m.uiState.SelectedTask()

	columns := make([]string, len(b.Columns))
	for i, col := range b.Columns {
		box := lay.columns[i]
		cards := make([]string, 0, len(box.cards))
		for _, cb := range box.cards {
			card := col.Cards[cb.row]
			held := dragging && card.ID == m.dragState.TaskID()
			selected := !dragging && i == selCol && cb.row == selRow
			cards = append(cards, components.RenderCard(card, box.cardWidth, selected, held))
		}

		columns[i] = components.RenderColumn(components.ColumnProps{
			Heading:    col.Heading(),
			Cards:      cards,
			Width:      box.rect.Width,
			Height:     box.rect.Height,
			Selected:   i == selCol,
			DropTarget: dragging && i == m.dragState.OverColumn(),
			Loading:    m.loading,
			MoreAbove:  box.moreAbove,
			MoreBelow:  box.moreBelow,
		})
	}

	var bottom string
	if m.uiState.Mode() == state.AddTaskMode {
		bottom = components.InputPromptStyle.Render(m.addInput.View())
	} else {
		bottom = m.statusBar(width)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		components.RenderHeader(width, m.profile.Name),
		lipgloss.JoinHorizontal(lipgloss.Top, columns...),
		bottom,
	)
}

func (m Model) statusBar(width int) string {
	props := components.StatusBarProps{Width: width, Hint: m.keys.hint()}
	switch n, ok := m.notificationState.Current(); {
	case ok:
		props.Message = n.Message
		props.IsError = n.Level == state.LevelError
	case m.loading:
		props.Message = "Loading tasks..."
	case m.dragState.Active() && m.dragState.Moved():
		props.Message = "Drop on a column to move the card"
	}
	return lipgloss.NewStyle().
		Width(width).
		MaxHeight(1).
		Foreground(lipgloss.Color(theme.Normal)).
		Render(components.RenderStatusBar(props))
}
