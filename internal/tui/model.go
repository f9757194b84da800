package tui

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	"github.com/thenoetrevino/tareas/internal/app"
	"github.com/thenoetrevino/tareas/internal/board"
	"github.com/thenoetrevino/tareas/internal/config"
	"github.com/thenoetrevino/tareas/internal/models"
	taskservice "github.com/thenoetrevino/tareas/internal/services/task"
	userservice "github.com/thenoetrevino/tareas/internal/services/user"
	"github.com/thenoetrevino/tareas/internal/tui/components"
	"github.com/thenoetrevino/tareas/internal/tui/huhforms"
	"github.com/thenoetrevino/tareas/internal/tui/state"
)

// Model represents the application state for the TUI
type Model struct {
	ctx context.Context

	tasks  taskservice.Service
	users  userservice.Service
	config *config.Config
	keys   keyMap

	profile models.Profile
	loading bool
	now     func() time.Time

	uiState           *state.UIState
	dragState         *state.DragState
	notificationState *state.NotificationState
	order             *board.Order

	// Registration form, bound to regName / regDOB
	registerForm *huh.Form
	regName      *string
	regDOB       *string
	registerErr  string

	addInput textinput.Model
}

// tasksLoadedMsg carries the result of a Load run as a command
type tasksLoadedMsg struct {
	tasks []models.Task
	err   error
}

// InitialModel creates the TUI model. The board is loaded by Init, so a slow
// seed fetch shows the loading state instead of blocking startup.
func InitialModel(ctx context.Context, a *app.App) Model {
	cfg := a.Config
	if cfg == nil {
		cfg = config.Default()
	}

	components.InitStyles(cfg.ColorScheme)

	input := textinput.New()
	input.Placeholder = "What needs doing?"
	input.Prompt = "New task: "

	m := Model{
		ctx:               ctx,
		tasks:             a.TaskService,
		users:             a.UserService,
		config:            cfg,
		keys:              newKeyMap(cfg.KeyMappings),
		now:               time.Now,
		uiState:           state.NewUIState(),
		dragState:         state.NewDragState(),
		notificationState: state.NewNotificationState(),
		order:             board.NewOrder(),
		regName:           new(string),
		regDOB:            new(string),
		addInput:          input,
	}

	profile, err := a.UserService.Current(ctx)
	switch {
	case err == nil:
		m.profile = profile
		m.loading = true
	case errors.Is(err, userservice.ErrNotRegistered):
		m.openRegistration()
	default:
		slog.Error("failed to read profile", "error", err)
		m.notificationState.Error(err.Error())
		m.openRegistration()
	}
	return m
}

// Init starts the registration form or the initial board load.
func (m Model) Init() tea.Cmd {
	if m.uiState.Mode() == state.RegisterMode {
		return m.registerForm.Init()
	}
	return m.loadTasks()
}

// openRegistration switches to the registration screen with a fresh form
func (m *Model) openRegistration() {
	m.uiState.SetMode(state.RegisterMode)
	m.registerForm = huhforms.CreateRegisterForm(
		m.regName,
		m.regDOB,
		userservice.SuggestedName(),
		userservice.MaxDOB(m.now()),
	).WithTheme(huhforms.CreateTheme(m.config.ColorScheme))
	if w := m.uiState.Width(); w > 0 {
		m.registerForm = m.registerForm.WithWidth(min(w-4, 60))
	}
}

// loadTasks runs Load off the update loop
func (m Model) loadTasks() tea.Cmd {
	tasks := m.tasks
	ctx := m.ctx
	return func() tea.Msg {
		loaded, err := tasks.Load(ctx)
		return tasksLoadedMsg{tasks: loaded, err: err}
	}
}

// displayBoard is the board as drawn: store order, then session order,
// then the card being dragged shown at its drop position.
func (m Model) displayBoard() board.Board {
	b := m.order.Apply(board.Build(m.tasks.Tasks()))
	if !m.dragState.Active() || !m.dragState.Moved() || m.dragState.OverColumn() < 0 {
		return b
	}
	return previewDrop(b, m.dragState.TaskID(), m.dragState.OverColumn(), m.dragState.Index())
}

// previewDrop moves the card with id into column col at index, visually only.
func previewDrop(b board.Board, id string, col, index int) board.Board {
	fromCol, fromRow, ok := b.Find(id)
	if !ok || col >= len(b.Columns) {
		return b
	}

	out := board.Board{Columns: make([]board.Column, len(b.Columns))}
	for i, c := range b.Columns {
		out.Columns[i] = c
		out.Columns[i].Cards = append([]board.Card(nil), c.Cards...)
	}

	card := out.Columns[fromCol].Cards[fromRow]
	src := out.Columns[fromCol].Cards
	out.Columns[fromCol].Cards = append(src[:fromRow:fromRow], src[fromRow+1:]...)

	dst := out.Columns[col].Cards
	index = min(max(index, 0), len(dst))
	dst = append(dst[:index:index], append([]board.Card{card}, dst[index:]...)...)
	out.Columns[col].Cards = dst
	return out
}

// boardWithout is the display board with the card id removed, which is the
// frame of reference for insertion indices during a drag.
func (m Model) boardWithout(id string) board.Board {
	b := m.order.Apply(board.Build(m.tasks.Tasks()))
	for i := range b.Columns {
		if r := b.Columns[i].IndexOf(id); r >= 0 {
			cards := append([]board.Card(nil), b.Columns[i].Cards[:r]...)
			b.Columns[i].Cards = append(cards, b.Columns[i].Cards[r+1:]...)
		}
	}
	return b
}

func (m Model) layout(b board.Board) boardLayout {
	return computeLayout(b, m.uiState.Width(), m.uiState.Height(), m.uiState.TaskScrollOffset)
}

// columnCounts is the number of cards per displayed column
func columnCounts(b board.Board) []int {
	counts := make([]int, len(b.Columns))
	for i, c := range b.Columns {
		counts[i] = c.Count()
	}
	return counts
}

// selectedCard returns the card under the keyboard selection
func (m Model) selectedCard() (board.Card, bool) {
	b := m.displayBoard()
	col, row := m.uiState.SelectedColumn(), m.uiState.SelectedTask()
	if col < 0 || col >= len(b.Columns) || row < 0 || row >= len(b.Columns[col].Cards) {
		return board.Card{}, false
	}
	return b.Columns[col].Cards[row], true
}

// TaskCount is the number of tasks currently held by the store
func (m Model) TaskCount() int {
	return len(m.tasks.Tasks())
}

// Registering reports whether the registration screen is showing
func (m Model) Registering() bool {
	return m.uiState.Mode() == state.RegisterMode
}
