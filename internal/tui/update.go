package tui

import (
	"errors"
	"log/slog"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	"github.com/thenoetrevino/tareas/internal/board"
	"github.com/thenoetrevino/tareas/internal/models"
	taskservice "github.com/thenoetrevino/tareas/internal/services/task"
	userservice "github.com/thenoetrevino/tareas/internal/services/user"
	"github.com/thenoetrevino/tareas/internal/tui/state"
)

// Update handles all messages and updates the model accordingly
// This implements the "Update" part of the Model-View-Update pattern
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.uiState.SetWidth(msg.Width)
		m.uiState.SetHeight(msg.Height)
		if m.uiState.Mode() == state.RegisterMode {
			return m.updateRegister(msg)
		}
		return m, nil

	case tasksLoadedMsg:
		// A load started before sign-out finishes behind the registration form
		if m.uiState.Mode() == state.RegisterMode {
			return m, nil
		}
		m.loading = false
		if msg.err != nil && !errors.Is(msg.err, taskservice.ErrLoadInterrupted) {
			slog.Error("failed to load tasks", "error", msg.err)
			m.notificationState.Error(msg.err.Error())
		}
		m.uiState.ClampSelection(columnCounts(m.displayBoard()))
		return m, nil
	}

	switch m.uiState.Mode() {
	case state.RegisterMode:
		return m.updateRegister(msg)
	case state.AddTaskMode:
		return m.updateAddTask(msg)
	case state.HelpMode:
		if _, ok := msg.(tea.KeyPressMsg); ok {
			m.uiState.SetMode(state.NormalMode)
		}
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return m.handleNormalMode(msg)
	case tea.MouseClickMsg:
		return m.handleMouseClick(msg.Mouse())
	case tea.MouseMotionMsg:
		return m.handleMouseMotion(msg.Mouse())
	case tea.MouseReleaseMsg:
		return m.handleMouseRelease(msg.Mouse())
	case tea.MouseWheelMsg:
		return m.handleMouseWheel(msg.Mouse())
	}
	return m, nil
}

// updateRegister forwards messages to the registration form and submits it
// once huh reports completion.
func (m Model) updateRegister(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyPressMsg); ok && k.String() == "ctrl+c" {
		return m, tea.Quit
	}

	updated, cmd := m.registerForm.Update(msg)
	if f, ok := updated.(*huh.Form); ok {
		m.registerForm = f
	}

	switch m.registerForm.State {
	case huh.StateAborted:
		return m, tea.Quit
	case huh.StateCompleted:
		return m.submitRegistration()
	}
	return m, cmd
}

func (m Model) submitRegistration() (tea.Model, tea.Cmd) {
	profile, err := m.users.Register(m.ctx, *m.regName, *m.regDOB)
	if err != nil {
		if userservice.IsValidation(err) {
			m.registerErr = err.Error()
		} else {
			slog.Error("failed to register", "error", err)
			m.registerErr = "Could not save your profile: " + err.Error()
		}
		// Same pointers, so the user's input survives the new form
		m.openRegistration()
		return m, m.registerForm.Init()
	}

	m.profile = profile
	m.registerErr = ""
	m.uiState.SetMode(state.NormalMode)
	m.uiState.Select(0, 0)
	m.loading = true
	return m, m.loadTasks()
}

func (m Model) updateAddTask(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyPressMsg); ok {
		switch k.String() {
		case "enter":
			text := m.addInput.Value()
			m.closeAddInput()
			if _, err := m.tasks.Add(m.ctx, text); err != nil {
				slog.Error("failed to add task", "error", err)
				m.notificationState.Error(err.Error())
				return m, nil
			}
			// New tasks land at the bottom of Todo
			if todo, ok := m.displayBoard().Column(models.StageTodo); ok && todo.Count() > 0 {
				m.uiState.Select(models.StageTodo.Index(), todo.Count()-1)
				m.ensureVisible()
			}
			return m, nil
		case "esc":
			m.closeAddInput()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.addInput, cmd = m.addInput.Update(msg)
	return m, cmd
}

func (m *Model) closeAddInput() {
	m.addInput.Reset()
	m.addInput.Blur()
	m.uiState.SetMode(state.NormalMode)
}

func (m Model) handleNormalMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	m.notificationState.Clear()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.ShowHelp):
		m.uiState.SetMode(state.HelpMode)
		return m, nil

	case key.Matches(msg, m.keys.AddTask):
		if m.loading {
			m.notificationState.Info("Still loading tasks...")
			return m, nil
		}
		m.uiState.SetMode(state.AddTaskMode)
		return m, m.addInput.Focus()

	case key.Matches(msg, m.keys.PrevColumn):
		m.moveSelection(-1, 0)
	case key.Matches(msg, m.keys.NextColumn):
		m.moveSelection(1, 0)
	case key.Matches(msg, m.keys.PrevTask):
		m.moveSelection(0, -1)
	case key.Matches(msg, m.keys.NextTask):
		m.moveSelection(0, 1)

	case key.Matches(msg, m.keys.FirstAction):
		m.triggerAction(0)
	case key.Matches(msg, m.keys.SecondAction):
		m.triggerAction(1)

	case key.Matches(msg, m.keys.Refresh):
		if m.loading {
			m.notificationState.Info("Still loading tasks...")
			return m, nil
		}
		m.tasks.Reset()
		m.order.Reset()
		m.uiState.ResetScroll()
		m.loading = true
		return m, m.loadTasks()

	case key.Matches(msg, m.keys.SignOut):
		if m.loading {
			m.notificationState.Info("Still loading tasks...")
			return m, nil
		}
		return m.signOut()
	}
	return m, nil
}

// moveSelection shifts the keyboard selection by whole columns or cards
func (m *Model) moveSelection(dCol, dRow int) {
	b := m.displayBoard()
	counts := columnCounts(b)
	if len(counts) == 0 {
		return
	}

	col := m.uiState.SelectedColumn() + dCol
	row := m.uiState.SelectedTask() + dRow
	if dCol != 0 {
		col = min(max(col, 0), len(counts)-1)
		row = min(m.uiState.SelectedTask(), max(counts[col]-1, 0))
	}
	m.uiState.Select(col, row)
	m.uiState.ClampSelection(counts)
	m.ensureVisible()
}

// triggerAction presses action button i of the selected card
func (m *Model) triggerAction(i int) {
	card, ok := m.selectedCard()
	if !ok || i >= len(card.Actions) {
		return
	}
	m.changeStage(card.ID, card.Actions[i].Target)
}

// changeStage moves a task and keeps the selection on it. It reports
// whether the store accepted the change.
func (m *Model) changeStage(id string, stage models.Stage) bool {
	if m.loading {
		m.notificationState.Info("Still loading tasks...")
		return false
	}
	if _, err := m.tasks.ChangeStage(m.ctx, id, stage); err != nil {
		slog.Error("failed to change stage", "task", id, "stage", stage, "error", err)
		m.notificationState.Error(err.Error())
		return false
	}
	m.followCard(id)
	return true
}

// followCard selects the card with id wherever it is now displayed
func (m *Model) followCard(id string) {
	b := m.displayBoard()
	if col, row, ok := b.Find(id); ok {
		m.uiState.Select(col, row)
	} else {
		m.uiState.ClampSelection(columnCounts(b))
	}
	m.ensureVisible()
}

// ensureVisible scrolls the selected column until the selected card is drawn
func (m *Model) ensureVisible() {
	col, row := m.uiState.SelectedColumn(), m.uiState.SelectedTask()
	if row < m.uiState.TaskScrollOffset(col) {
		m.uiState.SetTaskScrollOffset(col, row)
		return
	}

	b := m.displayBoard()
	for m.uiState.TaskScrollOffset(col) < row {
		if m.layout(b).visible(col, row) {
			return
		}
		m.uiState.SetTaskScrollOffset(col, m.uiState.TaskScrollOffset(col)+1)
	}
}

func (m Model) signOut() (tea.Model, tea.Cmd) {
	if err := m.users.SignOut(m.ctx); err != nil {
		slog.Error("failed to sign out", "error", err)
		m.notificationState.Error(err.Error())
		return m, nil
	}

	m.profile = models.Profile{}
	*m.regName = ""
	*m.regDOB = ""
	m.registerErr = ""
	m.loading = false
	m.order.Reset()
	m.dragState.Clear()
	m.uiState.ResetScroll()
	m.uiState.Select(0, 0)
	m.openRegistration()
	return m, m.registerForm.Init()
}

func (m Model) handleMouseClick(mouse tea.Mouse) (tea.Model, tea.Cmd) {
	if mouse.Button != tea.MouseLeft {
		return m, nil
	}
	m.notificationState.Clear()

	b := m.displayBoard()
	lay := m.layout(b)

	if cb, i, ok := lay.buttonAt(mouse.X, mouse.Y); ok {
		card := b.Columns[cb.column].Cards[cb.row]
		m.changeStage(card.ID, card.Actions[i].Target)
		return m, nil
	}

	if cb, ok := lay.cardAt(mouse.X, mouse.Y); ok {
		m.uiState.Select(cb.column, cb.row)
		if !m.loading {
			m.dragState.Start(cb.id, b.Columns[cb.column].Stage)
		}
	}
	return m, nil
}

func (m Model) handleMouseMotion(mouse tea.Mouse) (tea.Model, tea.Cmd) {
	if !m.dragState.Active() {
		return m, nil
	}

	lay := m.layout(m.boardWithout(m.dragState.TaskID()))
	col := lay.columnAtX(mouse.X)
	if col < 0 {
		m.dragState.Hover(-1, 0)
		return m, nil
	}

	index := lay.columns[col].first + board.InsertionIndex(lay.cardRects(col), mouse.Y)
	m.dragState.Hover(col, index)
	return m, nil
}

func (m Model) handleMouseRelease(mouse tea.Mouse) (tea.Model, tea.Cmd) {
	if !m.dragState.Active() {
		return m, nil
	}

	// The release position wins over the last motion event
	if m.dragState.Moved() {
		m.handleMouseMotion(mouse)
	}

	id := m.dragState.TaskID()
	from := m.dragState.FromStage()
	col, index := m.dragState.OverColumn(), m.dragState.Index()
	moved := m.dragState.Moved()
	m.dragState.Clear()

	if !moved || col < 0 || col >= len(models.Stages) {
		return m, nil
	}

	// Every drop goes through the store, which refreshes modified even
	// when the card stays in its column
	target := models.Stages[col]
	if !m.changeStage(id, target) || target != from {
		return m, nil
	}

	if column, ok := m.order.Apply(board.Build(m.tasks.Tasks())).Column(target); ok {
		m.order.Move(column, id, index)
	}
	m.followCard(id)
	return m, nil
}

func (m Model) handleMouseWheel(mouse tea.Mouse) (tea.Model, tea.Cmd) {
	lay := m.layout(m.displayBoard())
	col := lay.columnAtX(mouse.X)
	if col < 0 {
		return m, nil
	}

	offset := m.uiState.TaskScrollOffset(col)
	switch mouse.Button {
	case tea.MouseWheelUp:
		m.uiState.SetTaskScrollOffset(col, offset-1)
	case tea.MouseWheelDown:
		if lay.columns[col].moreBelow {
			m.uiState.SetTaskScrollOffset(col, offset+1)
		}
	}
	return m, nil
}
