// Package core adapts the board model to the pointer receiver tea.Program
// drives, so tests and the launcher share one entry point.
package core

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tareas/internal/app"
	"github.com/thenoetrevino/tareas/internal/tui"
)

// App is the program root. It owns the board model and replaces it with
// each value returned from Update.
type App struct {
	model *tui.Model
}

// New builds the board model for application. A missing profile opens the
// registration screen; otherwise Init starts the task load.
func New(ctx context.Context, application *app.App) *App {
	model := tui.InitialModel(ctx, application)
	return &App{model: &model}
}

func (a *App) Init() tea.Cmd {
	return a.model.Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := a.model.Update(msg)
	if m, ok := next.(tui.Model); ok {
		*a.model = m
	}
	return a, cmd
}

func (a *App) View() tea.View {
	return a.model.View()
}

// GetModel exposes the current model to tests
func (a *App) GetModel() *tui.Model {
	return a.model
}
