package tui

import (
	"charm.land/bubbles/v2/key"
	"github.com/thenoetrevino/tareas/internal/config"
)

// keyMap holds the board bindings built from the configured key mappings
type keyMap struct {
	AddTask      key.Binding
	FirstAction  key.Binding
	SecondAction key.Binding
	PrevColumn   key.Binding
	NextColumn   key.Binding
	PrevTask     key.Binding
	NextTask     key.Binding
	Refresh      key.Binding
	SignOut      key.Binding
	ShowHelp     key.Binding
	Quit         key.Binding
}

func newKeyMap(km config.KeyMappings) keyMap {
	bind := func(k, help string, extra ...string) key.Binding {
		return key.NewBinding(
			key.WithKeys(append([]string{k}, extra...)...),
			key.WithHelp(k, help),
		)
	}

	return keyMap{
		AddTask:      bind(km.AddTask, "add task"),
		FirstAction:  bind(km.FirstAction, "first action"),
		SecondAction: bind(km.SecondAction, "second action"),
		PrevColumn:   bind(km.PrevColumn, "previous column", "left"),
		NextColumn:   bind(km.NextColumn, "next column", "right"),
		PrevTask:     bind(km.PrevTask, "previous task", "up"),
		NextTask:     bind(km.NextTask, "next task", "down"),
		Refresh:      bind(km.Refresh, "reload"),
		SignOut:      bind(km.SignOut, "sign out"),
		ShowHelp:     bind(km.ShowHelp, "help"),
		Quit:         bind(km.Quit, "quit", "ctrl+c"),
	}
}

// hint is the short key summary shown in the status bar
func (k keyMap) hint() string {
	bindings := []key.Binding{k.AddTask, k.FirstAction, k.SecondAction, k.ShowHelp, k.Quit}
	out := ""
	for i, b := range bindings {
		if i > 0 {
			out += "  "
		}
		h := b.Help()
		out += h.Key + " " + h.Desc
	}
	return out
}
