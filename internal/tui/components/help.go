package components

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/tareas/internal/config"
)

// RenderHelp renders the keyboard shortcuts for the configured key mappings
func RenderHelp(keys config.KeyMappings) string {
	row := func(key, desc string) string {
		return fmt.Sprintf("  %-8s %s", key, desc)
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render("tareas - Keyboard Shortcuts"))
	b.WriteString("\n\nTASKS\n")
	b.WriteString(row(keys.AddTask, "Add new task") + "\n")
	b.WriteString(row(keys.FirstAction, "First action of selected task") + "\n")
	b.WriteString(row(keys.SecondAction, "Second action of selected task") + "\n")
	b.WriteString("\nNAVIGATION\n")
	b.WriteString(row(keys.PrevColumn, "Previous column") + "\n")
	b.WriteString(row(keys.NextColumn, "Next column") + "\n")
	b.WriteString(row(keys.PrevTask, "Previous task") + "\n")
	b.WriteString(row(keys.NextTask, "Next task") + "\n")
	b.WriteString("\nMOUSE\n")
	b.WriteString(row("drag", "Drop a card on a column to move it") + "\n")
	b.WriteString(row("click", "Press an action button") + "\n")
	b.WriteString("\nOTHER\n")
	b.WriteString(row(keys.Refresh, "Reload tasks") + "\n")
	b.WriteString(row(keys.SignOut, "Sign out (clears all data)") + "\n")
	b.WriteString(row(keys.ShowHelp, "Toggle help") + "\n")
	b.WriteString(row(keys.Quit, "Quit") + "\n")
	b.WriteString("\n" + SubtleStyle.Render("Press any key to close"))
	return b.String()
}
