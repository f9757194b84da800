package huhforms

import (
	"charm.land/huh/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tareas/internal/config"
)

// CreateTheme styles the registration form with the board's color scheme.
// The form only holds text inputs, so selector styles are left at the base.
func CreateTheme(colorScheme config.ColorScheme) huh.Theme {
	return huh.ThemeFunc(func(isDark bool) *huh.Styles {
		t := huh.ThemeBase(isDark)

		var (
			accent = lipgloss.Color(colorScheme.Accent)
			subtle = lipgloss.Color(colorScheme.Subtle)
			normal = lipgloss.Color(colorScheme.Normal)
			title  = lipgloss.Color(colorScheme.Title)
			errFg  = lipgloss.Color(colorScheme.ErrorFg)
		)

		focused := &t.Focused
		focused.Base = focused.Base.BorderForeground(accent)
		focused.Title = focused.Title.Foreground(title).Bold(true)
		focused.Description = focused.Description.Foreground(subtle)
		focused.ErrorIndicator = focused.ErrorIndicator.Foreground(errFg)
		focused.ErrorMessage = focused.ErrorMessage.Foreground(errFg)

		focused.TextInput.Prompt = focused.TextInput.Prompt.Foreground(accent)
		focused.TextInput.Cursor = focused.TextInput.Cursor.Foreground(accent)
		focused.TextInput.Placeholder = focused.TextInput.Placeholder.Foreground(subtle)

		// Submit button on the last field
		focused.FocusedButton = focused.FocusedButton.
			Foreground(lipgloss.Color(colorScheme.ButtonFg)).
			Background(accent).
			Bold(true)
		focused.BlurredButton = focused.BlurredButton.
			Foreground(normal).
			Background(subtle)

		// A field that lost focus keeps its value readable but drops the border
		t.Blurred = t.Focused
		t.Blurred.Base = t.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())
		t.Blurred.Title = t.Blurred.Title.Foreground(subtle).Bold(false)
		t.Blurred.TextInput.Prompt = t.Blurred.TextInput.Prompt.Foreground(subtle)

		return t
	})
}
