package huhforms

import (
	"time"

	"charm.land/huh/v2"
	"github.com/thenoetrevino/tareas/internal/models"
)

// CreateRegisterForm creates the name / date-of-birth form shown before the board.
// Values are written through the pointers so a rejected submission can be
// re-opened with the user's input intact.
func CreateRegisterForm(name, dob *string, suggestedName string, maxDOB time.Time) *huh.Form {
	namePlaceholder := "Your name"
	if suggestedName != "" {
		namePlaceholder = suggestedName
	}

	fields := []huh.Field{
		huh.NewInput().
			Key("name").
			Title("Name").
			Placeholder(namePlaceholder).
			Value(name),
		huh.NewInput().
			Key("dob").
			Title("Date of birth").
			Description("YYYY-MM-DD, on or before " + maxDOB.Format(models.DOBLayout)).
			Placeholder(models.DOBLayout).
			CharLimit(len(models.DOBLayout)).
			Value(dob),
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	return form.WithShowHelp(false)
}
