package models

import (
	"fmt"
	"strings"
)

// Stage is the lifecycle stage of a task
type Stage string

const (
	StageTodo      Stage = "todo"
	StageCompleted Stage = "completed"
	StageArchived  Stage = "archived"
)

// Stages lists every stage in board order
var Stages = []Stage{StageTodo, StageCompleted, StageArchived}

// Valid reports whether s is one of the known stages
func (s Stage) Valid() bool {
	switch s {
	case StageTodo, StageCompleted, StageArchived:
		return true
	}
	return false
}

// Title returns the column heading for the stage
func (s Stage) Title() string {
	switch s {
	case StageTodo:
		return "Todo"
	case StageCompleted:
		return "Completed"
	case StageArchived:
		return "Archived"
	}
	return string(s)
}

// Index returns the board position of the stage, or -1 if unknown
func (s Stage) Index() int {
	for i, st := range Stages {
		if st == s {
			return i
		}
	}
	return -1
}

// ParseStage maps user input (case-insensitive, trimmed) to a Stage
func ParseStage(value string) (Stage, error) {
	s := Stage(strings.ToLower(strings.TrimSpace(value)))
	if !s.Valid() {
		return "", fmt.Errorf("%w: '%s' (must be: todo, completed, archived)", ErrInvalidStage, value)
	}
	return s, nil
}

// ============================================================================
// TRANSITIONS
// ============================================================================

// Action is a stage transition offered on a card
type Action struct {
	Label  string
	Target Stage
}

// Transitions maps each stage to the actions available from it, in button order
var Transitions = map[Stage][]Action{
	StageTodo: {
		{Label: "Complete", Target: StageCompleted},
		{Label: "Archive", Target: StageArchived},
	},
	StageCompleted: {
		{Label: "Move to Todo", Target: StageTodo},
		{Label: "Archive", Target: StageArchived},
	},
	StageArchived: {
		{Label: "Move to Todo", Target: StageTodo},
		{Label: "Move to Completed", Target: StageCompleted},
	},
}

// ActionsFor returns the actions for a stage (nil for unknown stages)
func ActionsFor(s Stage) []Action {
	return Transitions[s]
}
