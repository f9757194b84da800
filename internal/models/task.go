package models

import "time"

// Task represents a single card on the board
type Task struct {
	ID       string    `json:"id"`
	Text     string    `json:"text"`
	Stage    Stage     `json:"stage"`
	Modified time.Time `json:"modified"`
}

// GetID returns the task ID, used by the CLI quiet output mode
func (t *Task) GetID() string {
	return t.ID
}

// ShortID returns the first eight characters of the ID for compact display
func (t *Task) ShortID() string {
	if len(t.ID) <= ShortIDLength {
		return t.ID
	}
	return t.ID[:ShortIDLength]
}

// ShortIDLength is the number of ID characters shown on cards
const ShortIDLength = 8

// CloneTasks returns a deep copy of the given tasks.
// Task has no reference fields, so copying the structs is enough.
func CloneTasks(tasks []Task) []Task {
	if tasks == nil {
		return []Task{}
	}
	out := make([]Task, len(tasks))
	copy(out, tasks)
	return out
}
