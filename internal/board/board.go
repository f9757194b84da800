// Package board projects the task collection into stage columns and holds
// the pure geometry and ordering rules used by the drag gesture.
package board

import (
	"fmt"
	"time"

	"github.com/thenoetrevino/tareas/internal/models"
)

// ModifiedLayout is how card timestamps are shown
const ModifiedLayout = "2006-01-02 15:04"

// Card is a single task as drawn on the board
type Card struct {
	ID       string
	ShortID  string
	Text     string
	Stage    models.Stage
	Modified string
	Actions  []models.Action
}

// Column holds the cards of one stage
type Column struct {
	Stage models.Stage
	Title string
	Cards []Card
}

// Count is the number of cards in the column
func (c Column) Count() int {
	return len(c.Cards)
}

// Heading renders as "Todo (3)"
func (c Column) Heading() string {
	return fmt.Sprintf("%s (%d)", c.Title, c.Count())
}

// IndexOf returns the position of the card with id, or -1
func (c Column) IndexOf(id string) int {
	for i := range c.Cards {
		if c.Cards[i].ID == id {
			return i
		}
	}
	return -1
}

// Board is three columns in stage order
type Board struct {
	Columns []Column
}

// Build filters tasks into one column per stage, keeping collection order.
func Build(tasks []models.Task) Board {
	b := Board{Columns: make([]Column, len(models.Stages))}
	for i, stage := range models.Stages {
		b.Columns[i] = Column{Stage: stage, Title: stage.Title(), Cards: []Card{}}
	}

	for i := range tasks {
		idx := tasks[i].Stage.Index()
		if idx < 0 {
			continue
		}
		b.Columns[idx].Cards = append(b.Columns[idx].Cards, NewCard(tasks[i]))
	}
	return b
}

// NewCard converts a task into its display form
func NewCard(t models.Task) Card {
	return Card{
		ID:       t.ID,
		ShortID:  t.ShortID(),
		Text:     t.Text,
		Stage:    t.Stage,
		Modified: FormatModified(t.Modified),
		Actions:  Actions(t.Stage),
	}
}

// Actions returns the action buttons offered for a card in stage
func Actions(stage models.Stage) []models.Action {
	return models.ActionsFor(stage)
}

// Column returns the column for stage
func (b Board) Column(stage models.Stage) (Column, bool) {
	idx := stage.Index()
	if idx < 0 || idx >= len(b.Columns) {
		return Column{}, false
	}
	return b.Columns[idx], true
}

// Find locates a card by id
func (b Board) Find(id string) (col, row int, ok bool) {
	for c := range b.Columns {
		if r := b.Columns[c].IndexOf(id); r >= 0 {
			return c, r, true
		}
	}
	return 0, 0, false
}

// Total is the number of cards across all columns
func (b Board) Total() int {
	n := 0
	for _, c := range b.Columns {
		n += c.Count()
	}
	return n
}

// FormatModified renders t in local time; the zero time renders empty.
func FormatModified(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format(ModifiedLayout)
}
