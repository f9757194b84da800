package state

import "github.com/thenoetrevino/tareas/internal/models"

// DragState tracks a card being dragged with the mouse.
type DragState struct {
	active bool
	moved  bool

	taskID    string
	fromStage models.Stage

	// overColumn is the column under the pointer, -1 when outside the board
	overColumn int
	// index is the insertion point among the target column's other cards
	index int
}

// NewDragState creates an idle DragState.
func NewDragState() *DragState {
	return &DragState{overColumn: -1}
}

// Start begins dragging taskID out of stage.
func (d *DragState) Start(taskID string, stage models.Stage) {
	*d = DragState{active: true, taskID: taskID, fromStage: stage, overColumn: -1}
}

// Hover records the drop target under the pointer.
func (d *DragState) Hover(column, index int) {
	d.moved = true
	d.overColumn = column
	d.index = index
}

// Clear ends the drag.
func (d *DragState) Clear() {
	*d = DragState{overColumn: -1}
}

// Active reports whether a card is held.
func (d *DragState) Active() bool { return d.active }

// Moved reports whether the pointer has moved since the press.
func (d *DragState) Moved() bool { return d.moved }

// TaskID is the dragged card's task id.
func (d *DragState) TaskID() string { return d.taskID }

// FromStage is the stage the card was picked up from.
func (d *DragState) FromStage() models.Stage { return d.fromStage }

// OverColumn is the hovered column index, or -1.
func (d *DragState) OverColumn() int { return d.overColumn }

// Index is the insertion point within the hovered column.
func (d *DragState) Index() int { return d.index }
