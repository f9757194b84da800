package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	RegisterMode Mode = iota // No profile yet; registration form is shown
	NormalMode               // Board navigation
	AddTaskMode              // Typing a new task
	HelpMode                 // Displaying help screen
)

// UIState manages the user interface state.
// This includes navigation (column/task selection), per-column scrolling,
// terminal dimensions, and the current interaction mode.
type UIState struct {
	// selectedColumn is the index of the currently selected column
	selectedColumn int

	// selectedTask is the index of the currently selected task within the selected column
	selectedTask int

	// width is the current terminal width in characters
	width int

	// height is the current terminal height in characters
	height int

	// mode is the current interaction mode
	mode Mode

	// taskScrollOffsets tracks the index of the first visible card per column
	taskScrollOffsets map[int]int
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{
		mode:              NormalMode,
		taskScrollOffsets: make(map[int]int),
	}
}

// SelectedColumn returns the index of the currently selected column.
func (s *UIState) SelectedColumn() int {
	return s.selectedColumn
}

// SetSelectedColumn updates the selected column index.
func (s *UIState) SetSelectedColumn(index int) {
	s.selectedColumn = index
}

// SelectedTask returns the index of the currently selected task.
func (s *UIState) SelectedTask() int {
	return s.selectedTask
}

// SetSelectedTask updates the selected task index.
func (s *UIState) SetSelectedTask(index int) {
	s.selectedTask = index
}

// Select sets both column and task selection.
func (s *UIState) Select(column, task int) {
	s.selectedColumn = column
	s.selectedTask = task
}

// ClampSelection keeps the selection inside columns whose sizes are counts.
func (s *UIState) ClampSelection(counts []int) {
	if len(counts) == 0 {
		s.selectedColumn, s.selectedTask = 0, 0
		return
	}
	s.selectedColumn = min(max(s.selectedColumn, 0), len(counts)-1)
	s.selectedTask = min(max(s.selectedTask, 0), max(counts[s.selectedColumn]-1, 0))
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// SetWidth updates the terminal width.
func (s *UIState) SetWidth(width int) {
	s.width = width
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetHeight updates the terminal height.
func (s *UIState) SetHeight(height int) {
	s.height = height
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode updates the current interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// TaskScrollOffset returns the first visible card index for a column.
func (s *UIState) TaskScrollOffset(column int) int {
	return s.taskScrollOffsets[column]
}

// SetTaskScrollOffset sets the first visible card index for a column.
func (s *UIState) SetTaskScrollOffset(column, offset int) {
	s.taskScrollOffsets[column] = max(offset, 0)
}

// ResetScroll drops every per-column scroll offset.
func (s *UIState) ResetScroll() {
	s.taskScrollOffsets = make(map[int]int)
}
