package state

import (
	"testing"

	"github.com/thenoetrevino/tareas/internal/models"
)

// TestClampSelection_EmptyColumn ensures selection in an empty column stays at index 0.
func TestClampSelection_EmptyColumn(t *testing.T) {
	s := NewUIState()
	s.Select(1, 4)

	s.ClampSelection([]int{3, 0, 2})

	if s.SelectedColumn() != 1 || s.SelectedTask() != 0 {
		t.Errorf("selection = (%d,%d), want (1,0)", s.SelectedColumn(), s.SelectedTask())
	}
}

// TestClampSelection_OutOfRange ensures stale indices are pulled back after cards leave a column.
func TestClampSelection_OutOfRange(t *testing.T) {
	s := NewUIState()
	s.Select(5, 9)

	s.ClampSelection([]int{3, 0, 2})

	if s.SelectedColumn() != 2 || s.SelectedTask() != 1 {
		t.Errorf("selection = (%d,%d), want (2,1)", s.SelectedColumn(), s.SelectedTask())
	}
}

func TestClampSelection_NoColumns(t *testing.T) {
	s := NewUIState()
	s.Select(2, 2)
	s.ClampSelection(nil)

	if s.SelectedColumn() != 0 || s.SelectedTask() != 0 {
		t.Errorf("selection = (%d,%d), want (0,0)", s.SelectedColumn(), s.SelectedTask())
	}
}

func TestTaskScrollOffset(t *testing.T) {
	s := NewUIState()
	if s.TaskScrollOffset(0) != 0 {
		t.Error("default scroll offset should be 0")
	}

	s.SetTaskScrollOffset(1, 3)
	s.SetTaskScrollOffset(2, -4)
	if s.TaskScrollOffset(1) != 3 {
		t.Errorf("TaskScrollOffset(1) = %d, want 3", s.TaskScrollOffset(1))
	}
	if s.TaskScrollOffset(2) != 0 {
		t.Errorf("negative offsets should clamp to 0, got %d", s.TaskScrollOffset(2))
	}

	s.ResetScroll()
	if s.TaskScrollOffset(1) != 0 {
		t.Error("ResetScroll should clear offsets")
	}
}

func TestDragState_Lifecycle(t *testing.T) {
	d := NewDragState()
	if d.Active() || d.OverColumn() != -1 {
		t.Fatal("new drag state should be idle with no hovered column")
	}

	d.Start("abc123", models.StageTodo)
	if !d.Active() || d.Moved() || d.TaskID() != "abc123" || d.FromStage() != models.StageTodo {
		t.Errorf("after Start: %+v", d)
	}

	d.Hover(2, 1)
	if !d.Moved() || d.OverColumn() != 2 || d.Index() != 1 {
		t.Errorf("after Hover: %+v", d)
	}

	d.Clear()
	if d.Active() || d.Moved() || d.OverColumn() != -1 {
		t.Errorf("after Clear: %+v", d)
	}
}

func TestNotificationState(t *testing.T) {
	n := NewNotificationState()
	if _, ok := n.Current(); ok {
		t.Fatal("new state should have no notification")
	}

	n.Info("Task added")
	n.Error("failed to persist tasks")
	got, ok := n.Current()
	if !ok || got.Level != LevelError || got.Message != "failed to persist tasks" {
		t.Errorf("Current() = %+v, %v", got, ok)
	}

	n.Clear()
	if _, ok := n.Current(); ok {
		t.Error("Clear should remove the notification")
	}
}
