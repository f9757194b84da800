package task

import "errors"

// Task-related errors
var (
	// ErrTaskNotFound is returned by Get for an unknown id
	ErrTaskNotFound = errors.New("task not found")

	// ErrCorruptTasks means the stored collection could not be decoded
	ErrCorruptTasks = errors.New("stored tasks are corrupt")

	// ErrLoadInterrupted means Reset ran while Load was fetching the seed
	ErrLoadInterrupted = errors.New("task load interrupted by reset")
)
