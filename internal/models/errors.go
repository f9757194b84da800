package models

import "errors"

// Domain-specific errors shared across services
var (
	// ErrInvalidStage indicates a stage outside todo/completed/archived
	ErrInvalidStage = errors.New("invalid stage")
)
