package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrNotFound        = errors.New("task not found")
	ErrEmptyTitle      = errors.New("task title is empty")
	ErrInvalidStatus   = errors.New("invalid task status")
	ErrInvalidPriority = errors.New("invalid task priority")
	ErrEmptyID         = errors.New("task id is empty")
)
