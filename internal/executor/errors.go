package executor

import "errors"

var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrNoMatchingTasks   = errors.New("no tasks match the criteria")
	ErrMissingTitle      = errors.New("task title is required")
	ErrNothingToUpdate   = errors.New("no updates given")
	ErrUnknownCommand    = errors.New("command not understood")
	ErrAllUpdatesFailed  = errors.New("every matching task failed to update")
	ErrAllDeletionFailed = errors.New("every matching task failed to delete")
)
