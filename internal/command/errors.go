package command

import "errors"

var (
	ErrUnknownAction        = errors.New("unknown action")
	ErrConfidenceOutOfRange = errors.New("confidence out of range")
	ErrMissingTaskReference = errors.New("single target requires a task reference")
	ErrMissingFilters       = errors.New("filtered target requires at least one filter")
)
