package task

import (
	"time"

	"voice-task-management/internal/model"
)

// CreateInput is the input for creating a task. Empty status and priority
// default to pending and MEDIUM.
type CreateInput struct {
	Title       string
	Description string
	Status      model.Status
	Priority    model.Priority
	DueDate     *time.Time
}

// ListInput filters the task list.
type ListInput struct {
	Status   model.Status
	Priority model.Priority
	Limit    int
	Offset   int
}

// UpdateInput changes the fields that are set. ClearDueDate removes the
// due date and wins over DueDate.
type UpdateInput struct {
	ID           string
	Title        *string
	Description  *string
	Status       model.Status
	Priority     model.Priority
	DueDate      *time.Time
	ClearDueDate bool
}
