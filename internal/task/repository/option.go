package repository

import (
	"time"

	"voice-task-management/internal/model"
)

// CreateTaskOptions holds the parameters for inserting a task.
type CreateTaskOptions struct {
	Title           string
	Description     string
	Status          model.Status
	Priority        model.Priority
	DueDate         *time.Time
	CalendarEventID string
}

// ListTasksOptions filters and pages the task list. Empty fields are ignored.
// Results are ordered by creation time, oldest first.
type ListTasksOptions struct {
	Status   model.Status
	Priority model.Priority
	Limit    int
	Offset   int
}

// UpdateTaskOptions replaces every mutable field of the task with ID.
type UpdateTaskOptions struct {
	ID              string
	Title           string
	Description     string
	Status          model.Status
	Priority        model.Priority
	DueDate         *time.Time
	CompletedAt     *time.Time
	CalendarEventID string
}

// CreateVoiceLogOptions holds one processed voice command.
type CreateVoiceLogOptions struct {
	RawCommand        string
	InterpretedIntent string
	ActionTriggered   string
	ParserUsed        string
	Success           bool
}

// ListVoiceLogsOptions pages the voice log, newest first.
type ListVoiceLogsOptions struct {
	Limit int
}
