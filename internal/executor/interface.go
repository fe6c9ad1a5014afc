package executor

import (
	"context"

	"voice-task-management/internal/command"
	"voice-task-management/internal/model"
)

// TaskStore is the set of task mutations and queries commands run against.
//
//go:generate mockery --name TaskStore
type TaskStore interface {
	ListTasks(ctx context.Context) ([]model.Task, error)
	CreateTask(ctx context.Context, title string, u command.Updates) (model.Task, error)
	UpdateTask(ctx context.Context, id string, u command.Updates) (model.Task, error)
	DeleteTask(ctx context.Context, id string) error
	MarkComplete(ctx context.Context, id string) (model.Task, error)
	DeleteAllTasks(ctx context.Context) (int, error)
}
