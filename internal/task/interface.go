package task

import (
	"context"

	"voice-task-management/internal/model"
)

// UseCase is the task list business logic.
//
//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, input CreateInput) (model.Task, error)
	Detail(ctx context.Context, id string) (model.Task, error)
	List(ctx context.Context, input ListInput) ([]model.Task, error)
	Update(ctx context.Context, input UpdateInput) (model.Task, error)
	Delete(ctx context.Context, id string) error
	MarkComplete(ctx context.Context, id string) (model.Task, error)
	DeleteAll(ctx context.Context) (int, error)
}
