package usecase

import (
	"context"

	"voice-task-management/internal/command"
	"voice-task-management/internal/executor"
	"voice-task-management/internal/model"
	"voice-task-management/internal/task"
)

type taskStore struct {
	uc task.UseCase
}

// NewTaskStore adapts a task.UseCase to the executor's TaskStore.
func NewTaskStore(uc task.UseCase) executor.TaskStore {
	return taskStore{uc: uc}
}

func (s taskStore) ListTasks(ctx context.Context) ([]model.Task, error) {
	return s.uc.List(ctx, task.ListInput{})
}

func (s taskStore) CreateTask(ctx context.Context, title string, u command.Updates) (model.Task, error) {
	return s.uc.Create(ctx, task.CreateInput{
		Title:    title,
		Status:   u.Status,
		Priority: u.Priority,
		DueDate:  u.DueDate,
	})
}

func (s taskStore) UpdateTask(ctx context.Context, id string, u command.Updates) (model.Task, error) {
	return s.uc.Update(ctx, task.UpdateInput{
		ID:       id,
		Status:   u.Status,
		Priority: u.Priority,
		DueDate:  u.DueDate,
	})
}

func (s taskStore) DeleteTask(ctx context.Context, id string) error {
	return s.uc.Delete(ctx, id)
}

func (s taskStore) MarkComplete(ctx context.Context, id string) (model.Task, error) {
	return s.uc.MarkComplete(ctx, id)
}

func (s taskStore) DeleteAllTasks(ctx context.Context) (int, error) {
	return s.uc.DeleteAll(ctx)
}
