package usecase

import (
	"context"

	"voice-task-management/internal/model"
	"voice-task-management/internal/task"
	"voice-task-management/internal/task/repository"
)

// List returns the tasks matching input, oldest first.
func (uc *implUseCase) List(ctx context.Context, input task.ListInput) ([]model.Task, error) {
	status, err := validStatus(input.Status, "")
	if err != nil {
		return nil, err
	}
	priority, err := validPriority(input.Priority, "")
	if err != nil {
		return nil, err
	}
	return uc.repo.ListTasks(ctx, repository.ListTasksOptions{
		Status:   status,
		Priority: priority,
		Limit:    input.Limit,
		Offset:   input.Offset,
	})
}

// Detail returns one task or task.ErrNotFound.
func (uc *implUseCase) Detail(ctx context.Context, id string) (model.Task, error) {
	if id == "" {
		return model.Task{}, task.ErrEmptyID
	}
	t, err := uc.repo.GetTask(ctx, id)
	if err != nil {
		return model.Task{}, err
	}
	if t.ID == "" {
		return model.Task{}, task.ErrNotFound
	}
	return t, nil
}
