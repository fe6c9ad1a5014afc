package usecase

import (
	"context"
	"strings"

	"voice-task-management/internal/model"
	"voice-task-management/internal/task"
	"voice-task-management/internal/task/repository"
)

// Update applies the fields set in input. Moving to completed stamps
// CompletedAt; moving away clears it. A changed due date moves the
// calendar event.
func (uc *implUseCase) Update(ctx context.Context, input task.UpdateInput) (model.Task, error) {
	current, err := uc.Detail(ctx, input.ID)
	if err != nil {
		return model.Task{}, err
	}

	opt := repository.UpdateTaskOptions{
		ID:              current.ID,
		Title:           current.Title,
		Description:     current.Description,
		Status:          current.Status,
		Priority:        current.Priority,
		DueDate:         current.DueDate,
		CompletedAt:     current.CompletedAt,
		CalendarEventID: current.CalendarEventID,
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return model.Task{}, task.ErrEmptyTitle
		}
		opt.Title = title
	}
	if input.Description != nil {
		opt.Description = strings.TrimSpace(*input.Description)
	}
	if opt.Status, err = validStatus(input.Status, current.Status); err != nil {
		return model.Task{}, err
	}
	if opt.Priority, err = validPriority(input.Priority, current.Priority); err != nil {
		return model.Task{}, err
	}

	switch {
	case opt.Status == model.StatusCompleted && current.Status != model.StatusCompleted:
		now := uc.now()
		opt.CompletedAt = &now
	case opt.Status != model.StatusCompleted:
		opt.CompletedAt = nil
	}

	dueChanged := false
	switch {
	case input.ClearDueDate:
		dueChanged = current.DueDate != nil
		opt.DueDate = nil
	case input.DueDate != nil:
		dueChanged = current.DueDate == nil || !current.DueDate.Equal(*input.DueDate)
		opt.DueDate = input.DueDate
	}

	updated, err := uc.repo.UpdateTask(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "%s: %v", logPrefixUpdate, err)
		return model.Task{}, err
	}
	if updated.ID == "" {
		return model.Task{}, task.ErrNotFound
	}
	if !dueChanged {
		return updated, nil
	}

	return uc.moveEvent(ctx, updated, opt)
}

// moveEvent replaces the calendar event of a stored task whose due date
// changed. The old event is removed only after the new id is stored.
func (uc *implUseCase) moveEvent(ctx context.Context, updated model.Task, opt repository.UpdateTaskOptions) (model.Task, error) {
	eventID := ""
	if updated.DueDate != nil {
		eventID = uc.createEvent(ctx, logPrefixUpdate, updated.Title, updated.Description, *updated.DueDate)
	}
	if eventID == updated.CalendarEventID {
		return updated, nil
	}

	opt.CalendarEventID = eventID
	synced, err := uc.repo.UpdateTask(ctx, opt)
	if err != nil || synced.ID == "" {
		uc.l.Errorf(ctx, "%s: store event id for task %s: %v", logPrefixUpdate, updated.ID, err)
		if eventID != "" {
			uc.deleteEvent(ctx, logPrefixUpdate, eventID)
		}
		return updated, nil
	}
	if updated.CalendarEventID != "" {
		uc.deleteEvent(ctx, logPrefixUpdate, updated.CalendarEventID)
	}
	return synced, nil
}

// MarkComplete sets the status to completed.
func (uc *implUseCase) MarkComplete(ctx context.Context, id string) (model.Task, error) {
	return uc.Update(ctx, task.UpdateInput{ID: id, Status: model.StatusCompleted})
}

// Delete removes a task and its calendar event.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	current, err := uc.Detail(ctx, id)
	if err != nil {
		return err
	}
	deleted, err := uc.repo.DeleteTask(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "%s: %v", logPrefixDelete, err)
		return err
	}
	if !deleted {
		return task.ErrNotFound
	}
	if current.CalendarEventID != "" {
		uc.deleteEvent(ctx, logPrefixDelete, current.CalendarEventID)
	}
	return nil
}

// DeleteAll removes every task and returns how many were removed.
func (uc *implUseCase) DeleteAll(ctx context.Context) (int, error) {
	var events []string
	if uc.calendar != nil {
		tasks, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{})
		if err != nil {
			return 0, err
		}
		for _, t := range tasks {
			if t.CalendarEventID != "" {
				events = append(events, t.CalendarEventID)
			}
		}
	}

	n, err := uc.repo.DeleteAllTasks(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "%s: %v", logPrefixDeleteAll, err)
		return 0, err
	}
	for _, id := range events {
		uc.deleteEvent(ctx, logPrefixDeleteAll, id)
	}
	uc.l.Infof(ctx, "%s: deleted %d tasks", logPrefixDeleteAll, n)
	return n, nil
}
