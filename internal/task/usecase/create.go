package usecase

import (
	"context"
	"strings"

	"voice-task-management/internal/model"
	"voice-task-management/internal/task"
	"voice-task-management/internal/task/repository"
)

// Create stores a task and, when it has a due date, adds a calendar event.
// Calendar failures are logged and do not fail the call.
func (uc *implUseCase) Create(ctx context.Context, input task.CreateInput) (model.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return model.Task{}, task.ErrEmptyTitle
	}
	status, err := validStatus(input.Status, model.StatusPending)
	if err != nil {
		return model.Task{}, err
	}
	priority, err := validPriority(input.Priority, model.PriorityMedium)
	if err != nil {
		return model.Task{}, err
	}

	opt := repository.CreateTaskOptions{
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		Status:      status,
		Priority:    priority,
		DueDate:     input.DueDate,
	}
	if input.DueDate != nil {
		opt.CalendarEventID = uc.createEvent(ctx, logPrefixCreate, title, opt.Description, *input.DueDate)
	}

	t, err := uc.repo.CreateTask(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "%s: %v", logPrefixCreate, err)
		if opt.CalendarEventID != "" {
			uc.deleteEvent(ctx, logPrefixCreate, opt.CalendarEventID)
		}
		return model.Task{}, err
	}

	uc.l.Infof(ctx, "%s: created task id=%s title=%q", logPrefixCreate, t.ID, t.Title)
	return t, nil
}
