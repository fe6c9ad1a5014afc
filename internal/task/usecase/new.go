package usecase

import (
	"context"
	"time"

	"voice-task-management/internal/task"
	"voice-task-management/internal/task/repository"
	"voice-task-management/pkg/gcalendar"
	pkgLog "voice-task-management/pkg/log"
)

// Calendar is the slice of the Google Calendar client the task flow uses.
type Calendar interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
}

type implUseCase struct {
	l          pkgLog.Logger
	repo       repository.TaskRepository
	calendar   Calendar
	calendarID string
	timezone   string
	now        func() time.Time
}

// New creates a task UseCase. calendar may be nil to disable event sync.
func New(l pkgLog.Logger, repo repository.TaskRepository, calendar Calendar, calendarID, timezone string) task.UseCase {
	return &implUseCase{
		l:          l,
		repo:       repo,
		calendar:   calendar,
		calendarID: calendarID,
		timezone:   timezone,
		now:        time.Now,
	}
}
