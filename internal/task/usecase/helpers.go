package usecase

import (
	"context"
	"time"

	"voice-task-management/internal/model"
	"voice-task-management/internal/task"
	"voice-task-management/pkg/gcalendar"
)

// validStatus returns def for an empty status.
func validStatus(s, def model.Status) (model.Status, error) {
	if s == "" {
		return def, nil
	}
	st, ok := model.ParseStatus(string(s))
	if !ok {
		return "", task.ErrInvalidStatus
	}
	return st, nil
}

func validPriority(p, def model.Priority) (model.Priority, error) {
	if p == "" {
		return def, nil
	}
	pr, ok := model.ParsePriority(string(p))
	if !ok {
		return "", task.ErrInvalidPriority
	}
	return pr, nil
}

// createEvent adds an all-day event on due and returns its id, or "" when
// sync is off or the call failed.
func (uc *implUseCase) createEvent(ctx context.Context, prefix, title, description string, due time.Time) string {
	if uc.calendar == nil {
		return ""
	}
	event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     title,
		Description: description,
		StartTime:   due,
		EndTime:     due.AddDate(0, 0, 1),
		AllDay:      true,
		Timezone:    uc.timezone,
	})
	if err != nil {
		uc.l.Warnf(ctx, "%s: calendar event creation failed for %q (non-fatal): %v", prefix, title, err)
		return ""
	}
	return event.ID
}

func (uc *implUseCase) deleteEvent(ctx context.Context, prefix, eventID string) {
	if uc.calendar == nil {
		return
	}
	if err := uc.calendar.DeleteEvent(ctx, uc.calendarID, eventID); err != nil {
		uc.l.Warnf(ctx, "%s: calendar event %s not removed (non-fatal): %v", prefix, eventID, err)
	}
}
