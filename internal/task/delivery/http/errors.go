package http

import (
	"errors"
	"net/http"

	"voice-task-management/internal/task"
	pkgErrors "voice-task-management/pkg/errors"
)

var (
	errIDRequired     = pkgErrors.NewHTTPError(http.StatusBadRequest, "id is required")
	errInvalidDueDate = pkgErrors.NewHTTPError(http.StatusBadRequest, "due_date must be YYYY-MM-DD or RFC3339")
)

// mapError translates task errors into HTTP errors. Unknown errors become 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, task.ErrEmptyTitle),
		errors.Is(err, task.ErrInvalidStatus),
		errors.Is(err, task.ErrInvalidPriority),
		errors.Is(err, task.ErrEmptyID):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
