package http

import (
	"errors"
	"net/http"

	"voice-task-management/internal/voice"
	pkgErrors "voice-task-management/pkg/errors"
)

var errInvalidNow = pkgErrors.NewHTTPError(http.StatusBadRequest, "now must be RFC3339")

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, voice.ErrInvalidEngine):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, voice.ErrEmptyCommand):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
