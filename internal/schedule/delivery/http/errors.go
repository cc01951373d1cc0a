package http

import (
	"errors"

	"schedule-assistant/internal/schedule"
	pkgErrors "schedule-assistant/pkg/errors"
	"schedule-assistant/pkg/llmchat"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, schedule.ErrEmptyInput):
		return pkgErrors.NewHTTPError(400, "request text is empty")
	case errors.Is(err, schedule.ErrInvalidIntent):
		return pkgErrors.NewHTTPError(400, "intent is invalid")
	case errors.Is(err, schedule.ErrNoDestination):
		return pkgErrors.NewHTTPError(400, "no calendar available to create into")
	case errors.Is(err, schedule.ErrNotAuthorized):
		return pkgErrors.NewHTTPError(403, "calendar access not granted")
	case schedule.IsNotFound(err):
		return pkgErrors.NewHTTPError(404, err.Error())
	case errors.Is(err, llmchat.ErrTransport), errors.Is(err, llmchat.ErrProtocol):
		return pkgErrors.NewHTTPError(502, "model backend failure")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
