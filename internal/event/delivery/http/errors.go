package http

import (
	"errors"
	"net/http"

	"integra-recife/internal/event"
	pkgErrors "integra-recife/pkg/errors"
)

var (
	errInvalidID = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid event id")

	errEventNotFound         = pkgErrors.NewHTTPError(http.StatusNotFound, event.ErrEventNotFound.Error())
	errInvalidWindow         = pkgErrors.NewHTTPError(http.StatusBadRequest, event.ErrInvalidWindow.Error())
	errInvalidDay            = pkgErrors.NewHTTPError(http.StatusBadRequest, event.ErrInvalidDay.Error())
	errInvalidStatus         = pkgErrors.NewHTTPError(http.StatusBadRequest, event.ErrInvalidStatus.Error())
	errCalendarNotConfigured = pkgErrors.NewHTTPError(http.StatusNotImplemented, event.ErrCalendarNotConfigured.Error())
	errCalendarSyncFailed    = pkgErrors.NewHTTPError(http.StatusBadGateway, event.ErrCalendarSyncFailed.Error())
)

// mapError maps domain errors to HTTP errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, event.ErrEventNotFound):
		return errEventNotFound
	case errors.Is(err, event.ErrInvalidWindow):
		return errInvalidWindow
	case errors.Is(err, event.ErrInvalidDay):
		return errInvalidDay
	case errors.Is(err, event.ErrInvalidStatus):
		return errInvalidStatus
	case errors.Is(err, event.ErrStoreUnavailable):
		return pkgErrors.ErrServiceUnavailable
	case errors.Is(err, event.ErrCalendarNotConfigured):
		return errCalendarNotConfigured
	case errors.Is(err, event.ErrCalendarSyncFailed):
		return errCalendarSyncFailed
	default:
		return pkgErrors.ErrInternalServerError
	}
}
