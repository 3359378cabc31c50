package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/futsalhub/booking-system/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that maps booking
// errors to status codes and renders {"error": "<message>"}. Unexpected
// errors are logged and reported as a generic 500.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, router 404/405, validation).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	if code, ok := StatusFor(err); ok {
		return code, err.Error()
	}

	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}

// StatusFor reports the HTTP status for a known booking error.
func StatusFor(err error) (int, bool) {
	switch {
	case errors.Is(err, domain.ErrDuplicateHandle),
		errors.Is(err, domain.ErrSlotUnavailable):
		return http.StatusConflict, true
	case errors.Is(err, domain.ErrMissingField),
		errors.Is(err, domain.ErrInvalidRate),
		errors.Is(err, domain.ErrUnknownSlot),
		errors.Is(err, domain.ErrUnknownRole):
		return http.StatusBadRequest, true
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized, true
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, true
	case errors.Is(err, domain.ErrFacilityNotFound),
		errors.Is(err, domain.ErrIdentityNotFound):
		return http.StatusNotFound, true
	}
	return 0, false
}
