package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/cofd-tools/character-api/internal/api/handler"
	"github.com/cofd-tools/character-api/internal/api/metrics"
	"github.com/cofd-tools/character-api/internal/core/domain"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their HTTP status codes.
//   - Logs unexpected errors without leaking details to the client.
//   - Renders a consistent JSON envelope: {"message": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg, kind := resolveError(err, log, c)
		metrics.ErrorsTotal.WithLabelValues(kind).Inc()

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, handler.ErrorResponse{Message: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string, string) {
	// Echo's own errors (bind failures, unknown routes, auth middleware).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message), kindForStatus(he.Code)
	}

	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusUnprocessableEntity, err.Error(), "validation"
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, err.Error(), "validation"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "Not found", "not_found"
	case errors.Is(err, domain.ErrDuplicateName):
		return http.StatusBadRequest, "The merit name already exists", "conflict"
	case errors.Is(err, domain.ErrDuplicateUsername):
		return http.StatusBadRequest, "The username already exists", "conflict"
	case errors.Is(err, domain.ErrUnauthenticated), errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Unauthorized", "unauthorized"
	}

	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Internal server error", "internal"
}

func kindForStatus(code int) string {
	switch {
	case code == http.StatusUnauthorized:
		return "unauthorized"
	case code == http.StatusNotFound:
		return "not_found"
	case code >= http.StatusInternalServerError:
		return "internal"
	}
	return "validation"
}
