package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/idekita/idekita-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
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
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors map to deterministic HTTP codes. These two are
	// expected steady-state outcomes, not faults: the client shows a
	// specific message and must not retry.
	switch {
	case errors.Is(err, domain.ErrAlreadyEndorsed):
		return http.StatusConflict, "already endorsed"
	case errors.Is(err, domain.ErrHandleTaken):
		return http.StatusConflict, "username already taken"
	case errors.Is(err, domain.ErrAlreadyRegistered):
		return http.StatusConflict, "profile already registered"
	case errors.Is(err, domain.ErrInvalidHandle):
		return http.StatusUnprocessableEntity, "invalid username"
	case errors.Is(err, domain.ErrPostNotFound):
		return http.StatusNotFound, "post not found"
	case errors.Is(err, domain.ErrProfileNotFound):
		return http.StatusNotFound, "profile not found"
	}

	// Unexpected error (store failures included): log the real cause,
	// return a generic retryable message. Commits are atomic, so nothing
	// needs reconciling before a retry.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "something went wrong, try again"
}
