package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/secureweather/weather-gateway/internal/core/domain"
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

	// Known domain errors → deterministic status codes and messages.
	// Duplicate-user and credential failures all flatten to 400; clients
	// distinguish them by message only.
	switch {
	case errors.Is(err, domain.ErrMissingCredentials):
		return http.StatusBadRequest, "Email and password are required"
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusBadRequest, "User already exists"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusBadRequest, "User not found"
	case errors.Is(err, domain.ErrWrongPassword):
		return http.StatusBadRequest, "Wrong password"
	case errors.Is(err, domain.ErrMissingToken):
		return http.StatusUnauthorized, "Missing token"
	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusUnauthorized, "Invalid token"
	case errors.Is(err, domain.ErrCityRequired):
		return http.StatusBadRequest, "City required"
	case errors.Is(err, domain.ErrWeatherUpstream):
		return http.StatusInternalServerError, "Error from weather API"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, genericMessage(c.Path())
}

// genericMessage keeps the historical per-route 500 wording.
func genericMessage(path string) string {
	switch path {
	case "/register":
		return "Server error during register"
	case "/login":
		return "Server error during login"
	case "/weather":
		return "Server error during weather fetch"
	}
	return "internal server error"
}
