// Package handler holds the HTTP handlers of the API.
package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"duesmanager/internal/auth"
	"duesmanager/internal/errors"
)

// DateLayout is the format of dates in request bodies.
const DateLayout = "2006-01-02"

// SessionCookie is the name of the cookie carrying the session token.
const SessionCookie = "session"

// ContextKeyClaims is where the session middleware stores *auth.Claims.
const ContextKeyClaims = "user"

// MessageResponse is a plain acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}

// respondError maps a service error to the API error shape. Causes of
// server errors are logged, never returned.
func respondError(c echo.Context, err error) error {
	httpErr := errors.MapErrorToHTTP(err)
	if httpErr.StatusCode >= http.StatusInternalServerError {
		slog.ErrorContext(c.Request().Context(), "request failed",
			slog.String("method", c.Request().Method),
			slog.String("path", c.Path()),
			slog.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
			slog.Any("error", err),
		)
	}
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

func badRequest(message string) error {
	return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
		Error: message,
		Code:  "INVALID_INPUT",
	})
}

// bindAndValidate decodes the request body into req and validates it.
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return badRequest("invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return badRequest(err.Error())
	}
	return nil
}

// claimsFrom returns the session claims set by the session middleware.
func claimsFrom(c echo.Context) (*auth.Claims, error) {
	claims, ok := c.Get(ContextKeyClaims).(*auth.Claims)
	if !ok || claims == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Error: errors.ErrUnauthorized.Error(),
			Code:  "UNAUTHORIZED",
		})
	}
	return claims, nil
}

// parseDate reads a request date. Empty means unset.
func parseDate(field, s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be YYYY-MM-DD", errors.ErrInvalidInput, field)
	}
	return t, nil
}

// parseDatePtr is parseDate for optional update fields.
func parseDatePtr(field string, s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := parseDate(field, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// queryInt reads an optional integer query parameter.
func queryInt(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a number", errors.ErrInvalidInput, name)
	}
	return n, nil
}
