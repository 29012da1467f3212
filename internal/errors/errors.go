package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrNotFound is returned when a member, payment or user does not exist.
	ErrNotFound = errors.New("not found")
	// ErrEmailExists is returned when creating a record whose email is taken.
	ErrEmailExists = errors.New("email already exists")
	// ErrInvalidCredentials is returned when login fails.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrUnauthorized is returned when no valid session is present.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden is returned when a non-admin calls an admin operation.
	ErrForbidden = errors.New("admin access required")
	// ErrInvalidInput is returned when a request fails validation.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidAmount is returned when a payment amount is not positive.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInvalidKind is returned for an unknown email template kind.
	ErrInvalidKind = errors.New("unknown email type")
	// ErrNoRecipients is returned when a bulk send resolves to nobody.
	ErrNoRecipients = errors.New("no recipients")
	// ErrSendFailed is returned when the mail provider rejects a message.
	ErrSendFailed = errors.New("failed to send email")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors, possibly wrapped, to HTTP errors.
// Anything unrecognized is a 500 with a fixed message.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrNotFound):
		return NewHTTPError(http.StatusNotFound, ErrNotFound.Error(), "NOT_FOUND")
	case errors.Is(err, ErrEmailExists):
		return NewHTTPError(http.StatusConflict, ErrEmailExists.Error(), "EMAIL_EXISTS")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, ErrInvalidCredentials.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrUnauthorized):
		return NewHTTPError(http.StatusUnauthorized, ErrUnauthorized.Error(), "UNAUTHORIZED")
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, ErrForbidden.Error(), "FORBIDDEN")
	case errors.Is(err, ErrInvalidInput):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_INPUT")
	case errors.Is(err, ErrInvalidAmount):
		return NewHTTPError(http.StatusBadRequest, ErrInvalidAmount.Error(), "INVALID_AMOUNT")
	case errors.Is(err, ErrInvalidKind):
		return NewHTTPError(http.StatusBadRequest, ErrInvalidKind.Error(), "INVALID_EMAIL_TYPE")
	case errors.Is(err, ErrNoRecipients):
		return NewHTTPError(http.StatusBadRequest, ErrNoRecipients.Error(), "NO_RECIPIENTS")
	case errors.Is(err, ErrSendFailed):
		return NewHTTPError(http.StatusInternalServerError, ErrSendFailed.Error(), "SEND_FAILED")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
