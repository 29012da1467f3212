package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"not found", ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"wrapped not found", fmt.Errorf("get member: %w", ErrNotFound), http.StatusNotFound, "NOT_FOUND"},
		{"duplicate email", ErrEmailExists, http.StatusConflict, "EMAIL_EXISTS"},
		{"bad login", ErrInvalidCredentials, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
		{"not admin", ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
		{"bad amount", ErrInvalidAmount, http.StatusBadRequest, "INVALID_AMOUNT"},
		{"bad kind", ErrInvalidKind, http.StatusBadRequest, "INVALID_EMAIL_TYPE"},
		{"provider failure", fmt.Errorf("sendgrid: 401: %w", ErrSendFailed), http.StatusInternalServerError, "SEND_FAILED"},
		{"unknown", fmt.Errorf("sheets: quota exceeded"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapErrorToHTTP(tt.err)
			assert.Equal(t, tt.status, got.StatusCode)
			assert.Equal(t, tt.code, got.Code)
		})
	}
}

func TestMapErrorToHTTPHidesCause(t *testing.T) {
	got := MapErrorToHTTP(fmt.Errorf("read Members: googleapi: Error 403: secret detail"))
	assert.Equal(t, "internal server error", got.Message)

	got = MapErrorToHTTP(fmt.Errorf("sendgrid status 401 body=bad key: %w", ErrSendFailed))
	assert.Equal(t, "failed to send email", got.Message)
}

func TestInvalidInputKeepsDetail(t *testing.T) {
	got := MapErrorToHTTP(fmt.Errorf("%w: month %q", ErrInvalidInput, "Smarch"))
	assert.Equal(t, http.StatusBadRequest, got.StatusCode)
	assert.Contains(t, got.Message, "Smarch")
}
