package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"duesmanager/internal/auth"
	"duesmanager/internal/errors"
)

func newContext(target string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestParseDate(t *testing.T) {
	d, err := parseDate("join_date", "2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), d)

	d, err = parseDate("join_date", " ")
	require.NoError(t, err)
	assert.True(t, d.IsZero())

	_, err = parseDate("join_date", "15/03/2024")
	assert.ErrorIs(t, err, errors.ErrInvalidInput)
	assert.Contains(t, err.Error(), "join_date")
}

func TestParseDatePtr(t *testing.T) {
	d, err := parseDatePtr("birthday", nil)
	require.NoError(t, err)
	assert.Nil(t, d)

	empty := ""
	d, err = parseDatePtr("birthday", &empty)
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.True(t, d.IsZero())
}

func TestQueryInt(t *testing.T) {
	n, err := queryInt(newContext("/?year=2023"), "year")
	require.NoError(t, err)
	assert.Equal(t, 2023, n)

	n, err = queryInt(newContext("/"), "year")
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = queryInt(newContext("/?year=twenty"), "year")
	assert.ErrorIs(t, err, errors.ErrInvalidInput)
}

func TestRespondError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody errors.ErrorResponse
	}{
		{
			name:     "wrapped not found",
			err:      fmt.Errorf("get member x: %w", errors.ErrNotFound),
			wantCode: http.StatusNotFound,
			wantBody: errors.ErrorResponse{Error: errors.ErrNotFound.Error(), Code: "NOT_FOUND"},
		},
		{
			name:     "unknown error hides detail",
			err:      fmt.Errorf("googleapi: Error 503: backend unavailable"),
			wantCode: http.StatusInternalServerError,
			wantBody: errors.ErrorResponse{Error: "internal server error", Code: "INTERNAL_ERROR"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := respondError(newContext("/"), tt.err)
			var he *echo.HTTPError
			require.ErrorAs(t, err, &he)
			assert.Equal(t, tt.wantCode, he.Code)
			assert.Equal(t, tt.wantBody, he.Message)
		})
	}
}

func TestClaimsFrom(t *testing.T) {
	c := newContext("/")
	_, err := claimsFrom(c)
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusUnauthorized, he.Code)

	c.Set(ContextKeyClaims, &auth.Claims{Email: "a@example.com"})
	claims, err := claimsFrom(c)
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", claims.Email)
}

func TestUpdateMemberRequestInput(t *testing.T) {
	status := "inactive"
	join := "2024-01-31"
	in, err := UpdateMemberRequest{Status: &status, JoinDate: &join}.input()
	require.NoError(t, err)
	require.NotNil(t, in.Status)
	assert.EqualValues(t, "inactive", *in.Status)
	require.NotNil(t, in.JoinDate)
	assert.Equal(t, time.January, in.JoinDate.Month())
	assert.Nil(t, in.Birthday)

	bad := "31-01-2024"
	_, err = UpdateMemberRequest{Birthday: &bad}.input()
	assert.ErrorIs(t, err, errors.ErrInvalidInput)
}
