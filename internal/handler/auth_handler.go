package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"duesmanager/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService  service.AuthService
	cookieSecure bool
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, cookieSecure bool) *AuthHandler {
	return &AuthHandler{authService: authService, cookieSecure: cookieSecure}
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ChangePasswordRequest represents a password change.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6"`
}

// AuthResponse represents an authentication response.
type AuthResponse struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expires_at"`
	User      service.Profile `json:"user"`
}

func (h *AuthHandler) setSessionCookie(c echo.Context, token string, expires time.Time) {
	cookie := &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
	if token == "" {
		cookie.MaxAge = -1
	}
	c.SetCookie(cookie)
}

// Login godoc
// @Summary Login
// @Description Verifies the password and starts a session. The token is returned and also set as an HttpOnly cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	token, claims, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	expires := claims.ExpiresAt.Time
	h.setSessionCookie(c, token, expires)
	return c.JSON(http.StatusOK, AuthResponse{
		Token:     token,
		ExpiresAt: expires,
		User:      service.Profile{Email: claims.Email, Name: claims.Name, IsAdmin: claims.IsAdmin},
	})
}

// Logout godoc
// @Summary Logout
// @Description Revokes the current session and clears the cookie.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} MessageResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	claims, err := claimsFrom(c)
	if err != nil {
		return err
	}
	if err := h.authService.Logout(c.Request().Context(), claims); err != nil {
		return respondError(c, err)
	}

	h.setSessionCookie(c, "", time.Unix(0, 0))
	return c.JSON(http.StatusOK, MessageResponse{Message: "logged out successfully"})
}

// Session godoc
// @Summary Current session
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.Profile
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	claims, err := claimsFrom(c)
	if err != nil {
		return err
	}
	profile, err := h.authService.Session(c.Request().Context(), claims)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, profile)
}

// ChangePassword godoc
// @Summary Change own password
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ChangePasswordRequest true "Current and new password"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/password [put]
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	claims, err := claimsFrom(c)
	if err != nil {
		return err
	}
	var req ChangePasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.authService.ChangePassword(c.Request().Context(), claims.Email, req.CurrentPassword, req.NewPassword); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "password changed"})
}
