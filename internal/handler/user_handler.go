package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"duesmanager/internal/service"
)

// UserHandler bundles login record handlers.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a handler layer.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// CreateUserRequest represents a new login record.
type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
	IsAdmin  bool   `json:"is_admin"`
}

// UpdateUserRequest holds the login record fields to change.
type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Password *string `json:"password" validate:"omitempty,min=6"`
	IsAdmin  *bool   `json:"is_admin"`
}

// CreateUser godoc
// @Summary Create user
// @Description Creates a login record, and a member joining today if none exists.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param user body CreateUserRequest true "User payload"
// @Success 201 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users [post]
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req CreateUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	created, err := h.svc.Create(c.Request().Context(), service.UserInput{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
		IsAdmin:  req.IsAdmin,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdateUser godoc
// @Summary Update user
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param email path string true "User email"
// @Param user body UpdateUserRequest true "Fields to change"
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{email} [put]
func (h *UserHandler) UpdateUser(c echo.Context) error {
	var req UpdateUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	user, err := h.svc.Update(c.Request().Context(), c.Param("email"), service.UserUpdate{
		Name:     req.Name,
		Password: req.Password,
		IsAdmin:  req.IsAdmin,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

// DeleteUser godoc
// @Summary Delete user
// @Description Removes the login record only.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param email path string true "User email"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{email} [delete]
func (h *UserHandler) DeleteUser(c echo.Context) error {
	if err := h.svc.Delete(c.Request().Context(), c.Param("email")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "user deleted"})
}

// ListUsers godoc
// @Summary List users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.User
// @Router /users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.svc.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, users)
}
