package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"duesmanager/internal/service"
)

// AccountHandler serves the signed-in member's own records.
type AccountHandler struct {
	memberService service.MemberService
}

// NewAccountHandler creates a new account handler.
func NewAccountHandler(memberService service.MemberService) *AccountHandler {
	return &AccountHandler{memberService: memberService}
}

// Profile godoc
// @Summary Own member profile
// @Description Returns the signed-in member with their payment history and dues summary.
// @Tags members
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.MemberProfile
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /members [get]
func (h *AccountHandler) Profile(c echo.Context) error {
	claims, err := claimsFrom(c)
	if err != nil {
		return err
	}
	profile, err := h.memberService.Profile(c.Request().Context(), claims.Email)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, profile)
}

// Status godoc
// @Summary Own dues status
// @Description Twelve-month dues status of the signed-in member.
// @Tags members
// @Produce json
// @Security BearerAuth
// @Param year query int false "Year, defaults to the current year"
// @Success 200 {object} service.StatusView
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /members/status [get]
func (h *AccountHandler) Status(c echo.Context) error {
	claims, err := claimsFrom(c)
	if err != nil {
		return err
	}
	year, err := queryInt(c, "year")
	if err != nil {
		return respondError(c, err)
	}
	view, err := h.memberService.Status(c.Request().Context(), claims.Email, year)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, view)
}
