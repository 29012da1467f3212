package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"duesmanager/internal/service"
)

// SeedHandler handles bulk member import.
type SeedHandler struct {
	memberService service.MemberService
}

// NewSeedHandler creates a new seed handler.
func NewSeedHandler(memberService service.MemberService) *SeedHandler {
	return &SeedHandler{memberService: memberService}
}

// ImportMembersResponse represents the import outcome.
type ImportMembersResponse struct {
	Message string   `json:"message"`
	Count   int      `json:"count"`
	Skipped []string `json:"skipped,omitempty"`
}

// ImportMembers godoc
// @Summary Import members
// @Description Creates or updates members from a JSON array. Existing members keep their password.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body []service.ImportRecord true "Members"
// @Success 200 {object} ImportMembersResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/members/import [post]
func (h *SeedHandler) ImportMembers(c echo.Context) error {
	var records []service.ImportRecord
	if err := c.Bind(&records); err != nil {
		return badRequest("invalid request body")
	}

	members, skipped := service.ConvertImport(records)
	count, err := h.memberService.Import(c.Request().Context(), members)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, ImportMembersResponse{
		Message: "members imported successfully",
		Count:   count,
		Skipped: skipped,
	})
}
