package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"duesmanager/internal/model"
	"duesmanager/internal/repository"
	"duesmanager/internal/service"
)

// MemberHandler handles admin member endpoints.
type MemberHandler struct {
	memberService service.MemberService
}

// NewMemberHandler creates a new member handler.
func NewMemberHandler(memberService service.MemberService) *MemberHandler {
	return &MemberHandler{memberService: memberService}
}

// CreateMemberRequest represents a new member. Dates are YYYY-MM-DD.
type CreateMemberRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Name        string `json:"name" validate:"required"`
	Password    string `json:"password" validate:"omitempty,min=6"`
	IsAdmin     bool   `json:"is_admin"`
	Phone       string `json:"phone"`
	JoinDate    string `json:"join_date"`
	Birthday    string `json:"birthday"`
	Anniversary string `json:"anniversary"`
	Status      string `json:"status" validate:"omitempty,oneof=active inactive on-leave"`
}

// UpdateMemberRequest holds the member fields to change. Omitted fields are
// kept; an empty date clears it.
type UpdateMemberRequest struct {
	Name        *string `json:"name"`
	Password    *string `json:"password" validate:"omitempty,min=6"`
	IsAdmin     *bool   `json:"is_admin"`
	Phone       *string `json:"phone"`
	JoinDate    *string `json:"join_date"`
	Birthday    *string `json:"birthday"`
	Anniversary *string `json:"anniversary"`
	Status      *string `json:"status" validate:"omitempty,oneof=active inactive on-leave"`
}

func (r CreateMemberRequest) input() (service.MemberInput, error) {
	in := service.MemberInput{
		Email:    r.Email,
		Name:     r.Name,
		Password: r.Password,
		IsAdmin:  r.IsAdmin,
		Phone:    r.Phone,
		Status:   model.MemberStatus(r.Status),
	}
	var err error
	if in.JoinDate, err = parseDate("join_date", r.JoinDate); err != nil {
		return in, err
	}
	if in.Birthday, err = parseDate("birthday", r.Birthday); err != nil {
		return in, err
	}
	if in.Anniversary, err = parseDate("anniversary", r.Anniversary); err != nil {
		return in, err
	}
	return in, nil
}

func (r UpdateMemberRequest) input() (service.MemberUpdate, error) {
	in := service.MemberUpdate{
		Name:     r.Name,
		Password: r.Password,
		IsAdmin:  r.IsAdmin,
		Phone:    r.Phone,
	}
	if r.Status != nil {
		status := model.MemberStatus(*r.Status)
		in.Status = &status
	}
	var err error
	if in.JoinDate, err = parseDatePtr("join_date", r.JoinDate); err != nil {
		return in, err
	}
	if in.Birthday, err = parseDatePtr("birthday", r.Birthday); err != nil {
		return in, err
	}
	if in.Anniversary, err = parseDatePtr("anniversary", r.Anniversary); err != nil {
		return in, err
	}
	return in, nil
}

// ListMembers godoc
// @Summary List members
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status" Enums(active, inactive, on-leave)
// @Param q query string false "Search name or email"
// @Success 200 {array} model.Member
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/members [get]
func (h *MemberHandler) ListMembers(c echo.Context) error {
	members, err := h.memberService.List(c.Request().Context(), repository.MemberFilter{
		Status: model.MemberStatus(c.QueryParam("status")),
		Search: c.QueryParam("q"),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, members)
}

// CreateMember godoc
// @Summary Create member
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateMemberRequest true "Member data"
// @Success 201 {object} model.Member
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/members [post]
func (h *MemberHandler) CreateMember(c echo.Context) error {
	var req CreateMemberRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	in, err := req.input()
	if err != nil {
		return respondError(c, err)
	}

	member, err := h.memberService.Create(c.Request().Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, member)
}

// GetMember godoc
// @Summary Get member
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param email path string true "Member email"
// @Success 200 {object} service.MemberProfile
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/members/{email} [get]
func (h *MemberHandler) GetMember(c echo.Context) error {
	profile, err := h.memberService.Profile(c.Request().Context(), c.Param("email"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, profile)
}

// UpdateMember godoc
// @Summary Update member
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param email path string true "Member email"
// @Param request body UpdateMemberRequest true "Fields to change"
// @Success 200 {object} model.Member
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/members/{email} [put]
func (h *MemberHandler) UpdateMember(c echo.Context) error {
	var req UpdateMemberRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	in, err := req.input()
	if err != nil {
		return respondError(c, err)
	}

	member, err := h.memberService.Update(c.Request().Context(), c.Param("email"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, member)
}

// DeleteMember godoc
// @Summary Delete member
// @Description Removes the member and their payments. A login record, if any, is kept.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param email path string true "Member email"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/members/{email} [delete]
func (h *MemberHandler) DeleteMember(c echo.Context) error {
	if err := h.memberService.Delete(c.Request().Context(), c.Param("email")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "member deleted"})
}

// MemberStatus godoc
// @Summary Member dues status
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param email path string true "Member email"
// @Param year query int false "Year, defaults to the current year"
// @Success 200 {object} service.StatusView
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/members/{email}/status [get]
func (h *MemberHandler) MemberStatus(c echo.Context) error {
	year, err := queryInt(c, "year")
	if err != nil {
		return respondError(c, err)
	}
	view, err := h.memberService.Status(c.Request().Context(), c.Param("email"), year)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, view)
}

// Dashboard godoc
// @Summary Dues dashboard
// @Description Totals for active members plus a summary row for every member.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param year query int false "Year, defaults to the current year"
// @Success 200 {object} service.Dashboard
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/dashboard [get]
func (h *MemberHandler) Dashboard(c echo.Context) error {
	year, err := queryInt(c, "year")
	if err != nil {
		return respondError(c, err)
	}
	dashboard, err := h.memberService.Dashboard(c.Request().Context(), year)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dashboard)
}

// Celebrations godoc
// @Summary Upcoming birthdays and anniversaries
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param days query int false "Window in days" default(30)
// @Success 200 {array} service.Celebration
// @Failure 400 {object} errors.ErrorResponse
// @Router /admin/celebrations [get]
func (h *MemberHandler) Celebrations(c echo.Context) error {
	days := 30
	if c.QueryParam("days") != "" {
		var err error
		if days, err = queryInt(c, "days"); err != nil {
			return respondError(c, err)
		}
	}
	celebrations, err := h.memberService.Celebrations(c.Request().Context(), days)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, celebrations)
}

// Consistency godoc
// @Summary Users and members drift report
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.ConsistencyReport
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/consistency [get]
func (h *MemberHandler) Consistency(c echo.Context) error {
	report, err := h.memberService.Consistency(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, report)
}
