package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"duesmanager/internal/service"
)

// EmailHandler handles outgoing member email.
type EmailHandler struct {
	emailService service.EmailService
}

// NewEmailHandler creates a new email handler.
func NewEmailHandler(emailService service.EmailService) *EmailHandler {
	return &EmailHandler{emailService: emailService}
}

// SendEmailRequest asks for one templated email.
type SendEmailRequest struct {
	Type  string `json:"type" validate:"required" enums:"birthday,anniversary,payment_reminder,dues_status"`
	Email string `json:"email" validate:"required,email"`
}

// BulkEmailRequest asks for a templated email to many members. No emails
// means every active member.
type BulkEmailRequest struct {
	Type   string   `json:"type" validate:"required" enums:"birthday,anniversary,payment_reminder,dues_status"`
	Emails []string `json:"emails"`
}

// SendEmail godoc
// @Summary Send one email
// @Tags email
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SendEmailRequest true "Template and recipient"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /email/send [post]
func (h *EmailHandler) SendEmail(c echo.Context) error {
	var req SendEmailRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if err := h.emailService.Send(c.Request().Context(), service.EmailKind(req.Type), req.Email); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "email sent"})
}

// SendBulk godoc
// @Summary Send email to many members
// @Description Per-recipient failures are counted, not fatal.
// @Tags email
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body BulkEmailRequest true "Template and optional recipients"
// @Success 200 {object} service.BulkResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /email/bulk [post]
func (h *EmailHandler) SendBulk(c echo.Context) error {
	var req BulkEmailRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	result, err := h.emailService.SendBulk(c.Request().Context(), service.EmailKind(req.Type), req.Emails)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// SendCelebrations godoc
// @Summary Send today's greetings
// @Description Emails every active member whose birthday or anniversary is today.
// @Tags email
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.BulkResult
// @Failure 500 {object} errors.ErrorResponse
// @Router /email/celebrations [post]
func (h *EmailHandler) SendCelebrations(c echo.Context) error {
	result, err := h.emailService.SendCelebrations(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}
