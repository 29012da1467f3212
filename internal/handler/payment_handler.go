package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"duesmanager/internal/errors"
	"duesmanager/internal/model"
	"duesmanager/internal/repository"
	"duesmanager/internal/service"
)

// PaymentHandler handles payment endpoints.
type PaymentHandler struct {
	paymentService service.PaymentService
}

// NewPaymentHandler creates a new payment handler.
func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// RecordPaymentRequest represents a dues payment to record.
type RecordPaymentRequest struct {
	MemberEmail string          `json:"member_email" validate:"required,email"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"string" example:"10.00"`
	Date        string          `json:"date" example:"2024-03-20"`
	Method      string          `json:"method" validate:"required,oneof=cash card transfer cheque"`
	Month       string          `json:"month" example:"March"`
	Year        int             `json:"year" example:"2024"`
	Status      string          `json:"status" validate:"omitempty,oneof=completed pending"`
}

// UpdatePaymentRequest represents a payment status change.
type UpdatePaymentRequest struct {
	Status string `json:"status" validate:"required,oneof=completed pending"`
}

func parsePaymentID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid payment ID",
			Code:  "INVALID_UUID",
		})
	}
	return id, nil
}

// ListPayments godoc
// @Summary List payments
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param member query string false "Member email"
// @Param year query int false "Dues year"
// @Param status query string false "Payment status" Enums(completed, pending)
// @Success 200 {array} model.Payment
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/payments [get]
func (h *PaymentHandler) ListPayments(c echo.Context) error {
	year, err := queryInt(c, "year")
	if err != nil {
		return respondError(c, err)
	}
	payments, err := h.paymentService.List(c.Request().Context(), repository.PaymentFilter{
		MemberEmail: c.QueryParam("member"),
		Year:        year,
		Status:      model.PaymentStatus(c.QueryParam("status")),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, payments)
}

// RecordPayment godoc
// @Summary Record payment
// @Description Stores a payment and recomputes the member's totals. On the spreadsheet backend a failed totals update is reported in "warning".
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body RecordPaymentRequest true "Payment data"
// @Success 201 {object} service.PaymentResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/payments [post]
func (h *PaymentHandler) RecordPayment(c echo.Context) error {
	var req RecordPaymentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	date, err := parseDate("date", req.Date)
	if err != nil {
		return respondError(c, err)
	}

	result, err := h.paymentService.Record(c.Request().Context(), service.PaymentInput{
		MemberEmail: req.MemberEmail,
		Amount:      req.Amount,
		Date:        date,
		Method:      model.PaymentMethod(req.Method),
		Month:       req.Month,
		Year:        req.Year,
		Status:      model.PaymentStatus(req.Status),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, result)
}

// UpdatePayment godoc
// @Summary Update payment status
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Payment ID"
// @Param request body UpdatePaymentRequest true "New status"
// @Success 200 {object} service.PaymentResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/payments/{id} [put]
func (h *PaymentHandler) UpdatePayment(c echo.Context) error {
	id, err := parsePaymentID(c)
	if err != nil {
		return err
	}
	var req UpdatePaymentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	result, err := h.paymentService.UpdateStatus(c.Request().Context(), id, model.PaymentStatus(req.Status))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// DeletePayment godoc
// @Summary Delete payment
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Payment ID"
// @Success 200 {object} service.PaymentResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/payments/{id} [delete]
func (h *PaymentHandler) DeletePayment(c echo.Context) error {
	id, err := parsePaymentID(c)
	if err != nil {
		return err
	}
	result, err := h.paymentService.Delete(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}
