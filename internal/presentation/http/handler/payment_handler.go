package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/zakirya592/rk-co-pos-sub002/internal/application/service"
	"github.com/zakirya592/rk-co-pos-sub002/internal/domain/enum"
	"github.com/zakirya592/rk-co-pos-sub002/internal/presentation/http/dto/response"
)

// PaymentHandler handles payment HTTP requests
type PaymentHandler struct {
	paymentService *service.PaymentService
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentService *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// RecordCustomerPayment handles recording a payment against a sale
func (h *PaymentHandler) RecordCustomerPayment(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req struct {
		SaleID uuid.UUID       `json:"sale_id" binding:"required"`
		Amount decimal.Decimal `json:"amount"`
		Method string          `json:"method" binding:"required"`
		Notes  string          `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.paymentService.RecordCustomerPayment(c.Request.Context(), &service.RecordPaymentInput{
		SaleID: req.SaleID,
		UserID: *userID,
		Amount: req.Amount,
		Method: enum.PaymentMethod(req.Method),
		Notes:  req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Payment recorded successfully", result)
}

// ApplyCustomerAdvance handles paying down a sale from the customer's
// advance balance
func (h *PaymentHandler) ApplyCustomerAdvance(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req struct {
		CustomerID uuid.UUID       `json:"customer_id" binding:"required"`
		SaleID     uuid.UUID       `json:"sale_id" binding:"required"`
		Amount     decimal.Decimal `json:"amount"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.paymentService.ApplyCustomerAdvance(c.Request.Context(), &service.ApplyAdvanceInput{
		CustomerID: req.CustomerID,
		SaleID:     req.SaleID,
		UserID:     *userID,
		Amount:     req.Amount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Advance applied successfully", result)
}

// ListBySale handles listing the payments recorded against a sale
func (h *PaymentHandler) ListBySale(c *gin.Context) {
	saleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	payments, err := h.paymentService.ListBySale(c.Request.Context(), saleID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Payments retrieved successfully", payments)
}

// ListByCustomer handles listing a customer's payments
func (h *PaymentHandler) ListByCustomer(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	payments, err := h.paymentService.ListByCustomer(c.Request.Context(), customerID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Payments retrieved successfully", payments)
}
