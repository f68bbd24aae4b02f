package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/zakirya592/rk-co-pos-sub002/internal/application/service"
	"github.com/zakirya592/rk-co-pos-sub002/internal/presentation/http/dto/response"
)

// CurrencyHandler handles currency HTTP requests
type CurrencyHandler struct {
	currencyService *service.CurrencyService
}

// NewCurrencyHandler creates a new currency handler
func NewCurrencyHandler(currencyService *service.CurrencyService) *CurrencyHandler {
	return &CurrencyHandler{currencyService: currencyService}
}

// List handles listing all currencies
func (h *CurrencyHandler) List(c *gin.Context) {
	currencies, err := h.currencyService.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Currencies retrieved successfully", currencies)
}

// Create handles registering a currency
func (h *CurrencyHandler) Create(c *gin.Context) {
	var req struct {
		Code         string          `json:"code" binding:"required"`
		Name         string          `json:"name" binding:"required"`
		Symbol       string          `json:"symbol"`
		ExchangeRate decimal.Decimal `json:"exchange_rate"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	currency, err := h.currencyService.Create(c.Request.Context(), &service.CreateCurrencyInput{
		Code:         req.Code,
		Name:         req.Name,
		Symbol:       req.Symbol,
		ExchangeRate: req.ExchangeRate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Currency created successfully", currency)
}

// Get handles getting a single currency
func (h *CurrencyHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid currency ID")
		return
	}

	currency, err := h.currencyService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Currency retrieved successfully", currency)
}

// Update handles modifying a currency; rate changes are recorded in the
// audit trail
func (h *CurrencyHandler) Update(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid currency ID")
		return
	}

	var req struct {
		Name         *string          `json:"name"`
		Symbol       *string          `json:"symbol"`
		ExchangeRate *decimal.Decimal `json:"exchange_rate"`
		Notes        string           `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	currency, err := h.currencyService.Update(c.Request.Context(), id, &service.UpdateCurrencyInput{
		Name:         req.Name,
		Symbol:       req.Symbol,
		ExchangeRate: req.ExchangeRate,
		UserID:       *userID,
		Notes:        req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Currency updated successfully", currency)
}

// Delete handles removing a currency
func (h *CurrencyHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid currency ID")
		return
	}

	if err := h.currencyService.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Currency deleted successfully", nil)
}

// History handles a currency's rate-change audit trail
func (h *CurrencyHandler) History(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid currency ID")
		return
	}

	history, err := h.currencyService.GetHistory(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Exchange history retrieved successfully", history)
}

// Convert handles cross-currency conversion
func (h *CurrencyHandler) Convert(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		response.BadRequest(c, "Both from and to currency codes are required")
		return
	}

	amount := decimal.NewFromInt(1)
	if v := c.Query("amount"); v != "" {
		parsed, err := decimal.NewFromString(v)
		if err != nil {
			response.BadRequest(c, "Invalid amount")
			return
		}
		amount = parsed
	}

	result, err := h.currencyService.Convert(c.Request.Context(), &service.ConvertInput{
		FromCode: from,
		ToCode:   to,
		Amount:   amount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Conversion computed successfully", result)
}
