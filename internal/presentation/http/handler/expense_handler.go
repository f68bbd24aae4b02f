package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/zakirya592/rk-co-pos-sub002/internal/application/service"
	"github.com/zakirya592/rk-co-pos-sub002/internal/domain/enum"
	"github.com/zakirya592/rk-co-pos-sub002/internal/presentation/http/dto/response"
)

// ExpenseHandler handles expense HTTP requests. The expense category comes
// from the resource path segment, mirroring the dashboard's three expense
// screens.
type ExpenseHandler struct {
	expenseService *service.ExpenseService
}

// NewExpenseHandler creates a new expense handler
func NewExpenseHandler(expenseService *service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

func categoryFromPath(c *gin.Context) (enum.ExpenseCategory, bool) {
	return enum.ExpenseCategoryFromPath(c.Param("category"))
}

type expenseRequest struct {
	BankCharges       decimal.Decimal `json:"bank_charges"`
	FreightCost       decimal.Decimal `json:"freight_cost"`
	CommissionAmount  decimal.Decimal `json:"commission_amount"`
	InsuranceCost     decimal.Decimal `json:"insurance_cost"`
	CustomsDuty       decimal.Decimal `json:"customs_duty"`
	HandlingCharges   decimal.Decimal `json:"handling_charges"`
	MiscellaneousCost decimal.Decimal `json:"miscellaneous_cost"`

	CurrencyID   uuid.UUID        `json:"currency_id" binding:"required"`
	ExchangeRate *decimal.Decimal `json:"exchange_rate"`

	ShipmentNo      *string    `json:"shipment_number"`
	WarehouseID     *uuid.UUID `json:"warehouse_id"`
	TransporterName *string    `json:"transporter_name"`
	CustomerID      *uuid.UUID `json:"customer_id"`
	SalespersonName *string    `json:"salesperson_name"`
	Notes           string     `json:"notes"`
}

func (r *expenseRequest) toInput(c *gin.Context, category enum.ExpenseCategory, userID uuid.UUID) *service.ExpenseInput {
	return &service.ExpenseInput{
		ShopID:            GetShopID(c),
		UserID:            userID,
		Category:          category,
		BankCharges:       r.BankCharges,
		FreightCost:       r.FreightCost,
		CommissionAmount:  r.CommissionAmount,
		InsuranceCost:     r.InsuranceCost,
		CustomsDuty:       r.CustomsDuty,
		HandlingCharges:   r.HandlingCharges,
		MiscellaneousCost: r.MiscellaneousCost,
		CurrencyID:        r.CurrencyID,
		ExchangeRate:      r.ExchangeRate,
		ShipmentNo:        r.ShipmentNo,
		WarehouseID:       r.WarehouseID,
		TransporterName:   r.TransporterName,
		CustomerID:        r.CustomerID,
		SalespersonName:   r.SalespersonName,
		Notes:             r.Notes,
	}
}

// List handles listing one category's expenses
func (h *ExpenseHandler) List(c *gin.Context) {
	category, ok := categoryFromPath(c)
	if !ok {
		response.NotFound(c, "Unknown expense category")
		return
	}

	result, err := h.expenseService.List(c.Request.Context(), category, parsePagination(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Expenses retrieved successfully", result)
}

// Create handles recording an expense
func (h *ExpenseHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	category, ok := categoryFromPath(c)
	if !ok {
		response.NotFound(c, "Unknown expense category")
		return
	}

	var req expenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	expense, err := h.expenseService.Create(c.Request.Context(), req.toInput(c, category, *userID))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Expense recorded successfully", expense)
}

// Get handles getting a single expense
func (h *ExpenseHandler) Get(c *gin.Context) {
	if _, ok := categoryFromPath(c); !ok {
		response.NotFound(c, "Unknown expense category")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid expense ID")
		return
	}

	expense, err := h.expenseService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Expense retrieved successfully", expense)
}

// Update handles rewriting an expense
func (h *ExpenseHandler) Update(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	category, ok := categoryFromPath(c)
	if !ok {
		response.NotFound(c, "Unknown expense category")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid expense ID")
		return
	}

	var req expenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	expense, err := h.expenseService.Update(c.Request.Context(), id, req.toInput(c, category, *userID))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Expense updated successfully", expense)
}

// Delete handles removing an expense
func (h *ExpenseHandler) Delete(c *gin.Context) {
	if _, ok := categoryFromPath(c); !ok {
		response.NotFound(c, "Unknown expense category")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid expense ID")
		return
	}

	if err := h.expenseService.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Expense deleted successfully", nil)
}
