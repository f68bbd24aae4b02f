package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/zakirya592/rk-co-pos-sub002/internal/application/service"
	"github.com/zakirya592/rk-co-pos-sub002/internal/domain/enum"
	"github.com/zakirya592/rk-co-pos-sub002/internal/domain/repository"
	"github.com/zakirya592/rk-co-pos-sub002/internal/presentation/http/dto/response"
)

// SaleHandler handles sale HTTP requests
type SaleHandler struct {
	saleService *service.SaleService
}

// NewSaleHandler creates a new sale handler
func NewSaleHandler(saleService *service.SaleService) *SaleHandler {
	return &SaleHandler{saleService: saleService}
}

// parseSaleFilter reads the sales list query parameters into a filter.
// Dates accept either a date-only or an RFC 3339 value.
func parseSaleFilter(c *gin.Context) *repository.SaleFilter {
	filter := &repository.SaleFilter{
		InvoiceNo: c.Query("invoice_no"),
	}

	if v := c.Query("start_date"); v != "" {
		if t, err := parseDate(v); err == nil {
			filter.StartDate = &t
		}
	}
	if v := c.Query("end_date"); v != "" {
		if t, err := parseDate(v); err == nil {
			// An end date without a time component covers the whole day.
			if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 {
				t = t.Add(24*time.Hour - time.Nanosecond)
			}
			filter.EndDate = &t
		}
	}
	if v := c.Query("payment_status"); v != "" {
		status := enum.PaymentStatus(v)
		if status.IsValid() {
			filter.PaymentStatus = &status
		}
	}
	if v := c.Query("customer_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			filter.CustomerID = &id
		}
	}
	return filter
}

func parseDate(v string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", v); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, v)
}

// List handles listing sales with filters and two-layer search
func (h *SaleHandler) List(c *gin.Context) {
	input := &service.ListSalesInput{
		Filter: parseSaleFilter(c),
		Search: c.Query("search"),
	}

	if wantsCursor(c) {
		result, err := h.saleService.ListWithCursor(c.Request.Context(), input, parseCursorParams(c))
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, "Sales retrieved successfully", result)
		return
	}

	params := parsePagination(c)
	result, err := h.saleService.List(c.Request.Context(), input, params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, 200, "Sales retrieved successfully", result)
}

type saleItemRequest struct {
	ProductName string          `json:"product_name" binding:"required"`
	Quantity    int             `json:"quantity" binding:"required"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// Create handles recording a sale
func (h *SaleHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req struct {
		CustomerID    *uuid.UUID        `json:"customer_id"`
		WarehouseID   *uuid.UUID        `json:"warehouse_id"`
		Items         []saleItemRequest `json:"items" binding:"required"`
		Discount      decimal.Decimal   `json:"discount"`
		Tax           decimal.Decimal   `json:"tax"`
		PaidAmount    decimal.Decimal   `json:"paid_amount"`
		PaymentMethod string            `json:"payment_method" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	items := make([]service.SaleItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, service.SaleItemInput{
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}

	sale, err := h.saleService.Create(c.Request.Context(), &service.CreateSaleInput{
		ShopID:        GetShopID(c),
		UserID:        *userID,
		CustomerID:    req.CustomerID,
		WarehouseID:   req.WarehouseID,
		Items:         items,
		Discount:      req.Discount,
		Tax:           req.Tax,
		PaidAmount:    req.PaidAmount,
		PaymentMethod: enum.PaymentMethod(req.PaymentMethod),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Sale recorded successfully", sale)
}

// Get handles getting a single sale
func (h *SaleHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	sale, err := h.saleService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Sale retrieved successfully", sale)
}

// Update handles modifying a sale's adjustable fields
func (h *SaleHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	var req struct {
		Discount      *decimal.Decimal `json:"discount"`
		Tax           *decimal.Decimal `json:"tax"`
		PaymentMethod *string          `json:"payment_method"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdateSaleInput{
		Discount: req.Discount,
		Tax:      req.Tax,
	}
	if req.PaymentMethod != nil {
		method := enum.PaymentMethod(*req.PaymentMethod)
		input.PaymentMethod = &method
	}

	sale, err := h.saleService.Update(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Sale updated successfully", sale)
}

// Delete handles removing a sale
func (h *SaleHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	if err := h.saleService.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Sale deleted successfully", nil)
}

// ByLocation handles listing sales for a warehouse or shop
func (h *SaleHandler) ByLocation(c *gin.Context) {
	locType := enum.LocationType(c.Param("type"))
	locationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid location ID")
		return
	}

	sales, err := h.saleService.ListByLocation(c.Request.Context(), locType, locationID, GetShopID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Sales retrieved successfully", sales)
}

// CustomerHistory handles a customer's purchase history with totals
func (h *SaleHandler) CustomerHistory(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	history, err := h.saleService.GetCustomerHistory(c.Request.Context(), customerID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Customer history retrieved successfully", history)
}
