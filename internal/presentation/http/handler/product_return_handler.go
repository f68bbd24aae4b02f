package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/zakirya592/rk-co-pos-sub002/internal/application/service"
	"github.com/zakirya592/rk-co-pos-sub002/internal/domain/enum"
	"github.com/zakirya592/rk-co-pos-sub002/internal/presentation/http/dto/response"
)

// ProductReturnHandler handles product return HTTP requests
type ProductReturnHandler struct {
	returnService *service.ProductReturnService
}

// NewProductReturnHandler creates a new product return handler
func NewProductReturnHandler(returnService *service.ProductReturnService) *ProductReturnHandler {
	return &ProductReturnHandler{returnService: returnService}
}

// List handles listing product returns
func (h *ProductReturnHandler) List(c *gin.Context) {
	result, err := h.returnService.List(c.Request.Context(), parsePagination(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, 200, "Product returns retrieved successfully", result)
}

// Create handles recording a product return
func (h *ProductReturnHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req struct {
		SaleID       *uuid.UUID      `json:"sale_id"`
		WarehouseID  *uuid.UUID      `json:"warehouse_id"`
		ProductName  string          `json:"product_name" binding:"required"`
		Quantity     int             `json:"quantity" binding:"required"`
		RefundAmount decimal.Decimal `json:"refund_amount"`
		Reason       string          `json:"reason"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	ret, err := h.returnService.Create(c.Request.Context(), &service.ProductReturnInput{
		ShopID:       GetShopID(c),
		UserID:       *userID,
		SaleID:       req.SaleID,
		WarehouseID:  req.WarehouseID,
		ProductName:  req.ProductName,
		Quantity:     req.Quantity,
		RefundAmount: req.RefundAmount,
		Reason:       req.Reason,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Product return recorded successfully", ret)
}

// Get handles getting a single product return
func (h *ProductReturnHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid return ID")
		return
	}

	ret, err := h.returnService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Product return retrieved successfully", ret)
}

// ByLocation handles listing returns for a warehouse or shop
func (h *ProductReturnHandler) ByLocation(c *gin.Context) {
	locType := enum.LocationType(c.Param("type"))
	locationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid location ID")
		return
	}

	returns, err := h.returnService.ListByLocation(c.Request.Context(), locType, locationID, GetShopID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Product returns retrieved successfully", returns)
}
