package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/zakirya592/rk-co-pos-sub002/internal/application/service"
	"github.com/zakirya592/rk-co-pos-sub002/internal/presentation/http/dto/response"
)

// WarehouseHandler handles warehouse HTTP requests
type WarehouseHandler struct {
	shopService *service.ShopService
}

// NewWarehouseHandler creates a new warehouse handler
func NewWarehouseHandler(shopService *service.ShopService) *WarehouseHandler {
	return &WarehouseHandler{shopService: shopService}
}

// List handles listing the shop's warehouses
func (h *WarehouseHandler) List(c *gin.Context) {
	warehouses, err := h.shopService.ListWarehouses(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Warehouses retrieved successfully", warehouses)
}

// Create handles creating a warehouse
func (h *WarehouseHandler) Create(c *gin.Context) {
	var req struct {
		Name     string  `json:"name" binding:"required"`
		Location *string `json:"location"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	warehouse, err := h.shopService.CreateWarehouse(c.Request.Context(), &service.WarehouseInput{
		ShopID:   GetShopID(c),
		Name:     req.Name,
		Location: req.Location,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Warehouse created successfully", warehouse)
}
