package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/zakirya592/rk-co-pos-sub002/internal/application/service"
	"github.com/zakirya592/rk-co-pos-sub002/internal/presentation/http/dto/response"
)

// OwnerHandler handles owner and partnership account HTTP requests
type OwnerHandler struct {
	ownerService *service.OwnerService
}

// NewOwnerHandler creates a new owner handler
func NewOwnerHandler(ownerService *service.OwnerService) *OwnerHandler {
	return &OwnerHandler{ownerService: ownerService}
}

type ownerRequest struct {
	Name    string  `json:"name" binding:"required"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
	CNIC    *string `json:"cnic"`
	Address *string `json:"address"`
}

func (r *ownerRequest) toInput(c *gin.Context) *service.OwnerInput {
	return &service.OwnerInput{
		ShopID:  GetShopID(c),
		Name:    r.Name,
		Phone:   r.Phone,
		Email:   r.Email,
		CNIC:    r.CNIC,
		Address: r.Address,
	}
}

// ListOwners handles listing owners
func (h *OwnerHandler) ListOwners(c *gin.Context) {
	result, err := h.ownerService.ListOwners(c.Request.Context(), parsePagination(c), c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, 200, "Owners retrieved successfully", result)
}

// CreateOwner handles creating an owner
func (h *OwnerHandler) CreateOwner(c *gin.Context) {
	var req ownerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	owner, err := h.ownerService.CreateOwner(c.Request.Context(), req.toInput(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Owner created successfully", owner)
}

// GetOwner handles getting a single owner
func (h *OwnerHandler) GetOwner(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid owner ID")
		return
	}

	owner, err := h.ownerService.GetOwner(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Owner retrieved successfully", owner)
}

// UpdateOwner handles rewriting an owner
func (h *OwnerHandler) UpdateOwner(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid owner ID")
		return
	}

	var req ownerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	owner, err := h.ownerService.UpdateOwner(c.Request.Context(), id, req.toInput(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Owner updated successfully", owner)
}

// DeleteOwner handles removing an owner
func (h *OwnerHandler) DeleteOwner(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid owner ID")
		return
	}

	if err := h.ownerService.DeleteOwner(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Owner deleted successfully", nil)
}

type partnershipAccountRequest struct {
	Name           string          `json:"name" binding:"required"`
	PartnerName    string          `json:"partner_name" binding:"required"`
	Phone          *string         `json:"phone"`
	Email          *string         `json:"email"`
	Address        *string         `json:"address"`
	SharePercent   decimal.Decimal `json:"share_percent"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
}

func (r *partnershipAccountRequest) toInput(c *gin.Context) *service.PartnershipAccountInput {
	return &service.PartnershipAccountInput{
		ShopID:         GetShopID(c),
		Name:           r.Name,
		PartnerName:    r.PartnerName,
		Phone:          r.Phone,
		Email:          r.Email,
		Address:        r.Address,
		SharePercent:   r.SharePercent,
		OpeningBalance: r.OpeningBalance,
	}
}

// ListPartnershipAccounts handles listing partnership accounts
func (h *OwnerHandler) ListPartnershipAccounts(c *gin.Context) {
	result, err := h.ownerService.ListPartnershipAccounts(c.Request.Context(), parsePagination(c), c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, 200, "Partnership accounts retrieved successfully", result)
}

// CreatePartnershipAccount handles creating a partnership account
func (h *OwnerHandler) CreatePartnershipAccount(c *gin.Context) {
	var req partnershipAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	account, err := h.ownerService.CreatePartnershipAccount(c.Request.Context(), req.toInput(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Partnership account created successfully", account)
}

// GetPartnershipAccount handles getting a single partnership account
func (h *OwnerHandler) GetPartnershipAccount(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid account ID")
		return
	}

	account, err := h.ownerService.GetPartnershipAccount(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Partnership account retrieved successfully", account)
}

// UpdatePartnershipAccount handles rewriting a partnership account
func (h *OwnerHandler) UpdatePartnershipAccount(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid account ID")
		return
	}

	var req partnershipAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	account, err := h.ownerService.UpdatePartnershipAccount(c.Request.Context(), id, req.toInput(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Partnership account updated successfully", account)
}

// DeletePartnershipAccount handles removing a partnership account
func (h *OwnerHandler) DeletePartnershipAccount(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid account ID")
		return
	}

	if err := h.ownerService.DeletePartnershipAccount(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Partnership account deleted successfully", nil)
}
