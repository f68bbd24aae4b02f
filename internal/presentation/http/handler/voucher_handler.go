package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/zakirya592/rk-co-pos-sub002/internal/application/service"
	"github.com/zakirya592/rk-co-pos-sub002/internal/domain/enum"
	"github.com/zakirya592/rk-co-pos-sub002/internal/infrastructure/storage"
	"github.com/zakirya592/rk-co-pos-sub002/internal/presentation/http/dto/response"
)

// VoucherHandler handles voucher HTTP requests. The voucher type comes
// from the resource path segment, one segment per dashboard screen.
type VoucherHandler struct {
	voucherService *service.VoucherService
	store          *storage.LocalStorage
}

// NewVoucherHandler creates a new voucher handler
func NewVoucherHandler(voucherService *service.VoucherService, store *storage.LocalStorage) *VoucherHandler {
	return &VoucherHandler{
		voucherService: voucherService,
		store:          store,
	}
}

func voucherTypeFromPath(c *gin.Context) (enum.VoucherType, bool) {
	return enum.VoucherTypeFromPath(c.Param("voucherType"))
}

// List handles listing one type's vouchers
func (h *VoucherHandler) List(c *gin.Context) {
	voucherType, ok := voucherTypeFromPath(c)
	if !ok {
		response.NotFound(c, "Unknown voucher type")
		return
	}

	result, err := h.voucherService.List(c.Request.Context(), voucherType, parsePagination(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, 200, "Vouchers retrieved successfully", result)
}

// parseVoucherRequest decodes the multipart submission and stores the
// attachment, if one was sent.
func (h *VoucherHandler) parseVoucherRequest(c *gin.Context) (*service.VoucherInput, error) {
	if err := c.Request.ParseMultipartForm(32 << 20); err != nil {
		return nil, err
	}

	input, err := parseVoucherForm(c.Request.MultipartForm.Value)
	if err != nil {
		return nil, err
	}

	if file, err := c.FormFile("attachment"); err == nil && file != nil {
		path, err := h.store.SaveAttachment("vouchers", file)
		if err != nil {
			return nil, err
		}
		input.AttachmentPath = &path
	}

	return input, nil
}

// Create handles recording a voucher
func (h *VoucherHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	voucherType, ok := voucherTypeFromPath(c)
	if !ok {
		response.NotFound(c, "Unknown voucher type")
		return
	}

	input, err := h.parseVoucherRequest(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	input.ShopID = GetShopID(c)
	input.UserID = *userID
	input.Type = voucherType

	voucher, err := h.voucherService.Create(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Voucher recorded successfully", voucher)
}

// Get handles getting a single voucher
func (h *VoucherHandler) Get(c *gin.Context) {
	if _, ok := voucherTypeFromPath(c); !ok {
		response.NotFound(c, "Unknown voucher type")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid voucher ID")
		return
	}

	voucher, err := h.voucherService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Voucher retrieved successfully", voucher)
}

// Update handles rewriting a voucher
func (h *VoucherHandler) Update(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	if _, ok := voucherTypeFromPath(c); !ok {
		response.NotFound(c, "Unknown voucher type")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid voucher ID")
		return
	}

	input, err := h.parseVoucherRequest(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	input.ShopID = GetShopID(c)
	input.UserID = *userID

	voucher, err := h.voucherService.Update(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Voucher updated successfully", voucher)
}

// Delete handles removing a voucher
func (h *VoucherHandler) Delete(c *gin.Context) {
	if _, ok := voucherTypeFromPath(c); !ok {
		response.NotFound(c, "Unknown voucher type")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid voucher ID")
		return
	}

	if err := h.voucherService.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Voucher deleted successfully", nil)
}
