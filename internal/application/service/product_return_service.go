package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/zakirya592/rk-co-pos-sub002/internal/domain/entity"
	"github.com/zakirya592/rk-co-pos-sub002/internal/domain/enum"
	"github.com/zakirya592/rk-co-pos-sub002/internal/domain/repository"
	"github.com/zakirya592/rk-co-pos-sub002/pkg/apperror"
	"github.com/zakirya592/rk-co-pos-sub002/pkg/pagination"
	"github.com/zakirya592/rk-co-pos-sub002/pkg/utils"
)

// ProductReturnService records stock coming back from customers
type ProductReturnService struct {
	returnRepo repository.ProductReturnRepository
	saleRepo   repository.SaleRepository
}

// NewProductReturnService creates a new product return service
func NewProductReturnService(returnRepo repository.ProductReturnRepository, saleRepo repository.SaleRepository) *ProductReturnService {
	return &ProductReturnService{
		returnRepo: returnRepo,
		saleRepo:   saleRepo,
	}
}

// ProductReturnInput represents a product return submission
type ProductReturnInput struct {
	ShopID       uuid.UUID
	UserID       uuid.UUID
	SaleID       *uuid.UUID
	WarehouseID  *uuid.UUID
	ProductName  string
	Quantity     int
	RefundAmount decimal.Decimal
	Reason       string
}

func (in *ProductReturnInput) validate() error {
	var fieldErrors []apperror.FieldError
	if in.ProductName == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "product_name", Message: "product name is required"})
	}
	if in.Quantity <= 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "quantity", Message: "quantity must be positive"})
	}
	if in.RefundAmount.IsNegative() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "refund_amount", Message: "refund amount must not be negative"})
	}
	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}
	return nil
}

// Create records a product return. When the return references a sale, the
// sale must exist in the shop scope.
func (s *ProductReturnService) Create(ctx context.Context, input *ProductReturnInput) (*entity.ProductReturn, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	if input.SaleID != nil {
		sale, err := s.saleRepo.GetByID(ctx, *input.SaleID)
		if err != nil {
			return nil, err
		}
		if sale == nil {
			return nil, apperror.NewNotFoundError("Sale")
		}
	}

	ret := &entity.ProductReturn{
		ShopID:       input.ShopID,
		UserID:       input.UserID,
		SaleID:       input.SaleID,
		WarehouseID:  input.WarehouseID,
		ReturnNo:     utils.GenerateReturnNo(),
		ProductName:  input.ProductName,
		Quantity:     input.Quantity,
		RefundAmount: input.RefundAmount,
		Reason:       input.Reason,
	}
	if err := s.returnRepo.Create(ctx, ret); err != nil {
		return nil, err
	}
	return s.returnRepo.GetByID(ctx, ret.ID)
}

// GetByID returns a product return
func (s *ProductReturnService) GetByID(ctx context.Context, id uuid.UUID) (*entity.ProductReturn, error) {
	ret, err := s.returnRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ret == nil {
		return nil, apperror.NewNotFoundError("Product return")
	}
	return ret, nil
}

// List returns a page of product returns
func (s *ProductReturnService) List(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.ProductReturn], error) {
	returns, total, err := s.returnRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(returns, pagination.NewPagination(params.Page, params.PerPage, total)), nil
}

// ListByLocation returns product returns recorded against a warehouse or
// shop. A shop location must be the caller's own shop.
func (s *ProductReturnService) ListByLocation(ctx context.Context, locType enum.LocationType, locationID, callerShopID uuid.UUID) ([]entity.ProductReturn, error) {
	if !locType.IsValid() {
		return nil, apperror.NewBadRequestError("Unknown location type")
	}
	if locType == enum.LocationTypeShop && locationID != callerShopID {
		return nil, apperror.NewForbiddenError("Product returns for another shop are not accessible")
	}
	return s.returnRepo.ListByLocation(ctx, locType, locationID)
}
