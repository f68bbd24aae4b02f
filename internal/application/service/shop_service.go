package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/zakirya592/rk-co-pos-sub002/internal/domain/entity"
	"github.com/zakirya592/rk-co-pos-sub002/internal/domain/repository"
	"github.com/zakirya592/rk-co-pos-sub002/pkg/apperror"
)

// ShopService handles shops and their warehouses
type ShopService struct {
	shopRepo      repository.ShopRepository
	warehouseRepo repository.WarehouseRepository
}

// NewShopService creates a new shop service
func NewShopService(shopRepo repository.ShopRepository, warehouseRepo repository.WarehouseRepository) *ShopService {
	return &ShopService{
		shopRepo:      shopRepo,
		warehouseRepo: warehouseRepo,
	}
}

// GetShop returns a shop
func (s *ShopService) GetShop(ctx context.Context, id uuid.UUID) (*entity.Shop, error) {
	shop, err := s.shopRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, apperror.NewNotFoundError("Shop")
	}
	return shop, nil
}

// WarehouseInput represents a warehouse submission
type WarehouseInput struct {
	ShopID   uuid.UUID
	Name     string
	Location *string
}

// CreateWarehouse records a new warehouse for the shop in scope
func (s *ShopService) CreateWarehouse(ctx context.Context, input *WarehouseInput) (*entity.Warehouse, error) {
	if input.Name == "" {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "name", Message: "name is required"},
		})
	}

	warehouse := &entity.Warehouse{
		ShopID:   input.ShopID,
		Name:     input.Name,
		Location: input.Location,
	}
	if err := s.warehouseRepo.Create(ctx, warehouse); err != nil {
		return nil, err
	}
	return warehouse, nil
}

// ListWarehouses returns the shop's warehouses
func (s *ShopService) ListWarehouses(ctx context.Context) ([]entity.Warehouse, error) {
	return s.warehouseRepo.List(ctx)
}
