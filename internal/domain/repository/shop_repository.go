package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/zakirya592/rk-co-pos-sub002/internal/domain/entity"
)

// ShopRepository defines the interface for shop data operations
type ShopRepository interface {
	Create(ctx context.Context, shop *entity.Shop) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Shop, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Shop, error)
	List(ctx context.Context) ([]entity.Shop, error)
}

// WarehouseRepository defines the interface for warehouse data operations
type WarehouseRepository interface {
	Create(ctx context.Context, warehouse *entity.Warehouse) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Warehouse, error)
	List(ctx context.Context) ([]entity.Warehouse, error)
}
