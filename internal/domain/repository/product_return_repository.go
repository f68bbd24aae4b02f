package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/zakirya592/rk-co-pos-sub002/internal/domain/entity"
	"github.com/zakirya592/rk-co-pos-sub002/internal/domain/enum"
	"github.com/zakirya592/rk-co-pos-sub002/pkg/pagination"
)

// ProductReturnRepository defines the interface for product return data operations
type ProductReturnRepository interface {
	Create(ctx context.Context, ret *entity.ProductReturn) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ProductReturn, error)
	List(ctx context.Context, params *pagination.PaginationParams) ([]entity.ProductReturn, int64, error)
	// ListByLocation returns returns recorded against a warehouse or shop.
	ListByLocation(ctx context.Context, locType enum.LocationType, locationID uuid.UUID) ([]entity.ProductReturn, error)
}
