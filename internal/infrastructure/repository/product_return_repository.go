package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/zakirya592/rk-co-pos-sub002/internal/domain/entity"
	"github.com/zakirya592/rk-co-pos-sub002/internal/domain/enum"
	domainRepo "github.com/zakirya592/rk-co-pos-sub002/internal/domain/repository"
	"github.com/zakirya592/rk-co-pos-sub002/pkg/pagination"
	"gorm.io/gorm"
)

type productReturnRepository struct {
	db *gorm.DB
}

// NewProductReturnRepository creates a new product return repository
func NewProductReturnRepository(db *gorm.DB) domainRepo.ProductReturnRepository {
	return &productReturnRepository{db: db}
}

func (r *productReturnRepository) Create(ctx context.Context, ret *entity.ProductReturn) error {
	return r.db.WithContext(ctx).Create(ret).Error
}

func (r *productReturnRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.ProductReturn, error) {
	var ret entity.ProductReturn
	err := r.db.WithContext(ctx).
		Scopes(ShopScope(ctx)).
		Preload("Sale").
		First(&ret, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &ret, err
}

func (r *productReturnRepository) List(ctx context.Context, params *pagination.PaginationParams) ([]entity.ProductReturn, int64, error) {
	var returns []entity.ProductReturn
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.ProductReturn{}).Scopes(ShopScope(ctx))
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Preload("Sale").
		Offset(params.Offset()).Limit(params.PerPage).
		Order("created_at DESC").
		Find(&returns).Error

	return returns, total, err
}

func (r *productReturnRepository) ListByLocation(ctx context.Context, locType enum.LocationType, locationID uuid.UUID) ([]entity.ProductReturn, error) {
	var returns []entity.ProductReturn

	query := r.db.WithContext(ctx).Model(&entity.ProductReturn{})
	switch locType {
	case enum.LocationTypeWarehouse:
		query = query.Scopes(ShopScope(ctx)).Where("warehouse_id = ?", locationID)
	case enum.LocationTypeShop:
		// The shop scope stays on: a location ID outside the caller's
		// shop matches nothing.
		query = query.Scopes(ShopScope(ctx)).Where("shop_id = ?", locationID)
	default:
		return nil, fmt.Errorf("unknown location type: %s", locType)
	}

	err := query.Preload("Sale").Order("created_at DESC").Find(&returns).Error
	return returns, err
}
