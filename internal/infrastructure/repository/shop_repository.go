package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/zakirya592/rk-co-pos-sub002/internal/domain/entity"
	domainRepo "github.com/zakirya592/rk-co-pos-sub002/internal/domain/repository"
	"gorm.io/gorm"
)

type shopRepository struct {
	db *gorm.DB
}

// NewShopRepository creates a new shop repository
func NewShopRepository(db *gorm.DB) domainRepo.ShopRepository {
	return &shopRepository{db: db}
}

func (r *shopRepository) Create(ctx context.Context, shop *entity.Shop) error {
	return r.db.WithContext(ctx).Create(shop).Error
}

func (r *shopRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Shop, error) {
	var shop entity.Shop
	err := r.db.WithContext(ctx).First(&shop, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &shop, err
}

func (r *shopRepository) GetBySlug(ctx context.Context, slug string) (*entity.Shop, error) {
	var shop entity.Shop
	err := r.db.WithContext(ctx).First(&shop, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &shop, err
}

func (r *shopRepository) List(ctx context.Context) ([]entity.Shop, error) {
	var shops []entity.Shop
	err := r.db.WithContext(ctx).Order("name ASC").Find(&shops).Error
	return shops, err
}

type warehouseRepository struct {
	db *gorm.DB
}

// NewWarehouseRepository creates a new warehouse repository
func NewWarehouseRepository(db *gorm.DB) domainRepo.WarehouseRepository {
	return &warehouseRepository{db: db}
}

func (r *warehouseRepository) Create(ctx context.Context, warehouse *entity.Warehouse) error {
	return r.db.WithContext(ctx).Create(warehouse).Error
}

func (r *warehouseRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Warehouse, error) {
	var warehouse entity.Warehouse
	err := r.db.WithContext(ctx).
		Scopes(ShopScope(ctx)).
		First(&warehouse, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &warehouse, err
}

func (r *warehouseRepository) List(ctx context.Context) ([]entity.Warehouse, error) {
	var warehouses []entity.Warehouse
	err := r.db.WithContext(ctx).
		Scopes(ShopScope(ctx)).
		Order("name ASC").
		Find(&warehouses).Error
	return warehouses, err
}
