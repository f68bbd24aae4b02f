package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/zakirya592/rk-co-pos-sub002/internal/domain/entity"
	"github.com/zakirya592/rk-co-pos-sub002/internal/domain/enum"
	domainRepo "github.com/zakirya592/rk-co-pos-sub002/internal/domain/repository"
	"github.com/zakirya592/rk-co-pos-sub002/pkg/pagination"
	"gorm.io/gorm"
)

type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository creates a new sale repository
func NewSaleRepository(db *gorm.DB) domainRepo.SaleRepository {
	return &saleRepository{db: db}
}

func (r *saleRepository) Create(ctx context.Context, sale *entity.Sale, items []entity.SaleItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(sale).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].SaleID = sale.ID
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		sale.Items = items
		return nil
	})
}

func (r *saleRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	var sale entity.Sale
	err := r.db.WithContext(ctx).
		Scopes(ShopScope(ctx)).
		Preload("Items").
		Preload("Customer").
		First(&sale, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &sale, err
}

func (r *saleRepository) Update(ctx context.Context, sale *entity.Sale) error {
	return r.db.WithContext(ctx).Save(sale).Error
}

func (r *saleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Sale{}, "id = ?", id).Error
}

// applyFilter translates the server-side sale filter into query clauses.
func applyFilter(query *gorm.DB, filter *domainRepo.SaleFilter) *gorm.DB {
	if filter == nil {
		return query
	}
	if filter.StartDate != nil {
		query = query.Where("created_at >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("created_at <= ?", *filter.EndDate)
	}
	if filter.PaymentStatus != nil {
		query = query.Where("payment_status = ?", *filter.PaymentStatus)
	}
	if filter.InvoiceNo != "" {
		query = query.Where("invoice_no ILIKE ?", "%"+filter.InvoiceNo+"%")
	}
	if filter.CustomerID != nil {
		query = query.Where("customer_id = ?", *filter.CustomerID)
	}
	return query
}

func (r *saleRepository) List(ctx context.Context, filter *domainRepo.SaleFilter, params *pagination.PaginationParams) ([]entity.Sale, int64, error) {
	var sales []entity.Sale
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Sale{}).Scopes(ShopScope(ctx))
	query = applyFilter(query, filter)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Preload("Items").Preload("Customer").
		Offset(params.Offset()).Limit(params.PerPage).
		Order("created_at DESC").
		Find(&sales).Error

	return sales, total, err
}

func (r *saleRepository) ListWithCursor(ctx context.Context, filter *domainRepo.SaleFilter, params *pagination.CursorParams) ([]entity.Sale, error) {
	var sales []entity.Sale

	params.Validate()
	query := r.db.WithContext(ctx).Model(&entity.Sale{}).Scopes(ShopScope(ctx))
	query = applyFilter(query, filter)

	cursor, err := params.DecodeCursor()
	if err != nil {
		return nil, err
	}

	if cursor != nil {
		if params.Direction == pagination.CursorDirectionNext {
			query = query.Where("(created_at, id) < (?, ?)", cursor.CreatedAt, cursor.ID)
		} else {
			query = query.Where("(created_at, id) > (?, ?)", cursor.CreatedAt, cursor.ID)
		}
	}

	// Fetch limit+1 to detect hasMore
	err = query.Preload("Items").Preload("Customer").
		Limit(params.Limit + 1).
		Order("created_at DESC, id DESC").
		Find(&sales).Error

	return sales, err
}

func (r *saleRepository) ListAll(ctx context.Context, filter *domainRepo.SaleFilter) ([]entity.Sale, error) {
	var sales []entity.Sale
	query := r.db.WithContext(ctx).Model(&entity.Sale{}).Scopes(ShopScope(ctx))
	query = applyFilter(query, filter)
	err := query.Preload("Customer").Order("created_at DESC").Find(&sales).Error
	return sales, err
}

func (r *saleRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]entity.Sale, error) {
	var sales []entity.Sale
	err := r.db.WithContext(ctx).
		Scopes(ShopScope(ctx)).
		Preload("Items").
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&sales).Error
	return sales, err
}

func (r *saleRepository) ListByLocation(ctx context.Context, locType enum.LocationType, locationID uuid.UUID) ([]entity.Sale, error) {
	var sales []entity.Sale
	query := r.db.WithContext(ctx).Preload("Items").Preload("Customer")

	switch locType {
	case enum.LocationTypeWarehouse:
		query = query.Scopes(ShopScope(ctx)).Where("warehouse_id = ?", locationID)
	case enum.LocationTypeShop:
		// The shop scope stays on: a location ID outside the caller's
		// shop matches nothing.
		query = query.Scopes(ShopScope(ctx)).Where("shop_id = ?", locationID)
	default:
		return nil, errors.New("unknown location type")
	}

	err := query.Order("created_at DESC").Find(&sales).Error
	return sales, err
}
