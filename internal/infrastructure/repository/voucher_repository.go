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

type voucherRepository struct {
	db *gorm.DB
}

// NewVoucherRepository creates a new voucher repository
func NewVoucherRepository(db *gorm.DB) domainRepo.VoucherRepository {
	return &voucherRepository{db: db}
}

func (r *voucherRepository) Create(ctx context.Context, voucher *entity.Voucher, entries []entity.VoucherEntry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(voucher).Error; err != nil {
			return err
		}
		for i := range entries {
			entries[i].VoucherID = voucher.ID
			entries[i].Position = i
		}
		if len(entries) > 0 {
			if err := tx.Create(&entries).Error; err != nil {
				return err
			}
		}
		voucher.Entries = entries
		return nil
	})
}

func (r *voucherRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Voucher, error) {
	var voucher entity.Voucher
	err := r.db.WithContext(ctx).
		Scopes(ShopScope(ctx)).
		Preload("Entries", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Currency").
		First(&voucher, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &voucher, err
}

func (r *voucherRepository) Update(ctx context.Context, voucher *entity.Voucher, entries []entity.VoucherEntry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(voucher).Error; err != nil {
			return err
		}
		if entries == nil {
			return nil
		}
		// Replace the entry list wholesale so positions stay contiguous.
		if err := tx.Delete(&entity.VoucherEntry{}, "voucher_id = ?", voucher.ID).Error; err != nil {
			return err
		}
		for i := range entries {
			entries[i].ID = uuid.Nil
			entries[i].VoucherID = voucher.ID
			entries[i].Position = i
		}
		if len(entries) > 0 {
			if err := tx.Create(&entries).Error; err != nil {
				return err
			}
		}
		voucher.Entries = entries
		return nil
	})
}

func (r *voucherRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&entity.VoucherEntry{}, "voucher_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Voucher{}, "id = ?", id).Error
	})
}

func (r *voucherRepository) List(ctx context.Context, voucherType enum.VoucherType, params *pagination.PaginationParams) ([]entity.Voucher, int64, error) {
	var vouchers []entity.Voucher
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Voucher{}).
		Scopes(ShopScope(ctx)).
		Where("type = ?", voucherType)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.
		Preload("Entries", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Currency").
		Offset(params.Offset()).Limit(params.PerPage).
		Order("voucher_date DESC, created_at DESC").
		Find(&vouchers).Error

	return vouchers, total, err
}
