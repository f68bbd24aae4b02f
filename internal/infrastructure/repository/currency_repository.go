package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/zakirya592/rk-co-pos-sub002/internal/domain/entity"
	domainRepo "github.com/zakirya592/rk-co-pos-sub002/internal/domain/repository"
	"gorm.io/gorm"
)

type currencyRepository struct {
	db *gorm.DB
}

// NewCurrencyRepository creates a new currency repository
func NewCurrencyRepository(db *gorm.DB) domainRepo.CurrencyRepository {
	return &currencyRepository{db: db}
}

func (r *currencyRepository) Create(ctx context.Context, currency *entity.Currency) error {
	return r.db.WithContext(ctx).Create(currency).Error
}

func (r *currencyRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Currency, error) {
	var currency entity.Currency
	err := r.db.WithContext(ctx).First(&currency, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &currency, err
}

func (r *currencyRepository) GetByCode(ctx context.Context, code string) (*entity.Currency, error) {
	var currency entity.Currency
	err := r.db.WithContext(ctx).First(&currency, "code = ?", code).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &currency, err
}

func (r *currencyRepository) GetBase(ctx context.Context) (*entity.Currency, error) {
	var currency entity.Currency
	err := r.db.WithContext(ctx).First(&currency, "is_base = ?", true).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &currency, err
}

func (r *currencyRepository) Update(ctx context.Context, currency *entity.Currency) error {
	return r.db.WithContext(ctx).Save(currency).Error
}

func (r *currencyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Currency{}, "id = ?", id).Error
}

func (r *currencyRepository) List(ctx context.Context) ([]entity.Currency, error) {
	var currencies []entity.Currency
	err := r.db.WithContext(ctx).Order("code ASC").Find(&currencies).Error
	return currencies, err
}

func (r *currencyRepository) AddHistory(ctx context.Context, history *entity.CurrencyHistory) error {
	return r.db.WithContext(ctx).Create(history).Error
}

func (r *currencyRepository) ListHistory(ctx context.Context, currencyID uuid.UUID) ([]entity.CurrencyHistory, error) {
	var history []entity.CurrencyHistory
	err := r.db.WithContext(ctx).
		Where("currency_id = ?", currencyID).
		Order("effective_date DESC, created_at DESC").
		Find(&history).Error
	return history, err
}
