package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/zakirya592/rk-co-pos-sub002/internal/domain/entity"
)

// CurrencyRepository defines the interface for currency data operations
type CurrencyRepository interface {
	Create(ctx context.Context, currency *entity.Currency) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Currency, error)
	GetByCode(ctx context.Context, code string) (*entity.Currency, error)
	GetBase(ctx context.Context) (*entity.Currency, error)
	Update(ctx context.Context, currency *entity.Currency) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]entity.Currency, error)
	// AddHistory appends a rate-change row to the currency's audit trail.
	AddHistory(ctx context.Context, history *entity.CurrencyHistory) error
	// ListHistory returns a currency's rate changes, most recent first.
	ListHistory(ctx context.Context, currencyID uuid.UUID) ([]entity.CurrencyHistory, error)
}
