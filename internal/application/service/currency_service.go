package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/zakirya592/rk-co-pos-sub002/internal/domain/entity"
	"github.com/zakirya592/rk-co-pos-sub002/internal/domain/finance"
	"github.com/zakirya592/rk-co-pos-sub002/internal/domain/repository"
	"github.com/zakirya592/rk-co-pos-sub002/pkg/apperror"
)

// CurrencyService manages tradable currencies, their exchange rate audit
// trail and cross-currency conversion through the base currency.
type CurrencyService struct {
	currencyRepo repository.CurrencyRepository
}

// NewCurrencyService creates a new currency service
func NewCurrencyService(currencyRepo repository.CurrencyRepository) *CurrencyService {
	return &CurrencyService{currencyRepo: currencyRepo}
}

// CreateCurrencyInput represents the create currency input
type CreateCurrencyInput struct {
	Code         string
	Name         string
	Symbol       string
	ExchangeRate decimal.Decimal
}

// Create registers a new currency
func (s *CurrencyService) Create(ctx context.Context, input *CreateCurrencyInput) (*entity.Currency, error) {
	code := strings.ToUpper(strings.TrimSpace(input.Code))
	if code == "" {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "code", Message: "code is required"},
		})
	}
	if !input.ExchangeRate.IsPositive() {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "exchange_rate", Message: "exchange rate must be positive"},
		})
	}

	existing, err := s.currencyRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Currency code already exists")
	}

	currency := &entity.Currency{
		Code:         code,
		Name:         input.Name,
		Symbol:       input.Symbol,
		ExchangeRate: input.ExchangeRate,
	}
	if err := s.currencyRepo.Create(ctx, currency); err != nil {
		return nil, err
	}
	return currency, nil
}

// GetByID returns a currency
func (s *CurrencyService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Currency, error) {
	currency, err := s.currencyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if currency == nil {
		return nil, apperror.NewNotFoundError("Currency")
	}
	return currency, nil
}

// List returns all currencies
func (s *CurrencyService) List(ctx context.Context) ([]entity.Currency, error) {
	return s.currencyRepo.List(ctx)
}

// UpdateCurrencyInput represents the update currency input. A changed
// exchange rate appends a row to the currency's history.
type UpdateCurrencyInput struct {
	Name         *string
	Symbol       *string
	ExchangeRate *decimal.Decimal
	UserID       uuid.UUID
	Notes        string
}

// Update modifies a currency. Rate changes are recorded in the audit trail
// before the new rate is saved.
func (s *CurrencyService) Update(ctx context.Context, id uuid.UUID, input *UpdateCurrencyInput) (*entity.Currency, error) {
	currency, err := s.currencyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if currency == nil {
		return nil, apperror.NewNotFoundError("Currency")
	}

	if input.Name != nil {
		currency.Name = *input.Name
	}
	if input.Symbol != nil {
		currency.Symbol = *input.Symbol
	}

	if input.ExchangeRate != nil && !input.ExchangeRate.Equal(currency.ExchangeRate) {
		if !input.ExchangeRate.IsPositive() {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "exchange_rate", Message: "exchange rate must be positive"},
			})
		}
		if currency.IsBase {
			return nil, apperror.NewBadRequestError("The base currency rate is fixed at 1")
		}

		history := &entity.CurrencyHistory{
			CurrencyID:    currency.ID,
			PreviousRate:  currency.ExchangeRate,
			NewRate:       *input.ExchangeRate,
			EffectiveDate: time.Now(),
			UserID:        input.UserID,
			Notes:         input.Notes,
		}
		if err := s.currencyRepo.AddHistory(ctx, history); err != nil {
			return nil, err
		}
		currency.ExchangeRate = *input.ExchangeRate
	}

	if err := s.currencyRepo.Update(ctx, currency); err != nil {
		return nil, err
	}
	return currency, nil
}

// Delete removes a currency. The base currency cannot be deleted.
func (s *CurrencyService) Delete(ctx context.Context, id uuid.UUID) error {
	currency, err := s.currencyRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if currency == nil {
		return apperror.NewNotFoundError("Currency")
	}
	if currency.IsBase {
		return apperror.NewBadRequestError("The base currency cannot be deleted")
	}
	return s.currencyRepo.Delete(ctx, id)
}

// RateHistoryItem is one audit-trail row with its rendered change label.
type RateHistoryItem struct {
	entity.CurrencyHistory
	Change    string `json:"change"`
	Direction string `json:"direction"`
}

// GetHistory returns a currency's rate changes, newest first, with the
// change rendered the way the dashboard shows it ("+0.050000", "No change").
func (s *CurrencyService) GetHistory(ctx context.Context, currencyID uuid.UUID) ([]RateHistoryItem, error) {
	currency, err := s.currencyRepo.GetByID(ctx, currencyID)
	if err != nil {
		return nil, err
	}
	if currency == nil {
		return nil, apperror.NewNotFoundError("Currency")
	}

	rows, err := s.currencyRepo.ListHistory(ctx, currencyID)
	if err != nil {
		return nil, err
	}

	items := make([]RateHistoryItem, 0, len(rows))
	for _, row := range rows {
		_, direction := finance.RateDiff(row.PreviousRate, row.NewRate)
		items = append(items, RateHistoryItem{
			CurrencyHistory: row,
			Change:          finance.FormatRateDiff(row.PreviousRate, row.NewRate),
			Direction:       string(direction),
		})
	}
	return items, nil
}

// ConvertInput represents a conversion request between two currencies
type ConvertInput struct {
	FromCode string
	ToCode   string
	Amount   decimal.Decimal
}

// ConvertResult is the outcome of a cross-currency conversion.
type ConvertResult struct {
	From      string          `json:"from"`
	To        string          `json:"to"`
	Amount    decimal.Decimal `json:"amount"`
	Converted decimal.Decimal `json:"converted"`
	Rate      decimal.Decimal `json:"rate"`
}

// Convert converts an amount between two currencies by crossing through
// the base currency: amount * fromRate / toRate.
func (s *CurrencyService) Convert(ctx context.Context, input *ConvertInput) (*ConvertResult, error) {
	if input.Amount.IsNegative() {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "amount", Message: "amount must not be negative"},
		})
	}

	from, err := s.currencyRepo.GetByCode(ctx, strings.ToUpper(strings.TrimSpace(input.FromCode)))
	if err != nil {
		return nil, err
	}
	if from == nil {
		return nil, apperror.NewNotFoundError("Source currency")
	}

	to, err := s.currencyRepo.GetByCode(ctx, strings.ToUpper(strings.TrimSpace(input.ToCode)))
	if err != nil {
		return nil, err
	}
	if to == nil {
		return nil, apperror.NewNotFoundError("Target currency")
	}
	if to.ExchangeRate.IsZero() {
		return nil, apperror.NewUnprocessableError("Target currency has no usable exchange rate")
	}

	rate := from.ExchangeRate.Div(to.ExchangeRate)
	converted := input.Amount.Mul(rate)

	return &ConvertResult{
		From:      from.Code,
		To:        to.Code,
		Amount:    input.Amount,
		Converted: converted,
		Rate:      rate,
	}, nil
}
