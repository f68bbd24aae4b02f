package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/zakirya592/rk-co-pos-sub002/internal/domain/entity"
	"github.com/zakirya592/rk-co-pos-sub002/internal/domain/enum"
	"github.com/zakirya592/rk-co-pos-sub002/internal/domain/finance"
	"github.com/zakirya592/rk-co-pos-sub002/internal/domain/repository"
	"github.com/zakirya592/rk-co-pos-sub002/pkg/apperror"
	"github.com/zakirya592/rk-co-pos-sub002/pkg/pagination"
)

// ExpenseService handles category expense records. TotalCost and the base
// currency amount are always recomputed from the charge fields and the
// record's exchange rate; client-computed totals are discarded.
type ExpenseService struct {
	expenseRepo  repository.ExpenseRepository
	currencyRepo repository.CurrencyRepository
}

// NewExpenseService creates a new expense service
func NewExpenseService(expenseRepo repository.ExpenseRepository, currencyRepo repository.CurrencyRepository) *ExpenseService {
	return &ExpenseService{
		expenseRepo:  expenseRepo,
		currencyRepo: currencyRepo,
	}
}

// ExpenseInput represents an expense submission. Charge fields not used by
// the record's category stay zero.
type ExpenseInput struct {
	ShopID   uuid.UUID
	UserID   uuid.UUID
	Category enum.ExpenseCategory

	BankCharges       decimal.Decimal
	FreightCost       decimal.Decimal
	CommissionAmount  decimal.Decimal
	InsuranceCost     decimal.Decimal
	CustomsDuty       decimal.Decimal
	HandlingCharges   decimal.Decimal
	MiscellaneousCost decimal.Decimal

	CurrencyID   uuid.UUID
	ExchangeRate *decimal.Decimal

	ShipmentNo      *string
	WarehouseID     *uuid.UUID
	TransporterName *string
	CustomerID      *uuid.UUID
	SalespersonName *string
	Notes           string
}

func (in *ExpenseInput) validate() error {
	var fieldErrors []apperror.FieldError
	if !in.Category.IsValid() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "category", Message: "invalid expense category"})
	}
	if in.CurrencyID == uuid.Nil {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "currency_id", Message: "currency is required"})
	}
	for _, f := range []struct {
		name  string
		value decimal.Decimal
	}{
		{"bank_charges", in.BankCharges},
		{"freight_cost", in.FreightCost},
		{"commission_amount", in.CommissionAmount},
		{"insurance_cost", in.InsuranceCost},
		{"customs_duty", in.CustomsDuty},
		{"handling_charges", in.HandlingCharges},
		{"miscellaneous_cost", in.MiscellaneousCost},
	} {
		if f.value.IsNegative() {
			fieldErrors = append(fieldErrors, apperror.FieldError{Field: f.name, Message: "must not be negative"})
		}
	}
	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}
	return nil
}

// resolveRate returns the exchange rate for the record: the explicit
// override when given, otherwise the currency's current rate.
func (s *ExpenseService) resolveRate(ctx context.Context, currencyID uuid.UUID, override *decimal.Decimal) (decimal.Decimal, error) {
	if override != nil {
		if !override.IsPositive() {
			return decimal.Zero, apperror.NewValidationError([]apperror.FieldError{
				{Field: "exchange_rate", Message: "exchange rate must be positive"},
			})
		}
		return *override, nil
	}

	currency, err := s.currencyRepo.GetByID(ctx, currencyID)
	if err != nil {
		return decimal.Zero, err
	}
	if currency == nil {
		return decimal.Zero, apperror.NewNotFoundError("Currency")
	}
	return currency.ExchangeRate, nil
}

func applyExpenseInput(expense *entity.Expense, input *ExpenseInput, rate decimal.Decimal) {
	expense.Category = input.Category
	expense.BankCharges = input.BankCharges
	expense.FreightCost = input.FreightCost
	expense.CommissionAmount = input.CommissionAmount
	expense.InsuranceCost = input.InsuranceCost
	expense.CustomsDuty = input.CustomsDuty
	expense.HandlingCharges = input.HandlingCharges
	expense.MiscellaneousCost = input.MiscellaneousCost
	expense.CurrencyID = input.CurrencyID
	expense.ExchangeRate = rate
	expense.ShipmentNo = input.ShipmentNo
	expense.WarehouseID = input.WarehouseID
	expense.TransporterName = input.TransporterName
	expense.CustomerID = input.CustomerID
	expense.SalespersonName = input.SalespersonName
	expense.Notes = input.Notes

	expense.TotalCost = finance.ExpenseTotal(expense.ChargeFields()...)
	expense.AmountInPKR = finance.ConvertToBase(expense.TotalCost, rate)
}

// Create records an expense with server-derived totals
func (s *ExpenseService) Create(ctx context.Context, input *ExpenseInput) (*entity.Expense, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	rate, err := s.resolveRate(ctx, input.CurrencyID, input.ExchangeRate)
	if err != nil {
		return nil, err
	}

	expense := &entity.Expense{
		ShopID: input.ShopID,
		UserID: input.UserID,
	}
	applyExpenseInput(expense, input, rate)

	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		return nil, err
	}
	return s.expenseRepo.GetByID(ctx, expense.ID)
}

// GetByID returns an expense
func (s *ExpenseService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	expense, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, apperror.NewNotFoundError("Expense")
	}
	return expense, nil
}

// List returns one category's expenses with a category-wide total in the
// base currency.
type ExpenseListResult struct {
	Expenses      *pagination.PaginatedResult[entity.Expense] `json:"expenses"`
	CategoryTotal decimal.Decimal                             `json:"category_total_pkr"`
}

// List returns a page of one category's expenses
func (s *ExpenseService) List(ctx context.Context, category enum.ExpenseCategory, params *pagination.PaginationParams) (*ExpenseListResult, error) {
	if !category.IsValid() {
		return nil, apperror.NewBadRequestError("Unknown expense category")
	}

	expenses, total, err := s.expenseRepo.List(ctx, category, params)
	if err != nil {
		return nil, err
	}

	categoryTotal := decimal.Zero
	for _, e := range expenses {
		categoryTotal = categoryTotal.Add(e.AmountInPKR)
	}

	return &ExpenseListResult{
		Expenses:      pagination.NewPaginatedResult(expenses, pagination.NewPagination(params.Page, params.PerPage, total)),
		CategoryTotal: categoryTotal,
	}, nil
}

// Update rewrites an expense and re-derives its totals
func (s *ExpenseService) Update(ctx context.Context, id uuid.UUID, input *ExpenseInput) (*entity.Expense, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	expense, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, apperror.NewNotFoundError("Expense")
	}

	rate, err := s.resolveRate(ctx, input.CurrencyID, input.ExchangeRate)
	if err != nil {
		return nil, err
	}

	applyExpenseInput(expense, input, rate)

	if err := s.expenseRepo.Update(ctx, expense); err != nil {
		return nil, err
	}
	return s.expenseRepo.GetByID(ctx, id)
}

// Delete removes an expense
func (s *ExpenseService) Delete(ctx context.Context, id uuid.UUID) error {
	expense, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if expense == nil {
		return apperror.NewNotFoundError("Expense")
	}
	return s.expenseRepo.Delete(ctx, id)
}
