package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/zakirya592/rk-co-pos-sub002/internal/domain/entity"
	"github.com/zakirya592/rk-co-pos-sub002/internal/domain/enum"
	"github.com/zakirya592/rk-co-pos-sub002/internal/domain/finance"
	"github.com/zakirya592/rk-co-pos-sub002/internal/domain/repository"
	"github.com/zakirya592/rk-co-pos-sub002/pkg/apperror"
	"github.com/zakirya592/rk-co-pos-sub002/pkg/pagination"
	"github.com/zakirya592/rk-co-pos-sub002/pkg/utils"
)

// VoucherService handles the five journal-style voucher variants. Entry
// carrying vouchers are rejected before any write when their debits and
// credits do not balance.
type VoucherService struct {
	voucherRepo  repository.VoucherRepository
	currencyRepo repository.CurrencyRepository
}

// NewVoucherService creates a new voucher service
func NewVoucherService(voucherRepo repository.VoucherRepository, currencyRepo repository.CurrencyRepository) *VoucherService {
	return &VoucherService{
		voucherRepo:  voucherRepo,
		currencyRepo: currencyRepo,
	}
}

// VoucherEntryInput is one debit/credit line of a voucher submission.
type VoucherEntryInput struct {
	AccountName string
	Debit       decimal.Decimal
	Credit      decimal.Decimal
}

// VoucherInput represents a voucher submission
type VoucherInput struct {
	ShopID           uuid.UUID
	UserID           uuid.UUID
	Type             enum.VoucherType
	VoucherDate      time.Time
	AccountName      string
	CounterpartyName *string
	Amount           decimal.Decimal
	Fee              decimal.Decimal
	CurrencyID       *uuid.UUID
	ExchangeRate     *decimal.Decimal
	AttachmentPath   *string
	Notes            string
	Entries          []VoucherEntryInput
}

func toLedgerEntries(inputs []VoucherEntryInput) []finance.LedgerEntry {
	entries := make([]finance.LedgerEntry, 0, len(inputs))
	for _, in := range inputs {
		entries = append(entries, finance.LedgerEntry{
			AccountName: in.AccountName,
			Debit:       in.Debit,
			Credit:      in.Credit,
		})
	}
	return entries
}

func toEntityEntries(inputs []VoucherEntryInput) []entity.VoucherEntry {
	entries := make([]entity.VoucherEntry, 0, len(inputs))
	for _, in := range inputs {
		entries = append(entries, entity.VoucherEntry{
			AccountName: in.AccountName,
			Debit:       in.Debit,
			Credit:      in.Credit,
		})
	}
	return entries
}

func (s *VoucherService) validate(input *VoucherInput) error {
	if !input.Type.IsValid() {
		return apperror.NewBadRequestError("Unknown voucher type")
	}

	if input.Type.HasEntries() {
		return finance.EntriesBalanced(toLedgerEntries(input.Entries))
	}

	var fieldErrors []apperror.FieldError
	if input.AccountName == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "account_name", Message: "account name is required"})
	}
	if !input.Amount.IsPositive() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "amount", Message: "amount must be positive"})
	}
	if input.Fee.IsNegative() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "fee", Message: "fee must not be negative"})
	}
	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}
	return nil
}

// resolveRate defaults the voucher's exchange rate from its currency when
// no explicit rate was submitted. Vouchers without a currency stay at 1.
func (s *VoucherService) resolveRate(ctx context.Context, input *VoucherInput) (decimal.Decimal, error) {
	if input.ExchangeRate != nil {
		if !input.ExchangeRate.IsPositive() {
			return decimal.Zero, apperror.NewValidationError([]apperror.FieldError{
				{Field: "exchange_rate", Message: "exchange rate must be positive"},
			})
		}
		return *input.ExchangeRate, nil
	}
	if input.CurrencyID == nil {
		return decimal.NewFromInt(1), nil
	}

	currency, err := s.currencyRepo.GetByID(ctx, *input.CurrencyID)
	if err != nil {
		return decimal.Zero, err
	}
	if currency == nil {
		return decimal.Zero, apperror.NewNotFoundError("Currency")
	}
	return currency.ExchangeRate, nil
}

// Create records a voucher of the given type
func (s *VoucherService) Create(ctx context.Context, input *VoucherInput) (*entity.Voucher, error) {
	if err := s.validate(input); err != nil {
		return nil, err
	}

	rate, err := s.resolveRate(ctx, input)
	if err != nil {
		return nil, err
	}

	voucherDate := input.VoucherDate
	if voucherDate.IsZero() {
		voucherDate = time.Now()
	}

	voucher := &entity.Voucher{
		ShopID:           input.ShopID,
		UserID:           input.UserID,
		Type:             input.Type,
		VoucherNo:        utils.GenerateVoucherNo(input.Type.ReferencePrefix()),
		VoucherDate:      voucherDate,
		AccountName:      input.AccountName,
		CounterpartyName: input.CounterpartyName,
		Amount:           input.Amount,
		Fee:              input.Fee,
		CurrencyID:       input.CurrencyID,
		ExchangeRate:     rate,
		AttachmentPath:   input.AttachmentPath,
		Notes:            input.Notes,
	}

	var entries []entity.VoucherEntry
	if input.Type.HasEntries() {
		entries = toEntityEntries(input.Entries)
	}

	if err := s.voucherRepo.Create(ctx, voucher, entries); err != nil {
		return nil, err
	}
	return s.voucherRepo.GetByID(ctx, voucher.ID)
}

// GetByID returns a voucher with its entries
func (s *VoucherService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Voucher, error) {
	voucher, err := s.voucherRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if voucher == nil {
		return nil, apperror.NewNotFoundError("Voucher")
	}
	return voucher, nil
}

// List returns a page of one type's vouchers
func (s *VoucherService) List(ctx context.Context, voucherType enum.VoucherType, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Voucher], error) {
	if !voucherType.IsValid() {
		return nil, apperror.NewBadRequestError("Unknown voucher type")
	}

	vouchers, total, err := s.voucherRepo.List(ctx, voucherType, params)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(vouchers, pagination.NewPagination(params.Page, params.PerPage, total)), nil
}

// Update rewrites a voucher. The voucher's type and number are immutable;
// when the submission carries entries the whole list is replaced after
// re-validating the balance.
func (s *VoucherService) Update(ctx context.Context, id uuid.UUID, input *VoucherInput) (*entity.Voucher, error) {
	voucher, err := s.voucherRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if voucher == nil {
		return nil, apperror.NewNotFoundError("Voucher")
	}

	input.Type = voucher.Type
	if err := s.validate(input); err != nil {
		return nil, err
	}

	rate, err := s.resolveRate(ctx, input)
	if err != nil {
		return nil, err
	}

	if !input.VoucherDate.IsZero() {
		voucher.VoucherDate = input.VoucherDate
	}
	voucher.AccountName = input.AccountName
	voucher.CounterpartyName = input.CounterpartyName
	voucher.Amount = input.Amount
	voucher.Fee = input.Fee
	voucher.CurrencyID = input.CurrencyID
	voucher.ExchangeRate = rate
	voucher.Notes = input.Notes
	if input.AttachmentPath != nil {
		voucher.AttachmentPath = input.AttachmentPath
	}

	var entries []entity.VoucherEntry
	if voucher.Type.HasEntries() {
		entries = toEntityEntries(input.Entries)
	}

	if err := s.voucherRepo.Update(ctx, voucher, entries); err != nil {
		return nil, err
	}
	return s.voucherRepo.GetByID(ctx, id)
}

// Delete removes a voucher and its entries
func (s *VoucherService) Delete(ctx context.Context, id uuid.UUID) error {
	voucher, err := s.voucherRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if voucher == nil {
		return apperror.NewNotFoundError("Voucher")
	}
	return s.voucherRepo.Delete(ctx, id)
}
