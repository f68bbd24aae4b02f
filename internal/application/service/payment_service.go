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
)

// PaymentService records incremental customer payments against sales and
// manages customer advance balances.
type PaymentService struct {
	paymentRepo  repository.PaymentRepository
	saleRepo     repository.SaleRepository
	customerRepo repository.CustomerRepository
}

// NewPaymentService creates a new payment service
func NewPaymentService(
	paymentRepo repository.PaymentRepository,
	saleRepo repository.SaleRepository,
	customerRepo repository.CustomerRepository,
) *PaymentService {
	return &PaymentService{
		paymentRepo:  paymentRepo,
		saleRepo:     saleRepo,
		customerRepo: customerRepo,
	}
}

// RecordPaymentInput represents a customer payment submission
type RecordPaymentInput struct {
	SaleID uuid.UUID
	UserID uuid.UUID
	Amount decimal.Decimal
	Method enum.PaymentMethod
	Notes  string
}

// PaymentResult is the updated sale state after a payment was applied.
type PaymentResult struct {
	Payment *entity.Payment `json:"payment"`
	Sale    *entity.Sale    `json:"sale"`
	// AdvanceCredited is the overpaid portion that went to the customer's
	// advance balance, zero when the payment did not exceed the due.
	AdvanceCredited decimal.Decimal `json:"advance_credited"`
}

// RecordCustomerPayment applies a payment to a sale. The new paid amount is
// derived from the sale's persisted state plus the increment; any excess
// over the grand total is credited to the customer's advance balance.
func (s *PaymentService) RecordCustomerPayment(ctx context.Context, input *RecordPaymentInput) (*PaymentResult, error) {
	if !input.Amount.IsPositive() {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "amount", Message: "amount must be positive"},
		})
	}
	if !input.Method.IsValid() {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "method", Message: "invalid payment method"},
		})
	}

	sale, err := s.saleRepo.GetByID(ctx, input.SaleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}

	outcome := finance.ApplyPayment(sale.GrandTotal, sale.PaidAmount, input.Amount)

	sale.PaidAmount = outcome.PaidAmount
	sale.DueAmount = outcome.DueAmount
	sale.PaymentStatus = outcome.Status

	if err := s.saleRepo.Update(ctx, sale); err != nil {
		return nil, err
	}

	payment := &entity.Payment{
		ShopID:     sale.ShopID,
		SaleID:     sale.ID,
		CustomerID: sale.CustomerID,
		UserID:     input.UserID,
		Amount:     input.Amount,
		Method:     input.Method,
		Notes:      input.Notes,
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	if outcome.Advance.IsPositive() && sale.CustomerID != nil {
		if err := s.customerRepo.AdjustAdvance(ctx, *sale.CustomerID, outcome.Advance); err != nil {
			return nil, err
		}
	}

	updated, err := s.saleRepo.GetByID(ctx, sale.ID)
	if err != nil {
		return nil, err
	}

	return &PaymentResult{
		Payment:         payment,
		Sale:            updated,
		AdvanceCredited: outcome.Advance,
	}, nil
}

// ApplyAdvanceInput represents an apply-customer-advance submission
type ApplyAdvanceInput struct {
	CustomerID uuid.UUID
	SaleID     uuid.UUID
	UserID     uuid.UUID
	Amount     decimal.Decimal
}

// ApplyCustomerAdvance pays down a sale from the customer's accumulated
// advance balance. The amount must not exceed either the advance balance
// or the sale's outstanding due.
func (s *PaymentService) ApplyCustomerAdvance(ctx context.Context, input *ApplyAdvanceInput) (*PaymentResult, error) {
	if !input.Amount.IsPositive() {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "amount", Message: "amount must be positive"},
		})
	}

	customer, err := s.customerRepo.GetByID(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	if customer.AdvanceBalance.LessThan(input.Amount) {
		return nil, apperror.NewUnprocessableError("Amount exceeds the customer's advance balance")
	}

	sale, err := s.saleRepo.GetByID(ctx, input.SaleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}
	if sale.CustomerID == nil || *sale.CustomerID != input.CustomerID {
		return nil, apperror.NewBadRequestError("Sale does not belong to this customer")
	}
	if sale.DueAmount.LessThan(input.Amount) {
		return nil, apperror.NewUnprocessableError("Amount exceeds the sale's outstanding due")
	}

	// Debit the advance first; the repository guards against the balance
	// going negative under concurrent requests.
	if err := s.customerRepo.AdjustAdvance(ctx, input.CustomerID, input.Amount.Neg()); err != nil {
		return nil, apperror.NewUnprocessableError("Amount exceeds the customer's advance balance")
	}

	outcome := finance.ApplyPayment(sale.GrandTotal, sale.PaidAmount, input.Amount)
	sale.PaidAmount = outcome.PaidAmount
	sale.DueAmount = outcome.DueAmount
	sale.PaymentStatus = outcome.Status

	if err := s.saleRepo.Update(ctx, sale); err != nil {
		return nil, err
	}

	payment := &entity.Payment{
		ShopID:      sale.ShopID,
		SaleID:      sale.ID,
		CustomerID:  sale.CustomerID,
		UserID:      input.UserID,
		Amount:      input.Amount,
		Method:      enum.PaymentMethodCash,
		FromAdvance: true,
		Notes:       "Applied from advance balance",
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	updated, err := s.saleRepo.GetByID(ctx, sale.ID)
	if err != nil {
		return nil, err
	}

	return &PaymentResult{
		Payment:         payment,
		Sale:            updated,
		AdvanceCredited: decimal.Zero,
	}, nil
}

// ListBySale returns the payments recorded against a sale, oldest first
func (s *PaymentService) ListBySale(ctx context.Context, saleID uuid.UUID) ([]entity.Payment, error) {
	return s.paymentRepo.ListBySale(ctx, saleID)
}

// ListByCustomer returns a customer's payments, newest first
func (s *PaymentService) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]entity.Payment, error) {
	return s.paymentRepo.ListByCustomer(ctx, customerID)
}
