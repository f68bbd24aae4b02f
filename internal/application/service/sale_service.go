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

// SaleService handles sale business logic. Grand total, paid, due and
// payment status are always recomputed here from persisted state; client
// supplied values for those fields are ignored.
type SaleService struct {
	saleRepo     repository.SaleRepository
	customerRepo repository.CustomerRepository
}

// NewSaleService creates a new sale service
func NewSaleService(saleRepo repository.SaleRepository, customerRepo repository.CustomerRepository) *SaleService {
	return &SaleService{
		saleRepo:     saleRepo,
		customerRepo: customerRepo,
	}
}

// SaleItemInput is one product line of a sale submission.
type SaleItemInput struct {
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
}

// CreateSaleInput represents the create sale input
type CreateSaleInput struct {
	ShopID        uuid.UUID
	UserID        uuid.UUID
	CustomerID    *uuid.UUID
	WarehouseID   *uuid.UUID
	Items         []SaleItemInput
	Discount      decimal.Decimal
	Tax           decimal.Decimal
	PaidAmount    decimal.Decimal
	PaymentMethod enum.PaymentMethod
}

func (in *CreateSaleInput) validate() error {
	var fieldErrors []apperror.FieldError
	if len(in.Items) == 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "items", Message: "at least one item is required"})
	}
	for _, item := range in.Items {
		if item.Quantity <= 0 {
			fieldErrors = append(fieldErrors, apperror.FieldError{Field: "items", Message: "quantity must be positive"})
			break
		}
		if item.UnitPrice.IsNegative() {
			fieldErrors = append(fieldErrors, apperror.FieldError{Field: "items", Message: "unit price must not be negative"})
			break
		}
	}
	if in.Discount.IsNegative() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "discount", Message: "discount must not be negative"})
	}
	if in.Tax.IsNegative() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "tax", Message: "tax must not be negative"})
	}
	if in.PaidAmount.IsNegative() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "paid_amount", Message: "paid amount must not be negative"})
	}
	if !in.PaymentMethod.IsValid() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "payment_method", Message: "invalid payment method"})
	}
	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}
	return nil
}

// Create records a sale, deriving every money field server-side. A paid
// amount exceeding the grand total is credited to the customer's advance
// balance instead of producing a negative due.
func (s *SaleService) Create(ctx context.Context, input *CreateSaleInput) (*entity.Sale, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	items := make([]entity.SaleItem, 0, len(input.Items))
	totalAmount := decimal.Zero
	for _, in := range input.Items {
		lineTotal := in.UnitPrice.Mul(decimal.NewFromInt(int64(in.Quantity)))
		items = append(items, entity.SaleItem{
			ProductName: in.ProductName,
			Quantity:    in.Quantity,
			UnitPrice:   in.UnitPrice,
			Total:       lineTotal,
		})
		totalAmount = totalAmount.Add(lineTotal)
	}

	grandTotal := totalAmount.Sub(input.Discount).Add(input.Tax)
	if grandTotal.IsNegative() {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "discount", Message: "discount exceeds the sale total"},
		})
	}

	outcome := finance.ApplyPayment(grandTotal, decimal.Zero, input.PaidAmount)

	sale := &entity.Sale{
		ShopID:        input.ShopID,
		UserID:        input.UserID,
		CustomerID:    input.CustomerID,
		WarehouseID:   input.WarehouseID,
		InvoiceNo:     utils.GenerateInvoiceNo(),
		TotalAmount:   totalAmount,
		Discount:      input.Discount,
		Tax:           input.Tax,
		GrandTotal:    grandTotal,
		PaidAmount:    outcome.PaidAmount,
		DueAmount:     outcome.DueAmount,
		PaymentMethod: input.PaymentMethod,
		PaymentStatus: outcome.Status,
	}

	if err := s.saleRepo.Create(ctx, sale, items); err != nil {
		return nil, err
	}

	if outcome.Advance.IsPositive() && input.CustomerID != nil {
		if err := s.customerRepo.AdjustAdvance(ctx, *input.CustomerID, outcome.Advance); err != nil {
			return nil, err
		}
	}

	return s.saleRepo.GetByID(ctx, sale.ID)
}

// GetByID returns a sale with its items
func (s *SaleService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	sale, err := s.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}
	return sale, nil
}

// ListSalesInput bundles the server-side filter with the free-text term
// that is applied as a second pass over the fetched page.
type ListSalesInput struct {
	Filter *repository.SaleFilter
	Search string
}

// List returns a filtered, paginated page of sales. The free-text term
// re-filters the page over invoice number and customer name after the
// query filters ran, so applying it twice yields the same result.
func (s *SaleService) List(ctx context.Context, input *ListSalesInput, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Sale], error) {
	sales, total, err := s.saleRepo.List(ctx, input.Filter, params)
	if err != nil {
		return nil, err
	}

	sales = finance.Filter(sales, input.Search, func(sale entity.Sale) []string {
		return []string{sale.InvoiceNo, sale.CustomerName()}
	})

	return pagination.NewPaginatedResult(sales, pagination.NewPagination(params.Page, params.PerPage, total)), nil
}

// ListWithCursor returns sales using cursor pagination for infinite scroll
func (s *SaleService) ListWithCursor(ctx context.Context, input *ListSalesInput, params *pagination.CursorParams) (*pagination.CursorPaginatedResult[entity.Sale], error) {
	sales, err := s.saleRepo.ListWithCursor(ctx, input.Filter, params)
	if err != nil {
		return nil, err
	}

	cursor, trimmed := pagination.NewCursorPagination(sales, params.Limit,
		func(sale entity.Sale) string { return sale.ID.String() },
		func(sale entity.Sale) time.Time { return sale.CreatedAt },
	)

	trimmed = finance.Filter(trimmed, input.Search, func(sale entity.Sale) []string {
		return []string{sale.InvoiceNo, sale.CustomerName()}
	})

	return pagination.NewCursorPaginatedResult(trimmed, cursor), nil
}

// ListByLocation returns sales recorded against a warehouse or shop. A
// shop location must be the caller's own shop.
func (s *SaleService) ListByLocation(ctx context.Context, locType enum.LocationType, locationID, callerShopID uuid.UUID) ([]entity.Sale, error) {
	if !locType.IsValid() {
		return nil, apperror.NewBadRequestError("Unknown location type")
	}
	if locType == enum.LocationTypeShop && locationID != callerShopID {
		return nil, apperror.NewForbiddenError("Sales for another shop are not accessible")
	}
	return s.saleRepo.ListByLocation(ctx, locType, locationID)
}

// UpdateSaleInput represents the update sale input. Nil fields are left
// unchanged; money fields are re-derived after the update.
type UpdateSaleInput struct {
	Discount      *decimal.Decimal
	Tax           *decimal.Decimal
	PaymentMethod *enum.PaymentMethod
}

// Update modifies a sale's adjustable fields and re-derives its money state
func (s *SaleService) Update(ctx context.Context, id uuid.UUID, input *UpdateSaleInput) (*entity.Sale, error) {
	sale, err := s.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}

	if input.Discount != nil {
		if input.Discount.IsNegative() {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "discount", Message: "discount must not be negative"},
			})
		}
		sale.Discount = *input.Discount
	}
	if input.Tax != nil {
		if input.Tax.IsNegative() {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "tax", Message: "tax must not be negative"},
			})
		}
		sale.Tax = *input.Tax
	}
	if input.PaymentMethod != nil {
		if !input.PaymentMethod.IsValid() {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "payment_method", Message: "invalid payment method"},
			})
		}
		sale.PaymentMethod = *input.PaymentMethod
	}

	sale.GrandTotal = sale.TotalAmount.Sub(sale.Discount).Add(sale.Tax)
	if sale.GrandTotal.IsNegative() {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "discount", Message: "discount exceeds the sale total"},
		})
	}
	sale.DueAmount = finance.DueAmount(sale.GrandTotal, sale.PaidAmount)
	sale.PaymentStatus = finance.ClassifyPayment(sale.GrandTotal, sale.PaidAmount)

	if err := s.saleRepo.Update(ctx, sale); err != nil {
		return nil, err
	}
	return s.saleRepo.GetByID(ctx, id)
}

// Delete removes a sale
func (s *SaleService) Delete(ctx context.Context, id uuid.UUID) error {
	sale, err := s.saleRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if sale == nil {
		return apperror.NewNotFoundError("Sale")
	}
	return s.saleRepo.Delete(ctx, id)
}

// CustomerHistory is a customer's full purchase record with totals.
type CustomerHistory struct {
	Customer   *entity.Customer `json:"customer"`
	Sales      []entity.Sale    `json:"sales"`
	TotalSales int              `json:"total_sales"`
	TotalSpent decimal.Decimal  `json:"total_spent"`
	TotalPaid  decimal.Decimal  `json:"total_paid"`
	TotalDue   decimal.Decimal  `json:"total_due"`
}

// GetCustomerHistory returns a customer's sales with aggregate totals
func (s *SaleService) GetCustomerHistory(ctx context.Context, customerID uuid.UUID) (*CustomerHistory, error) {
	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	sales, err := s.saleRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	history := &CustomerHistory{
		Customer:   customer,
		Sales:      sales,
		TotalSales: len(sales),
		TotalSpent: decimal.Zero,
		TotalPaid:  decimal.Zero,
		TotalDue:   decimal.Zero,
	}
	for _, sale := range sales {
		history.TotalSpent = history.TotalSpent.Add(sale.GrandTotal)
		history.TotalPaid = history.TotalPaid.Add(sale.PaidAmount)
		history.TotalDue = history.TotalDue.Add(sale.DueAmount)
	}
	return history, nil
}
