package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zakirya592/rk-co-pos-sub002/internal/domain/entity"
	"github.com/zakirya592/rk-co-pos-sub002/internal/domain/enum"
	"github.com/zakirya592/rk-co-pos-sub002/internal/domain/repository"
	"github.com/zakirya592/rk-co-pos-sub002/pkg/apperror"
	"github.com/zakirya592/rk-co-pos-sub002/pkg/pagination"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type fakeSaleRepo struct {
	sales map[uuid.UUID]*entity.Sale
}

func newFakeSaleRepo(sales ...*entity.Sale) *fakeSaleRepo {
	r := &fakeSaleRepo{sales: make(map[uuid.UUID]*entity.Sale)}
	for _, s := range sales {
		copied := *s
		r.sales[s.ID] = &copied
	}
	return r
}

func (r *fakeSaleRepo) Create(ctx context.Context, sale *entity.Sale, items []entity.SaleItem) error {
	if sale.ID == uuid.Nil {
		sale.ID = uuid.New()
	}
	copied := *sale
	r.sales[sale.ID] = &copied
	return nil
}

func (r *fakeSaleRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	s, ok := r.sales[id]
	if !ok {
		return nil, nil
	}
	copied := *s
	return &copied, nil
}

func (r *fakeSaleRepo) Update(ctx context.Context, sale *entity.Sale) error {
	copied := *sale
	r.sales[sale.ID] = &copied
	return nil
}

func (r *fakeSaleRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.sales, id)
	return nil
}

func (r *fakeSaleRepo) List(ctx context.Context, filter *repository.SaleFilter, params *pagination.PaginationParams) ([]entity.Sale, int64, error) {
	return nil, 0, nil
}

func (r *fakeSaleRepo) ListWithCursor(ctx context.Context, filter *repository.SaleFilter, params *pagination.CursorParams) ([]entity.Sale, error) {
	return nil, nil
}

func (r *fakeSaleRepo) ListAll(ctx context.Context, filter *repository.SaleFilter) ([]entity.Sale, error) {
	out := make([]entity.Sale, 0, len(r.sales))
	for _, s := range r.sales {
		out = append(out, *s)
	}
	return out, nil
}

func (r *fakeSaleRepo) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]entity.Sale, error) {
	var out []entity.Sale
	for _, s := range r.sales {
		if s.CustomerID != nil && *s.CustomerID == customerID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeSaleRepo) ListByLocation(ctx context.Context, locType enum.LocationType, locationID uuid.UUID) ([]entity.Sale, error) {
	var out []entity.Sale
	for _, s := range r.sales {
		switch locType {
		case enum.LocationTypeWarehouse:
			if s.WarehouseID != nil && *s.WarehouseID == locationID {
				out = append(out, *s)
			}
		case enum.LocationTypeShop:
			if s.ShopID == locationID {
				out = append(out, *s)
			}
		}
	}
	return out, nil
}

type fakePaymentRepo struct {
	payments []entity.Payment
}

func (r *fakePaymentRepo) Create(ctx context.Context, payment *entity.Payment) error {
	if payment.ID == uuid.Nil {
		payment.ID = uuid.New()
	}
	r.payments = append(r.payments, *payment)
	return nil
}

func (r *fakePaymentRepo) ListBySale(ctx context.Context, saleID uuid.UUID) ([]entity.Payment, error) {
	var out []entity.Payment
	for _, p := range r.payments {
		if p.SaleID == saleID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePaymentRepo) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]entity.Payment, error) {
	var out []entity.Payment
	for _, p := range r.payments {
		if p.CustomerID != nil && *p.CustomerID == customerID {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeCustomerRepo struct {
	customers map[uuid.UUID]*entity.Customer
}

func newFakeCustomerRepo(customers ...*entity.Customer) *fakeCustomerRepo {
	r := &fakeCustomerRepo{customers: make(map[uuid.UUID]*entity.Customer)}
	for _, c := range customers {
		copied := *c
		r.customers[c.ID] = &copied
	}
	return r
}

func (r *fakeCustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	copied := *customer
	r.customers[customer.ID] = &copied
	return nil
}

func (r *fakeCustomerRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, nil
	}
	copied := *c
	return &copied, nil
}

func (r *fakeCustomerRepo) Update(ctx context.Context, customer *entity.Customer) error {
	copied := *customer
	r.customers[customer.ID] = &copied
	return nil
}

func (r *fakeCustomerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.customers, id)
	return nil
}

func (r *fakeCustomerRepo) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Customer, int64, error) {
	return nil, 0, nil
}

func (r *fakeCustomerRepo) ListWithCursor(ctx context.Context, params *pagination.CursorParams, search string) ([]entity.Customer, error) {
	return nil, nil
}

func (r *fakeCustomerRepo) AdjustAdvance(ctx context.Context, id uuid.UUID, delta decimal.Decimal) error {
	c, ok := r.customers[id]
	if !ok {
		return apperror.NewNotFoundError("Customer")
	}
	next := c.AdvanceBalance.Add(delta)
	if next.IsNegative() {
		return apperror.NewUnprocessableError("Amount exceeds the customer's advance balance")
	}
	c.AdvanceBalance = next
	return nil
}

func newPaymentFixture(t *testing.T, sale *entity.Sale, customer *entity.Customer) (*PaymentService, *fakeSaleRepo, *fakePaymentRepo, *fakeCustomerRepo) {
	t.Helper()
	saleRepo := newFakeSaleRepo(sale)
	paymentRepo := &fakePaymentRepo{}
	customerRepo := newFakeCustomerRepo(customer)
	return NewPaymentService(paymentRepo, saleRepo, customerRepo), saleRepo, paymentRepo, customerRepo
}

func creditSale(customerID uuid.UUID, grand, paid string) *entity.Sale {
	id := customerID
	sale := &entity.Sale{
		ID:         uuid.New(),
		ShopID:     uuid.New(),
		CustomerID: &id,
		InvoiceNo:  "INV-001",
		GrandTotal: dec(grand),
		PaidAmount: dec(paid),
	}
	sale.DueAmount = sale.GrandTotal.Sub(sale.PaidAmount)
	if sale.PaidAmount.IsZero() {
		sale.PaymentStatus = enum.PaymentStatusUnpaid
	} else {
		sale.PaymentStatus = enum.PaymentStatusPartial
	}
	return sale
}

func TestRecordCustomerPaymentPartial(t *testing.T) {
	customer := &entity.Customer{ID: uuid.New(), Name: "Ali"}
	sale := creditSale(customer.ID, "1000", "0")
	svc, saleRepo, paymentRepo, _ := newPaymentFixture(t, sale, customer)

	result, err := svc.RecordCustomerPayment(context.Background(), &RecordPaymentInput{
		SaleID: sale.ID,
		UserID: uuid.New(),
		Amount: dec("400"),
		Method: enum.PaymentMethodCash,
	})
	require.NoError(t, err)

	assert.True(t, result.Sale.PaidAmount.Equal(dec("400")))
	assert.True(t, result.Sale.DueAmount.Equal(dec("600")))
	assert.Equal(t, enum.PaymentStatusPartial, result.Sale.PaymentStatus)
	assert.True(t, result.AdvanceCredited.IsZero())

	stored, _ := saleRepo.GetByID(context.Background(), sale.ID)
	assert.True(t, stored.PaidAmount.Equal(dec("400")))
	require.Len(t, paymentRepo.payments, 1)
	assert.True(t, paymentRepo.payments[0].Amount.Equal(dec("400")))
}

func TestRecordCustomerPaymentOverpayCreditsAdvance(t *testing.T) {
	customer := &entity.Customer{ID: uuid.New(), Name: "Ali"}
	sale := creditSale(customer.ID, "1000", "800")
	svc, _, _, customerRepo := newPaymentFixture(t, sale, customer)

	result, err := svc.RecordCustomerPayment(context.Background(), &RecordPaymentInput{
		SaleID: sale.ID,
		UserID: uuid.New(),
		Amount: dec("500"),
		Method: enum.PaymentMethodBankTransfer,
	})
	require.NoError(t, err)

	// Paid is capped conceptually by status, the excess lands on the
	// customer's advance balance.
	assert.Equal(t, enum.PaymentStatusPaid, result.Sale.PaymentStatus)
	assert.True(t, result.Sale.DueAmount.IsZero())
	assert.True(t, result.AdvanceCredited.Equal(dec("300")))

	updated, _ := customerRepo.GetByID(context.Background(), customer.ID)
	assert.True(t, updated.AdvanceBalance.Equal(dec("300")))
}

func TestRecordCustomerPaymentRejectsNonPositiveAmount(t *testing.T) {
	customer := &entity.Customer{ID: uuid.New()}
	sale := creditSale(customer.ID, "100", "0")
	svc, _, _, _ := newPaymentFixture(t, sale, customer)

	_, err := svc.RecordCustomerPayment(context.Background(), &RecordPaymentInput{
		SaleID: sale.ID,
		Amount: dec("0"),
		Method: enum.PaymentMethodCash,
	})
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, 422, appErr.Code)
}

func TestRecordCustomerPaymentUnknownSale(t *testing.T) {
	customer := &entity.Customer{ID: uuid.New()}
	sale := creditSale(customer.ID, "100", "0")
	svc, _, _, _ := newPaymentFixture(t, sale, customer)

	_, err := svc.RecordCustomerPayment(context.Background(), &RecordPaymentInput{
		SaleID: uuid.New(),
		Amount: dec("50"),
		Method: enum.PaymentMethodCash,
	})
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.Code)
}

func TestApplyCustomerAdvanceSettlesDue(t *testing.T) {
	customer := &entity.Customer{ID: uuid.New(), Name: "Ali", AdvanceBalance: dec("500")}
	sale := creditSale(customer.ID, "1000", "700")
	svc, _, paymentRepo, customerRepo := newPaymentFixture(t, sale, customer)

	result, err := svc.ApplyCustomerAdvance(context.Background(), &ApplyAdvanceInput{
		CustomerID: customer.ID,
		SaleID:     sale.ID,
		UserID:     uuid.New(),
		Amount:     dec("300"),
	})
	require.NoError(t, err)

	assert.Equal(t, enum.PaymentStatusPaid, result.Sale.PaymentStatus)
	assert.True(t, result.Sale.DueAmount.IsZero())

	updated, _ := customerRepo.GetByID(context.Background(), customer.ID)
	assert.True(t, updated.AdvanceBalance.Equal(dec("200")))

	require.Len(t, paymentRepo.payments, 1)
	assert.True(t, paymentRepo.payments[0].FromAdvance)
	assert.Equal(t, enum.PaymentMethodCash, paymentRepo.payments[0].Method)
}

func TestApplyCustomerAdvanceRejectsInsufficientBalance(t *testing.T) {
	customer := &entity.Customer{ID: uuid.New(), AdvanceBalance: dec("100")}
	sale := creditSale(customer.ID, "1000", "0")
	svc, _, _, _ := newPaymentFixture(t, sale, customer)

	_, err := svc.ApplyCustomerAdvance(context.Background(), &ApplyAdvanceInput{
		CustomerID: customer.ID,
		SaleID:     sale.ID,
		Amount:     dec("200"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "advance balance")
}

func TestApplyCustomerAdvanceRejectsAmountOverDue(t *testing.T) {
	customer := &entity.Customer{ID: uuid.New(), AdvanceBalance: dec("1000")}
	sale := creditSale(customer.ID, "1000", "900")
	svc, _, _, _ := newPaymentFixture(t, sale, customer)

	_, err := svc.ApplyCustomerAdvance(context.Background(), &ApplyAdvanceInput{
		CustomerID: customer.ID,
		SaleID:     sale.ID,
		Amount:     dec("200"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "outstanding due")
}

func TestApplyCustomerAdvanceRejectsForeignSale(t *testing.T) {
	customer := &entity.Customer{ID: uuid.New(), AdvanceBalance: dec("500")}
	other := uuid.New()
	sale := creditSale(other, "1000", "0")
	saleRepo := newFakeSaleRepo(sale)
	customerRepo := newFakeCustomerRepo(customer)
	svc := NewPaymentService(&fakePaymentRepo{}, saleRepo, customerRepo)

	_, err := svc.ApplyCustomerAdvance(context.Background(), &ApplyAdvanceInput{
		CustomerID: customer.ID,
		SaleID:     sale.ID,
		Amount:     dec("100"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not belong")
}
