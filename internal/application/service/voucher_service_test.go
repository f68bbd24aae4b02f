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
	"github.com/zakirya592/rk-co-pos-sub002/pkg/pagination"
)

type fakeVoucherRepo struct {
	vouchers map[uuid.UUID]*entity.Voucher
}

func newFakeVoucherRepo() *fakeVoucherRepo {
	return &fakeVoucherRepo{vouchers: make(map[uuid.UUID]*entity.Voucher)}
}

func (r *fakeVoucherRepo) Create(ctx context.Context, voucher *entity.Voucher, entries []entity.VoucherEntry) error {
	if voucher.ID == uuid.Nil {
		voucher.ID = uuid.New()
	}
	voucher.Entries = entries
	copied := *voucher
	r.vouchers[voucher.ID] = &copied
	return nil
}

func (r *fakeVoucherRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Voucher, error) {
	v, ok := r.vouchers[id]
	if !ok {
		return nil, nil
	}
	copied := *v
	return &copied, nil
}

func (r *fakeVoucherRepo) Update(ctx context.Context, voucher *entity.Voucher, entries []entity.VoucherEntry) error {
	if entries != nil {
		voucher.Entries = entries
	}
	copied := *voucher
	r.vouchers[voucher.ID] = &copied
	return nil
}

func (r *fakeVoucherRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.vouchers, id)
	return nil
}

func (r *fakeVoucherRepo) List(ctx context.Context, voucherType enum.VoucherType, params *pagination.PaginationParams) ([]entity.Voucher, int64, error) {
	var out []entity.Voucher
	for _, v := range r.vouchers {
		if v.Type == voucherType {
			out = append(out, *v)
		}
	}
	return out, int64(len(out)), nil
}

func newVoucherFixture(currencies ...*entity.Currency) (*VoucherService, *fakeVoucherRepo) {
	repo := newFakeVoucherRepo()
	return NewVoucherService(repo, newFakeCurrencyRepo(currencies...)), repo
}

func TestCreateBankPaymentVoucher(t *testing.T) {
	svc, _ := newVoucherFixture()

	voucher, err := svc.Create(context.Background(), &VoucherInput{
		ShopID:      uuid.New(),
		UserID:      uuid.New(),
		Type:        enum.VoucherTypeBankPayment,
		AccountName: "Meezan Bank",
		Amount:      dec("5000"),
		Fee:         dec("50"),
	})
	require.NoError(t, err)

	assert.Equal(t, enum.VoucherTypeBankPayment, voucher.Type)
	assert.NotEmpty(t, voucher.VoucherNo)
	assert.False(t, voucher.VoucherDate.IsZero())
	assert.True(t, voucher.ExchangeRate.Equal(decimal.NewFromInt(1)))
}

func TestCreateVoucherResolvesRateFromCurrency(t *testing.T) {
	usd := &entity.Currency{ID: uuid.New(), Code: "USD", ExchangeRate: dec("278.50")}
	svc, _ := newVoucherFixture(usd)

	voucher, err := svc.Create(context.Background(), &VoucherInput{
		Type:        enum.VoucherTypeSarafEntry,
		AccountName: "Saraf",
		Amount:      dec("100"),
		CurrencyID:  &usd.ID,
	})
	require.NoError(t, err)
	assert.True(t, voucher.ExchangeRate.Equal(dec("278.50")))
}

func TestCreateVoucherExplicitRateWins(t *testing.T) {
	usd := &entity.Currency{ID: uuid.New(), Code: "USD", ExchangeRate: dec("278.50")}
	svc, _ := newVoucherFixture(usd)
	override := dec("280")

	voucher, err := svc.Create(context.Background(), &VoucherInput{
		Type:         enum.VoucherTypeSarafEntry,
		AccountName:  "Saraf",
		Amount:       dec("100"),
		CurrencyID:   &usd.ID,
		ExchangeRate: &override,
	})
	require.NoError(t, err)
	assert.True(t, voucher.ExchangeRate.Equal(override))
}

func TestCreateVoucherRejectsUnknownType(t *testing.T) {
	svc, _ := newVoucherFixture()

	_, err := svc.Create(context.Background(), &VoucherInput{
		Type:        enum.VoucherType("petty_cash"),
		AccountName: "Till",
		Amount:      dec("10"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unknown voucher type")
}

func TestCreateVoucherRejectsMissingAccount(t *testing.T) {
	svc, _ := newVoucherFixture()

	_, err := svc.Create(context.Background(), &VoucherInput{
		Type:   enum.VoucherTypeBankPayment,
		Amount: dec("10"),
	})
	require.Error(t, err)
}

func TestCreateReconciliationRequiresBalancedEntries(t *testing.T) {
	svc, _ := newVoucherFixture()

	_, err := svc.Create(context.Background(), &VoucherInput{
		Type: enum.VoucherTypeReconciliation,
		Entries: []VoucherEntryInput{
			{AccountName: "Cash", Debit: dec("100")},
			{AccountName: "Bank", Credit: dec("90")},
		},
	})
	require.Error(t, err)
}

func TestCreateOpeningBalanceWithBalancedEntries(t *testing.T) {
	svc, _ := newVoucherFixture()

	voucher, err := svc.Create(context.Background(), &VoucherInput{
		Type: enum.VoucherTypeOpeningBalance,
		Entries: []VoucherEntryInput{
			{AccountName: "Cash", Debit: dec("1000")},
			{AccountName: "Capital", Credit: dec("1000")},
		},
	})
	require.NoError(t, err)
	require.Len(t, voucher.Entries, 2)
	assert.Equal(t, "Cash", voucher.Entries[0].AccountName)
}

func TestUpdateVoucherTypeImmutable(t *testing.T) {
	svc, repo := newVoucherFixture()

	created, err := svc.Create(context.Background(), &VoucherInput{
		Type:        enum.VoucherTypeBankPayment,
		AccountName: "Meezan Bank",
		Amount:      dec("5000"),
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, &VoucherInput{
		Type:        enum.VoucherTypeBankTransfer,
		AccountName: "Meezan Bank",
		Amount:      dec("6000"),
	})
	require.NoError(t, err)

	assert.Equal(t, enum.VoucherTypeBankPayment, updated.Type)
	assert.Equal(t, created.VoucherNo, updated.VoucherNo)
	assert.True(t, updated.Amount.Equal(dec("6000")))

	stored, _ := repo.GetByID(context.Background(), created.ID)
	assert.Equal(t, enum.VoucherTypeBankPayment, stored.Type)
}
