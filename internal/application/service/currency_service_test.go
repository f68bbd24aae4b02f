package service

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zakirya592/rk-co-pos-sub002/internal/domain/entity"
)

type fakeCurrencyRepo struct {
	currencies map[uuid.UUID]*entity.Currency
	history    []entity.CurrencyHistory
}

func newFakeCurrencyRepo(currencies ...*entity.Currency) *fakeCurrencyRepo {
	r := &fakeCurrencyRepo{currencies: make(map[uuid.UUID]*entity.Currency)}
	for _, c := range currencies {
		copied := *c
		r.currencies[c.ID] = &copied
	}
	return r
}

func (r *fakeCurrencyRepo) Create(ctx context.Context, currency *entity.Currency) error {
	if currency.ID == uuid.Nil {
		currency.ID = uuid.New()
	}
	copied := *currency
	r.currencies[currency.ID] = &copied
	return nil
}

func (r *fakeCurrencyRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Currency, error) {
	c, ok := r.currencies[id]
	if !ok {
		return nil, nil
	}
	copied := *c
	return &copied, nil
}

func (r *fakeCurrencyRepo) GetByCode(ctx context.Context, code string) (*entity.Currency, error) {
	for _, c := range r.currencies {
		if strings.EqualFold(c.Code, code) {
			copied := *c
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeCurrencyRepo) GetBase(ctx context.Context) (*entity.Currency, error) {
	for _, c := range r.currencies {
		if c.IsBase {
			copied := *c
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeCurrencyRepo) Update(ctx context.Context, currency *entity.Currency) error {
	copied := *currency
	r.currencies[currency.ID] = &copied
	return nil
}

func (r *fakeCurrencyRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.currencies, id)
	return nil
}

func (r *fakeCurrencyRepo) List(ctx context.Context) ([]entity.Currency, error) {
	out := make([]entity.Currency, 0, len(r.currencies))
	for _, c := range r.currencies {
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeCurrencyRepo) AddHistory(ctx context.Context, history *entity.CurrencyHistory) error {
	if history.ID == uuid.Nil {
		history.ID = uuid.New()
	}
	r.history = append(r.history, *history)
	return nil
}

func (r *fakeCurrencyRepo) ListHistory(ctx context.Context, currencyID uuid.UUID) ([]entity.CurrencyHistory, error) {
	var out []entity.CurrencyHistory
	for i := len(r.history) - 1; i >= 0; i-- {
		if r.history[i].CurrencyID == currencyID {
			out = append(out, r.history[i])
		}
	}
	return out, nil
}

func currencyFixture() (*entity.Currency, *entity.Currency, *fakeCurrencyRepo, *CurrencyService) {
	base := &entity.Currency{
		ID:           uuid.New(),
		Code:         "PKR",
		Name:         "Pakistani Rupee",
		Symbol:       "Rs",
		ExchangeRate: dec("1"),
		IsBase:       true,
	}
	usd := &entity.Currency{
		ID:           uuid.New(),
		Code:         "USD",
		Name:         "US Dollar",
		Symbol:       "$",
		ExchangeRate: dec("278.50"),
	}
	repo := newFakeCurrencyRepo(base, usd)
	return base, usd, repo, NewCurrencyService(repo)
}

func TestCreateCurrencyUppercasesCode(t *testing.T) {
	_, _, _, svc := currencyFixture()

	created, err := svc.Create(context.Background(), &CreateCurrencyInput{
		Code:         " aed ",
		Name:         "UAE Dirham",
		ExchangeRate: dec("75.80"),
	})
	require.NoError(t, err)
	assert.Equal(t, "AED", created.Code)
}

func TestCreateCurrencyRejectsDuplicateCode(t *testing.T) {
	_, _, _, svc := currencyFixture()

	_, err := svc.Create(context.Background(), &CreateCurrencyInput{
		Code:         "usd",
		Name:         "US Dollar",
		ExchangeRate: dec("278"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestUpdateRateAppendsHistory(t *testing.T) {
	_, usd, repo, svc := currencyFixture()
	userID := uuid.New()
	newRate := dec("280.25")

	updated, err := svc.Update(context.Background(), usd.ID, &UpdateCurrencyInput{
		ExchangeRate: &newRate,
		UserID:       userID,
		Notes:        "market move",
	})
	require.NoError(t, err)
	assert.True(t, updated.ExchangeRate.Equal(newRate))

	require.Len(t, repo.history, 1)
	row := repo.history[0]
	assert.Equal(t, usd.ID, row.CurrencyID)
	assert.True(t, row.PreviousRate.Equal(dec("278.50")))
	assert.True(t, row.NewRate.Equal(newRate))
	assert.Equal(t, userID, row.UserID)
	assert.Equal(t, "market move", row.Notes)
}

func TestUpdateSameRateSkipsHistory(t *testing.T) {
	_, usd, repo, svc := currencyFixture()
	sameRate := dec("278.50")

	_, err := svc.Update(context.Background(), usd.ID, &UpdateCurrencyInput{
		ExchangeRate: &sameRate,
	})
	require.NoError(t, err)
	assert.Empty(t, repo.history)
}

func TestUpdateBaseRateRejected(t *testing.T) {
	base, _, repo, svc := currencyFixture()
	newRate := dec("2")

	_, err := svc.Update(context.Background(), base.ID, &UpdateCurrencyInput{
		ExchangeRate: &newRate,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base currency rate")
	assert.Empty(t, repo.history)
}

func TestDeleteBaseCurrencyRejected(t *testing.T) {
	base, _, _, svc := currencyFixture()

	err := svc.Delete(context.Background(), base.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be deleted")
}

func TestGetHistoryRendersChange(t *testing.T) {
	_, usd, repo, svc := currencyFixture()
	repo.history = append(repo.history, entity.CurrencyHistory{
		ID:           uuid.New(),
		CurrencyID:   usd.ID,
		PreviousRate: dec("278.50"),
		NewRate:      dec("278.55"),
	})

	items, err := svc.GetHistory(context.Background(), usd.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "+0.050000", items[0].Change)
	assert.Equal(t, "increase", items[0].Direction)
}

func TestConvertCrossesThroughBase(t *testing.T) {
	_, _, repo, svc := currencyFixture()
	repo.Create(context.Background(), &entity.Currency{
		Code:         "AED",
		ExchangeRate: dec("75.80"),
	})

	result, err := svc.Convert(context.Background(), &ConvertInput{
		FromCode: "usd",
		ToCode:   "aed",
		Amount:   dec("100"),
	})
	require.NoError(t, err)

	wantRate := dec("278.50").Div(dec("75.80"))
	assert.True(t, result.Rate.Equal(wantRate))
	assert.True(t, result.Converted.Equal(dec("100").Mul(wantRate)))
	assert.Equal(t, "USD", result.From)
	assert.Equal(t, "AED", result.To)
}

func TestConvertToBaseUsesSourceRate(t *testing.T) {
	_, _, _, svc := currencyFixture()

	result, err := svc.Convert(context.Background(), &ConvertInput{
		FromCode: "USD",
		ToCode:   "PKR",
		Amount:   dec("10"),
	})
	require.NoError(t, err)
	assert.True(t, result.Converted.Equal(dec("2785")))
}

func TestConvertUnknownCurrency(t *testing.T) {
	_, _, _, svc := currencyFixture()

	_, err := svc.Convert(context.Background(), &ConvertInput{
		FromCode: "USD",
		ToCode:   "EUR",
		Amount:   dec("10"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Target currency")
}

func TestConvertZeroTargetRateRejected(t *testing.T) {
	_, _, repo, svc := currencyFixture()
	repo.Create(context.Background(), &entity.Currency{
		Code:         "XXX",
		ExchangeRate: decimal.Zero,
	})

	_, err := svc.Convert(context.Background(), &ConvertInput{
		FromCode: "USD",
		ToCode:   "XXX",
		Amount:   dec("10"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exchange rate")
}
