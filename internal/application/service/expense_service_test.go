package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zakirya592/rk-co-pos-sub002/internal/domain/entity"
	"github.com/zakirya592/rk-co-pos-sub002/internal/domain/enum"
	"github.com/zakirya592/rk-co-pos-sub002/pkg/apperror"
	"github.com/zakirya592/rk-co-pos-sub002/pkg/pagination"
)

type fakeExpenseRepo struct {
	expenses map[uuid.UUID]*entity.Expense
}

func newFakeExpenseRepo() *fakeExpenseRepo {
	return &fakeExpenseRepo{expenses: make(map[uuid.UUID]*entity.Expense)}
}

func (r *fakeExpenseRepo) Create(ctx context.Context, expense *entity.Expense) error {
	if expense.ID == uuid.Nil {
		expense.ID = uuid.New()
	}
	copied := *expense
	r.expenses[expense.ID] = &copied
	return nil
}

func (r *fakeExpenseRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	e, ok := r.expenses[id]
	if !ok {
		return nil, nil
	}
	copied := *e
	return &copied, nil
}

func (r *fakeExpenseRepo) Update(ctx context.Context, expense *entity.Expense) error {
	copied := *expense
	r.expenses[expense.ID] = &copied
	return nil
}

func (r *fakeExpenseRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.expenses, id)
	return nil
}

func (r *fakeExpenseRepo) List(ctx context.Context, category enum.ExpenseCategory, params *pagination.PaginationParams) ([]entity.Expense, int64, error) {
	var out []entity.Expense
	for _, e := range r.expenses {
		if e.Category == category {
			out = append(out, *e)
		}
	}
	return out, int64(len(out)), nil
}

func newExpenseFixture(currencies ...*entity.Currency) (*ExpenseService, *fakeExpenseRepo) {
	repo := newFakeExpenseRepo()
	return NewExpenseService(repo, newFakeCurrencyRepo(currencies...)), repo
}

func TestCreateExpenseDerivesTotals(t *testing.T) {
	usd := &entity.Currency{ID: uuid.New(), Code: "USD", ExchangeRate: dec("280")}
	svc, _ := newExpenseFixture(usd)

	expense, err := svc.Create(context.Background(), &ExpenseInput{
		ShopID:          uuid.New(),
		UserID:          uuid.New(),
		Category:        enum.ExpenseCategoryLogistics,
		FreightCost:     dec("120"),
		InsuranceCost:   dec("30"),
		CustomsDuty:     dec("50"),
		HandlingCharges: dec("10"),
		CurrencyID:      usd.ID,
	})
	require.NoError(t, err)

	assert.True(t, expense.TotalCost.Equal(dec("210")))
	assert.True(t, expense.ExchangeRate.Equal(dec("280")))
	assert.True(t, expense.AmountInPKR.Equal(dec("58800")))
}

func TestCreateExpenseExplicitRateOverridesCurrency(t *testing.T) {
	usd := &entity.Currency{ID: uuid.New(), Code: "USD", ExchangeRate: dec("280")}
	svc, _ := newExpenseFixture(usd)
	override := dec("275")

	expense, err := svc.Create(context.Background(), &ExpenseInput{
		Category:     enum.ExpenseCategoryFinancial,
		BankCharges:  dec("100"),
		CurrencyID:   usd.ID,
		ExchangeRate: &override,
	})
	require.NoError(t, err)
	assert.True(t, expense.AmountInPKR.Equal(dec("27500")))
}

func TestCreateExpenseValidation(t *testing.T) {
	svc, _ := newExpenseFixture()

	_, err := svc.Create(context.Background(), &ExpenseInput{
		Category:    enum.ExpenseCategory("payroll"),
		BankCharges: dec("-5"),
	})
	require.Error(t, err)

	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)

	fields := make([]string, 0, len(appErr.Errors))
	for _, fe := range appErr.Errors {
		fields = append(fields, fe.Field)
	}
	assert.Contains(t, fields, "category")
	assert.Contains(t, fields, "currency_id")
	assert.Contains(t, fields, "bank_charges")
}

func TestUpdateExpenseRederivesTotals(t *testing.T) {
	usd := &entity.Currency{ID: uuid.New(), Code: "USD", ExchangeRate: dec("280")}
	svc, _ := newExpenseFixture(usd)

	created, err := svc.Create(context.Background(), &ExpenseInput{
		Category:    enum.ExpenseCategoryFinancial,
		BankCharges: dec("100"),
		CurrencyID:  usd.ID,
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, &ExpenseInput{
		Category:    enum.ExpenseCategoryFinancial,
		BankCharges: dec("250"),
		CurrencyID:  usd.ID,
	})
	require.NoError(t, err)

	assert.True(t, updated.TotalCost.Equal(dec("250")))
	assert.True(t, updated.AmountInPKR.Equal(dec("70000")))
}

func TestListExpensesSumsBaseAmounts(t *testing.T) {
	usd := &entity.Currency{ID: uuid.New(), Code: "USD", ExchangeRate: dec("100")}
	svc, _ := newExpenseFixture(usd)

	for _, charge := range []string{"10", "20", "30"} {
		_, err := svc.Create(context.Background(), &ExpenseInput{
			Category:    enum.ExpenseCategoryFinancial,
			BankCharges: dec(charge),
			CurrencyID:  usd.ID,
		})
		require.NoError(t, err)
	}

	result, err := svc.List(context.Background(), enum.ExpenseCategoryFinancial, &pagination.PaginationParams{Page: 1, PerPage: 15})
	require.NoError(t, err)
	assert.True(t, result.CategoryTotal.Equal(dec("6000")))
	assert.Len(t, result.Expenses.Items, 3)
}

func TestListExpensesUnknownCategory(t *testing.T) {
	svc, _ := newExpenseFixture()

	_, err := svc.List(context.Background(), enum.ExpenseCategory("payroll"), &pagination.PaginationParams{Page: 1, PerPage: 15})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unknown expense category")
}
