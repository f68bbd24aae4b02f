package handler

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zakirya592/rk-co-pos-sub002/pkg/apperror"
)

func TestParseVoucherFormScalars(t *testing.T) {
	currencyID := uuid.New()
	form := map[string][]string{
		"account_name":      {"Meezan Bank"},
		"counterparty_name": {"Al Habib Exchange"},
		"voucher_date":      {"2026-03-15"},
		"amount":            {"2500.50"},
		"fee":               {"25"},
		"currency_id":       {currencyID.String()},
		"exchange_rate":     {"278.75"},
		"notes":             {"March settlement"},
	}

	input, err := parseVoucherForm(form)
	require.NoError(t, err)

	assert.Equal(t, "Meezan Bank", input.AccountName)
	require.NotNil(t, input.CounterpartyName)
	assert.Equal(t, "Al Habib Exchange", *input.CounterpartyName)
	assert.Equal(t, "2026-03-15", input.VoucherDate.Format("2006-01-02"))
	assert.True(t, input.Amount.Equal(decimal.RequireFromString("2500.50")))
	assert.True(t, input.Fee.Equal(decimal.RequireFromString("25")))
	require.NotNil(t, input.CurrencyID)
	assert.Equal(t, currencyID, *input.CurrencyID)
	require.NotNil(t, input.ExchangeRate)
	assert.True(t, input.ExchangeRate.Equal(decimal.RequireFromString("278.75")))
	assert.Equal(t, "March settlement", input.Notes)
	assert.Empty(t, input.Entries)
}

func TestParseVoucherFormEntriesOrderedByIndex(t *testing.T) {
	form := map[string][]string{
		"entries[2][account_name]": {"Fees"},
		"entries[2][debit]":        {"10"},
		"entries[0][account_name]": {"Cash"},
		"entries[0][debit]":        {"990"},
		"entries[1][account_name]": {"Bank"},
		"entries[1][credit]":       {"1000"},
	}

	input, err := parseVoucherForm(form)
	require.NoError(t, err)
	require.Len(t, input.Entries, 3)

	assert.Equal(t, "Cash", input.Entries[0].AccountName)
	assert.True(t, input.Entries[0].Debit.Equal(decimal.RequireFromString("990")))
	assert.True(t, input.Entries[0].Credit.IsZero())

	assert.Equal(t, "Bank", input.Entries[1].AccountName)
	assert.True(t, input.Entries[1].Credit.Equal(decimal.RequireFromString("1000")))

	assert.Equal(t, "Fees", input.Entries[2].AccountName)
	assert.True(t, input.Entries[2].Debit.Equal(decimal.RequireFromString("10")))
}

func TestParseVoucherFormSparseIndexesKeepOrder(t *testing.T) {
	form := map[string][]string{
		"entries[5][account_name]": {"Second"},
		"entries[5][credit]":       {"50"},
		"entries[3][account_name]": {"First"},
		"entries[3][debit]":        {"50"},
	}

	input, err := parseVoucherForm(form)
	require.NoError(t, err)
	require.Len(t, input.Entries, 2)
	assert.Equal(t, "First", input.Entries[0].AccountName)
	assert.Equal(t, "Second", input.Entries[1].AccountName)
}

func TestParseVoucherFormAcceptsRFC3339Date(t *testing.T) {
	form := map[string][]string{
		"voucher_date": {"2026-03-15T10:30:00Z"},
		"amount":       {"100"},
	}

	input, err := parseVoucherForm(form)
	require.NoError(t, err)
	assert.Equal(t, 2026, input.VoucherDate.Year())
	assert.Equal(t, 10, input.VoucherDate.Hour())
}

func TestParseVoucherFormInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		form  map[string][]string
		field string
	}{
		{"bad date", map[string][]string{"voucher_date": {"15/03/2026"}}, "voucher_date"},
		{"bad amount", map[string][]string{"amount": {"abc"}}, "amount"},
		{"bad fee", map[string][]string{"fee": {"1.2.3"}}, "fee"},
		{"bad currency", map[string][]string{"currency_id": {"not-a-uuid"}}, "currency_id"},
		{"bad rate", map[string][]string{"exchange_rate": {"rate"}}, "exchange_rate"},
		{"bad entry debit", map[string][]string{"entries[0][debit]": {"x"}}, "entries[0][debit]"},
		{"bad entry credit", map[string][]string{"entries[0][credit]": {"y"}}, "entries[0][credit]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseVoucherForm(tt.form)
			require.Error(t, err)

			appErr, ok := err.(*apperror.AppError)
			require.True(t, ok)
			require.Len(t, appErr.Errors, 1)
			assert.Equal(t, tt.field, appErr.Errors[0].Field)
		})
	}
}

func TestParseVoucherFormIgnoresUnrelatedKeys(t *testing.T) {
	form := map[string][]string{
		"entries[abc][debit]": {"100"},
		"something_else":      {"value"},
		"account_name":        {"Till"},
	}

	input, err := parseVoucherForm(form)
	require.NoError(t, err)
	assert.Equal(t, "Till", input.AccountName)
	assert.Empty(t, input.Entries)
}
