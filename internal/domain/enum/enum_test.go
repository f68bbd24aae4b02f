package enum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpenseCategoryFromPath(t *testing.T) {
	tests := []struct {
		segment string
		want    ExpenseCategory
		ok      bool
	}{
		{"financial", ExpenseCategoryFinancial, true},
		{"logistics", ExpenseCategoryLogistics, true},
		{"sales-distribution", ExpenseCategorySalesDistribution, true},
		{"sales_distribution", "", false},
		{"payroll", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := ExpenseCategoryFromPath(tt.segment)
		assert.Equal(t, tt.ok, ok, "segment=%q", tt.segment)
		assert.Equal(t, tt.want, got, "segment=%q", tt.segment)
	}
}

func TestVoucherTypeFromPath(t *testing.T) {
	tests := []struct {
		segment string
		want    VoucherType
		ok      bool
	}{
		{"bank-payment-vouchers", VoucherTypeBankPayment, true},
		{"bank-account-transfer-vouchers", VoucherTypeBankTransfer, true},
		{"saraf-entry-vouchers", VoucherTypeSarafEntry, true},
		{"opening-balance-vouchers", VoucherTypeOpeningBalance, true},
		{"reconcile-bank-accounts-vouchers", VoucherTypeReconciliation, true},
		{"bank_payment", "", false},
		{"vouchers", "", false},
	}

	for _, tt := range tests {
		got, ok := VoucherTypeFromPath(tt.segment)
		assert.Equal(t, tt.ok, ok, "segment=%q", tt.segment)
		assert.Equal(t, tt.want, got, "segment=%q", tt.segment)
	}
}

func TestVoucherTypeHasEntries(t *testing.T) {
	assert.False(t, VoucherTypeBankPayment.HasEntries())
	assert.False(t, VoucherTypeBankTransfer.HasEntries())
	assert.False(t, VoucherTypeSarafEntry.HasEntries())
	assert.True(t, VoucherTypeOpeningBalance.HasEntries())
	assert.True(t, VoucherTypeReconciliation.HasEntries())
}

func TestPaymentMethodIsValid(t *testing.T) {
	assert.True(t, PaymentMethodCash.IsValid())
	assert.True(t, PaymentMethodBankTransfer.IsValid())
	assert.False(t, PaymentMethod("barter").IsValid())
	assert.False(t, PaymentMethod("").IsValid())
}

func TestLocationTypeIsValid(t *testing.T) {
	assert.True(t, LocationTypeWarehouse.IsValid())
	assert.True(t, LocationTypeShop.IsValid())
	assert.False(t, LocationType("store").IsValid())
}
