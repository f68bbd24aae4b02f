package enum

// VoucherType identifies the journal-style voucher variants.
//
// Bank payment, bank transfer and saraf entry vouchers carry a single amount
// plus fee; opening balance and reconciliation vouchers carry a list of
// debit/credit ledger entries that must balance before anything is persisted.
type VoucherType string

const (
	VoucherTypeBankPayment    VoucherType = "bank_payment"
	VoucherTypeBankTransfer   VoucherType = "bank_transfer"
	VoucherTypeSarafEntry     VoucherType = "saraf_entry"
	VoucherTypeOpeningBalance VoucherType = "opening_balance"
	VoucherTypeReconciliation VoucherType = "reconciliation"
)

func (t VoucherType) String() string {
	return string(t)
}

// IsValid reports whether the value is one of the known voucher types.
func (t VoucherType) IsValid() bool {
	switch t {
	case VoucherTypeBankPayment, VoucherTypeBankTransfer, VoucherTypeSarafEntry,
		VoucherTypeOpeningBalance, VoucherTypeReconciliation:
		return true
	}
	return false
}

// HasEntries reports whether this voucher type carries a debit/credit
// entry list instead of a single amount.
func (t VoucherType) HasEntries() bool {
	return t == VoucherTypeOpeningBalance || t == VoucherTypeReconciliation
}

// ReferencePrefix is the prefix used when generating voucher numbers.
func (t VoucherType) ReferencePrefix() string {
	switch t {
	case VoucherTypeBankPayment:
		return "BPV"
	case VoucherTypeBankTransfer:
		return "BTV"
	case VoucherTypeSarafEntry:
		return "SEV"
	case VoucherTypeOpeningBalance:
		return "OBV"
	case VoucherTypeReconciliation:
		return "RBV"
	}
	return "VCH"
}

// VoucherTypeFromPath maps the dashboard's resource path segments to types.
func VoucherTypeFromPath(segment string) (VoucherType, bool) {
	switch segment {
	case "bank-payment-vouchers":
		return VoucherTypeBankPayment, true
	case "bank-account-transfer-vouchers":
		return VoucherTypeBankTransfer, true
	case "saraf-entry-vouchers":
		return VoucherTypeSarafEntry, true
	case "opening-balance-vouchers":
		return VoucherTypeOpeningBalance, true
	case "reconcile-bank-accounts-vouchers":
		return VoucherTypeReconciliation, true
	}
	return "", false
}
