// Package finance holds the pure reconciliation rules shared by every
// service that touches money: payment-status classification, due-amount
// derivation, voucher ledger balancing, expense aggregation and exchange
// rate deltas. Nothing in here performs I/O.
package finance

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/zakirya592/rk-co-pos-sub002/internal/domain/enum"
	"github.com/zakirya592/rk-co-pos-sub002/pkg/apperror"
)

// balanceEpsilon tolerates floating point noise in client-entered ledger
// entries. A debit/credit difference at or below this is considered balanced.
var balanceEpsilon = decimal.RequireFromString("0.01")

// ClassifyPayment derives the payment status of a sale. The rules are
// evaluated in order, first match wins:
//
//  1. paid == 0           -> unpaid
//  2. paid >= grand total -> paid
//  3. otherwise           -> partial
func ClassifyPayment(grandTotal, paidAmount decimal.Decimal) enum.PaymentStatus {
	if paidAmount.IsZero() {
		return enum.PaymentStatusUnpaid
	}
	if paidAmount.GreaterThanOrEqual(grandTotal) {
		return enum.PaymentStatusPaid
	}
	return enum.PaymentStatusPartial
}

// DueAmount returns the outstanding balance, clamped at zero so an
// overpayment never produces a negative due.
func DueAmount(grandTotal, paidAmount decimal.Decimal) decimal.Decimal {
	due := grandTotal.Sub(paidAmount)
	if due.IsNegative() {
		return decimal.Zero
	}
	return due
}

// PaymentOutcome is the authoritative state of a sale after a payment has
// been applied to it.
type PaymentOutcome struct {
	PaidAmount decimal.Decimal
	DueAmount  decimal.Decimal
	Status     enum.PaymentStatus
	// Advance is the portion of the payment exceeding the grand total.
	// It is credited to the customer rather than stored as negative due.
	Advance decimal.Decimal
}

// ApplyPayment folds an incremental payment into a sale's running paid
// amount and re-derives due and status from scratch. Callers must pass the
// persisted previous paid amount, not a client-reported one.
func ApplyPayment(grandTotal, previousPaid, increment decimal.Decimal) PaymentOutcome {
	paid := previousPaid.Add(increment)

	advance := paid.Sub(grandTotal)
	if advance.IsNegative() {
		advance = decimal.Zero
	}

	return PaymentOutcome{
		PaidAmount: paid,
		DueAmount:  DueAmount(grandTotal, paid),
		Status:     ClassifyPayment(grandTotal, paid),
		Advance:    advance,
	}
}

// LedgerEntry is one debit/credit line of an opening balance or
// reconciliation voucher.
type LedgerEntry struct {
	AccountName string
	Debit       decimal.Decimal
	Credit      decimal.Decimal
}

// EntriesBalanced validates a voucher entry list before anything is
// persisted. It rejects entries carrying both a debit and a credit,
// negative legs, and lists whose debit and credit sums differ by more
// than the epsilon.
func EntriesBalanced(entries []LedgerEntry) error {
	if len(entries) == 0 {
		return apperror.NewValidationError([]apperror.FieldError{
			{Field: "entries", Message: "at least one entry is required"},
		})
	}

	var fieldErrors []apperror.FieldError
	totalDebit := decimal.Zero
	totalCredit := decimal.Zero

	for i, e := range entries {
		if e.Debit.IsNegative() || e.Credit.IsNegative() {
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field:   fmt.Sprintf("entries[%d]", i),
				Message: "debit and credit must not be negative",
			})
			continue
		}
		if e.Debit.IsPositive() && e.Credit.IsPositive() {
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field:   fmt.Sprintf("entries[%d]", i),
				Message: "an entry cannot carry both a debit and a credit",
			})
			continue
		}
		totalDebit = totalDebit.Add(e.Debit)
		totalCredit = totalCredit.Add(e.Credit)
	}

	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}

	if totalDebit.Sub(totalCredit).Abs().GreaterThan(balanceEpsilon) {
		return apperror.NewValidationError([]apperror.FieldError{
			{
				Field: "entries",
				Message: fmt.Sprintf("entries are not balanced: total debit %s does not equal total credit %s",
					totalDebit.String(), totalCredit.String()),
			},
		})
	}

	return nil
}

// ExpenseTotal sums the category charge fields of an expense record.
func ExpenseTotal(fields ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, f := range fields {
		total = total.Add(f)
	}
	return total
}

// ConvertToBase converts an amount into the base reporting currency.
// rate is "units of base currency per 1 unit of the record's currency".
func ConvertToBase(amount, rate decimal.Decimal) decimal.Decimal {
	return amount.Mul(rate)
}

// RateDirection indicates how an exchange rate moved between two history rows.
type RateDirection string

const (
	RateDirectionIncrease RateDirection = "increase"
	RateDirectionDecrease RateDirection = "decrease"
	RateDirectionNoChange RateDirection = "no_change"
)

// RateDiff returns the signed difference between two exchange rates and the
// direction of the move.
func RateDiff(previousRate, newRate decimal.Decimal) (decimal.Decimal, RateDirection) {
	diff := newRate.Sub(previousRate)
	switch {
	case diff.IsPositive():
		return diff, RateDirectionIncrease
	case diff.IsNegative():
		return diff, RateDirectionDecrease
	default:
		return diff, RateDirectionNoChange
	}
}

// FormatRateDiff renders a rate difference the way the dashboard's history
// chip shows it: an explicitly signed value fixed to six decimal places, or
// "No change" when the rate did not move.
func FormatRateDiff(previousRate, newRate decimal.Decimal) string {
	diff, direction := RateDiff(previousRate, newRate)
	if direction == RateDirectionNoChange {
		return "No change"
	}
	if direction == RateDirectionIncrease {
		return "+" + diff.StringFixed(6)
	}
	return diff.StringFixed(6)
}
