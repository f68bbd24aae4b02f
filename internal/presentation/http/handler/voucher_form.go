package handler

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/zakirya592/rk-co-pos-sub002/internal/application/service"
	"github.com/zakirya592/rk-co-pos-sub002/pkg/apperror"
)

// The dashboard submits vouchers as multipart form data so an attachment
// can ride along: scalar fields as plain values, ledger entries flattened
// into bracketed keys like "entries[0][account_name]".
var entryKeyPattern = regexp.MustCompile(`^entries\[(\d+)\]\[([a-z_]+)\]$`)

// parseVoucherForm decodes the flattened multipart fields into a voucher
// input. The attachment itself is handled by the caller.
func parseVoucherForm(form map[string][]string) (*service.VoucherInput, error) {
	input := &service.VoucherInput{}
	entryFields := make(map[int]map[string]string)

	first := func(key string) string {
		if vs, ok := form[key]; ok && len(vs) > 0 {
			return vs[0]
		}
		return ""
	}

	input.AccountName = first("account_name")
	input.Notes = first("notes")

	if v := first("counterparty_name"); v != "" {
		input.CounterpartyName = &v
	}
	if v := first("voucher_date"); v != "" {
		t, err := parseDate(v)
		if err != nil {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "voucher_date", Message: "invalid date"},
			})
		}
		input.VoucherDate = t
	}
	if v := first("amount"); v != "" {
		amount, err := decimal.NewFromString(v)
		if err != nil {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "amount", Message: "invalid number"},
			})
		}
		input.Amount = amount
	}
	if v := first("fee"); v != "" {
		fee, err := decimal.NewFromString(v)
		if err != nil {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "fee", Message: "invalid number"},
			})
		}
		input.Fee = fee
	}
	if v := first("currency_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "currency_id", Message: "invalid currency ID"},
			})
		}
		input.CurrencyID = &id
	}
	if v := first("exchange_rate"); v != "" {
		rate, err := decimal.NewFromString(v)
		if err != nil {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "exchange_rate", Message: "invalid number"},
			})
		}
		input.ExchangeRate = &rate
	}

	for key, values := range form {
		m := entryKeyPattern.FindStringSubmatch(key)
		if m == nil || len(values) == 0 {
			continue
		}
		idx, _ := strconv.Atoi(m[1])
		if entryFields[idx] == nil {
			entryFields[idx] = make(map[string]string)
		}
		entryFields[idx][m[2]] = values[0]
	}

	if len(entryFields) > 0 {
		indexes := make([]int, 0, len(entryFields))
		for idx := range entryFields {
			indexes = append(indexes, idx)
		}
		sort.Ints(indexes)

		for _, idx := range indexes {
			fields := entryFields[idx]
			entry := service.VoucherEntryInput{
				AccountName: fields["account_name"],
			}
			if v := fields["debit"]; v != "" {
				debit, err := decimal.NewFromString(v)
				if err != nil {
					return nil, apperror.NewValidationError([]apperror.FieldError{
						{Field: fmt.Sprintf("entries[%d][debit]", idx), Message: "invalid number"},
					})
				}
				entry.Debit = debit
			}
			if v := fields["credit"]; v != "" {
				credit, err := decimal.NewFromString(v)
				if err != nil {
					return nil, apperror.NewValidationError([]apperror.FieldError{
						{Field: fmt.Sprintf("entries[%d][credit]", idx), Message: "invalid number"},
					})
				}
				entry.Credit = credit
			}
			input.Entries = append(input.Entries, entry)
		}
	}

	return input, nil
}
