package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewUUID generates a new UUID
func NewUUID() uuid.UUID {
	return uuid.New()
}

// ParseUUID parses a string into a UUID
func ParseUUID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}

// GenerateInvoiceNo generates a unique invoice number, e.g. "INV-4F2A91C3".
func GenerateInvoiceNo() string {
	return "INV-" + strings.ToUpper(uuid.New().String()[:8])
}

// GenerateVoucherNo generates a unique voucher number with a type prefix,
// e.g. "BPV-4F2A91C3" for a bank payment voucher.
func GenerateVoucherNo(prefix string) string {
	return prefix + "-" + strings.ToUpper(uuid.New().String()[:8])
}

// GenerateReturnNo generates a unique product return reference.
func GenerateReturnNo() string {
	return "RET-" + strings.ToUpper(uuid.New().String()[:8])
}
