package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/zakirya592/rk-co-pos-sub002/internal/domain/enum"
	"gorm.io/gorm"
)

// Voucher is a journal-style financial record. Payment, transfer and saraf
// vouchers carry Amount and Fee; opening balance and reconciliation
// vouchers carry Entries whose debits and credits must balance before the
// voucher is accepted.
type Voucher struct {
	ID          uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	ShopID      uuid.UUID        `gorm:"type:uuid;not null;index" json:"shop_id"`
	UserID      uuid.UUID        `gorm:"type:uuid;not null" json:"user_id"`
	Type        enum.VoucherType `gorm:"size:50;not null;index" json:"type"`
	VoucherNo   string           `gorm:"size:100;unique;not null" json:"voucher_number"`
	VoucherDate time.Time        `gorm:"not null;index" json:"voucher_date"`

	// Single-amount voucher fields.
	AccountName      string          `gorm:"size:255" json:"account_name"`
	CounterpartyName *string         `gorm:"size:255" json:"counterparty_name,omitempty"`
	Amount           decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"amount"`
	Fee              decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"fee"`

	CurrencyID   *uuid.UUID      `gorm:"type:uuid" json:"currency_id,omitempty"`
	ExchangeRate decimal.Decimal `gorm:"type:decimal(20,6);default:1" json:"exchange_rate"`

	AttachmentPath *string        `gorm:"size:500" json:"attachment_path,omitempty"`
	Notes          string         `gorm:"type:text" json:"notes"`
	CreatedAt      time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Entries  []VoucherEntry `gorm:"foreignKey:VoucherID" json:"entries,omitempty"`
	Currency *Currency      `gorm:"foreignKey:CurrencyID" json:"currency,omitempty"`
}

// BeforeCreate generates a UUID before creating a new voucher
func (v *Voucher) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Voucher model
func (Voucher) TableName() string {
	return "vouchers"
}

// VoucherEntry is one debit/credit ledger line of an entry-carrying voucher.
// An entry never carries both a debit and a credit.
type VoucherEntry struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	VoucherID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"voucher_id"`
	AccountName string          `gorm:"size:255;not null" json:"account_name"`
	Debit       decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"debit"`
	Credit      decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"credit"`
	Position    int             `gorm:"not null;default:0" json:"position"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new voucher entry
func (e *VoucherEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the VoucherEntry model
func (VoucherEntry) TableName() string {
	return "voucher_entries"
}
