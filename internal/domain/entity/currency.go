package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Currency holds a tradable currency and its current exchange rate.
// ExchangeRate is expressed as units of the base currency (PKR) per one
// unit of this currency.
type Currency struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Code         string          `gorm:"size:10;unique;not null" json:"code"`
	Name         string          `gorm:"size:100;not null" json:"name"`
	Symbol       string          `gorm:"size:10" json:"symbol"`
	ExchangeRate decimal.Decimal `gorm:"type:decimal(20,6);default:0" json:"exchange_rate"`
	IsBase       bool            `gorm:"default:false" json:"is_base"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	DeletedAt    gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	History []CurrencyHistory `gorm:"foreignKey:CurrencyID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new currency
func (c *Currency) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Currency model
func (Currency) TableName() string {
	return "currencies"
}

// CurrencyHistory is one rate-change row in a currency's audit trail,
// appended automatically whenever a currency's rate is updated.
type CurrencyHistory struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	CurrencyID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"currency_id"`
	PreviousRate  decimal.Decimal `gorm:"type:decimal(20,6);not null" json:"previous_rate"`
	NewRate       decimal.Decimal `gorm:"type:decimal(20,6);not null" json:"new_rate"`
	EffectiveDate time.Time       `gorm:"not null;index" json:"effective_date"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null" json:"user_id"`
	Notes         string          `gorm:"size:255" json:"notes"`
	CreatedAt     time.Time       `json:"created_at"`

	// Relationships
	Currency Currency `gorm:"foreignKey:CurrencyID" json:"-"`
	User     User     `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new history row
func (h *CurrencyHistory) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the CurrencyHistory model
func (CurrencyHistory) TableName() string {
	return "currency_histories"
}
