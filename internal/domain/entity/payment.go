package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/zakirya592/rk-co-pos-sub002/internal/domain/enum"
	"gorm.io/gorm"
)

// Payment is one incremental payment recorded against a sale. The sale's
// paid/due/status are recomputed from its persisted state plus this amount
// at the time the payment is applied.
type Payment struct {
	ID          uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	ShopID      uuid.UUID          `gorm:"type:uuid;not null;index" json:"shop_id"`
	SaleID      uuid.UUID          `gorm:"type:uuid;not null;index" json:"sale_id"`
	CustomerID  *uuid.UUID         `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	UserID      uuid.UUID          `gorm:"type:uuid;not null" json:"user_id"`
	Amount      decimal.Decimal    `gorm:"type:decimal(20,4);not null" json:"amount"`
	Method      enum.PaymentMethod `gorm:"size:50;not null" json:"method"`
	FromAdvance bool               `gorm:"default:false" json:"from_advance"`
	Notes       string             `gorm:"size:255" json:"notes"`
	CreatedAt   time.Time          `gorm:"index" json:"created_at"`
	DeletedAt   gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	Sale Sale `gorm:"foreignKey:SaleID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new payment
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Payment model
func (Payment) TableName() string {
	return "payments"
}
