package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Customer is a buyer with purchase history and an advance balance.
// AdvanceBalance accumulates overpayments and can be applied against
// outstanding sales.
type Customer struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	ShopID         uuid.UUID       `gorm:"type:uuid;not null;index" json:"shop_id"`
	Name           string          `gorm:"size:255;not null" json:"name"`
	Phone          *string         `gorm:"size:50" json:"phone,omitempty"`
	Email          *string         `gorm:"size:255" json:"email,omitempty"`
	Address        *string         `gorm:"type:text" json:"address,omitempty"`
	AdvanceBalance decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"advance_balance"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	DeletedAt      gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	Shop  Shop   `gorm:"foreignKey:ShopID" json:"-"`
	Sales []Sale `gorm:"foreignKey:CustomerID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new customer
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}
