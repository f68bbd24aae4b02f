package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductReturn records stock coming back from a customer against a sale.
type ProductReturn struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	ShopID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"shop_id"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null" json:"user_id"`
	SaleID       *uuid.UUID      `gorm:"type:uuid;index" json:"sale_id,omitempty"`
	WarehouseID  *uuid.UUID      `gorm:"type:uuid;index" json:"warehouse_id,omitempty"`
	ReturnNo     string          `gorm:"size:100;unique;not null" json:"return_number"`
	ProductName  string          `gorm:"size:255;not null" json:"product_name"`
	Quantity     int             `gorm:"not null" json:"quantity"`
	RefundAmount decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"refund_amount"`
	Reason       string          `gorm:"type:text" json:"reason"`
	CreatedAt    time.Time       `gorm:"index" json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	DeletedAt    gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	Sale *Sale `gorm:"foreignKey:SaleID" json:"sale,omitempty"`
}

// BeforeCreate generates a UUID before creating a new product return
func (r *ProductReturn) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ProductReturn model
func (ProductReturn) TableName() string {
	return "product_returns"
}
