package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/zakirya592/rk-co-pos-sub002/internal/domain/enum"
	"gorm.io/gorm"
)

// Sale represents a point-of-sale transaction.
//
// GrandTotal, PaidAmount, DueAmount and PaymentStatus are derived fields
// the server recomputes on every write; clients may preview them but the
// persisted values here are authoritative.
type Sale struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	ShopID        uuid.UUID          `gorm:"type:uuid;not null;index;uniqueIndex:idx_sales_shop_invoice" json:"shop_id"`
	UserID        uuid.UUID          `gorm:"type:uuid;not null;index" json:"user_id"`
	CustomerID    *uuid.UUID         `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	WarehouseID   *uuid.UUID         `gorm:"type:uuid;index" json:"warehouse_id,omitempty"`
	InvoiceNo     string             `gorm:"size:100;not null;uniqueIndex:idx_sales_shop_invoice" json:"invoice_number"`
	TotalAmount   decimal.Decimal    `gorm:"type:decimal(20,4);default:0" json:"total_amount"`
	Discount      decimal.Decimal    `gorm:"type:decimal(20,4);default:0" json:"discount"`
	Tax           decimal.Decimal    `gorm:"type:decimal(20,4);default:0" json:"tax"`
	GrandTotal    decimal.Decimal    `gorm:"type:decimal(20,4);default:0" json:"grand_total"`
	PaidAmount    decimal.Decimal    `gorm:"type:decimal(20,4);default:0" json:"paid_amount"`
	DueAmount     decimal.Decimal    `gorm:"type:decimal(20,4);default:0" json:"due_amount"`
	PaymentMethod enum.PaymentMethod `gorm:"size:50;not null" json:"payment_method"`
	PaymentStatus enum.PaymentStatus `gorm:"size:20;not null;index" json:"payment_status"`
	CreatedAt     time.Time          `gorm:"index" json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
	DeletedAt     gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	Shop     Shop       `gorm:"foreignKey:ShopID" json:"-"`
	Customer *Customer  `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Items    []SaleItem `gorm:"foreignKey:SaleID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new sale
func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Sale model
func (Sale) TableName() string {
	return "sales"
}

// CustomerName returns the linked customer's name, or empty when the sale
// was a walk-in.
func (s *Sale) CustomerName() string {
	if s.Customer == nil {
		return ""
	}
	return s.Customer.Name
}

// SaleItem is a single product line on a sale.
type SaleItem struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	SaleID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"sale_id"`
	ProductName string          `gorm:"size:255;not null" json:"product_name"`
	Quantity    int             `gorm:"not null" json:"quantity"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"unit_price"`
	Total       decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"total"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new sale item
func (si *SaleItem) BeforeCreate(tx *gorm.DB) error {
	if si.ID == uuid.Nil {
		si.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SaleItem model
func (SaleItem) TableName() string {
	return "sale_items"
}
