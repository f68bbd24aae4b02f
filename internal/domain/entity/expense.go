package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/zakirya592/rk-co-pos-sub002/internal/domain/enum"
	"gorm.io/gorm"
)

// Expense is a category-specific bag of charge fields recorded in a foreign
// currency. TotalCost and AmountInPKR are recomputed by the server on every
// save; any value a client computed for preview is discarded.
type Expense struct {
	ID       uuid.UUID            `gorm:"type:uuid;primary_key" json:"id"`
	ShopID   uuid.UUID            `gorm:"type:uuid;not null;index" json:"shop_id"`
	UserID   uuid.UUID            `gorm:"type:uuid;not null" json:"user_id"`
	Category enum.ExpenseCategory `gorm:"size:50;not null;index" json:"category"`

	// Charge fields; unused fields stay zero for a given category.
	BankCharges       decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"bank_charges"`
	FreightCost       decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"freight_cost"`
	CommissionAmount  decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"commission_amount"`
	InsuranceCost     decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"insurance_cost"`
	CustomsDuty       decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"customs_duty"`
	HandlingCharges   decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"handling_charges"`
	MiscellaneousCost decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"miscellaneous_cost"`

	CurrencyID   uuid.UUID       `gorm:"type:uuid;not null" json:"currency_id"`
	ExchangeRate decimal.Decimal `gorm:"type:decimal(20,6);not null" json:"exchange_rate"`
	TotalCost    decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"total_cost"`
	AmountInPKR  decimal.Decimal `gorm:"type:decimal(20,4);default:0;column:amount_in_pkr" json:"amount_in_pkr"`

	// Optional linked entities.
	ShipmentNo      *string    `gorm:"size:100" json:"shipment_number,omitempty"`
	WarehouseID     *uuid.UUID `gorm:"type:uuid;index" json:"warehouse_id,omitempty"`
	TransporterName *string    `gorm:"size:255" json:"transporter_name,omitempty"`
	CustomerID      *uuid.UUID `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	SalespersonName *string    `gorm:"size:255" json:"salesperson_name,omitempty"`

	Notes     string         `gorm:"type:text" json:"notes"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Currency Currency `gorm:"foreignKey:CurrencyID" json:"currency,omitempty"`
}

// BeforeCreate generates a UUID before creating a new expense
func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Expense model
func (Expense) TableName() string {
	return "expenses"
}

// ChargeFields returns the category charge columns in a fixed order for
// aggregation.
func (e *Expense) ChargeFields() []decimal.Decimal {
	return []decimal.Decimal{
		e.BankCharges,
		e.FreightCost,
		e.CommissionAmount,
		e.InsuranceCost,
		e.CustomsDuty,
		e.HandlingCharges,
		e.MiscellaneousCost,
	}
}
