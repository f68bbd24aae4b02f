package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PartnershipAccount tracks a partner's stake and opening balance.
type PartnershipAccount struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	ShopID         uuid.UUID       `gorm:"type:uuid;not null;index" json:"shop_id"`
	Name           string          `gorm:"size:255;not null" json:"name"`
	PartnerName    string          `gorm:"size:255;not null" json:"partner_name"`
	Phone          *string         `gorm:"size:50" json:"phone,omitempty"`
	Email          *string         `gorm:"size:255" json:"email,omitempty"`
	Address        *string         `gorm:"type:text" json:"address,omitempty"`
	SharePercent   decimal.Decimal `gorm:"type:decimal(5,2);default:0" json:"share_percent"`
	OpeningBalance decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"opening_balance"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	DeletedAt      gorm.DeletedAt  `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new partnership account
func (p *PartnershipAccount) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PartnershipAccount model
func (PartnershipAccount) TableName() string {
	return "partnership_accounts"
}
