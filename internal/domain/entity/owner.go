package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Owner is a business owner contact record. Plain CRUD, no derived state.
type Owner struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	ShopID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"shop_id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Phone     *string        `gorm:"size:50" json:"phone,omitempty"`
	Email     *string        `gorm:"size:255" json:"email,omitempty"`
	CNIC      *string        `gorm:"size:50;column:cnic" json:"cnic,omitempty"`
	Address   *string        `gorm:"type:text" json:"address,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new owner
func (o *Owner) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Owner model
func (Owner) TableName() string {
	return "owners"
}
