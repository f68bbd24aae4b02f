package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Shop is the tenant unit of the back office; every transactional record is
// scoped to one shop and invoice numbers are unique within it.
type Shop struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Slug      string         `gorm:"size:255;unique;not null" json:"slug"`
	Address   *string        `gorm:"type:text" json:"address,omitempty"`
	Phone     *string        `gorm:"size:50" json:"phone,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new shop
func (s *Shop) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Shop model
func (Shop) TableName() string {
	return "shops"
}

// Warehouse is a storage location sales and returns can be reported against.
type Warehouse struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	ShopID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"shop_id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Location  *string        `gorm:"type:text" json:"location,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new warehouse
func (w *Warehouse) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Warehouse model
func (Warehouse) TableName() string {
	return "warehouses"
}
