package models

import (
	"time"
)

// Supplier represents the 'suppliers' table.
type Supplier struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:text;not null;uniqueIndex" json:"name"`
	TaxID     string    `gorm:"column:tax_id;type:text;not null;uniqueIndex" json:"tax_id"`
	Email     *string   `gorm:"type:text" json:"email"`
	Phone     *string   `gorm:"type:text" json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName overrides the table name.
func (Supplier) TableName() string {
	return "suppliers"
}

// CreateSupplierInput is the payload for creating a supplier. Email and phone
// are optional.
type CreateSupplierInput struct {
	Name  string  `json:"name" validate:"required,min=2"`
	TaxID string  `json:"tax_id" validate:"required,min=2"`
	Email *string `json:"email" validate:"omitempty,email"`
	Phone *string `json:"phone"`
}
