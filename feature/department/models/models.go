package models

import (
	"time"
)

// Department represents the 'departments' table.
type Department struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"type:text;not null;uniqueIndex" json:"name"`
	CostCenter string    `gorm:"column:cost_center;type:text;not null;uniqueIndex" json:"cost_center"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName overrides the table name.
func (Department) TableName() string {
	return "departments"
}

// CreateDepartmentInput is the payload for creating a department.
type CreateDepartmentInput struct {
	Name       string `json:"name" validate:"required,min=2"`
	CostCenter string `json:"cost_center" validate:"required,min=2"`
}
