package models

import (
	"time"

	"admin-setor/core/types"

	departmentmodels "admin-setor/feature/department/models"
)

// Employee represents the 'employees' table. Every employee belongs to a
// department; the foreign key is RESTRICT so a department cannot be removed
// while it still has staff.
type Employee struct {
	ID           uint                         `gorm:"primaryKey" json:"id"`
	DepartmentID uint                         `gorm:"column:department_id;not null;index" json:"department_id"`
	Department   *departmentmodels.Department `gorm:"constraint:OnDelete:RESTRICT" json:"-"`
	FullName     string                       `gorm:"column:full_name;type:text;not null" json:"full_name"`
	Email        string                       `gorm:"type:text;not null;uniqueIndex" json:"email"`
	Role         string                       `gorm:"type:text;not null" json:"role"`
	SalaryCents  int64                        `gorm:"column:salary_cents;not null;check:salary_cents >= 0" json:"salary_cents"`
	HiredOn      types.Date                   `gorm:"column:hired_on;not null" json:"hired_on"`
	Active       bool                         `gorm:"not null;default:true" json:"active"`
	CreatedAt    time.Time                    `json:"created_at"`
}

// TableName overrides the table name.
func (Employee) TableName() string {
	return "employees"
}

// CreateEmployeeInput is the payload for creating an employee. Active defaults
// to true when omitted.
type CreateEmployeeInput struct {
	DepartmentID uint       `json:"department_id" validate:"required"`
	FullName     string     `json:"full_name" validate:"required,min=2"`
	Email        string     `json:"email" validate:"required,email"`
	Role         string     `json:"role" validate:"required"`
	SalaryCents  int64      `json:"salary_cents" validate:"gte=0"`
	HiredOn      types.Date `json:"hired_on" validate:"required"`
	Active       *bool      `json:"active"`
}

// ListFilter narrows employee listings.
type ListFilter struct {
	DepartmentID *uint
	Active       *bool
}
