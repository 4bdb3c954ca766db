package models

import (
	"time"

	departmentmodels "admin-setor/feature/department/models"
	employeemodels "admin-setor/feature/employee/models"
	suppliermodels "admin-setor/feature/supplier/models"
)

// Purchase order statuses.
const (
	StatusDraft     = "DRAFT"
	StatusApproved  = "APPROVED"
	StatusSent      = "SENT"
	StatusReceived  = "RECEIVED"
	StatusCancelled = "CANCELLED"
)

// Statuses lists the valid purchase order statuses.
var Statuses = []string{StatusDraft, StatusApproved, StatusSent, StatusReceived, StatusCancelled}

// ValidStatus reports whether s is a known purchase order status.
func ValidStatus(s string) bool {
	for _, v := range Statuses {
		if v == s {
			return true
		}
	}
	return false
}

// PurchaseOrder represents the 'purchase_orders' table.
type PurchaseOrder struct {
	ID           uint                         `gorm:"primaryKey" json:"id"`
	SupplierID   uint                         `gorm:"column:supplier_id;not null;index" json:"supplier_id"`
	Supplier     *suppliermodels.Supplier     `gorm:"constraint:OnDelete:RESTRICT" json:"-"`
	RequestedBy  uint                         `gorm:"column:requested_by;not null;index" json:"requested_by"`
	Requester    *employeemodels.Employee     `gorm:"foreignKey:RequestedBy;constraint:OnDelete:RESTRICT" json:"-"`
	DepartmentID uint                         `gorm:"column:department_id;not null;index" json:"department_id"`
	Department   *departmentmodels.Department `gorm:"constraint:OnDelete:RESTRICT" json:"-"`
	Status       string                       `gorm:"type:text;not null;default:DRAFT;check:status IN ('DRAFT','APPROVED','SENT','RECEIVED','CANCELLED')" json:"status"`
	TotalCents   int64                        `gorm:"column:total_cents;not null;check:total_cents >= 0" json:"total_cents"`
	CreatedAt    time.Time                    `json:"created_at"`
}

// TableName overrides the table name.
func (PurchaseOrder) TableName() string {
	return "purchase_orders"
}

// CreatePurchaseOrderInput is the payload for creating a purchase order.
// Status defaults to DRAFT when omitted.
type CreatePurchaseOrderInput struct {
	SupplierID   uint   `json:"supplier_id" validate:"required"`
	RequestedBy  uint   `json:"requested_by" validate:"required"`
	DepartmentID uint   `json:"department_id" validate:"required"`
	Status       string `json:"status" validate:"omitempty,oneof=DRAFT APPROVED SENT RECEIVED CANCELLED"`
	TotalCents   int64  `json:"total_cents" validate:"gte=0"`
}

// ListFilter narrows purchase order listings.
type ListFilter struct {
	Status string
}
