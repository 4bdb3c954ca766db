package models

import (
	"time"

	"admin-setor/core/types"

	purchasemodels "admin-setor/feature/purchase/models"
	suppliermodels "admin-setor/feature/supplier/models"
)

// Invoice statuses.
const (
	StatusOpen      = "OPEN"
	StatusPaid      = "PAID"
	StatusCancelled = "CANCELLED"
	StatusOverdue   = "OVERDUE"
)

// InvoiceStatuses lists the valid invoice statuses.
var InvoiceStatuses = []string{StatusOpen, StatusPaid, StatusCancelled, StatusOverdue}

// ValidInvoiceStatus reports whether s is a known invoice status.
func ValidInvoiceStatus(s string) bool {
	for _, v := range InvoiceStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Payment methods.
const (
	MethodPix        = "PIX"
	MethodTed        = "TED"
	MethodBoleto     = "BOLETO"
	MethodCreditCard = "CREDIT_CARD"
	MethodCash       = "CASH"
)

// Invoice represents the 'invoices' table. An invoice is unique per supplier
// and invoice number; it may reference the purchase order it settles.
type Invoice struct {
	ID            uint                          `gorm:"primaryKey" json:"id"`
	SupplierID    uint                          `gorm:"column:supplier_id;not null;uniqueIndex:uq_supplier_invoice" json:"supplier_id"`
	Supplier      *suppliermodels.Supplier      `gorm:"constraint:OnDelete:RESTRICT" json:"-"`
	POID          *uint                         `gorm:"column:po_id" json:"po_id"`
	PurchaseOrder *purchasemodels.PurchaseOrder `gorm:"foreignKey:POID;constraint:OnDelete:SET NULL" json:"-"`
	InvoiceNo     string                        `gorm:"column:invoice_no;type:text;not null;uniqueIndex:uq_supplier_invoice" json:"invoice_no"`
	IssuedOn      types.Date                    `gorm:"column:issued_on;not null" json:"issued_on"`
	DueOn         types.Date                    `gorm:"column:due_on;not null" json:"due_on"`
	AmountCents   int64                         `gorm:"column:amount_cents;not null;check:amount_cents >= 0" json:"amount_cents"`
	Status        string                        `gorm:"type:text;not null;default:OPEN;check:status IN ('OPEN','PAID','CANCELLED','OVERDUE')" json:"status"`
	CreatedAt     time.Time                     `json:"created_at"`
}

// TableName overrides the table name.
func (Invoice) TableName() string {
	return "invoices"
}

// Payment represents the 'payments' table. Payments are removed together with
// their invoice (CASCADE).
type Payment struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	InvoiceID   uint       `gorm:"column:invoice_id;not null;index" json:"invoice_id"`
	Invoice     *Invoice   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	PaidOn      types.Date `gorm:"column:paid_on;not null" json:"paid_on"`
	AmountCents int64      `gorm:"column:amount_cents;not null;check:amount_cents > 0" json:"amount_cents"`
	Method      string     `gorm:"type:text;not null;check:method IN ('PIX','TED','BOLETO','CREDIT_CARD','CASH')" json:"method"`
	Reference   *string    `gorm:"type:text" json:"reference"`
	CreatedAt   time.Time  `json:"created_at"`
}

// TableName overrides the table name.
func (Payment) TableName() string {
	return "payments"
}

// CreateInvoiceInput is the payload for creating an invoice. Status defaults
// to OPEN when omitted.
type CreateInvoiceInput struct {
	SupplierID  uint       `json:"supplier_id" validate:"required"`
	POID        *uint      `json:"po_id"`
	InvoiceNo   string     `json:"invoice_no" validate:"required"`
	IssuedOn    types.Date `json:"issued_on" validate:"required"`
	DueOn       types.Date `json:"due_on" validate:"required"`
	AmountCents int64      `json:"amount_cents" validate:"gte=0"`
	Status      string     `json:"status" validate:"omitempty,oneof=OPEN PAID CANCELLED OVERDUE"`
}

// CreatePaymentInput is the payload for creating a payment.
type CreatePaymentInput struct {
	InvoiceID   uint       `json:"invoice_id" validate:"required"`
	PaidOn      types.Date `json:"paid_on" validate:"required"`
	AmountCents int64      `json:"amount_cents" validate:"gt=0"`
	Method      string     `json:"method" validate:"required,oneof=PIX TED BOLETO CREDIT_CARD CASH"`
	Reference   *string    `json:"reference"`
}

// InvoiceListFilter narrows invoice listings.
type InvoiceListFilter struct {
	Status     string
	SupplierID *uint
}

// PaymentListFilter narrows payment listings.
type PaymentListFilter struct {
	InvoiceID *uint
}

// Attachment describes a file stored for an invoice. Attachments live in
// object storage, not in the database.
type Attachment struct {
	Object       string    `json:"object"`
	Name         string    `json:"name"`
	Size         int64     `json:"size"`
	ContentType  string    `json:"content_type,omitempty"`
	LastModified time.Time `json:"last_modified"`
}
