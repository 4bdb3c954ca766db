package billing

import (
	"context"
	"errors"

	"admin-setor/core/storage"
	"admin-setor/core/types"
	"admin-setor/core/validation"
	"admin-setor/feature/billing/models"
	purchasemodels "admin-setor/feature/purchase/models"
	suppliermodels "admin-setor/feature/supplier/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Sentinel errors returned by the service. Handlers map them to HTTP statuses.
var (
	ErrInvoiceNotFound       = errors.New("invoice not found")
	ErrPaymentNotFound       = errors.New("payment not found")
	ErrPaymentInvoiceMissing = errors.New("invoice does not exist")
	ErrSupplierNotFound      = errors.New("supplier not found")
	ErrPurchaseOrderNotFound = errors.New("purchase order not found")
	ErrDuplicateInvoice      = errors.New("invoice number already exists for this supplier")
	ErrInvalidStatus         = errors.New("invalid status")
	ErrAttachmentNotFound    = errors.New("attachment not found")
	ErrStorageDisabled       = errors.New("attachment storage is disabled")
)

// Service handles invoice and payment operations.
type Service struct {
	db      *gorm.DB
	storage storage.Client
	bucket  string
	logger  *zap.Logger
}

// NewService creates a new billing service. storage may be nil when object
// storage is disabled; attachment operations then fail with
// ErrStorageDisabled.
func NewService(db *gorm.DB, store storage.Client, bucket string, logger *zap.Logger) *Service {
	return &Service{db: db, storage: store, bucket: bucket, logger: logger}
}

// CreateInvoice inserts a new invoice after verifying the supplier and, when
// given, the purchase order exist.
func (s *Service) CreateInvoice(ctx context.Context, input models.CreateInvoiceInput) (*models.Invoice, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	db := s.db.WithContext(ctx)
	if err := db.First(&suppliermodels.Supplier{}, input.SupplierID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSupplierNotFound
		}
		return nil, err
	}
	if input.POID != nil {
		if err := db.First(&purchasemodels.PurchaseOrder{}, *input.POID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrPurchaseOrderNotFound
			}
			return nil, err
		}
	}

	status := input.Status
	if status == "" {
		status = models.StatusOpen
	}

	inv := models.Invoice{
		SupplierID:  input.SupplierID,
		POID:        input.POID,
		InvoiceNo:   input.InvoiceNo,
		IssuedOn:    input.IssuedOn,
		DueOn:       input.DueOn,
		AmountCents: input.AmountCents,
		Status:      status,
	}
	if err := db.Create(&inv).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateInvoice
		}
		return nil, err
	}
	return &inv, nil
}

// ListInvoices returns invoices ordered by id, optionally filtered by status
// and supplier.
func (s *Service) ListInvoices(ctx context.Context, filter models.InvoiceListFilter, page types.Pagination) ([]models.Invoice, error) {
	page = page.Normalize()

	query := s.db.WithContext(ctx).Model(&models.Invoice{})
	if filter.Status != "" {
		if !models.ValidInvoiceStatus(filter.Status) {
			return nil, ErrInvalidStatus
		}
		query = query.Where("status = ?", filter.Status)
	}
	if filter.SupplierID != nil {
		query = query.Where("supplier_id = ?", *filter.SupplierID)
	}

	var invs []models.Invoice
	err := query.
		Order("id").
		Limit(page.Limit).
		Offset(page.Offset).
		Find(&invs).Error
	if err != nil {
		return nil, err
	}
	return invs, nil
}

// GetInvoice returns a single invoice by id.
func (s *Service) GetInvoice(ctx context.Context, id uint) (*models.Invoice, error) {
	var inv models.Invoice
	if err := s.db.WithContext(ctx).First(&inv, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, err
	}
	return &inv, nil
}

// DeleteInvoice removes an invoice. Its payments go with it (CASCADE) and its
// stored attachments are removed from the bucket.
func (s *Service) DeleteInvoice(ctx context.Context, id uint) error {
	inv, err := s.GetInvoice(ctx, id)
	if err != nil {
		return err
	}

	if s.storage != nil {
		if err := s.removeAllAttachments(ctx, id); err != nil {
			return err
		}
	}
	return s.db.WithContext(ctx).Delete(inv).Error
}

// CreatePayment records a payment against an invoice. When the paid total
// reaches the invoice amount, the invoice flips to PAID in the same
// transaction.
func (s *Service) CreatePayment(ctx context.Context, input models.CreatePaymentInput) (*models.Payment, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	var payment models.Payment
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var inv models.Invoice
		if err := tx.First(&inv, input.InvoiceID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// FK pre-check on create, so a bad reference is the
				// caller's input being invalid, not a missing resource.
				return ErrPaymentInvoiceMissing
			}
			return err
		}

		payment = models.Payment{
			InvoiceID:   input.InvoiceID,
			PaidOn:      input.PaidOn,
			AmountCents: input.AmountCents,
			Method:      input.Method,
			Reference:   input.Reference,
		}
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}

		var total int64
		err := tx.Model(&models.Payment{}).
			Where("invoice_id = ?", input.InvoiceID).
			Select("COALESCE(SUM(amount_cents), 0)").
			Scan(&total).Error
		if err != nil {
			return err
		}

		if total >= inv.AmountCents && inv.Status != models.StatusPaid {
			err = tx.Model(&inv).Update("status", models.StatusPaid).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// ListPayments returns payments ordered by id, optionally filtered by
// invoice.
func (s *Service) ListPayments(ctx context.Context, filter models.PaymentListFilter, page types.Pagination) ([]models.Payment, error) {
	page = page.Normalize()

	query := s.db.WithContext(ctx).Model(&models.Payment{})
	if filter.InvoiceID != nil {
		query = query.Where("invoice_id = ?", *filter.InvoiceID)
	}

	var pays []models.Payment
	err := query.
		Order("id").
		Limit(page.Limit).
		Offset(page.Offset).
		Find(&pays).Error
	if err != nil {
		return nil, err
	}
	return pays, nil
}

// GetPayment returns a single payment by id.
func (s *Service) GetPayment(ctx context.Context, id uint) (*models.Payment, error) {
	var pay models.Payment
	if err := s.db.WithContext(ctx).First(&pay, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return &pay, nil
}

// DeletePayment removes a payment by id. The invoice status is left as-is.
func (s *Service) DeletePayment(ctx context.Context, id uint) error {
	pay, err := s.GetPayment(ctx, id)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(pay).Error
}
