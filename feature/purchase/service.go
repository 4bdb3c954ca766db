package purchase

import (
	"context"
	"errors"

	"admin-setor/core/types"
	"admin-setor/core/validation"
	departmentmodels "admin-setor/feature/department/models"
	employeemodels "admin-setor/feature/employee/models"
	"admin-setor/feature/purchase/models"
	suppliermodels "admin-setor/feature/supplier/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Sentinel errors returned by the service. Handlers map them to HTTP statuses.
var (
	ErrNotFound           = errors.New("purchase order not found")
	ErrSupplierNotFound   = errors.New("supplier not found")
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrDepartmentNotFound = errors.New("department not found")
	ErrInvalidStatus      = errors.New("invalid status")
)

// Service handles purchase order operations.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new purchase order service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// Create inserts a new purchase order after verifying the supplier, the
// requesting employee and the department all exist.
func (s *Service) Create(ctx context.Context, input models.CreatePurchaseOrderInput) (*models.PurchaseOrder, error) {
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
	if err := db.First(&employeemodels.Employee{}, input.RequestedBy).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}
	if err := db.First(&departmentmodels.Department{}, input.DepartmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDepartmentNotFound
		}
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = models.StatusDraft
	}

	po := models.PurchaseOrder{
		SupplierID:   input.SupplierID,
		RequestedBy:  input.RequestedBy,
		DepartmentID: input.DepartmentID,
		Status:       status,
		TotalCents:   input.TotalCents,
	}
	if err := db.Create(&po).Error; err != nil {
		return nil, err
	}
	return &po, nil
}

// List returns purchase orders ordered by id, optionally filtered by status.
func (s *Service) List(ctx context.Context, filter models.ListFilter, page types.Pagination) ([]models.PurchaseOrder, error) {
	page = page.Normalize()

	query := s.db.WithContext(ctx).Model(&models.PurchaseOrder{})
	if filter.Status != "" {
		if !models.ValidStatus(filter.Status) {
			return nil, ErrInvalidStatus
		}
		query = query.Where("status = ?", filter.Status)
	}

	var pos []models.PurchaseOrder
	err := query.
		Order("id").
		Limit(page.Limit).
		Offset(page.Offset).
		Find(&pos).Error
	if err != nil {
		return nil, err
	}
	return pos, nil
}

// Get returns a single purchase order by id.
func (s *Service) Get(ctx context.Context, id uint) (*models.PurchaseOrder, error) {
	var po models.PurchaseOrder
	if err := s.db.WithContext(ctx).First(&po, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &po, nil
}

// Delete removes a purchase order by id. Invoices pointing at it keep
// existing with their po_id cleared (SET NULL).
func (s *Service) Delete(ctx context.Context, id uint) error {
	po, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(po).Error
}
