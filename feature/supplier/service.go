package supplier

import (
	"context"
	"errors"

	"admin-setor/core/types"
	"admin-setor/core/validation"
	"admin-setor/feature/supplier/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Sentinel errors returned by the service. Handlers map them to HTTP statuses.
var (
	ErrNotFound  = errors.New("supplier not found")
	ErrDuplicate = errors.New("supplier name or tax id already exists")
	ErrInUse     = errors.New("supplier is referenced by other records")
)

// Service handles supplier operations.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new supplier service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// Create inserts a new supplier.
func (s *Service) Create(ctx context.Context, input models.CreateSupplierInput) (*models.Supplier, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	sup := models.Supplier{
		Name:  input.Name,
		TaxID: input.TaxID,
		Email: input.Email,
		Phone: input.Phone,
	}
	if err := s.db.WithContext(ctx).Create(&sup).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return &sup, nil
}

// List returns suppliers ordered by id, paginated.
func (s *Service) List(ctx context.Context, page types.Pagination) ([]models.Supplier, error) {
	page = page.Normalize()

	var sups []models.Supplier
	err := s.db.WithContext(ctx).
		Order("id").
		Limit(page.Limit).
		Offset(page.Offset).
		Find(&sups).Error
	if err != nil {
		return nil, err
	}
	return sups, nil
}

// Get returns a single supplier by id.
func (s *Service) Get(ctx context.Context, id uint) (*models.Supplier, error) {
	var sup models.Supplier
	if err := s.db.WithContext(ctx).First(&sup, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &sup, nil
}

// Delete removes a supplier by id.
func (s *Service) Delete(ctx context.Context, id uint) error {
	sup, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Delete(sup).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return ErrInUse
		}
		return err
	}
	return nil
}
