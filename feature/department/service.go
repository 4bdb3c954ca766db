package department

import (
	"context"
	"errors"

	"admin-setor/core/types"
	"admin-setor/core/validation"
	"admin-setor/feature/department/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Sentinel errors returned by the service. Handlers map them to HTTP statuses.
var (
	ErrNotFound  = errors.New("department not found")
	ErrDuplicate = errors.New("department name or cost center already exists")
	ErrInUse     = errors.New("department is referenced by other records")
)

// Service handles department operations.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new department service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// Create inserts a new department.
func (s *Service) Create(ctx context.Context, input models.CreateDepartmentInput) (*models.Department, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	dept := models.Department{
		Name:       input.Name,
		CostCenter: input.CostCenter,
	}
	if err := s.db.WithContext(ctx).Create(&dept).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return &dept, nil
}

// List returns departments ordered by id, paginated.
func (s *Service) List(ctx context.Context, page types.Pagination) ([]models.Department, error) {
	page = page.Normalize()

	var depts []models.Department
	err := s.db.WithContext(ctx).
		Order("id").
		Limit(page.Limit).
		Offset(page.Offset).
		Find(&depts).Error
	if err != nil {
		return nil, err
	}
	return depts, nil
}

// Get returns a single department by id.
func (s *Service) Get(ctx context.Context, id uint) (*models.Department, error) {
	var dept models.Department
	if err := s.db.WithContext(ctx).First(&dept, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &dept, nil
}

// Delete removes a department by id.
func (s *Service) Delete(ctx context.Context, id uint) error {
	dept, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Delete(dept).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return ErrInUse
		}
		return err
	}
	return nil
}
