package employee

import (
	"context"
	"errors"

	"admin-setor/core/types"
	"admin-setor/core/validation"
	departmentmodels "admin-setor/feature/department/models"
	"admin-setor/feature/employee/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Sentinel errors returned by the service. Handlers map them to HTTP statuses.
var (
	ErrNotFound           = errors.New("employee not found")
	ErrDepartmentNotFound = errors.New("department not found")
	ErrDuplicateEmail     = errors.New("email already exists")
	ErrInUse              = errors.New("employee is referenced by other records")
)

// Service handles employee operations.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new employee service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// Create inserts a new employee after verifying the department exists.
func (s *Service) Create(ctx context.Context, input models.CreateEmployeeInput) (*models.Employee, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	var dept departmentmodels.Department
	if err := s.db.WithContext(ctx).First(&dept, input.DepartmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDepartmentNotFound
		}
		return nil, err
	}

	active := true
	if input.Active != nil {
		active = *input.Active
	}

	emp := models.Employee{
		DepartmentID: input.DepartmentID,
		FullName:     input.FullName,
		Email:        input.Email,
		Role:         input.Role,
		SalaryCents:  input.SalaryCents,
		HiredOn:      input.HiredOn,
		Active:       active,
	}
	if err := s.db.WithContext(ctx).Create(&emp).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return &emp, nil
}

// List returns employees ordered by id, optionally filtered by department and
// active flag.
func (s *Service) List(ctx context.Context, filter models.ListFilter, page types.Pagination) ([]models.Employee, error) {
	page = page.Normalize()

	query := s.db.WithContext(ctx).Model(&models.Employee{})
	if filter.DepartmentID != nil {
		query = query.Where("department_id = ?", *filter.DepartmentID)
	}
	if filter.Active != nil {
		query = query.Where("active = ?", *filter.Active)
	}

	var emps []models.Employee
	err := query.
		Order("id").
		Limit(page.Limit).
		Offset(page.Offset).
		Find(&emps).Error
	if err != nil {
		return nil, err
	}
	return emps, nil
}

// Get returns a single employee by id.
func (s *Service) Get(ctx context.Context, id uint) (*models.Employee, error) {
	var emp models.Employee
	if err := s.db.WithContext(ctx).First(&emp, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &emp, nil
}

// Delete removes an employee by id.
func (s *Service) Delete(ctx context.Context, id uint) error {
	emp, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Delete(emp).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return ErrInUse
		}
		return err
	}
	return nil
}
