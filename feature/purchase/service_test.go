package purchase

import (
	"context"
	"testing"

	"admin-setor/core/database"
	"admin-setor/core/types"
	"admin-setor/core/validation"
	departmentmodels "admin-setor/feature/department/models"
	employeemodels "admin-setor/feature/employee/models"
	"admin-setor/feature/purchase/models"
	suppliermodels "admin-setor/feature/supplier/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fixtures struct {
	dept *departmentmodels.Department
	emp  *employeemodels.Employee
	sup  *suppliermodels.Supplier
}

func setupTestService(t *testing.T) (*Service, fixtures) {
	t.Helper()

	db, err := database.Connect(database.Config{
		Driver: "sqlite",
		Name:   ":memory:?_foreign_keys=on",
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&departmentmodels.Department{},
		&employeemodels.Employee{},
		&suppliermodels.Supplier{},
		&models.PurchaseOrder{},
	))

	dept := departmentmodels.Department{Name: "Compras", CostCenter: "CC-300"}
	require.NoError(t, db.Create(&dept).Error)

	emp := employeemodels.Employee{
		DepartmentID: dept.ID,
		FullName:     "Carla Mendes",
		Email:        "carla.mendes@empresa.com",
		Role:         "Comprador",
		SalaryCents:  520000,
		HiredOn:      types.NewDate(2021, 5, 12),
		Active:       true,
	}
	require.NoError(t, db.Create(&emp).Error)

	sup := suppliermodels.Supplier{Name: "Alfa Materiais ME", TaxID: "11.111.111/0001-11"}
	require.NoError(t, db.Create(&sup).Error)

	return NewService(db, zap.NewNop()), fixtures{dept: &dept, emp: &emp, sup: &sup}
}

func validInput(f fixtures) models.CreatePurchaseOrderInput {
	return models.CreatePurchaseOrderInput{
		SupplierID:   f.sup.ID,
		RequestedBy:  f.emp.ID,
		DepartmentID: f.dept.ID,
		TotalCents:   150000,
	}
}

func TestService_Create_DefaultStatus(t *testing.T) {
	svc, f := setupTestService(t)

	po, err := svc.Create(context.Background(), validInput(f))
	require.NoError(t, err)
	assert.NotZero(t, po.ID)
	assert.Equal(t, models.StatusDraft, po.Status)
}

func TestService_Create_ExplicitStatus(t *testing.T) {
	svc, f := setupTestService(t)

	input := validInput(f)
	input.Status = models.StatusApproved
	po, err := svc.Create(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, po.Status)
}

func TestService_Create_BadStatus(t *testing.T) {
	svc, f := setupTestService(t)

	input := validInput(f)
	input.Status = "SHIPPED"
	_, err := svc.Create(context.Background(), input)
	assert.Error(t, err)
	assert.True(t, validation.IsError(err))
}

func TestService_Create_MissingReferences(t *testing.T) {
	svc, f := setupTestService(t)
	ctx := context.Background()

	input := validInput(f)
	input.SupplierID = 999
	_, err := svc.Create(ctx, input)
	assert.ErrorIs(t, err, ErrSupplierNotFound)

	input = validInput(f)
	input.RequestedBy = 999
	_, err = svc.Create(ctx, input)
	assert.ErrorIs(t, err, ErrEmployeeNotFound)

	input = validInput(f)
	input.DepartmentID = 999
	_, err = svc.Create(ctx, input)
	assert.ErrorIs(t, err, ErrDepartmentNotFound)
}

func TestService_Create_NegativeTotal(t *testing.T) {
	svc, f := setupTestService(t)

	input := validInput(f)
	input.TotalCents = -100
	_, err := svc.Create(context.Background(), input)
	assert.True(t, validation.IsError(err))
}

func TestService_List_StatusFilter(t *testing.T) {
	svc, f := setupTestService(t)
	ctx := context.Background()

	for _, status := range []string{models.StatusDraft, models.StatusApproved, models.StatusApproved} {
		input := validInput(f)
		input.Status = status
		_, err := svc.Create(ctx, input)
		require.NoError(t, err)
	}

	all, err := svc.List(ctx, models.ListFilter{}, types.Pagination{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	approved, err := svc.List(ctx, models.ListFilter{Status: models.StatusApproved}, types.Pagination{})
	require.NoError(t, err)
	assert.Len(t, approved, 2)

	_, err = svc.List(ctx, models.ListFilter{Status: "BOGUS"}, types.Pagination{})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestService_Get_NotFound(t *testing.T) {
	svc, _ := setupTestService(t)

	_, err := svc.Get(context.Background(), 5)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Delete(t *testing.T) {
	svc, f := setupTestService(t)
	ctx := context.Background()

	po, err := svc.Create(ctx, validInput(f))
	require.NoError(t, err)

	assert.NoError(t, svc.Delete(ctx, po.ID))
	assert.ErrorIs(t, svc.Delete(ctx, po.ID), ErrNotFound)
}
