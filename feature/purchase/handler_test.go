package purchase_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"admin-setor/core/database"
	"admin-setor/core/types"
	departmentmodels "admin-setor/feature/department/models"
	employeemodels "admin-setor/feature/employee/models"
	"admin-setor/feature/purchase"
	"admin-setor/feature/purchase/models"
	suppliermodels "admin-setor/feature/supplier/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupApp(t *testing.T) (*fiber.App, models.CreatePurchaseOrderInput) {
	t.Helper()

	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:?_foreign_keys=on"})
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
	sup := suppliermodels.Supplier{Name: "Alfa Materiais ME", TaxID: "11.222.333/0001-44"}
	require.NoError(t, db.Create(&sup).Error)

	app := fiber.New()
	feature := purchase.NewFeature(db, zap.NewNop())
	require.NoError(t, feature.Load(app))

	return app, models.CreatePurchaseOrderInput{
		SupplierID:   sup.ID,
		RequestedBy:  emp.ID,
		DepartmentID: dept.ID,
		TotalCents:   125900,
	}
}

func TestHandleCreate_DefaultStatus(t *testing.T) {
	app, input := setupApp(t)

	body, _ := json.Marshal(input)
	req := httptest.NewRequest("POST", "/purchase-orders", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created models.PurchaseOrder
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.Equal(t, models.StatusDraft, created.Status)
}

func TestHandleCreate_UnknownSupplier(t *testing.T) {
	app, input := setupApp(t)
	input.SupplierID = 999

	body, _ := json.Marshal(input)
	req := httptest.NewRequest("POST", "/purchase-orders", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleList_StatusFilter(t *testing.T) {
	app, input := setupApp(t)

	for _, status := range []string{models.StatusApproved, models.StatusSent} {
		input.Status = status
		body, _ := json.Marshal(input)
		req := httptest.NewRequest("POST", "/purchase-orders", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/purchase-orders?status=SENT", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var pos []models.PurchaseOrder
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&pos))
	require.Len(t, pos, 1)
	assert.Equal(t, models.StatusSent, pos[0].Status)
}

func TestHandleList_InvalidStatusFilter(t *testing.T) {
	app, _ := setupApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/purchase-orders?status=SHIPPED", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleDelete_NotFound(t *testing.T) {
	app, _ := setupApp(t)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/purchase-orders/999", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
