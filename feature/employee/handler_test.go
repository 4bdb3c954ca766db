package employee_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"admin-setor/core/database"
	departmentmodels "admin-setor/feature/department/models"
	"admin-setor/feature/employee"
	"admin-setor/feature/employee/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupApp(t *testing.T) (*fiber.App, uint) {
	t.Helper()

	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&departmentmodels.Department{}, &models.Employee{}))

	dept := departmentmodels.Department{Name: "Financeiro", CostCenter: "CC-100"}
	require.NoError(t, db.Create(&dept).Error)

	app := fiber.New()
	feature := employee.NewFeature(db, zap.NewNop())
	require.NoError(t, feature.Load(app))
	return app, dept.ID
}

func TestHandleCreate(t *testing.T) {
	app, deptID := setupApp(t)

	payload := fiber.Map{
		"department_id": deptID,
		"full_name":     "Ana Souza",
		"email":         "ana.souza@empresa.com",
		"role":          "Analista Financeiro",
		"salary_cents":  750000,
		"hired_on":      "2022-03-01",
	}
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest("POST", "/employees", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.Equal(t, "2022-03-01", created["hired_on"])
	assert.Equal(t, true, created["active"])
}

func TestHandleCreate_BadDate(t *testing.T) {
	app, deptID := setupApp(t)

	payload := fiber.Map{
		"department_id": deptID,
		"full_name":     "Ana Souza",
		"email":         "ana.souza@empresa.com",
		"role":          "Analista",
		"salary_cents":  750000,
		"hired_on":      "not-a-date",
	}
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest("POST", "/employees", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleCreate_UnknownDepartment(t *testing.T) {
	app, _ := setupApp(t)

	payload := fiber.Map{
		"department_id": 999,
		"full_name":     "Ana Souza",
		"email":         "ana.souza@empresa.com",
		"role":          "Analista",
		"salary_cents":  750000,
		"hired_on":      "2022-03-01",
	}
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest("POST", "/employees", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleList_DepartmentFilter(t *testing.T) {
	app, deptID := setupApp(t)

	for _, email := range []string{"a@empresa.com", "b@empresa.com"} {
		payload := fiber.Map{
			"department_id": deptID,
			"full_name":     "Funcionario Teste",
			"email":         email,
			"role":          "Analista",
			"salary_cents":  500000,
			"hired_on":      "2023-01-10",
		}
		body, _ := json.Marshal(payload)
		req := httptest.NewRequest("POST", "/employees", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/employees?department_id=999", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var emps []models.Employee
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&emps))
	assert.Empty(t, emps)
}

func TestHandleList_ActiveFilter(t *testing.T) {
	app, deptID := setupApp(t)

	for email, active := range map[string]bool{"a@empresa.com": true, "b@empresa.com": false} {
		payload := fiber.Map{
			"department_id": deptID,
			"full_name":     "Funcionario Teste",
			"email":         email,
			"role":          "Analista",
			"salary_cents":  500000,
			"hired_on":      "2023-01-10",
			"active":        active,
		}
		body, _ := json.Marshal(payload)
		req := httptest.NewRequest("POST", "/employees", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/employees?active=false", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var emps []models.Employee
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&emps))
	require.Len(t, emps, 1)
	assert.Equal(t, "b@empresa.com", emps[0].Email)

	// A value that is not a bool must be rejected, not coerced to false.
	resp, err = app.Test(httptest.NewRequest("GET", "/employees?active=banana", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
