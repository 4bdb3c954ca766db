package department_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"admin-setor/core/database"
	"admin-setor/feature/department"
	"admin-setor/feature/department/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Department{}))

	app := fiber.New()
	feature := department.NewFeature(db, zap.NewNop())
	require.NoError(t, feature.Load(app))
	return app
}

func TestHandleCreateAndGet(t *testing.T) {
	app := setupApp(t)

	body, _ := json.Marshal(models.CreateDepartmentInput{Name: "Financeiro", CostCenter: "CC-100"})
	req := httptest.NewRequest("POST", "/departments", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created models.Department
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.NotZero(t, created.ID)

	resp, err = app.Test(httptest.NewRequest("GET", fmt.Sprintf("/departments/%d", created.ID), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestHandleCreate_Invalid(t *testing.T) {
	app := setupApp(t)

	req := httptest.NewRequest("POST", "/departments", bytes.NewReader([]byte(`{"name":"X"}`)))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleCreate_Duplicate(t *testing.T) {
	app := setupApp(t)

	body, _ := json.Marshal(models.CreateDepartmentInput{Name: "RH", CostCenter: "CC-200"})

	for i, wantStatus := range []int{fiber.StatusCreated, fiber.StatusBadRequest} {
		req := httptest.NewRequest("POST", "/departments", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err, "attempt %d", i)
		assert.Equal(t, wantStatus, resp.StatusCode, "attempt %d", i)
	}
}

func TestHandleList(t *testing.T) {
	app := setupApp(t)

	for _, name := range []string{"Financeiro", "RH"} {
		body, _ := json.Marshal(models.CreateDepartmentInput{Name: name, CostCenter: "CC-" + name})
		req := httptest.NewRequest("POST", "/departments", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		_, err := app.Test(req)
		require.NoError(t, err)
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/departments?limit=1&offset=1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var depts []models.Department
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&depts))
	require.Len(t, depts, 1)
	assert.Equal(t, "RH", depts[0].Name)
}

func TestHandleGet_NotFound(t *testing.T) {
	app := setupApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/departments/999", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestHandleGet_InvalidID(t *testing.T) {
	app := setupApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/departments/abc", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleDelete(t *testing.T) {
	app := setupApp(t)

	body, _ := json.Marshal(models.CreateDepartmentInput{Name: "Temp", CostCenter: "CC-900"})
	req := httptest.NewRequest("POST", "/departments", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	var created models.Department
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))

	resp, err = app.Test(httptest.NewRequest("DELETE", fmt.Sprintf("/departments/%d", created.ID), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("DELETE", fmt.Sprintf("/departments/%d", created.ID), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
