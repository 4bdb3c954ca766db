package cmd

import (
	"testing"

	"admin-setor/core/database"
	billingmodels "admin-setor/feature/billing/models"
	departmentmodels "admin-setor/feature/department/models"
	employeemodels "admin-setor/feature/employee/models"
	purchasemodels "admin-setor/feature/purchase/models"
	suppliermodels "admin-setor/feature/supplier/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func countOf(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func TestSeedDemoData_Idempotent(t *testing.T) {
	db, err := database.Connect(database.Config{
		Driver: "sqlite",
		Name:   ":memory:?_foreign_keys=on",
	})
	require.NoError(t, err)
	require.NoError(t, autoMigrate(db))

	require.NoError(t, db.Transaction(seedDemoData))

	assert.EqualValues(t, 4, countOf(t, db, &departmentmodels.Department{}))
	assert.EqualValues(t, 4, countOf(t, db, &employeemodels.Employee{}))
	assert.EqualValues(t, 2, countOf(t, db, &suppliermodels.Supplier{}))
	assert.EqualValues(t, 2, countOf(t, db, &purchasemodels.PurchaseOrder{}))
	assert.EqualValues(t, 2, countOf(t, db, &billingmodels.Invoice{}))
	assert.EqualValues(t, 1, countOf(t, db, &billingmodels.Payment{}))

	// Running the seed again must not duplicate anything.
	require.NoError(t, db.Transaction(seedDemoData))

	assert.EqualValues(t, 4, countOf(t, db, &departmentmodels.Department{}))
	assert.EqualValues(t, 4, countOf(t, db, &employeemodels.Employee{}))
	assert.EqualValues(t, 2, countOf(t, db, &suppliermodels.Supplier{}))
	assert.EqualValues(t, 2, countOf(t, db, &purchasemodels.PurchaseOrder{}))
	assert.EqualValues(t, 2, countOf(t, db, &billingmodels.Invoice{}))
	assert.EqualValues(t, 1, countOf(t, db, &billingmodels.Payment{}))

	var inv billingmodels.Invoice
	require.NoError(t, db.Where("invoice_no = ?", "NF-0100").First(&inv).Error)
	assert.Equal(t, billingmodels.StatusPaid, inv.Status)
	require.NotNil(t, inv.POID)
}
