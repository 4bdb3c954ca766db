package cmd

import (
	billingmodels "admin-setor/feature/billing/models"
	departmentmodels "admin-setor/feature/department/models"
	employeemodels "admin-setor/feature/employee/models"
	purchasemodels "admin-setor/feature/purchase/models"
	suppliermodels "admin-setor/feature/supplier/models"

	"gorm.io/gorm"
)

// autoMigrate creates or updates the schema for every entity. Order matters:
// referenced tables must exist before the tables pointing at them.
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&departmentmodels.Department{},
		&employeemodels.Employee{},
		&suppliermodels.Supplier{},
		&purchasemodels.PurchaseOrder{},
		&billingmodels.Invoice{},
		&billingmodels.Payment{},
	)
}
