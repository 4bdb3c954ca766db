package cmd

import (
	"log"

	"admin-setor/core/config"
	"admin-setor/core/database"
	"admin-setor/core/logger"
	"admin-setor/core/types"
	billingmodels "admin-setor/feature/billing/models"
	departmentmodels "admin-setor/feature/department/models"
	employeemodels "admin-setor/feature/employee/models"
	purchasemodels "admin-setor/feature/purchase/models"
	suppliermodels "admin-setor/feature/supplier/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// seedCmd represents the seed command
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the schema and load the demo dataset",
	Long: `Creates all tables (AutoMigrate) and upserts a small demo dataset:
departments, employees, suppliers, purchase orders, invoices and one payment.
Safe to run repeatedly.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()

		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Failed to connect to database", zap.Error(err))
		}
		if err := autoMigrate(db); err != nil {
			logg.Fatal("Failed to migrate schema", zap.Error(err))
		}

		if err := db.Transaction(seedDemoData); err != nil {
			logg.Fatal("Failed to seed demo data", zap.Error(err))
		}

		logg.Info("Schema created and demo data seeded")
		return nil
	},
}

// seedDemoData upserts the demo dataset. Rows with a natural unique key
// (name, email, tax id, supplier+invoice number) are upserted in place;
// purchase orders and payments have none, so they are only inserted when the
// table is still empty.
func seedDemoData(tx *gorm.DB) error {
	departments := []departmentmodels.Department{
		{Name: "Financeiro", CostCenter: "CC-100"},
		{Name: "RH", CostCenter: "CC-200"},
		{Name: "Compras", CostCenter: "CC-300"},
		{Name: "Administrativo", CostCenter: "CC-400"},
	}
	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"cost_center"}),
	}).Create(&departments).Error
	if err != nil {
		return err
	}
	deptID, err := departmentIDs(tx)
	if err != nil {
		return err
	}

	employees := []employeemodels.Employee{
		{DepartmentID: deptID["Financeiro"], FullName: "Ana Souza", Email: "ana.souza@empresa.com", Role: "Analista Financeiro", SalaryCents: 550000, HiredOn: types.NewDate(2023, 2, 10), Active: true},
		{DepartmentID: deptID["RH"], FullName: "Bruno Lima", Email: "bruno.lima@empresa.com", Role: "Analista de RH", SalaryCents: 480000, HiredOn: types.NewDate(2022, 8, 1), Active: true},
		{DepartmentID: deptID["Compras"], FullName: "Carla Mendes", Email: "carla.mendes@empresa.com", Role: "Comprador", SalaryCents: 520000, HiredOn: types.NewDate(2021, 5, 12), Active: true},
		{DepartmentID: deptID["Administrativo"], FullName: "Diego Pereira", Email: "diego.pereira@empresa.com", Role: "Assistente Administrativo", SalaryCents: 320000, HiredOn: types.NewDate(2024, 1, 15), Active: true},
	}
	err = tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"department_id", "full_name", "role", "salary_cents", "hired_on", "active"}),
	}).Create(&employees).Error
	if err != nil {
		return err
	}
	empID, err := employeeIDs(tx)
	if err != nil {
		return err
	}

	suppliers := []suppliermodels.Supplier{
		{Name: "Papelaria Norte", TaxID: "12.345.678/0001-00", Email: ptr("contato@papelarianorte.com"), Phone: ptr("+55 92 99999-0000")},
		{Name: "TechOffice LTDA", TaxID: "98.765.432/0001-11", Email: ptr("financeiro@techoffice.com"), Phone: ptr("+55 11 98888-1111")},
	}
	err = tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "tax_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "email", "phone"}),
	}).Create(&suppliers).Error
	if err != nil {
		return err
	}
	supID, err := supplierIDs(tx)
	if err != nil {
		return err
	}

	var poCount int64
	if err := tx.Model(&purchasemodels.PurchaseOrder{}).Count(&poCount).Error; err != nil {
		return err
	}
	if poCount == 0 {
		pos := []purchasemodels.PurchaseOrder{
			{SupplierID: supID["12.345.678/0001-00"], RequestedBy: empID["carla.mendes@empresa.com"], DepartmentID: deptID["Compras"], Status: purchasemodels.StatusApproved, TotalCents: 125900},
			{SupplierID: supID["98.765.432/0001-11"], RequestedBy: empID["diego.pereira@empresa.com"], DepartmentID: deptID["Administrativo"], Status: purchasemodels.StatusSent, TotalCents: 349900},
		}
		if err := tx.Create(&pos).Error; err != nil {
			return err
		}
	}

	var firstPO, secondPO purchasemodels.PurchaseOrder
	if err := tx.Where("supplier_id = ?", supID["12.345.678/0001-00"]).Order("id").First(&firstPO).Error; err != nil {
		return err
	}
	if err := tx.Where("supplier_id = ?", supID["98.765.432/0001-11"]).Order("id").First(&secondPO).Error; err != nil {
		return err
	}

	invoices := []billingmodels.Invoice{
		{SupplierID: supID["12.345.678/0001-00"], POID: &firstPO.ID, InvoiceNo: "NF-0001", IssuedOn: types.NewDate(2026, 2, 1), DueOn: types.NewDate(2026, 2, 20), AmountCents: 125900, Status: billingmodels.StatusOpen},
		{SupplierID: supID["98.765.432/0001-11"], POID: &secondPO.ID, InvoiceNo: "NF-0100", IssuedOn: types.NewDate(2026, 2, 5), DueOn: types.NewDate(2026, 2, 15), AmountCents: 349900, Status: billingmodels.StatusPaid},
	}
	err = tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "supplier_id"}, {Name: "invoice_no"}},
		DoUpdates: clause.AssignmentColumns([]string{"po_id", "issued_on", "due_on", "amount_cents", "status"}),
	}).Create(&invoices).Error
	if err != nil {
		return err
	}

	var paidInvoice billingmodels.Invoice
	if err := tx.Where("invoice_no = ?", "NF-0100").First(&paidInvoice).Error; err != nil {
		return err
	}

	// Payment for the already-paid invoice, keyed on its bank reference.
	reference := "PIX-REF-20260206-0001"
	var payCount int64
	if err := tx.Model(&billingmodels.Payment{}).Where("reference = ?", reference).Count(&payCount).Error; err != nil {
		return err
	}
	if payCount == 0 {
		payment := billingmodels.Payment{
			InvoiceID:   paidInvoice.ID,
			PaidOn:      types.NewDate(2026, 2, 6),
			AmountCents: 349900,
			Method:      billingmodels.MethodPix,
			Reference:   &reference,
		}
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}
	}
	return nil
}

func departmentIDs(tx *gorm.DB) (map[string]uint, error) {
	var rows []departmentmodels.Department
	if err := tx.Find(&rows).Error; err != nil {
		return nil, err
	}
	ids := make(map[string]uint, len(rows))
	for _, r := range rows {
		ids[r.Name] = r.ID
	}
	return ids, nil
}

func employeeIDs(tx *gorm.DB) (map[string]uint, error) {
	var rows []employeemodels.Employee
	if err := tx.Find(&rows).Error; err != nil {
		return nil, err
	}
	ids := make(map[string]uint, len(rows))
	for _, r := range rows {
		ids[r.Email] = r.ID
	}
	return ids, nil
}

func supplierIDs(tx *gorm.DB) (map[string]uint, error) {
	var rows []suppliermodels.Supplier
	if err := tx.Find(&rows).Error; err != nil {
		return nil, err
	}
	ids := make(map[string]uint, len(rows))
	for _, r := range rows {
		ids[r.TaxID] = r.ID
	}
	return ids, nil
}

func ptr[T any](v T) *T {
	return &v
}

func init() {
	RootCmd.AddCommand(seedCmd)
}
