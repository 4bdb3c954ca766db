package supplier

import (
	"context"
	"errors"
	"testing"
	"time"

	"admin-setor/core/database"
	"admin-setor/core/types"
	"admin-setor/core/validation"
	"admin-setor/feature/supplier/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func setupTestService(t *testing.T) *Service {
	t.Helper()

	db, err := database.Connect(database.Config{
		Driver: "sqlite",
		Name:   ":memory:?_foreign_keys=on",
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Supplier{}))

	return NewService(db, zap.NewNop())
}

func TestService_List_Mock(t *testing.T) {
	db, mock := setupMockDB(t)
	svc := NewService(db, zap.NewNop())

	rows := sqlmock.NewRows([]string{"id", "name", "tax_id", "email", "phone", "created_at"}).
		AddRow(1, "Alfa Materiais ME", "11.111.111/0001-11", "contato@alfamateriais.com.br", nil, time.Now()).
		AddRow(2, "Beta Servicos Ltda", "22.222.222/0001-22", nil, "+55 11 4002-8922", time.Now())

	mock.ExpectQuery(`SELECT \* FROM "suppliers"`).WillReturnRows(rows)

	sups, err := svc.List(context.Background(), types.Pagination{})
	require.NoError(t, err)
	require.Len(t, sups, 2)
	assert.Equal(t, "Alfa Materiais ME", sups[0].Name)
	assert.Nil(t, sups[0].Phone)
	require.NotNil(t, sups[1].Phone)
	assert.Equal(t, "+55 11 4002-8922", *sups[1].Phone)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_List_DBError(t *testing.T) {
	db, mock := setupMockDB(t)
	svc := NewService(db, zap.NewNop())

	mock.ExpectQuery(`SELECT \* FROM "suppliers"`).WillReturnError(errors.New("connection reset"))

	_, err := svc.List(context.Background(), types.Pagination{})
	assert.Error(t, err)
}

func TestService_Get_Mock(t *testing.T) {
	db, mock := setupMockDB(t)
	svc := NewService(db, zap.NewNop())

	rows := sqlmock.NewRows([]string{"id", "name", "tax_id", "email", "phone", "created_at"}).
		AddRow(7, "Gama Tech", "33.333.333/0001-33", nil, nil, time.Now())

	mock.ExpectQuery(`SELECT \* FROM "suppliers" WHERE`).WillReturnRows(rows)

	sup, err := svc.Get(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, uint(7), sup.ID)
	assert.Equal(t, "Gama Tech", sup.Name)
}

func TestService_Get_NotFound_Mock(t *testing.T) {
	db, mock := setupMockDB(t)
	svc := NewService(db, zap.NewNop())

	mock.ExpectQuery(`SELECT \* FROM "suppliers" WHERE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "tax_id", "email", "phone", "created_at"}))

	_, err := svc.Get(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Create(t *testing.T) {
	svc := setupTestService(t)

	email := "contato@alfamateriais.com.br"
	sup, err := svc.Create(context.Background(), models.CreateSupplierInput{
		Name:  "Alfa Materiais ME",
		TaxID: "11.111.111/0001-11",
		Email: &email,
	})
	require.NoError(t, err)
	assert.NotZero(t, sup.ID)
	assert.Nil(t, sup.Phone)
}

func TestService_Create_Duplicate(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, models.CreateSupplierInput{Name: "Alfa Materiais ME", TaxID: "11.111.111/0001-11"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, models.CreateSupplierInput{Name: "Alfa Materiais ME", TaxID: "99.999.999/0001-99"})
	assert.ErrorIs(t, err, ErrDuplicate)

	_, err = svc.Create(ctx, models.CreateSupplierInput{Name: "Outro Nome", TaxID: "11.111.111/0001-11"})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestService_Create_Validation(t *testing.T) {
	svc := setupTestService(t)

	badEmail := "not-an-email"
	_, err := svc.Create(context.Background(), models.CreateSupplierInput{
		Name:  "Alfa Materiais ME",
		TaxID: "11.111.111/0001-11",
		Email: &badEmail,
	})
	assert.Error(t, err)
	assert.True(t, validation.IsError(err))
}

func TestService_Delete(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	sup, err := svc.Create(ctx, models.CreateSupplierInput{Name: "Temporaria Ltda", TaxID: "44.444.444/0001-44"})
	require.NoError(t, err)

	assert.NoError(t, svc.Delete(ctx, sup.ID))
	assert.ErrorIs(t, svc.Delete(ctx, sup.ID), ErrNotFound)
}
