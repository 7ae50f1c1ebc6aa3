package receipts

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/fieldsalesapp/fieldsales-backend/pkg/db/models"
	"github.com/fieldsalesapp/fieldsales-backend/pkg/enums"
	"github.com/fieldsalesapp/fieldsales-backend/pkg/migrate"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupReceiptsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, migrate.Up(context.Background(), sqlDB))
	return db
}

func TestRepositoryListAllJoinsCustomerNewestFirst(t *testing.T) {
	db := setupReceiptsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	customer := &models.Customer{Code: "C-1", Name: "Corner Shop", Visited: enums.VisitStatusUnvisited}
	require.NoError(t, db.Create(customer).Error)

	note := "partial payment"
	first := &models.CustomerReceipt{
		CustomerID: customer.ID,
		CashBankID: "CASH-01",
		Amount:     decimal.NewFromInt(500),
		Note:       &note,
		CreatedAt:  time.Now().UTC(),
	}
	require.NoError(t, repo.Create(ctx, first))

	second := &models.CustomerReceipt{
		CustomerID: customer.ID,
		CashBankID: "BANK-01",
		Amount:     decimal.NewFromInt(1200),
		CreatedAt:  time.Now().UTC(),
	}
	require.NoError(t, repo.Create(ctx, second))

	receipts, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, receipts, 2)

	assert.Equal(t, second.ID, receipts[0].ID)
	assert.Equal(t, "BANK-01", receipts[0].CashBankID)
	assert.Equal(t, "Corner Shop", receipts[0].CustomerName)
	assert.True(t, receipts[0].Amount.Equal(decimal.NewFromInt(1200)))

	assert.Equal(t, first.ID, receipts[1].ID)
	require.NotNil(t, receipts[1].Note)
	assert.Equal(t, "partial payment", *receipts[1].Note)
}
