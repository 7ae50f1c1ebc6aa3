package catalog

import (
	"context"
	"fmt"
	"testing"

	"github.com/fieldsalesapp/fieldsales-backend/pkg/db/models"
	"github.com/fieldsalesapp/fieldsales-backend/pkg/migrate"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupCatalogTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, migrate.Up(context.Background(), sqlDB))
	return db
}

func TestRepositoryListOrdersByName(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewRepository(db)

	require.NoError(t, db.Create(&models.Item{
		Name: "Washing Powder 1kg", Code: "HOM-0001", RetailPrice: decimal.NewFromInt(380),
	}).Error)
	require.NoError(t, db.Create(&models.Item{
		Name: "Basmati Rice 5kg", Code: "GRO-0001", RetailPrice: decimal.NewFromInt(1450),
	}).Error)

	items, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Basmati Rice 5kg", items[0].Name)
	assert.Equal(t, "Washing Powder 1kg", items[1].Name)
	assert.True(t, items[0].RetailPrice.Equal(decimal.NewFromInt(1450)))
}

func TestRepositoryFindByIDMissing(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewRepository(db)

	_, err := repo.FindByID(context.Background(), 404)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
