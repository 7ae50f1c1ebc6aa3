package migrate

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/fieldsalesapp/fieldsales-backend/pkg/db"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	client, err := db.NewWithDSN(fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	sqlDB, err := client.DB().DB()
	require.NoError(t, err)
	return sqlDB
}

func TestUpCreatesSchema(t *testing.T) {
	ctx := context.Background()
	sqlDB := openTestDB(t)

	require.NoError(t, Up(ctx, sqlDB))

	for _, table := range []string{
		"customers",
		"items",
		"order_bookings",
		"order_booking_lines",
		"customer_receipts",
		"recent_activity",
	} {
		var name string
		err := sqlDB.QueryRowContext(ctx,
			"SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table).
			Scan(&name)
		require.NoError(t, err, "table %s missing", table)
	}

	version, err := Version(ctx, sqlDB)
	require.NoError(t, err)
	assert.Greater(t, version, int64(0))
}

// A second Up run on an initialized store must change nothing and lose
// nothing.
func TestUpIsIdempotent(t *testing.T) {
	ctx := context.Background()
	sqlDB := openTestDB(t)

	require.NoError(t, Up(ctx, sqlDB))

	_, err := sqlDB.ExecContext(ctx,
		"INSERT INTO customers (customer_code, name) VALUES ('C-1', 'Corner Shop')")
	require.NoError(t, err)

	firstVersion, err := Version(ctx, sqlDB)
	require.NoError(t, err)

	require.NoError(t, Up(ctx, sqlDB))

	secondVersion, err := Version(ctx, sqlDB)
	require.NoError(t, err)
	assert.Equal(t, firstVersion, secondVersion)

	var count int
	require.NoError(t, sqlDB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM customers").Scan(&count))
	assert.Equal(t, 1, count)
}

func TestUpRequiresDB(t *testing.T) {
	assert.Error(t, Up(context.Background(), nil))
}
