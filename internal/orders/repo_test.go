package orders

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

func setupOrdersTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, migrate.Up(context.Background(), sqlDB))
	return db
}

func newOrderCustomer(t *testing.T, db *gorm.DB, code, name string) *models.Customer {
	t.Helper()

	customer := &models.Customer{Code: code, Name: name, Visited: enums.VisitStatusUnvisited}
	require.NoError(t, db.Create(customer).Error)
	return customer
}

func newOrderItem(t *testing.T, db *gorm.DB, code, name string, price int64) *models.Item {
	t.Helper()

	item := &models.Item{Name: name, Code: code, RetailPrice: decimal.NewFromInt(price)}
	require.NoError(t, db.Create(item).Error)
	return item
}

func newBooking(t *testing.T, db *gorm.DB, customer *models.Customer, orderNo string) *models.OrderBooking {
	t.Helper()

	now := time.Now().UTC()
	booking := &models.OrderBooking{
		OrderNo:     orderNo,
		CustomerID:  customer.ID,
		OrderDate:   now,
		CreatedByID: 1,
		CreatedDate: now,
	}
	require.NoError(t, db.Create(booking).Error)
	return booking
}

func newLine(t *testing.T, db *gorm.DB, booking *models.OrderBooking, item *models.Item, qty int, price int64) *models.OrderBookingLine {
	t.Helper()

	unitPrice := decimal.NewFromInt(price)
	line := &models.OrderBookingLine{
		BookingID: booking.BookingID,
		ItemID:    item.ID,
		OrderQty:  qty,
		UnitPrice: unitPrice,
		Amount:    unitPrice.Mul(decimal.NewFromInt(int64(qty))),
	}
	require.NoError(t, db.Create(line).Error)
	return line
}

func TestRepositoryFindLineByBookingAndItem(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	customer := newOrderCustomer(t, db, "C-1", "Corner Shop")
	item := newOrderItem(t, db, "GRO-0001", "Basmati Rice 5kg", 1450)
	booking := newBooking(t, db, customer, "ORD-1")
	created := newLine(t, db, booking, item, 2, 1450)

	found, err := repo.FindLineByBookingAndItem(ctx, booking.BookingID, item.ID)
	require.NoError(t, err)
	assert.Equal(t, created.LineID, found.LineID)
	assert.Equal(t, 2, found.OrderQty)

	_, err = repo.FindLineByBookingAndItem(ctx, booking.BookingID, item.ID+1)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepositoryDuplicateLineViolatesUniqueness(t *testing.T) {
	db := setupOrdersTestDB(t)
	customer := newOrderCustomer(t, db, "C-1", "Corner Shop")
	item := newOrderItem(t, db, "GRO-0001", "Basmati Rice 5kg", 1450)
	booking := newBooking(t, db, customer, "ORD-1")
	newLine(t, db, booking, item, 2, 1450)

	dup := &models.OrderBookingLine{
		BookingID: booking.BookingID,
		ItemID:    item.ID,
		OrderQty:  1,
		UnitPrice: decimal.NewFromInt(1450),
		Amount:    decimal.NewFromInt(1450),
	}
	err := db.Create(dup).Error
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UNIQUE constraint failed")
}

func TestRepositoryMergeLineRewritesQtyPriceAmount(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	customer := newOrderCustomer(t, db, "C-1", "Corner Shop")
	item := newOrderItem(t, db, "GRO-0001", "Basmati Rice 5kg", 10)
	booking := newBooking(t, db, customer, "ORD-1")
	line := newLine(t, db, booking, item, 2, 10)

	require.NoError(t, repo.MergeLine(ctx, line.LineID, 5, decimal.NewFromInt(10), decimal.NewFromInt(50)))

	merged, err := repo.FindLineByID(ctx, line.LineID)
	require.NoError(t, err)
	assert.Equal(t, 5, merged.OrderQty)
	assert.True(t, merged.UnitPrice.Equal(decimal.NewFromInt(10)))
	assert.True(t, merged.Amount.Equal(decimal.NewFromInt(50)))
	assert.True(t, merged.Amount.Equal(merged.UnitPrice.Mul(decimal.NewFromInt(int64(merged.OrderQty)))))
}

func TestRepositoryDeleteLineIsIdempotent(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	customer := newOrderCustomer(t, db, "C-1", "Corner Shop")
	item := newOrderItem(t, db, "GRO-0001", "Basmati Rice 5kg", 1450)
	booking := newBooking(t, db, customer, "ORD-1")
	line := newLine(t, db, booking, item, 2, 1450)

	require.NoError(t, repo.DeleteLine(ctx, line.LineID))
	require.NoError(t, repo.DeleteLine(ctx, line.LineID))

	lines, err := repo.LinesForBooking(ctx, booking.BookingID)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestRepositoryLinesForBookingJoinsItemNames(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	customer := newOrderCustomer(t, db, "C-1", "Corner Shop")
	rice := newOrderItem(t, db, "GRO-0001", "Basmati Rice 5kg", 10)
	oil := newOrderItem(t, db, "GRO-0002", "Sunflower Oil 1L", 20)
	booking := newBooking(t, db, customer, "ORD-1")
	newLine(t, db, booking, rice, 2, 10)
	newLine(t, db, booking, oil, 4, 20)

	lines, err := repo.LinesForBooking(ctx, booking.BookingID)
	require.NoError(t, err)
	require.Len(t, lines, 2)

	// Insertion order, each line carrying the item's display name and code.
	assert.Equal(t, "Basmati Rice 5kg", lines[0].ItemName)
	assert.Equal(t, "GRO-0001", lines[0].ItemCode)
	assert.Equal(t, rice.ID, lines[0].ItemID)
	assert.Equal(t, 2, lines[0].OrderQty)
	assert.True(t, lines[0].Amount.Equal(decimal.NewFromInt(20)))

	assert.Equal(t, "Sunflower Oil 1L", lines[1].ItemName)
	assert.Equal(t, "GRO-0002", lines[1].ItemCode)
	assert.True(t, lines[1].UnitPrice.Equal(decimal.NewFromInt(20)))
}

func TestRepositoryListBookingsAggregates(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	customer := newOrderCustomer(t, db, "C-1", "Corner Shop")
	rice := newOrderItem(t, db, "GRO-0001", "Basmati Rice 5kg", 10)
	oil := newOrderItem(t, db, "GRO-0002", "Sunflower Oil 1L", 20)

	full := newBooking(t, db, customer, "ORD-1")
	newLine(t, db, full, rice, 2, 10)
	newLine(t, db, full, oil, 4, 20)

	// A header with no lines still shows up, counting zero.
	empty := newBooking(t, db, customer, "ORD-2")

	summaries, err := repo.ListBookings(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	// Newest booking first.
	assert.Equal(t, empty.BookingID, summaries[0].BookingID)
	assert.Equal(t, 0, summaries[0].ItemCount)
	assert.True(t, summaries[0].TotalAmount.IsZero())

	assert.Equal(t, full.BookingID, summaries[1].BookingID)
	assert.Equal(t, "Corner Shop", summaries[1].CustomerName)
	assert.Equal(t, 2, summaries[1].ItemCount)
	assert.True(t, summaries[1].TotalAmount.Equal(decimal.NewFromInt(100)))
}

func TestRepositoryListBookingsForCustomer(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	first := newOrderCustomer(t, db, "C-1", "Corner Shop")
	second := newOrderCustomer(t, db, "C-2", "Madina Traders")
	rice := newOrderItem(t, db, "GRO-0001", "Basmati Rice 5kg", 10)

	mine := newBooking(t, db, first, "ORD-1")
	newLine(t, db, mine, rice, 1, 10)
	newBooking(t, db, second, "ORD-2")

	summaries, err := repo.ListBookingsForCustomer(ctx, first.ID)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, mine.BookingID, summaries[0].BookingID)
	assert.Equal(t, first.ID, summaries[0].CustomerID)
}
