package orders

import (
	"context"

	"github.com/fieldsalesapp/fieldsales-backend/pkg/db/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Repository is the persistence surface for bookings and booking lines.
type Repository interface {
	WithTx(tx *gorm.DB) Repository

	CreateBooking(ctx context.Context, booking *models.OrderBooking) error
	FindBookingByID(ctx context.Context, bookingID int64) (*models.OrderBooking, error)

	CreateLine(ctx context.Context, line *models.OrderBookingLine) error
	FindLineByID(ctx context.Context, lineID int64) (*models.OrderBookingLine, error)
	FindLineByBookingAndItem(ctx context.Context, bookingID, itemID int64) (*models.OrderBookingLine, error)
	UpdateLineQuantity(ctx context.Context, lineID int64, qty int, amount decimal.Decimal) error
	MergeLine(ctx context.Context, lineID int64, qty int, unitPrice, amount decimal.Decimal) error
	DeleteLine(ctx context.Context, lineID int64) error
	LinesForBooking(ctx context.Context, bookingID int64) ([]LineDetail, error)

	ListBookings(ctx context.Context) ([]BookingSummary, error)
	ListBookingsForCustomer(ctx context.Context, customerID int64) ([]BookingSummary, error)
}

type customerLoader interface {
	Get(ctx context.Context, id int64) (*models.Customer, error)
}

type itemLoader interface {
	FindByID(ctx context.Context, id int64) (*models.Item, error)
}

type activityRecorder interface {
	Record(ctx context.Context, activity *models.RecentActivity) error
}
