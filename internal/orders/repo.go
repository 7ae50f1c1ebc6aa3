package orders

import (
	"context"

	"github.com/fieldsalesapp/fieldsales-backend/internal/repo"
	"github.com/fieldsalesapp/fieldsales-backend/pkg/db/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type repository struct {
	base repo.Base
}

// NewRepository builds an orders repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{base: repo.NewBase(db)}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{base: r.base.Scoped(tx)}
}

func (r *repository) CreateBooking(ctx context.Context, booking *models.OrderBooking) error {
	return r.base.DB(ctx).Create(booking).Error
}

func (r *repository) FindBookingByID(ctx context.Context, bookingID int64) (*models.OrderBooking, error) {
	var booking models.OrderBooking
	err := r.base.DB(ctx).
		Where("booking_id = ?", bookingID).
		First(&booking).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *repository) CreateLine(ctx context.Context, line *models.OrderBookingLine) error {
	return r.base.DB(ctx).Create(line).Error
}

func (r *repository) FindLineByID(ctx context.Context, lineID int64) (*models.OrderBookingLine, error) {
	var line models.OrderBookingLine
	err := r.base.DB(ctx).
		Where("line_id = ?", lineID).
		First(&line).Error
	if err != nil {
		return nil, err
	}
	return &line, nil
}

func (r *repository) FindLineByBookingAndItem(ctx context.Context, bookingID, itemID int64) (*models.OrderBookingLine, error) {
	var line models.OrderBookingLine
	err := r.base.DB(ctx).
		Where("booking_id = ? AND item_id = ?", bookingID, itemID).
		First(&line).Error
	if err != nil {
		return nil, err
	}
	return &line, nil
}

func (r *repository) UpdateLineQuantity(ctx context.Context, lineID int64, qty int, amount decimal.Decimal) error {
	return r.base.DB(ctx).
		Model(&models.OrderBookingLine{}).
		Where("line_id = ?", lineID).
		Updates(map[string]any{
			"order_qty": qty,
			"amount":    amount,
		}).Error
}

// MergeLine rewrites quantity, snapshot price, and amount together when a
// duplicate (booking, item) add is folded into the existing line.
func (r *repository) MergeLine(ctx context.Context, lineID int64, qty int, unitPrice, amount decimal.Decimal) error {
	return r.base.DB(ctx).
		Model(&models.OrderBookingLine{}).
		Where("line_id = ?", lineID).
		Updates(map[string]any{
			"order_qty":  qty,
			"unit_price": unitPrice,
			"amount":     amount,
		}).Error
}

// DeleteLine removes one line. Deleting an id that no longer exists succeeds.
func (r *repository) DeleteLine(ctx context.Context, lineID int64) error {
	return r.base.DB(ctx).
		Where("line_id = ?", lineID).
		Delete(&models.OrderBookingLine{}).Error
}

// LinesForBooking returns the booking's lines joined with the item name and
// code, so the details screen renders from one query.
func (r *repository) LinesForBooking(ctx context.Context, bookingID int64) ([]LineDetail, error) {
	var lines []LineDetail
	err := r.base.DB(ctx).
		Raw(`
SELECT l.line_id,
       l.booking_id,
       l.item_id,
       i.item_code,
       i.name AS item_name,
       l.order_qty,
       l.unit_price,
       l.amount
FROM order_booking_lines l
JOIN items i ON i.id = l.item_id
WHERE l.booking_id = ?
ORDER BY l.line_id ASC`, bookingID).
		Scan(&lines).Error
	if err != nil {
		return nil, err
	}
	return lines, nil
}

const bookingSummarySQL = `
SELECT b.booking_id,
       b.order_no,
       b.customer_id,
       c.name AS customer_name,
       b.order_date,
       COUNT(l.line_id) AS item_count,
       COALESCE(SUM(l.amount), 0) AS total_amount
FROM order_bookings b
JOIN customers c ON c.id = b.customer_id
LEFT JOIN order_booking_lines l ON l.booking_id = b.booking_id
`

func (r *repository) ListBookings(ctx context.Context) ([]BookingSummary, error) {
	var summaries []BookingSummary
	err := r.base.DB(ctx).
		Raw(bookingSummarySQL + `
GROUP BY b.booking_id
ORDER BY b.booking_id DESC`).
		Scan(&summaries).Error
	if err != nil {
		return nil, err
	}
	return summaries, nil
}

func (r *repository) ListBookingsForCustomer(ctx context.Context, customerID int64) ([]BookingSummary, error) {
	var summaries []BookingSummary
	err := r.base.DB(ctx).
		Raw(bookingSummarySQL+`
WHERE b.customer_id = ?
GROUP BY b.booking_id
ORDER BY b.booking_id DESC`, customerID).
		Scan(&summaries).Error
	if err != nil {
		return nil, err
	}
	return summaries, nil
}
