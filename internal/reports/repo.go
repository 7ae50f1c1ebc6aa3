package reports

import (
	"context"
	"time"

	"github.com/fieldsalesapp/fieldsales-backend/internal/repo"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Repository computes sales aggregates over booking lines.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	SumSalesBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
}

type repository struct {
	base repo.Base
}

// NewRepository builds a reports repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{base: repo.NewBase(db)}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{base: r.base.Scoped(tx)}
}

// SumSalesBetween totals line amounts for bookings dated in the half-open
// interval [from, to). Periods with no bookings total to zero.
func (r *repository) SumSalesBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.base.DB(ctx).
		Raw(`
SELECT COALESCE(SUM(l.amount), 0) AS total
FROM order_booking_lines l
JOIN order_bookings b ON b.booking_id = l.booking_id
WHERE b.order_date >= ? AND b.order_date < ?`, from, to).
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, err
	}
	return total, nil
}
