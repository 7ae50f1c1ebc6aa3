package reports

import (
	"context"
	"time"

	pkgerrors "github.com/fieldsalesapp/fieldsales-backend/pkg/errors"
	"github.com/fieldsalesapp/fieldsales-backend/pkg/timeutil"
	"github.com/shopspring/decimal"
)

// Service exposes the dashboard sales aggregates.
type Service interface {
	TodaysSales(ctx context.Context) (decimal.Decimal, error)
	LastMonthSales(ctx context.Context) (decimal.Decimal, error)
	SalesBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

// NewService builds a reports service.
func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

// TodaysSales totals all booking line amounts for bookings dated today.
func (s *service) TodaysSales(ctx context.Context) (decimal.Decimal, error) {
	from, to := timeutil.DayRange(s.now())
	return s.SalesBetween(ctx, from, to)
}

// LastMonthSales totals all booking line amounts for bookings dated in the
// previous calendar month.
func (s *service) LastMonthSales(ctx context.Context) (decimal.Decimal, error) {
	from, to := timeutil.PreviousMonthRange(s.now())
	return s.SalesBetween(ctx, from, to)
}

func (s *service) SalesBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	if !to.After(from) {
		return decimal.Zero, pkgerrors.New(pkgerrors.CodeValidation, "report range end must be after start")
	}
	total, err := s.repo.SumSalesBetween(ctx, from, to)
	if err != nil {
		return decimal.Zero, pkgerrors.Wrap(pkgerrors.CodeStorage, err, "compute sales total")
	}
	return total, nil
}
