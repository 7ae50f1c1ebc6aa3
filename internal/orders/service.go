package orders

import (
	"context"
	"fmt"
	"strings"
	"time"

	pkgdb "github.com/fieldsalesapp/fieldsales-backend/pkg/db"
	"github.com/fieldsalesapp/fieldsales-backend/pkg/db/models"
	pkgerrors "github.com/fieldsalesapp/fieldsales-backend/pkg/errors"
	"github.com/fieldsalesapp/fieldsales-backend/pkg/logger"
	"github.com/fieldsalesapp/fieldsales-backend/pkg/validate"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Service exposes booking persistence and the order submission workflow.
type Service interface {
	CreateBooking(ctx context.Context, customerID, createdByID int64) (*models.OrderBooking, error)
	AddLine(ctx context.Context, bookingID int64, line CartLine) (*models.OrderBookingLine, error)
	UpdateLineQuantity(ctx context.Context, lineID int64, newQty int) error
	DeleteLine(ctx context.Context, lineID int64) error
	LinesForBooking(ctx context.Context, bookingID int64) ([]LineDetail, error)
	ListBookings(ctx context.Context) ([]BookingSummary, error)
	ListBookingsForCustomer(ctx context.Context, customerID int64) ([]BookingSummary, error)
	SubmitOrder(ctx context.Context, input SubmitOrderInput) (*SubmitOrderResult, error)
	AppendToBooking(ctx context.Context, bookingID int64, lines []CartLine) ([]models.OrderBookingLine, error)
}

// SubmitOrderResult reports what the submission workflow persisted. Activity
// is nil when the feed write failed; the booking and lines are still durable.
type SubmitOrderResult struct {
	Booking  *models.OrderBooking
	Lines    []models.OrderBookingLine
	Activity *models.RecentActivity
}

type service struct {
	repo      Repository
	customers customerLoader
	catalog   itemLoader
	activity  activityRecorder
	logg      *logger.Logger
	now       func() time.Time
}

// NewService builds an orders service backed by the provided stack.
func NewService(repo Repository, customers customerLoader, catalog itemLoader, activity activityRecorder, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	if customers == nil {
		return nil, fmt.Errorf("customer loader required")
	}
	if catalog == nil {
		return nil, fmt.Errorf("catalog loader required")
	}
	if activity == nil {
		return nil, fmt.Errorf("activity recorder required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{
		repo:      repo,
		customers: customers,
		catalog:   catalog,
		activity:  activity,
		logg:      logg,
		now:       time.Now,
	}, nil
}

// CreateBooking opens a new booking header for the customer. The generated
// order number carries a millisecond timestamp plus a random suffix so
// concurrent creations never collide.
func (s *service) CreateBooking(ctx context.Context, customerID, createdByID int64) (*models.OrderBooking, error) {
	if customerID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "customer id is required")
	}
	if _, err := s.customers.Get(ctx, customerID); err != nil {
		return nil, err
	}

	now := s.now()
	booking := &models.OrderBooking{
		OrderNo:     newOrderNo(now),
		CustomerID:  customerID,
		OrderDate:   now,
		CreatedByID: createdByID,
		CreatedDate: now,
	}
	if err := s.repo.CreateBooking(ctx, booking); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeStorage, err, "create booking")
	}
	return booking, nil
}

// AddLine inserts a cart line into the booking. When a line for the same item
// already exists the quantities are merged into that line: the new quantity is
// the sum, and both the snapshot price and the amount are recomputed from the
// newly supplied unit price.
func (s *service) AddLine(ctx context.Context, bookingID int64, line CartLine) (*models.OrderBookingLine, error) {
	if err := validate.Struct(line); err != nil {
		return nil, err
	}
	if line.UnitPrice.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unit price must not be negative")
	}
	if _, err := s.repo.FindBookingByID(ctx, bookingID); err != nil {
		if pkgdb.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "booking not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeStorage, err, "load booking")
	}
	if _, err := s.catalog.FindByID(ctx, line.ItemID); err != nil {
		if pkgdb.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "catalog item not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeStorage, err, "load catalog item")
	}

	existing, err := s.repo.FindLineByBookingAndItem(ctx, bookingID, line.ItemID)
	switch {
	case err == nil:
		merged := existing.OrderQty + line.Qty
		amount := line.UnitPrice.Mul(decimal.NewFromInt(int64(merged)))
		if err := s.repo.MergeLine(ctx, existing.LineID, merged, line.UnitPrice, amount); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeStorage, err, "merge booking line")
		}
		existing.OrderQty = merged
		existing.UnitPrice = line.UnitPrice
		existing.Amount = amount
		return existing, nil

	case pkgdb.IsNotFound(err):
		created := &models.OrderBookingLine{
			BookingID: bookingID,
			ItemID:    line.ItemID,
			OrderQty:  line.Qty,
			UnitPrice: line.UnitPrice,
			Amount:    line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Qty))),
		}
		if err := s.repo.CreateLine(ctx, created); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeStorage, err, "create booking line")
		}
		return created, nil

	default:
		return nil, pkgerrors.Wrap(pkgerrors.CodeStorage, err, "look up booking line")
	}
}

// UpdateLineQuantity recomputes the amount from the stored snapshot price.
// Quantities below one are rejected; a decrement at qty=1 must be a no-op at
// the caller, never a delete.
func (s *service) UpdateLineQuantity(ctx context.Context, lineID int64, newQty int) error {
	if newQty < 1 {
		return pkgerrors.New(pkgerrors.CodeValidation, "quantity must be at least 1")
	}
	line, err := s.repo.FindLineByID(ctx, lineID)
	if err != nil {
		if pkgdb.IsNotFound(err) {
			// Updating a line that no longer exists is a no-op.
			return nil
		}
		return pkgerrors.Wrap(pkgerrors.CodeStorage, err, "load booking line")
	}
	amount := line.UnitPrice.Mul(decimal.NewFromInt(int64(newQty)))
	if err := s.repo.UpdateLineQuantity(ctx, lineID, newQty, amount); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeStorage, err, "update booking line")
	}
	return nil
}

// DeleteLine removes one line; deleting an already-deleted id succeeds.
func (s *service) DeleteLine(ctx context.Context, lineID int64) error {
	if err := s.repo.DeleteLine(ctx, lineID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeStorage, err, "delete booking line")
	}
	return nil
}

func (s *service) LinesForBooking(ctx context.Context, bookingID int64) ([]LineDetail, error) {
	lines, err := s.repo.LinesForBooking(ctx, bookingID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeStorage, err, "list booking lines")
	}
	return lines, nil
}

func (s *service) ListBookings(ctx context.Context) ([]BookingSummary, error) {
	summaries, err := s.repo.ListBookings(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeStorage, err, "list bookings")
	}
	return summaries, nil
}

func (s *service) ListBookingsForCustomer(ctx context.Context, customerID int64) ([]BookingSummary, error) {
	summaries, err := s.repo.ListBookingsForCustomer(ctx, customerID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeStorage, err, "list customer bookings")
	}
	return summaries, nil
}

// SubmitOrder runs the checkout workflow: booking header, then one line per
// distinct cart item, then a single recent-activity entry. The three steps
// are sequenced, not wrapped in a transaction; if the activity write fails
// after the lines landed, the order stands and the gap is only cosmetic.
func (s *service) SubmitOrder(ctx context.Context, input SubmitOrderInput) (*SubmitOrderResult, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}
	customer, err := s.customers.Get(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}

	booking, err := s.CreateBooking(ctx, input.CustomerID, input.CreatedByID)
	if err != nil {
		return nil, err
	}
	ctx = s.logg.WithBookingID(ctx, booking.BookingID)

	// The booking is brand new, so no merge lookup is needed; duplicate
	// items within the cart itself are folded up front.
	lines := make([]models.OrderBookingLine, 0, len(input.Lines))
	total := decimal.Zero
	for _, cartLine := range foldCartLines(input.Lines) {
		if _, err := s.catalog.FindByID(ctx, cartLine.ItemID); err != nil {
			if pkgdb.IsNotFound(err) {
				return nil, pkgerrors.New(pkgerrors.CodeNotFound, "catalog item not found")
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodeStorage, err, "load catalog item")
		}
		line := models.OrderBookingLine{
			BookingID: booking.BookingID,
			ItemID:    cartLine.ItemID,
			OrderQty:  cartLine.Qty,
			UnitPrice: cartLine.UnitPrice,
			Amount:    cartLine.UnitPrice.Mul(decimal.NewFromInt(int64(cartLine.Qty))),
		}
		if err := s.repo.CreateLine(ctx, &line); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeStorage, err, "create booking line")
		}
		lines = append(lines, line)
		total = total.Add(line.Amount)
	}

	result := &SubmitOrderResult{Booking: booking, Lines: lines}

	activity := &models.RecentActivity{
		BookingID:    booking.BookingID,
		CustomerName: customer.Name,
		ItemCount:    len(lines),
		TotalAmount:  total,
		ActivityDate: s.now(),
	}
	if err := s.activity.Record(ctx, activity); err != nil {
		// Best effort: the order itself succeeded, so the missing feed
		// entry is not surfaced as a failure.
		s.logg.Warn(ctx, "recent activity write failed after order submission: "+err.Error())
		return result, nil
	}
	result.Activity = activity
	return result, nil
}

// AppendToBooking merges the cart into an existing open booking, line by
// line. No activity entry is written; the feed records each booking once, at
// creation.
func (s *service) AppendToBooking(ctx context.Context, bookingID int64, lines []CartLine) ([]models.OrderBookingLine, error) {
	if len(lines) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order list is empty")
	}
	applied := make([]models.OrderBookingLine, 0, len(lines))
	for _, cartLine := range foldCartLines(lines) {
		line, err := s.AddLine(ctx, bookingID, cartLine)
		if err != nil {
			return nil, err
		}
		applied = append(applied, *line)
	}
	return applied, nil
}

// foldCartLines combines duplicate items within one cart so a new booking
// never trips the per-(booking,item) uniqueness rule. Later duplicates keep
// the most recent unit price, matching the merge rule.
func foldCartLines(lines []CartLine) []CartLine {
	index := map[int64]int{}
	folded := make([]CartLine, 0, len(lines))
	for _, line := range lines {
		if at, ok := index[line.ItemID]; ok {
			folded[at].Qty += line.Qty
			folded[at].UnitPrice = line.UnitPrice
			continue
		}
		index[line.ItemID] = len(folded)
		folded = append(folded, line)
	}
	return folded
}

func newOrderNo(now time.Time) string {
	suffix := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return fmt.Sprintf("ORD-%d-%s", now.UnixMilli(), suffix)
}
