package customers

import (
	"context"
	"fmt"
	"time"

	pkgdb "github.com/fieldsalesapp/fieldsales-backend/pkg/db"
	"github.com/fieldsalesapp/fieldsales-backend/pkg/db/models"
	"github.com/fieldsalesapp/fieldsales-backend/pkg/enums"
	pkgerrors "github.com/fieldsalesapp/fieldsales-backend/pkg/errors"
	"github.com/fieldsalesapp/fieldsales-backend/pkg/validate"
)

// Service exposes the customer operations consumed by the UI.
type Service interface {
	Add(ctx context.Context, input AddCustomerInput) (*models.Customer, error)
	Get(ctx context.Context, id int64) (*models.Customer, error)
	List(ctx context.Context) ([]models.Customer, error)
	Search(ctx context.Context, query string) ([]models.Customer, error)
	SetVisited(ctx context.Context, id int64, status enums.VisitStatus) error
	ToggleVisited(ctx context.Context, id int64) (enums.VisitStatus, error)
	UpdateLocation(ctx context.Context, id int64, latitude, longitude float64) error
	Delete(ctx context.Context, id int64) error
	ResetDailyVisits(ctx context.Context) (int64, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

// NewService builds a customer service backed by the provided repository.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("customers repository required")
	}
	return &service{repo: repo, now: time.Now}, nil
}

// AddCustomerInput declares the required-field schema for a new customer.
// Coordinates are optional but must be supplied together.
type AddCustomerInput struct {
	Code      string   `json:"customer_code" validate:"required"`
	Name      string   `json:"name" validate:"required"`
	Phone     *string  `json:"phone"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

func (s *service) Add(ctx context.Context, input AddCustomerInput) (*models.Customer, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}
	if (input.Latitude == nil) != (input.Longitude == nil) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "latitude and longitude must be supplied together")
	}

	customer := &models.Customer{
		Code:      input.Code,
		Name:      input.Name,
		Phone:     input.Phone,
		Visited:   enums.VisitStatusUnvisited,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
	}
	if err := s.repo.Create(ctx, customer); err != nil {
		if pkgdb.IsUniqueViolation(err, "customer_code") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "customer code already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeStorage, err, "create customer")
	}
	return customer, nil
}

func (s *service) Get(ctx context.Context, id int64) (*models.Customer, error) {
	customer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if pkgdb.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "customer not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeStorage, err, "load customer")
	}
	return customer, nil
}

func (s *service) List(ctx context.Context) ([]models.Customer, error) {
	customers, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeStorage, err, "list customers")
	}
	return customers, nil
}

// Search trims the query; an empty query is equivalent to List.
func (s *service) Search(ctx context.Context, query string) ([]models.Customer, error) {
	if query == "" {
		return s.List(ctx)
	}
	customers, err := s.repo.Search(ctx, query)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeStorage, err, "search customers")
	}
	return customers, nil
}

// SetVisited records the given status and stamps last_seen in the same
// logical transition.
func (s *service) SetVisited(ctx context.Context, id int64, status enums.VisitStatus) error {
	if !status.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid visit status")
	}
	if err := s.repo.MarkVisited(ctx, id, status, s.now()); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeStorage, err, "update visit status")
	}
	return nil
}

// ToggleVisited flips the customer's visited flag and returns the new status.
func (s *service) ToggleVisited(ctx context.Context, id int64) (enums.VisitStatus, error) {
	customer, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	next := customer.Visited.Toggle()
	if err := s.SetVisited(ctx, id, next); err != nil {
		return "", err
	}
	return next, nil
}

// UpdateLocation sets both coordinates atomically.
func (s *service) UpdateLocation(ctx context.Context, id int64, latitude, longitude float64) error {
	if latitude < -90 || latitude > 90 || longitude < -180 || longitude > 180 {
		return pkgerrors.New(pkgerrors.CodeValidation, "coordinates out of range")
	}
	if err := s.repo.SetLocation(ctx, id, latitude, longitude); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeStorage, err, "update location")
	}
	return nil
}

// Delete removes the customer; deleting an unknown id succeeds.
func (s *service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeStorage, err, "delete customer")
	}
	return nil
}

// ResetDailyVisits returns every customer to Unvisited; scheduled daily.
func (s *service) ResetDailyVisits(ctx context.Context) (int64, error) {
	reset, err := s.repo.ResetAllVisits(ctx)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeStorage, err, "reset visit statuses")
	}
	return reset, nil
}
