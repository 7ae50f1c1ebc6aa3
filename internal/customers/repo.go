package customers

import (
	"context"
	"time"

	"github.com/fieldsalesapp/fieldsales-backend/internal/repo"
	"github.com/fieldsalesapp/fieldsales-backend/pkg/db/models"
	"github.com/fieldsalesapp/fieldsales-backend/pkg/enums"
	"gorm.io/gorm"
)

// Repository is the persistence surface for customers.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, customer *models.Customer) error
	FindByID(ctx context.Context, id int64) (*models.Customer, error)
	List(ctx context.Context) ([]models.Customer, error)
	Search(ctx context.Context, query string) ([]models.Customer, error)
	MarkVisited(ctx context.Context, id int64, status enums.VisitStatus, lastSeen time.Time) error
	SetLocation(ctx context.Context, id int64, latitude, longitude float64) error
	Delete(ctx context.Context, id int64) error
	ResetAllVisits(ctx context.Context) (int64, error)
}

type repository struct {
	base repo.Base
}

// NewRepository builds a customers repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{base: repo.NewBase(db)}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{base: r.base.Scoped(tx)}
}

func (r *repository) Create(ctx context.Context, customer *models.Customer) error {
	return r.base.DB(ctx).Create(customer).Error
}

func (r *repository) FindByID(ctx context.Context, id int64) (*models.Customer, error) {
	var customer models.Customer
	err := r.base.DB(ctx).
		Where("id = ?", id).
		First(&customer).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// List returns all customers, most recently created first.
func (r *repository) List(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	err := r.base.DB(ctx).
		Order("id DESC").
		Find(&customers).Error
	if err != nil {
		return nil, err
	}
	return customers, nil
}

// Search matches the query case-insensitively against customer names.
func (r *repository) Search(ctx context.Context, query string) ([]models.Customer, error) {
	var customers []models.Customer
	err := r.base.DB(ctx).
		Where("name LIKE ? COLLATE NOCASE", "%"+query+"%").
		Order("id DESC").
		Find(&customers).Error
	if err != nil {
		return nil, err
	}
	return customers, nil
}

// MarkVisited updates the visited flag and last_seen timestamp in one
// statement; a visit toggle is a single logical transition.
func (r *repository) MarkVisited(ctx context.Context, id int64, status enums.VisitStatus, lastSeen time.Time) error {
	return r.base.DB(ctx).
		Model(&models.Customer{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"visited":   status,
			"last_seen": lastSeen,
		}).Error
}

// SetLocation writes both coordinates in one statement. There is no operation
// that sets only one of them.
func (r *repository) SetLocation(ctx context.Context, id int64, latitude, longitude float64) error {
	return r.base.DB(ctx).
		Model(&models.Customer{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"latitude":  latitude,
			"longitude": longitude,
		}).Error
}

// Delete removes a customer row. Deleting a missing id is a no-op.
func (r *repository) Delete(ctx context.Context, id int64) error {
	return r.base.DB(ctx).
		Where("id = ?", id).
		Delete(&models.Customer{}).Error
}

// ResetAllVisits flips every customer back to Unvisited and reports how many
// rows changed.
func (r *repository) ResetAllVisits(ctx context.Context) (int64, error) {
	result := r.base.DB(ctx).
		Model(&models.Customer{}).
		Where("visited = ?", enums.VisitStatusVisited).
		Update("visited", enums.VisitStatusUnvisited)
	return result.RowsAffected, result.Error
}
