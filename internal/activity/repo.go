package activity

import (
	"context"

	"github.com/fieldsalesapp/fieldsales-backend/internal/repo"
	"github.com/fieldsalesapp/fieldsales-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository is the persistence surface for the recent activity feed.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, activity *models.RecentActivity) error
	List(ctx context.Context, limit int) ([]models.RecentActivity, error)
}

type repository struct {
	base repo.Base
}

// NewRepository builds an activity repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{base: repo.NewBase(db)}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{base: r.base.Scoped(tx)}
}

func (r *repository) Create(ctx context.Context, activity *models.RecentActivity) error {
	return r.base.DB(ctx).Create(activity).Error
}

// List returns the newest activity entries first. A limit of zero or less
// returns the whole feed.
func (r *repository) List(ctx context.Context, limit int) ([]models.RecentActivity, error) {
	var entries []models.RecentActivity
	query := r.base.DB(ctx).Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
