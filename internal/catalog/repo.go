// Package catalog provides read access to the sellable item list. The catalog
// is seeded externally; nothing in the app mutates it.
package catalog

import (
	"context"

	"github.com/fieldsalesapp/fieldsales-backend/internal/repo"
	"github.com/fieldsalesapp/fieldsales-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository is the read-only persistence surface for catalog items.
type Repository interface {
	List(ctx context.Context) ([]models.Item, error)
	FindByID(ctx context.Context, id int64) (*models.Item, error)
}

type repository struct {
	base repo.Base
}

// NewRepository builds a catalog repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{base: repo.NewBase(db)}
}

func (r *repository) List(ctx context.Context) ([]models.Item, error) {
	var items []models.Item
	err := r.base.DB(ctx).
		Order("name ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) FindByID(ctx context.Context, id int64) (*models.Item, error) {
	var item models.Item
	err := r.base.DB(ctx).
		Where("id = ?", id).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}
