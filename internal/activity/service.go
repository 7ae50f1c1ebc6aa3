package activity

import (
	"context"

	"github.com/fieldsalesapp/fieldsales-backend/pkg/db/models"
	pkgerrors "github.com/fieldsalesapp/fieldsales-backend/pkg/errors"
)

// Service records and lists dashboard activity entries.
type Service interface {
	Record(ctx context.Context, entry *models.RecentActivity) error
	List(ctx context.Context, limit int) ([]models.RecentActivity, error)
}

type service struct {
	repo Repository
}

// NewService builds an activity service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Record(ctx context.Context, entry *models.RecentActivity) error {
	if entry == nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "activity entry is required")
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeStorage, err, "record activity")
	}
	return nil
}

func (s *service) List(ctx context.Context, limit int) ([]models.RecentActivity, error) {
	entries, err := s.repo.List(ctx, limit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeStorage, err, "list activity")
	}
	return entries, nil
}
