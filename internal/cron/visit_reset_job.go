package cron

import (
	"context"
	"fmt"

	"github.com/fieldsalesapp/fieldsales-backend/pkg/logger"
)

type visitResetter interface {
	ResetDailyVisits(ctx context.Context) (int64, error)
}

// VisitResetJobParams configure the daily visit reset.
type VisitResetJobParams struct {
	Logger    *logger.Logger
	Customers visitResetter
}

// NewVisitResetJob builds the job that returns every customer to the
// unvisited state at the start of a new field day.
func NewVisitResetJob(params VisitResetJobParams) (Job, error) {
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	if params.Customers == nil {
		return nil, fmt.Errorf("customers service required")
	}
	return &visitResetJob{
		logg:      params.Logger,
		customers: params.Customers,
	}, nil
}

type visitResetJob struct {
	logg      *logger.Logger
	customers visitResetter
}

func (j *visitResetJob) Name() string { return "visit-reset" }

func (j *visitResetJob) Run(ctx context.Context) error {
	reset, err := j.customers.ResetDailyVisits(ctx)
	if err != nil {
		return fmt.Errorf("reset daily visits: %w", err)
	}
	logCtx := j.logg.WithField(ctx, "count", reset)
	j.logg.Info(logCtx, "visit reset loop complete")
	return nil
}
