package cron

import (
	"context"
	"fmt"
	"time"

	"github.com/fieldsalesapp/fieldsales-backend/pkg/logger"
	"github.com/fieldsalesapp/fieldsales-backend/pkg/metrics"
	robfig "github.com/robfig/cron/v3"
)

const defaultSchedule = "0 0 * * *"

// SchedulerParams configure the job scheduler.
type SchedulerParams struct {
	Logger   *logger.Logger
	Registry *Registry
	Metrics  *metrics.JobMetrics
	Schedule string
}

// Scheduler executes registered jobs on a cron schedule.
type Scheduler struct {
	logg     *logger.Logger
	registry *Registry
	metrics  *metrics.JobMetrics
	schedule string
	cron     *robfig.Cron
}

// NewScheduler builds a scheduler. The schedule uses standard five-field
// cron syntax and defaults to midnight daily.
func NewScheduler(params SchedulerParams) (*Scheduler, error) {
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	registry := params.Registry
	if registry == nil {
		registry = NewRegistry()
	}
	schedule := params.Schedule
	if schedule == "" {
		schedule = defaultSchedule
	}
	return &Scheduler{
		logg:     params.Logger,
		registry: registry,
		metrics:  params.Metrics,
		schedule: schedule,
		cron:     robfig.New(),
	}, nil
}

// Run starts the scheduler and blocks until the context is canceled.
func (s *Scheduler) Run(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if _, err := s.cron.AddFunc(s.schedule, func() { s.runCycle(ctx) }); err != nil {
		return fmt.Errorf("register schedule %q: %w", s.schedule, err)
	}
	s.cron.Start()
	s.logg.Info(ctx, "job scheduler started")

	<-ctx.Done()
	s.logg.Info(ctx, "job scheduler context canceled")
	stopped := s.cron.Stop()
	<-stopped.Done()
	return ctx.Err()
}

// RunOnce executes every registered job immediately. Used by the worker's
// run-now flag and by tests.
func (s *Scheduler) RunOnce(ctx context.Context) {
	s.runCycle(ctx)
}

func (s *Scheduler) runCycle(ctx context.Context) {
	s.logg.Info(ctx, "scheduled run starting")
	for _, job := range s.registry.Jobs() {
		s.runJob(ctx, job)
	}
	s.logg.Info(ctx, "scheduled run complete")
}

func (s *Scheduler) runJob(ctx context.Context, job Job) {
	jobCtx := s.logg.WithField(ctx, "job", job.Name())
	jobCtx = s.logg.WithField(jobCtx, "event", "cron.job")
	s.logg.Info(jobCtx, "job start")
	start := time.Now()
	err := job.Run(jobCtx)
	duration := time.Since(start)
	s.metrics.ObserveDuration(job.Name(), duration)
	jobCtx = s.logg.WithField(jobCtx, "duration_ms", duration.Milliseconds())
	if err != nil {
		s.logg.Error(jobCtx, "job failed", err)
		s.metrics.IncFailure(job.Name())
		return
	}
	s.logg.Info(jobCtx, "job completed")
	s.metrics.IncSuccess(job.Name())
}
