package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/fieldsalesapp/fieldsales-backend/internal/cron"
	"github.com/fieldsalesapp/fieldsales-backend/internal/customers"
	"github.com/fieldsalesapp/fieldsales-backend/pkg/config"
	"github.com/fieldsalesapp/fieldsales-backend/pkg/db"
	"github.com/fieldsalesapp/fieldsales-backend/pkg/logger"
	"github.com/fieldsalesapp/fieldsales-backend/pkg/metrics"
	"github.com/fieldsalesapp/fieldsales-backend/pkg/migrate"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "worker"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "worker",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.Store, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to open store", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing store", err)
		}
	}()

	if cfg.Store.AutoMigrate {
		sqlDB, err := dbClient.DB().DB()
		if err != nil {
			logg.Error(context.Background(), "failed to unwrap sql database", err)
			os.Exit(1)
		}
		if err := migrate.Up(context.Background(), sqlDB); err != nil {
			logg.Error(context.Background(), "failed to run migrations", err)
			os.Exit(1)
		}
	}

	customersRepo := customers.NewRepository(dbClient.DB())
	customersService, err := customers.NewService(customersRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create customers service", err)
		os.Exit(1)
	}

	registry := cron.NewRegistry()
	if cfg.Visits.ResetEnabled {
		job, err := cron.NewVisitResetJob(cron.VisitResetJobParams{
			Logger:    logg,
			Customers: customersService,
		})
		if err != nil {
			logg.Error(context.Background(), "failed to create visit reset job", err)
			os.Exit(1)
		}
		registry.Register(job)
	}

	jobMetrics := metrics.NewJobMetrics(prometheus.DefaultRegisterer)
	scheduler, err := cron.NewScheduler(cron.SchedulerParams{
		Logger:   logg,
		Registry: registry,
		Metrics:  jobMetrics,
		Schedule: cfg.Visits.ResetSchedule,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create scheduler", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logg.WithField(ctx, "env", cfg.App.Env)

	metricsServer := &http.Server{
		Addr:              cfg.Metrics.ListenAddr,
		Handler:           promhttp.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		logg.Info(logg.WithField(ctx, "addr", cfg.Metrics.ListenAddr), "metrics listener starting")
		if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(ctx, "metrics listener stopped unexpectedly", err)
		}
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = metricsServer.Shutdown(shutdownCtx)
	}()

	logg.Info(ctx, "starting worker")
	if err := scheduler.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logg.Error(ctx, "worker stopped unexpectedly", err)
		os.Exit(1)
	}

	logg.Info(ctx, "worker shutting down gracefully")
}
