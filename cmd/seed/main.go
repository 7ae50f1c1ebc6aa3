package main

import (
	"context"
	"flag"
	"os"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"go.uber.org/multierr"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/fieldsalesapp/fieldsales-backend/pkg/config"
	"github.com/fieldsalesapp/fieldsales-backend/pkg/db"
	"github.com/fieldsalesapp/fieldsales-backend/pkg/db/models"
	"github.com/fieldsalesapp/fieldsales-backend/pkg/logger"
	"github.com/fieldsalesapp/fieldsales-backend/pkg/migrate"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "seed"})

	_ = godotenv.Load()

	withCustomers := flag.Bool("customers", false, "also seed demo customers")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "seed",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	ctx := logg.WithField(context.Background(), "env", cfg.App.Env)

	dbClient, err := db.New(context.Background(), cfg.Store, logg)
	if err != nil {
		logg.Error(ctx, "failed to open store", err)
		os.Exit(1)
	}
	defer dbClient.Close()

	sqlDB, err := dbClient.DB().DB()
	if err != nil {
		logg.Error(ctx, "failed to unwrap sql database", err)
		os.Exit(1)
	}
	if err := migrate.Up(ctx, sqlDB); err != nil {
		logg.Error(ctx, "failed to run migrations", err)
		os.Exit(1)
	}

	if err := seedCatalog(ctx, dbClient.DB()); err != nil {
		logg.Error(ctx, "catalog seed failed", err)
		os.Exit(1)
	}
	logg.Info(ctx, "catalog seeded")

	if *withCustomers {
		if err := seedCustomers(ctx, dbClient.DB()); err != nil {
			logg.Error(ctx, "customer seed failed", err)
			os.Exit(1)
		}
		logg.Info(ctx, "demo customers seeded")
	}
}

func seedCatalog(ctx context.Context, gdb *gorm.DB) error {
	items := []models.Item{
		{Name: "Basmati Rice 5kg", Code: "GRO-0001", RetailPrice: decimal.NewFromInt(1450)},
		{Name: "Sunflower Oil 1L", Code: "GRO-0002", RetailPrice: decimal.NewFromInt(620)},
		{Name: "Black Tea 500g", Code: "GRO-0003", RetailPrice: decimal.NewFromInt(540), DiscountAmount: decimal.NewFromInt(40)},
		{Name: "Washing Powder 1kg", Code: "HOM-0001", RetailPrice: decimal.NewFromInt(380)},
		{Name: "Dish Soap 750ml", Code: "HOM-0002", RetailPrice: decimal.NewFromInt(210)},
		{Name: "Toothpaste 150g", Code: "PER-0001", RetailPrice: decimal.NewFromInt(260), DiscountAmount: decimal.NewFromInt(20)},
		{Name: "Shampoo 400ml", Code: "PER-0002", RetailPrice: decimal.NewFromInt(490)},
		{Name: "Biscuits Family Pack", Code: "SNK-0001", RetailPrice: decimal.NewFromInt(150)},
	}

	var errs []error
	for _, item := range items {
		err := gdb.WithContext(ctx).
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "item_code"}},
				DoNothing: true,
			}).
			Create(&item).Error
		if err != nil {
			errs = append(errs, err)
		}
	}
	return multierr.Combine(errs...)
}

func seedCustomers(ctx context.Context, gdb *gorm.DB) error {
	phone := func(v string) *string { return &v }
	customers := []models.Customer{
		{Code: "C-1001", Name: "Al Noor General Store", Phone: phone("+92-300-1234567")},
		{Code: "C-1002", Name: "Madina Traders", Phone: phone("+92-301-7654321")},
		{Code: "C-1003", Name: "City Mart"},
	}

	var errs []error
	for _, customer := range customers {
		err := gdb.WithContext(ctx).
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "customer_code"}},
				DoNothing: true,
			}).
			Create(&customer).Error
		if err != nil {
			errs = append(errs, err)
		}
	}
	return multierr.Combine(errs...)
}
