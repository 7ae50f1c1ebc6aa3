package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "FIELDSALES"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvAppEnv    = "FIELDSALES_APP_ENV"
	EnvStorePath = "FIELDSALES_STORE_PATH"
)

type Config struct {
	App     AppConfig
	Store   StoreConfig
	Visits  VisitsConfig
	Metrics MetricsConfig
	Routing RoutingConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"FIELDSALES_APP_ENV" required:"true"`
	LogLevel     string `envconfig:"FIELDSALES_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"FIELDSALES_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// StoreConfig points at the embedded sqlite file backing all repositories.
type StoreConfig struct {
	Path        string        `envconfig:"FIELDSALES_STORE_PATH" required:"true"`
	BusyTimeout time.Duration `envconfig:"FIELDSALES_STORE_BUSY_TIMEOUT" default:"5s"`
	AutoMigrate bool          `envconfig:"FIELDSALES_STORE_AUTO_MIGRATE" default:"false"`
}

type VisitsConfig struct {
	ResetEnabled  bool   `envconfig:"FIELDSALES_VISITS_RESET_ENABLED" default:"true"`
	ResetSchedule string `envconfig:"FIELDSALES_VISITS_RESET_SCHEDULE" default:"0 0 * * *"`
}

type MetricsConfig struct {
	ListenAddr string `envconfig:"FIELDSALES_METRICS_LISTEN_ADDR" default:":9190"`
}

type RoutingConfig struct {
	APIKey  string        `envconfig:"FIELDSALES_ROUTING_API_KEY"`
	BaseURL string        `envconfig:"FIELDSALES_ROUTING_BASE_URL"`
	Timeout time.Duration `envconfig:"FIELDSALES_ROUTING_TIMEOUT" default:"10s"`
}
