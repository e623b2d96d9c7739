package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

// EnvPrefix namespaces every environment variable the service reads.
const EnvPrefix = "MARTX"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App      AppConfig
	Catalog  CatalogConfig
	Redis    RedisConfig
	Archive  ArchiveConfig
	Checkout CheckoutConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if _, err := cfg.Checkout.Surcharge(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"MARTX_APP_ENV" default:"dev"`
	Port         string `envconfig:"MARTX_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"MARTX_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"MARTX_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// CatalogConfig points at the upstream products API.
type CatalogConfig struct {
	BaseURL      string        `envconfig:"MARTX_CATALOG_BASE_URL" default:"https://fakestoreapi.com"`
	Timeout      time.Duration `envconfig:"MARTX_CATALOG_TIMEOUT" default:"10s"`
	DemoFallback bool          `envconfig:"MARTX_CATALOG_DEMO_FALLBACK" default:"true"`
}

type RedisConfig struct {
	URL          string        `envconfig:"MARTX_REDIS_URL"`
	Address      string        `envconfig:"MARTX_REDIS_ADDR" default:"localhost:6379"`
	Password     string        `envconfig:"MARTX_REDIS_PASSWORD"`
	DB           int           `envconfig:"MARTX_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"MARTX_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"MARTX_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"MARTX_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"MARTX_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"MARTX_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// ArchiveConfig controls the local order archive file.
type ArchiveConfig struct {
	Path        string `envconfig:"MARTX_ARCHIVE_PATH" default:"martx.db"`
	AutoMigrate bool   `envconfig:"MARTX_ARCHIVE_AUTO_MIGRATE" default:"true"`
}

type CheckoutConfig struct {
	ShippingSurcharge string `envconfig:"MARTX_SHIPPING_SURCHARGE" default:"9.99"`
}

// Surcharge parses the configured flat shipping fee.
func (c CheckoutConfig) Surcharge() (decimal.Decimal, error) {
	value, err := decimal.NewFromString(strings.TrimSpace(c.ShippingSurcharge))
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing shipping surcharge %q: %w", c.ShippingSurcharge, err)
	}
	if value.IsNegative() {
		return decimal.Zero, fmt.Errorf("shipping surcharge must not be negative, got %s", value)
	}
	return value, nil
}
