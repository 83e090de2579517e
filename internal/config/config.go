package config

import (
	"fmt"
	"strings"

	pkgconfig "github.com/nati-tewolde/online-store/pkg/config"
	"github.com/nati-tewolde/online-store/pkg/validator"
)

// Config holds all configuration for the store.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"warn" validate:"oneof=debug info warn error"`

	// Catalog file, created empty when missing.
	CatalogPath string `env:"STORE_CATALOG_PATH" envDefault:"products.csv" validate:"required"`

	// Prefix printed before every amount.
	CurrencySymbol string `env:"STORE_CURRENCY_SYMBOL" envDefault:"$" validate:"required,max=3"`

	// Log a summary of the in-process counters on exit.
	MetricsSummary bool `env:"STORE_METRICS_SUMMARY" envDefault:"false"`

	// Sample every operation in-process so log records carry trace IDs.
	Tracing bool `env:"STORE_TRACING" envDefault:"false"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	return LoadFrom(nil)
}

// LoadFrom reads configuration from environ, falling back to the process
// environment when environ is nil.
func LoadFrom(environ map[string]string) (*Config, error) {
	cfg := &Config{}
	if err := pkgconfig.LoadFrom(cfg, environ); err != nil {
		return nil, fmt.Errorf("load store config: %w", err)
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate checks configuration invariants.
func (c *Config) validate() error {
	if err := validator.Validate(c); err != nil {
		return fmt.Errorf("invalid store config: %w", err)
	}
	return nil
}
