// Package config loads service configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"

	"supplierintake/internal/core/numeric"
	"supplierintake/internal/domain/delivery"
)

var currencyCode = regexp.MustCompile(`^[A-Z]{3}$`)

// Config holds application configuration loaded from the environment.
type Config struct {
	AppEnv          string
	Port            string
	LogLevel        string
	ShutdownTimeout time.Duration

	LocalCurrency       string
	ForeignCurrency     string
	DefaultVATRate      float64
	DefaultExchangeRate float64

	UploadMaxBytes   int64
	MetricsNamespace string
}

// Load reads configuration from environment variables and an optional .env file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", func(s string) string { return s }), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := &Config{
		AppEnv:              valueOrDefault(k.String("APP_ENV"), "development"),
		Port:                valueOrDefault(k.String("APP_PORT"), "8080"),
		LogLevel:            valueOrDefault(k.String("LOG_LEVEL"), "info"),
		ShutdownTimeout:     parseDuration(k.String("SHUTDOWN_TIMEOUT"), "30s"),
		LocalCurrency:       strings.ToUpper(valueOrDefault(k.String("LOCAL_CURRENCY"), delivery.CodePLN)),
		ForeignCurrency:     strings.ToUpper(valueOrDefault(k.String("FOREIGN_CURRENCY"), delivery.CodeEUR)),
		DefaultVATRate:      parseFloat(k.String("DEFAULT_VAT_RATE"), 23),
		DefaultExchangeRate: parseFloat(k.String("DEFAULT_EXCHANGE_RATE"), 1),
		UploadMaxBytes:      parseInt(k.String("UPLOAD_MAX_BYTES"), 10<<20),
		MetricsNamespace:    valueOrDefault(k.String("METRICS_NAMESPACE"), "supplierintake"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if !currencyCode.MatchString(c.LocalCurrency) {
		return fmt.Errorf("LOCAL_CURRENCY %q is not a 3-letter code", c.LocalCurrency)
	}
	if !currencyCode.MatchString(c.ForeignCurrency) {
		return fmt.Errorf("FOREIGN_CURRENCY %q is not a 3-letter code", c.ForeignCurrency)
	}
	if c.LocalCurrency == c.ForeignCurrency {
		return errors.New("LOCAL_CURRENCY and FOREIGN_CURRENCY must differ")
	}
	if c.DefaultVATRate <= 0 {
		return errors.New("DEFAULT_VAT_RATE must be positive")
	}
	if c.DefaultExchangeRate <= 0 {
		return errors.New("DEFAULT_EXCHANGE_RATE must be positive")
	}
	if c.UploadMaxBytes <= 0 {
		return errors.New("UPLOAD_MAX_BYTES must be positive")
	}
	return nil
}

// IsDevelopment reports whether the service runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// HTTPAddr returns the address the HTTP server should bind to.
func (c *Config) HTTPAddr() string {
	port := strings.TrimSpace(c.Port)
	if port == "" {
		port = "8080"
	}
	if strings.HasPrefix(port, ":") {
		return port
	}
	return ":" + port
}

// Delivery returns the calculator configuration.
func (c *Config) Delivery() delivery.Config {
	return delivery.Config{
		Currencies: delivery.Currencies{
			Local:   c.LocalCurrency,
			Foreign: c.ForeignCurrency,
		},
		DefaultVATRate:      c.DefaultVATRate,
		DefaultExchangeRate: c.DefaultExchangeRate,
		DefaultPriceType:    delivery.PriceNet,
	}
}

func valueOrDefault(value, fallback string) string {
	if strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}

func parseDuration(value, fallback string) time.Duration {
	base := strings.TrimSpace(value)
	if base == "" {
		base = fallback
	}
	d, err := time.ParseDuration(base)
	if err != nil {
		d, _ = time.ParseDuration(fallback)
	}
	return d
}

func parseFloat(value string, fallback float64) float64 {
	if f, ok := numeric.Parse(value); ok {
		return f
	}
	return fallback
}

func parseInt(value string, fallback int64) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return fallback
	}
	return n
}
