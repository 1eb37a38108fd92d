package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultAppName       = "LendLoop"
	defaultAppEnv        = "development"
	defaultPort          = "8080"
	defaultLogLevel      = "info"
	defaultShutdownDelay = 10 * time.Second
	defaultIdemTTL       = 24 * time.Hour
	defaultExchangeRate  = 0.00003
	defaultWriteRate     = 60

	shutdownEnvVar     = "SHUTDOWN_TIMEOUT"
	idemTTLEnvVar      = "IDEMPOTENCY_TTL"
	exchangeRateEnvVar = "EXCHANGE_RATE"
	writeRateEnvVar    = "WRITE_RATE_PER_MIN"
)

// Config captures application runtime configuration loaded from environment
// variables. Redis is optional: without REDIS_URL the idempotency and rate
// limit middlewares are skipped and all state is purely in-process.
type Config struct {
	AppName         string
	AppEnv          string
	Port            string
	LogLevel        string
	RedisURL        string
	ShutdownPeriod  time.Duration
	IdempotencyTTL  time.Duration
	ExchangeRate    float64
	WriteRatePerMin int
}

// Load reads configuration values from the environment.
func Load() (Config, error) {
	cfg := Config{
		AppName:         getEnv("APP_NAME", defaultAppName),
		AppEnv:          getEnv("APP_ENV", defaultAppEnv),
		Port:            getEnv("PORT", defaultPort),
		LogLevel:        strings.ToLower(getEnv("LOG_LEVEL", defaultLogLevel)),
		RedisURL:        os.Getenv("REDIS_URL"),
		ShutdownPeriod:  defaultShutdownDelay,
		IdempotencyTTL:  defaultIdemTTL,
		ExchangeRate:    defaultExchangeRate,
		WriteRatePerMin: defaultWriteRate,
	}

	if v := os.Getenv(shutdownEnvVar); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", shutdownEnvVar, err)
		}
		cfg.ShutdownPeriod = d
	}

	if v := os.Getenv(idemTTLEnvVar); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", idemTTLEnvVar, err)
		}
		cfg.IdempotencyTTL = d
	}

	if v := os.Getenv(exchangeRateEnvVar); v != "" {
		rate, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", exchangeRateEnvVar, err)
		}
		if rate <= 0 {
			return Config{}, fmt.Errorf("%s must be positive", exchangeRateEnvVar)
		}
		cfg.ExchangeRate = rate
	}

	if v := os.Getenv(writeRateEnvVar); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", writeRateEnvVar, err)
		}
		cfg.WriteRatePerMin = n
	}

	return cfg, nil
}

// Address returns the listen address in the format Fiber expects.
func (c Config) Address() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return fmt.Sprintf(":%s", c.Port)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
