package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config aggregates the environment-driven settings.
type Config struct {
	Port         string
	AllowOrigins string

	// Postgres connection pieces for the persisted key-value store.
	// Empty DBHost selects the in-memory store.
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	JWTSecret     string
	TokenTTLHours int

	// Simulated transport behaviour.
	MockMinLatencyMS int
	MockMaxLatencyMS int
	MockFailureRate  float64

	OTPResendSeconds int

	LogLevel  string
	LogFormat string
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoi(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func atof(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

// Load reads configuration from environment variables, applying
// defaults suitable for local development.
func Load() *Config {
	return &Config{
		Port:         getenv("PORT", "8080"),
		AllowOrigins: getenv("ALLOW_ORIGINS", "*"),

		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     getenv("DB_PORT", "5432"),
		DBUser:     getenv("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getenv("DB_NAME", "fundvest"),
		DBSSLMode:  getenv("DB_SSLMODE", "disable"),

		JWTSecret:     getenv("JWT_SECRET", "dev-secret-change-me"),
		TokenTTLHours: atoi("TOKEN_TTL_HOURS", 24),

		MockMinLatencyMS: atoi("MOCK_MIN_LATENCY_MS", 500),
		MockMaxLatencyMS: atoi("MOCK_MAX_LATENCY_MS", 1500),
		MockFailureRate:  atof("MOCK_FAILURE_RATE", 0.05),

		OTPResendSeconds: atoi("OTP_RESEND_SECONDS", 30),

		LogLevel:  getenv("LOG_LEVEL", "info"),
		LogFormat: getenv("LOG_FORMAT", "text"),
	}
}

// DSN assembles the postgres connection string, or "" when no DB host
// is configured.
func (c *Config) DSN() string {
	if c.DBHost == "" {
		return ""
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode,
	)
}

// TokenTTL is the session token lifetime as a duration.
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLHours) * time.Hour
}

// MockMinLatency is the lower simulated latency bound.
func (c *Config) MockMinLatency() time.Duration {
	return time.Duration(c.MockMinLatencyMS) * time.Millisecond
}

// MockMaxLatency is the upper simulated latency bound.
func (c *Config) MockMaxLatency() time.Duration {
	return time.Duration(c.MockMaxLatencyMS) * time.Millisecond
}
