package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Archive backends.
const (
	ArchiveMemory   = "memory"
	ArchivePostgres = "postgres"
)

type Config struct {
	// Server
	Port string
	Env  string // "development", "production"

	// CORS
	AllowedOrigins []string

	// Raw offer archive
	OfferArchive string // "memory" or "postgres"
	DatabaseURL  string

	// Rendering
	DefaultCurrency string
	MaxBatchBytes   int64

	// Sessions
	SessionTTL           time.Duration
	SessionSweepEnabled  bool
	SessionSweepSchedule string // Cron expression (e.g., "*/5 * * * *")
}

func Load() *Config {
	return &Config{
		// Server
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),

		// CORS
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),

		// Raw offer archive
		OfferArchive: strings.ToLower(getEnv("OFFER_ARCHIVE", ArchiveMemory)),
		DatabaseURL:  getEnv("DATABASE_URL", "postgres://localhost:5432/offerdesk?sslmode=disable"),

		// Rendering
		DefaultCurrency: strings.ToUpper(getEnv("DEFAULT_CURRENCY", "USD")),
		MaxBatchBytes:   getInt64Env("MAX_BATCH_BYTES", 1<<20),

		// Sessions
		SessionTTL:           getDurationEnv("SESSION_TTL", 30*time.Minute),
		SessionSweepEnabled:  getBoolEnv("SESSION_SWEEP_ENABLED", true),
		SessionSweepSchedule: getEnv("SESSION_SWEEP_SCHEDULE", "*/5 * * * *"),
	}
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// UsePostgresArchive reports whether raw offers are archived in Postgres.
func (c *Config) UsePostgresArchive() bool {
	return c.OfferArchive == ArchivePostgres
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getInt64Env(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.ParseInt(value, 10, 64); err == nil && n > 0 {
			return n
		}
	}
	return defaultValue
}

func splitList(value string) []string {
	var out []string
	for _, v := range strings.Split(value, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
