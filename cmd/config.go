package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Config carries all runtime settings loaded from the environment.
type Config struct {
	HTTPPort           string
	DBHost             string
	DBPort             string
	DBUser             string
	DBPassword         string
	DBName             string
	DBSslMode          string
	JWTSecret          string
	JWTExpiry          time.Duration
	SchedulerTimezone  string
	RateLimitPerMinute int
	AllowedOrigins     []string
}

// DSN builds the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}

// Location resolves the scheduler timezone, defaulting to UTC when unset.
func (c Config) Location() (*time.Location, error) {
	if c.SchedulerTimezone == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(c.SchedulerTimezone)
}

// Validate checks the settings an operator must supply explicitly.
func (c Config) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.JWTExpiry <= 0 {
		return fmt.Errorf("JWT_EXPIRY_SECONDS must be positive")
	}
	if c.RateLimitPerMinute <= 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must be positive")
	}
	return nil
}

// ParseExpiry converts the JWT_EXPIRY_SECONDS variable into a duration.
// An empty value falls back to one hour.
func ParseExpiry(raw string) (time.Duration, error) {
	if raw == "" {
		return time.Hour, nil
	}
	seconds, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("JWT_EXPIRY_SECONDS must be an integer: %w", err)
	}
	return time.Duration(seconds) * time.Second, nil
}

// ParseRateLimit converts the RATE_LIMIT_PER_MINUTE variable.
// An empty value falls back to 120 requests per minute.
func ParseRateLimit(raw string) (int, error) {
	if raw == "" {
		return 120, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("RATE_LIMIT_PER_MINUTE must be an integer: %w", err)
	}
	return limit, nil
}

// ParseOrigins splits the ALLOWED_ORIGINS variable on commas.
// An empty value allows all origins.
func ParseOrigins(raw string) []string {
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
