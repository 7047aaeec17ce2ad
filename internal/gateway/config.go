package gateway

import (
	"os"
	"strconv"
)

// Config holds connection settings for the remote store.
type Config struct {
	BaseURL    string
	Token      string
	TimeoutMs  int
	MaxRetries int // retries apply to idempotent reads only
	LogCalls   bool
}

// DefaultConfig returns a Config with development defaults.
func DefaultConfig() Config {
	return Config{
		BaseURL:    "http://localhost:8080/api",
		TimeoutMs:  15000,
		MaxRetries: 1,
	}
}

// LoadConfig reads gateway configuration from environment variables,
// falling back to defaults for any unset value.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("GEMDESK_API_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("GEMDESK_TOKEN"); v != "" {
		cfg.Token = v
	}
	if v := os.Getenv("GEMDESK_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("GEMDESK_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}
	if v := os.Getenv("GEMDESK_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}

	return cfg
}
