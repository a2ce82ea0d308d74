package timesheet

import (
	"os"
	"strconv"
)

// Config holds the navigator's connection parameters.
type Config struct {
	BaseURL   string
	TimeoutMs int
}

// DefaultConfig returns the stock configuration for the University of
// Illinois time reporting application.
func DefaultConfig() Config {
	return Config{
		BaseURL:   "https://hrnet.uihr.uillinois.edu/PTRApplication/index.cfm",
		TimeoutMs: 30000,
	}
}

// LoadConfig reads navigator configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()
	if v := os.Getenv("PTR_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("PTR_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	return cfg
}
