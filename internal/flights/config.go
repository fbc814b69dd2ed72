package flights

import (
	"os"
	"strconv"
)

// Config holds the flight provider connection settings.
type Config struct {
	BaseURL   string
	Email     string
	Password  string
	TenantID  string
	TimeoutMs int
}

// DefaultConfig points at the provider's QA environment with no credentials.
func DefaultConfig() Config {
	return Config{
		BaseURL:   "https://qa-air-b2b.cleartrip.com",
		TimeoutMs: 30000,
	}
}

// LoadConfig reads provider settings from the environment, falling back to
// defaults for unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("D2R_FLIGHTS_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	cfg.Email = os.Getenv("D2R_FLIGHTS_EMAIL")
	cfg.Password = os.Getenv("D2R_FLIGHTS_PASSWORD")
	cfg.TenantID = os.Getenv("D2R_FLIGHTS_TENANT_ID")
	if v := os.Getenv("D2R_FLIGHTS_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	return cfg
}

// HasCredentials reports whether login can be attempted.
func (c Config) HasCredentials() bool {
	return c.Email != "" && c.Password != ""
}
