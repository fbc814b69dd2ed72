package api

import (
	"os"
	"strconv"
	"strings"
)

// Config holds HTTP surface settings.
type Config struct {
	Port         string
	CORSOrigins  []string
	RateLimitRPS float64
	RateBurst    int
	Release      bool
}

var defaultOrigins = []string{"http://localhost:3000", "http://localhost:5173"}

// DefaultConfig returns the built-in HTTP settings.
func DefaultConfig() Config {
	return Config{
		Port:         "8080",
		CORSOrigins:  append([]string(nil), defaultOrigins...),
		RateLimitRPS: 5,
		RateBurst:    10,
	}
}

// LoadConfig reads PORT, D2R_CORS_ORIGINS, D2R_RATE_LIMIT_RPS and GIN_MODE.
// Extra CORS origins are appended to the localhost defaults.
func LoadConfig() Config {
	cfg := DefaultConfig()
	if v := strings.TrimSpace(os.Getenv("PORT")); v != "" {
		cfg.Port = v
	}
	for _, origin := range strings.Split(os.Getenv("D2R_CORS_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, origin)
		}
	}
	if v := os.Getenv("D2R_RATE_LIMIT_RPS"); v != "" {
		if rps, err := strconv.ParseFloat(v, 64); err == nil && rps > 0 {
			cfg.RateLimitRPS = rps
		}
	}
	cfg.Release = os.Getenv("GIN_MODE") == "release"
	return cfg
}

// Addr returns the listen address for Port.
func (c Config) Addr() string {
	if strings.Contains(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}
