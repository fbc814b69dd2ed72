package conversation

import (
	"os"
	"strconv"
	"time"
)

const defaultFeedbackDelay = 1500 * time.Millisecond

// Config holds controller timing.
type Config struct {
	// FeedbackDelay is how long the itinerary stays on screen before the
	// controller asks for feedback on it.
	FeedbackDelay time.Duration
}

// DefaultConfig returns the built-in controller settings.
func DefaultConfig() Config {
	return Config{FeedbackDelay: defaultFeedbackDelay}
}

// LoadConfig reads D2R_FEEDBACK_DELAY_MS on top of DefaultConfig. Invalid or
// negative values are ignored.
func LoadConfig() Config {
	cfg := DefaultConfig()
	if v := os.Getenv("D2R_FEEDBACK_DELAY_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms >= 0 {
			cfg.FeedbackDelay = time.Duration(ms) * time.Millisecond
		}
	}
	return cfg
}
