package llm

import (
	"os"
	"strconv"
	"strings"
)

// TaskType identifies the kind of LLM task being performed.
type TaskType string

const (
	TaskExtract   TaskType = "extract"
	TaskItinerary TaskType = "itinerary"
)

// TaskConfig holds per-task LLM parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
}

// LLMConfig holds all configuration for the chat-completions backend.
type LLMConfig struct {
	Endpoint   string
	APIKey     string
	Model      string
	APIVersion string
	LogCalls   bool
	TimeoutMs  int
	Tasks      map[TaskType]TaskConfig
}

// BackendAvailability records whether a backend can be called at all. It is
// computed once from configuration and handed to the services that need it.
type BackendAvailability struct {
	Configured bool
	Missing    []string
}

// DefaultConfig returns an LLMConfig with no backend configured.
func DefaultConfig() LLMConfig {
	return LLMConfig{
		APIVersion: "2024-06-01",
		TimeoutMs:  60000,
		Tasks: map[TaskType]TaskConfig{
			TaskExtract:   {Temperature: 0.7, MaxTokens: 1024},
			TaskItinerary: {Temperature: 0.7, MaxTokens: 3072},
		},
	}
}

// LoadConfig reads backend configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() LLMConfig {
	cfg := DefaultConfig()

	cfg.Endpoint = strings.TrimRight(os.Getenv("AZURE_OPENAI_ENDPOINT"), "/")
	cfg.APIKey = os.Getenv("AZURE_OPENAI_API_KEY")
	cfg.Model = os.Getenv("AZURE_OPENAI_MODEL")
	if v := os.Getenv("AZURE_OPENAI_API_VERSION"); v != "" {
		cfg.APIVersion = v
	}
	if v := os.Getenv("D2R_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("D2R_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}

	applyTaskTimeoutEnv(&cfg, TaskExtract, "D2R_LLM_EXTRACT_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskItinerary, "D2R_LLM_ITINERARY_TIMEOUT_MS")

	return cfg
}

// Availability reports which required settings are missing.
func (c LLMConfig) Availability() BackendAvailability {
	var missing []string
	if c.Endpoint == "" {
		missing = append(missing, "AZURE_OPENAI_ENDPOINT")
	}
	if c.APIKey == "" {
		missing = append(missing, "AZURE_OPENAI_API_KEY")
	}
	if c.Model == "" {
		missing = append(missing, "AZURE_OPENAI_MODEL")
	}
	return BackendAvailability{Configured: len(missing) == 0, Missing: missing}
}

// TaskTimeout returns the effective timeout for a given task type.
// Uses the task-specific timeout if set, otherwise the global timeout.
func (c LLMConfig) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}

func applyTaskTimeoutEnv(cfg *LLMConfig, task TaskType, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return
	}
	tc := cfg.Tasks[task]
	tc.TimeoutMs = n
	cfg.Tasks[task] = tc
}
