package llm

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig_NotConfigured(t *testing.T) {
	avail := DefaultConfig().Availability()
	assert.False(t, avail.Configured)
	assert.ElementsMatch(t, []string{"AZURE_OPENAI_ENDPOINT", "AZURE_OPENAI_API_KEY", "AZURE_OPENAI_MODEL"}, avail.Missing)
}

func TestDefaultConfig_TimeoutAppliesToEveryTask(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 60000, cfg.TaskTimeout(TaskExtract))
	assert.Equal(t, 60000, cfg.TaskTimeout(TaskItinerary))
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("AZURE_OPENAI_ENDPOINT", "https://example.openai.azure.com/")
	t.Setenv("AZURE_OPENAI_API_KEY", "k")
	t.Setenv("AZURE_OPENAI_MODEL", "gpt-4o")
	t.Setenv("AZURE_OPENAI_API_VERSION", "2025-01-01-preview")
	t.Setenv("D2R_LLM_LOG_CALLS", "true")

	cfg := LoadConfig()

	assert.Equal(t, "https://example.openai.azure.com", cfg.Endpoint)
	assert.Equal(t, "2025-01-01-preview", cfg.APIVersion)
	assert.True(t, cfg.LogCalls)
	assert.True(t, cfg.Availability().Configured)
}

func TestLoadConfig_TaskTimeoutOverrides(t *testing.T) {
	t.Setenv("D2R_LLM_TIMEOUT_MS", "9000")
	t.Setenv("D2R_LLM_ITINERARY_TIMEOUT_MS", "45000")

	cfg := LoadConfig()

	assert.Equal(t, 9000, cfg.TaskTimeout(TaskExtract))
	assert.Equal(t, 45000, cfg.TaskTimeout(TaskItinerary))
}

func TestLoadConfig_InvalidTaskTimeoutOverrideIgnored(t *testing.T) {
	t.Setenv("D2R_LLM_EXTRACT_TIMEOUT_MS", "not-a-number")

	cfg := LoadConfig()

	assert.Equal(t, 60000, cfg.TaskTimeout(TaskExtract))
}

func TestLogObserver_WritesStructuredLine(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogObserver(&buf)

	obs.OnCallComplete(LLMCallEvent{Task: TaskExtract, Model: "gpt-4o", LatencyMs: 12, Success: true})
	obs.OnCallComplete(LLMCallEvent{Task: TaskItinerary, Model: "gpt-4o", ErrorCode: "TIMEOUT"})

	out := buf.String()
	assert.Contains(t, out, "msg=llm_call")
	assert.Contains(t, out, "task=extract")
	assert.Contains(t, out, "latency_ms=12")
	assert.Contains(t, out, "error_code=TIMEOUT")
}
