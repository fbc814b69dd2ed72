package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(endpoint string) LLMConfig {
	cfg := DefaultConfig()
	cfg.Endpoint = endpoint
	cfg.APIKey = "test-key"
	cfg.Model = "gpt-4o-mini"
	return cfg
}

func writeCompletion(w http.ResponseWriter, content string) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"model": "gpt-4o-mini",
		"choices": []map[string]any{
			{"message": map[string]string{"role": "assistant", "content": content}},
		},
	})
}

func TestChatClient_Generate_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/openai/deployments/gpt-4o-mini/chat/completions", r.URL.Path)
		assert.Equal(t, "2024-06-01", r.URL.Query().Get("api-version"))
		assert.Equal(t, "test-key", r.Header.Get("api-key"))
		assert.Equal(t, http.MethodPost, r.Method)

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Equal(t, "system prompt", req.Messages[0].Content)
		assert.Equal(t, "user", req.Messages[1].Role)
		assert.Equal(t, "user prompt", req.Messages[1].Content)
		assert.Equal(t, "json_object", req.ResponseFormat.Type)
		assert.InDelta(t, 0.7, req.Temperature, 1e-9)

		writeCompletion(w, `{"durationDays":3}`)
	}))
	defer srv.Close()

	client := NewChatClient(testConfig(srv.URL), NoopObserver{})
	resp, err := client.Generate(context.Background(), GenerateRequest{
		Task:         TaskExtract,
		SystemPrompt: "system prompt",
		UserPrompt:   "user prompt",
	})

	require.NoError(t, err)
	assert.Equal(t, `{"durationDays":3}`, resp.Text)
	assert.Equal(t, "gpt-4o-mini", resp.Model)
	assert.GreaterOrEqual(t, resp.LatencyMs, int64(0))
}

func TestChatClient_Generate_NotConfigured(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.APIKey = ""

	_, err := NewChatClient(cfg, nil).Generate(context.Background(), GenerateRequest{Task: TaskExtract})
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.Equal(t, int32(0), calls.Load())
}

func TestChatClient_Generate_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		writeCompletion(w, "{}")
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.Tasks = map[TaskType]TaskConfig{
		TaskExtract: {Temperature: 0.7, MaxTokens: 512, TimeoutMs: 50},
	}

	var captured LLMCallEvent
	obs := &captureObserver{fn: func(e LLMCallEvent) { captured = e }}

	_, err := NewChatClient(cfg, obs).Generate(context.Background(), GenerateRequest{Task: TaskExtract})
	assert.ErrorIs(t, err, ErrTimeout)
	assert.False(t, captured.Success)
	assert.Equal(t, "TIMEOUT", captured.ErrorCode)
}

func TestChatClient_Generate_Unavailable(t *testing.T) {
	cfg := testConfig("http://127.0.0.1:1")
	cfg.Tasks = map[TaskType]TaskConfig{
		TaskExtract: {TimeoutMs: 1000},
	}

	_, err := NewChatClient(cfg, NoopObserver{}).Generate(context.Background(), GenerateRequest{Task: TaskExtract})
	assert.ErrorIs(t, err, ErrBackendUnavailable)
}

func TestChatClient_Generate_NoRetryOnServerError(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte("rate limited"))
	}))
	defer srv.Close()

	_, err := NewChatClient(testConfig(srv.URL), NoopObserver{}).Generate(context.Background(), GenerateRequest{Task: TaskItinerary})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUpstreamStatus)
	assert.Contains(t, err.Error(), "429")
	assert.Equal(t, int32(1), calls.Load())
}

func TestChatClient_Generate_EmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"model":"gpt-4o-mini","choices":[]}`))
	}))
	defer srv.Close()

	_, err := NewChatClient(testConfig(srv.URL), NoopObserver{}).Generate(context.Background(), GenerateRequest{Task: TaskExtract})
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestChatClient_ObserverCalled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeCompletion(w, `{"itinerary":[]}`)
	}))
	defer srv.Close()

	var captured LLMCallEvent
	obs := &captureObserver{fn: func(e LLMCallEvent) { captured = e }}

	_, err := NewChatClient(testConfig(srv.URL), obs).Generate(context.Background(), GenerateRequest{Task: TaskItinerary})

	require.NoError(t, err)
	assert.Equal(t, TaskItinerary, captured.Task)
	assert.Equal(t, "gpt-4o-mini", captured.Model)
	assert.True(t, captured.Success)
}

type captureObserver struct {
	fn func(LLMCallEvent)
}

func (c *captureObserver) OnCallComplete(e LLMCallEvent) {
	c.fn(e)
}
