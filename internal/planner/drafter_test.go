package planner

import (
	"context"
	"errors"
	"testing"

	"github.com/Sgowda7697/Dream2Reality/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockClient struct {
	response string
	err      error
	requests []llm.GenerateRequest
}

func (m *mockClient) Generate(_ context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	m.requests = append(m.requests, req)
	if m.err != nil {
		return nil, m.err
	}
	return &llm.GenerateResponse{Text: m.response, Model: "gpt-4o-mini"}, nil
}

func TestDrafter_Extract(t *testing.T) {
	client := &mockClient{response: `{
		"userQuery": "Beach vacation with water sports",
		"durationDays": 5,
		"budget": "Medium",
		"themes": ["beach", "water sports"],
		"destinationOptions": [
			{"name": "Goa", "country": "India", "tags": ["beach"]},
			{"name": "Andaman Islands", "country": "India", "tags": ["diving"]}
		]
	}`}

	ext, err := NewDrafter(client).Extract(context.Background(), "Beach vacation with water sports, 5 days")

	require.NoError(t, err)
	require.NotNil(t, ext.DurationDays)
	assert.Equal(t, 5, *ext.DurationDays)
	assert.Equal(t, "Medium", ext.Budget)
	require.Len(t, ext.DestinationOptions, 2)
	assert.Equal(t, "Andaman Islands", ext.DestinationOptions[1].Name)

	require.Len(t, client.requests, 1)
	assert.Equal(t, llm.TaskExtract, client.requests[0].Task)
	assert.Contains(t, client.requests[0].SystemPrompt, "destinationOptions")
	assert.Equal(t, "Beach vacation with water sports, 5 days", client.requests[0].UserPrompt)
}

func TestDrafter_Extract_Errors(t *testing.T) {
	cases := []struct {
		name   string
		client *mockClient
		want   error
	}{
		{"backend error", &mockClient{err: llm.ErrUpstreamStatus}, llm.ErrUpstreamStatus},
		{"not json", &mockClient{response: "Sorry, I cannot plan that."}, llm.ErrInvalidOutput},
		{"bad budget", &mockClient{response: `{"budget":"luxury"}`}, llm.ErrInvalidOutput},
		{"nameless option", &mockClient{response: `{"destinationOptions":[{"name":""}]}`}, llm.ErrInvalidOutput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewDrafter(tc.client).Extract(context.Background(), "anything at all")
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}

func TestDrafter_Extract_ZeroDurationIsAccepted(t *testing.T) {
	client := &mockClient{response: `{"durationDays":0,"destinationOptions":[{"name":"Goa"}]}`}

	ext, err := NewDrafter(client).Extract(context.Background(), "a long weekend by the sea")

	require.NoError(t, err)
	assert.Equal(t, DefaultDurationDays, DurationOf(ext))
}

func TestDrafter_Itinerary(t *testing.T) {
	client := &mockClient{response: `{"itinerary":[
		{"day":1,"title":"Arrive","activities":[{"time":"10:00 AM","name":"Check-in"}]},
		{"day":2,"title":"Dive","activities":[{"time":"9:00 AM","name":"Scuba","lat":11.6,"lng":92.7}]}
	]}`}

	days, err := NewDrafter(client).Itinerary(context.Background(), "Andaman Islands", 2, []string{"diving"})

	require.NoError(t, err)
	require.Len(t, days, 2)
	assert.Equal(t, "Dive", days[1].Title)
	assert.True(t, days[1].Activities[0].HasLocation())

	req := client.requests[0]
	assert.Equal(t, llm.TaskItinerary, req.Task)
	assert.Contains(t, req.SystemPrompt, "2-day itinerary for Andaman Islands")
	assert.Contains(t, req.SystemPrompt, "themes diving")
	assert.Contains(t, req.SystemPrompt, "key 'itinerary'")
}

func TestDrafter_Itinerary_DefaultThemeAndEmptyList(t *testing.T) {
	client := &mockClient{response: `{"itinerary":null}`}

	days, err := NewDrafter(client).Itinerary(context.Background(), "Goa", 3, nil)

	require.Error(t, err, "null is treated as a missing key")

	client = &mockClient{response: `{"itinerary":[]}`}
	days, err = NewDrafter(client).Itinerary(context.Background(), "Goa", 3, nil)

	require.NoError(t, err)
	assert.NotNil(t, days)
	assert.Empty(t, days)
	assert.Contains(t, client.requests[0].SystemPrompt, "themes relaxation")
}

func TestDrafter_Itinerary_MissingKeyRejected(t *testing.T) {
	client := &mockClient{response: `{"days":[]}`}

	_, err := NewDrafter(client).Itinerary(context.Background(), "Goa", 3, nil)

	assert.ErrorIs(t, err, llm.ErrInvalidOutput)
}

func TestDrafter_Itinerary_BareArrayRejected(t *testing.T) {
	client := &mockClient{response: `[{"day":1,"title":"x","activities":[]}]`}

	_, err := NewDrafter(client).Itinerary(context.Background(), "Goa", 1, nil)

	assert.ErrorIs(t, err, llm.ErrInvalidOutput)
}
