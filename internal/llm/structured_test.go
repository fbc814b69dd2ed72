package llm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type destinationPayload struct {
	DurationDays int      `json:"durationDays"`
	Budget       string   `json:"budget"`
	Themes       []string `json:"themes"`
	Score        float64  `json:"score"`
}

func TestExtractJSON_CleanJSON(t *testing.T) {
	raw := `{"durationDays":5,"budget":"medium","themes":["beach"]}`
	result, err := ExtractJSON[destinationPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, 5, result.DurationDays)
	assert.Equal(t, []string{"beach"}, result.Themes)
}

func TestExtractJSON_FencedWithProse(t *testing.T) {
	raw := "Here is your plan:\n```json\n{\"durationDays\":3,\"budget\":\"low\"}\n```\nEnjoy!"
	result, err := ExtractJSON[destinationPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "low", result.Budget)
}

func TestExtractJSON_NestedObjectsAndBracesInStrings(t *testing.T) {
	type wrapper struct {
		Itinerary []struct {
			Day   int    `json:"day"`
			Title string `json:"title"`
		} `json:"itinerary"`
	}
	raw := `{"itinerary":[{"day":1,"title":"Arrive {early}"},{"day":2,"title":"Say \"hi\" }"}]} trailing`
	result, err := ExtractJSON[wrapper](raw, nil)
	require.NoError(t, err)
	require.Len(t, result.Itinerary, 2)
	assert.Equal(t, "Arrive {early}", result.Itinerary[0].Title)
	assert.Equal(t, `Say "hi" }`, result.Itinerary[1].Title)
}

func TestExtractJSON_CommentsAndLeadingDecimals(t *testing.T) {
	raw := "{\n  \"durationDays\": 4, // four days\n  /* rough */ \"score\": .75,\n  \"budget\": \"see http://x.io\"\n}"
	result, err := ExtractJSON[destinationPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, result.DurationDays)
	assert.InDelta(t, 0.75, result.Score, 1e-9)
	assert.Equal(t, "see http://x.io", result.Budget)
}

func TestExtractJSON_NegativeLeadingDecimal(t *testing.T) {
	result, err := ExtractJSON[destinationPayload](`{"score": -.5}`, nil)
	require.NoError(t, err)
	assert.InDelta(t, -0.5, result.Score, 1e-9)
}

func TestExtractJSON_NoJSON(t *testing.T) {
	_, err := ExtractJSON[destinationPayload]("I can't help with that.", nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_InvalidJSON(t *testing.T) {
	_, err := ExtractJSON[destinationPayload](`{"durationDays": five}`, nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_Validation(t *testing.T) {
	validator := func(p destinationPayload) error {
		if p.DurationDays < 1 {
			return errors.New("durationDays must be positive")
		}
		return nil
	}

	_, err := ExtractJSON(`{"durationDays":0}`, validator)
	assert.ErrorIs(t, err, ErrInvalidOutput)
	assert.Contains(t, err.Error(), "validation failed")

	result, err := ExtractJSON(`{"durationDays":2}`, validator)
	require.NoError(t, err)
	assert.Equal(t, 2, result.DurationDays)
}
