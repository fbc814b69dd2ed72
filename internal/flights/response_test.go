package flights

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSearchResponse = `{
  "searchResults": [{
    "flightOptions": [{
      "id": 991,
      "legs": [
        {"duration": "3h 10m", "segments": [
          {"marketingAirline": {"name": "Vistara"}, "flightNumber": "UK-811", "departTime": "06:10", "arrivalTime": "07:40"},
          {"marketingAirline": {"name": "Vistara"}, "flightNumber": 812, "departTime": "08:30", "arrivalTime": "09:20"}
        ]},
        {"duration": 95, "segments": [
          {"marketingAirline": {"name": "Vistara"}, "flightNumber": "UK-814", "departTime": "17:00", "arrivalTime": "18:35"}
        ]}
      ],
      "pricing": {"totalPrice": 5120.5, "currency": "INR"}
    }]
  }]
}`

func TestProject_FullOption(t *testing.T) {
	var resp SearchResponse
	require.NoError(t, json.Unmarshal([]byte(sampleSearchResponse), &resp))
	require.Len(t, resp.SearchResults, 1)
	require.Len(t, resp.SearchResults[0].FlightOptions, 1)

	f := Project(resp.SearchResults[0].FlightOptions[0], "BLR", "GOI")

	assert.Equal(t, "991", f.ID)
	assert.Equal(t, "Vistara", f.Airline)
	assert.Equal(t, "UK-811", f.FlightNumber)
	assert.Equal(t, "06:10", f.DepartTime)
	assert.Equal(t, "07:40", f.ArrivalTime)
	assert.Equal(t, "3h 10m", f.Duration)
	assert.Equal(t, 1, f.Stops)
	assert.InDelta(t, 5120.5, f.Price, 0.001)
	assert.Equal(t, "INR", f.Currency)
	assert.Equal(t, "BLR", f.From)
	assert.Equal(t, "GOI", f.To)
	assert.Equal(t, "17:00", f.ReturnDepartTime)
	assert.Equal(t, "18:35", f.ReturnArrivalTime)
}

func TestProject_MissingFieldsUsePlaceholders(t *testing.T) {
	f := Project(FlightOption{ID: "x"}, "DEL", "BOM")

	assert.Equal(t, "Airlines", f.Airline)
	assert.Equal(t, "N/A", f.FlightNumber)
	assert.Equal(t, "N/A", f.DepartTime)
	assert.Equal(t, "N/A", f.ArrivalTime)
	assert.Equal(t, "N/A", f.Duration)
	assert.Equal(t, "N/A", f.ReturnDepartTime)
	assert.Equal(t, "N/A", f.ReturnArrivalTime)
	assert.Equal(t, 0.0, f.Price)
	assert.Equal(t, "INR", f.Currency)
	assert.Equal(t, 0, f.Stops)
}

func TestProject_LegWithoutSegmentsIsDirect(t *testing.T) {
	f := Project(FlightOption{Legs: []Leg{{Duration: "1h"}}}, "DEL", "BOM")
	assert.Equal(t, 0, f.Stops)
	assert.Equal(t, "1h", f.Duration)
}

func TestFlexString_RejectsObjects(t *testing.T) {
	var opt FlightOption
	err := json.Unmarshal([]byte(`{"id": {"nested": true}}`), &opt)
	assert.Error(t, err)
}
