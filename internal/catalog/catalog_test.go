package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup_Goa(t *testing.T) {
	e := Lookup("Goa")
	require.Len(t, e.Flights, 2)
	require.Len(t, e.Hotels, 2)
	assert.Equal(t, "IndiGo", e.Flights[0].Airline)
	assert.Equal(t, 3200.0, e.Flights[0].Price)
	assert.Equal(t, "Taj Fort Aguada", e.Hotels[0].Name)
}

func TestLookup_CaseInsensitive(t *testing.T) {
	e := Lookup("  mysore ")
	require.Len(t, e.Flights, 1)
	assert.Equal(t, "MYQ", e.Flights[0].To)
	assert.Len(t, e.Hotels, 2)
}

func TestLookup_UnknownIsEmptyNotNil(t *testing.T) {
	e := Lookup("Manali")
	assert.NotNil(t, e.Flights)
	assert.NotNil(t, e.Hotels)
	assert.Empty(t, e.Flights)
	assert.Empty(t, e.Hotels)
}

func TestLookup_ReturnsCopies(t *testing.T) {
	e := Lookup("Goa")
	e.Hotels[0].PricePerNight = 1
	assert.Equal(t, 9000.0, Lookup("Goa").Hotels[0].PricePerNight)
}

func TestDestinations(t *testing.T) {
	assert.Equal(t, []string{"Goa", "Mysore"}, Destinations())
}
