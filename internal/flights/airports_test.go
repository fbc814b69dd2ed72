package flights

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveAirportCode_KnownCities(t *testing.T) {
	t.Parallel()
	cases := map[string]string{
		"Mumbai":       "BOM",
		"  bangalore ": "BLR",
		"GOA":          "GOI",
		"Dehradun":     "DED",
	}
	for city, want := range cases {
		assert.Equal(t, want, ResolveAirportCode(city), city)
	}
}

func TestResolveAirportCode_EveryTableEntryRoundTrips(t *testing.T) {
	t.Parallel()
	for _, city := range KnownCities() {
		code := ResolveAirportCode(strings.ToUpper(city) + "  ")
		assert.Equal(t, airportCodes[city], code, city)
	}
	assert.Len(t, KnownCities(), 20)
	assert.True(t, slices.IsSorted(KnownCities()))
}

func TestResolveAirportCode_UnknownDefaultsToDelhi(t *testing.T) {
	t.Parallel()
	for _, city := range []string{"", "Paris", "Mysore", "New York", "goa beach"} {
		assert.Equal(t, DefaultAirportCode, ResolveAirportCode(city), city)
	}
}
