package domain

import "strings"

type DistancePreference string

const (
	DistanceNearby  DistancePreference = "nearby"
	DistanceFaraway DistancePreference = "faraway"
	DistanceBoth    DistancePreference = "both"
)

// ValidDistancePreferences is the canonical set of accepted distance preferences.
var ValidDistancePreferences = map[DistancePreference]bool{
	DistanceNearby: true, DistanceFaraway: true, DistanceBoth: true,
}

type FlightPreference string

const (
	PreferenceCheapest   FlightPreference = "cheapest"
	PreferenceGoodTiming FlightPreference = "good_timing"
)

// ValidFlightPreferences is the canonical set of accepted flight preferences.
var ValidFlightPreferences = map[FlightPreference]bool{
	PreferenceCheapest: true, PreferenceGoodTiming: true,
}

// Label returns the phrase used when describing how offers were ordered.
func (p FlightPreference) Label() string {
	if p == PreferenceGoodTiming {
		return "best departure times"
	}
	return "lowest price"
}

type Budget string

const (
	BudgetLow    Budget = "low"
	BudgetMedium Budget = "medium"
	BudgetHigh   Budget = "high"
)

var validBudgets = map[Budget]bool{
	BudgetLow: true, BudgetMedium: true, BudgetHigh: true,
}

type Speaker string

const (
	SpeakerUser Speaker = "user"
	SpeakerBot  Speaker = "bot"
)

// ParseDistancePreference accepts the enum value in any case, with
// surrounding whitespace, plus the hyphenated "far-away" spelling.
func ParseDistancePreference(s string) (DistancePreference, bool) {
	v := DistancePreference(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", ""))
	return v, ValidDistancePreferences[v]
}

// ParseFlightPreference accepts "cheapest", "good_timing" and "good timing".
func ParseFlightPreference(s string) (FlightPreference, bool) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer(" ", "_", "-", "_").Replace(norm)
	v := FlightPreference(norm)
	return v, ValidFlightPreferences[v]
}
