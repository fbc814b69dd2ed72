// Package catalog holds the static sample flights and hotels shown alongside
// a generated plan.
package catalog

import (
	"sort"
	"strings"

	"github.com/Sgowda7697/Dream2Reality/internal/domain"
)

// Entry is the catalog content for one destination.
type Entry struct {
	Flights []domain.Flight `json:"flights"`
	Hotels  []domain.Hotel  `json:"hotels"`
}

var entries = map[string]Entry{
	"Goa": {
		Flights: []domain.Flight{
			{From: "BLR", To: "GOI", Airline: "IndiGo", Price: 3200, Currency: "INR"},
			{From: "BOM", To: "GOI", Airline: "Air India", Price: 4100, Currency: "INR"},
		},
		Hotels: []domain.Hotel{
			{Name: "Taj Fort Aguada", Area: "Candolim", PricePerNight: 9000},
			{Name: "Fairfield Anjuna", Area: "Anjuna", PricePerNight: 4800},
		},
	},
	"Mysore": {
		Flights: []domain.Flight{
			{From: "BLR", To: "MYQ", Airline: "Alliance Air", Price: 2200, Currency: "INR"},
		},
		Hotels: []domain.Hotel{
			{Name: "Radisson Blu", Area: "CBD", PricePerNight: 4500},
			{Name: "Fortune JP Palace", Area: "Nazarbad", PricePerNight: 3800},
		},
	},
}

// Lookup returns copies of the catalog flights and hotels for destination.
// Matching ignores case and surrounding whitespace. Unknown destinations
// yield empty, non-nil slices.
func Lookup(destination string) Entry {
	want := strings.ToLower(strings.TrimSpace(destination))
	for name, e := range entries {
		if strings.ToLower(name) == want {
			return Entry{
				Flights: append([]domain.Flight{}, e.Flights...),
				Hotels:  append([]domain.Hotel{}, e.Hotels...),
			}
		}
	}
	return Entry{Flights: []domain.Flight{}, Hotels: []domain.Hotel{}}
}

// Destinations lists the catalog's destination names in sorted order.
func Destinations() []string {
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
