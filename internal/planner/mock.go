package planner

import (
	"github.com/Sgowda7697/Dream2Reality/internal/catalog"
	"github.com/Sgowda7697/Dream2Reality/internal/domain"
)

func coord(v float64) *float64 { return &v }

// MockPlan is the fixed plan returned when no backend is configured.
func MockPlan(query string) *domain.Plan {
	entry := catalog.Lookup(DefaultDestination)
	return &domain.Plan{
		UserQuery:    query,
		DurationDays: 3,
		Budget:       domain.BudgetMedium,
		Themes:       []string{"beach", "culture", "relaxation"},
		DestinationOptions: []domain.DestinationOption{
			{Name: "Goa", Country: "India", Summary: "Beautiful beaches and vibrant nightlife", Tags: []string{"beach", "nightlife", "relaxation"}},
			{Name: "Mysore", Country: "India", Summary: "Royal palaces and cultural heritage", Tags: []string{"culture", "history", "architecture"}},
		},
		ChosenDestination: DefaultDestination,
		Flights:           entry.Flights,
		Hotels:            entry.Hotels,
		Itinerary: []domain.ItineraryDay{
			{
				Day:   1,
				Title: "Beach Day & Arrival",
				Activities: []domain.Activity{
					{Time: "10:00 AM", Name: "Check-in to hotel", Description: "Get settled and freshen up"},
					{Time: "2:00 PM", Name: "Calangute Beach", Description: "Relax on the golden sands", Lat: coord(15.5466), Lng: coord(73.7553)},
					{Time: "7:00 PM", Name: "Dinner at Beach Shack", Description: "Fresh seafood by the ocean"},
				},
			},
			{
				Day:   2,
				Title: "Exploration & Culture",
				Activities: []domain.Activity{
					{Time: "9:00 AM", Name: "Old Goa Churches", Description: "Visit historic Portuguese churches", Lat: coord(15.5007), Lng: coord(73.9117)},
					{Time: "1:00 PM", Name: "Local Lunch", Description: "Traditional Goan cuisine"},
					{Time: "4:00 PM", Name: "Anjuna Flea Market", Description: "Shopping for souvenirs and handicrafts"},
				},
			},
			{
				Day:   3,
				Title: "Adventure & Departure",
				Activities: []domain.Activity{
					{Time: "9:00 AM", Name: "Water Sports", Description: "Jet skiing and parasailing at Baga Beach"},
					{Time: "12:00 PM", Name: "Check-out", Description: "Pack up and head to airport"},
					{Time: "3:00 PM", Name: "Departure", Description: "Flight back home"},
				},
			},
		},
	}
}
