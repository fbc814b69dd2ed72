package app

import (
	"context"

	"github.com/Sgowda7697/Dream2Reality/internal/domain"
)

// PlanUseCase turns a free-text trip description into a Plan. Every
// failure is returned to the caller.
type PlanUseCase interface {
	GeneratePlan(ctx context.Context, description string) (*domain.Plan, error)
}

// FlightSearchUseCase finds round-trip offers. It never fails: when the
// provider cannot answer, the result holds substitute offers and
// IsFallback is set.
type FlightSearchUseCase interface {
	SearchFlights(ctx context.Context, req FlightSearchRequest) *FlightSearchResult
}

// FlightSearchRequest carries city names and YYYY-MM-DD dates.
type FlightSearchRequest struct {
	OriginCity      string                  `json:"origin"`
	DestinationCity string                  `json:"destination"`
	StartDate       string                  `json:"startDate"`
	EndDate         string                  `json:"endDate"`
	Preference      domain.FlightPreference `json:"preference"`
}

// SearchCriteria echoes the resolved airport codes and provider dates.
type SearchCriteria struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
}

type FlightSearchResult struct {
	Offers     []domain.Flight         `json:"flights"`
	IsFallback bool                    `json:"isFallback"`
	Preference domain.FlightPreference `json:"preference"`
	Criteria   SearchCriteria          `json:"searchCriteria"`
}

// Source labels the result for display: "live" or "estimated".
func (r *FlightSearchResult) Source() string {
	if r.IsFallback {
		return "estimated"
	}
	return "live"
}
