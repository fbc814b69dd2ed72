package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Sgowda7697/Dream2Reality/internal/app"
	"github.com/Sgowda7697/Dream2Reality/internal/domain"
	"github.com/Sgowda7697/Dream2Reality/internal/flights"
)

// MaxFlightOffers is the number of ranked offers kept from a search.
const MaxFlightOffers = 3

type flightService struct {
	provider flights.Provider
	observer UseCaseObserver
}

// NewFlightService creates the flight search use case.
func NewFlightService(provider flights.Provider, observers ...UseCaseObserver) app.FlightSearchUseCase {
	return &flightService{
		provider: provider,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *flightService) SearchFlights(ctx context.Context, req app.FlightSearchRequest) *app.FlightSearchResult {
	startedAt := time.Now()
	pref := req.Preference
	if pref != domain.PreferenceCheapest {
		pref = domain.PreferenceGoodTiming
	}

	result := &app.FlightSearchResult{
		Preference: pref,
		Criteria: app.SearchCriteria{
			Origin:      flights.ResolveAirportCode(req.OriginCity),
			Destination: flights.ResolveAirportCode(req.DestinationCity),
			StartDate:   req.StartDate,
			EndDate:     req.EndDate,
		},
	}

	offers, err := s.searchLive(ctx, req, pref, &result.Criteria)
	if err != nil {
		// The fixed set is a substitute, not an error; callers only see IsFallback.
		offers = flights.MockFlights()
		result.IsFallback = true
	}
	ranked := flights.Rank(offers, pref)
	if len(ranked) > MaxFlightOffers {
		ranked = ranked[:MaxFlightOffers]
	}
	result.Offers = ranked

	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "search-flights",
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Err:       err,
		Fallback:  result.IsFallback,
		Fields: map[string]any{
			"origin_code":      result.Criteria.Origin,
			"destination_code": result.Criteria.Destination,
			"preference":       string(pref),
			"offers":           len(result.Offers),
		},
	})
	return result
}

// searchLive runs authentication and search against the provider and
// returns every projected option from the first result set. Criteria dates
// are rewritten to provider format on the way.
func (s *flightService) searchLive(ctx context.Context, req app.FlightSearchRequest, pref domain.FlightPreference, criteria *app.SearchCriteria) ([]domain.Flight, error) {
	if s.provider == nil {
		return nil, fmt.Errorf("%w: no provider", flights.ErrSearchFailed)
	}
	token, err := s.provider.Authenticate(ctx)
	if err != nil {
		return nil, err
	}

	departDate, err := flights.ProviderDate(req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: start date: %v", flights.ErrSearchFailed, err)
	}
	returnDate, err := flights.ProviderDate(req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: end date: %v", flights.ErrSearchFailed, err)
	}
	criteria.StartDate, criteria.EndDate = departDate, returnDate

	searchReq := flights.NewRoundTripRequest(criteria.Origin, criteria.Destination, departDate, returnDate, pref)
	resp, err := s.provider.Search(ctx, token, searchReq)
	if err != nil {
		return nil, err
	}
	if resp == nil || len(resp.SearchResults) == 0 {
		return nil, fmt.Errorf("%w: no search results", flights.ErrMalformedResponse)
	}

	options := resp.SearchResults[0].FlightOptions
	out := make([]domain.Flight, 0, len(options))
	for _, opt := range options {
		out = append(out, flights.Project(opt, criteria.Origin, criteria.Destination))
	}
	return out, nil
}
