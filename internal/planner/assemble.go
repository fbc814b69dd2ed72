package planner

import (
	"strings"

	"github.com/Sgowda7697/Dream2Reality/internal/catalog"
	"github.com/Sgowda7697/Dream2Reality/internal/domain"
)

const (
	DefaultDurationDays = 3
	DefaultBudget       = domain.BudgetMedium
	DefaultDestination  = "Goa"
)

// ChooseDestination picks the first candidate, or DefaultDestination when
// the extraction produced none.
func ChooseDestination(ext *Extraction) string {
	if ext != nil && len(ext.DestinationOptions) > 0 {
		return strings.TrimSpace(ext.DestinationOptions[0].Name)
	}
	return DefaultDestination
}

// DurationOf returns the extracted duration, or DefaultDurationDays when it
// is absent or not positive.
func DurationOf(ext *Extraction) int {
	if ext == nil {
		return DefaultDurationDays
	}
	if days := domain.IntFromPtrWithDefault(DefaultDurationDays, ext.DurationDays); days > 0 {
		return days
	}
	return DefaultDurationDays
}

// Assemble merges an extraction and itinerary into a Plan, applying literal
// defaults for missing fields and attaching catalog entries for the chosen
// destination. The result is not validated.
func Assemble(query string, ext *Extraction, itinerary []domain.ItineraryDay) *domain.Plan {
	if ext == nil {
		ext = &Extraction{}
	}
	chosen := ChooseDestination(ext)

	options := ext.DestinationOptions
	if len(options) == 0 {
		options = []domain.DestinationOption{{Name: chosen}}
	}
	for i := range options {
		options[i].Tags = domain.NonNilStrings(options[i].Tags)
	}

	budget := domain.Budget(strings.ToLower(strings.TrimSpace(ext.Budget)))
	if budget == "" {
		budget = DefaultBudget
	}
	if itinerary == nil {
		itinerary = []domain.ItineraryDay{}
	}

	entry := catalog.Lookup(chosen)
	return &domain.Plan{
		UserQuery:          domain.CoalesceStr(strings.TrimSpace(ext.UserQuery), query),
		DurationDays:       DurationOf(ext),
		Budget:             budget,
		Themes:             domain.NonNilStrings(ext.Themes),
		DestinationOptions: options,
		ChosenDestination:  chosen,
		Flights:            entry.Flights,
		Hotels:             entry.Hotels,
		Itinerary:          itinerary,
	}
}
