package conversation

import (
	"strings"
	"time"

	"github.com/Sgowda7697/Dream2Reality/internal/domain"
)

// Stage names a point in the dialogue.
type Stage string

const (
	StageStart                Stage = "start"
	StageLocation             Stage = "location"
	StageDistancePreference   Stage = "distance_preference"
	StagePlanning             Stage = "planning"
	StageOptions              Stage = "options"
	StageDestinations         Stage = "destinations"
	StageFilters              Stage = "filters"
	StageDestinationsFeedback Stage = "destinations_feedback"
	StageFlightDates          Stage = "flight_dates"
	StageFlightPreference     Stage = "flight_preference"
	StageItinerary            Stage = "itinerary"
	StageItineraryFeedback    Stage = "itinerary_feedback"
	StageModifyItinerary      Stage = "modify_itinerary"
	StageBookingOptions       Stage = "booking_options"
	StageBookingFlights       Stage = "flights"
	StageBookingHotels        Stage = "hotels"
)

// State is the stage-specific value held by the controller. Each
// implementation carries only the fields that are meaningful in its stage.
type State interface {
	Stage() Stage
	isState()
}

// StartState waits for the origin city.
type StartState struct{}

// DistancePreferenceState waits for nearby, faraway or both.
type DistancePreferenceState struct {
	Origin string
}

// LocationState waits for the free-text trip description.
type LocationState struct {
	Origin   string
	Distance domain.DistancePreference
}

// PlanningState is held while the plan request is outstanding.
type PlanningState struct {
	Prompt string
}

// OptionsState follows plan generation. Err is set when generation failed,
// in which case Plan is nil and a new description may be submitted.
type OptionsState struct {
	Plan *domain.Plan
	Err  error
}

// DestinationsState lists the plan's destination options, narrowed by Filter
// when one was applied.
type DestinationsState struct {
	Plan   *domain.Plan
	Filter string
}

// Visible returns the destination options matching the active filter.
func (s DestinationsState) Visible() []domain.DestinationOption {
	if s.Plan == nil {
		return nil
	}
	return FilterDestinations(s.Plan.DestinationOptions, s.Filter)
}

// detachPlan returns s with any plan it carries replaced by a copy.
func detachPlan(s State) State {
	switch st := s.(type) {
	case OptionsState:
		st.Plan = st.Plan.Clone()
		return st
	case DestinationsState:
		st.Plan = st.Plan.Clone()
		return st
	case FiltersState:
		st.Plan = st.Plan.Clone()
		return st
	case DestinationsFeedbackState:
		st.Plan = st.Plan.Clone()
		return st
	}
	return s
}

// FiltersState offers the filter categories.
type FiltersState struct {
	Plan *domain.Plan
}

// DestinationsFeedbackState asks whether the options suit the traveller.
type DestinationsFeedbackState struct {
	Plan *domain.Plan
}

// FlightDatesState waits for start and end dates.
type FlightDatesState struct {
	Destination string
}

// FlightPreferenceState waits for cheapest or good_timing.
type FlightPreferenceState struct {
	Destination string
	StartDate   time.Time
	EndDate     time.Time
	Days        int
}

// ItineraryState shows the plan and the flights found for it. The controller
// moves on to ItineraryFeedbackState by itself after the feedback delay.
type ItineraryState struct {
	Destination string
	Days        int
	Preference  domain.FlightPreference
	Offers      []domain.Flight
	IsFallback  bool
}

// ItineraryFeedbackState asks whether the itinerary is approved.
type ItineraryFeedbackState struct {
	Destination string
}

// ModifyItineraryState waits for a free-text change request.
type ModifyItineraryState struct {
	Destination string
}

// BookingOptionsState offers flights or hotels.
type BookingOptionsState struct {
	Destination string
}

// BookingFlightsState shows the ranked flight offers.
type BookingFlightsState struct {
	Offers     []domain.Flight
	IsFallback bool
}

// BookingHotelsState shows the catalog hotels for the destination.
type BookingHotelsState struct {
	Destination string
	Hotels      []domain.Hotel
}

func (StartState) Stage() Stage { return StageStart }
func (DistancePreferenceState) Stage() Stage { return StageDistancePreference }
func (LocationState) Stage() Stage { return StageLocation }
func (PlanningState) Stage() Stage { return StagePlanning }
func (OptionsState) Stage() Stage { return StageOptions }
func (DestinationsState) Stage() Stage { return StageDestinations }
func (FiltersState) Stage() Stage { return StageFilters }
func (DestinationsFeedbackState) Stage() Stage { return StageDestinationsFeedback }
func (FlightDatesState) Stage() Stage { return StageFlightDates }
func (FlightPreferenceState) Stage() Stage { return StageFlightPreference }
func (ItineraryState) Stage() Stage { return StageItinerary }
func (ItineraryFeedbackState) Stage() Stage { return StageItineraryFeedback }
func (ModifyItineraryState) Stage() Stage { return StageModifyItinerary }
func (BookingOptionsState) Stage() Stage { return StageBookingOptions }
func (BookingFlightsState) Stage() Stage { return StageBookingFlights }
func (BookingHotelsState) Stage() Stage { return StageBookingHotels }

func (StartState) isState() {}
func (DistancePreferenceState) isState() {}
func (LocationState) isState() {}
func (PlanningState) isState() {}
func (OptionsState) isState() {}
func (DestinationsState) isState() {}
func (FiltersState) isState() {}
func (DestinationsFeedbackState) isState() {}
func (FlightDatesState) isState() {}
func (FlightPreferenceState) isState() {}
func (ItineraryState) isState() {}
func (ItineraryFeedbackState) isState() {}
func (ModifyItineraryState) isState() {}
func (BookingOptionsState) isState() {}
func (BookingFlightsState) isState() {}
func (BookingHotelsState) isState() {}

// FilterAll disables destination filtering.
const FilterAll = "all"

// FilterCategories are the categories offered in the filters stage.
var FilterCategories = []string{FilterAll, "beach", "mountains", "culture", "adventure", "nature"}

// FilterDestinations keeps the options whose tags, summary or name mention
// filter. An empty filter or FilterAll keeps everything.
func FilterDestinations(options []domain.DestinationOption, filter string) []domain.DestinationOption {
	filter = strings.ToLower(strings.TrimSpace(filter))
	if filter == "" || filter == FilterAll {
		return options
	}
	var out []domain.DestinationOption
	for _, opt := range options {
		if matchesFilter(opt, filter) {
			out = append(out, opt)
		}
	}
	return out
}

func matchesFilter(opt domain.DestinationOption, filter string) bool {
	for _, tag := range opt.Tags {
		if strings.Contains(strings.ToLower(tag), filter) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(opt.Summary), filter) ||
		strings.Contains(strings.ToLower(opt.Name), filter)
}
