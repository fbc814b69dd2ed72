package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidPlan is wrapped by every Plan validation failure.
var ErrInvalidPlan = errors.New("invalid plan")

type DestinationOption struct {
	Name    string   `json:"name"`
	Country string   `json:"country,omitempty"`
	Summary string   `json:"summary,omitempty"`
	Tags    []string `json:"tags"`
}

// Activity is a single timed entry in an itinerary day. Lat and Lng are
// either both set or both nil.
type Activity struct {
	Time        string   `json:"time"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Lat         *float64 `json:"lat,omitempty"`
	Lng         *float64 `json:"lng,omitempty"`
}

// HasLocation reports whether the activity carries coordinates.
func (a Activity) HasLocation() bool {
	return a.Lat != nil && a.Lng != nil
}

type ItineraryDay struct {
	Day        int        `json:"day"`
	Title      string     `json:"title"`
	Activities []Activity `json:"activities"`
}

type Hotel struct {
	Name          string  `json:"name"`
	Area          string  `json:"area,omitempty"`
	PricePerNight float64 `json:"pricePerNight"`
}

// Plan is the aggregate produced for one planning request.
type Plan struct {
	UserQuery          string              `json:"userQuery"`
	DurationDays       int                 `json:"durationDays"`
	Budget             Budget              `json:"budget"`
	Themes             []string            `json:"themes"`
	DestinationOptions []DestinationOption `json:"destinationOptions"`
	ChosenDestination  string              `json:"chosenDestination,omitempty"`
	Flights            []Flight            `json:"flights"`
	Hotels             []Hotel             `json:"hotels"`
	Itinerary          []ItineraryDay      `json:"itinerary"`
}

// Clone returns a deep copy of the plan. Nil slices stay nil.
func (p *Plan) Clone() *Plan {
	if p == nil {
		return nil
	}
	out := *p
	out.Themes = cloneSlice(p.Themes)
	out.Flights = cloneSlice(p.Flights)
	out.Hotels = cloneSlice(p.Hotels)
	if p.DestinationOptions != nil {
		out.DestinationOptions = make([]DestinationOption, len(p.DestinationOptions))
		for i, d := range p.DestinationOptions {
			d.Tags = cloneSlice(d.Tags)
			out.DestinationOptions[i] = d
		}
	}
	if p.Itinerary != nil {
		out.Itinerary = make([]ItineraryDay, len(p.Itinerary))
		for i, day := range p.Itinerary {
			if day.Activities != nil {
				acts := make([]Activity, len(day.Activities))
				for j, a := range day.Activities {
					a.Lat = cloneFloat(a.Lat)
					a.Lng = cloneFloat(a.Lng)
					acts[j] = a
				}
				day.Activities = acts
			}
			out.Itinerary[i] = day
		}
	}
	return &out
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	return append(make([]T, 0, len(in)), in...)
}

func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

// HasDestination reports whether name matches one of the plan's options,
// ignoring case and surrounding whitespace.
func (p *Plan) HasDestination(name string) bool {
	_, ok := p.FindDestination(name)
	return ok
}

// FindDestination returns the option whose name matches name.
func (p *Plan) FindDestination(name string) (DestinationOption, bool) {
	want := strings.ToLower(strings.TrimSpace(name))
	for _, d := range p.DestinationOptions {
		if strings.ToLower(strings.TrimSpace(d.Name)) == want {
			return d, true
		}
	}
	return DestinationOption{}, false
}

// Validate checks the plan invariants and returns an error wrapping
// ErrInvalidPlan for the first violation found.
func (p *Plan) Validate() error {
	if p.DurationDays < 1 {
		return fmt.Errorf("%w: durationDays must be >= 1, got %d", ErrInvalidPlan, p.DurationDays)
	}
	if !validBudgets[p.Budget] {
		return fmt.Errorf("%w: budget %q must be low, medium or high", ErrInvalidPlan, p.Budget)
	}
	if len(p.DestinationOptions) == 0 {
		return fmt.Errorf("%w: at least one destination option is required", ErrInvalidPlan)
	}
	for i, d := range p.DestinationOptions {
		if strings.TrimSpace(d.Name) == "" {
			return fmt.Errorf("%w: destination option %d has no name", ErrInvalidPlan, i+1)
		}
	}
	if p.ChosenDestination != "" && !p.HasDestination(p.ChosenDestination) {
		return fmt.Errorf("%w: chosen destination %q is not among the options", ErrInvalidPlan, p.ChosenDestination)
	}
	for i, day := range p.Itinerary {
		if day.Day != i+1 {
			return fmt.Errorf("%w: itinerary day %d is numbered %d", ErrInvalidPlan, i+1, day.Day)
		}
		for j, a := range day.Activities {
			if (a.Lat == nil) != (a.Lng == nil) {
				return fmt.Errorf("%w: day %d activity %d has only one coordinate", ErrInvalidPlan, day.Day, j+1)
			}
		}
	}
	for i, f := range p.Flights {
		if err := f.Validate(); err != nil {
			return fmt.Errorf("%w: flight %d: %v", ErrInvalidPlan, i+1, err)
		}
	}
	for i, h := range p.Hotels {
		if h.PricePerNight < 0 {
			return fmt.Errorf("%w: hotel %d has negative price", ErrInvalidPlan, i+1)
		}
	}
	return nil
}
