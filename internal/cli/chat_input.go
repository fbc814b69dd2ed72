package cli

import (
	"context"
	"strconv"
	"strings"

	"github.com/Sgowda7697/Dream2Reality/internal/cli/formatter"
	"github.com/Sgowda7697/Dream2Reality/internal/conversation"
	"github.com/Sgowda7697/Dream2Reality/internal/domain"
)

// chatAction is one controller operation derived from a line of input.
type chatAction struct {
	// slow marks operations that call a service; the view shows a spinner.
	slow    bool
	message string
	run     func(ctx context.Context, c *conversation.Controller) error
}

func action(run func(ctx context.Context, c *conversation.Controller) error) chatAction {
	return chatAction{run: run}
}

func slowAction(message string, run func(ctx context.Context, c *conversation.Controller) error) chatAction {
	return chatAction{slow: true, message: message, run: run}
}

func inputError(field, message string) error {
	return &conversation.ValidationError{Field: field, Message: message}
}

// parseChatInput maps a line typed at the given state onto an operation.
// Numbered choices follow the order shown by stageChoices.
func parseChatInput(st conversation.State, line string) (chatAction, error) {
	line = strings.TrimSpace(line)
	word := strings.ToLower(line)

	switch s := st.(type) {
	case conversation.StartState:
		return action(func(_ context.Context, c *conversation.Controller) error {
			return c.SubmitOrigin(line)
		}), nil

	case conversation.DistancePreferenceState:
		d, ok := domain.ParseDistancePreference(word)
		switch word {
		case "1":
			d, ok = domain.DistanceNearby, true
		case "2":
			d, ok = domain.DistanceFaraway, true
		case "3":
			d, ok = domain.DistanceBoth, true
		}
		if !ok {
			return chatAction{}, inputError("distance preference", "choose nearby, faraway or both")
		}
		return action(func(_ context.Context, c *conversation.Controller) error {
			return c.ChooseDistance(d)
		}), nil

	case conversation.LocationState:
		desc := line
		if n, ok := choiceIndex(word, len(conversation.SamplePrompts)); ok {
			desc = conversation.SamplePrompts[n]
		}
		return slowAction("Planning your trip", func(ctx context.Context, c *conversation.Controller) error {
			return c.SubmitDescription(ctx, desc)
		}), nil

	case conversation.OptionsState:
		if s.Err != nil {
			return slowAction("Planning your trip", func(ctx context.Context, c *conversation.Controller) error {
				return c.SubmitDescription(ctx, line)
			}), nil
		}
		switch word {
		case "1", "destinations", "show":
			return action(func(_ context.Context, c *conversation.Controller) error {
				return c.ShowDestinations()
			}), nil
		case "2", "filter", "filters":
			return action(func(_ context.Context, c *conversation.Controller) error {
				return c.ShowFilters()
			}), nil
		}
		return chatAction{}, inputError("choice", "type 1 to browse destinations or 2 to filter")

	case conversation.DestinationsState:
		visible := s.Visible()
		switch word {
		case "f", "filter", "filters":
			return action(func(_ context.Context, c *conversation.Controller) error {
				return c.ShowFilters()
			}), nil
		case "feedback":
			return action(func(_ context.Context, c *conversation.Controller) error {
				return c.RequestFeedback()
			}), nil
		}
		name := line
		if n, ok := choiceIndex(word, len(visible)); ok {
			name = visible[n].Name
		}
		return action(func(_ context.Context, c *conversation.Controller) error {
			return c.SelectDestination(name)
		}), nil

	case conversation.FiltersState:
		filter := word
		if n, ok := choiceIndex(word, len(conversation.FilterCategories)); ok {
			filter = conversation.FilterCategories[n]
		}
		return action(func(_ context.Context, c *conversation.Controller) error {
			return c.ApplyFilter(filter)
		}), nil

	case conversation.DestinationsFeedbackState:
		yes, ok := parseYesNo(word)
		if !ok {
			return chatAction{}, inputError("answer", "type yes or no")
		}
		return action(func(_ context.Context, c *conversation.Controller) error {
			return c.SubmitDestinationFeedback(yes)
		}), nil

	case conversation.FlightDatesState:
		start, end, ok := splitDates(line)
		if !ok {
			return chatAction{}, inputError("dates", "enter a start and end date, e.g. 2025-03-01 2025-03-05")
		}
		return action(func(_ context.Context, c *conversation.Controller) error {
			return c.SubmitDates(start, end)
		}), nil

	case conversation.FlightPreferenceState:
		pref, ok := domain.ParseFlightPreference(word)
		switch word {
		case "1":
			pref, ok = domain.PreferenceCheapest, true
		case "2", "timing":
			pref, ok = domain.PreferenceGoodTiming, true
		}
		if !ok {
			return chatAction{}, inputError("flight preference", "choose cheapest or good timing")
		}
		return slowAction("Searching flights to "+s.Destination, func(ctx context.Context, c *conversation.Controller) error {
			return c.ChoosePreference(ctx, pref)
		}), nil

	case conversation.ItineraryFeedbackState:
		yes, ok := parseYesNo(word)
		if !ok {
			return chatAction{}, inputError("answer", "type yes or no")
		}
		return action(func(_ context.Context, c *conversation.Controller) error {
			return c.SubmitItineraryFeedback(yes)
		}), nil

	case conversation.ModifyItineraryState:
		return action(func(_ context.Context, c *conversation.Controller) error {
			return c.SubmitModification(line)
		}), nil

	case conversation.BookingOptionsState:
		switch word {
		case "1", "flights", "flight":
			return action(func(_ context.Context, c *conversation.Controller) error {
				return c.ShowBookingFlights()
			}), nil
		case "2", "hotels", "hotel":
			return action(func(_ context.Context, c *conversation.Controller) error {
				return c.ShowBookingHotels()
			}), nil
		}
		return chatAction{}, inputError("choice", "type 1 for flights or 2 for hotels")

	case conversation.BookingFlightsState, conversation.BookingHotelsState:
		return chatAction{}, inputError("input", "your trip is planned; use /export to save it or /reset to start over")
	}

	return chatAction{}, inputError("input", "please wait a moment")
}

// stageChoices renders the hint shown under the transcript.
func stageChoices(st conversation.State) string {
	switch s := st.(type) {
	case conversation.StartState:
		return formatter.Dim("Type your city of origin")
	case conversation.DistancePreferenceState:
		return formatter.FormatChoices("Nearby", "Faraway", "Both")
	case conversation.LocationState:
		return formatter.Dim("Describe your trip, or type /samples for ideas")
	case conversation.OptionsState:
		if s.Err != nil {
			return formatter.Dim("Describe your trip again")
		}
		return formatter.FormatChoices("Show destinations", "Filter options")
	case conversation.DestinationsState:
		return formatter.Dim("Pick a destination by number or name, or type filter or feedback")
	case conversation.FiltersState:
		return formatter.FormatChoices(conversation.FilterCategories...)
	case conversation.DestinationsFeedbackState, conversation.ItineraryFeedbackState:
		return formatter.FormatChoices("Yes", "No")
	case conversation.FlightDatesState:
		return formatter.Dim("Start and end date, e.g. 2025-03-01 2025-03-05")
	case conversation.FlightPreferenceState:
		return formatter.FormatChoices("Cheapest", "Good timing")
	case conversation.ModifyItineraryState:
		return formatter.Dim("Describe the change")
	case conversation.BookingOptionsState:
		return formatter.FormatChoices("Flights", "Hotels")
	case conversation.BookingFlightsState, conversation.BookingHotelsState:
		return formatter.Dim("/export to save the trip, /reset to plan another")
	}
	return ""
}

// choiceIndex converts a 1-based choice into an index below n.
func choiceIndex(word string, n int) (int, bool) {
	i, err := strconv.Atoi(word)
	if err != nil || i < 1 || i > n {
		return 0, false
	}
	return i - 1, true
}

func parseYesNo(word string) (bool, bool) {
	switch word {
	case "1", "y", "yes":
		return true, true
	case "2", "n", "no":
		return false, true
	}
	return false, false
}

// splitDates accepts "start end", "start,end" and "start to end".
func splitDates(line string) (string, string, bool) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	var parts []string
	for _, f := range fields {
		if strings.EqualFold(f, "to") {
			continue
		}
		parts = append(parts, f)
	}
	if len(parts) != 2 {
		return "", "", false
	}
	return parts[0], parts[1], true
}
