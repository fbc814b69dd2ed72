package conversation

import (
	"fmt"
	"strings"

	"github.com/Sgowda7697/Dream2Reality/internal/domain"
)

// Greeting is shown before the first turn. It is not part of the turn log.
const Greeting = "Hi! I'm your trip planner. Which city are you travelling from?"

// SamplePrompts are ready-made trip descriptions offered to the user.
var SamplePrompts = []string{
	"Beach vacation with water sports, 5 days, Goa",
	"Royal palaces and culture, 3 days, Rajasthan",
	"Mountain adventure and trekking, 4 days, Himachal",
}

const (
	minOriginLen      = 3
	minDescriptionLen = 15
)

func askDistance(origin string) string {
	return fmt.Sprintf("Great, starting from %s. Would you like to go somewhere nearby, faraway, or are you open to both?", origin)
}

func distancePhrase(d domain.DistancePreference) string {
	switch d {
	case domain.DistanceNearby:
		return "destinations close to home"
	case domain.DistanceFaraway:
		return "destinations far from home"
	default:
		return "destinations both near and far"
	}
}

func askDescription(d domain.DistancePreference) string {
	return fmt.Sprintf("Noted, %s. Now describe your dream trip: activities, duration, budget.", distancePhrase(d))
}

// augmentPrompt embeds the origin and distance preference into the
// description sent to plan generation.
func augmentPrompt(description, origin string, d domain.DistancePreference) string {
	return fmt.Sprintf("%s. Travelling from %s, looking for %s.",
		strings.TrimRight(description, ". "), origin, distancePhrase(d))
}

func planReady(p *domain.Plan) string {
	n := len(p.DestinationOptions)
	noun := "destinations"
	if n == 1 {
		noun = "destination"
	}
	return fmt.Sprintf("I found %d %s for your %d-day trip. Browse the destinations or filter them by category.", n, noun, p.DurationDays)
}

func planFailed(err error) string {
	return fmt.Sprintf("Sorry, I couldn't generate a plan: %v. Please try describing your trip again.", err)
}

const (
	userShowDestinations = "Show me the destinations"
	userShowFilters      = "Let me filter the options"
	userRequestFeedback  = "I have feedback on these options"
	userSatisfied        = "These options look good"
	userNotSatisfied     = "Show me different options"
	userApproved         = "The itinerary looks good"
	userNotApproved      = "I'd like to change something"
	userBookFlights      = "Show me flights"
	userBookHotels       = "Show me hotels"

	botPickDestination   = "Here are your destination options. Pick one to continue."
	botPickFilter        = "Which kind of destination are you after?"
	botAskFeedback       = "Are these options what you were looking for?"
	botFeedbackThanks    = "Great! Pick a destination to continue."
	botDifferentOptions  = "Thanks for letting me know. I can't fetch a new set yet, so here are the current options again. Try filtering them, or start over with a different description."
	botAskDates          = "When are you travelling? Enter a start and end date (YYYY-MM-DD)."
	botAskItinFeedback   = "Does this itinerary look good to you?"
	botAskModification   = "What would you like to change?"
	botBookingOptions    = "Wonderful! What would you like to book: flights or hotels?"
	botAskFlightPriority = "How should I pick flights: cheapest or good timing?"
)

func userFilter(filter string) string {
	return "Filter by " + filter
}

func botFiltered(filter string, n int) string {
	if n == 0 {
		return fmt.Sprintf("No destinations match %q. Showing none; pick another filter or go back to all.", filter)
	}
	return fmt.Sprintf("Showing %d destination(s) matching %q.", n, filter)
}

func userChoseDestination(name string) string {
	return "I'd like to go to " + name
}

func userDates(start, end string) string {
	return fmt.Sprintf("From %s to %s", start, end)
}

func botTripLength(days int) string {
	return fmt.Sprintf("That's a %d-day trip. %s", days, botAskFlightPriority)
}

func userPreference(p domain.FlightPreference) string {
	if p == domain.PreferenceGoodTiming {
		return "Good timing"
	}
	return "Cheapest"
}

func botFlightsFound(offers []domain.Flight, pref domain.FlightPreference, destination string) string {
	if len(offers) == 0 {
		return fmt.Sprintf("I couldn't find flights to %s. Here's your itinerary.", destination)
	}
	return fmt.Sprintf("I found %d flights to %s sorted by %s. Here's your itinerary.", len(offers), destination, pref.Label())
}

func botModificationNoted(text string) string {
	return fmt.Sprintf("Noted: %q. I can't rebuild the itinerary from changes yet, so I've kept your request with the plan. %s", text, botAskItinFeedback)
}

func botShowFlights(n int) string {
	return fmt.Sprintf("Here are the %d best flight options for your trip.", n)
}

func botShowHotels(destination string, n int) string {
	if n == 0 {
		return fmt.Sprintf("I don't have hotel listings for %s yet.", destination)
	}
	return fmt.Sprintf("Here are %d hotels in %s.", n, destination)
}
