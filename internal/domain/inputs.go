package domain

import (
	"math"
	"time"
)

// DateLayout is the wire format for trip dates.
const DateLayout = "2006-01-02"

// CollectedInputs accumulates the answers gathered by the conversation.
// Pointer fields are nil until their stage has been completed.
type CollectedInputs struct {
	OriginCity         string              `json:"originCity,omitempty"`
	DistancePreference *DistancePreference `json:"distancePreference,omitempty"`
	Description        string              `json:"freeTextDescription,omitempty"`
	StartDate          *time.Time          `json:"startDate,omitempty"`
	EndDate            *time.Time          `json:"endDate,omitempty"`
	FlightPreference   *FlightPreference   `json:"flightPreference,omitempty"`
}

// TripDays returns ceil((end-start)/24h).
func TripDays(start, end time.Time) int {
	return int(math.Ceil(end.Sub(start).Hours() / 24))
}

type ConversationTurn struct {
	ID        string    `json:"id"`
	Speaker   Speaker   `json:"speaker"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}
