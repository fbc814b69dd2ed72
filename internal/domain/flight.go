package domain

import "fmt"

// Flight is a round-trip offer. Return times are empty for one-way catalog
// entries.
type Flight struct {
	ID                string  `json:"id,omitempty"`
	From              string  `json:"from"`
	To                string  `json:"to"`
	Airline           string  `json:"airline"`
	FlightNumber      string  `json:"flightNumber,omitempty"`
	DepartTime        string  `json:"departTime,omitempty"`
	ArrivalTime       string  `json:"arrivalTime,omitempty"`
	Duration          string  `json:"duration,omitempty"`
	Price             float64 `json:"price"`
	Currency          string  `json:"currency"`
	Stops             int     `json:"stops"`
	ReturnDepartTime  string  `json:"returnDepartTime,omitempty"`
	ReturnArrivalTime string  `json:"returnArrivalTime,omitempty"`
}

// StopsFromSegments derives the stop count for a leg with n segments.
// A leg reported without segments counts as a single direct segment.
func StopsFromSegments(n int) int {
	if n < 1 {
		return 0
	}
	return n - 1
}

func (f Flight) Validate() error {
	if f.Price < 0 {
		return fmt.Errorf("price must be non-negative, got %v", f.Price)
	}
	if f.Stops < 0 {
		return fmt.Errorf("stops must be non-negative, got %d", f.Stops)
	}
	return nil
}
