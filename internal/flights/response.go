package flights

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/Sgowda7697/Dream2Reality/internal/domain"
)

const (
	unknownField    = "N/A"
	unknownAirline  = "Airlines"
	defaultCurrency = "INR"
)

// SearchResponse is the subset of the provider payload that is consumed.
type SearchResponse struct {
	SearchResults []SearchResult `json:"searchResults"`
}

type SearchResult struct {
	FlightOptions []FlightOption `json:"flightOptions"`
}

type FlightOption struct {
	ID      flexString `json:"id"`
	Legs    []Leg      `json:"legs"`
	Pricing *Pricing   `json:"pricing"`
}

type Leg struct {
	Duration flexString `json:"duration"`
	Segments []Segment  `json:"segments"`
}

type Segment struct {
	MarketingAirline *Airline   `json:"marketingAirline"`
	FlightNumber     flexString `json:"flightNumber"`
	DepartTime       string     `json:"departTime"`
	ArrivalTime      string     `json:"arrivalTime"`
}

type Airline struct {
	Name string `json:"name"`
}

type Pricing struct {
	TotalPrice *float64 `json:"totalPrice"`
	Currency   string   `json:"currency"`
}

// flexString decodes JSON strings and numbers alike. The provider reports
// some identifiers and durations as numbers depending on response version.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

// Project maps a provider option into a Flight, substituting placeholder
// values for missing sub-fields.
func Project(opt FlightOption, originCode, destCode string) domain.Flight {
	f := domain.Flight{
		ID:                string(opt.ID),
		From:              originCode,
		To:                destCode,
		Airline:           unknownAirline,
		FlightNumber:      unknownField,
		DepartTime:        unknownField,
		ArrivalTime:       unknownField,
		Duration:          unknownField,
		Currency:          defaultCurrency,
		ReturnDepartTime:  unknownField,
		ReturnArrivalTime: unknownField,
	}
	if opt.Pricing != nil {
		f.Price = domain.Float64FromPtrWithDefault(0, opt.Pricing.TotalPrice)
		f.Currency = domain.CoalesceStr(opt.Pricing.Currency, defaultCurrency)
	}

	if len(opt.Legs) > 0 {
		out := opt.Legs[0]
		f.Duration = domain.CoalesceStr(string(out.Duration), unknownField)
		f.Stops = domain.StopsFromSegments(len(out.Segments))
		if len(out.Segments) > 0 {
			seg := out.Segments[0]
			if seg.MarketingAirline != nil {
				f.Airline = domain.CoalesceStr(strings.TrimSpace(seg.MarketingAirline.Name), unknownAirline)
			}
			f.FlightNumber = domain.CoalesceStr(string(seg.FlightNumber), unknownField)
			f.DepartTime = domain.CoalesceStr(seg.DepartTime, unknownField)
			f.ArrivalTime = domain.CoalesceStr(seg.ArrivalTime, unknownField)
		}
	}
	if len(opt.Legs) > 1 && len(opt.Legs[1].Segments) > 0 {
		seg := opt.Legs[1].Segments[0]
		f.ReturnDepartTime = domain.CoalesceStr(seg.DepartTime, unknownField)
		f.ReturnArrivalTime = domain.CoalesceStr(seg.ArrivalTime, unknownField)
	}
	if f.Price < 0 {
		f.Price = 0
	}
	return f
}
