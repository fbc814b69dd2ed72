package flights

import (
	"fmt"
	"time"

	"github.com/Sgowda7697/Dream2Reality/internal/domain"
)

const (
	providerDateLayout = "02/01/2006"

	cheapestOptionCap = 1000
	defaultOptionCap  = 500
)

// SearchRequest is the provider's round-trip search body.
type SearchRequest struct {
	SearchCriteria SearchCriteria `json:"searchCriteria"`
	SearchIntents  SearchIntents  `json:"searchIntents"`
}

type SearchCriteria struct {
	SellingCountryCode       string   `json:"sellingCountryCode"`
	SellingCurrencyCode      string   `json:"sellingCurrencyCode"`
	MaxRequiredFlightOptions int      `json:"maxRequiredFlightOptions"`
	FareLimitingStrategyList []string `json:"fareLimitingStrategyList"`
	FlightOptionFilter       []string `json:"flightOptionFilter"`
	ResponseVersion          string   `json:"responseVersion"`
	FareTypes                []string `json:"fareTypes"`
}

type SearchIntents struct {
	Sectors []Sector `json:"sectors"`
}

type Sector struct {
	Index       int       `json:"index"`
	Origin      string    `json:"origin"`
	Destination string    `json:"destination"`
	DepartDate  string    `json:"departDate"`
	CabinType   string    `json:"cabinType"`
	PaxInfos    []PaxInfo `json:"paxInfos"`
}

type PaxInfo struct {
	PaxType     string `json:"paxType"`
	PaxCount    int    `json:"paxCount"`
	PaxFareType string `json:"paxFareType"`
}

// ProviderDate converts a YYYY-MM-DD date to the provider's DD/MM/YYYY form.
func ProviderDate(isoDate string) (string, error) {
	t, err := time.Parse(domain.DateLayout, isoDate)
	if err != nil {
		return "", fmt.Errorf("parsing date %q: %w", isoDate, err)
	}
	return t.Format(providerDateLayout), nil
}

// OptionCap is the number of options requested from the provider. Price
// ranking benefits from a wider pool than timing ranking does.
func OptionCap(pref domain.FlightPreference) int {
	if pref == domain.PreferenceCheapest {
		return cheapestOptionCap
	}
	return defaultOptionCap
}

// NewRoundTripRequest builds a two-sector economy search for one adult.
// Dates must already be in provider format.
func NewRoundTripRequest(originCode, destCode, departDate, returnDate string, pref domain.FlightPreference) SearchRequest {
	return SearchRequest{
		SearchCriteria: SearchCriteria{
			SellingCountryCode:       "IN",
			SellingCurrencyCode:      "INR",
			MaxRequiredFlightOptions: OptionCap(pref),
			FareLimitingStrategyList: []string{"PRICE"},
			FlightOptionFilter:       []string{},
			ResponseVersion:          "VERSION_V6",
			FareTypes:                []string{"RETAIL"},
		},
		SearchIntents: SearchIntents{
			Sectors: []Sector{
				newSector(1, originCode, destCode, departDate),
				newSector(2, destCode, originCode, returnDate),
			},
		},
	}
}

func newSector(index int, origin, dest, date string) Sector {
	return Sector{
		Index:       index,
		Origin:      origin,
		Destination: dest,
		DepartDate:  date,
		CabinType:   "ECONOMY",
		PaxInfos:    []PaxInfo{{PaxType: "ADT", PaxCount: 1, PaxFareType: "DEFAULT"}},
	}
}
