package flights

import (
	"slices"
	"strings"
)

// DefaultAirportCode is returned for cities missing from the table (Delhi).
const DefaultAirportCode = "DEL"

var airportCodes = map[string]string{
	"mumbai":      "BOM",
	"delhi":       "DEL",
	"bangalore":   "BLR",
	"chennai":     "MAA",
	"kolkata":     "CCU",
	"hyderabad":   "HYD",
	"pune":        "PNQ",
	"goa":         "GOI",
	"jaipur":      "JAI",
	"kochi":       "COK",
	"guwahati":    "GAU",
	"bhubaneswar": "BBI",
	"indore":      "IDR",
	"coimbatore":  "CJB",
	"chandigarh":  "IXC",
	"lucknow":     "LKO",
	"patna":       "PAT",
	"varanasi":    "VNS",
	"srinagar":    "SXR",
	"dehradun":    "DED",
}

// ResolveAirportCode maps a free-text city name to its airport code.
// Lookup is case-insensitive and ignores surrounding whitespace; unknown
// cities resolve to DefaultAirportCode.
func ResolveAirportCode(city string) string {
	if code, ok := airportCodes[strings.ToLower(strings.TrimSpace(city))]; ok {
		return code
	}
	return DefaultAirportCode
}

// KnownCities returns the table's city keys in lowercase, sorted.
func KnownCities() []string {
	out := make([]string, 0, len(airportCodes))
	for city := range airportCodes {
		out = append(out, city)
	}
	slices.Sort(out)
	return out
}
