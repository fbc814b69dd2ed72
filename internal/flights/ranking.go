package flights

import (
	"sort"
	"strconv"
	"strings"

	"github.com/Sgowda7697/Dream2Reality/internal/domain"
)

const (
	defaultDepartureHour = 12
	daytimeStartHour     = 8
	daytimeEndHour       = 20
)

// Rank returns a new slice ordered by preference. The input is not modified
// and offers that compare equal keep their relative order.
//
//   - cheapest: ascending price
//   - good_timing: departures between 08:00 and 20:59 first, then ascending price
func Rank(offers []domain.Flight, pref domain.FlightPreference) []domain.Flight {
	out := make([]domain.Flight, len(offers))
	copy(out, offers)

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if pref == domain.PreferenceGoodTiming {
			sa, sb := DaytimeScore(a.DepartTime), DaytimeScore(b.DepartTime)
			if sa != sb {
				return sa < sb
			}
		}
		return a.Price < b.Price
	})
	return out
}

// DaytimeScore is 0 for departure hours in [8,20] and 1 otherwise.
func DaytimeScore(departTime string) int {
	h := DepartureHour(departTime)
	if h >= daytimeStartHour && h <= daytimeEndHour {
		return 0
	}
	return 1
}

// DepartureHour extracts the hour from clock strings such as "07:00",
// "7:05 PM" or "2024-04-01T07:00:00". Anything unparseable yields 12.
func DepartureHour(departTime string) int {
	s := strings.TrimSpace(departTime)
	if i := strings.IndexAny(s, "T "); i >= 0 && strings.Count(s[:i], "-") == 2 {
		s = strings.TrimSpace(s[i+1:])
	}
	upper := strings.ToUpper(s)
	pm := strings.HasSuffix(upper, "PM")
	am := strings.HasSuffix(upper, "AM")

	colon := strings.Index(s, ":")
	if colon <= 0 {
		return defaultDepartureHour
	}
	h, err := strconv.Atoi(s[:colon])
	if err != nil || h < 0 || h > 23 {
		return defaultDepartureHour
	}
	switch {
	case pm && h < 12:
		h += 12
	case am && h == 12:
		h = 0
	}
	return h
}
