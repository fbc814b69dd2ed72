package formatter

import (
	"fmt"
	"strings"

	"github.com/Sgowda7697/Dream2Reality/internal/app"
	"github.com/Sgowda7697/Dream2Reality/internal/domain"
)

// FormatFlightResult renders a search result with its route, ordering and
// source badge.
func FormatFlightResult(r *app.FlightSearchResult) string {
	if r == nil {
		return Dim("No flight search yet.") + "\n"
	}
	var b strings.Builder
	b.WriteString(Header("Flights"))
	b.WriteString("\n")
	route := fmt.Sprintf("%s → %s", r.Criteria.Origin, r.Criteria.Destination)
	if r.Criteria.StartDate != "" {
		route += fmt.Sprintf("  %s – %s", r.Criteria.StartDate, r.Criteria.EndDate)
	}
	fmt.Fprintf(&b, "%s  %s\n", Bold(route), SourceBadge(r.IsFallback))
	b.WriteString(Dim("Sorted by "+r.Preference.Label()) + "\n\n")
	b.WriteString(FormatFlights(r.Offers))
	return b.String()
}

// FormatFlights renders offers as a numbered table.
func FormatFlights(offers []domain.Flight) string {
	if len(offers) == 0 {
		return Dim("  No flights found.") + "\n"
	}
	return flightTable(offers)
}

func flightTable(offers []domain.Flight) string {
	rows := make([][]string, 0, len(offers))
	for i, f := range offers {
		times := f.DepartTime
		if f.ArrivalTime != "" {
			times += " → " + f.ArrivalTime
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			strings.TrimSpace(f.Airline + " " + f.FlightNumber),
			f.From + "–" + f.To,
			times,
			FormatStops(f.Stops),
			StyleGreen.Render(FormatPrice(f.Price, f.Currency)),
		})
	}
	return RenderTable(
		[]string{"#", "AIRLINE", "ROUTE", "TIMES", "STOPS", "PRICE"},
		rows,
		AlignRight, AlignLeft, AlignLeft, AlignLeft, AlignLeft, AlignRight,
	)
}
