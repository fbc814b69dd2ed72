package formatter

import (
	"fmt"
	"strings"

	"github.com/Sgowda7697/Dream2Reality/internal/domain"
)

// FormatPlan renders a complete plan: overview, destination options,
// itinerary and catalog hotels and flights.
func FormatPlan(p *domain.Plan) string {
	if p == nil {
		return Dim("No plan yet.") + "\n"
	}
	var b strings.Builder

	b.WriteString(Header("Trip to " + p.ChosenDestination))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s  %s  %s\n", Bold(Plural(p.DurationDays, "day", "days")), BudgetBadge(p.Budget), Dim(strings.Join(p.Themes, " · ")))
	if p.UserQuery != "" {
		b.WriteString(Dim("“"+Truncate(p.UserQuery, 90)+"”") + "\n")
	}
	b.WriteString("\n")

	b.WriteString(FormatDestinations(p.DestinationOptions, p.ChosenDestination))
	b.WriteString("\n")
	b.WriteString(FormatItinerary(p.Itinerary))

	if len(p.Hotels) > 0 {
		b.WriteString("\n")
		b.WriteString(FormatHotels(p.Hotels))
	}
	if len(p.Flights) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Sample fares"))
		b.WriteString("\n")
		b.WriteString(flightTable(p.Flights))
	}
	return b.String()
}

// FormatDestinations renders a numbered destination list, marking chosen.
func FormatDestinations(options []domain.DestinationOption, chosen string) string {
	var b strings.Builder
	b.WriteString(Header("Destinations"))
	b.WriteString("\n")
	if len(options) == 0 {
		b.WriteString(Dim("  No destinations match.") + "\n")
		return b.String()
	}
	for i, opt := range options {
		marker := "  "
		name := StyleBlue.Render(opt.Name)
		if chosen != "" && strings.EqualFold(opt.Name, chosen) {
			marker = StyleGreen.Render("▸ ")
			name = StyleGreen.Bold(true).Render(opt.Name)
		}
		fmt.Fprintf(&b, "%s%d. %s", marker, i+1, name)
		if opt.Country != "" {
			b.WriteString(Dim(", " + opt.Country))
		}
		b.WriteString("\n")
		if opt.Summary != "" {
			b.WriteString("     " + opt.Summary + "\n")
		}
		if len(opt.Tags) > 0 {
			b.WriteString("     " + StylePurple.Render("#"+strings.Join(opt.Tags, " #")) + "\n")
		}
	}
	return b.String()
}

// FormatItinerary renders day-by-day activities. Activities with
// coordinates get a pin marker.
func FormatItinerary(days []domain.ItineraryDay) string {
	var b strings.Builder
	b.WriteString(Header("Itinerary"))
	b.WriteString("\n")
	if len(days) == 0 {
		b.WriteString(Dim("  No itinerary.") + "\n")
		return b.String()
	}
	for _, day := range days {
		fmt.Fprintf(&b, "%s %s\n", StyleHeader.Render(fmt.Sprintf("Day %d", day.Day)), Bold(day.Title))
		for _, a := range day.Activities {
			pin := " "
			if a.HasLocation() {
				pin = StyleRed.Render("⌖")
			}
			fmt.Fprintf(&b, "  %s %s %s", pin, padCell(StyleAqua.Render(a.Time), 8, AlignLeft, false), a.Name)
			if a.Description != "" {
				b.WriteString(Dim(": " + a.Description))
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

// FormatHotels renders the hotel list as a table.
func FormatHotels(hotels []domain.Hotel) string {
	var b strings.Builder
	b.WriteString(Header("Hotels"))
	b.WriteString("\n")
	if len(hotels) == 0 {
		b.WriteString(Dim("  No hotel listings for this destination.") + "\n")
		return b.String()
	}
	rows := make([][]string, 0, len(hotels))
	for _, h := range hotels {
		rows = append(rows, []string{h.Name, h.Area, FormatPrice(h.PricePerNight, "INR")})
	}
	b.WriteString(RenderTable([]string{"HOTEL", "AREA", "PER NIGHT"}, rows, AlignLeft, AlignLeft, AlignRight))
	return b.String()
}
