package formatter

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/Sgowda7697/Dream2Reality/internal/app"
	"github.com/Sgowda7697/Dream2Reality/internal/domain"
	"github.com/Sgowda7697/Dream2Reality/internal/flights"
	"github.com/Sgowda7697/Dream2Reality/internal/planner"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	cases := map[float64]string{
		0:       "INR 0",
		999:     "INR 999",
		4500:    "INR 4,500",
		12500.6: "INR 12,501",
		1234567: "INR 1,234,567",
		-5:      "INR 0",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatPrice(in, ""), "amount %v", in)
	}
	assert.Equal(t, "USD 120", FormatPrice(120, "USD"))
}

func TestFormatStopsAndPlural(t *testing.T) {
	assert.Equal(t, "Direct", FormatStops(0))
	assert.Equal(t, "1 stop", FormatStops(1))
	assert.Equal(t, "3 stops", FormatStops(3))
	assert.Equal(t, "1 day", Plural(1, "day", "days"))
	assert.Equal(t, "4 days", Plural(4, "day", "days"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abcd…", Truncate("abcdefgh", 5))
	assert.Equal(t, "…", Truncate("abc", 1))
	assert.Equal(t, "abc", Truncate("abc", 0))
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable(
		[]string{"NAME", "PRICE"},
		[][]string{{"Goa", "INR 4,500"}, {"Mysore", "INR 900"}},
		AlignLeft, AlignRight,
	)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)
	for _, l := range lines[2:] {
		assert.Equal(t, lipgloss.Width(lines[2]), lipgloss.Width(l))
	}
	assert.True(t, strings.HasSuffix(lines[3], "  INR 900"))
	assert.Empty(t, RenderTable(nil, nil))
}

func TestFormatPlan(t *testing.T) {
	out := FormatPlan(planner.MockPlan("Beach vacation with water sports, 5 days"))

	assert.Contains(t, out, "TRIP TO GOA")
	assert.Contains(t, out, "3 days")
	assert.Contains(t, out, "● MEDIUM")
	assert.Contains(t, out, "1. Goa")
	assert.Contains(t, out, "2. Mysore")
	assert.Contains(t, out, "Day 1")
	assert.Contains(t, out, "Calangute Beach")
	assert.Contains(t, out, "Taj Fort Aguada")
	assert.Contains(t, out, "INR 9,000")
	assert.Contains(t, FormatPlan(nil), "No plan yet")
}

func TestFormatDestinationsEmpty(t *testing.T) {
	assert.Contains(t, FormatDestinations(nil, ""), "No destinations match")
	assert.Contains(t, FormatItinerary(nil), "No itinerary")
	assert.Contains(t, FormatHotels(nil), "No hotel listings")
}

func TestFormatFlightResult(t *testing.T) {
	r := &app.FlightSearchResult{
		Offers:     flights.Rank(flights.MockFlights(), domain.PreferenceCheapest),
		IsFallback: true,
		Preference: domain.PreferenceCheapest,
		Criteria:   app.SearchCriteria{Origin: "BLR", Destination: "GOI", StartDate: "01/04/2024", EndDate: "04/04/2024"},
	}

	out := FormatFlightResult(r)

	assert.Contains(t, out, "BLR → GOI")
	assert.Contains(t, out, "ESTIMATED")
	assert.Contains(t, out, "lowest price")
	assert.Less(t, strings.Index(out, "SpiceJet"), strings.Index(out, "IndiGo"))
	assert.Contains(t, out, "INR 3,800")
	assert.Contains(t, FormatFlightResult(nil), "No flight search yet")
	assert.Contains(t, FormatFlights(nil), "No flights found")
}

func TestFormatTurns(t *testing.T) {
	turns := []domain.ConversationTurn{
		{Speaker: domain.SpeakerUser, Content: "Bangalore"},
		{Speaker: domain.SpeakerBot, Content: "Nearby or faraway?"},
	}
	out := FormatTranscript(turns)
	assert.Equal(t, "You: Bangalore\nPlanner: Nearby or faraway?\n", out)
}

func TestChatHelpers(t *testing.T) {
	assert.Contains(t, FormatSamples([]string{"a", "b"}), "2. b")
	assert.Equal(t, "[1] nearby  [2] faraway", FormatChoices("nearby", "faraway"))
	assert.Equal(t, "! careful", FormatNotice("careful"))
	assert.Equal(t, "✖ boom", FormatError(errors.New("boom")))
	assert.Contains(t, FormatChatWelcome("Hi"), "Planner: Hi")
}

func TestBadges(t *testing.T) {
	assert.Equal(t, "● LOW", BudgetBadge(domain.BudgetLow))
	assert.Equal(t, "● UNKNOWN", BudgetBadge("lavish"))
	assert.Equal(t, "● LIVE", SourceBadge(false))
	assert.Equal(t, "TRIP\n────", Header("trip"))
}

func TestSpinner_StopIsIdempotent(t *testing.T) {
	stop := StartSpinner(io.Discard, "Planning...")
	stop()
	stop()

	StartSpinner(nil, "noop")()
}
