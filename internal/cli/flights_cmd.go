package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Sgowda7697/Dream2Reality/internal/app"
	"github.com/Sgowda7697/Dream2Reality/internal/cli/formatter"
	"github.com/Sgowda7697/Dream2Reality/internal/domain"
	"github.com/Sgowda7697/Dream2Reality/internal/flights"
	"github.com/spf13/cobra"
)

func newFlightsCmd(a *App) *cobra.Command {
	var (
		in     flightSearchInput
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "flights",
		Short: "Search round-trip flights between two cities",
		Long: "Search round-trip flights between two cities.\n\n" +
			"Cities with a known airport: " + strings.Join(citySuggestions(), ", ") + ".\n" +
			"Any other city departs from or arrives at Delhi (" + flights.DefaultAirportCode + ").",
		Example: `  dream2reality flights --from Bangalore --to Goa --start 2025-03-01 --end 2025-03-05
  dream2reality flights --from Delhi --to Mysore --start 2025-03-01 --end 2025-03-04 --preference cheapest`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !in.complete() {
				if !a.interactive() {
					return fmt.Errorf("missing %s", strings.Join(missingFlightFlags(in), ", "))
				}
				if err := flightSearchForm(&in).Run(); err != nil {
					return err
				}
			}
			if err := validateDateRange(in.StartDate, in.EndDate); err != nil {
				return err
			}

			pref := domain.PreferenceGoodTiming
			if in.Preference != "" {
				p, ok := domain.ParseFlightPreference(in.Preference)
				if !ok {
					return fmt.Errorf("unknown preference %q: use cheapest or good_timing", in.Preference)
				}
				pref = p
			}

			req := app.FlightSearchRequest{
				OriginCity:      strings.TrimSpace(in.Origin),
				DestinationCity: strings.TrimSpace(in.Destination),
				StartDate:       strings.TrimSpace(in.StartDate),
				EndDate:         strings.TrimSpace(in.EndDate),
				Preference:      pref,
			}

			var stop func()
			if a.interactive() && !asJSON {
				stop = formatter.StartSpinner(cmd.ErrOrStderr(), "Searching flights")
			}
			result := a.Flights.SearchFlights(cmd.Context(), req)
			if stop != nil {
				stop()
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(struct {
					*app.FlightSearchResult
					Source string `json:"source"`
				}{result, result.Source()})
			}
			fmt.Fprint(out, formatter.FormatFlightResult(result))
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Origin, "from", "", "origin city")
	cmd.Flags().StringVar(&in.Destination, "to", "", "destination city")
	cmd.Flags().StringVar(&in.StartDate, "start", "", "departure date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&in.EndDate, "end", "", "return date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&in.Preference, "preference", "", "cheapest or good_timing (default good_timing)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	return cmd
}

func missingFlightFlags(in flightSearchInput) []string {
	var missing []string
	if in.Origin == "" {
		missing = append(missing, "--from")
	}
	if in.Destination == "" {
		missing = append(missing, "--to")
	}
	if in.StartDate == "" {
		missing = append(missing, "--start")
	}
	if in.EndDate == "" {
		missing = append(missing, "--end")
	}
	return missing
}
