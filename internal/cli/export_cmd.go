package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Sgowda7697/Dream2Reality/internal/app"
	"github.com/Sgowda7697/Dream2Reality/internal/cli/formatter"
	"github.com/Sgowda7697/Dream2Reality/internal/domain"
	"github.com/Sgowda7697/Dream2Reality/internal/export"
	"github.com/spf13/cobra"
)

func newExportCmd(a *App) *cobra.Command {
	var (
		out        string
		origin     string
		start, end string
		preference string
		force      bool
	)

	cmd := &cobra.Command{
		Use:   "export <description>",
		Short: "Plan a trip and save it as a PDF",
		Long: `Generates a plan from the description and writes it to a PDF. When --from,
--start and --end are given, flights to the chosen destination are searched
and included.`,
		Example: `  dream2reality export "Beach vacation, 5 days, Goa" --from Bangalore --start 2025-03-01 --end 2025-03-05`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			description := strings.TrimSpace(strings.Join(args, " "))
			withFlights := origin != "" || start != "" || end != ""
			if withFlights {
				if origin == "" {
					return errors.New("--from is required to include flights")
				}
				if err := validateDateRange(start, end); err != nil {
					return err
				}
			}
			pref := domain.PreferenceGoodTiming
			if preference != "" {
				p, ok := domain.ParseFlightPreference(preference)
				if !ok {
					return fmt.Errorf("unknown preference %q: use cheapest or good_timing", preference)
				}
				pref = p
			}

			var stop func()
			if a.interactive() {
				stop = formatter.StartSpinner(cmd.ErrOrStderr(), "Planning your trip")
			}
			plan, err := a.Plans.GeneratePlan(cmd.Context(), description)
			if stop != nil {
				stop()
			}
			if err != nil {
				return fmt.Errorf("generating plan: %w", err)
			}

			doc := export.Document{Plan: plan, GeneratedAt: time.Now()}
			if withFlights {
				result := a.Flights.SearchFlights(cmd.Context(), app.FlightSearchRequest{
					OriginCity:      origin,
					DestinationCity: plan.ChosenDestination,
					StartDate:       start,
					EndDate:         end,
					Preference:      pref,
				})
				doc.Origin, doc.StartDate, doc.EndDate = origin, start, end
				doc.Flights, doc.IsEstimated = result.Offers, result.IsFallback
			}

			path := out
			if path == "" {
				path = export.FileName(plan)
			}
			if _, err := os.Stat(path); err == nil && !force {
				if !a.interactive() {
					return fmt.Errorf("%s already exists; pass --force to overwrite", path)
				}
				if !a.promptYesNo(cmd.OutOrStdout(), fmt.Sprintf("%s exists. Overwrite? [y/N]: ", path)) {
					fmt.Fprintln(cmd.OutOrStdout(), "Export cancelled.")
					return nil
				}
			}

			if err := writePDF(doc, path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s trip to %s\n", plan.ChosenDestination, path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default dream2reality-<destination>.pdf)")
	cmd.Flags().StringVar(&origin, "from", "", "origin city for the flight search")
	cmd.Flags().StringVar(&start, "start", "", "departure date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "return date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&preference, "preference", "", "cheapest or good_timing (default good_timing)")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	return cmd
}
