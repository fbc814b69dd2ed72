package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Sgowda7697/Dream2Reality/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newPlanCmd(a *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "plan <description>",
		Short: "Generate a trip plan from a description",
		Example: `  dream2reality plan "Beach vacation with water sports, 5 days, Goa"
  dream2reality plan --json "Royal palaces and culture, 3 days"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			description := strings.TrimSpace(strings.Join(args, " "))
			if description == "" {
				return fmt.Errorf("a trip description is required")
			}

			var stop func()
			if a.interactive() && !asJSON {
				stop = formatter.StartSpinner(cmd.ErrOrStderr(), "Planning your trip")
			}
			plan, err := a.Plans.GeneratePlan(cmd.Context(), description)
			if stop != nil {
				stop()
			}
			if err != nil {
				return fmt.Errorf("generating plan: %w", err)
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(plan)
			}
			fmt.Fprint(out, formatter.FormatPlan(plan))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the plan as JSON")
	return cmd
}
