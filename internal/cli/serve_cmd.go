package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Sgowda7697/Dream2Reality/internal/api"
	"github.com/spf13/cobra"
)

func newServeCmd(a *App) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the planning API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.API
			if port != "" {
				cfg.Port = port
			}

			h := &api.Handlers{Plans: a.Plans, Flights: a.Flights, LLMConfigured: a.LLMConfigured}
			router := api.NewRouter(h, cfg, a.Logs)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			fmt.Fprintf(cmd.OutOrStdout(), "Listening on %s\n", cfg.Addr())
			return api.Serve(ctx, cfg.Addr(), router)
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "port to listen on (default from PORT or 8080)")
	return cmd
}
