package cli

import (
	"io"

	"github.com/Sgowda7697/Dream2Reality/internal/api"
	"github.com/Sgowda7697/Dream2Reality/internal/app"
	"github.com/Sgowda7697/Dream2Reality/internal/conversation"
	"github.com/spf13/cobra"
)

// App holds the use cases and settings shared by every command.
type App struct {
	Plans   app.PlanUseCase
	Flights app.FlightSearchUseCase

	Conversation  conversation.Config
	API           api.Config
	LLMConfigured bool

	// Logs receives structured service logs. Commands mute it while a
	// full-screen view owns the terminal.
	Logs *LogSink

	// IsInteractive reports whether stdin is a terminal. Nil means no.
	IsInteractive func() bool

	// In is read by yes/no prompts. Nil means os.Stdin.
	In io.Reader
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "dream2reality" command. Run without a
// subcommand it opens the chat planner.
func NewRootCmd(a *App) *cobra.Command {
	var quiet bool

	root := &cobra.Command{
		Use:           "dream2reality",
		Short:         "Conversational trip planner",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if quiet {
				a.Logs.Mute()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChat(cmd, a)
		},
	}
	root.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress service logs")

	root.AddCommand(
		newChatCmd(a),
		newPlanCmd(a),
		newFlightsCmd(a),
		newExportCmd(a),
		newServeCmd(a),
	)

	return root
}
