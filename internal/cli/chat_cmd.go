package cli

import (
	"errors"

	"github.com/Sgowda7697/Dream2Reality/internal/conversation"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// errNotInteractive is returned when the chat is started without a terminal.
var errNotInteractive = errors.New("the chat planner needs an interactive terminal; use the plan or flights commands instead")

func newChatCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Plan a trip through a guided conversation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChat(cmd, a)
		},
	}
}

func runChat(cmd *cobra.Command, a *App) error {
	if !a.interactive() {
		return errNotInteractive
	}

	ctrl := conversation.NewController(a.Plans, a.Flights, a.Conversation)
	defer ctrl.Close()

	// Service logs would tear through the full-screen view.
	if !a.Logs.Muted() {
		a.Logs.Mute()
		defer a.Logs.Unmute()
	}

	p := tea.NewProgram(
		newChatModel(cmd.Context(), a, ctrl),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	_, err := p.Run()
	return err
}
