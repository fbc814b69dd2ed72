package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/Sgowda7697/Dream2Reality/internal/api"
	"github.com/Sgowda7697/Dream2Reality/internal/cli"
	"github.com/Sgowda7697/Dream2Reality/internal/conversation"
	"github.com/Sgowda7697/Dream2Reality/internal/flights"
	"github.com/Sgowda7697/Dream2Reality/internal/llm"
	"github.com/Sgowda7697/Dream2Reality/internal/planner"
	"github.com/Sgowda7697/Dream2Reality/internal/service"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A .env file is optional; real environment variables take precedence.
	envFile := os.Getenv("D2R_ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading %s: %w", envFile, err)
	}

	logs := cli.NewLogSink(os.Stderr)
	observer := service.NewLogUseCaseObserver(logs)

	// Plan generation
	llmCfg := llm.LoadConfig()
	availability := llmCfg.Availability()
	var drafter planner.Drafter
	if availability.Configured {
		var llmObserver llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			llmObserver = llm.NewLogObserver(logs)
		}
		drafter = planner.NewDrafter(llm.NewChatClient(llmCfg, llmObserver))
	}

	// Flight search; without credentials every search uses estimated offers.
	var provider flights.Provider
	if flightsCfg := flights.LoadConfig(); flightsCfg.HasCredentials() {
		provider = flights.NewHTTPProvider(flightsCfg)
	}

	a := &cli.App{
		Plans:         service.NewPlanService(availability, drafter, observer),
		Flights:       service.NewFlightService(provider, observer),
		Conversation:  conversation.LoadConfig(),
		API:           api.LoadConfig(),
		LLMConfigured: availability.Configured,
		Logs:          logs,
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}

	return cli.NewRootCmd(a).Execute()
}
