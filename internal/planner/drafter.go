package planner

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Sgowda7697/Dream2Reality/internal/domain"
	"github.com/Sgowda7697/Dream2Reality/internal/llm"
)

// Extraction is the structured reading of a free-text trip description.
// Absent fields stay zero and are defaulted by Assemble.
type Extraction struct {
	UserQuery          string                     `json:"userQuery"`
	DurationDays       *int                       `json:"durationDays"`
	Budget             string                     `json:"budget"`
	Themes             []string                   `json:"themes"`
	DestinationOptions []domain.DestinationOption `json:"destinationOptions"`
}

type itineraryEnvelope struct {
	Itinerary *[]domain.ItineraryDay `json:"itinerary"`
}

// Drafter performs the two backend calls behind a generated plan.
type Drafter interface {
	// Extract reads themes, budget, duration and destination candidates
	// from the traveller's description.
	Extract(ctx context.Context, description string) (*Extraction, error)

	// Itinerary drafts a day-by-day plan for one destination.
	Itinerary(ctx context.Context, destination string, days int, themes []string) ([]domain.ItineraryDay, error)
}

type llmDrafter struct {
	client llm.LLMClient
}

// NewDrafter creates a Drafter backed by an LLM client.
func NewDrafter(client llm.LLMClient) Drafter {
	return &llmDrafter{client: client}
}

func (d *llmDrafter) Extract(ctx context.Context, description string) (*Extraction, error) {
	resp, err := d.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskExtract,
		SystemPrompt: extractionSystemPrompt,
		UserPrompt:   description,
	})
	if err != nil {
		return nil, fmt.Errorf("llm trip extraction failed: %w", err)
	}

	ext, err := llm.ExtractJSON[Extraction](resp.Text, validateExtraction)
	if err != nil {
		return nil, fmt.Errorf("failed to extract trip details: %w", err)
	}
	return &ext, nil
}

func (d *llmDrafter) Itinerary(ctx context.Context, destination string, days int, themes []string) ([]domain.ItineraryDay, error) {
	resp, err := d.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskItinerary,
		SystemPrompt: itinerarySystemPrompt(destination, days, themes),
		UserPrompt:   itineraryUserPrompt,
	})
	if err != nil {
		return nil, fmt.Errorf("llm itinerary failed: %w", err)
	}

	env, err := llm.ExtractJSON[itineraryEnvelope](resp.Text, validateItineraryEnvelope)
	if err != nil {
		return nil, fmt.Errorf("failed to extract itinerary: %w", err)
	}
	if *env.Itinerary == nil {
		return []domain.ItineraryDay{}, nil
	}
	return *env.Itinerary, nil
}

func validateItineraryEnvelope(env itineraryEnvelope) error {
	if env.Itinerary == nil {
		return errors.New(`response is missing the "itinerary" key`)
	}
	return nil
}

func validateExtraction(e Extraction) error {
	if e.Budget != "" {
		switch domain.Budget(strings.ToLower(e.Budget)) {
		case domain.BudgetLow, domain.BudgetMedium, domain.BudgetHigh:
		default:
			return fmt.Errorf("budget %q must be low, medium or high", e.Budget)
		}
	}
	for i, opt := range e.DestinationOptions {
		if strings.TrimSpace(opt.Name) == "" {
			return fmt.Errorf("destination option %d has no name", i+1)
		}
	}
	return nil
}
