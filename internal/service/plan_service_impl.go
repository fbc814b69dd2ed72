package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Sgowda7697/Dream2Reality/internal/app"
	"github.com/Sgowda7697/Dream2Reality/internal/domain"
	"github.com/Sgowda7697/Dream2Reality/internal/llm"
	"github.com/Sgowda7697/Dream2Reality/internal/planner"
)

type planService struct {
	availability llm.BackendAvailability
	drafter      planner.Drafter
	observer     UseCaseObserver
}

// NewPlanService creates the plan generation use case. With an unconfigured
// backend it always returns planner.MockPlan and never calls drafter.
func NewPlanService(availability llm.BackendAvailability, drafter planner.Drafter, observers ...UseCaseObserver) app.PlanUseCase {
	return &planService{
		availability: availability,
		drafter:      drafter,
		observer:     useCaseObserverOrNoop(observers),
	}
}

func (s *planService) GeneratePlan(ctx context.Context, description string) (plan *domain.Plan, err error) {
	startedAt := time.Now()
	fields := map[string]any{"backend": "mock"}
	defer func() {
		if plan != nil {
			fields["destination"] = plan.ChosenDestination
			fields["options"] = len(plan.DestinationOptions)
			fields["days"] = len(plan.Itinerary)
		}
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "generate-plan",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Err:       err,
			Fields:    fields,
		})
	}()

	description = strings.TrimSpace(description)
	if !s.availability.Configured || s.drafter == nil {
		return planner.MockPlan(description), nil
	}
	fields["backend"] = "llm"

	ext, err := s.drafter.Extract(ctx, description)
	if err != nil {
		return nil, fmt.Errorf("generating plan: %w", err)
	}

	chosen := planner.ChooseDestination(ext)
	itinerary, err := s.drafter.Itinerary(ctx, chosen, planner.DurationOf(ext), ext.Themes)
	if err != nil {
		return nil, fmt.Errorf("generating itinerary for %s: %w", chosen, err)
	}

	assembled := planner.Assemble(description, ext, itinerary)
	if err := assembled.Validate(); err != nil {
		return nil, fmt.Errorf("generated plan rejected: %w", err)
	}
	return assembled, nil
}
