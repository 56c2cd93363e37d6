package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/avandermeer/hearthplan/internal/domain"
	"github.com/avandermeer/hearthplan/internal/intent"
	"github.com/avandermeer/hearthplan/internal/planner"
	"github.com/avandermeer/hearthplan/internal/repository"
)

// ErrUnparseable marks adjustment text that matched none of the supported
// request patterns.
var ErrUnparseable = errors.New("could not understand the request")

// AdjustService turns free-text adjustment requests into stored adjustments
// and regenerates the affected week.
type AdjustService struct {
	parser      *intent.Parser
	adjustments repository.AdjustmentRepo
	plans       *PlanService
	newID       planner.IDGen
}

func NewAdjustService(parser *intent.Parser, adjustments repository.AdjustmentRepo, plans *PlanService, newID planner.IDGen) *AdjustService {
	return &AdjustService{parser: parser, adjustments: adjustments, plans: plans, newID: newID}
}

// Apply parses text, appends the resulting adjustment to the week's log,
// and regenerates the plan. Unparseable text wraps ErrUnparseable so the
// caller can show a friendly hint instead of a failure.
func (s *AdjustService) Apply(ctx context.Context, childID, weekKey, text string) (domain.Adjustment, *domain.WeeklyPlan, error) {
	adj := s.parser.Parse(text)
	if adj == nil {
		return nil, nil, fmt.Errorf("%q: %w", text, ErrUnparseable)
	}
	if err := intent.Validate(adj); err != nil {
		return nil, nil, fmt.Errorf("invalid adjustment: %w", err)
	}

	if err := s.adjustments.Append(ctx, s.newID(), childID, weekKey, adj); err != nil {
		return nil, nil, fmt.Errorf("storing adjustment: %w", err)
	}

	plan, err := s.plans.Generate(ctx, childID, weekKey)
	if err != nil {
		return nil, nil, err
	}
	return adj, plan, nil
}

// List returns the week's adjustments in application order.
func (s *AdjustService) List(ctx context.Context, childID, weekKey string) ([]domain.Adjustment, error) {
	return s.adjustments.ListByWeek(ctx, childID, weekKey)
}

// Reset drops the week's adjustment log and regenerates a clean plan.
func (s *AdjustService) Reset(ctx context.Context, childID, weekKey string) (*domain.WeeklyPlan, error) {
	if err := s.adjustments.ClearWeek(ctx, childID, weekKey); err != nil {
		return nil, fmt.Errorf("clearing adjustments: %w", err)
	}
	return s.plans.Generate(ctx, childID, weekKey)
}
