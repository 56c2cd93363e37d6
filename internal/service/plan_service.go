package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/avandermeer/hearthplan/internal/domain"
	"github.com/avandermeer/hearthplan/internal/planner"
	"github.com/avandermeer/hearthplan/internal/repository"
)

// PlanDefaults carries the config-derived inputs every generation uses when
// the week has no stored overrides.
type PlanDefaults struct {
	HoursPerDay float64
	AppBlocks   []domain.AppBlock
	DayTypes    []domain.DayTypeConfig
}

// PlanService generates, regenerates, and stores weekly plans. Regeneration
// is the only mutation path: every stored plan is a pure function of the
// snapshot, the assignment list, the adjustment log, and the week's day
// types.
type PlanService struct {
	snapshots   repository.SnapshotRepo
	assignments repository.AssignmentRepo
	plans       repository.PlanRepo
	adjustments repository.AdjustmentRepo
	dayTypes    repository.DayTypeRepo
	defaults    PlanDefaults
	newID       planner.IDGen
}

func NewPlanService(
	snapshots repository.SnapshotRepo,
	assignments repository.AssignmentRepo,
	plans repository.PlanRepo,
	adjustments repository.AdjustmentRepo,
	dayTypes repository.DayTypeRepo,
	defaults PlanDefaults,
	newID planner.IDGen,
) *PlanService {
	return &PlanService{
		snapshots:   snapshots,
		assignments: assignments,
		plans:       plans,
		adjustments: adjustments,
		dayTypes:    dayTypes,
		defaults:    defaults,
		newID:       newID,
	}
}

// Generate builds the week's plan from scratch and stores it. A missing
// snapshot is not an error: the plan simply gets no skill reps.
func (s *PlanService) Generate(ctx context.Context, childID, weekKey string) (*domain.WeeklyPlan, error) {
	snapshot, err := s.snapshots.Get(ctx, childID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("loading snapshot: %w", err)
	}

	assignments, err := s.assignments.ListByChild(ctx, childID)
	if err != nil {
		return nil, fmt.Errorf("loading assignments: %w", err)
	}

	adjustments, err := s.adjustments.ListByWeek(ctx, childID, weekKey)
	if err != nil {
		return nil, fmt.Errorf("loading adjustments: %w", err)
	}

	dayTypes, err := s.weekDayTypes(ctx, childID, weekKey)
	if err != nil {
		return nil, err
	}

	plan := planner.GenerateDraftPlan(planner.GenerateInput{
		Snapshot:    snapshot,
		HoursPerDay: s.defaults.HoursPerDay,
		AppBlocks:   s.defaults.AppBlocks,
		Assignments: assignments,
		Adjustments: adjustments,
		NewID:       s.newID,
	})
	plan = planner.Reflow(plan, dayTypes, s.newID)

	if err := s.plans.Put(ctx, childID, weekKey, &plan); err != nil {
		return nil, fmt.Errorf("storing plan: %w", err)
	}
	return &plan, nil
}

// Get returns the stored plan for the week.
func (s *PlanService) Get(ctx context.Context, childID, weekKey string) (*domain.WeeklyPlan, error) {
	return s.plans.Get(ctx, childID, weekKey)
}

// SetDayType overrides one weekday's type for the week and regenerates.
func (s *PlanService) SetDayType(ctx context.Context, childID, weekKey string, cfg domain.DayTypeConfig) (*domain.WeeklyPlan, error) {
	if domain.WeekdayIndex(cfg.Day) < 0 {
		return nil, fmt.Errorf("unknown weekday %q", cfg.Day)
	}
	switch cfg.DayType {
	case domain.DayNormal, domain.DayLight, domain.DayAppointment:
	default:
		return nil, fmt.Errorf("unknown day type %q", cfg.DayType)
	}
	if err := s.dayTypes.Set(ctx, childID, weekKey, cfg); err != nil {
		return nil, fmt.Errorf("storing day type: %w", err)
	}
	return s.Generate(ctx, childID, weekKey)
}

// weekDayTypes merges stored per-week overrides over the config defaults.
func (s *PlanService) weekDayTypes(ctx context.Context, childID, weekKey string) ([]domain.DayTypeConfig, error) {
	stored, err := s.dayTypes.ListByWeek(ctx, childID, weekKey)
	if err != nil {
		return nil, fmt.Errorf("loading day types: %w", err)
	}

	overrides := make(map[domain.Weekday]domain.DayType, len(stored))
	for _, cfg := range stored {
		overrides[cfg.Day] = cfg.DayType
	}

	base := s.defaults.DayTypes
	if len(base) == 0 {
		base = domain.DefaultDayTypes()
	}

	merged := make([]domain.DayTypeConfig, 0, len(domain.Weekdays))
	for _, cfg := range base {
		if dt, ok := overrides[cfg.Day]; ok {
			cfg.DayType = dt
		}
		merged = append(merged, cfg)
	}
	return merged, nil
}
