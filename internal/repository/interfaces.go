package repository

import (
	"context"
	"errors"
	"time"

	"github.com/avandermeer/hearthplan/internal/domain"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// Child is a family member whose plans and ladders we track.
type Child struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

type ChildRepo interface {
	Create(ctx context.Context, c *Child) error
	GetByID(ctx context.Context, id string) (*Child, error)
	List(ctx context.Context) ([]*Child, error)
}

// SnapshotRepo stores each child's skill snapshot as a single document.
type SnapshotRepo interface {
	Get(ctx context.Context, childID string) (*domain.SkillSnapshot, error)
	Put(ctx context.Context, snapshot *domain.SkillSnapshot) error
}

type AssignmentRepo interface {
	Create(ctx context.Context, childID string, a *domain.AssignmentCandidate) error
	ListByChild(ctx context.Context, childID string) ([]domain.AssignmentCandidate, error)
	Delete(ctx context.Context, id string) error
}

// PlanRepo stores one generated WeeklyPlan document per (child, week).
type PlanRepo interface {
	Get(ctx context.Context, childID, weekKey string) (*domain.WeeklyPlan, error)
	Put(ctx context.Context, childID, weekKey string, plan *domain.WeeklyPlan) error
}

// AdjustmentRepo keeps the ordered adjustment list for a week. Position
// order is the application order.
type AdjustmentRepo interface {
	Append(ctx context.Context, id, childID, weekKey string, adj domain.Adjustment) error
	ListByWeek(ctx context.Context, childID, weekKey string) ([]domain.Adjustment, error)
	ClearWeek(ctx context.Context, childID, weekKey string) error
}

type DayTypeRepo interface {
	Set(ctx context.Context, childID, weekKey string, cfg domain.DayTypeConfig) error
	ListByWeek(ctx context.Context, childID, weekKey string) ([]domain.DayTypeConfig, error)
}

// LadderRepo persists ladder state split across a progress row and the
// append-only session log that backs LadderProgress.History.
type LadderRepo interface {
	GetProgress(ctx context.Context, childID, ladderKey string) (*domain.LadderProgress, error)
	PutProgress(ctx context.Context, progress *domain.LadderProgress) error
	AppendSession(ctx context.Context, id, childID, ladderKey string, entry domain.SessionEntry, createdAt time.Time) error
}

type WorkbookRepo interface {
	Create(ctx context.Context, w *domain.WorkbookConfig) error
	GetByID(ctx context.Context, id string) (*domain.WorkbookConfig, error)
	ListByChild(ctx context.Context, childID string) ([]*domain.WorkbookConfig, error)
	Update(ctx context.Context, w *domain.WorkbookConfig) error
	Delete(ctx context.Context, id string) error
}
