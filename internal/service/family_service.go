package service

import (
	"context"
	"fmt"
	"time"

	"github.com/avandermeer/hearthplan/internal/domain"
	"github.com/avandermeer/hearthplan/internal/planner"
	"github.com/avandermeer/hearthplan/internal/repository"
)

// FamilyService manages children and their skill snapshots.
type FamilyService struct {
	children  repository.ChildRepo
	snapshots repository.SnapshotRepo
	newID     planner.IDGen
	now       func() time.Time
}

func NewFamilyService(children repository.ChildRepo, snapshots repository.SnapshotRepo, newID planner.IDGen, now func() time.Time) *FamilyService {
	if now == nil {
		now = time.Now
	}
	return &FamilyService{children: children, snapshots: snapshots, newID: newID, now: now}
}

// AddChild registers a child and returns the stored record.
func (s *FamilyService) AddChild(ctx context.Context, name string) (*repository.Child, error) {
	if name == "" {
		return nil, fmt.Errorf("child needs a name")
	}
	c := &repository.Child{
		ID:        s.newID(),
		Name:      name,
		CreatedAt: s.now().UTC().Truncate(time.Second),
	}
	if err := s.children.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// GetChild looks a child up by ID.
func (s *FamilyService) GetChild(ctx context.Context, id string) (*repository.Child, error) {
	return s.children.GetByID(ctx, id)
}

// ListChildren returns all registered children.
func (s *FamilyService) ListChildren(ctx context.Context) ([]*repository.Child, error) {
	return s.children.List(ctx)
}

// SaveSnapshot replaces the child's skill snapshot. Priority skill tags are
// free-form dot-paths; unknown tags still participate in matching.
func (s *FamilyService) SaveSnapshot(ctx context.Context, snapshot *domain.SkillSnapshot) error {
	if snapshot.ChildID == "" {
		return fmt.Errorf("snapshot needs a child id")
	}
	if _, err := s.children.GetByID(ctx, snapshot.ChildID); err != nil {
		return fmt.Errorf("snapshot child: %w", err)
	}
	return s.snapshots.Put(ctx, snapshot)
}

// GetSnapshot returns the child's current snapshot.
func (s *FamilyService) GetSnapshot(ctx context.Context, childID string) (*domain.SkillSnapshot, error) {
	return s.snapshots.Get(ctx, childID)
}
