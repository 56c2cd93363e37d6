package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/avandermeer/hearthplan/internal/advisor"
	"github.com/avandermeer/hearthplan/internal/domain"
	"github.com/avandermeer/hearthplan/internal/planner"
	"github.com/avandermeer/hearthplan/internal/repository"
)

// AssignmentAdvice pairs a queued assignment with the advisor's verdict for
// it under the child's current snapshot.
type AssignmentAdvice struct {
	Assignment domain.AssignmentCandidate
	Suggestion *domain.SkipSuggestion
}

// AssignmentService manages the queue of workbook assignments waiting to be
// scheduled.
type AssignmentService struct {
	assignments repository.AssignmentRepo
	snapshots   repository.SnapshotRepo
	newID       planner.IDGen
}

func NewAssignmentService(assignments repository.AssignmentRepo, snapshots repository.SnapshotRepo, newID planner.IDGen) *AssignmentService {
	return &AssignmentService{assignments: assignments, snapshots: snapshots, newID: newID}
}

// Add queues an assignment for the child, assigning an ID when absent.
// Action defaults to keep; the advisor may override it at generation time.
func (s *AssignmentService) Add(ctx context.Context, childID string, a *domain.AssignmentCandidate) error {
	if a.EstimatedMinutes <= 0 {
		return fmt.Errorf("assignment needs a positive minute estimate")
	}
	if a.WorkbookName == "" && a.LessonName == "" {
		return fmt.Errorf("assignment needs a workbook or lesson name")
	}
	if a.ID == "" {
		a.ID = s.newID()
	}
	if a.Action == "" {
		a.Action = domain.ActionKeep
	}
	if a.DifficultyCues == nil {
		a.DifficultyCues = []string{}
	}
	return s.assignments.Create(ctx, childID, a)
}

// List returns the child's queued assignments.
func (s *AssignmentService) List(ctx context.Context, childID string) ([]domain.AssignmentCandidate, error) {
	return s.assignments.ListByChild(ctx, childID)
}

// Remove drops a queued assignment.
func (s *AssignmentService) Remove(ctx context.Context, id string) error {
	return s.assignments.Delete(ctx, id)
}

// Review runs the advisor over the queue without generating a plan, so the
// parent can see what would be skipped or shrunk before committing.
func (s *AssignmentService) Review(ctx context.Context, childID string) ([]AssignmentAdvice, error) {
	snapshot, err := s.snapshots.Get(ctx, childID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("loading snapshot: %w", err)
	}

	assignments, err := s.assignments.ListByChild(ctx, childID)
	if err != nil {
		return nil, err
	}

	reviewed, _ := advisor.ApplySnapshotSuggestions(assignments, snapshot)
	out := make([]AssignmentAdvice, 0, len(reviewed))
	for _, a := range reviewed {
		out = append(out, AssignmentAdvice{Assignment: a, Suggestion: a.SkipSuggestion})
	}
	return out, nil
}
