package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avandermeer/hearthplan/internal/db"
	"github.com/avandermeer/hearthplan/internal/domain"
	"github.com/avandermeer/hearthplan/internal/ladder"
	"github.com/avandermeer/hearthplan/internal/planner"
	"github.com/avandermeer/hearthplan/internal/repository"
	"github.com/avandermeer/hearthplan/internal/taxonomy"
)

// ErrUnknownLadder marks a ladder key with no built-in card definition.
var ErrUnknownLadder = errors.New("unknown ladder")

// LadderService logs practice sessions and advances ladder state. The
// progress update and the history append land in one transaction so a crash
// can never leave a session without its state change.
type LadderService struct {
	uow     db.UnitOfWork
	ladders repository.LadderRepo
	newID   planner.IDGen
	now     func() time.Time
}

func NewLadderService(uow db.UnitOfWork, ladders repository.LadderRepo, newID planner.IDGen, now func() time.Time) *LadderService {
	if now == nil {
		now = time.Now
	}
	return &LadderService{uow: uow, ladders: ladders, newID: newID, now: now}
}

// LogSession applies one session to the child's ladder, creating the
// progress lazily on first contact. An empty DateKey defaults to today.
func (s *LadderService) LogSession(ctx context.Context, childID, ladderKey string, input ladder.SessionInput) (*ladder.Result, error) {
	def := taxonomy.LadderFor(ladderKey)
	if def == nil {
		return nil, fmt.Errorf("ladder %q: %w", ladderKey, ErrUnknownLadder)
	}
	if input.DateKey == "" {
		input.DateKey = s.now().UTC().Format("2006-01-02")
	}

	var result ladder.Result
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteLadderRepo(tx)

		var prev domain.LadderProgress
		stored, err := repo.GetProgress(ctx, childID, ladderKey)
		switch {
		case err == nil:
			prev = *stored
		case errors.Is(err, repository.ErrNotFound):
			prev = ladder.NewProgress(childID, *def)
		default:
			return err
		}

		result = ladder.ApplySession(prev, input, *def)
		if err := repo.PutProgress(ctx, &result.Progress); err != nil {
			return err
		}

		entry := result.Progress.History[len(result.Progress.History)-1]
		return repo.AppendSession(ctx, s.newID(), childID, ladderKey, entry, s.now())
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Progress returns the child's state on one ladder, history included.
func (s *LadderService) Progress(ctx context.Context, childID, ladderKey string) (*domain.LadderProgress, error) {
	if taxonomy.LadderFor(ladderKey) == nil {
		return nil, fmt.Errorf("ladder %q: %w", ladderKey, ErrUnknownLadder)
	}
	return s.ladders.GetProgress(ctx, childID, ladderKey)
}

// Definition exposes the built-in ladder card for display.
func (s *LadderService) Definition(ladderKey string) (*domain.LadderCardDefinition, error) {
	def := taxonomy.LadderFor(ladderKey)
	if def == nil {
		return nil, fmt.Errorf("ladder %q: %w", ladderKey, ErrUnknownLadder)
	}
	return def, nil
}
