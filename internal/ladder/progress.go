package ladder

import (
	"fmt"

	"github.com/avandermeer/hearthplan/internal/domain"
)

// promotionStreak is the number of consecutive qualifying passes required
// to advance a rung.
const promotionStreak = 3

// SessionInput is one logged practice session on a ladder.
type SessionInput struct {
	DateKey string
	Support domain.SupportLevel
	Result  domain.SessionResult
	Note    string
}

// Result reports the post-session progress plus whether this session
// promoted the child to a new rung.
type Result struct {
	Progress  domain.LadderProgress
	Promoted  bool
	NewRungID string
}

// NewProgress returns the lazy initial state for a ladder: rung 0, zero
// streak, no support history.
func NewProgress(childID string, def domain.LadderCardDefinition) domain.LadderProgress {
	progress := domain.LadderProgress{
		ChildID:     childID,
		LadderKey:   def.Key,
		StreakCount: 0,
		LastSupport: domain.SupportNone,
	}
	if len(def.Rungs) > 0 {
		progress.CurrentRungID = def.Rungs[0].ID
	}
	return progress
}

// ApplySession advances ladder state by one session. It never mutates prev;
// the returned progress carries a freshly-appended history.
//
// Streak rules: a pass after a reset always restarts at 1; a pass at
// support no greater than the last passing support extends the streak; a
// pass needing more support restarts at 1. Partial or miss zeroes the
// streak and leaves LastSupport untouched, so the next pass still compares
// against the last passing support. Three qualifying passes promote to the
// next rung; on the final rung the streak pins at 3.
func ApplySession(prev domain.LadderProgress, input SessionInput, def domain.LadderCardDefinition) Result {
	next := cloneProgress(prev)

	switch input.Result {
	case domain.ResultPass:
		if prev.StreakCount == 0 {
			next.StreakCount = 1
		} else if domain.SupportRank(input.Support) <= domain.SupportRank(prev.LastSupport) {
			next.StreakCount = prev.StreakCount + 1
		} else {
			next.StreakCount = 1
		}
		next.LastSupport = input.Support
	default: // partial or miss
		next.StreakCount = 0
	}

	note := input.Note
	promoted := false
	newRungID := ""

	if next.StreakCount >= promotionStreak {
		idx := def.RungIndex(next.CurrentRungID)
		if idx >= 0 && idx+1 < len(def.Rungs) {
			nextRung := def.Rungs[idx+1]
			next.CurrentRungID = nextRung.ID
			next.StreakCount = 0
			promoted = true
			newRungID = nextRung.ID
			annotation := fmt.Sprintf("[PROMOTED to %s]", nextRung.Name)
			if note != "" {
				note = note + " " + annotation
			} else {
				note = annotation
			}
		} else {
			// Last rung: nothing further to promote into.
			next.StreakCount = promotionStreak
		}
	}

	next.History = append(next.History, domain.SessionEntry{
		DateKey: input.DateKey,
		RungID:  prev.CurrentRungID,
		Support: input.Support,
		Result:  input.Result,
		Note:    note,
	})

	return Result{Progress: next, Promoted: promoted, NewRungID: newRungID}
}

func cloneProgress(p domain.LadderProgress) domain.LadderProgress {
	out := p
	out.History = make([]domain.SessionEntry, len(p.History), len(p.History)+1)
	copy(out.History, p.History)
	return out
}
