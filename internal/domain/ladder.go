package domain

// Rung is one checkpoint on a mastery ladder.
type Rung struct {
	ID           string
	Name         string
	EvidenceText string
	SupportsText string
}

// LadderCardDefinition is the static, ordered rung sequence for one skill
// area.
type LadderCardDefinition struct {
	Key   string
	Title string
	Rungs []Rung
}

// RungIndex returns the position of rungID in the ladder, or -1.
func (d LadderCardDefinition) RungIndex(rungID string) int {
	for i, r := range d.Rungs {
		if r.ID == rungID {
			return i
		}
	}
	return -1
}

// SessionEntry is one append-only history record on a ladder.
type SessionEntry struct {
	DateKey string
	RungID  string
	Support SupportLevel
	Result  SessionResult
	Note    string
}

// LadderProgress is the per-(child, ladder) state: current rung, streak
// toward promotion, the support level of the last passing session, and the
// full session history. Created lazily on the first session; never deleted.
type LadderProgress struct {
	ChildID       string
	LadderKey     string
	CurrentRungID string
	StreakCount   int
	LastSupport   SupportLevel
	History       []SessionEntry
}
