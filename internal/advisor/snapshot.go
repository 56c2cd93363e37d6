package advisor

import (
	"fmt"
	"math"
	"strings"

	"github.com/avandermeer/hearthplan/internal/domain"
)

// longTaskMinutes is the threshold above which an assignment gets a
// "break it up" modify suggestion when no stop rule fires first.
const longTaskMinutes = 20

const defaultEvidence = "Watch for independent, calm completion before trusting mastery"

// ApplySnapshotSuggestions is the lighter advisor pass run during plan
// generation. For each candidate: the first stop rule whose trigger appears
// in a difficulty cue wins and converts the candidate to modify; failing
// that, anything over longTaskMinutes gets the stock long-task suggestion.
// Candidates are returned annotated, alongside every suggestion produced.
func ApplySnapshotSuggestions(candidates []domain.AssignmentCandidate, snapshot *domain.SkillSnapshot) ([]domain.AssignmentCandidate, []domain.SkipSuggestion) {
	out := make([]domain.AssignmentCandidate, len(candidates))
	copy(out, candidates)

	var suggestions []domain.SkipSuggestion
	for i := range out {
		suggestion := suggestFor(&out[i], snapshot)
		if suggestion == nil {
			continue
		}
		out[i].Action = domain.ActionModify
		out[i].SkipSuggestion = suggestion
		suggestions = append(suggestions, *suggestion)
	}
	return out, suggestions
}

func suggestFor(candidate *domain.AssignmentCandidate, snapshot *domain.SkillSnapshot) *domain.SkipSuggestion {
	if snapshot != nil {
		for _, rule := range snapshot.StopRules {
			if !cueMatches(candidate.DifficultyCues, rule.Trigger) {
				continue
			}
			return &domain.SkipSuggestion{
				AssignmentID: candidate.ID,
				Action:       domain.ActionModify,
				Reason:       rule.Trigger,
				Replacement:  rule.Action,
				Evidence:     firstEvidence(snapshot),
			}
		}
	}

	if candidate.EstimatedMinutes > longTaskMinutes {
		half := int(math.Ceil(float64(candidate.EstimatedMinutes) / 2))
		return &domain.SkipSuggestion{
			AssignmentID: candidate.ID,
			Action:       domain.ActionModify,
			Reason:       "long task",
			Replacement:  fmt.Sprintf("Split into two %d-minute passes, or stop at the halfway mark", half),
			Evidence:     firstEvidence(snapshot),
		}
	}
	return nil
}

// cueMatches reports whether the rule trigger appears inside any difficulty
// cue, case-insensitively.
func cueMatches(cues []string, trigger string) bool {
	trigger = strings.ToLower(strings.TrimSpace(trigger))
	if trigger == "" {
		return false
	}
	for _, cue := range cues {
		if strings.Contains(strings.ToLower(cue), trigger) {
			return true
		}
	}
	return false
}

func firstEvidence(snapshot *domain.SkillSnapshot) string {
	if snapshot != nil && len(snapshot.Evidence) > 0 {
		return snapshot.Evidence[0]
	}
	return defaultEvidence
}
