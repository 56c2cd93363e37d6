package advisor

import (
	"testing"

	"github.com/avandermeer/hearthplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mathItem() domain.PlanItem {
	return domain.PlanItem{
		ID:        "item-1",
		Title:     "Subtraction page 14",
		Subject:   domain.SubjectMath,
		SkillTags: []string{"math.subtraction.regroup"},
		Accepted:  true,
	}
}

func snapshotWith(skills ...domain.PrioritySkill) *domain.SkillSnapshot {
	return &domain.SkillSnapshot{ChildID: "child-1", PrioritySkills: skills}
}

func TestAdvise_NoSnapshotKeeps(t *testing.T) {
	advice := Advise(mathItem(), nil)
	assert.Equal(t, domain.ActionKeep, advice.Action)

	advice = Advise(mathItem(), &domain.SkillSnapshot{})
	assert.Equal(t, domain.ActionKeep, advice.Action)
}

func TestAdvise_NoTagMatchKeepsForCoverage(t *testing.T) {
	snap := snapshotWith(domain.PrioritySkill{Tag: "ela.writing.sentence", Label: "Sentences", Level: domain.LevelSecure})
	advice := Advise(mathItem(), snap)
	assert.Equal(t, domain.ActionKeep, advice.Action)
	assert.Contains(t, advice.Rationale, "coverage")
}

func TestAdvise_IndependentConsistentSkips(t *testing.T) {
	snap := snapshotWith(domain.PrioritySkill{
		Tag:         "math.subtraction.regroup",
		Label:       "Regrouping",
		Level:       domain.LevelEmerging,
		MasteryGate: domain.GateIndependentConsistent,
	})
	advice := Advise(mathItem(), snap)
	assert.Equal(t, domain.ActionSkip, advice.Action)
	assert.Equal(t, "math.subtraction.regroup", advice.SkillTag)
}

func TestAdvise_SecureLevelEqualsExplicitGate(t *testing.T) {
	// A secure level with no explicit gate must decide identically to an
	// explicit independent_consistent gate.
	explicit := Advise(mathItem(), snapshotWith(domain.PrioritySkill{
		Tag: "math.subtraction.regroup", Label: "Regrouping",
		Level: domain.LevelEmerging, MasteryGate: domain.GateIndependentConsistent,
	}))
	derived := Advise(mathItem(), snapshotWith(domain.PrioritySkill{
		Tag: "math.subtraction.regroup", Label: "Regrouping",
		Level: domain.LevelSecure,
	}))
	assert.Equal(t, explicit, derived)
}

func TestAdvise_MostlyIndependentModifies(t *testing.T) {
	snap := snapshotWith(domain.PrioritySkill{
		Tag: "math.subtraction.regroup", Label: "Regrouping", Level: domain.LevelPractice,
	})
	advice := Advise(mathItem(), snap)
	assert.Equal(t, domain.ActionModify, advice.Action)
	assert.Contains(t, advice.Rationale, "1-2 problems")
}

func TestAdvise_FamilyPrefixMatches(t *testing.T) {
	snap := snapshotWith(domain.PrioritySkill{
		Tag: "math.subtraction.borrowing", Label: "Borrowing", Level: domain.LevelSecure,
	})
	advice := Advise(mathItem(), snap)
	assert.Equal(t, domain.ActionSkip, advice.Action)
}

func TestAdvise_EmergingKeepsWithEvidenceRationale(t *testing.T) {
	snap := snapshotWith(domain.PrioritySkill{
		Tag: "math.subtraction.regroup", Label: "Regrouping", Level: domain.LevelEmerging,
	})
	advice := Advise(mathItem(), snap)
	assert.Equal(t, domain.ActionKeep, advice.Action)
	// Catalog evidence text backs the keep.
	assert.Contains(t, advice.Rationale, "Regroups across the tens place")
}

func TestAdviseAll_AppBlocksAlwaysKeep(t *testing.T) {
	snap := snapshotWith(domain.PrioritySkill{
		Tag: "math.subtraction.regroup", Label: "Regrouping", Level: domain.LevelSecure,
	})
	app := domain.PlanItem{ID: "app-1", Title: "Math app", IsAppBlock: true, SkillTags: []string{"math.subtraction.regroup"}}
	items := []domain.PlanItem{app, mathItem()}

	advice := AdviseAll(items, snap)
	require.Len(t, advice, 2)
	assert.Equal(t, domain.ActionKeep, advice["app-1"].Action)
	assert.Equal(t, domain.ActionSkip, advice["item-1"].Action)
}
