package planner

import (
	"testing"

	"github.com/avandermeer/hearthplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func planWith(budget int, items map[domain.Weekday][]domain.PlanItem) domain.WeeklyPlan {
	var plan domain.WeeklyPlan
	for i, day := range domain.Weekdays {
		plan.Days[i] = domain.DayPlan{
			Day:               day,
			TimeBudgetMinutes: budget,
			Items:             items[day],
		}
	}
	return plan
}

func mathWork(id string, minutes int) domain.PlanItem {
	return domain.PlanItem{
		ID: id, Title: "Math page", Subject: domain.SubjectMath,
		EstimatedMinutes: minutes, Accepted: true, AssignmentID: "as-" + id,
	}
}

func appItem(id string) domain.PlanItem {
	return domain.PlanItem{
		ID: id, Title: "Reading Eggs", Subject: domain.SubjectOther,
		EstimatedMinutes: 20, Accepted: true, IsAppBlock: true,
	}
}

func skillItem(id string) domain.PlanItem {
	return domain.PlanItem{
		ID: id, Title: "Regrouping (practice)", Subject: domain.SubjectMath,
		EstimatedMinutes: 15, SkillTags: []string{"math.subtraction.regroup"}, Accepted: true,
	}
}

func TestReduceSubject_HalvesThirtyToFifteen(t *testing.T) {
	plan := planWith(60, map[domain.Weekday][]domain.PlanItem{
		domain.Monday: {mathWork("m1", 30)},
	})
	out := ApplyAdjustment(plan, domain.ReduceSubject{Subject: domain.SubjectMath, Factor: 0.5})
	assert.Equal(t, 15, out.Days[0].Items[0].EstimatedMinutes)
	// Input plan untouched.
	assert.Equal(t, 30, plan.Days[0].Items[0].EstimatedMinutes)
}

func TestReduceSubject_CeilsAndIgnoresAcceptance(t *testing.T) {
	parked := mathWork("m1", 25)
	parked.Accepted = false
	plan := planWith(60, map[domain.Weekday][]domain.PlanItem{domain.Tuesday: {parked}})

	out := ApplyAdjustment(plan, domain.ReduceSubject{Subject: domain.SubjectMath, Factor: 0.5})
	assert.Equal(t, 13, out.Days[1].Items[0].EstimatedMinutes)
	assert.False(t, out.Days[1].Items[0].Accepted)
}

func TestCapSubjectTime_NeverRaises(t *testing.T) {
	plan := planWith(60, map[domain.Weekday][]domain.PlanItem{
		domain.Monday:  {mathWork("m1", 30)},
		domain.Tuesday: {mathWork("m2", 10)},
	})
	out := ApplyAdjustment(plan, domain.CapSubjectTime{Subject: domain.SubjectMath, MaxMinutesPerDay: 20})
	assert.Equal(t, 20, out.Days[0].Items[0].EstimatedMinutes)
	assert.Equal(t, 10, out.Days[1].Items[0].EstimatedMinutes)
}

func TestCapSubjectTime_SkipsAppBlocksAndOtherSubjects(t *testing.T) {
	other := domain.PlanItem{ID: "w1", Subject: domain.SubjectLanguageArts, EstimatedMinutes: 30, Accepted: true}
	plan := planWith(60, map[domain.Weekday][]domain.PlanItem{
		domain.Monday: {appItem("app1"), other},
	})
	out := ApplyAdjustment(plan, domain.CapSubjectTime{Subject: domain.SubjectMath, MaxMinutesPerDay: 5})
	assert.Equal(t, 20, out.Days[0].Items[0].EstimatedMinutes)
	assert.Equal(t, 30, out.Days[0].Items[1].EstimatedMinutes)
}

func TestMoveSubject_TogglesAcceptance(t *testing.T) {
	plan := planWith(60, map[domain.Weekday][]domain.PlanItem{
		domain.Monday:   {mathWork("m1", 20)},
		domain.Tuesday:  {mathWork("m2", 20)},
		domain.Thursday: {mathWork("m3", 20)},
	})
	out := ApplyAdjustment(plan, domain.MoveSubject{
		Subject: domain.SubjectMath,
		ToDays:  []domain.Weekday{domain.Tuesday, domain.Thursday},
	})

	assert.False(t, out.Days[0].Items[0].Accepted, "Monday math parked")
	assert.True(t, out.Days[1].Items[0].Accepted)
	assert.True(t, out.Days[3].Items[0].Accepted)
}

func TestMoveSubject_ReenablesOnTargetDaysOnly(t *testing.T) {
	parked := mathWork("m2", 20)
	parked.Accepted = false
	plan := planWith(60, map[domain.Weekday][]domain.PlanItem{
		domain.Tuesday: {parked},
		domain.Friday:  {},
	})
	out := ApplyAdjustment(plan, domain.MoveSubject{
		Subject: domain.SubjectMath,
		ToDays:  []domain.Weekday{domain.Tuesday, domain.Friday},
	})

	assert.True(t, out.Days[1].Items[0].Accepted, "re-enabled on a target day")
	// The operator only toggles: nothing is created on Friday.
	assert.Empty(t, out.Days[4].Items)
}

func TestMoveSubject_LeavesAppBlocksAccepted(t *testing.T) {
	app := appItem("app1")
	app.Subject = domain.SubjectMath
	plan := planWith(60, map[domain.Weekday][]domain.PlanItem{domain.Monday: {app}})

	out := ApplyAdjustment(plan, domain.MoveSubject{
		Subject: domain.SubjectMath,
		ToDays:  []domain.Weekday{domain.Friday},
	})
	assert.True(t, out.Days[0].Items[0].Accepted)
}

func TestLightenDay_HalvesNonEssentialItems(t *testing.T) {
	plan := planWith(120, map[domain.Weekday][]domain.PlanItem{
		domain.Wednesday: {appItem("app1"), mathWork("m1", 30), skillItem("s1"), mathWork("m2", 25)},
	})
	out := ApplyAdjustment(plan, domain.LightenDay{Day: domain.Wednesday})

	day := out.Days[2]
	assert.Equal(t, 20, day.Items[0].EstimatedMinutes, "app block untouched")
	assert.Equal(t, 15, day.Items[1].EstimatedMinutes)
	assert.Equal(t, 15, day.Items[2].EstimatedMinutes, "skill-tagged item untouched")
	assert.Equal(t, 13, day.Items[3].EstimatedMinutes)
	// 20+15+15+13 = 63 <= 120: nothing parked.
	for _, item := range day.Items {
		assert.True(t, item.Accepted)
	}
}

func TestLightenDay_ParksHalfWhenStillOverBudget(t *testing.T) {
	plan := planWith(40, map[domain.Weekday][]domain.PlanItem{
		domain.Monday: {appItem("app1"), mathWork("m1", 30), mathWork("m2", 30)},
	})
	out := ApplyAdjustment(plan, domain.LightenDay{Day: domain.Monday})

	day := out.Days[0]
	// 20 + 15 + 15 = 50 > 40: the first ceil(2/2)=1 non-essential parks.
	assert.False(t, day.Items[1].Accepted)
	assert.True(t, day.Items[2].Accepted)
	assert.True(t, day.Items[0].Accepted, "app block never parks")
}

func TestApplyAdjustments_OrderMatters(t *testing.T) {
	base := planWith(60, map[domain.Weekday][]domain.PlanItem{
		domain.Monday: {mathWork("m1", 30)},
	})

	reduceThenCap := ApplyAdjustments(base, []domain.Adjustment{
		domain.ReduceSubject{Subject: domain.SubjectMath, Factor: 0.5},
		domain.CapSubjectTime{Subject: domain.SubjectMath, MaxMinutesPerDay: 20},
	})
	capThenReduce := ApplyAdjustments(base, []domain.Adjustment{
		domain.CapSubjectTime{Subject: domain.SubjectMath, MaxMinutesPerDay: 20},
		domain.ReduceSubject{Subject: domain.SubjectMath, Factor: 0.5},
	})

	assert.Equal(t, 15, reduceThenCap.Days[0].Items[0].EstimatedMinutes)
	assert.Equal(t, 10, capThenReduce.Days[0].Items[0].EstimatedMinutes)
}

func TestApplyAdjustment_NilAndUnknownAreNoOps(t *testing.T) {
	plan := planWith(60, map[domain.Weekday][]domain.PlanItem{
		domain.Monday: {mathWork("m1", 30)},
	})
	out := ApplyAdjustment(plan, nil)
	require.Equal(t, plan, out)
}
