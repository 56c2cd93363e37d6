package planner

import (
	"testing"

	"github.com/avandermeer/hearthplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allNormalExcept(flagged map[domain.Weekday]domain.DayType) []domain.DayTypeConfig {
	var out []domain.DayTypeConfig
	for _, day := range domain.Weekdays {
		dt := domain.DayNormal
		if v, ok := flagged[day]; ok {
			dt = v
		}
		out = append(out, domain.DayTypeConfig{Day: day, DayType: dt})
	}
	return out
}

func TestReflow_NoFlaggedDaysIsNoOp(t *testing.T) {
	plan := planWith(60, map[domain.Weekday][]domain.PlanItem{
		domain.Monday:    {appItem("app1"), mathWork("m1", 30)},
		domain.Wednesday: {mathWork("m2", 20)},
	})
	out := Reflow(plan, allNormalExcept(nil), NewSequenceGen("re"))
	assert.Equal(t, plan, out)
}

func TestReflow_LightDayGetsTemplateAndDisplacesWork(t *testing.T) {
	plan := planWith(60, map[domain.Weekday][]domain.PlanItem{
		domain.Monday:    {mathWork("m1", 40)},
		domain.Tuesday:   {mathWork("m2", 10)},
		domain.Wednesday: {appItem("app1"), mathWork("m3", 30)},
		domain.Thursday:  {mathWork("m4", 10)},
	})
	out := Reflow(plan, allNormalExcept(map[domain.Weekday]domain.DayType{
		domain.Wednesday: domain.DayLight,
	}), NewSequenceGen("re"))

	wed := out.Days[2]
	require.Len(t, wed.Items, 4, "app block plus three fillers")
	assert.True(t, wed.Items[0].IsAppBlock)
	titles := []string{wed.Items[1].Title, wed.Items[2].Title, wed.Items[3].Title}
	assert.Equal(t, []string{"Copywork sentence", "Math facts sprint", "Read-aloud + win card"}, titles)
	for _, item := range wed.Items[1:] {
		assert.NotEmpty(t, item.ID)
		assert.NotEmpty(t, item.SkillTags)
		assert.True(t, item.Accepted)
	}

	// m3 lands on Friday, the emptiest normal day.
	require.Len(t, out.Days[4].Items, 1)
	assert.Equal(t, "m3", out.Days[4].Items[0].ID)
}

func TestReflow_RedistributionRecomputesLoads(t *testing.T) {
	plan := planWith(60, map[domain.Weekday][]domain.PlanItem{
		domain.Monday:    {mathWork("m1", 30)},
		domain.Tuesday:   {mathWork("m2", 30)},
		domain.Wednesday: {mathWork("w1", 40), mathWork("w2", 40)},
		domain.Thursday:  {mathWork("m3", 30)},
		domain.Friday:    {mathWork("m4", 30)},
	})
	out := Reflow(plan, allNormalExcept(map[domain.Weekday]domain.DayType{
		domain.Wednesday: domain.DayLight,
	}), NewSequenceGen("re"))

	// All four normal days tie at 30 remaining: w1 goes to Monday, which
	// then has -10 left, so w2 goes to Tuesday.
	require.Len(t, out.Days[0].Items, 2)
	assert.Equal(t, "w1", out.Days[0].Items[1].ID)
	require.Len(t, out.Days[1].Items, 2)
	assert.Equal(t, "w2", out.Days[1].Items[1].ID)
}

func TestReflow_ParkedItemsAreNotDisplaced(t *testing.T) {
	parked := mathWork("w1", 40)
	parked.Accepted = false
	plan := planWith(60, map[domain.Weekday][]domain.PlanItem{
		domain.Wednesday: {parked},
	})
	out := Reflow(plan, allNormalExcept(map[domain.Weekday]domain.DayType{
		domain.Wednesday: domain.DayLight,
	}), NewSequenceGen("re"))

	for _, di := range []int{0, 1, 3, 4} {
		assert.Empty(t, out.Days[di].Items)
	}
	// Wednesday holds only the template.
	assert.Len(t, out.Days[2].Items, 3)
}

func TestReflow_AllDaysFlaggedDropsDisplacedWork(t *testing.T) {
	plan := planWith(60, map[domain.Weekday][]domain.PlanItem{
		domain.Monday:  {mathWork("m1", 30)},
		domain.Tuesday: {mathWork("m2", 30)},
	})
	flagged := map[domain.Weekday]domain.DayType{}
	for _, day := range domain.Weekdays {
		flagged[day] = domain.DayAppointment
	}
	out := Reflow(plan, allNormalExcept(flagged), NewSequenceGen("re"))

	for _, day := range out.Days {
		require.Len(t, day.Items, 3, string(day.Day))
		for _, item := range day.Items {
			assert.NotEmpty(t, item.SkillTags, "only template fillers survive")
		}
	}
}
