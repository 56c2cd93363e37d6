package planner

import "github.com/avandermeer/hearthplan/internal/domain"

// lightDayFillers is the fixed non-app portion of the light-day template.
var lightDayFillers = []domain.PlanItem{
	{
		Title:            "Copywork sentence",
		Subject:          domain.SubjectLanguageArts,
		EstimatedMinutes: 10,
		SkillTags:        []string{"ela.writing.copywork"},
		Accepted:         true,
	},
	{
		Title:            "Math facts sprint",
		Subject:          domain.SubjectMath,
		EstimatedMinutes: 5,
		SkillTags:        []string{"math.facts.fluency"},
		Accepted:         true,
	},
	{
		Title:            "Read-aloud + win card",
		Subject:          domain.SubjectReading,
		EstimatedMinutes: 10,
		SkillTags:        []string{"reading.fluency.readaloud"},
		Accepted:         true,
	},
}

// Reflow converts light/appointment days to the fixed template and pushes
// their displaced work onto the least-loaded normal days. Runs after
// generation, on the laid-out week. With no flagged days it is a no-op;
// with no normal days left, displaced work is dropped silently.
func Reflow(plan domain.WeeklyPlan, dayTypes []domain.DayTypeConfig, newID IDGen) domain.WeeklyPlan {
	if newID == nil {
		newID = NewUUIDGen()
	}

	flagged := make(map[domain.Weekday]bool)
	for _, cfg := range dayTypes {
		if cfg.DayType == domain.DayLight || cfg.DayType == domain.DayAppointment {
			flagged[cfg.Day] = true
		}
	}
	if len(flagged) == 0 {
		return plan
	}

	out := clonePlan(plan)

	var displaced []domain.PlanItem
	for di := range out.Days {
		day := &out.Days[di]
		if !flagged[day.Day] {
			continue
		}

		var kept []domain.PlanItem
		for _, item := range day.Items {
			if item.IsAppBlock {
				kept = append(kept, item)
			} else if item.Accepted {
				displaced = append(displaced, item)
			}
		}
		for _, filler := range lightDayFillers {
			filler.ID = newID()
			kept = append(kept, filler)
		}
		day.Items = kept
	}

	var normalIdx []int
	for di := range out.Days {
		if !flagged[out.Days[di].Day] {
			normalIdx = append(normalIdx, di)
		}
	}
	if len(normalIdx) == 0 {
		return out
	}

	// Recompute loads per placement so later items see earlier ones.
	for _, item := range displaced {
		best := normalIdx[0]
		for _, di := range normalIdx[1:] {
			if out.Days[di].RemainingMinutes() > out.Days[best].RemainingMinutes() {
				best = di
			}
		}
		out.Days[best].Items = append(out.Days[best].Items, item)
	}

	return out
}
