package planner

import (
	"math"

	"github.com/avandermeer/hearthplan/internal/domain"
)

// ApplyAdjustments runs each adjustment as a pure plan-to-plan transform,
// strictly in the order supplied. Order is part of the contract: reduce
// then cap is not the same plan as cap then reduce.
func ApplyAdjustments(plan domain.WeeklyPlan, adjs []domain.Adjustment) domain.WeeklyPlan {
	for _, adj := range adjs {
		plan = ApplyAdjustment(plan, adj)
	}
	return plan
}

// ApplyAdjustment dispatches one adjustment. Unknown or nil variants leave
// the plan untouched.
func ApplyAdjustment(plan domain.WeeklyPlan, adj domain.Adjustment) domain.WeeklyPlan {
	switch a := adj.(type) {
	case domain.LightenDay:
		return applyLightenDay(plan, a)
	case domain.MoveSubject:
		return applyMoveSubject(plan, a)
	case domain.ReduceSubject:
		return applyReduceSubject(plan, a)
	case domain.CapSubjectTime:
		return applyCapSubjectTime(plan, a)
	default:
		return plan
	}
}

// nonEssentialDisableShare is the fraction of a still-over-budget day's
// non-essential items that get parked, counted from the front.
const nonEssentialDisableShare = 0.5

// applyLightenDay halves the day's non-essential items (no app block, no
// skill tags) and, if the accepted total still exceeds the budget, parks
// the first half of that subset in original order.
func applyLightenDay(plan domain.WeeklyPlan, adj domain.LightenDay) domain.WeeklyPlan {
	dayIdx := domain.WeekdayIndex(adj.Day)
	if dayIdx < 0 {
		return plan
	}
	out := clonePlan(plan)
	day := &out.Days[dayIdx]

	var nonEssential []int
	for i, item := range day.Items {
		if !item.IsAppBlock && len(item.SkillTags) == 0 {
			nonEssential = append(nonEssential, i)
			day.Items[i].EstimatedMinutes = ceilHalf(item.EstimatedMinutes)
		}
	}

	if day.AcceptedMinutes() > day.TimeBudgetMinutes {
		disable := int(math.Ceil(float64(len(nonEssential)) * nonEssentialDisableShare))
		for _, idx := range nonEssential[:disable] {
			day.Items[idx].Accepted = false
		}
	}
	return out
}

// applyMoveSubject toggles acceptance so the subject only counts on the
// target days. It never creates items on days that lack them.
func applyMoveSubject(plan domain.WeeklyPlan, adj domain.MoveSubject) domain.WeeklyPlan {
	target := make(map[domain.Weekday]bool, len(adj.ToDays))
	for _, d := range adj.ToDays {
		target[d] = true
	}
	out := clonePlan(plan)
	for di := range out.Days {
		day := &out.Days[di]
		for i, item := range day.Items {
			if item.Subject != adj.Subject {
				continue
			}
			if target[day.Day] {
				day.Items[i].Accepted = true
			} else if !item.IsAppBlock {
				day.Items[i].Accepted = false
			}
		}
	}
	return out
}

// applyReduceSubject scales matching items by the factor (ceiling),
// accepted or not. Factor sanity is Validate's job, not ours.
func applyReduceSubject(plan domain.WeeklyPlan, adj domain.ReduceSubject) domain.WeeklyPlan {
	out := clonePlan(plan)
	for di := range out.Days {
		for i, item := range out.Days[di].Items {
			if item.IsAppBlock || item.Subject != adj.Subject {
				continue
			}
			out.Days[di].Items[i].EstimatedMinutes = int(math.Ceil(float64(item.EstimatedMinutes) * adj.Factor))
		}
	}
	return out
}

// applyCapSubjectTime clamps matching items down to the cap; it never
// raises an estimate.
func applyCapSubjectTime(plan domain.WeeklyPlan, adj domain.CapSubjectTime) domain.WeeklyPlan {
	out := clonePlan(plan)
	for di := range out.Days {
		for i, item := range out.Days[di].Items {
			if item.IsAppBlock || item.Subject != adj.Subject {
				continue
			}
			if item.EstimatedMinutes > adj.MaxMinutesPerDay {
				out.Days[di].Items[i].EstimatedMinutes = adj.MaxMinutesPerDay
			}
		}
	}
	return out
}

func ceilHalf(minutes int) int {
	return int(math.Ceil(float64(minutes) / 2))
}

// clonePlan deep-copies the day item slices so transforms stay pure.
func clonePlan(plan domain.WeeklyPlan) domain.WeeklyPlan {
	out := plan
	for i := range plan.Days {
		items := make([]domain.PlanItem, len(plan.Days[i].Items))
		copy(items, plan.Days[i].Items)
		out.Days[i].Items = items
	}
	out.SkipSuggestions = append([]domain.SkipSuggestion(nil), plan.SkipSuggestions...)
	return out
}
