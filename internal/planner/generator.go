package planner

import (
	"fmt"
	"math"
	"strings"

	"github.com/avandermeer/hearthplan/internal/advisor"
	"github.com/avandermeer/hearthplan/internal/domain"
)

const (
	microRepMinutes = 8
	practiceMinutes = 15
	// modifyScale shrinks a modified assignment's estimate.
	modifyScale = 0.6
)

// practiceDayIdx are the Monday/Wednesday/Friday slots used for
// developing/supported practice reps.
var practiceDayIdx = [3]int{0, 2, 4}

// GenerateInput is everything a caller supplies for one plan generation.
type GenerateInput struct {
	Snapshot    *domain.SkillSnapshot
	HoursPerDay float64
	AppBlocks   []domain.AppBlock
	Assignments []domain.AssignmentCandidate
	Adjustments []domain.Adjustment
	NewID       IDGen
}

// GenerateDraftPlan lays out the five-day week: app blocks seeded on every
// day, priority-skill reps injected by level, assignments placed greedily
// onto the day with the most tracked budget left, then the accumulated
// adjustments applied in order. Budgets are soft: overruns stay visible
// instead of being clipped.
func GenerateDraftPlan(in GenerateInput) domain.WeeklyPlan {
	newID := in.NewID
	if newID == nil {
		newID = NewUUIDGen()
	}

	minutesPerDay := int(in.HoursPerDay * 60)
	appMinutes := 0
	for _, block := range in.AppBlocks {
		appMinutes += block.DefaultMinutes
	}
	remainingPerDay := minutesPerDay - appMinutes
	if remainingPerDay < 0 {
		remainingPerDay = 0
	}

	var plan domain.WeeklyPlan
	var tracked [5]int
	for i, day := range domain.Weekdays {
		plan.Days[i] = domain.DayPlan{Day: day, TimeBudgetMinutes: minutesPerDay}
		tracked[i] = remainingPerDay
		for _, block := range in.AppBlocks {
			plan.Days[i].Items = append(plan.Days[i].Items, domain.PlanItem{
				ID:               newID(),
				Title:            block.Label,
				Subject:          domain.SubjectOther,
				EstimatedMinutes: block.DefaultMinutes,
				Accepted:         true,
				IsAppBlock:       true,
			})
		}
	}

	assignments, suggestions := advisor.ApplySnapshotSuggestions(in.Assignments, in.Snapshot)
	plan.SkipSuggestions = suggestions

	if in.Snapshot != nil {
		for _, skill := range in.Snapshot.PrioritySkills {
			switch skill.Level {
			case domain.LevelEmerging:
				for i := range plan.Days {
					plan.Days[i].Items = append(plan.Days[i].Items, skillRep(newID(), skill, "micro rep", microRepMinutes))
					tracked[i] -= microRepMinutes
				}
			case domain.LevelDeveloping, domain.LevelSupported:
				for _, i := range practiceDayIdx {
					plan.Days[i].Items = append(plan.Days[i].Items, skillRep(newID(), skill, "practice", practiceMinutes))
					tracked[i] -= practiceMinutes
				}
			}
		}
	}

	for _, a := range assignments {
		if a.Action == domain.ActionSkip {
			continue
		}
		minutes := a.EstimatedMinutes
		if a.Action == domain.ActionModify {
			minutes = int(math.Ceil(float64(a.EstimatedMinutes) * modifyScale))
		}

		// First day wins ties: strict > while scanning Monday-first.
		best := 0
		for i := 1; i < len(tracked); i++ {
			if tracked[i] > tracked[best] {
				best = i
			}
		}
		plan.Days[best].Items = append(plan.Days[best].Items, domain.PlanItem{
			ID:               newID(),
			Title:            assignmentTitle(a),
			Subject:          a.Subject,
			EstimatedMinutes: minutes,
			Accepted:         true,
			AssignmentID:     a.ID,
			SkipSuggestion:   a.SkipSuggestion,
		})
		tracked[best] -= minutes
	}

	plan = ApplyAdjustments(plan, in.Adjustments)
	plan.MinimumWinText = minimumWinText(in.Snapshot)
	return plan
}

func skillRep(id string, skill domain.PrioritySkill, kind string, minutes int) domain.PlanItem {
	return domain.PlanItem{
		ID:               id,
		Title:            fmt.Sprintf("%s (%s)", skill.Label, kind),
		Subject:          subjectForTag(skill.Tag),
		EstimatedMinutes: minutes,
		SkillTags:        []string{skill.Tag},
		Accepted:         true,
	}
}

func assignmentTitle(a domain.AssignmentCandidate) string {
	if a.WorkbookName != "" && a.LessonName != "" {
		return fmt.Sprintf("%s: %s", a.WorkbookName, a.LessonName)
	}
	if a.LessonName != "" {
		return a.LessonName
	}
	return a.WorkbookName
}

// subjectForTag buckets a skill tag by its leading dot-segment.
func subjectForTag(tag string) domain.SubjectBucket {
	head, _, _ := strings.Cut(tag, ".")
	switch head {
	case "math":
		return domain.SubjectMath
	case "ela", "motor":
		return domain.SubjectLanguageArts
	case "reading":
		return domain.SubjectReading
	case "science":
		return domain.SubjectScience
	case "history", "social":
		return domain.SubjectSocialStudies
	default:
		return domain.SubjectOther
	}
}

func minimumWinText(snapshot *domain.SkillSnapshot) string {
	if snapshot == nil || len(snapshot.PrioritySkills) == 0 {
		return "Minimum win: one app block finished calmly."
	}
	first := snapshot.PrioritySkills[0]
	return fmt.Sprintf("Minimum win: one small rep of %s, even on a hard day.", first.Label)
}
