package domain

// AppBlock is a fixed recurring daily activity (e.g. a practice app).
// App blocks are scheduled once per day, always accepted, outside the
// greedy placement logic.
type AppBlock struct {
	Label          string
	DefaultMinutes int
}

// SkipSuggestion records why an assignment should be skipped or modified,
// and what to do instead.
type SkipSuggestion struct {
	AssignmentID string
	Action       ItemAction
	Reason       string
	Replacement  string
	Evidence     string
}

// AssignmentCandidate is an externally-created unit of workbook work
// (typically from a photographed page) awaiting scheduling. The advisor
// pass may rewrite Action and attach a SkipSuggestion before placement.
type AssignmentCandidate struct {
	ID               string
	Subject          SubjectBucket
	WorkbookName     string
	LessonName       string
	EstimatedMinutes int
	DifficultyCues   []string
	Action           ItemAction
	SkipSuggestion   *SkipSuggestion
}

// PlanItem is one schedulable unit on a day. Accepted=false means the item
// stays visible but is excluded from time totals.
type PlanItem struct {
	ID               string
	Title            string
	Subject          SubjectBucket
	EstimatedMinutes int
	SkillTags        []string
	Accepted         bool
	IsAppBlock       bool
	AssignmentID     string
	SkipSuggestion   *SkipSuggestion
}

// DayPlan is one weekday's item list under a soft minute budget.
type DayPlan struct {
	Day               Weekday
	TimeBudgetMinutes int
	Items             []PlanItem
}

// AcceptedMinutes sums the estimated minutes of accepted items.
func (d DayPlan) AcceptedMinutes() int {
	total := 0
	for _, it := range d.Items {
		if it.Accepted {
			total += it.EstimatedMinutes
		}
	}
	return total
}

// RemainingMinutes is the budget left after accepted items; may go negative
// since budgets are soft.
func (d DayPlan) RemainingMinutes() int {
	return d.TimeBudgetMinutes - d.AcceptedMinutes()
}

// WeeklyPlan always holds exactly five DayPlans in Monday-first order.
type WeeklyPlan struct {
	Days            [5]DayPlan
	SkipSuggestions []SkipSuggestion
	MinimumWinText  string
}

// DayTypeConfig flags one weekday as normal, light, or appointment.
type DayTypeConfig struct {
	Day     Weekday
	DayType DayType
}

// DefaultDayTypes returns the stock week: Wednesday light, everything else
// normal.
func DefaultDayTypes() []DayTypeConfig {
	configs := make([]DayTypeConfig, 0, len(Weekdays))
	for _, day := range Weekdays {
		dt := DayNormal
		if day == Wednesday {
			dt = DayLight
		}
		configs = append(configs, DayTypeConfig{Day: day, DayType: dt})
	}
	return configs
}
