package domain

type SubjectBucket string

const (
	SubjectMath          SubjectBucket = "math"
	SubjectLanguageArts  SubjectBucket = "language_arts"
	SubjectReading       SubjectBucket = "reading"
	SubjectScience       SubjectBucket = "science"
	SubjectSocialStudies SubjectBucket = "social_studies"
	SubjectOther         SubjectBucket = "other"
)

type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
)

// Weekdays is the fixed Monday-first ordering every WeeklyPlan uses.
var Weekdays = [5]Weekday{Monday, Tuesday, Wednesday, Thursday, Friday}

// WeekdayIndex returns the position of day in the Monday-first order,
// or -1 for anything that is not one of the five plan days.
func WeekdayIndex(day Weekday) int {
	for i, d := range Weekdays {
		if d == day {
			return i
		}
	}
	return -1
}

type SkillLevel string

const (
	LevelEmerging   SkillLevel = "emerging"
	LevelDeveloping SkillLevel = "developing"
	LevelSupported  SkillLevel = "supported"
	LevelPractice   SkillLevel = "practice"
	LevelSecure     SkillLevel = "secure"
)

type MasteryGate string

const (
	GateNotYet                MasteryGate = "not_yet"
	GateWithHelp              MasteryGate = "with_help"
	GateMostlyIndependent     MasteryGate = "mostly_independent"
	GateIndependentConsistent MasteryGate = "independent_consistent"
)

// DeriveGate maps the coarse five-level skill scale onto the mastery gate
// scale. Unknown levels are treated as not-yet.
func DeriveGate(level SkillLevel) MasteryGate {
	switch level {
	case LevelEmerging:
		return GateNotYet
	case LevelDeveloping, LevelSupported:
		return GateWithHelp
	case LevelPractice:
		return GateMostlyIndependent
	case LevelSecure:
		return GateIndependentConsistent
	default:
		return GateNotYet
	}
}

type SupportLevel string

const (
	SupportNone         SupportLevel = "none"
	SupportEnvironment  SupportLevel = "environment"
	SupportPrompts      SupportLevel = "prompts"
	SupportTools        SupportLevel = "tools"
	SupportHandOverHand SupportLevel = "hand_over_hand"
)

// SupportRank places support levels on their total order
// (none < environment < prompts < tools < hand_over_hand).
// Unknown values rank highest so a typo never counts as less support.
func SupportRank(s SupportLevel) int {
	switch s {
	case SupportNone:
		return 0
	case SupportEnvironment:
		return 1
	case SupportPrompts:
		return 2
	case SupportTools:
		return 3
	case SupportHandOverHand:
		return 4
	default:
		return 5
	}
}

type SessionResult string

const (
	ResultPass    SessionResult = "pass"
	ResultPartial SessionResult = "partial"
	ResultMiss    SessionResult = "miss"
)

type ItemAction string

const (
	ActionKeep   ItemAction = "keep"
	ActionModify ItemAction = "modify"
	ActionSkip   ItemAction = "skip"
)

type DayType string

const (
	DayNormal      DayType = "normal"
	DayLight       DayType = "light"
	DayAppointment DayType = "appointment"
)

type PaceStatus string

const (
	PaceAhead    PaceStatus = "ahead"
	PaceOnTrack  PaceStatus = "on_track"
	PaceBehind   PaceStatus = "behind"
	PaceCritical PaceStatus = "critical"
)
