package domain

// SkillTagDefinition is an immutable catalog entry for one learnable skill.
// Tags are hierarchical dot-paths such as "math.subtraction.regroup".
type SkillTagDefinition struct {
	Tag                 string
	Label               string
	EvidenceDescription string
	CommonSupports      []string
}

// PrioritySkill flags a skill as a current focus inside a child's snapshot.
// MasteryGate, when set, overrides the level-derived gate.
type PrioritySkill struct {
	Tag         string
	Label       string
	Level       SkillLevel
	MasteryGate MasteryGate // empty = derive from Level
}

// EffectiveGate returns the explicit mastery gate when present, otherwise
// the gate derived from the coarse level.
func (p PrioritySkill) EffectiveGate() MasteryGate {
	if p.MasteryGate != "" {
		return p.MasteryGate
	}
	return DeriveGate(p.Level)
}

// StopRule pairs a free-text trigger phrase with a remediation action.
// Triggers are matched by case-insensitive substring containment against
// assignment difficulty cues.
type StopRule struct {
	Label   string
	Trigger string
	Action  string
}

// SkillSnapshot is the per-child input boundary for plan generation:
// current priority skills, stop rules, and evidence focus descriptions.
type SkillSnapshot struct {
	ChildID        string
	PrioritySkills []PrioritySkill
	StopRules      []StopRule
	Evidence       []string
}
