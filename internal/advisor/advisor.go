package advisor

import (
	"fmt"

	"github.com/avandermeer/hearthplan/internal/domain"
	"github.com/avandermeer/hearthplan/internal/taxonomy"
)

// Advice is the advisor's recommendation for one plan item.
type Advice struct {
	Action    domain.ItemAction
	SkillTag  string // the priority skill that drove the decision, if any
	Rationale string
}

// Advise maps one item's skill tags plus the snapshot's mastery evidence to
// a keep/modify/skip recommendation. Rule order: no data keeps, no tag
// match keeps, an independent-consistent match skips, a mostly-independent
// match modifies, anything else keeps with the matched skill's evidence as
// rationale.
func Advise(item domain.PlanItem, snapshot *domain.SkillSnapshot) Advice {
	if snapshot == nil || len(snapshot.PrioritySkills) == 0 {
		return Advice{Action: domain.ActionKeep, Rationale: "no skill data — keep as planned"}
	}

	matched := matchPrioritySkills(item.SkillTags, snapshot.PrioritySkills)
	if len(matched) == 0 {
		return Advice{Action: domain.ActionKeep, Rationale: "no priority skill match — keep for coverage"}
	}

	for _, skill := range matched {
		if skill.EffectiveGate() == domain.GateIndependentConsistent {
			return Advice{
				Action:    domain.ActionSkip,
				SkillTag:  skill.Tag,
				Rationale: fmt.Sprintf("%s is independent and consistent — skip and bank the time", skill.Label),
			}
		}
	}
	for _, skill := range matched {
		if skill.EffectiveGate() == domain.GateMostlyIndependent {
			return Advice{
				Action:    domain.ActionModify,
				SkillTag:  skill.Tag,
				Rationale: fmt.Sprintf("%s is mostly independent — convert to 1-2 problems plus a quick check", skill.Label),
			}
		}
	}

	first := matched[0]
	rationale := fmt.Sprintf("%s still needs practice", first.Label)
	if def := taxonomy.LookupFamily(first.Tag); def != nil {
		rationale = def.EvidenceDescription
	}
	return Advice{Action: domain.ActionKeep, SkillTag: first.Tag, Rationale: rationale}
}

// AdviseAll evaluates a batch of items, keyed by item id. App blocks are
// always kept without consulting the snapshot. Items share no state, so
// evaluation order never changes an individual result.
func AdviseAll(items []domain.PlanItem, snapshot *domain.SkillSnapshot) map[string]Advice {
	out := make(map[string]Advice, len(items))
	for _, item := range items {
		if item.IsAppBlock {
			out[item.ID] = Advice{Action: domain.ActionKeep, Rationale: "daily app block — always keep"}
			continue
		}
		out[item.ID] = Advise(item, snapshot)
	}
	return out
}

func matchPrioritySkills(tags []string, skills []domain.PrioritySkill) []domain.PrioritySkill {
	var matched []domain.PrioritySkill
	for _, skill := range skills {
		for _, tag := range tags {
			if taxonomy.TagsMatch(tag, skill.Tag) {
				matched = append(matched, skill)
				break
			}
		}
	}
	return matched
}
