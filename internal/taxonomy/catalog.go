package taxonomy

import "github.com/avandermeer/hearthplan/internal/domain"

// DefaultCatalog is the built-in skill tag catalog. Entries are grouped by
// domain; the two-segment prefix ("math.subtraction") is the matching
// family used throughout the planner.
var DefaultCatalog = []domain.SkillTagDefinition{
	{
		Tag:                 "math.facts.addition",
		Label:               "Addition facts to 20",
		EvidenceDescription: "Answers mixed addition facts within about 3 seconds each",
		CommonSupports:      []string{"number line", "counters"},
	},
	{
		Tag:                 "math.facts.fluency",
		Label:               "Mixed math facts fluency",
		EvidenceDescription: "Completes a one-minute mixed facts sprint without skipping rows",
		CommonSupports:      []string{"timer", "fact chart"},
	},
	{
		Tag:                 "math.subtraction.regroup",
		Label:               "Subtraction with regrouping",
		EvidenceDescription: "Regroups across the tens place without prompting on 2-digit problems",
		CommonSupports:      []string{"base-ten blocks", "worked example card"},
	},
	{
		Tag:                 "math.fractions.compare",
		Label:               "Comparing fractions",
		EvidenceDescription: "Orders unit fractions and explains why the larger denominator is smaller",
		CommonSupports:      []string{"fraction strips"},
	},
	{
		Tag:                 "ela.writing.sentence",
		Label:               "Complete sentence writing",
		EvidenceDescription: "Writes a capitalized, punctuated sentence from a prompt unaided",
		CommonSupports:      []string{"sentence starter card", "word bank"},
	},
	{
		Tag:                 "ela.writing.copywork",
		Label:               "Copywork accuracy",
		EvidenceDescription: "Copies a model sentence with matching spacing and punctuation",
		CommonSupports:      []string{"raised-line paper"},
	},
	{
		Tag:                 "ela.spelling.patterns",
		Label:               "Spelling pattern transfer",
		EvidenceDescription: "Applies the week's pattern in dictation, not just on the list",
		CommonSupports:      []string{"pattern card"},
	},
	{
		Tag:                 "reading.fluency.decoding",
		Label:               "Decoding fluency",
		EvidenceDescription: "Reads a grade-level passage with fewer than 3 stumbles per page",
		CommonSupports:      []string{"finger tracking", "echo reading"},
	},
	{
		Tag:                 "reading.fluency.readaloud",
		Label:               "Read-aloud stamina",
		EvidenceDescription: "Reads aloud for 10 minutes keeping phrasing and expression",
		CommonSupports:      []string{"shared reading"},
	},
	{
		Tag:                 "reading.comprehension.retell",
		Label:               "Story retell",
		EvidenceDescription: "Retells beginning, middle, and end with one prompt or fewer",
		CommonSupports:      []string{"retell glove", "picture sequence"},
	},
	{
		Tag:                 "motor.handwriting.letters",
		Label:               "Letter formation",
		EvidenceDescription: "Forms target letters top-down with consistent sizing",
		CommonSupports:      []string{"highlighted lines", "hand-over-hand tracing"},
	},
	{
		Tag:                 "habits.focus.independence",
		Label:               "Independent work stamina",
		EvidenceDescription: "Works a familiar task for 10 minutes without an adult at the table",
		CommonSupports:      []string{"visual timer", "first-then card"},
	},
}

// Lookup returns the catalog entry for tag, or nil when the tag is not in
// the catalog.
func Lookup(tag string) *domain.SkillTagDefinition {
	for i := range DefaultCatalog {
		if DefaultCatalog[i].Tag == tag {
			return &DefaultCatalog[i]
		}
	}
	return nil
}

// LookupFamily returns the first catalog entry whose tag family-matches the
// given tag, preferring an exact hit.
func LookupFamily(tag string) *domain.SkillTagDefinition {
	if def := Lookup(tag); def != nil {
		return def
	}
	for i := range DefaultCatalog {
		if TagsMatch(DefaultCatalog[i].Tag, tag) {
			return &DefaultCatalog[i]
		}
	}
	return nil
}
