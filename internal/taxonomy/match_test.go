package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTagsMatch_Exact(t *testing.T) {
	assert.True(t, TagsMatch("math.subtraction.regroup", "math.subtraction.regroup"))
}

func TestTagsMatch_SharedFamily(t *testing.T) {
	assert.True(t, TagsMatch("math.subtraction.regroup", "math.subtraction.borrowing"))
	assert.True(t, TagsMatch("math.subtraction", "math.subtraction.regroup"))
}

func TestTagsMatch_DifferentFamily(t *testing.T) {
	assert.False(t, TagsMatch("math.subtraction.regroup", "math.facts.addition"))
	assert.False(t, TagsMatch("math.subtraction.regroup", "ela.writing.sentence"))
}

func TestTagsMatch_ShortTags(t *testing.T) {
	// Single-segment tags only match exactly.
	assert.False(t, TagsMatch("math", "math.subtraction.regroup"))
	assert.True(t, TagsMatch("math", "math"))
	assert.False(t, TagsMatch("", "math.facts.addition"))
}

func TestTagsMatch_PrefixNeedsDotBoundary(t *testing.T) {
	assert.False(t, TagsMatch("math.fact", "math.facts.addition"))
}

func TestFamilyPrefix(t *testing.T) {
	assert.Equal(t, "math.subtraction", FamilyPrefix("math.subtraction.regroup"))
	assert.Equal(t, "math.subtraction", FamilyPrefix("math.subtraction"))
	assert.Equal(t, "", FamilyPrefix("math"))
}

func TestLookupFamily(t *testing.T) {
	def := LookupFamily("math.subtraction.borrowing")
	if assert.NotNil(t, def) {
		assert.Equal(t, "math.subtraction.regroup", def.Tag)
	}
	assert.Nil(t, LookupFamily("chess.openings.sicilian"))
}
