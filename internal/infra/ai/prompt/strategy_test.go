package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mylance/mylance-api/internal/domain/brand"
)

func ptr(s string) *string { return &s }

func TestStrategyIncludesOnlyFilledFields(t *testing.T) {
	a := &brand.Analysis{
		IdealCustomer:  ptr("seed-stage founders"),
		DecisionMaker:  ptr("CEO"),
		ContentPillars: []string{"pricing", "hiring"},
	}

	out := Strategy(a, "")

	assert.Contains(t, out, "Ideal Customer: seed-stage founders")
	assert.Contains(t, out, "Decision Makers: CEO")
	assert.Contains(t, out, "Content Pillars: pricing; hiring")
	assert.NotContains(t, out, "Pain Points")
	assert.NotContains(t, out, "Key Topics")
}

func TestStrategyAppendsGlobalDirection(t *testing.T) {
	out := Strategy(&brand.Analysis{}, "own the fractional-exec niche")
	assert.Contains(t, out, "own the fractional-exec niche")

	bare := Strategy(&brand.Analysis{}, "")
	assert.NotContains(t, bare, "thought-leadership direction")
}

func TestRefineKeepsBothInputs(t *testing.T) {
	out := Refine("the current strategy", "make it punchier")
	assert.Contains(t, out, "the current strategy")
	assert.Contains(t, out, "make it punchier")
	assert.Less(t, strings.Index(out, "the current strategy"), strings.Index(out, "make it punchier"))
}

func TestPromptsUserCarriesCount(t *testing.T) {
	out := PromptsUser("the strategy", 30)
	assert.Contains(t, out, "Generate 30 LinkedIn post prompts")
	assert.Contains(t, out, "the strategy")
}
