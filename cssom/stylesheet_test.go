package cssom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cssengine/cssom"
	"cssengine/istr"
	"cssengine/mediatype"
)

func selRule(table istr.Table, specificity uint32, details ...cssom.Detail) *cssom.Rule {
	return &cssom.Rule{
		Type:      cssom.RuleSelector,
		Selectors: []*cssom.Selector{{Rightmost: &cssom.Compound{Details: details}, Specificity: specificity}},
	}
}

func TestAddRuleAssignsMonotonicIndexAndIndexesSelectors(t *testing.T) {
	table := istr.NewPool()
	sheet := cssom.New()

	r0 := selRule(table, 0, cssom.Detail{Type: cssom.DetailElement, Name: table.Intern("p")})
	r1 := selRule(table, 0, cssom.Detail{Type: cssom.DetailClass, Name: table.Intern("warn")})
	idx0 := sheet.AddRule(r0)
	idx1 := sheet.AddRule(r1)
	assert.Equal(t, 0, idx0)
	assert.Equal(t, 1, idx1)
	sheet.Finalize()

	assert.Len(t, sheet.Hash.Find("p"), 1)
	assert.Len(t, sheet.Hash.FindByClass("warn"), 1)
	assert.Empty(t, sheet.Hash.FindUniversal())
}

func TestFinalizeOrdersBucketBySpecificityThenRuleIndex(t *testing.T) {
	table := istr.NewPool()
	sheet := cssom.New()

	high := selRule(table, 0x020000, cssom.Detail{Type: cssom.DetailElement, Name: table.Intern("p")})
	low := selRule(table, 0x010000, cssom.Detail{Type: cssom.DetailElement, Name: table.Intern("p")})
	sheet.AddRule(high)
	sheet.AddRule(low)
	sheet.Finalize()

	matches := sheet.Hash.Find("p")
	require.Len(t, matches, 2)
	assert.Equal(t, uint32(0x010000), matches[0].Specificity)
	assert.Equal(t, uint32(0x020000), matches[1].Specificity)
}

func TestFinalizeTiesPreserveRuleOrder(t *testing.T) {
	table := istr.NewPool()
	sheet := cssom.New()

	first := selRule(table, 0x010000, cssom.Detail{Type: cssom.DetailElement, Name: table.Intern("p")})
	second := selRule(table, 0x010000, cssom.Detail{Type: cssom.DetailElement, Name: table.Intern("p")})
	sheet.AddRule(first)
	sheet.AddRule(second)
	sheet.Finalize()

	matches := sheet.Hash.Find("p")
	require.Len(t, matches, 2)
	assert.Same(t, first.Selectors[0], matches[0])
	assert.Same(t, second.Selectors[0], matches[1])
}

func TestUnnarrowedSelectorFallsIntoUniversalBucket(t *testing.T) {
	table := istr.NewPool()
	sheet := cssom.New()
	universal := selRule(table, 0, cssom.Detail{Type: cssom.DetailElement, Name: table.Intern(cssom.Universal)})
	sheet.AddRule(universal)
	sheet.Finalize()

	assert.Empty(t, sheet.Hash.Find(cssom.Universal))
	assert.Len(t, sheet.Hash.FindUniversal(), 1)
}

func TestCompoundDetailNarrowingFilesUnderSingleBucket(t *testing.T) {
	table := istr.NewPool()
	sheet := cssom.New()

	r := selRule(table, 0x000101,
		cssom.Detail{Type: cssom.DetailElement, Name: table.Intern("div")},
		cssom.Detail{Type: cssom.DetailClass, Name: table.Intern("foo")},
	)
	sheet.AddRule(r)
	sheet.Finalize()

	// "div.foo" narrows by both element and class; it must be filed under
	// exactly one bucket (class outranks element) so a node matching both
	// keys picks it up once, not twice.
	assert.Empty(t, sheet.Hash.Find("div"))
	assert.Len(t, sheet.Hash.FindByClass("foo"), 1)
}

func TestIDNarrowingOutranksClassAndElementForBucketChoice(t *testing.T) {
	table := istr.NewPool()
	sheet := cssom.New()

	r := selRule(table, 0x010101,
		cssom.Detail{Type: cssom.DetailElement, Name: table.Intern("div")},
		cssom.Detail{Type: cssom.DetailClass, Name: table.Intern("foo")},
		cssom.Detail{Type: cssom.DetailID, Name: table.Intern("x")},
	)
	sheet.AddRule(r)
	sheet.Finalize()

	assert.Empty(t, sheet.Hash.Find("div"))
	assert.Empty(t, sheet.Hash.FindByClass("foo"))
	assert.Len(t, sheet.Hash.FindByID("x"), 1)
}

func TestMediaAppliesWalksParentChain(t *testing.T) {
	sheet := cssom.New()
	mediaRule := &cssom.Rule{Type: cssom.RuleMedia, Media: mediatype.Print, ParentKind: cssom.ParentIsSheet}
	mediaIdx := sheet.AddRule(mediaRule)

	nested := &cssom.Rule{Type: cssom.RuleSelector, ParentKind: cssom.ParentIsRule, ParentIdx: mediaIdx}
	nestedIdx := sheet.AddRule(nested)

	assert.True(t, sheet.MediaApplies(nestedIdx, mediatype.Print))
	assert.False(t, sheet.MediaApplies(nestedIdx, mediatype.Screen))
}
