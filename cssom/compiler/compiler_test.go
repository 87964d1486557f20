package compiler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cssengine/cascade"
	"cssengine/cssom"
	"cssengine/cssom/compiler"
	"cssengine/istr"
	"cssengine/mediatype"
	"cssengine/style"
)

func TestCompileSimpleRule(t *testing.T) {
	table := istr.NewPool()
	sheet, err := compiler.Compile(`p { color: red; margin: 1px 2px; }`, table)
	require.NoError(t, err)
	require.Len(t, sheet.Rules, 1)
	rule := sheet.Rules[0]
	assert.Equal(t, cssom.RuleSelector, rule.Type)
	require.Len(t, rule.Selectors, 1)

	cs := style.New()
	var state cascade.StateTable
	require.NoError(t, cascade.Apply(rule.Bytecode, cssom.OriginAuthor, rule.Selectors[0].Specificity, cs, &state))
	assert.Equal(t, uint32(0xFFFF0000), cs.Color(style.PropColor))
	assert.Equal(t, style.StateSet, cs.State(style.PropMarginTop))
	assert.Equal(t, style.StateSet, cs.State(style.PropMarginRight))
	assert.Equal(t, style.StateSet, cs.State(style.PropMarginBottom))
	assert.Equal(t, style.StateSet, cs.State(style.PropMarginLeft))
}

func TestCompileImportantDeclaration(t *testing.T) {
	table := istr.NewPool()
	sheet, err := compiler.Compile(`div { color: blue !important; }`, table)
	require.NoError(t, err)
	rule := sheet.Rules[0]
	cs := style.New()
	var state cascade.StateTable
	require.NoError(t, cascade.Apply(rule.Bytecode, cssom.OriginAuthor, rule.Selectors[0].Specificity, cs, &state))
	assert.True(t, state.WonFromAuthor(style.PropColor))
	assert.True(t, state[style.PropColor].Important)
}

func TestSelectorSpecificityOrdering(t *testing.T) {
	table := istr.NewPool()
	sheet, err := compiler.Compile(`#id { color: red; } .cls { color: green; } p { color: blue; }`, table)
	require.NoError(t, err)
	require.Len(t, sheet.Rules, 3)
	specs := make([]uint32, len(sheet.Rules))
	for i, r := range sheet.Rules {
		specs[i] = r.Selectors[0].Specificity
	}
	assert.Greater(t, specs[0], specs[1], "id selector must outrank class selector")
	assert.Greater(t, specs[1], specs[2], "class selector must outrank element selector")
}

func TestCompileDescendantCombinator(t *testing.T) {
	table := istr.NewPool()
	sheet, err := compiler.Compile(`div p { color: red; } div > span { color: green; }`, table)
	require.NoError(t, err)
	require.Len(t, sheet.Rules, 2)

	descendant := sheet.Rules[0].Selectors[0]
	assert.Equal(t, cssom.CombinatorDescendant, descendant.Rightmost.Combinator)
	assert.Equal(t, "p", descendant.Rightmost.Details[0].Name.String())
	assert.Equal(t, "div", descendant.Rightmost.CombinatorName.String())

	child := sheet.Rules[1].Selectors[0]
	assert.Equal(t, cssom.CombinatorChild, child.Rightmost.Combinator)
	assert.Equal(t, "div", child.Rightmost.CombinatorName.String())
}

func TestCompileAtMediaRule(t *testing.T) {
	table := istr.NewPool()
	sheet, err := compiler.Compile(`@media print { body { color: black; } }`, table)
	require.NoError(t, err)
	require.Len(t, sheet.Rules, 2)
	mediaRule := sheet.Rules[0]
	assert.Equal(t, cssom.RuleMedia, mediaRule.Type)
	bodyRule := sheet.Rules[1]
	assert.True(t, sheet.MediaApplies(bodyRule.Index, mediatype.Print))
	assert.False(t, sheet.MediaApplies(bodyRule.Index, mediatype.Screen))
}

func TestCompileInlineStyleAppliesDirectly(t *testing.T) {
	table := istr.NewPool()
	sheet, err := compiler.CompileInlineStyle(`color: red; margin-top: 2px`, table)
	require.NoError(t, err)
	assert.True(t, sheet.InlineStyle)
	require.Len(t, sheet.Rules, 1)
	rule := sheet.Rules[0]
	require.Len(t, rule.Selectors, 1)
	assert.Empty(t, rule.Selectors[0].Rightmost.Details)

	cs := style.New()
	var state cascade.StateTable
	require.NoError(t, cascade.Apply(rule.Bytecode, cssom.OriginAuthor, rule.Selectors[0].Specificity, cs, &state))
	assert.Equal(t, uint32(0xFFFF0000), cs.Color(style.PropColor))
	assert.Equal(t, style.StateSet, cs.State(style.PropMarginTop))
}

func TestExpandBorderShorthand(t *testing.T) {
	table := istr.NewPool()
	sheet, err := compiler.Compile(`p { border: 1px solid red; }`, table)
	require.NoError(t, err)
	rule := sheet.Rules[0]
	cs := style.New()
	var state cascade.StateTable
	require.NoError(t, cascade.Apply(rule.Bytecode, cssom.OriginAuthor, rule.Selectors[0].Specificity, cs, &state))
	assert.Equal(t, style.StateSet, cs.State(style.PropBorderTopWidth))
	assert.Equal(t, style.StateSet, cs.State(style.PropBorderTopStyle))
	assert.Equal(t, uint32(0xFFFF0000), cs.Color(style.PropBorderTopColor))
}
