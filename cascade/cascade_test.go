package cascade_test

import (
	"testing"

	"cssengine/bytecode"
	"cssengine/cascade"
	"cssengine/cssom"
	"cssengine/style"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func colorDecl(id style.PropertyID, rgba uint32, important bool) []bytecode.Word {
	return []bytecode.Word{
		bytecode.EncodeOPV(bytecode.Opcode(id), bytecode.ValueSet, important, false),
		bytecode.Word(rgba),
	}
}

func TestApplySetsColor(t *testing.T) {
	blob := &bytecode.Blob{Words: colorDecl(style.PropColor, 0xFF0000FF, false)}
	cs := style.New()
	var state cascade.StateTable
	err := cascade.Apply(blob, cssom.OriginAuthor, 1, cs, &state)
	require.NoError(t, err)
	assert.Equal(t, style.StateSet, cs.State(style.PropColor))
	assert.Equal(t, uint32(0xFF0000FF), cs.Color(style.PropColor))
}

func TestLaterEqualSpecificityWins(t *testing.T) {
	cs := style.New()
	var state cascade.StateTable
	first := &bytecode.Blob{Words: colorDecl(style.PropColor, 0xFF0000FF, false)}
	second := &bytecode.Blob{Words: colorDecl(style.PropColor, 0x00FF00FF, false)}
	require.NoError(t, cascade.Apply(first, cssom.OriginAuthor, 5, cs, &state))
	require.NoError(t, cascade.Apply(second, cssom.OriginAuthor, 5, cs, &state))
	assert.Equal(t, uint32(0x00FF00FF), cs.Color(style.PropColor))
}

func TestHigherSpecificityWinsRegardlessOfOrder(t *testing.T) {
	cs := style.New()
	var state cascade.StateTable
	low := &bytecode.Blob{Words: colorDecl(style.PropColor, 0xFF0000FF, false)}
	high := &bytecode.Blob{Words: colorDecl(style.PropColor, 0x0000FFFF, false)}
	require.NoError(t, cascade.Apply(high, cssom.OriginAuthor, 0x010000, cs, &state))
	require.NoError(t, cascade.Apply(low, cssom.OriginAuthor, 1, cs, &state))
	assert.Equal(t, uint32(0x0000FFFF), cs.Color(style.PropColor))
}

func TestUAImportantBeatsAuthorImportant(t *testing.T) {
	cs := style.New()
	var state cascade.StateTable
	ua := &bytecode.Blob{Words: colorDecl(style.PropColor, 0x0000FFFF, true)}
	author := &bytecode.Blob{Words: colorDecl(style.PropColor, 0xFF0000FF, true)}
	require.NoError(t, cascade.Apply(ua, cssom.OriginUA, 0, cs, &state))
	require.NoError(t, cascade.Apply(author, cssom.OriginAuthor, 0x010000, cs, &state))
	assert.Equal(t, uint32(0x0000FFFF), cs.Color(style.PropColor), "UA !important must survive an author declaration")
}

func TestUserImportantBeatsUAImportant(t *testing.T) {
	cs := style.New()
	var state cascade.StateTable
	ua := &bytecode.Blob{Words: colorDecl(style.PropColor, 0x0000FFFF, true)}
	user := &bytecode.Blob{Words: colorDecl(style.PropColor, 0x00FF00FF, true)}
	require.NoError(t, cascade.Apply(ua, cssom.OriginUA, 0, cs, &state))
	require.NoError(t, cascade.Apply(user, cssom.OriginUser, 0, cs, &state))
	assert.Equal(t, uint32(0x00FF00FF), cs.Color(style.PropColor))
}

func TestInheritBitSetsStateInherit(t *testing.T) {
	blob := &bytecode.Blob{Words: []bytecode.Word{
		bytecode.EncodeOPV(bytecode.Opcode(style.PropColor), bytecode.ValueUnset, false, true),
	}}
	cs := style.New()
	var state cascade.StateTable
	require.NoError(t, cascade.Apply(blob, cssom.OriginAuthor, 1, cs, &state))
	assert.Equal(t, style.StateInherit, cs.State(style.PropColor))
}

func TestKeywordFamilyRoundTrips(t *testing.T) {
	idx := 0
	for i, kw := range style.Table[style.PropDisplay].Keywords {
		if kw == "block" {
			idx = i
		}
	}
	blob := &bytecode.Blob{Words: []bytecode.Word{
		bytecode.EncodeOPV(bytecode.Opcode(style.PropDisplay), bytecode.ValueKeywordBase+uint16(idx), false, false),
	}}
	cs := style.New()
	var state cascade.StateTable
	require.NoError(t, cascade.Apply(blob, cssom.OriginAuthor, 0, cs, &state))
	assert.Equal(t, style.DisplayBlock, cs.Display())
}

func TestCursorOverrunPropagatesAsError(t *testing.T) {
	blob := &bytecode.Blob{Words: []bytecode.Word{
		bytecode.EncodeOPV(bytecode.Opcode(style.PropColor), bytecode.ValueSet, false, false),
		// missing color operand word
	}}
	cs := style.New()
	var state cascade.StateTable
	err := cascade.Apply(blob, cssom.OriginAuthor, 0, cs, &state)
	assert.ErrorIs(t, err, bytecode.ErrCursorOverrun)
}
