package style_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cssengine/style"
)

func TestApplyInitialDefersOnHandlerProperties(t *testing.T) {
	for _, id := range []style.PropertyID{style.PropColor, style.PropFontFamily, style.PropQuotes} {
		cs := style.New()
		assert.False(t, cs.ApplyInitial(id), "property %d should defer to the handler", id)
		assert.Equal(t, style.StateUnset, cs.State(id))
	}
}

func TestApplyInitialKeyword(t *testing.T) {
	cs := style.New()
	assert.True(t, cs.ApplyInitial(style.PropDisplay))
	assert.Equal(t, "inline", cs.Keyword(style.PropDisplay))
}

func TestApplyInitialLength(t *testing.T) {
	cs := style.New()
	assert.True(t, cs.ApplyInitial(style.PropTextIndent))
	assert.Equal(t, style.StateSet, cs.State(style.PropTextIndent))
}

func TestApplyInitialCurrentColorFollowsResolvedColor(t *testing.T) {
	cs := style.New()
	cs.SetColor(style.PropColor, 0xABCDEFFF)
	assert.True(t, cs.ApplyInitial(style.PropOutlineColor))
	assert.Equal(t, uint32(0xABCDEFFF), cs.Color(style.PropOutlineColor))
}

func TestApplyInitialVoiceFamilyEmptyList(t *testing.T) {
	cs := style.New()
	assert.True(t, cs.ApplyInitial(style.PropVoiceFamily))
	list, ok := cs.Extra(style.PropVoiceFamily).(*style.FamilyListValue)
	assert.True(t, ok)
	assert.Empty(t, list.Entries)
}
