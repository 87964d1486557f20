package style_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cssengine/bytecode"
	"cssengine/style"
)

func keywordIndex(id style.PropertyID, kw string) uint16 {
	for i, k := range style.Table[id].Keywords {
		if k == kw {
			return bytecode.ValueKeywordBase + uint16(i)
		}
	}
	panic("keyword not found: " + kw)
}

func TestPositionMatchAndIsPositioned(t *testing.T) {
	cs := style.New()
	cs.SetKeyword(style.PropPosition, keywordIndex(style.PropPosition, "absolute"))
	p := cs.Position()
	assert.True(t, p.Match("absolute"))
	assert.False(t, p.Match("static"))
	assert.True(t, p.IsPositioned())
}

func TestPositionStaticIsNotPositioned(t *testing.T) {
	cs := style.New()
	cs.SetKeyword(style.PropPosition, keywordIndex(style.PropPosition, "static"))
	assert.False(t, cs.Position().IsPositioned())
}

func TestPositionUnsetDoesNotMatch(t *testing.T) {
	cs := style.New()
	p := cs.Position()
	assert.False(t, p.Match("static"))
	assert.False(t, p.IsPositioned())
}
