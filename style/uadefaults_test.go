package style_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cssengine/style"
)

func TestGlobalDefaultsCoversColor(t *testing.T) {
	def, ok := style.GlobalDefaults[style.PropColor]
	assert.True(t, ok)
	assert.Equal(t, style.DefaultColor, def.Kind)
	assert.Equal(t, uint32(0xFF000000), def.Color)
}

func TestPerElementDefaultsBlockLevelElements(t *testing.T) {
	for _, name := range []string{"p", "div", "body", "h1", "table"} {
		defs, ok := style.PerElementDefaults[name]
		assert.True(t, ok, "expected a UA default entry for %q", name)
		found := false
		want := "block"
		if name == "table" {
			want = "table"
		}
		for _, d := range defs {
			if d.Property == style.PropDisplay {
				found = true
				assert.Equal(t, want, d.Keyword)
			}
		}
		if name != "table" {
			assert.True(t, found, "%q should default display to block", name)
		}
	}
}

func TestPerElementDefaultsInlineElements(t *testing.T) {
	for _, name := range []string{"span", "a", "strong", "em"} {
		defs := style.PerElementDefaults[name]
		var display string
		for _, d := range defs {
			if d.Property == style.PropDisplay {
				display = d.Keyword
			}
		}
		assert.Equal(t, "inline", display, "%q should default display to inline", name)
	}
}

func TestPerElementDefaultsListItem(t *testing.T) {
	defs := style.PerElementDefaults["li"]
	assert.Len(t, defs, 1)
	assert.Equal(t, "list-item", defs[0].Keyword)
}
