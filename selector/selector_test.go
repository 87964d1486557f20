package selector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cssengine/cascade"
	"cssengine/cssom"
	"cssengine/cssom/compiler"
	"cssengine/handler"
	"cssengine/istr"
	"cssengine/mediatype"
	"cssengine/selector"
	"cssengine/style"
)

// fakeNode is a minimal document tree node for exercising the matcher
// without pulling in golang.org/x/net/html.
type fakeNode struct {
	name    string
	classes []string
	id      string
	parent  *fakeNode
	prev    *fakeNode
}

// fakeHandler answers every handler.Handler query against a tree of
// fakeNodes, interning names via an istr.Pool.
type fakeHandler struct {
	table istr.Table
}

func newFakeHandler() *fakeHandler { return &fakeHandler{table: istr.NewPool()} }

func (h *fakeHandler) node(n handler.Node) *fakeNode { fn, _ := n.(*fakeNode); return fn }

func (h *fakeHandler) NodeName(n handler.Node) (istr.Handle, error) {
	return h.table.Intern(h.node(n).name), nil
}

func (h *fakeHandler) NodeClasses(n handler.Node) ([]istr.Handle, error) {
	fn := h.node(n)
	out := make([]istr.Handle, len(fn.classes))
	for i, c := range fn.classes {
		out[i] = h.table.Intern(c)
	}
	return out, nil
}

func (h *fakeHandler) NodeID(n handler.Node) (istr.Handle, bool, error) {
	fn := h.node(n)
	if fn.id == "" {
		return istr.Handle{}, false, nil
	}
	return h.table.Intern(fn.id), true, nil
}

func (h *fakeHandler) ParentNode(n handler.Node) (handler.Node, bool, error) {
	fn := h.node(n)
	if fn.parent == nil {
		return nil, false, nil
	}
	return fn.parent, true, nil
}

func (h *fakeHandler) SiblingNode(n handler.Node) (handler.Node, bool, error) {
	fn := h.node(n)
	if fn.prev == nil {
		return nil, false, nil
	}
	return fn.prev, true, nil
}

func (h *fakeHandler) NamedAncestorNode(n handler.Node, name istr.Handle) (handler.Node, bool, error) {
	for p := h.node(n).parent; p != nil; p = p.parent {
		if p.name == name.String() {
			return p, true, nil
		}
	}
	return nil, false, nil
}

func (h *fakeHandler) NamedParentNode(n handler.Node, name istr.Handle) (handler.Node, bool, error) {
	p := h.node(n).parent
	if p == nil || p.name != name.String() {
		return nil, false, nil
	}
	return p, true, nil
}

func (h *fakeHandler) NamedSiblingNode(n handler.Node, name istr.Handle) (handler.Node, bool, error) {
	s := h.node(n).prev
	if s == nil || s.name != name.String() {
		return nil, false, nil
	}
	return s, true, nil
}

func (h *fakeHandler) NodeHasName(n handler.Node, name istr.Handle) (bool, error) {
	return h.node(n).name == name.String(), nil
}

func (h *fakeHandler) NodeHasClass(n handler.Node, class istr.Handle) (bool, error) {
	for _, c := range h.node(n).classes {
		if c == class.String() {
			return true, nil
		}
	}
	return false, nil
}

func (h *fakeHandler) NodeHasID(n handler.Node, id istr.Handle) (bool, error) {
	return h.node(n).id == id.String(), nil
}

func (h *fakeHandler) NodeHasAttribute(n handler.Node, name istr.Handle) (bool, error) {
	return false, nil
}
func (h *fakeHandler) NodeHasAttributeEqual(n handler.Node, name, value istr.Handle) (bool, error) {
	return false, nil
}
func (h *fakeHandler) NodeHasAttributeDashmatch(n handler.Node, name, value istr.Handle) (bool, error) {
	return false, nil
}
func (h *fakeHandler) NodeHasAttributeIncludes(n handler.Node, name, value istr.Handle) (bool, error) {
	return false, nil
}

func (h *fakeHandler) NodeIsFirstChild(n handler.Node) (bool, error) {
	return h.node(n).prev == nil, nil
}
func (h *fakeHandler) NodeIsLink(n handler.Node) (bool, error)    { return false, nil }
func (h *fakeHandler) NodeIsVisited(n handler.Node) (bool, error) { return false, nil }
func (h *fakeHandler) NodeIsHover(n handler.Node) (bool, error)   { return false, nil }
func (h *fakeHandler) NodeIsActive(n handler.Node) (bool, error)  { return false, nil }
func (h *fakeHandler) NodeIsFocus(n handler.Node) (bool, error)   { return false, nil }
func (h *fakeHandler) NodeIsLang(n handler.Node, lang istr.Handle) (bool, error) {
	return false, nil
}

func (h *fakeHandler) NodePresentationalHint(n handler.Node, id style.PropertyID) (handler.Hint, error) {
	return handler.Hint{NotSet: true}, nil
}
func (h *fakeHandler) UADefaultForProperty(id style.PropertyID) (handler.Hint, error) {
	return handler.Hint{NotSet: true}, nil
}
func (h *fakeHandler) ComputeFontSize(parentFontSize *style.Length, size style.Length) (style.Length, error) {
	return size, nil
}

var _ handler.Handler = (*fakeHandler)(nil)

func matchOne(t *testing.T, css string, node *fakeNode) *style.ComputedStyle {
	t.Helper()
	h := newFakeHandler()
	sheet, err := compiler.Compile(css, h.table)
	require.NoError(t, err)
	cs := style.New()
	var state cascade.StateTable
	err = selector.Match(sheet, cssom.OriginAuthor, mediatype.Screen, h, node, istr.Handle{}, cs, &state)
	require.NoError(t, err)
	return cs
}

func TestMatchElementSelector(t *testing.T) {
	node := &fakeNode{name: "p"}
	cs := matchOne(t, `p { color: red; }`, node)
	assert.Equal(t, uint32(0xFFFF0000), cs.Color(style.PropColor))
}

func TestMatchClassSelector(t *testing.T) {
	node := &fakeNode{name: "div", classes: []string{"warn"}}
	cs := matchOne(t, `.warn { color: red; }`, node)
	assert.Equal(t, uint32(0xFFFF0000), cs.Color(style.PropColor))
}

func TestMatchIDOutranksClassAndElement(t *testing.T) {
	node := &fakeNode{name: "div", id: "x", classes: []string{"warn"}}
	cs := matchOne(t, `div { color: blue; } .warn { color: green; } #x { color: red; }`, node)
	assert.Equal(t, uint32(0xFFFF0000), cs.Color(style.PropColor))
}

func TestMatchDescendantCombinator(t *testing.T) {
	root := &fakeNode{name: "div"}
	child := &fakeNode{name: "p", parent: root}
	cs := matchOne(t, `div p { color: red; }`, child)
	assert.Equal(t, uint32(0xFFFF0000), cs.Color(style.PropColor))

	notMatched := matchOne(t, `span p { color: red; }`, child)
	assert.Equal(t, style.StateUnset, notMatched.State(style.PropColor))
}

func TestMatchChildCombinator(t *testing.T) {
	root := &fakeNode{name: "div"}
	mid := &fakeNode{name: "section", parent: root}
	leaf := &fakeNode{name: "p", parent: mid}

	cs := matchOne(t, `div > p { color: red; }`, leaf)
	assert.Equal(t, style.StateUnset, cs.State(style.PropColor), "p is a grandchild, not a direct child, of div")

	cs2 := matchOne(t, `section > p { color: red; }`, leaf)
	assert.Equal(t, uint32(0xFFFF0000), cs2.Color(style.PropColor))
}

func TestMatchAdjacentSiblingCombinator(t *testing.T) {
	first := &fakeNode{name: "h1"}
	second := &fakeNode{name: "p", prev: first}
	cs := matchOne(t, `h1 + p { color: red; }`, second)
	assert.Equal(t, uint32(0xFFFF0000), cs.Color(style.PropColor))

	cs2 := matchOne(t, `h2 + p { color: red; }`, second)
	assert.Equal(t, style.StateUnset, cs2.State(style.PropColor))
}

func TestMatchNoSelectorHashBucketReturnsEarly(t *testing.T) {
	node := &fakeNode{name: "em"}
	cs := matchOne(t, `p { color: red; } .foo { color: green; }`, node)
	assert.Equal(t, style.StateUnset, cs.State(style.PropColor))
}

func TestMatchUniversalSelector(t *testing.T) {
	node := &fakeNode{name: "span"}
	cs := matchOne(t, `* { color: red; }`, node)
	assert.Equal(t, uint32(0xFFFF0000), cs.Color(style.PropColor))
}
