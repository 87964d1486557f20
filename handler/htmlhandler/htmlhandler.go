/*
Package htmlhandler is a concrete handler.Handler implementation over
golang.org/x/net/html parse trees, adapted from the douceuradapter's
tree-walking helpers.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package htmlhandler

import (
	"strings"

	"golang.org/x/net/html"

	"cssengine/handler"
	"cssengine/istr"

	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return tracing.Select("cssengine.handler.htmlhandler")
}

// Handler holds a string table and answers every handler.Handler query
// directly from the *html.Node passed to each call.
type Handler struct {
	table istr.Table
}

// New creates a Handler interning node names and attribute values into
// table.
func New(table istr.Table) *Handler {
	return &Handler{table: table}
}

var _ handler.Handler = (*Handler)(nil)

func asHTMLNode(n handler.Node) *html.Node {
	hn, _ := n.(*html.Node)
	return hn
}

func (h *Handler) NodeName(n handler.Node) (istr.Handle, error) {
	hn := asHTMLNode(n)
	if hn == nil || hn.Type != html.ElementNode {
		return istr.Handle{}, nil
	}
	return h.table.Intern(hn.Data), nil
}

func (h *Handler) NodeClasses(n handler.Node) ([]istr.Handle, error) {
	hn := asHTMLNode(n)
	if hn == nil {
		return nil, nil
	}
	v, ok := attr(hn, "class")
	if !ok {
		return nil, nil
	}
	fields := strings.Fields(v)
	classes := make([]istr.Handle, len(fields))
	for i, f := range fields {
		classes[i] = h.table.Intern(f)
	}
	return classes, nil
}

func (h *Handler) NodeID(n handler.Node) (istr.Handle, bool, error) {
	hn := asHTMLNode(n)
	if hn == nil {
		return istr.Handle{}, false, nil
	}
	v, ok := attr(hn, "id")
	if !ok || v == "" {
		return istr.Handle{}, false, nil
	}
	return h.table.Intern(v), true, nil
}

func (h *Handler) ParentNode(n handler.Node) (handler.Node, bool, error) {
	hn := asHTMLNode(n)
	if hn == nil {
		return nil, false, nil
	}
	p := elementParent(hn)
	if p == nil {
		return nil, false, nil
	}
	return p, true, nil
}

func (h *Handler) SiblingNode(n handler.Node) (handler.Node, bool, error) {
	hn := asHTMLNode(n)
	if hn == nil {
		return nil, false, nil
	}
	s := precedingElementSibling(hn)
	if s == nil {
		return nil, false, nil
	}
	return s, true, nil
}

func (h *Handler) NamedAncestorNode(n handler.Node, name istr.Handle) (handler.Node, bool, error) {
	hn := asHTMLNode(n)
	if hn == nil {
		return nil, false, nil
	}
	for p := elementParent(hn); p != nil; p = elementParent(p) {
		if p.Data == name.String() {
			return p, true, nil
		}
	}
	return nil, false, nil
}

func (h *Handler) NamedParentNode(n handler.Node, name istr.Handle) (handler.Node, bool, error) {
	hn := asHTMLNode(n)
	if hn == nil {
		return nil, false, nil
	}
	p := elementParent(hn)
	if p == nil || p.Data != name.String() {
		return nil, false, nil
	}
	return p, true, nil
}

func (h *Handler) NamedSiblingNode(n handler.Node, name istr.Handle) (handler.Node, bool, error) {
	hn := asHTMLNode(n)
	if hn == nil {
		return nil, false, nil
	}
	s := precedingElementSibling(hn)
	if s == nil || s.Data != name.String() {
		return nil, false, nil
	}
	return s, true, nil
}

func (h *Handler) NodeHasName(n handler.Node, name istr.Handle) (bool, error) {
	hn := asHTMLNode(n)
	return hn != nil && hn.Type == html.ElementNode && hn.Data == name.String(), nil
}

func (h *Handler) NodeHasClass(n handler.Node, class istr.Handle) (bool, error) {
	classes, err := h.NodeClasses(n)
	if err != nil {
		return false, err
	}
	want := class.String()
	for _, c := range classes {
		if c.String() == want {
			return true, nil
		}
	}
	return false, nil
}

func (h *Handler) NodeHasID(n handler.Node, id istr.Handle) (bool, error) {
	got, ok, err := h.NodeID(n)
	if err != nil || !ok {
		return false, err
	}
	return got.String() == id.String(), nil
}

func (h *Handler) NodeHasAttribute(n handler.Node, name istr.Handle) (bool, error) {
	hn := asHTMLNode(n)
	if hn == nil {
		return false, nil
	}
	_, ok := attr(hn, name.String())
	return ok, nil
}

func (h *Handler) NodeHasAttributeEqual(n handler.Node, name, value istr.Handle) (bool, error) {
	hn := asHTMLNode(n)
	if hn == nil {
		return false, nil
	}
	v, ok := attr(hn, name.String())
	return ok && v == value.String(), nil
}

func (h *Handler) NodeHasAttributeDashmatch(n handler.Node, name, value istr.Handle) (bool, error) {
	hn := asHTMLNode(n)
	if hn == nil {
		return false, nil
	}
	v, ok := attr(hn, name.String())
	if !ok {
		return false, nil
	}
	want := value.String()
	return v == want || strings.HasPrefix(v, want+"-"), nil
}

func (h *Handler) NodeHasAttributeIncludes(n handler.Node, name, value istr.Handle) (bool, error) {
	hn := asHTMLNode(n)
	if hn == nil {
		return false, nil
	}
	v, ok := attr(hn, name.String())
	if !ok {
		return false, nil
	}
	want := value.String()
	for _, f := range strings.Fields(v) {
		if f == want {
			return true, nil
		}
	}
	return false, nil
}

func (h *Handler) NodeIsFirstChild(n handler.Node) (bool, error) {
	hn := asHTMLNode(n)
	if hn == nil {
		return false, nil
	}
	return precedingElementSibling(hn) == nil, nil
}

// NodeIsLink reports whether n is an <a> element with an href attribute.
// NodeIsVisited, NodeIsHover, NodeIsActive, NodeIsFocus all require
// browser state this package has no access to parsing a static document;
// they report false rather than guessing.
func (h *Handler) NodeIsLink(n handler.Node) (bool, error) {
	hn := asHTMLNode(n)
	if hn == nil || hn.Type != html.ElementNode {
		return false, nil
	}
	if hn.Data != "a" {
		return false, nil
	}
	_, ok := attr(hn, "href")
	return ok, nil
}

func (h *Handler) NodeIsVisited(n handler.Node) (bool, error) { return false, nil }
func (h *Handler) NodeIsHover(n handler.Node) (bool, error)   { return false, nil }
func (h *Handler) NodeIsActive(n handler.Node) (bool, error)  { return false, nil }
func (h *Handler) NodeIsFocus(n handler.Node) (bool, error)   { return false, nil }

func (h *Handler) NodeIsLang(n handler.Node, lang istr.Handle) (bool, error) {
	hn := asHTMLNode(n)
	for cur := hn; cur != nil; cur = elementParent(cur) {
		v, ok := attr(cur, "lang")
		if ok {
			want := lang.String()
			return v == want || strings.HasPrefix(strings.ToLower(v), strings.ToLower(want)+"-"), nil
		}
	}
	return false, nil
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func elementParent(n *html.Node) *html.Node {
	if n.Parent == nil || n.Parent.Type != html.ElementNode {
		return nil
	}
	return n.Parent
}

func precedingElementSibling(n *html.Node) *html.Node {
	for s := n.PrevSibling; s != nil; s = s.PrevSibling {
		if s.Type == html.ElementNode {
			return s
		}
	}
	return nil
}
