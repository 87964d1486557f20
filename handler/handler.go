/*
Package handler declares the client-provided handler table (spec §6):
the sole way the engine ever touches a document tree. Every navigation
and predicate the selector matcher and cascade interpreter need is routed
through a Handler implementation the caller supplies; the engine itself
never imports a DOM package.

A concrete adapter for golang.org/x/net/html trees lives in the htmlhandler
sub-package.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package handler

import (
	"cssengine/istr"
	"cssengine/style"
)

// Node is an opaque handle to a document node; the engine never
// dereferences it, only passes it back into Handler calls.
type Node interface{}

// Hint is the result of a presentational-hint query (spec §4.8): a
// decoded bytecode-shaped value the cascade interpreter installs as if
// it had come from an author declaration of specificity 0.
type Hint struct {
	// NotSet, when true, is the PROPERTY_NOT_SET in-band signal of spec
	// §6 — "not an error but a signal to skip".
	NotSet bool
	Sub    uint16
	Color  uint32
	Length style.Length
	Str    istr.Handle
	Extra  interface{}
}

// Handler is the client-provided navigation and introspection table
// (spec §6). All methods return a Node/bool/error per the mechanical
// mapping of the wire spec: no method here signals BADPARM/INVALID
// itself — a Handler implementation that cannot answer a query should
// return a zero Node and false, or a non-nil error only for a genuine
// engine-abort condition.
type Handler interface {
	NodeName(n Node) (istr.Handle, error)
	NodeClasses(n Node) ([]istr.Handle, error)
	NodeID(n Node) (istr.Handle, bool, error)

	ParentNode(n Node) (Node, bool, error)
	SiblingNode(n Node) (Node, bool, error) // preceding sibling
	NamedAncestorNode(n Node, name istr.Handle) (Node, bool, error)
	NamedParentNode(n Node, name istr.Handle) (Node, bool, error)
	NamedSiblingNode(n Node, name istr.Handle) (Node, bool, error)

	NodeHasName(n Node, name istr.Handle) (bool, error)
	NodeHasClass(n Node, class istr.Handle) (bool, error)
	NodeHasID(n Node, id istr.Handle) (bool, error)
	NodeHasAttribute(n Node, name istr.Handle) (bool, error)
	NodeHasAttributeEqual(n Node, name, value istr.Handle) (bool, error)
	NodeHasAttributeDashmatch(n Node, name, value istr.Handle) (bool, error)
	NodeHasAttributeIncludes(n Node, name, value istr.Handle) (bool, error)

	NodeIsFirstChild(n Node) (bool, error)
	NodeIsLink(n Node) (bool, error)
	NodeIsVisited(n Node) (bool, error)
	NodeIsHover(n Node) (bool, error)
	NodeIsActive(n Node) (bool, error)
	NodeIsFocus(n Node) (bool, error)
	NodeIsLang(n Node, lang istr.Handle) (bool, error)

	// NodePresentationalHint returns (Hint{NotSet: true}, nil) when the
	// node carries no host-level hint for id.
	NodePresentationalHint(n Node, id style.PropertyID) (Hint, error)
	// UADefaultForProperty supplies the user-agent default for
	// properties whose initial value the engine itself does not know
	// (spec §4.8: color, font-family, quotes).
	UADefaultForProperty(id style.PropertyID) (Hint, error)
	// ComputeFontSize resolves a possibly font-relative size against the
	// parent's resolved font size (nil at the document root).
	ComputeFontSize(parentFontSize *style.Length, size style.Length) (style.Length, error)
}
