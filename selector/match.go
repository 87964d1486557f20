/*
Package selector implements the chain-match state machine of spec §4.6
and the specificity-ordered merge walk of spec §4.5: for one node, it
produces matching selector chains from a stylesheet's selector hash, in
ascending (specificity, rule-index) order, and feeds each match's
bytecode into the cascade interpreter.

The package never touches a document tree directly — every navigation
and predicate is routed through a handler.Handler, per spec §6.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package selector

import (
	"cssengine/cssom"
	"cssengine/handler"
	"cssengine/istr"
)

// matchChain runs spec §4.6's chain-match state machine: starting at the
// chain's rightmost compound against node, verify its details, then walk
// leftward via combinators, verifying each compound in turn.
func matchChain(h handler.Handler, sel *cssom.Selector, node handler.Node, pseudo istr.Handle) (bool, error) {
	cp := sel.Rightmost
	n := node
	ok, err := matchCompound(h, cp, n, pseudo)
	if err != nil || !ok {
		return false, err
	}
	for cp.Combinator != cssom.CombinatorNone {
		next, matched, err := stepCombinator(h, cp, n, pseudo)
		if err != nil {
			return false, err
		}
		if !matched {
			return false, nil
		}
		n = next
		cp = cp.Next
	}
	return true, nil
}

// stepCombinator navigates from n across cp's combinator to a candidate
// node and verifies cp.Next's details against it (spec §4.6 step 2). For
// a descendant combinator ("ancestor"), it iterates up the tree until a
// matching ancestor is found or the tree is exhausted; child and
// adjacent-sibling combinators make a single navigation attempt.
func stepCombinator(h handler.Handler, cp *cssom.Compound, n handler.Node, pseudo istr.Handle) (handler.Node, bool, error) {
	named := !cp.CombinatorName.IsNil()
	nextCP := cp.Next

	switch cp.Combinator {
	case cssom.CombinatorDescendant:
		cur := n
		for {
			cand, ok, err := ancestorStep(h, cur, cp.CombinatorName, named)
			if err != nil {
				return nil, false, err
			}
			if !ok {
				return nil, false, nil
			}
			matched, err := matchCompound(h, nextCP, cand, pseudo)
			if err != nil {
				return nil, false, err
			}
			if matched {
				return cand, true, nil
			}
			cur = cand
		}

	case cssom.CombinatorChild:
		var cand handler.Node
		var ok bool
		var err error
		if named {
			cand, ok, err = h.NamedParentNode(n, cp.CombinatorName)
		} else {
			cand, ok, err = h.ParentNode(n)
		}
		if err != nil || !ok {
			return nil, false, err
		}
		matched, err := matchCompound(h, nextCP, cand, pseudo)
		return cand, matched, err

	case cssom.CombinatorAdjacentSibling:
		var cand handler.Node
		var ok bool
		var err error
		if named {
			cand, ok, err = h.NamedSiblingNode(n, cp.CombinatorName)
		} else {
			cand, ok, err = h.SiblingNode(n)
		}
		if err != nil || !ok {
			return nil, false, err
		}
		matched, err := matchCompound(h, nextCP, cand, pseudo)
		return cand, matched, err
	}
	return nil, false, nil
}

func ancestorStep(h handler.Handler, n handler.Node, name istr.Handle, named bool) (handler.Node, bool, error) {
	if named {
		return h.NamedAncestorNode(n, name)
	}
	return h.ParentNode(n)
}

// matchCompound evaluates every sibling detail of cp against n (spec
// §4.6 step 1 / §4.6a).
func matchCompound(h handler.Handler, cp *cssom.Compound, n handler.Node, pseudo istr.Handle) (bool, error) {
	for _, d := range cp.Details {
		ok, err := matchDetail(h, d, n, pseudo)
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}

// matchDetail evaluates one detail against n, delegating the CSS 2.1
// pseudo-classes spec §4.6a names to the handler predicate that answers
// them.
func matchDetail(h handler.Handler, d cssom.Detail, n handler.Node, pseudo istr.Handle) (bool, error) {
	switch d.Type {
	case cssom.DetailElement:
		if d.Name.String() == cssom.Universal {
			return true, nil
		}
		return h.NodeHasName(n, d.Name)
	case cssom.DetailClass:
		return h.NodeHasClass(n, d.Name)
	case cssom.DetailID:
		return h.NodeHasID(n, d.Name)
	case cssom.DetailAttribute:
		return h.NodeHasAttribute(n, d.Name)
	case cssom.DetailAttributeEquals:
		return h.NodeHasAttributeEqual(n, d.Name, d.Value)
	case cssom.DetailAttributeDashmatch:
		return h.NodeHasAttributeDashmatch(n, d.Name, d.Value)
	case cssom.DetailAttributeIncludes:
		return h.NodeHasAttributeIncludes(n, d.Name, d.Value)
	case cssom.DetailPseudoClass:
		switch d.Name.String() {
		case "first-child":
			return h.NodeIsFirstChild(n)
		case "link":
			return h.NodeIsLink(n)
		case "visited":
			return h.NodeIsVisited(n)
		case "hover":
			return h.NodeIsHover(n)
		case "active":
			return h.NodeIsActive(n)
		case "focus":
			return h.NodeIsFocus(n)
		}
		return false, nil // unsupported pseudo-class never matches
	case cssom.DetailPseudoElement:
		switch d.Name.String() {
		case "first-line", "first-letter", "before", "after":
			return d.Name.Equal(pseudo), nil
		}
		return false, nil
	}
	return false, nil
}
