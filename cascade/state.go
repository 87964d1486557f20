/*
Package cascade implements the bytecode interpreter (spec §4.7): it walks
a compiled blob, decodes each declaration's operands per its property's
family, and decides — via the outranking rule of spec §4.3 — whether the
declaration replaces the previous winner for that property.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package cascade

import (
	"cssengine/cssom"
	"cssengine/style"
)

// State is one property's cascade bookkeeping (spec §3 "Property-cascade
// state"): whether anything has set it yet, at what specificity/origin,
// and whether that winner was marked important or inherit.
type State struct {
	Set         bool
	Specificity uint32
	Origin      cssom.Origin
	Important   bool
	Inherit     bool
}

// StateTable is the per-query array of State, one per style.PropertyID.
type StateTable [style.NumProperties]State

// tier ranks an (origin, important) pair for the outranking comparison.
// Spec §4.3's table gives a row for "UA any" that loses to every author
// declaration, which would let an author override `!important` UA rules
// — directly contradicted by invariant P3 ("UA-origin important
// declarations are never overridden by author declarations"). Resolved
// here (see the design ledger) by giving UA-important its own tier,
// above both author tiers and below user-important, which is the only
// placement consistent with both P3 and P4 simultaneously.
func tier(origin cssom.Origin, important bool) int {
	switch {
	case origin == cssom.OriginUser && important:
		return 5
	case origin == cssom.OriginUA && important:
		return 4
	case origin == cssom.OriginAuthor && important:
		return 3
	case origin == cssom.OriginAuthor:
		return 2
	case origin == cssom.OriginUser:
		return 1
	default: // OriginUA, not important
		return 0
	}
}

// Outranks reports whether an incoming declaration for id beats the
// table's current winner, per spec §4.3. Equal specificity within the
// same tier favours the incoming declaration, matching the requirement
// that selector-hash buckets yield matches in non-decreasing
// (specificity, rule-index) order.
func (t *StateTable) Outranks(id style.PropertyID, specificity uint32, origin cssom.Origin, important bool) bool {
	existing := t[id]
	if !existing.Set {
		return true
	}
	incomingTier := tier(origin, important)
	existingTier := tier(existing.Origin, existing.Important)
	if incomingTier != existingTier {
		return incomingTier > existingTier
	}
	return specificity >= existing.Specificity
}

// Win records id's new winning cascade state. Callers must call Win only
// after Outranks has returned true for the same arguments.
func (t *StateTable) Win(id style.PropertyID, specificity uint32, origin cssom.Origin, important, inherit bool) {
	t[id] = State{Set: true, Specificity: specificity, Origin: origin, Important: important, Inherit: inherit}
}

// WonFromAuthor reports whether id's current winner came from an author
// declaration, origin alone (ignoring importance).
func (t *StateTable) WonFromAuthor(id style.PropertyID) bool {
	return t[id].Set && t[id].Origin == cssom.OriginAuthor
}
