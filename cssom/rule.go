package cssom

import (
	"cssengine/bytecode"
	"cssengine/mediatype"
)

// Rule is one entry of a Stylesheet's rule list (spec §3). Rules form a
// back-pointer graph (spec §9's redesign note): rather than an
// interface{} parent pointer, a Rule's parent is an (kind, index) pair
// resolved against the owning Stylesheet's Rules slice, so the structure
// stays an arena of values rather than a pointer graph with cycles.
type Rule struct {
	Type       RuleType
	Index      int // monotonic index within the owning sheet
	ItemCount  int
	ParentKind ParentKind
	ParentIdx  int // index into Stylesheet.Rules; meaningless if ParentKind == ParentIsSheet

	// RuleSelector fields.
	Selectors []*Selector
	Bytecode  *bytecode.Blob

	// RuleMedia fields.
	Media    mediatype.Mask
	Children []int // indices into Stylesheet.Rules of nested rules

	// RuleImport fields.
	Child *Stylesheet // resolved child sheet, nil if unresolved
}

// MediaApplies walks up a rule's @media enclosures (via its parent chain)
// and reports whether every enclosing mask intersects active.
func (sheet *Stylesheet) MediaApplies(ruleIdx int, active mediatype.Mask) bool {
	idx := ruleIdx
	for idx >= 0 {
		r := sheet.Rules[idx]
		if r.Type == RuleMedia {
			if !r.Media.Intersects(active) {
				return false
			}
		}
		if r.ParentKind == ParentIsSheet {
			break
		}
		idx = r.ParentIdx
	}
	return true
}
