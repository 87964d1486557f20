package cssom

import "cssengine/istr"

// DetailType is the kind of a single selector detail (spec §3/§4.6a).
type DetailType uint8

const (
	DetailElement DetailType = iota
	DetailClass
	DetailID
	DetailPseudoClass
	DetailPseudoElement
	DetailAttribute
	DetailAttributeEquals
	DetailAttributeDashmatch
	DetailAttributeIncludes
)

// Detail is one predicate within a selector's compound (the "sibling
// details" evaluated together against a single node, spec §4.6 step 1).
type Detail struct {
	Type  DetailType
	Name  istr.Handle // element/class/id/pseudo/attribute name
	Value istr.Handle // attribute value, zero Handle if not applicable
}

// Combinator joins one compound of details to the next, right-to-left
// (spec §3).
type Combinator uint8

const (
	CombinatorNone Combinator = iota
	CombinatorDescendant
	CombinatorChild
	CombinatorAdjacentSibling
)

// Universal is the interned name used for the "*" element detail and for
// combinators that do not constrain the combining selector's element
// name (spec §4.6, "universal combinator").
const Universal = "*"

// Compound is one right-to-left link of a Selector chain: the details
// that must all match one node, the combinator connecting it to the next
// compound toward the left, and (if Combinator names an element) that
// element's interned name.
type Compound struct {
	Details        []Detail
	Combinator     Combinator
	CombinatorName istr.Handle // name constraint for the combinator step; IsNil() means universal
	Next           *Compound   // the compound to match against the node reached via Combinator
}

// Selector is a right-to-left chain of compounds with a precomputed
// specificity (spec §3). Rightmost is Compound itself; Compound.Next
// walks further left.
type Selector struct {
	Rightmost   *Compound
	Specificity uint32 // packed (A<<24)|(B<<16)|(C<<8); D (rule-order) is applied separately
	RuleIndex   int    // monotonic index of the owning rule within its sheet
}

// packSpecificity packs the A (id), B (class/attr/pseudo-class), C
// (element/pseudo-element) counts per spec §3.
func packSpecificity(a, b, c uint32) uint32 {
	return a<<24 | b<<16 | c<<8
}

// ComputeSpecificity walks every compound of a chain and sums the A/B/C
// contributions of its details (spec §3). A combinator's named element is
// already counted via the DetailElement of the compound it connects to,
// so the combinator step itself contributes nothing further.
func ComputeSpecificity(rightmost *Compound) uint32 {
	var a, b, c uint32
	for cp := rightmost; cp != nil; cp = cp.Next {
		for _, d := range cp.Details {
			switch d.Type {
			case DetailID:
				a++
			case DetailClass, DetailAttribute, DetailAttributeEquals,
				DetailAttributeDashmatch, DetailAttributeIncludes, DetailPseudoClass:
				b++
			case DetailElement:
				if !d.Name.IsNil() && d.Name.String() != Universal {
					c++
				}
			case DetailPseudoElement:
				c++
			}
		}
	}
	return packSpecificity(a, b, c)
}
