package style

import (
	"cssengine/bytecode"
	"cssengine/fixedpoint"
	"cssengine/istr"
	"cssengine/persistent/vector"
)

// ValueState is the resolution state of one property slot (spec §8, P1:
// "every property has exactly one of {set-by-rule, set-by-hint,
// set-to-initial, set-to-inherit}"). SetByRule/SetByHint/SetToInitial all
// collapse to StateSet once the interpreter has written a concrete value;
// only StateInherit survives past §4.8 unresolved, to be settled by
// Compose.
type ValueState uint8

const (
	StateUnset ValueState = iota
	StateInherit
	StateSet
)

// Length is a (fixed-point magnitude, unit) pair — the operand shape
// shared by every length-bearing family (spec §3).
type Length struct {
	Fixed fixedpoint.T
	Unit  bytecode.Unit
}

// slot is one property's value cell. Family determines which fields are
// meaningful; LengthIdx indexes the record's Lengths vector rather than
// embedding a Length directly (spec §3's "index into a per-style vector
// of (fixed, unit) pairs"). CopyFrom pushes the referenced Length into
// the destination record's own vector, so an index is only ever read
// against the record that owns the slot.
type slot struct {
	State     ValueState
	Sub       uint16 // ValueAuto/ValueNormal/ValueNone/ValueKeywordBase+i, family-dependent
	Color     uint32
	LengthIdx int32 // -1 if the family carries no length
	Str       istr.Handle
	Extra     interface{} // *FamilyListValue, *ContentList, *CounterList, *Quotes, *Cursor, *Clip, *BgPosition
}

func unsetSlot() slot { return slot{State: StateUnset, LengthIdx: -1} }

// FamilyEntry is one entry of a font-family or voice-family list.
type FamilyEntry struct {
	Kind bytecode.ListKind
	Name istr.Handle
}

// FamilyListValue is the resolved value of a FamilyNameList property.
type FamilyListValue struct {
	Entries []FamilyEntry
}

// ContentList is the resolved value of the `content` property.
type ContentList struct {
	Entries []ContentEntry
}

// CounterList is the resolved value of counter-reset/counter-increment.
type CounterList struct {
	Entries []CounterEntry
}

// Cursor is the resolved value of the `cursor` property.
type Cursor struct {
	Entries []CursorEntry
}

// ContentEntry is one entry of a `content` property's value (spec §3).
type ContentEntry struct {
	Kind    bytecode.ContentKind
	Text    istr.Handle
	Counter istr.Handle
	Sep     istr.Handle
	Style   uint16
}

// CounterEntry is one (name, value) pair of counter-reset/-increment.
type CounterEntry struct {
	Name  istr.Handle
	Value int32
}

// Quotes is the resolved quotes list: pairs of (open, close) characters.
type Quotes struct {
	Pairs [][2]istr.Handle
}

// CursorEntry is one entry of the cursor list: a URI, with a trailing
// keyword entry for the fallback generic cursor.
type CursorEntry struct {
	Kind    bytecode.ListKind
	URI     istr.Handle
	Keyword uint16
}

// Clip is the resolved rect of the `clip` property; Auto[i] true means
// that side is "auto" rather than a length.
type Clip struct {
	Auto [4]bool
	Side [4]Length
}

// BgPosition is the resolved two-entry `background-position` value.
type BgPosition struct {
	IsKeyword [2]bool
	Keyword   [2]uint16
	Value     [2]Length
}

// groupLayout records, per Group, how many properties live in it and the
// mapping from PropertyID to an index within that group's slot array —
// computed once from Table so extension blocks can be small fixed-size
// arrays rather than maps.
var groupSize [4]int
var slotInGroup [numProperties]int

func init() {
	for id, d := range Table {
		slotInGroup[id] = groupSize[d.Group]
		groupSize[d.Group]++
	}
}

// ComputedStyle is the dense computed-style record (spec §3): a packed
// common block plus three extension blocks allocated lazily on first
// touch, and a per-style persistent/vector of (fixed, unit) pairs that
// grows by copy-on-write Push; Compose copies lengths into it rather than
// sharing another record's vector.
type ComputedStyle struct {
	common    []slot
	uncommon  []slot
	page      []slot
	aural     []slot
	Lengths   vector.Vector[Length]
}

// New creates a ComputedStyle with every common slot unset and no
// extension blocks allocated.
func New() *ComputedStyle {
	cs := &ComputedStyle{
		common:  make([]slot, groupSize[GroupCommon]),
		Lengths: vector.Immutable[Length](),
	}
	for i := range cs.common {
		cs.common[i] = unsetSlot()
	}
	return cs
}

// blockFor returns the slot slice backing g, allocating it (sized to
// groupSize[g], every slot unset) on first touch.
func (cs *ComputedStyle) blockFor(g Group) []slot {
	switch g {
	case GroupCommon:
		return cs.common
	case GroupUncommon:
		if cs.uncommon == nil {
			cs.uncommon = freshBlock(groupSize[GroupUncommon])
		}
		return cs.uncommon
	case GroupPage:
		if cs.page == nil {
			cs.page = freshBlock(groupSize[GroupPage])
		}
		return cs.page
	case GroupAural:
		if cs.aural == nil {
			cs.aural = freshBlock(groupSize[GroupAural])
		}
		return cs.aural
	}
	panic("style: unknown group")
}

func freshBlock(n int) []slot {
	b := make([]slot, n)
	for i := range b {
		b[i] = unsetSlot()
	}
	return b
}

// blockForRead returns the slot slice for g without allocating it; nil
// means the block was never touched and every property in it is
// logically unset.
func (cs *ComputedStyle) blockForRead(g Group) []slot {
	switch g {
	case GroupCommon:
		return cs.common
	case GroupUncommon:
		return cs.uncommon
	case GroupPage:
		return cs.page
	case GroupAural:
		return cs.aural
	}
	return nil
}

func (cs *ComputedStyle) slot(id PropertyID) *slot {
	d := Table[id]
	block := cs.blockFor(d.Group)
	return &block[slotInGroup[id]]
}

func (cs *ComputedStyle) slotRead(id PropertyID) (*slot, bool) {
	d := Table[id]
	block := cs.blockForRead(d.Group)
	if block == nil {
		return nil, false
	}
	return &block[slotInGroup[id]], true
}

// State reports the resolution state of a property, StateUnset if its
// block was never allocated.
func (cs *ComputedStyle) State(id PropertyID) ValueState {
	s, ok := cs.slotRead(id)
	if !ok {
		return StateUnset
	}
	return s.State
}

// Length returns the resolved length value for id, reading through the
// slot's LengthIdx into the record's Lengths vector.
func (cs *ComputedStyle) Length(id PropertyID) Length {
	s, ok := cs.slotRead(id)
	if !ok || s.LengthIdx < 0 {
		return Length{}
	}
	return cs.Lengths.Get(int(s.LengthIdx))
}

// Keyword returns the decoded keyword string for id, or "" if id is not
// a FamilyKeyword-ish property or is not set to a keyword.
func (cs *ComputedStyle) Keyword(id PropertyID) string {
	s, ok := cs.slotRead(id)
	if !ok || s.State != StateSet {
		return ""
	}
	d := Table[id]
	idx := int(s.Sub) - int(bytecode.ValueKeywordBase)
	if idx < 0 || idx >= len(d.Keywords) {
		return ""
	}
	return d.Keywords[idx]
}

// Color returns the resolved RGBA color for id.
func (cs *ComputedStyle) Color(id PropertyID) uint32 {
	s, ok := cs.slotRead(id)
	if !ok {
		return 0
	}
	return s.Color
}

// Str returns the resolved interned-string handle for id (URI/string
// families).
func (cs *ComputedStyle) Str(id PropertyID) istr.Handle {
	s, ok := cs.slotRead(id)
	if !ok {
		return istr.Handle{}
	}
	return s.Str
}

// Extra returns the family-specific payload for list-bearing/compound
// families (font-family, content, counters, quotes, cursor, clip,
// background-position).
func (cs *ComputedStyle) Extra(id PropertyID) interface{} {
	s, ok := cs.slotRead(id)
	if !ok {
		return nil
	}
	return s.Extra
}

// SetInherit marks id as StateInherit, to be resolved by Compose.
func (cs *ComputedStyle) SetInherit(id PropertyID) {
	s := cs.slot(id)
	*s = slot{State: StateInherit, LengthIdx: -1}
}

// SetKeyword sets id to a keyword sub-value (also used for the
// auto/normal/none sub-values of the length-ish families).
func (cs *ComputedStyle) SetKeyword(id PropertyID, sub uint16) {
	s := cs.slot(id)
	*s = slot{State: StateSet, Sub: sub, LengthIdx: -1}
}

// SetColor sets id to a concrete RGBA color.
func (cs *ComputedStyle) SetColor(id PropertyID, rgba uint32) {
	s := cs.slot(id)
	*s = slot{State: StateSet, Color: rgba, LengthIdx: -1}
}

// SetLength sets id to a concrete length, appending to the record's
// Lengths vector.
func (cs *ComputedStyle) SetLength(id PropertyID, v Length) {
	idx := cs.pushLength(v)
	s := cs.slot(id)
	*s = slot{State: StateSet, Sub: bytecode.ValueSet, LengthIdx: idx}
}

// SetStr sets id to a concrete interned-string value (URI/string
// families).
func (cs *ComputedStyle) SetStr(id PropertyID, h istr.Handle) {
	s := cs.slot(id)
	*s = slot{State: StateSet, Str: h, LengthIdx: -1}
}

// SetExtra sets id's family-specific payload (font-family, content,
// counters, quotes, cursor, clip, background-position) and marks it set.
func (cs *ComputedStyle) SetExtra(id PropertyID, e interface{}) {
	s := cs.slot(id)
	*s = slot{State: StateSet, Extra: e, LengthIdx: -1}
}

// CopyFrom overwrites id's slot in cs with the one from src, deep-copying
// any list-bearing Extra payload so the two records never share mutable
// ownership (spec §4.9: "list-bearing properties must deep-copy when the
// result buffer is distinct from the child's").
func (cs *ComputedStyle) CopyFrom(id PropertyID, src *ComputedStyle) {
	srcSlot, ok := src.slotRead(id)
	if !ok {
		cs.SetInherit(id) // source block never touched: treat as still-unresolved
		return
	}
	v := *srcSlot
	if v.LengthIdx >= 0 {
		length := src.Lengths.Get(int(v.LengthIdx))
		v.LengthIdx = cs.pushLength(length)
	}
	v.Extra = deepCopyExtra(v.Extra)
	*cs.slot(id) = v
}

func deepCopyExtra(e interface{}) interface{} {
	switch v := e.(type) {
	case *FamilyListValue:
		cp := make([]FamilyEntry, len(v.Entries))
		copy(cp, v.Entries)
		return &FamilyListValue{Entries: cp}
	case *ContentList:
		cp := make([]ContentEntry, len(v.Entries))
		copy(cp, v.Entries)
		return &ContentList{Entries: cp}
	case *CounterList:
		cp := make([]CounterEntry, len(v.Entries))
		copy(cp, v.Entries)
		return &CounterList{Entries: cp}
	case *Quotes:
		cp := make([][2]istr.Handle, len(v.Pairs))
		copy(cp, v.Pairs)
		return &Quotes{Pairs: cp}
	case *Cursor:
		cp := make([]CursorEntry, len(v.Entries))
		copy(cp, v.Entries)
		return &Cursor{Entries: cp}
	case *Clip, *BgPosition, nil:
		return v
	}
	return e
}

// pushLength appends v to the record's Lengths vector and returns its
// index, updating cs.Lengths in place (the vector value itself is
// copy-on-write, but the record keeps only the latest incarnation).
func (cs *ComputedStyle) pushLength(v Length) int32 {
	cs.Lengths = cs.Lengths.Push(v)
	return int32(cs.Lengths.Len() - 1)
}
