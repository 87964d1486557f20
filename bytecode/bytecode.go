/*
Package bytecode implements the OPV (opcode-property-value) wire format
described in spec §3: a packed sequence of 32-bit words, one per cascaded
declaration, optionally followed by inline operand words whose shape
depends on the declaration's property family.

Redesign note (spec §9, "Inline pointer stashing inside bytecode"): the
original format mixes raw 32-bit words with interned-string handles whose
native size may not be 32 bits. This package takes the spec's suggested
fix: a Blob never stores a handle inline; instead it stores a small
integer index into Blob.Handles, a side table. The operand *ordering* from
spec §3's table is preserved exactly — only the representation of the
"handle" operand kind changed, from a raw pointer-sized slot to a
fixed-width uint32 index.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package bytecode

import (
	"fmt"

	"cssengine/fixedpoint"
	"cssengine/istr"
)

// Word is one 32-bit slot of a bytecode stream.
type Word = uint32

// Opcode identifies a CSS property by its dispatch-table index (spec §3,
// bits 16-29 of the OPV word).
type Opcode uint16

// Value bit-tags, carried in bits 0-13 of an OPV word. Which of these are
// legal for a given opcode is determined by that property's family (see
// the operand-shape table in spec §3); the meaning below is shared across
// all families that have a "set" vs. keyword distinction.
const (
	ValueUnset  uint16 = 0
	ValueSet    uint16 = 1
	ValueAuto   uint16 = 2
	ValueNormal uint16 = 3
	ValueNone   uint16 = 4
	// ValueKeywordBase and above: opcode-specific keyword index, e.g. a
	// border-style value of "dotted"/"dashed"/etc. Interpreted by each
	// property's cascade function (cascade package), not by this package.
	ValueKeywordBase uint16 = 16
)

const (
	valueBits   = 14
	valueMask   = 1<<valueBits - 1
	importantBit = 1 << 14
	inheritBit   = 1 << 15
	opcodeShift  = 16
	opcodeMask   = 0x3FFF // 14 bits, bits 16..29
)

// EncodeOPV packs an OPV word from its fields.
func EncodeOPV(op Opcode, value uint16, important, inherit bool) Word {
	w := Word(value&valueMask) | Word(op&opcodeMask)<<opcodeShift
	if important {
		w |= importantBit
	}
	if inherit {
		w |= inheritBit
	}
	return w
}

// DecodeOPV unpacks an OPV word into its fields.
func DecodeOPV(w Word) (op Opcode, value uint16, important, inherit bool) {
	op = Opcode((w >> opcodeShift) & opcodeMask)
	value = uint16(w & valueMask)
	important = w&importantBit != 0
	inherit = w&inheritBit != 0
	return
}

// Unit is the dimension unit attached to a length operand.
type Unit uint8

const (
	UnitNone Unit = iota
	UnitPX
	UnitEM
	UnitEX
	UnitPercent
	UnitPT
	UnitPC
	UnitCM
	UnitMM
	UnitIN
	UnitDeg
	UnitRad
	UnitGrad
)

// IsFontRelative reports whether u is resolved against the element's font
// size (em/ex), the only units the root absolute-value pass (§4.10) must
// convert.
func (u Unit) IsFontRelative() bool {
	return u == UnitEM || u == UnitEX
}

// ContentKind tags one entry of a `content` property's operand list.
type ContentKind uint8

const (
	ContentString ContentKind = iota
	ContentURI
	ContentCounter
	ContentCounters
	ContentAttr
	ContentOpenQuote
	ContentCloseQuote
	ContentNoOpenQuote
	ContentNoCloseQuote
)

// ListKind tags one entry of a family/quotes/cursor list operand.
type ListKind uint8

const (
	ListFamilyName ListKind = iota
	ListGenericFamily
	ListQuoteChar
	ListCursorURI
	ListCursorKeyword
)

// Sentinels terminating variable-length operand sequences (spec §3). Kept
// as distinct constants per family, addressing the spec §9 note that the
// original source conflates a counter-reset terminator with
// CounterIncrementNamed: here each property family checks only its own
// sentinel.
const (
	OpEnd                      Opcode = 0x3FFF // terminates family/quotes/cursor lists
	OpContentNormal            Opcode = 0x3FFE // terminates a `content` operand sequence
	OpCounterIncrementTerminator Opcode = 0x3FFD
	OpCounterResetTerminator     Opcode = 0x3FFC
)

// Blob is a compiled, self-delimiting bytecode stream for one rule's
// declaration block (spec §3: "the bytecode for a rule is contiguous and
// self-delimiting").
type Blob struct {
	Words   []Word
	Handles []istr.Handle
}

// PutHandle interns h into the blob's side table and returns its index,
// reusing an existing slot if h is already present at the tail (the
// common case: a compiler appends handles in the same order it appends
// the words that reference them, so only the most recent slot need be
// checked to keep this operation O(1) in the overwhelmingly common case).
func (b *Blob) PutHandle(h istr.Handle) uint32 {
	if n := len(b.Handles); n > 0 && b.Handles[n-1].Equal(h) {
		return uint32(n - 1)
	}
	b.Handles = append(b.Handles, h)
	return uint32(len(b.Handles) - 1)
}

// Cursor reads a Blob word by word, enforcing that a consumer which
// correctly advances by the operand sizes of spec §3 ends exactly at the
// blob's end (§4.7, testable property P6).
type Cursor struct {
	blob *Blob
	pos  int
}

// NewCursor creates a Cursor positioned at the start of blob.
func NewCursor(blob *Blob) *Cursor {
	return &Cursor{blob: blob}
}

// Done reports whether the cursor has consumed every word of the blob.
func (c *Cursor) Done() bool {
	return c.pos >= len(c.blob.Words)
}

// ErrCursorOverrun is returned when a read runs past the end of the blob:
// a fatal, INVALID-class condition per spec §4.7 ("a buggy blob... is a
// fatal error").
var ErrCursorOverrun = fmt.Errorf("bytecode: cursor overrun")

// ReadWord reads and returns the next raw word.
func (c *Cursor) ReadWord() (Word, error) {
	if c.pos >= len(c.blob.Words) {
		return 0, ErrCursorOverrun
	}
	w := c.blob.Words[c.pos]
	c.pos++
	return w, nil
}

// PeekOPV decodes the next word as an OPV without consuming it.
func (c *Cursor) PeekOPV() (op Opcode, value uint16, important, inherit bool, err error) {
	if c.pos >= len(c.blob.Words) {
		err = ErrCursorOverrun
		return
	}
	op, value, important, inherit = DecodeOPV(c.blob.Words[c.pos])
	return
}

// ReadOPV reads and decodes the next word as an OPV.
func (c *Cursor) ReadOPV() (op Opcode, value uint16, important, inherit bool, err error) {
	var w Word
	w, err = c.ReadWord()
	if err != nil {
		return
	}
	op, value, important, inherit = DecodeOPV(w)
	return
}

// ReadFixed reads one fixed-point operand word.
func (c *Cursor) ReadFixed() (fixedpoint.T, error) {
	w, err := c.ReadWord()
	if err != nil {
		return 0, err
	}
	return fixedpoint.T(int32(w)), nil
}

// ReadLength reads a (fixed, unit) length operand pair.
func (c *Cursor) ReadLength() (fixedpoint.T, Unit, error) {
	f, err := c.ReadFixed()
	if err != nil {
		return 0, 0, err
	}
	w, err := c.ReadWord()
	if err != nil {
		return 0, 0, err
	}
	return f, Unit(w), nil
}

// ReadColor reads a 32-bit RGBA color operand.
func (c *Cursor) ReadColor() (uint32, error) {
	return c.ReadWord()
}

// ReadHandle reads a handle-table-index operand and resolves it against
// the blob's side table.
func (c *Cursor) ReadHandle() (istr.Handle, error) {
	w, err := c.ReadWord()
	if err != nil {
		return istr.Handle{}, err
	}
	idx := int(w)
	if idx < 0 || idx >= len(c.blob.Handles) {
		return istr.Handle{}, ErrCursorOverrun
	}
	return c.blob.Handles[idx], nil
}

// MakeRGBA packs 8-bit r,g,b,a channels into the wire color format: ARGB,
// alpha in the high byte, matching the original source's packing (spec §8
// scenario 1: `color: red` must read as 0xFFFF0000).
func MakeRGBA(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// SplitRGBA unpacks the wire color format into 8-bit channels.
func SplitRGBA(c uint32) (r, g, b, a uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c), uint8(c >> 24)
}
