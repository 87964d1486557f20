package bytecode_test

import (
	"testing"

	"cssengine/bytecode"
	"cssengine/fixedpoint"
	"cssengine/istr"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeOPVRoundTrip(t *testing.T) {
	w := bytecode.EncodeOPV(bytecode.Opcode(42), bytecode.ValueSet, true, false)
	op, value, important, inherit := bytecode.DecodeOPV(w)
	assert.Equal(t, bytecode.Opcode(42), op)
	assert.Equal(t, bytecode.ValueSet, value)
	assert.True(t, important)
	assert.False(t, inherit)
}

func TestCursorReadsLengthOperand(t *testing.T) {
	blob := &bytecode.Blob{}
	blob.Words = append(blob.Words,
		bytecode.EncodeOPV(1, bytecode.ValueSet, false, false),
		bytecode.Word(fixedpoint.FromInt(12)),
		bytecode.Word(bytecode.UnitPX),
	)
	c := bytecode.NewCursor(blob)
	op, value, important, inherit, err := c.ReadOPV()
	assert.NoError(t, err)
	assert.Equal(t, bytecode.Opcode(1), op)
	assert.Equal(t, bytecode.ValueSet, value)
	assert.False(t, important)
	assert.False(t, inherit)
	f, unit, err := c.ReadLength()
	assert.NoError(t, err)
	assert.Equal(t, fixedpoint.FromInt(12), f)
	assert.Equal(t, bytecode.UnitPX, unit)
	assert.True(t, c.Done())
}

func TestCursorOverrunIsAnError(t *testing.T) {
	blob := &bytecode.Blob{Words: []bytecode.Word{bytecode.EncodeOPV(1, bytecode.ValueSet, false, false)}}
	c := bytecode.NewCursor(blob)
	_, _, _, _, err := c.ReadOPV()
	assert.NoError(t, err)
	_, err = c.ReadWord()
	assert.ErrorIs(t, err, bytecode.ErrCursorOverrun)
}

func TestHandleOperandResolvesThroughSideTable(t *testing.T) {
	pool := istr.NewPool()
	h := pool.Intern("Helvetica")
	blob := &bytecode.Blob{}
	idx := blob.PutHandle(h)
	blob.Words = append(blob.Words, bytecode.Word(idx))
	c := bytecode.NewCursor(blob)
	got, err := c.ReadHandle()
	assert.NoError(t, err)
	assert.True(t, got.Equal(h))
}

func TestRGBARoundTrip(t *testing.T) {
	packed := bytecode.MakeRGBA(0xff, 0x00, 0x00, 0xff)
	r, g, b, a := bytecode.SplitRGBA(packed)
	assert.Equal(t, uint8(0xff), r)
	assert.Equal(t, uint8(0x00), g)
	assert.Equal(t, uint8(0x00), b)
	assert.Equal(t, uint8(0xff), a)
}
