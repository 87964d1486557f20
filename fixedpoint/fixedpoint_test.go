package fixedpoint_test

import (
	"testing"

	"cssengine/fixedpoint"

	"github.com/stretchr/testify/assert"
)

func TestFromIntRoundTrip(t *testing.T) {
	v := fixedpoint.FromInt(42)
	assert.Equal(t, int32(42), v.ToInt())
}

func TestMulDiv(t *testing.T) {
	a := fixedpoint.FromInt(10)
	b := fixedpoint.FromInt(4)
	assert.Equal(t, fixedpoint.FromInt(40), fixedpoint.Mul(a, b))
	assert.Equal(t, fixedpoint.FromFloat64(2.5), fixedpoint.Div(a, b))
}

func TestAddSubWrap(t *testing.T) {
	max := fixedpoint.T(1<<31 - 1)
	// wraps, does not panic
	assert.NotPanics(t, func() {
		_ = fixedpoint.Add(max, max)
	})
}

func TestPretabulatedConstants(t *testing.T) {
	assert.Equal(t, fixedpoint.FromInt(100), fixedpoint.Pct100)
	assert.Equal(t, fixedpoint.FromInt(400), fixedpoint.Pct400)
}

func TestDegreesToFixedNormalizes(t *testing.T) {
	a := fixedpoint.DegreesToFixed(370)
	b := fixedpoint.DegreesToFixed(10)
	assert.Equal(t, b, a)
}
