package istr_test

import (
	"testing"

	"cssengine/istr"

	"github.com/stretchr/testify/assert"
)

func TestInternDeduplicates(t *testing.T) {
	pool := istr.NewPool()
	a := pool.Intern("color")
	b := pool.Intern("color")
	assert.True(t, a.Equal(b))
	assert.Equal(t, 2, pool.RefCount(a))
}

func TestDistinctStringsDistinctHandles(t *testing.T) {
	pool := istr.NewPool()
	a := pool.Intern("color")
	b := pool.Intern("background-color")
	assert.False(t, a.Equal(b))
}

func TestUnrefReleasesAtZero(t *testing.T) {
	pool := istr.NewPool()
	a := pool.Intern("p")
	pool.Unref(a)
	assert.Equal(t, 0, pool.RefCount(a))
	b := pool.Intern("p")
	assert.Equal(t, 1, pool.RefCount(b))
}
