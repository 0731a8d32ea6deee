package domainset_test

import (
	"testing"

	"github.com/bits-and-blooms/bitset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripolys/tripolys/domainset"
)

func TestNewFullUniverse(t *testing.T) {
	d := domainset.New(3, 4, nil)
	for v := 0; v < 3; v++ {
		assert.Equal(t, uint(4), d.Get(v).Count())
	}
}

func TestShrinkAndRestore(t *testing.T) {
	d := domainset.New(1, 4, nil)
	mark := d.Snapshot()

	half := bitset.New(4).Set(0).Set(1)
	changed := d.Shrink(0, half)
	require.True(t, changed)
	assert.Equal(t, uint(2), d.Get(0).Count())

	d.Restore(mark)
	assert.Equal(t, uint(4), d.Get(0).Count())
}

func TestSingleton(t *testing.T) {
	d := domainset.New(1, 4, nil)
	d.Set(0, bitset.New(4).Set(2))
	a, ok := d.Singleton(0)
	require.True(t, ok)
	assert.EqualValues(t, 2, a)
}

func TestRemoveValueTrailsIndependently(t *testing.T) {
	d := domainset.New(1, 4, nil)
	mark := d.Snapshot()
	d.RemoveValue(0, 1)
	d.RemoveValue(0, 2)
	assert.Equal(t, uint(2), d.Get(0).Count())
	d.Restore(mark)
	assert.Equal(t, uint(4), d.Get(0).Count())
}

func TestVariableNotFoundPanics(t *testing.T) {
	d := domainset.New(1, 4, nil)
	assert.PanicsWithValue(t, domainset.ErrVariableNotFound, func() {
		d.Get(5)
	})
}

func TestCloneIsIndependent(t *testing.T) {
	d := domainset.New(1, 4, nil)
	c := d.Clone()
	c.Shrink(0, bitset.New(4).Set(0))
	assert.Equal(t, uint(4), d.Get(0).Count())
	assert.Equal(t, uint(1), c.Get(0).Count())
}
