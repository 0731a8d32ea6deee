package enumerate_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripolys/tripolys/enumerate"
	"github.com/tripolys/tripolys/poly"
	"github.com/tripolys/tripolys/propagate"
	"github.com/tripolys/tripolys/triad"
)

func TestCoreTriadsOnlyCanonicalAndCore(t *testing.T) {
	triads := enumerate.CoreTriads(3)
	require.NotEmpty(t, triads)
	for _, tr := range triads {
		assert.True(t, triad.CanonicalForm(tr))
		assert.True(t, triad.IsCore(tr))
		assert.Equal(t, 3, tr.NonRootVertices())
	}
}

func TestRangeCoversEveryN(t *testing.T) {
	byN := enumerate.Range(1, 3)
	assert.Len(t, byN, 3)
	for n := 1; n <= 3; n++ {
		for _, tr := range byN[n] {
			assert.Equal(t, n, tr.NonRootVertices())
		}
	}
}

func TestTestAllMatchesSequentialResults(t *testing.T) {
	triads := enumerate.CoreTriads(3)
	spec, err := poly.ParseSpec("majority", false, false)
	require.NoError(t, err)

	outcomes := enumerate.TestAll(context.Background(), triads, spec, propagate.AC3Consistency, 4)
	require.Len(t, outcomes, len(triads))

	for i, o := range outcomes {
		require.NoError(t, o.Err)
		want, err := poly.FindPolymorphism(triads[i], spec, propagate.AC3Consistency)
		require.NoError(t, err)
		assert.Equal(t, want.Exists, o.Exists)
	}
}
