package propagate_test

import (
	"testing"

	"github.com/bits-and-blooms/bitset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripolys/tripolys/digraph"
	"github.com/tripolys/tripolys/domainset"
	"github.com/tripolys/tripolys/propagate"
)

// directedPath builds a simple directed path 0 -> 1 -> ... -> n-1.
func directedPath(n int) *digraph.Digraph {
	g := digraph.NewWithVertices(n)
	for i := 0; i < n-1; i++ {
		_ = g.AddEdge(i, i+1)
	}

	return g
}

func fullDomain(n int, m uint) *domainset.DomainMap {
	return domainset.New(n, m, nil)
}

// TestAC3PrunesUnsupportedValues checks a minimal instance by hand: vars is
// a 2-vertex path 0->1, vals is a 2-vertex path 0->1, so vertex 0 can only
// map to vals-vertex 0 (it needs an out-neighbour) and vertex 1 only to
// vals-vertex 1 (it needs an in-neighbour).
func TestAC3PrunesUnsupportedValues(t *testing.T) {
	vars := directedPath(2)
	vals := directedPath(2)
	L := fullDomain(2, 2)

	require.NoError(t, propagate.AC3(vars, vals, L))

	a, ok := L.Singleton(0)
	require.True(t, ok)
	assert.EqualValues(t, 0, a)

	b, ok := L.Singleton(1)
	require.True(t, ok)
	assert.EqualValues(t, 1, b)
}

// TestAC3NoSolution pins a vars edge with no compatible vals edge at all.
func TestAC3NoSolution(t *testing.T) {
	vars := directedPath(2)
	vals := digraph.NewWithVertices(2) // no edges at all
	L := fullDomain(2, 2)

	err := propagate.AC3(vars, vals, L)
	assert.ErrorIs(t, err, propagate.ErrNoSolution)
}

// TestAC3Monotonicity pins spec property 1: AC3(L) is a pointwise subset of
// L, and running AC3 again on the result changes nothing.
func TestAC3Monotonicity(t *testing.T) {
	vars := directedPath(3)
	vals := directedPath(3)
	L := fullDomain(3, 3)
	before := []uint{L.Get(0).Count(), L.Get(1).Count(), L.Get(2).Count()}

	require.NoError(t, propagate.AC3(vars, vals, L))
	for v := 0; v < 3; v++ {
		assert.LessOrEqual(t, L.Get(v).Count(), before[v])
	}

	fixedPoint := []uint{L.Get(0).Count(), L.Get(1).Count(), L.Get(2).Count()}
	require.NoError(t, propagate.AC3(vars, vals, L))
	for v := 0; v < 3; v++ {
		assert.Equal(t, fixedPoint[v], L.Get(v).Count())
	}
}

// TestSAC1RefinesAC3 pins spec property 3: SAC1(L) is a subset of AC3(L).
func TestSAC1RefinesAC3(t *testing.T) {
	// A triangle maps homomorphically onto the self-loop at vals vertex 0,
	// so both propagators succeed.
	vars := digraph.NewWithVertices(3)
	_ = vars.AddEdge(0, 1)
	_ = vars.AddEdge(1, 2)
	_ = vars.AddEdge(2, 0)

	vals := digraph.NewWithVertices(2)
	_ = vals.AddEdge(0, 0)
	_ = vals.AddEdge(0, 1)
	// vertex 1 has no out-edge: every variable has a successor, so value 1
	// is rejected everywhere, by AC-3 already and hence by SAC-1 too.

	ac3L := fullDomain(3, 2)
	require.NoError(t, propagate.AC3(vars, vals, ac3L))

	sacL := fullDomain(3, 2)
	require.NoError(t, propagate.SAC1(vars, vals, sacL))

	for v := 0; v < 3; v++ {
		sac := sacL.Get(v)
		ac3 := ac3L.Get(v)
		for a, ok := sac.NextSet(0); ok; a, ok = sac.NextSet(a + 1) {
			assert.True(t, ac3.Test(a), "SAC1 domain must be a subset of AC3 domain")
		}
	}
}

// TestSAC1OutputIsArcConsistencyFixedPoint guards against a real regression:
// SAC1's probing sweep discards a candidate from the real L by calling
// RemoveValue directly, which does not requeue the arcs that depend on the
// variable it just shrank. If one of those dependent variables had already
// collapsed to a singleton — by the initial AC3 pass or by an earlier sweep
// iteration — it is never revisited (the sweep skips any variable with
// |L(v)| <= 1), so its value can go unsupported and survive regardless.
// A correct SAC1 must leave L as a genuine AC3 fixed point: running AC3
// again afterward must not change anything, and must not fail having
// already reported success. The instance is a triangle with a pendant
// vertex (3); the self-loop at vals vertex 0 lets the triangle map into
// vals, so SAC1 succeeds and the fixed-point check below runs.
func TestSAC1OutputIsArcConsistencyFixedPoint(t *testing.T) {
	vars := digraph.NewWithVertices(4)
	_ = vars.AddEdge(0, 1)
	_ = vars.AddEdge(1, 2)
	_ = vars.AddEdge(2, 0)
	_ = vars.AddEdge(1, 3)

	vals := digraph.NewWithVertices(3)
	_ = vals.AddEdge(0, 0)
	_ = vals.AddEdge(0, 1)
	_ = vals.AddEdge(1, 0)
	_ = vals.AddEdge(1, 2)
	// value 2 has no out-edge at all: any variable with an outbound vars
	// edge (0, 1, 2) cannot be assigned it.

	L := fullDomain(4, 3)
	err := propagate.SAC1(vars, vals, L)
	if err != nil {
		assert.ErrorIs(t, err, propagate.ErrNoSolution)
		return
	}

	check := L.Clone()
	before := make([]uint, 4)
	for v := 0; v < 4; v++ {
		before[v] = check.Get(v).Count()
	}

	require.NoError(t, propagate.AC3(vars, vals, check))
	for v := 0; v < 4; v++ {
		assert.Equal(t, before[v], check.Get(v).Count(),
			"SAC1's output must already be an AC3 fixed point at variable %d", v)
	}
}

func TestParseConsistency(t *testing.T) {
	c, err := propagate.ParseConsistency("sac1")
	require.NoError(t, err)
	assert.Equal(t, propagate.SAC1Consistency, c)

	_, err = propagate.ParseConsistency("bogus")
	assert.ErrorIs(t, err, propagate.ErrUnknownConsistency)
}

func TestBitsetSanity(t *testing.T) {
	b := bitset.New(4).Set(1).Set(2)
	assert.Equal(t, uint(2), b.Count())
}
