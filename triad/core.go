package triad

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/tripolys/tripolys/digraph"
	"github.com/tripolys/tripolys/domainset"
	"github.com/tripolys/tripolys/propagate"
)

// IsCore reports whether t's digraph is a core: every endomorphism is an
// automorphism. For this triad class, AC-3 run on (G,G) reducing every
// domain to a singleton is necessary and sufficient — the identity map is
// always a trivial solution, so AC-3 never reports ErrNoSolution here;
// what distinguishes a core is whether propagation alone collapses every
// domain to {v}.
func IsCore(t *Triad) bool {
	g, _ := t.Build()

	return allSingletonAfterAC3(g, nil)
}

// IsRootedCore is IsCore with the shared root (vertex 0) precoloured to
// itself, the "rooted core" variant.
func IsRootedCore(t *Triad) bool {
	g, _ := t.Build()

	return allSingletonAfterAC3(g, func(v int) *bitset.BitSet {
		if v == 0 {
			return bitset.New(uint(g.N())).Set(0)
		}

		return fullRange(uint(g.N()))
	})
}

func fullRange(m uint) *bitset.BitSet {
	s := bitset.New(m)
	for a := uint(0); a < m; a++ {
		s.Set(a)
	}

	return s
}

func allSingletonAfterAC3(g *digraph.Digraph, init func(v int) *bitset.BitSet) bool {
	L := domainset.New(g.N(), uint(g.N()), init)
	if err := propagate.AC3(g, g, L); err != nil {
		// Propagation can never empty a domain here (the identity
		// homomorphism is always consistent), but guard anyway rather
		// than claim coreness from a failed run.
		return false
	}
	for v := 0; v < g.N(); v++ {
		if _, ok := L.Singleton(v); !ok {
			return false
		}
	}

	return true
}

// CanonicalForm reports whether t's arms are in non-decreasing
// lexicographic order, the canonical-form filter used to eliminate
// arm-permutation duplicates during enumeration.
func CanonicalForm(t *Triad) bool {
	return t.Arms[0] <= t.Arms[1] && t.Arms[1] <= t.Arms[2]
}
