package propagate

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/tripolys/tripolys/digraph"
	"github.com/tripolys/tripolys/domainset"
)

// SAC1 reduces L to singleton arc consistency: first AC3 to a fixed point,
// then repeated sweeps over every non-singleton variable, probing each
// remaining candidate on a disposable clone of L and discarding it from the
// real L whenever fixing it makes AC3 fail elsewhere. Sweeps repeat until a
// full pass removes nothing, or any domain empties (ErrNoSolution).
//
// Complexity: O(AC3) * O(sum|L(v)|).
func SAC1(vars, vals *digraph.Digraph, L *domainset.DomainMap) error {
	if err := AC3(vars, vals, L); err != nil {
		return err
	}

	idx := buildArcIndex(vars)

	for {
		removedThisSweep := false

		for v := 0; v < vars.N(); v++ {
			if L.Get(v).Count() <= 1 {
				continue
			}

			values := candidates(L.Get(v))
			for _, a := range values {
				if !L.Get(v).Test(a) {
					continue // already removed earlier this sweep
				}

				probe := L.Clone()
				probe.Set(v, bitset.New(L.M()).Set(a))
				if err := runAC3(idx, vals, probe); err != nil {
					L.RemoveValue(v, a)
					removedThisSweep = true
					if L.IsEmpty(v) {
						return ErrNoSolution
					}
				}
			}
		}

		if !removedThisSweep {
			return nil
		}

		// A removal above only ran AC3 on the disposable probe; it may have
		// cost the real L's sole support for a value at some other
		// variable, including one already a singleton. Re-run AC3 on the
		// real L so every domain — singleton or not — reflects the new
		// constraints before the next sweep picks which variables still
		// need probing.
		if err := runAC3(idx, vals, L); err != nil {
			return ErrNoSolution
		}
	}
}

func candidates(s *bitset.BitSet) []uint {
	out := make([]uint, 0, s.Count())
	for a, ok := s.NextSet(0); ok; a, ok = s.NextSet(a + 1) {
		out = append(out, a)
	}

	return out
}
