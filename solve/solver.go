package solve

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/tripolys/tripolys/digraph"
	"github.com/tripolys/tripolys/domainset"
	"github.com/tripolys/tripolys/propagate"
)

// Solve runs the Propagate/Select/Branch state machine over vars, vals, and
// an initial domain map L0 (which may already carry precolours). L0 itself
// is never mutated; Solve works on its own clone.
func Solve(vars, vals *digraph.Digraph, L0 *domainset.DomainMap, consistency propagate.Consistency) (*Result, error) {
	L := L0.Clone()

	ok, witness := search(vars, vals, L, consistency)
	if !ok {
		return &Result{Exists: false}, nil
	}

	return &Result{Exists: true, Witness: witness}, nil
}

// search implements one Propagate -> Select -> Branch cycle, recursing on
// Branch and returning to the caller on Success or on exhausting all
// branches (Backtrack).
func search(vars, vals *digraph.Digraph, L *domainset.DomainMap, consistency propagate.Consistency) (bool, map[int]int) {
	if err := propagate.Propagate(consistency, vars, vals, L); err != nil {
		return false, nil
	}

	v, found := selectVariable(vars, L)
	if !found {
		return true, witnessOf(vars, L)
	}

	for _, a := range candidateValues(L.Get(v)) {
		mark := L.Snapshot()
		L.Set(v, bitset.New(L.M()).Set(a))

		if ok, witness := search(vars, vals, L, consistency); ok {
			return true, witness
		}

		L.Restore(mark)
	}

	return false, nil
}

// selectVariable picks the unassigned variable (|L(v)| > 1) with the
// largest current domain, breaking ties by ascending vertex ID — a
// fail-last heuristic. Returns found == false once every variable is a
// singleton.
func selectVariable(vars *digraph.Digraph, L *domainset.DomainMap) (v int, found bool) {
	best := -1
	var bestCount uint
	for i := 0; i < vars.N(); i++ {
		c := L.Get(i).Count()
		if c <= 1 {
			continue
		}
		if c > bestCount {
			bestCount = c
			best = i
		}
	}
	if best == -1 {
		return 0, false
	}

	return best, true
}

func candidateValues(s *bitset.BitSet) []uint {
	out := make([]uint, 0, s.Count())
	for a, ok := s.NextSet(0); ok; a, ok = s.NextSet(a + 1) {
		out = append(out, a)
	}

	return out
}

func witnessOf(vars *digraph.Digraph, L *domainset.DomainMap) map[int]int {
	w := make(map[int]int, vars.N())
	for v := 0; v < vars.N(); v++ {
		a, _ := L.Singleton(v)
		w[v] = int(a)
	}

	return w
}
