package propagate

import (
	"github.com/tripolys/tripolys/digraph"
	"github.com/tripolys/tripolys/domainset"
)

// AC3 reduces L to its arc-consistency fixed point with respect to vars and
// vals: for every edge (u,v) of vars, every value in L(u) has a vals
// out-neighbour in L(v), and every value in L(v) has a vals in-neighbour in
// L(u). Precoloured singletons already present in L are never enlarged —
// AC3 only ever shrinks domains.
//
// Returns ErrNoSolution (not a panic) the moment any domain becomes empty;
// L is left in whatever partially-shrunk state it reached, which is fine
// since callers treat ErrNoSolution as terminal for that search branch.
//
// Complexity: O(e*d^3) worst case, e = |E(vars)|, d = max|L(v)|.
func AC3(vars, vals *digraph.Digraph, L *domainset.DomainMap) error {
	for v := 0; v < vars.N(); v++ {
		if L.IsEmpty(v) {
			return ErrNoSolution
		}
	}

	idx := buildArcIndex(vars)
	return runAC3(idx, vals, L)
}

// runAC3 drains the worklist for a precomputed arc index. Split out of AC3
// so SAC-1 can reuse the same arcIndex across many singleton probes instead
// of rebuilding it per probe.
func runAC3(idx *arcIndex, vals *digraph.Digraph, L *domainset.DomainMap) error {
	queue := make([]int, len(idx.arcs))
	inQueue := make([]bool, len(idx.arcs))
	for i := range queue {
		queue[i] = i
		inQueue[i] = true
	}

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		inQueue[id] = false

		a := idx.arcs[id]
		if !revise(a, vals, L) {
			continue
		}
		if L.IsEmpty(a.x) {
			return ErrNoSolution
		}
		for _, id2 := range idx.byY[a.x] {
			if idx.arcs[id2].x == a.y {
				continue // w == v: don't re-enqueue arcs revising v against u
			}
			if !inQueue[id2] {
				queue = append(queue, id2)
				inQueue[id2] = true
			}
		}
	}

	return nil
}

// revise removes from L(a.x) every value with no support in L(a.y) under
// the vals relation, oriented by a.reverse. It reports whether L(a.x)
// changed.
func revise(a arc, vals *digraph.Digraph, L *domainset.DomainMap) bool {
	lx := L.Get(a.x)
	ly := L.Get(a.y)

	var toRemove []uint
	for val, ok := lx.NextSet(0); ok; val, ok = lx.NextSet(val + 1) {
		supported := false
		for b, ok2 := ly.NextSet(0); ok2; b, ok2 = ly.NextSet(b + 1) {
			var edgeOK bool
			if a.reverse {
				edgeOK = vals.HasEdge(int(b), int(val))
			} else {
				edgeOK = vals.HasEdge(int(val), int(b))
			}
			if edgeOK {
				supported = true
				break
			}
		}
		if !supported {
			toRemove = append(toRemove, val)
		}
	}

	changed := false
	for _, val := range toRemove {
		if L.RemoveValue(a.x, val) {
			changed = true
		}
	}

	return changed
}
