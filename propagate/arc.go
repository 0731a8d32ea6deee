package propagate

import "github.com/tripolys/tripolys/digraph"

// arc is one direction of one constraint induced by a vars edge: revising
// arc{x,y,reverse} removes from L(x) every value with no support in L(y).
// reverse selects which orientation of the vals edge relation the support
// test uses (see revise).
type arc struct {
	x, y    int
	reverse bool
}

// arcIndex precomputes, for a fixed vars digraph, the full worklist of arcs
// and groups them by their y (support-provider) component so AC3's requeue
// step can find "all (w,u)" arcs in O(degree) rather than scanning the
// whole arc list.
type arcIndex struct {
	arcs []arc
	byY  map[int][]int
}

func buildArcIndex(vars *digraph.Digraph) *arcIndex {
	idx := &arcIndex{byY: make(map[int][]int)}
	for _, e := range vars.Edges() {
		u, v := e[0], e[1]

		idx.arcs = append(idx.arcs, arc{x: u, y: v, reverse: false})
		fwd := len(idx.arcs) - 1
		idx.arcs = append(idx.arcs, arc{x: v, y: u, reverse: true})
		rev := len(idx.arcs) - 1

		idx.byY[v] = append(idx.byY[v], fwd)
		idx.byY[u] = append(idx.byY[u], rev)
	}

	return idx
}
