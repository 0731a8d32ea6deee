package digraph

import "sort"

// AddVertex appends a fresh vertex and returns its ID.
//
// Complexity: amortized O(1).
func (g *Digraph) AddVertex() int {
	id := g.n
	g.n++
	g.out = append(g.out, nil)
	g.in = append(g.in, nil)
	g.adj = append(g.adj, make(map[int]struct{}))

	return id
}

// HasVertex reports whether v is a valid vertex ID.
func (g *Digraph) HasVertex(v int) bool {
	return v >= 0 && v < g.n
}

// AddEdge inserts the directed edge (u,v). Both endpoints must already be
// vertices of g (ErrVertexNotFound otherwise). Adding the same edge twice,
// or a self-loop (u == v), is accepted and idempotent.
//
// Complexity: O(1) amortized. Neighbours are stored in insertion order;
// Edges, OutNeighbours and InNeighbours sort a copy on every call.
func (g *Digraph) AddEdge(u, v int) error {
	if !g.HasVertex(u) || !g.HasVertex(v) {
		return ErrVertexNotFound
	}
	if _, ok := g.adj[u][v]; ok {
		return nil
	}
	g.adj[u][v] = struct{}{}
	g.out[u] = append(g.out[u], v)
	g.in[v] = append(g.in[v], u)

	return nil
}

// HasEdge reports whether (u,v) is an edge of g.
func (g *Digraph) HasEdge(u, v int) bool {
	if !g.HasVertex(u) {
		return false
	}
	_, ok := g.adj[u][v]

	return ok
}

// Vertices returns all vertex IDs in ascending order.
func (g *Digraph) Vertices() []int {
	vs := make([]int, g.n)
	for i := range vs {
		vs[i] = i
	}

	return vs
}

// Edges returns all edges as [2]int{from, to} pairs, ordered by from then
// to, ascending.
func (g *Digraph) Edges() [][2]int {
	var out [][2]int
	for u := 0; u < g.n; u++ {
		nbrs := append([]int(nil), g.out[u]...)
		sort.Ints(nbrs)
		for _, v := range nbrs {
			out = append(out, [2]int{u, v})
		}
	}

	return out
}

// OutNeighbours returns the out-neighbours of v in ascending order.
func (g *Digraph) OutNeighbours(v int) []int {
	nbrs := append([]int(nil), g.out[v]...)
	sort.Ints(nbrs)

	return nbrs
}

// InNeighbours returns the in-neighbours of v in ascending order.
func (g *Digraph) InNeighbours(v int) []int {
	nbrs := append([]int(nil), g.in[v]...)
	sort.Ints(nbrs)

	return nbrs
}

// OutDegree returns len(OutNeighbours(v)) without allocating.
func (g *Digraph) OutDegree(v int) int { return len(g.out[v]) }

// InDegree returns len(InNeighbours(v)) without allocating.
func (g *Digraph) InDegree(v int) int { return len(g.in[v]) }
