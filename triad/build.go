package triad

import (
	"fmt"

	"github.com/tripolys/tripolys/digraph"
)

// Build realizes t as a digraph.Digraph: one root vertex (ID 0) plus one
// fresh vertex per arm symbol, connected per the orientation rule in the
// Triad doc comment. The returned labels slice maps vertex ID -> label,
// labels[0] == "root", labels[id] == "armI.J" for the J-th vertex of arm I
// (both 1-indexed, matching how triads are usually described).
func (t *Triad) Build() (g *digraph.Digraph, labels []string) {
	g = digraph.New()
	root := g.AddVertex()
	labels = append(labels, "root")

	for i, arm := range t.Arms {
		prev := root
		for j, sym := range arm {
			v := g.AddVertex()
			labels = append(labels, fmt.Sprintf("arm%d.%d", i+1, j+1))
			if sym == '1' {
				_ = g.AddEdge(prev, v)
			} else {
				_ = g.AddEdge(v, prev)
			}
			prev = v
		}
	}

	return g, labels
}

// Level returns, for each vertex ID, its distance (in edges, ignoring
// direction) from the root along its arm. The root is level 0; the j-th
// vertex of any arm is level j. poly's commutative spec uses Level to
// restrict indicator tuples to same-level pairs.
func (t *Triad) Level() []int {
	levels := []int{0}
	for _, arm := range t.Arms {
		for j := range arm {
			levels = append(levels, j+1)
		}
	}

	return levels
}
