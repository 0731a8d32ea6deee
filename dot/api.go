package dot

import (
	"fmt"
	"io"

	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/tripolys/tripolys/digraph"
)

// labeledNode adapts one digraph.Digraph vertex into a gonum graph.Node
// that also carries a DOT-visible label via DOTID.
type labeledNode struct {
	id    int64
	label string
}

func (n labeledNode) ID() int64      { return n.id }
func (n labeledNode) DOTID() string  { return n.label }
func (n labeledNode) String() string { return n.label }

// Write renders g as GraphViz DOT to w, one node per vertex labeled from
// labels (labels[v], or "v<id>" if labels is nil or too short), consumed
// by the external ccomps | dot | gvpack | neato pipeline.
func Write(w io.Writer, g *digraph.Digraph, labels []string) error {
	gg := simple.NewDirectedGraph()
	for _, v := range g.Vertices() {
		lbl := fmt.Sprintf("v%d", v)
		if v < len(labels) {
			lbl = labels[v]
		}
		gg.AddNode(labeledNode{id: int64(v), label: lbl})
	}
	for _, e := range g.Edges() {
		from := gg.Node(int64(e[0]))
		to := gg.Node(int64(e[1]))
		gg.SetEdge(gg.NewEdge(from, to))
	}

	data, err := dot.Marshal(gg, "tripolys", "", "  ")
	if err != nil {
		return fmt.Errorf("dot: Write: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("dot: Write: %w", err)
	}

	return nil
}
