// Package dot is the external collaborator that renders a *digraph.Digraph
// as GraphViz DOT, consumed by the external "ccomps | dot | gvpack | neato"
// pipeline.
//
// What
//
//   - Write adapts a *digraph.Digraph into a gonum
//     graph/simple.DirectedGraph (one gonum node per vertex, labeled via
//     its DOTID method) and calls gonum graph/encoding/dot.Marshal.
//
// Why
//
//   - gonum already owns a correct, escaping-aware DOT marshaler; hand
//     rolling one would duplicate exactly the kind of graph-plumbing
//     concern gonum.org/v1/gonum exists to cover.
package dot
