// Package propagate implements arc consistency (AC-3) and singleton arc
// consistency (SAC-1) over a pair of digraphs (vars, vals) and a
// domainset.DomainMap L : V(vars) -> 2^V(vals).
//
// What
//
//   - AC3 runs a worklist algorithm over the arcs induced by vars' edges.
//     Because a digraph edge is not symmetric, every edge (u,v) of vars
//     contributes two constraint-arcs to the worklist: a forward arc
//     checking that every value of L(u) has a vals-successor in L(v), and a
//     reverse arc checking that every value of L(v) has a vals-predecessor
//     in L(u), using the reversed target edge relation.
//   - SAC1 runs AC3 to a fixed point, then for every variable with more
//     than one remaining candidate, probes each candidate by restricting
//     the variable to that singleton and re-running AC3 on a throwaway
//     clone; a candidate that makes AC3 fail is removed from the real
//     domain. Sweeps repeat until a full pass removes nothing.
//   - Both functions mutate L in place (via domainset's trail) and return
//     ErrNoSolution, never a panic, when some domain empties — an empty
//     domain is a definitive negative answer, not a programmer error.
//
// Why
//
//   - AC-3's worklist/requeue discipline is the textbook algorithm; the
//     only adaptation here is carrying both arc orientations explicitly,
//     since vars and vals are directed and the homomorphism constraint
//     (f(u),f(v)) in E(vals) is not its own converse.
//   - SAC-1 is expressed as "AC-3 run under a temporary precolour", which
//     keeps it a thin wrapper around AC3 rather than a separate
//     propagation algorithm: singleton probing on top of AC-3, not a
//     distinct constraint-solving method.
package propagate
