// Package digraph provides a minimal, deterministic directed-graph container
// used by the rest of tripolys: the triad's own shape, the indicator digraph
// built by poly, and every intermediate graph the propagator and solver touch.
//
// What
//
//   - A Digraph is a set of dense vertex IDs 0..N-1 plus a set of directed
//     edges between them. Self-loops are allowed; parallel edges are not
//     (adding the same (u,v) twice is a no-op).
//   - Vertices() and Edges() return their results in ascending order so that
//     two runs over the same construction sequence iterate identically.
//   - Product(other) builds the Cartesian product digraph: vertex (u,v) for
//     every u in the receiver and v in other, edge ((u1,v1),(u2,v2)) iff
//     (u1,u2) is an edge of the receiver and (v1,v2) is an edge of other.
//
// Why
//
//   - The CSP core (propagate, solve, poly) never needs named or typed
//     vertices; collapsing every graph to dense ints removes all generic-
//     parameter friction, at the cost of a side table (kept by callers,
//     e.g. triad.Build's labels slice) mapping IDs back to human-readable
//     labels for output.
//   - Digraph is built once and never mutated again once handed to a
//     propagator or solver, so that concurrent solves over disjoint inputs
//     share no mutable state; there is accordingly no internal locking,
//     unlike a general-purpose concurrent graph type.
package digraph
