// Package poly is the polymorphism compiler: it turns a triad and a
// symbolic identity specification into an indicator digraph and an
// initial domain map ready for propagate/solve.
//
// What
//
//   - Spec names one entry of the catalogue (commutative, majority,
//     siggers, k-wnu, h/k-wnu) plus the conservative/idempotent modifiers.
//   - Compile builds V(T)^k (or the commutative-restricted subset of
//     V(T)^2), identifies tuples the spec's identities force to be equal
//     using a disjoint-set over tuple keys, lifts edges from the
//     componentwise product onto the resulting representatives, and
//     returns the indicator digraph together with the initial domain map
//     (full V(T) per variable, narrowed by any precolours or modifiers the
//     spec calls for).
//   - FindPolymorphism is the one-call convenience: Compile, then
//     solve.Solve.
//
// Why
//
//   - Identity encoding by union-find over V(T)^k generalizes uniformly to
//     chained identities (the Hagemann-Mitschke h/k-wnu case links
//     representatives across what would otherwise be h independent
//     indicator copies).
//   - The disjoint-set itself follows the same shape as a classic MST
//     union-find (path compression, deterministic canonical member per
//     class) generalized from string vertex IDs to tuple keys.
package poly
