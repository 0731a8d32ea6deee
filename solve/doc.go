// Package solve implements backtracking CSP search: a state machine
// Propagate -> Select -> Branch -> {Propagate|Success|Backtrack} over a
// vars/vals digraph pair and a domainset.DomainMap.
//
// What
//
//   - Solve propagates (AC-3 or SAC-1, caller's choice), then recurses:
//     select the unassigned variable (|L(v)| > 1) with the largest current
//     domain, breaking ties by ascending variable ID; branch over its
//     candidate values in ascending order, snapshotting the domain map
//     before each trial and restoring it on failure.
//   - A Result reports whether a solution exists and, if so, a witness
//     assignment: one value per variable.
//
// Why
//
//   - The engine is a single recursive function operating on one owned
//     domainset.DomainMap rather than a web of closures, in the same spirit
//     as a branch-and-bound search: explicit state, predictable hot path,
//     easy to reason about under recursion depth bounded by |V(vars)|.
//   - Branching commits via DomainMap.Set/Snapshot/Restore, so a failed
//     branch costs O(values actually removed) to undo, not a deep clone of
//     the whole domain map.
package solve
