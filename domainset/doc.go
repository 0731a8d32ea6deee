// Package domainset implements the domain map L : V -> 2^V' at the heart of
// the constraint-propagation core: for every variable (a vertex of the
// indicator digraph) it tracks the current set of candidate values (vertices
// of the target digraph) as a bitset.BitSet.
//
// What
//
//   - New builds a DomainMap of n variables over a value universe of size m,
//     seeding each variable's domain from a caller-supplied closure.
//   - Get/Set/Shrink read and narrow a single variable's domain.
//   - Snapshot/Restore provide cheap backtracking: rather than deep-cloning
//     every domain on every branch, DomainMap keeps a trail of the bits each
//     Shrink actually removed and replays it backwards on Restore. This
//     mirrors a classic constraint-solver trail-based undo log and is the
//     dominant factor in making branching affordable once the indicator
//     digraph reaches the 10^5-vertex range a real triad's polymorphism
//     check can produce.
//
// Why
//
//   - A full copy of n bitsets on every branch point turns an otherwise
//     fast propagator into the bottleneck; recording only what changed and
//     undoing it is O(removed bits) instead of O(n*m).
//   - Emptiness of any domain is the one detectable failure condition the
//     propagator and solver care about; IsEmpty and Singleton exist so
//     callers never have to pull Count() out of a bitset by hand.
package domainset
