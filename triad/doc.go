// Package triad models the oriented-tree input to the rest of tripolys: a
// triad is three binary "arm" strings sharing a single root vertex.
//
// What
//
//   - Parse validates and wraps three arm strings into a Triad.
//   - Build realizes a Triad as a digraph.Digraph, plus a side table mapping
//     each dense vertex ID back to a human-readable "root"/"armI.J" label.
//   - IsCore and IsRootedCore decide coreness by running AC-3 on (T,T) and
//     checking every resulting domain is a singleton — correct for this
//     triad class specifically (their endomorphism monoids are tame under
//     AC-3), not claimed for arbitrary digraphs. Triad is the only type
//     this package exposes the predicate for, precisely to avoid silently
//     broadening that claim.
//   - CanonicalForm is the arm-permutation-duplicate filter: true iff the
//     three arms are in non-decreasing lexicographic order. The enumerator
//     that iterates all triads of a given size and keeps the canonical,
//     core ones lives in package enumerate, an external collaborator.
package triad
