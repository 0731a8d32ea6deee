// Package enumerate is the external collaborator that generates core
// triads and fans their polymorphism tests out over a bounded worker
// pool.
//
// What
//
//   - CoreTriads(n) generates every triad with exactly n non-root
//     vertices, keeping only triad.CanonicalForm and triad.IsCore
//     survivors.
//   - Range(a, b) runs CoreTriads for every n in [a, b], for the CLI's
//     --nodes <a-b> form.
//   - TestAll runs poly.FindPolymorphism for a batch of triads
//     concurrently, bounded by a worker pool.
//
// Why
//
//   - The CSP core is single-threaded and synchronous by design:
//     parallelizing across triads, where each triad's CSP instance is
//     fully independent, is this package's job, not the core's.
//   - golang.org/x/sync/errgroup bounds that fan-out with SetLimit rather
//     than an unbounded goroutine-per-triad burst.
package enumerate
