// Package persist is the external collaborator owning all filesystem I/O
// for tripolys: I/O is owned by external collaborators, the core never
// touches the filesystem.
//
// What
//
//   - WriteCoreTriads/ReadCoreTriads round-trip triads_core_<n>.txt: one
//     canonical arm1,arm2,arm3 line per triad.
//   - AppendPolyResult/ReadPolyResults round-trip poly_<name>_<n>.txt:
//     append-only, YES/NO-prefixed lines, duplicate-tolerant on read.
//   - MigrateLegacy rewrites the older ad-hoc dump layout into the
//     canonical one without touching the legacy file.
//
// Why
//
//   - Plain comma-separated text, not a binary or structured format,
//     matches the append-safe/duplicate-tolerant contract and keeps the
//     files diffable and debuggable by hand.
//   - Every operation logs via internal/xlog at debug level, narrating
//     file-level side effects rather than staying silent.
package persist
