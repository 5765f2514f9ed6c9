// Package diag defines the closed diagnostic model of the compiler.
//
// Issue is the central type: a sealed sum over every problem the parser and
// the semantic checker may report, one variant per kind, each owning exactly
// the data its message needs (spans, names, opaque node handles). The set is
// closed on purpose — adding a kind means adding a variant here, so every
// consumer is forced to learn about it.
//
// The package also carries the plumbing around issues:
//
//   - Render maps an Issue onto a Diagnostic, the flat record used for
//     storage, sorting, and serialisation.
//   - Printer writes human-readable reports with source excerpts.
//   - Bag collects diagnostics with a bound, deterministic order, and
//     deduplication; Reporter decouples producers from storage.
//   - Gather runs several producers concurrently and merges their bags
//     deterministically.
//   - EncodeBag/DecodeBag give a versioned binary snapshot for caching.
//
// The package performs no compilation work itself: issues are constructed by
// the (external) parser and checker at the moment a violation is detected and
// are immutable afterwards.
package diag
