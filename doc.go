// Package relais collects small developer utilities shared across a family of
// bioinformatics-adjacent scripts and tools.
//
// The module intentionally stays a grab-bag of independent helpers rather than
// a framework:
//
//   - record: a typo-safe options/record type whose attribute set is fixed at
//     construction. Misspelled reads and writes fail loudly with typed errors
//     instead of silently producing zero values.
//
//   - text: greedy text reflow (Fill/Wrap) with a configurable width, counted
//     in runes or terminal display columns.
//
//   - diag: severity levels, one-line message formatting, and the Assert/Exit
//     condition helpers that report through an optional stream and/or logger
//     before failing.
//
//   - option: the generic functional-option plumbing shared by text and diag.
//
// Quick guidance
//
// Use record when a script takes a bag of named settings and a typo should be
// an error, not a nil. Use diag.Assert when the caller can recover, and
// diag.Exit only at the top level of a script, since it terminates the
// process. Nothing here is safe for concurrent mutation; callers serialize.
//
// A runnable end-to-end demo lives under examples/basic.
package relais
