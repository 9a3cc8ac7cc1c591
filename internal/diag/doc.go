// Package diag defines the issue model shared by the type lattice, the
// binding ledger driver and the CLI.
//
// Issues found in a student's program are the product of the analysis, not
// failures of the tool. Producers emit them through a Reporter and keep going;
// the caller decides how to store, deduplicate or render them.
//
// # Data model
//
//   - Severity – tri-level enum (Info, Warning, Error).
//   - Code – compact numeric identifier with a stable string form.
//   - Subject – description of the offending value ("a number", "a list").
//   - Primary – the source.Location the issue points at.
//   - Notes – optional secondary locations/messages.
//
// # Reporters
//
//   - BagReporter collects into a Bag with an upper limit; the Bag counts
//     what the limit dropped.
//   - DedupReporter drops repeats of the same code, location and message.
//   - NopReporter discards everything.
package diag
