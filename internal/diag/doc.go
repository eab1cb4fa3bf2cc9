// Package diag defines the diagnostic records produced while reading polar
// tables.
//
// # Purpose
//
//   - Capture non-fatal findings of the readers (dropped fields, duplicate
//     TWA rows, a suspicious detected delimiter) without aborting a run.
//   - Keep emission decoupled from storage: readers talk to a Reporter,
//     the driver collects into a Bag, and internal/diagfmt renders it.
//
// Fatal conditions are ordinary Go errors returned by the readers; a
// Diagnostic never stops a conversion.
//
// # Data model
//
// Diagnostic is the central record. It contains:
//
//   - Severity – Info, Warning or Error (severity.go).
//   - Code – compact numeric identifier (codes.go) with a stable string form.
//   - Path and Line – where the finding applies; Line is 1-based, 0 for
//     file-wide findings.
//   - Message – short human oriented text.
package diag
