// Package parser reads polar tables from the two supported text layouts.
//
// ParseGeneric reads a TWA-major delimited table whose first line is a
// `TWA\TWS` or `TWA/TWS` decorator followed by the delimiter, and transposes
// it into TWS-major curves. ParseNative reads the TWS-major pair layout
// directly and keeps its comment lines.
//
// Fatal input problems are returned as *LineError wrapping one of the
// sentinel errors; everything else is reported as a diag.Diagnostic.
package parser
