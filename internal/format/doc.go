// Package format serializes polar tables in the native TWS-major layout.
//
// Output is always tab separated: the canonical header, every preserved
// comment verbatim, then one line per TWS value holding that value followed
// by its (TWA, value) pairs in curve order.
package format
