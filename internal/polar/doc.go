// Package polar holds a polar performance table in TWS-major form.
//
// A Table is an ordered list of TWS values parallel to an ordered list of
// Curves: Curve(i) belongs to TWS()[i]. Each Curve is an ordered list of
// (TWA, value) pairs. The package only stores data; readers establish the
// non-empty curve invariant and internal/normalize establishes TWA order and
// uniqueness.
package polar
