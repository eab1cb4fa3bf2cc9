// Package testkit holds structural checks shared by tests.
package testkit

import (
	"fmt"
	"math"

	"polarconv/internal/polar"
)

// CheckNormalized verifies the invariants of a normalized table:
// 1) every curve is non-empty
// 2) TWA values are finite and strictly increasing within each curve
// 3) the TWS axis and curve list have the same length
func CheckNormalized(t *polar.Table) error {
	if t == nil {
		return fmt.Errorf("nil table")
	}
	if len(t.TWS()) != t.Len() {
		return fmt.Errorf("axis has %d values for %d curves", len(t.TWS()), t.Len())
	}
	for i, tws := range t.TWS() {
		c := t.Curve(i)
		if len(c) == 0 {
			return fmt.Errorf("curve %d (TWS %g) is empty", i, tws)
		}
		for j, p := range c {
			if math.IsNaN(p.TWA) || math.IsInf(p.TWA, 0) {
				return fmt.Errorf("curve %d (TWS %g): TWA at %d is not finite", i, tws, j)
			}
			if j > 0 && c[j-1].TWA >= p.TWA {
				return fmt.Errorf("curve %d (TWS %g): TWA %g at %d does not increase after %g",
					i, tws, p.TWA, j, c[j-1].TWA)
			}
		}
	}
	return nil
}

// CheckTransposed verifies that t is the transposition of a generic table
// with the given axis and rows, where each row is TWA followed by one value
// per axis entry and no TWA repeats.
func CheckTransposed(t *polar.Table, axis []float64, rows [][]float64) error {
	if t.Len() != len(axis) {
		return fmt.Errorf("got %d curves for %d TWS values", t.Len(), len(axis))
	}
	for i, tws := range axis {
		if t.TWS()[i] != tws {
			return fmt.Errorf("curve %d: TWS %g, want %g", i, t.TWS()[i], tws)
		}
		c := t.Curve(i)
		if len(c) != len(rows) {
			return fmt.Errorf("TWS %g: %d pairs, want %d", tws, len(c), len(rows))
		}
		for j, row := range rows {
			want := polar.Pair{TWA: row[0], Value: row[i+1]}
			if c[j] != want {
				return fmt.Errorf("TWS %g pair %d: got %v, want %v", tws, j, c[j], want)
			}
		}
	}
	return nil
}
