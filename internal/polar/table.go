package polar

import (
	"fmt"
	"slices"
)

// Pair is one (TWA, parameter value) entry of a curve.
type Pair struct {
	TWA   float64 `json:"twa" yaml:"twa"`
	Value float64 `json:"value" yaml:"value"`
}

func (p Pair) String() string {
	return fmt.Sprintf("TWA: %g Parameter: %g", p.TWA, p.Value)
}

// Curve is the ordered set of pairs for one TWS value.
type Curve []Pair

// TWAs returns the angle column of the curve.
func (c Curve) TWAs() []float64 {
	out := make([]float64, len(c))
	for i, p := range c {
		out[i] = p.TWA
	}
	return out
}

// Table is a polar table owned by a single conversion run.
type Table struct {
	tws      []float64
	curves   []Curve
	comments []string
}

// New returns an empty table.
func New() *Table {
	return &Table{}
}

// AppendCurve adds a TWS value and its curve at the end of the table.
func (t *Table) AppendCurve(tws float64, c Curve) {
	t.tws = append(t.tws, tws)
	t.curves = append(t.curves, c)
}

// Curve returns the curve stored at index i. The curve aliases table
// storage; SetCurve must be used to change its length.
func (t *Table) Curve(i int) Curve {
	return t.curves[i]
}

// SetCurve replaces the curve at index i.
func (t *Table) SetCurve(i int, c Curve) {
	t.curves[i] = c
}

// TWS returns the TWS axis. Do not modify the returned slice.
func (t *Table) TWS() []float64 {
	return t.tws
}

// Len returns the number of TWS rows.
func (t *Table) Len() int {
	return len(t.tws)
}

// Comments returns preserved comment lines in file order.
func (t *Table) Comments() []string {
	return t.comments
}

// AppendComment stores a raw comment line verbatim.
func (t *Table) AppendComment(line string) {
	t.comments = append(t.comments, line)
}

// Clone returns a deep copy.
func (t *Table) Clone() *Table {
	out := &Table{
		tws:      slices.Clone(t.tws),
		curves:   make([]Curve, len(t.curves)),
		comments: slices.Clone(t.comments),
	}
	for i, c := range t.curves {
		out.curves[i] = slices.Clone(c)
	}
	return out
}

// Equal reports whether both tables hold the same TWS axis, curves and comments.
func (t *Table) Equal(o *Table) bool {
	if t == nil || o == nil {
		return t == o
	}
	if !slices.Equal(t.tws, o.tws) || !slices.Equal(t.comments, o.comments) {
		return false
	}
	if len(t.curves) != len(o.curves) {
		return false
	}
	for i := range t.curves {
		if !slices.Equal(t.curves[i], o.curves[i]) {
			return false
		}
	}
	return true
}
