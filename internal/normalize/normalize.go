// Package normalize sorts every curve of a table by TWA and collapses
// duplicate angles so that each curve is strictly increasing.
package normalize

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"slices"

	"polarconv/internal/diag"
	"polarconv/internal/polar"
	"polarconv/internal/resolve"
)

// Report summarizes what normalization removed.
type Report struct {
	Curves    int `json:"curves"`
	Identical int `json:"identical"`
	KeptA     int `json:"kept_a"`
	KeptB     int `json:"kept_b"`
}

// Conflicts returns the number of conflicts handed to the resolver.
func (r Report) Conflicts() int { return r.KeptA + r.KeptB }

// Normalizer holds the collaborators of a normalization pass.
type Normalizer struct {
	Resolver resolve.Resolver
	// Reporter receives one diagnostic per removed entry. Nil discards.
	Reporter diag.Reporter
	// Path is attached to diagnostics.
	Path string
	// Echo mirrors progress messages. Nil disables.
	Echo io.Writer
}

// Normalize runs a pass over t with r and no diagnostics.
func Normalize(ctx context.Context, t *polar.Table, r resolve.Resolver) (Report, error) {
	return (&Normalizer{Resolver: r}).Normalize(ctx, t)
}

// Normalize rewrites every curve of t in place. On a resolver error the
// curves already processed stay normalized and the error is returned.
func (n *Normalizer) Normalize(ctx context.Context, t *polar.Table) (Report, error) {
	var rep Report
	n.echo("Cleaning polar file.")
	for i := 0; i < t.Len(); i++ {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		c, err := n.curve(ctx, i, t.TWS()[i], t.Curve(i), &rep)
		if err != nil {
			return rep, err
		}
		t.SetCurve(i, c)
		rep.Curves++
	}
	return rep, nil
}

func (n *Normalizer) curve(ctx context.Context, idx int, tws float64, c polar.Curve, rep *Report) (polar.Curve, error) {
	slices.SortStableFunc(c, func(a, b polar.Pair) int {
		return cmp.Compare(a.TWA, b.TWA)
	})
	dr := diag.PathReporter{Next: n.Reporter, Path: n.Path}

	for j := 0; j+1 < len(c); {
		a, b := c[j], c[j+1]
		if a.TWA != b.TWA {
			j++
			continue
		}
		if a.Value == b.Value {
			n.echo("Entry is identical - dropping duplicate.")
			dr.Infof(diag.InfoDuplicateDropped, 0, "TWS %g: identical entry %s dropped", tws, b)
			c = slices.Delete(c, j+1, j+2)
			rep.Identical++
			continue
		}
		choice, err := n.Resolver.Resolve(ctx, resolve.Conflict{CurveIndex: idx, TWS: tws, A: a, B: b})
		if err != nil {
			return c, fmt.Errorf("curve TWS %g: %w", tws, err)
		}
		switch choice {
		case resolve.KeepA:
			c = slices.Delete(c, j+1, j+2)
			rep.KeptA++
			dr.Warnf(diag.WarnConflictResolved, 0, "TWS %g: kept %s, dropped %s", tws, a, b)
		case resolve.KeepB:
			c = slices.Delete(c, j, j+1)
			rep.KeptB++
			dr.Warnf(diag.WarnConflictResolved, 0, "TWS %g: kept %s, dropped %s", tws, b, a)
		default:
			return c, fmt.Errorf("curve TWS %g: resolver returned invalid %v", tws, choice)
		}
	}
	return c, nil
}

func (n *Normalizer) echo(msg string) {
	if n.Echo == nil {
		return
	}
	_, _ = fmt.Fprintln(n.Echo, msg)
}
