package normalize

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"polarconv/internal/diag"
	"polarconv/internal/polar"
	"polarconv/internal/resolve"
	"polarconv/internal/testkit"
)

func table(curves ...polar.Curve) *polar.Table {
	t := polar.New()
	for i, c := range curves {
		t.AppendCurve(float64(6*(i+1)), c)
	}
	return t
}

func TestIdenticalDuplicatesDroppedWithoutPrompt(t *testing.T) {
	tb := table(polar.Curve{{TWA: 30, Value: 5}, {TWA: 30, Value: 5}, {TWA: 45, Value: 6}})
	script := resolve.NewScript()

	rep, err := Normalize(context.Background(), tb, script)
	require.NoError(t, err)
	assert.Equal(t, polar.Curve{{TWA: 30, Value: 5}, {TWA: 45, Value: 6}}, tb.Curve(0))
	assert.Equal(t, 1, rep.Identical)
	assert.Empty(t, script.Seen())
}

func TestSortIsStableAndAscending(t *testing.T) {
	tb := table(polar.Curve{{TWA: 90, Value: 7}, {TWA: 30, Value: 5}, {TWA: 60, Value: 6}})
	_, err := Normalize(context.Background(), tb, resolve.Fail)
	require.NoError(t, err)
	assert.Equal(t, []float64{30, 60, 90}, tb.Curve(0).TWAs())
}

func TestKeepAKeepsEarlierEntry(t *testing.T) {
	tb := table(polar.Curve{{TWA: 45, Value: 6.1}, {TWA: 30, Value: 5}, {TWA: 45, Value: 6.4}})
	script := resolve.NewScript(resolve.KeepA)

	rep, err := Normalize(context.Background(), tb, script)
	require.NoError(t, err)
	assert.Equal(t, polar.Curve{{TWA: 30, Value: 5}, {TWA: 45, Value: 6.1}}, tb.Curve(0))
	require.Len(t, script.Seen(), 1)
	seen := script.Seen()[0]
	assert.Equal(t, polar.Pair{TWA: 45, Value: 6.1}, seen.A)
	assert.Equal(t, polar.Pair{TWA: 45, Value: 6.4}, seen.B)
	assert.Equal(t, 6.0, seen.TWS)
	assert.Equal(t, 1, rep.KeptA)
}

func TestKeepBKeepsLaterEntry(t *testing.T) {
	tb := table(polar.Curve{{TWA: 45, Value: 6.1}, {TWA: 45, Value: 6.4}})
	_, err := Normalize(context.Background(), tb, resolve.NewScript(resolve.KeepB))
	require.NoError(t, err)
	assert.Equal(t, polar.Curve{{TWA: 45, Value: 6.4}}, tb.Curve(0))
}

func TestOnePromptPerConflictingPair(t *testing.T) {
	tb := table(
		polar.Curve{{TWA: 30, Value: 1}, {TWA: 30, Value: 2}, {TWA: 30, Value: 3}},
		polar.Curve{{TWA: 40, Value: 4}, {TWA: 50, Value: 5}, {TWA: 50, Value: 5}, {TWA: 50, Value: 6}},
	)
	script := resolve.NewScript(resolve.KeepA, resolve.KeepB, resolve.KeepB)

	rep, err := Normalize(context.Background(), tb, script)
	require.NoError(t, err)
	// Triple collapses in two prompts: keep 1 over 2, then 3 over 1.
	assert.Equal(t, polar.Curve{{TWA: 30, Value: 3}}, tb.Curve(0))
	assert.Equal(t, polar.Curve{{TWA: 40, Value: 4}, {TWA: 50, Value: 6}}, tb.Curve(1))
	assert.Len(t, script.Seen(), 3)
	assert.Equal(t, Report{Curves: 2, Identical: 1, KeptA: 1, KeptB: 2}, rep)
	assert.Equal(t, 3, rep.Conflicts())
}

func TestIdempotent(t *testing.T) {
	tb := table(
		polar.Curve{{TWA: 90, Value: 7}, {TWA: 30, Value: 5}, {TWA: 30, Value: 5.5}, {TWA: 60, Value: 6}},
		polar.Curve{{TWA: 45, Value: 2}, {TWA: 45, Value: 2}},
	)
	_, err := Normalize(context.Background(), tb, resolve.KeepLast)
	require.NoError(t, err)
	once := tb.Clone()

	script := resolve.NewScript()
	rep, err := Normalize(context.Background(), tb, script)
	require.NoError(t, err)
	assert.True(t, once.Equal(tb))
	assert.Empty(t, script.Seen())
	assert.Zero(t, rep.Identical+rep.Conflicts())

	require.NoError(t, testkit.CheckNormalized(tb))
}

func TestResolverErrorStops(t *testing.T) {
	tb := table(polar.Curve{{TWA: 45, Value: 6.1}, {TWA: 45, Value: 6.4}})
	_, err := Normalize(context.Background(), tb, resolve.Fail)
	require.ErrorIs(t, err, resolve.ErrConflict)
	assert.Contains(t, err.Error(), "curve TWS 6")
}

func TestCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Normalize(ctx, table(polar.Curve{{TWA: 1, Value: 1}}), resolve.KeepFirst)
	require.ErrorIs(t, err, context.Canceled)
}

func TestDiagnosticsAndEcho(t *testing.T) {
	tb := table(polar.Curve{{TWA: 30, Value: 5}, {TWA: 30, Value: 5}, {TWA: 45, Value: 1}, {TWA: 45, Value: 2}})
	bag := diag.NewBag(16)
	var echo strings.Builder
	n := &Normalizer{
		Resolver: resolve.KeepFirst,
		Reporter: diag.BagReporter{Bag: bag},
		Path:     "in.pol",
		Echo:     &echo,
	}
	_, err := n.Normalize(context.Background(), tb)
	require.NoError(t, err)

	require.Equal(t, 2, bag.Len())
	items := bag.Items()
	assert.Equal(t, diag.InfoDuplicateDropped, items[0].Code)
	assert.Equal(t, diag.WarnConflictResolved, items[1].Code)
	assert.Equal(t, "in.pol", items[1].Path)
	assert.Contains(t, echo.String(), "Cleaning polar file.\n")
	assert.Contains(t, echo.String(), "Entry is identical - dropping duplicate.\n")
}
