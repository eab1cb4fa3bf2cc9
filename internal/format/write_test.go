package format

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"polarconv/internal/diag"
	"polarconv/internal/parser"
	"polarconv/internal/polar"
	"polarconv/internal/source"
)

func sampleTable() *polar.Table {
	t := polar.New()
	t.AppendComment("!Boat: test 30")
	t.AppendCurve(6, polar.Curve{{TWA: 30, Value: 3.1}, {TWA: 60, Value: 3.8}})
	t.AppendCurve(12, polar.Curve{{TWA: 30, Value: 6}, {TWA: 60, Value: 7.2}, {TWA: 180, Value: 0.123456789}})
	return t
}

func TestNativeLayout(t *testing.T) {
	got := string(Native(sampleTable(), DefaultOptions()))
	want := polar.CanonicalHeader + "\n" +
		"!Boat: test 30\n" +
		"6\t30\t3.1\t60\t3.8\n" +
		"12\t30\t6\t60\t7.2\t180\t0.123456789\n"
	assert.Equal(t, want, got)
}

func TestPrecision(t *testing.T) {
	got := string(Native(sampleTable(), Options{Precision: 6}))
	assert.Contains(t, got, "12\t30\t6\t60\t7.2\t180\t0.123457\n")
}

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		v    float64
		prec int
		want string
	}{
		{5.2, -1, "5.2"},
		{5.2, 6, "5.2"},
		{100, 6, "100"},
		{1234567, 6, "1.23457e+06"},
		{0.5, 3, "0.5"},
		{1e-7, 6, "1e-07"},
		{-3.25, -1, "-3.25"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, string(FormatNumber(nil, tc.v, tc.prec)), "%v/%d", tc.v, tc.prec)
	}
}

func TestEchoMirrorsRows(t *testing.T) {
	var echo strings.Builder
	Native(sampleTable(), Options{Echo: &echo})
	assert.Equal(t, "6\t30\t3.1\t60\t3.8\n12\t30\t6\t60\t7.2\t180\t0.123456789\n", echo.String())
}

func TestWriteThenReadRoundTrips(t *testing.T) {
	in := sampleTable()
	var out strings.Builder
	require.NoError(t, WriteNative(&out, in, DefaultOptions()))

	sf, err := source.FromBytes("round.pol", []byte(out.String()), source.EncodingUTF8)
	require.NoError(t, err)
	back, err := parser.ParseNative(sf, parser.Options{Reporter: diag.NopReporter{}})
	require.NoError(t, err)
	assert.True(t, in.Equal(back), "round trip mismatch:\n%s", out.String())
}
