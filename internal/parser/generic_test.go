package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"polarconv/internal/diag"
	"polarconv/internal/polar"
)

func TestParseGenericTransposes(t *testing.T) {
	sf := fileFrom(t, "g.csv", "TWA\\TWS,4,8,12\n30,3.1,5.2,6.0\n60,3.8,6.1,7.2\n")
	tab, err := ParseGeneric(sf, Options{})
	require.NoError(t, err)

	require.Equal(t, []float64{4, 8, 12}, tab.TWS())
	assert.Equal(t, polar.Curve{{TWA: 30, Value: 3.1}, {TWA: 60, Value: 3.8}}, tab.Curve(0))
	assert.Equal(t, polar.Curve{{TWA: 30, Value: 5.2}, {TWA: 60, Value: 6.1}}, tab.Curve(1))
	assert.Equal(t, polar.Curve{{TWA: 30, Value: 6.0}, {TWA: 60, Value: 7.2}}, tab.Curve(2))
	assert.Empty(t, tab.Comments())
}

func TestParseGenericDecorators(t *testing.T) {
	cases := map[string]string{
		"backslash": "TWA\\TWS;6;10\n45;5;6\n",
		"slash":     "TWA/TWS;6;10\n45;5;6\n",
		"lowercase": "twa/tws;6;10\n45;5;6\n",
		"mixed":     "Twa\\tWs;6;10\n45;5;6\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			tab, err := ParseGeneric(fileFrom(t, "g", content), Options{})
			require.NoError(t, err)
			assert.Equal(t, []float64{6, 10}, tab.TWS())
			assert.Equal(t, polar.Curve{{TWA: 45, Value: 6}}, tab.Curve(1))
		})
	}
}

func TestParseGenericTabDelimiter(t *testing.T) {
	sf := fileFrom(t, "g.txt", "TWA/TWS\t6\t10\r\n52\t5.5\t7.1\r\n")
	tab, err := ParseGeneric(sf, Options{})
	require.NoError(t, err)
	assert.Equal(t, polar.Curve{{TWA: 52, Value: 7.1}}, tab.Curve(1))
}

func TestParseGenericMalformedHeader(t *testing.T) {
	cases := map[string]string{
		"empty file":     "",
		"wrong prefix":   "TWS\\TWA,4,8\n30,1,2\n",
		"too short":      "TWA",
		"no delimiter":   "TWA/TWS\n30,1,2\n",
		"no tws columns": "TWA/TWS,x,y\n30,1,2\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			opts, bag := bagOptions()
			_, err := ParseGeneric(fileFrom(t, "g", content), opts)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedHeader), "got %v", err)
			var le *LineError
			require.True(t, errors.As(err, &le))
			assert.Equal(t, uint32(1), le.Line)
			assert.Equal(t, 1, bag.Count(diag.ReadMalformedHeader))
		})
	}
}

func TestParseGenericDuplicateTWAOverwritesAndRepeats(t *testing.T) {
	opts, bag := bagOptions()
	sf := fileFrom(t, "g", "TWA\\TWS,4,8\n30,1,2\n60,3,4\n30,5,6\n")
	tab, err := ParseGeneric(sf, opts)
	require.NoError(t, err)

	// the later row wins in the lookup but both slots stay in file order
	assert.Equal(t, polar.Curve{{TWA: 30, Value: 5}, {TWA: 60, Value: 3}, {TWA: 30, Value: 5}}, tab.Curve(0))
	assert.Equal(t, polar.Curve{{TWA: 30, Value: 6}, {TWA: 60, Value: 4}, {TWA: 30, Value: 6}}, tab.Curve(1))

	require.Equal(t, 1, bag.Count(diag.WarnDuplicateTWARow))
	d := bag.Items()[0]
	assert.Equal(t, uint32(4), d.Line)
	assert.Contains(t, d.Message, "line 2")
}

func TestParseGenericShortRow(t *testing.T) {
	opts, bag := bagOptions()
	_, err := ParseGeneric(fileFrom(t, "g", "TWA\\TWS,4,8,12\n30,1,2,3\n60,4,5\n"), opts)
	require.True(t, errors.Is(err, ErrShortRow), "got %v", err)
	var le *LineError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, uint32(3), le.Line)
	assert.True(t, bag.HasErrors())
}

func TestParseGenericShortRowReplacedByDuplicate(t *testing.T) {
	// the short row is shadowed by a complete row with the same TWA
	tab, err := ParseGeneric(fileFrom(t, "g", "TWA\\TWS,4,8\n30,1\n30,2,3\n"), Options{})
	require.NoError(t, err)
	assert.Equal(t, polar.Curve{{TWA: 30, Value: 3}, {TWA: 30, Value: 3}}, tab.Curve(1))
}

func TestParseGenericNonNumericRow(t *testing.T) {
	_, err := ParseGeneric(fileFrom(t, "g", "TWA\\TWS,4\nnotes,here\n"), Options{})
	assert.True(t, errors.Is(err, ErrShortRow), "got %v", err)
}

func TestParseGenericNoRows(t *testing.T) {
	_, err := ParseGeneric(fileFrom(t, "g", "TWA\\TWS,4,8\n\n"), Options{})
	assert.True(t, errors.Is(err, ErrNoRows), "got %v", err)
}

func TestParseGenericDiagnostics(t *testing.T) {
	opts, bag := bagOptions()
	sf := fileFrom(t, "g", "TWA\\TWS,4\n\n30,1,9\n45, 2,3\n")
	tab, err := ParseGeneric(sf, opts)
	require.NoError(t, err)

	assert.Equal(t, polar.Curve{{TWA: 30, Value: 1}, {TWA: 45, Value: 3}}, tab.Curve(0))
	assert.Equal(t, 1, bag.Count(diag.InfoBlankLine))
	assert.Equal(t, 1, bag.Count(diag.WarnSurplusValues))
	assert.Equal(t, 1, bag.Count(diag.WarnDroppedField))
	assert.False(t, bag.HasErrors())
}

func TestParseGenericEcho(t *testing.T) {
	opts, buf := echoOptions()
	_, err := ParseGeneric(fileFrom(t, "g", "TWA\\TWS,4\n30,1\n"), opts)
	require.NoError(t, err)
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "Cut Char: ',' 0x2c\n"), out)
	assert.Contains(t, out, "30,1\n")
}
