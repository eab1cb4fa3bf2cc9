package parser

import (
	"fmt"
	"strings"

	"polarconv/internal/diag"
	"polarconv/internal/polar"
	"polarconv/internal/source"
	"polarconv/internal/token"
)

// ParseNative reads the TWS-major pair layout.
//
// The canonical header is recognized and dropped, other '!' lines are kept
// as comments in file order. The delimiter is chosen once, by the Detector,
// on the first data line that reveals one.
func ParseNative(sf *source.File, opts Options) (*polar.Table, error) {
	r := newReader(sf, opts)
	table := polar.New()

	var delim byte
	haveDelim := false

	for i, line := range sf.Lines {
		lineNo := lineNumber(i)
		r.echoLine(line)

		if strings.TrimSpace(line) == "" {
			r.rep.Infof(diag.InfoBlankLine, lineNo, "blank line skipped")
			continue
		}
		if polar.IsComment(line) {
			if !polar.IsCanonicalHeader(line) {
				table.AppendComment(line)
			}
			continue
		}

		// A line that reveals no delimiter holds a single number and fails
		// below as an empty curve.
		if !haveDelim {
			if d, ok := r.opts.Detector.Detect(line); ok {
				delim, haveDelim = d, true
				r.echoDelimiter(delim)
				if delim == '.' {
					r.rep.Warnf(diag.WarnDotDelimiter, lineNo,
						"delimiter detected as '.'; the first TWS value is probably fractional, set the delimiter explicitly")
				}
			}
		}

		row := token.Scan(line, delim)
		r.reportDropped(lineNo, row.Dropped)

		n := len(row.Values)
		switch {
		case n%2 == 0:
			return nil, r.fail(diag.ReadUnpairedValue, lineNo, ErrUnpairedValue,
				fmt.Sprintf("%d numeric field(s); expected TWS followed by TWA/value pairs", n))
		case n == 1:
			return nil, r.fail(diag.ReadEmptyCurve, lineNo, ErrEmptyCurve,
				fmt.Sprintf("TWS %g has no pairs", row.Values[0]))
		}

		curve := make(polar.Curve, 0, n/2)
		for j := 1; j+1 < n; j += 2 {
			curve = append(curve, polar.Pair{TWA: row.Values[j], Value: row.Values[j+1]})
		}
		table.AppendCurve(row.Values[0], curve)
	}
	return table, nil
}
