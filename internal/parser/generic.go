package parser

import (
	"fmt"
	"strings"

	"fortio.org/safecast"

	"polarconv/internal/diag"
	"polarconv/internal/polar"
	"polarconv/internal/source"
	"polarconv/internal/token"
)

// Header decorators accepted on line 1 of a generic table (ASCII case-insensitive).
var genericDecorators = []string{`TWA\TWS`, "TWA/TWS"}

type rawRow struct {
	line   uint32
	values []float64 // values[0] is the TWA key
}

// ParseGeneric reads a TWA-major table and transposes it into TWS curves.
//
// Rows are keyed by TWA. A repeated TWA replaces the earlier row in the
// lookup but still occupies its own slot in file order, so every curve gets
// the later row's value twice at that angle. This is kept as is and
// reported as WarnDuplicateTWARow; the normalizer collapses the copies.
func ParseGeneric(sf *source.File, opts Options) (*polar.Table, error) {
	r := newReader(sf, opts)

	if len(sf.Lines) == 0 {
		return nil, r.fail(diag.ReadMalformedHeader, 1, ErrMalformedHeader, "empty file")
	}
	header := sf.Lines[0]
	cut, ok := matchDecorator(header)
	if !ok {
		return nil, r.fail(diag.ReadMalformedHeader, 1, ErrMalformedHeader,
			fmt.Sprintf("line must start with %s", strings.Join(genericDecorators, " or ")))
	}
	if cut >= len(header) {
		return nil, r.fail(diag.ReadMalformedHeader, 1, ErrMalformedHeader, "no delimiter after decorator")
	}
	delim := header[cut]
	r.echoDelimiter(delim)

	twsAxis := token.SplitNumeric(header, delim)
	if len(twsAxis) == 0 {
		return nil, r.fail(diag.ReadMalformedHeader, 1, ErrMalformedHeader, "no TWS values")
	}

	rows := make(map[float64]rawRow)
	twaOrder := make([]float64, 0, len(sf.Lines)-1)

	for i := 1; i < len(sf.Lines); i++ {
		line := sf.Lines[i]
		lineNo := lineNumber(i)
		r.echoLine(line)

		if strings.TrimSpace(line) == "" {
			r.rep.Infof(diag.InfoBlankLine, lineNo, "blank line skipped")
			continue
		}

		row := token.Scan(line, delim)
		r.reportDropped(lineNo, row.Dropped)
		if len(row.Values) == 0 {
			return nil, r.fail(diag.ReadShortRow, lineNo, ErrShortRow, "no numeric fields")
		}
		if surplus := len(row.Values) - 1 - len(twsAxis); surplus > 0 {
			r.rep.Warnf(diag.WarnSurplusValues, lineNo, "%d value(s) beyond the TWS axis ignored", surplus)
		}

		twa := row.Values[0]
		if prev, dup := rows[twa]; dup {
			r.rep.Warnf(diag.WarnDuplicateTWARow, lineNo,
				"TWA %g already defined on line %d; this row replaces it", twa, prev.line)
		}
		rows[twa] = rawRow{line: lineNo, values: row.Values}
		twaOrder = append(twaOrder, twa)
	}

	if len(twaOrder) == 0 {
		return nil, r.fail(diag.ReadNoRows, 0, ErrNoRows, "header has no rows below it")
	}

	table := polar.New()
	for i, tws := range twsAxis {
		curve := make(polar.Curve, 0, len(twaOrder))
		for _, twa := range twaOrder {
			row := rows[twa]
			if i+1 >= len(row.values) {
				return nil, r.fail(diag.ReadShortRow, row.line, ErrShortRow,
					fmt.Sprintf("TWA %g has %d value(s) for %d TWS column(s)", twa, len(row.values)-1, len(twsAxis)))
			}
			curve = append(curve, polar.Pair{TWA: twa, Value: row.values[i+1]})
		}
		table.AppendCurve(tws, curve)
	}
	return table, nil
}

// matchDecorator returns the offset of the delimiter when line starts with
// one of the generic decorators.
func matchDecorator(line string) (int, bool) {
	for _, deco := range genericDecorators {
		if hasPrefixFold(line, deco) {
			return len(deco), true
		}
	}
	return 0, false
}

func hasPrefixFold(s, prefix string) bool {
	if len(s) < len(prefix) {
		return false
	}
	for i := 0; i < len(prefix); i++ {
		if lowerASCII(s[i]) != lowerASCII(prefix[i]) {
			return false
		}
	}
	return true
}

func lowerASCII(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

func lineNumber(idx int) uint32 {
	n, err := safecast.Conv[uint32](idx + 1)
	if err != nil {
		panic(fmt.Errorf("line number overflow: %w", err))
	}
	return n
}
