package token

import "strings"

// Split breaks line into fields on every occurrence of delim.
// Consecutive delimiters produce empty fields. Scanning stops once the
// cursor passes the end of the line, so one trailing delimiter does not
// add an empty field while two of them add exactly one.
func Split(line string, delim byte) []string {
	fields := make([]string, 0, 8)
	start := 0
	for start < len(line) {
		end := strings.IndexByte(line[start:], delim)
		if end < 0 {
			end = len(line)
		} else {
			end += start
		}
		fields = append(fields, line[start:end])
		start = end + 1
	}
	return fields
}

// Row is the numeric view of a split line.
type Row struct {
	Values  []float64
	Dropped []string // non-empty fields rejected because they do not start with a digit
}

// Scan splits line like Split and converts every field starting with an
// ASCII digit. Other non-empty fields are reported in Row.Dropped.
func Scan(line string, delim byte) Row {
	fields := Split(line, delim)
	row := Row{Values: make([]float64, 0, len(fields))}
	for _, f := range fields {
		if f == "" {
			continue
		}
		if !IsDigit(f[0]) {
			row.Dropped = append(row.Dropped, f)
			continue
		}
		row.Values = append(row.Values, ParseLeadingFloat(f))
	}
	return row
}

// SplitNumeric returns the numeric fields of line, silently discarding
// fields that do not start with an ASCII digit.
func SplitNumeric(line string, delim byte) []float64 {
	return Scan(line, delim).Values
}
