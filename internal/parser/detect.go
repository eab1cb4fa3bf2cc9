package parser

import (
	"fmt"
	"strings"

	"polarconv/internal/token"
)

// Detector decides the field delimiter of a native file from its first data line.
type Detector interface {
	// Detect returns the delimiter, or false if line does not reveal one.
	Detect(line string) (byte, bool)
}

// DigitBoundary picks the first byte that is not an ASCII digit.
//
// A '.' stops the scan like any other non-digit, so a first row with a
// fractional TWS (e.g. "6.5\t...") yields '.' as the delimiter. The reader
// flags that case instead of guessing.
type DigitBoundary struct{}

func (DigitBoundary) Detect(line string) (byte, bool) {
	for i := 0; i < len(line); i++ {
		if !token.IsDigit(line[i]) {
			return line[i], true
		}
	}
	return 0, false
}

// Fixed always returns the configured delimiter.
type Fixed byte

func (f Fixed) Detect(string) (byte, bool) { return byte(f), true }

// DetectorFor maps a configured delimiter to a Detector. An empty value keeps
// auto-detection; "tab", "\t" and `\t` mean a tab; any other single byte is
// used as is.
func DetectorFor(value string) (Detector, error) {
	switch strings.ToLower(value) {
	case "", "auto":
		return DigitBoundary{}, nil
	case "tab", "\t", `\t`:
		return Fixed('\t'), nil
	case "space":
		return Fixed(' '), nil
	}
	if len(value) != 1 {
		return nil, fmt.Errorf("invalid delimiter %q: expected a single character", value)
	}
	if token.IsDigit(value[0]) {
		return nil, fmt.Errorf("invalid delimiter %q: digits cannot separate numbers", value)
	}
	return Fixed(value[0]), nil
}
