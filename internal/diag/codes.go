package diag

import "fmt"

// Code identifies a diagnostic kind.
type Code uint16

const (
	UnknownCode Code = 0

	// ошибки чтения
	ReadMalformedHeader Code = 1001
	ReadUnpairedValue   Code = 1002
	ReadShortRow        Code = 1003
	ReadEmptyCurve      Code = 1004
	ReadNoRows          Code = 1005

	// предупреждения
	WarnDuplicateTWARow  Code = 2001
	WarnDotDelimiter     Code = 2002
	WarnSurplusValues    Code = 2003
	WarnDroppedField     Code = 2004
	WarnConflictResolved Code = 2006
	WarnCacheWrite       Code = 2007

	InfoBlankLine        Code = 3001
	InfoDuplicateDropped Code = 3002
)

var codeDescription = map[Code]string{
	UnknownCode:          "Unknown",
	ReadMalformedHeader:  "Malformed table header",
	ReadUnpairedValue:    "Row has an unpaired value",
	ReadShortRow:         "Row has fewer values than the TWS axis",
	ReadEmptyCurve:       "Row has no TWA/value pairs",
	ReadNoRows:           "Table has no data rows",
	WarnDuplicateTWARow:  "Duplicate TWA row overrides an earlier one",
	WarnDotDelimiter:     "Detected delimiter is '.'",
	WarnSurplusValues:    "Row has more values than the TWS axis",
	WarnDroppedField:     "Field does not start with a digit and was dropped",
	WarnConflictResolved: "Conflicting TWA entries resolved",
	WarnCacheWrite:       "Resolution decisions could not be cached",
	InfoBlankLine:        "Blank line skipped",
	InfoDuplicateDropped: "Identical duplicate entry dropped",
}

// ID returns the stable string form, e.g. "W2001".
func (c Code) ID() string {
	if c < 1000 || c >= 4000 {
		return "E0000"
	}
	return fmt.Sprintf("%c%04d", c.Severity().letter(), uint16(c))
}

func (c Code) String() string {
	return c.ID()
}

// Title returns a short description of the code.
func (c Code) Title() string {
	if s, ok := codeDescription[c]; ok {
		return s
	}
	return codeDescription[UnknownCode]
}
