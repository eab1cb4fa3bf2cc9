package parser

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedHeader means the generic header decorator is missing or incomplete.
	ErrMalformedHeader = errors.New("malformed header")
	// ErrUnpairedValue means a native row has an even number of numeric fields.
	ErrUnpairedValue = errors.New("unpaired value")
	// ErrShortRow means a generic row has fewer values than the TWS axis.
	ErrShortRow = errors.New("row shorter than TWS axis")
	// ErrEmptyCurve means a native row carries a TWS value but no pairs.
	ErrEmptyCurve = errors.New("row has no TWA/value pairs")
	// ErrNoRows means a generic table has a header but no data rows.
	ErrNoRows = errors.New("no data rows")
)

// LineError locates a fatal read error in the input.
type LineError struct {
	Path   string
	Line   uint32
	Err    error
	Detail string
}

func (e *LineError) Error() string {
	msg := e.Err.Error()
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Line == 0 {
		return fmt.Sprintf("%s: %s", e.Path, msg)
	}
	return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, msg)
}

func (e *LineError) Unwrap() error { return e.Err }
