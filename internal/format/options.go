package format

import "io"

// Options control number rendering and console mirroring.
type Options struct {
	// Precision is the number of significant digits. Zero or negative
	// selects the shortest representation that parses back to the same value.
	Precision int
	// Echo receives every data row as it is written. Nil disables.
	Echo io.Writer
}

// DefaultOptions returns shortest round-trip output without echo.
func DefaultOptions() Options {
	return Options{Precision: -1}
}

func (o Options) precision() int {
	if o.Precision <= 0 {
		return -1
	}
	return o.Precision
}
