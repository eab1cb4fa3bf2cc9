package parser

import (
	"fmt"
	"io"

	"polarconv/internal/diag"
	"polarconv/internal/source"
)

// Options configures a single read.
type Options struct {
	Reporter diag.Reporter
	// Detector picks the native delimiter. Nil means DigitBoundary.
	Detector Detector
	// Echo receives every line read and the detected delimiter. Nil disables.
	Echo io.Writer
}

type reader struct {
	sf   *source.File
	opts Options
	rep  diag.PathReporter
}

func newReader(sf *source.File, opts Options) *reader {
	if opts.Detector == nil {
		opts.Detector = DigitBoundary{}
	}
	return &reader{
		sf:   sf,
		opts: opts,
		rep:  diag.PathReporter{Next: opts.Reporter, Path: sf.Path},
	}
}

func (r *reader) echoLine(line string) {
	if r.opts.Echo == nil {
		return
	}
	_, _ = fmt.Fprintln(r.opts.Echo, line)
}

func (r *reader) echoDelimiter(d byte) {
	if r.opts.Echo == nil {
		return
	}
	_, _ = fmt.Fprintf(r.opts.Echo, "Cut Char: '%c' 0x%x\n", d, d)
}

// fail reports code as an error diagnostic and returns the matching LineError.
func (r *reader) fail(code diag.Code, line uint32, err error, detail string) error {
	r.rep.Errorf(code, line, "%s: %s", err, detail)
	return &LineError{Path: r.sf.Path, Line: line, Err: err, Detail: detail}
}

func (r *reader) reportDropped(line uint32, dropped []string) {
	for _, f := range dropped {
		r.rep.Warnf(diag.WarnDroppedField, line, "field %q dropped: does not start with a digit", f)
	}
}
