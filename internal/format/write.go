package format

import (
	"bytes"
	"io"
	"strconv"

	"polarconv/internal/polar"
)

// Writer accumulates native output.
type Writer struct {
	opt Options
	buf []byte
}

// NewWriter creates a writer for one table.
func NewWriter(opt Options) *Writer {
	return &Writer{opt: opt, buf: make([]byte, 0, 4096)}
}

// Bytes returns the accumulated output.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// Table appends the full serialization of t.
func (w *Writer) Table(t *polar.Table) {
	w.line(polar.CanonicalHeader)
	for _, c := range t.Comments() {
		w.line(c)
	}
	tws := t.TWS()
	for i := range tws {
		start := len(w.buf)
		w.Row(tws[i], t.Curve(i))
		if w.opt.Echo != nil {
			_, _ = w.opt.Echo.Write(w.buf[start:])
		}
	}
}

// Row appends one TWS line.
func (w *Writer) Row(tws float64, c polar.Curve) {
	w.number(tws)
	for _, p := range c {
		w.buf = append(w.buf, '\t')
		w.number(p.TWA)
		w.buf = append(w.buf, '\t')
		w.number(p.Value)
	}
	w.buf = append(w.buf, '\n')
}

func (w *Writer) line(s string) {
	w.buf = append(w.buf, s...)
	w.buf = append(w.buf, '\n')
}

func (w *Writer) number(v float64) {
	w.buf = FormatNumber(w.buf, v, w.opt.precision())
}

// FormatNumber appends v in 'g' notation with prec significant digits
// (-1 for shortest) and no trailing zeros.
func FormatNumber(dst []byte, v float64, prec int) []byte {
	start := len(dst)
	dst = strconv.AppendFloat(dst, v, 'g', prec, 64)
	if prec < 0 {
		return dst
	}
	// Match printf %g: no trailing zeros in the mantissa.
	num := dst[start:]
	mant, exp := num, []byte(nil)
	if i := bytes.IndexByte(num, 'e'); i >= 0 {
		mant, exp = num[:i], append([]byte(nil), num[i:]...)
	}
	if bytes.IndexByte(mant, '.') >= 0 {
		mant = bytes.TrimRight(mant, "0")
		mant = bytes.TrimSuffix(mant, []byte("."))
	}
	dst = append(dst[:start], mant...)
	return append(dst, exp...)
}

// Native renders t into a fresh byte slice.
func Native(t *polar.Table, opt Options) []byte {
	w := NewWriter(opt)
	w.Table(t)
	return w.Bytes()
}

// WriteNative serializes t to out.
func WriteNative(out io.Writer, t *polar.Table, opt Options) error {
	_, err := out.Write(Native(t, opt))
	return err
}
