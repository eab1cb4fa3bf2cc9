package driver

import (
	"context"
	"fmt"

	"polarconv/internal/diag"
	"polarconv/internal/parser"
	"polarconv/internal/polar"
	"polarconv/internal/source"
	"polarconv/internal/trace"
)

// ReadResult is a parsed table together with what the reader reported.
type ReadResult struct {
	File  *source.File
	Table *polar.Table
	Bag   *diag.Bag
}

// Read loads and parses one input file. The returned result is non-nil
// whenever a Bag exists, so callers can print diagnostics on failure.
func Read(ctx context.Context, req ReadRequest) (*ReadResult, error) {
	ctx, span := trace.Start(ctx, trace.ScopePhase, "read")
	res := &ReadResult{Bag: diag.NewBag(req.MaxDiagnostics)}

	sf, err := source.Load(req.Path, req.Encoding)
	if err != nil {
		span.End("load failed")
		return res, fmt.Errorf("failed to read input: %w", err)
	}
	res.File = sf
	span.WithExtra("lines", fmt.Sprint(len(sf.Lines))).WithExtra("encoding", string(sf.Encoding))

	if err := ctx.Err(); err != nil {
		span.End("canceled")
		return res, err
	}

	opts := parser.Options{
		Reporter: diag.BagReporter{Bag: res.Bag},
		Detector: req.Detector,
		Echo:     req.Echo,
	}
	switch req.Layout {
	case LayoutGeneric:
		res.Table, err = parser.ParseGeneric(sf, opts)
	case LayoutNative:
		res.Table, err = parser.ParseNative(sf, opts)
	default:
		err = fmt.Errorf("unsupported input layout %v", req.Layout)
	}
	if err != nil {
		span.End("parse failed")
		return res, err
	}
	span.End(fmt.Sprintf("%d curve(s)", res.Table.Len()))
	return res, nil
}
