package driver

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"polarconv/internal/diag"
	"polarconv/internal/format"
	"polarconv/internal/normalize"
	"polarconv/internal/observ"
	"polarconv/internal/polar"
	"polarconv/internal/resolve"
	"polarconv/internal/source"
	"polarconv/internal/trace"
)

// Result is everything a run produced. It is returned alongside errors so
// the caller can still print diagnostics and timings.
type Result struct {
	RunID     string
	File      *source.File
	Table     *polar.Table
	Bag       *diag.Bag
	Report    normalize.Report
	Timer     *observ.Timer
	CacheHits int
}

// Run reads req.Input, normalizes every curve and writes req.Output in the
// native layout. Output is written to a temporary file next to the target
// and renamed into place only after every step succeeded.
func Run(ctx context.Context, req Request) (*Result, error) {
	if req.Resolver == nil {
		return nil, errors.New("driver: no resolver configured")
	}
	res := &Result{
		RunID: uuid.NewString(),
		Timer: observ.NewTimer(),
	}
	ctx, root := trace.Start(ctx, trace.ScopeDriver, req.Command.String())
	root.WithExtra("run_id", res.RunID).WithExtra("input", req.Input).WithExtra("output", req.Output)

	err := run(ctx, req, res)
	if err != nil {
		root.End(err.Error())
		return res, err
	}
	root.End(fmt.Sprintf("%d curve(s)", res.Table.Len()))
	return res, nil
}

func run(ctx context.Context, req Request, res *Result) error {
	var rr *ReadResult
	err := res.Timer.Measure(observ.PhaseRead, func() (string, error) {
		var err error
		rr, err = Read(ctx, ReadRequest{
			Path:           req.Input,
			Layout:         req.Command.Layout(),
			Encoding:       req.Encoding,
			Detector:       req.Detector,
			Echo:           req.Echo,
			MaxDiagnostics: req.MaxDiagnostics,
		})
		if rr != nil {
			res.File, res.Table, res.Bag = rr.File, rr.Table, rr.Bag
		}
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%d curve(s)", rr.Table.Len()), nil
	})
	if err != nil {
		return err
	}

	var remember *resolve.Remembering
	resolver := req.Resolver
	if req.Cache != nil {
		remember = &resolve.Remembering{
			Next:  resolver,
			Cache: req.Cache,
			Key:   res.File.Hash,
			Input: req.Input,
		}
		resolver = remember
	}

	err = res.Timer.Measure(observ.PhaseNormalize, func() (string, error) {
		nctx, span := trace.Start(ctx, trace.ScopePhase, "normalize")
		n := &normalize.Normalizer{
			Resolver: tracingResolver{next: resolver, tracer: trace.FromContext(nctx), parent: span.ID()},
			Reporter: diag.BagReporter{Bag: res.Bag},
			Path:     req.Input,
			Echo:     req.Echo,
		}
		rep, err := n.Normalize(nctx, res.Table)
		res.Report = rep
		note := fmt.Sprintf("%d identical, %d conflict(s)", rep.Identical, rep.Conflicts())
		if err != nil {
			span.End(err.Error())
			return note, err
		}
		span.End(note)
		return note, nil
	})
	if remember != nil {
		res.CacheHits = remember.Hits()
	}
	if err != nil {
		return err
	}

	err = res.Timer.Measure(observ.PhaseWrite, func() (string, error) {
		_, span := trace.Start(ctx, trace.ScopePhase, "write")
		data := format.Native(res.Table, format.Options{Precision: req.Precision, Echo: req.Echo})
		if err := WriteFileAtomic(req.Output, data); err != nil {
			span.End("failed")
			return "", err
		}
		note := fmt.Sprintf("%d byte(s)", len(data))
		span.End(note)
		return note, nil
	})
	if err != nil {
		return err
	}

	if remember != nil {
		// A cache failure must not turn a finished conversion into an error.
		if err := remember.Save(); err != nil {
			res.Bag.Add(diag.Diagnostic{
				Severity: diag.SevWarning,
				Code:     diag.WarnCacheWrite,
				Path:     req.Cache.Dir(),
				Message:  fmt.Sprintf("decisions not saved: %v", err),
			})
		}
	}
	return nil
}

// WriteFileAtomic replaces path with data via a temporary file in the same
// directory.
func WriteFileAtomic(path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(f.Name())
		}
	}()

	if _, err = f.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err = f.Chmod(0o644); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err = os.Rename(f.Name(), path); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// tracingResolver emits one curve-scope event per conflict.
type tracingResolver struct {
	next   resolve.Resolver
	tracer trace.Tracer
	parent uint64
}

func (r tracingResolver) Resolve(ctx context.Context, c resolve.Conflict) (resolve.Choice, error) {
	choice, err := r.next.Resolve(ctx, c)
	detail := fmt.Sprintf("%s | %s", c.A, c.B)
	if err != nil {
		detail += ": " + err.Error()
	} else {
		detail += ": kept " + choice.String()
	}
	trace.Point(r.tracer, trace.ScopeCurve, fmt.Sprintf("conflict:tws=%g", c.TWS), detail, r.parent)
	return choice, err
}
