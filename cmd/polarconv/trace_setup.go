package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"polarconv/internal/trace"
)

// setupTracing inspects trace-related flags and attaches a tracer to the
// command context. The returned cleanup takes the run error: at level
// "error" events are buffered and only dumped when the run failed.
func setupTracing(cmd *cobra.Command) (func(runErr error), error) {
	root := cmd.Root()

	traceOutput, err := root.PersistentFlags().GetString("trace")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace flag: %w", err)
	}
	levelStr, err := root.PersistentFlags().GetString("trace-level")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace-level flag: %w", err)
	}
	level, err := trace.ParseLevel(levelStr)
	if err != nil {
		return nil, err
	}
	// --trace without a level means phase tracing.
	if level == trace.LevelOff && traceOutput != "" && !root.PersistentFlags().Changed("trace-level") {
		level = trace.LevelPhase
	}
	if level == trace.LevelOff {
		cmd.SetContext(trace.WithTracer(cmd.Context(), trace.Nop))
		return func(error) {}, nil
	}

	cfg := trace.Config{
		Level:      level,
		Mode:       trace.ModeStream,
		OutputPath: traceOutput,
	}
	if level == trace.LevelError {
		cfg.Mode = trace.ModeRing
	}

	tracer, err := trace.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create tracer: %w", err)
	}
	cmd.SetContext(trace.WithTracer(cmd.Context(), tracer))

	cleanup := func(runErr error) {
		if dumper, ok := tracer.(trace.Dumper); ok && runErr != nil {
			if err := dumpRing(dumper, cfg); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "trace: dump error: %v\n", err)
			}
		}
		if err := tracer.Close(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "trace: close error: %v\n", err)
		}
	}
	return cleanup, nil
}

func dumpRing(d trace.Dumper, cfg trace.Config) error {
	w, err := trace.OpenOutput(cfg)
	if err != nil {
		return err
	}
	if f, ok := w.(*os.File); ok {
		defer f.Close()
	}
	return d.Dump(w, cfg.ResolveFormat())
}
