// Package trace records what a conversion run did and how long each step
// took.
//
// Enable it from the command line:
//
//	polarconv clean --trace=- --trace-level=phase in.pol out.pol
//
// Tracers:
//
//   - Nop: zero overhead when tracing is off
//   - StreamTracer: writes every event immediately (text or NDJSON)
//   - RingTracer: keeps the last N events for a dump after a failure
//   - MultiTracer: fans out to several tracers
//
// Levels select scopes: phase shows driver and phase spans (read, normalize,
// write), detail adds per-curve events, debug shows everything. At level
// error events go to a ring buffer and are only written when the run fails.
//
// Tracers travel through the pipeline in the context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopePhase, "read", parent)
//	defer span.End("")
package trace
