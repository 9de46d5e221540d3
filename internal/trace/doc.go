// Package trace provides the event tracing used across loglens.
//
// A tracer records span and point events for CLI runs, per-file scans and
// individual annotations. It is carried through a context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	t := trace.FromContext(ctx)
//
//	span := trace.Begin(t, trace.ScopeFile, "scan:Main.java", 0)
//	defer span.End("")
//
// # Levels
//
//   - LevelOff: nothing is recorded
//   - LevelError: only error points (failed browser launches, parse errors)
//   - LevelPhase: driver operations
//   - LevelDetail: per-file scans
//   - LevelDebug: everything, including each emitted annotation
//
// # Storage
//
// StreamTracer writes each event immediately, RingTracer keeps the last N
// events for a dump when a command fails, and MultiTracer fans out to both.
package trace
