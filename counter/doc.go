// Package counter implements the monotone uint64 counters threaded
// through the registry by Loop (Iterations) and the evaluator
// (Evaluations), plus the generic Progress ratio spec.md §3 describes as
// "derived from any monotone counter T".
//
// What:
//
//   - Iterations / Evaluations: the two canonical counters, each
//     satisfying state.Settable[uint64] so they work with
//     state.GetValue/SetValue directly.
//   - Progress: reads any state.Scalar[uint64] counter and a caller-given
//     maximum, returning a 0-1 ratio clamped to that range.
package counter
