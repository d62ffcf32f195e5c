// Package evaluator implements the pluggable component that walks the
// top population and computes the objective for every unevaluated
// individual (spec.md §4.5).
//
// What:
//
//   - Sequential: evaluates in population order.
//   - Parallel: fans out over a bounded worker pool using
//     golang.org/x/sync/errgroup; each worker writes back only the
//     objective of the individual it was handed, so results are
//     order-independent by construction.
//   - Both increment a shared *counter.Evaluations by the number of
//     individuals evaluated, once per Execute call.
//
// Why:
//
//   - Parallel uses a plain errgroup.Group bounded by SetLimit: Execute
//     returns the first error any worker's Problem.Evaluate reports. An
//     error cancels nothing: workers not yet started are still started,
//     and every started worker runs to completion.
//   - The registry itself is never touched from inside a worker
//     goroutine (spec.md §5: "the registry itself is not touched during
//     this phase") — workers only write through the *Individual pointer
//     they were handed.
//
// Errors:
//
//	Whatever the underlying Problem.Evaluate returns, plus state errors
//	from the Evaluations counter borrow.
package evaluator
