// Package termination implements the Condition values that stop a Loop:
// FixedIterations, FixedEvaluations, StepsWithoutImprovement, TargetHit,
// DistanceToOptGreaterThan, and the generic LessThanN over any monotone
// counter (spec.md §6 "Termination surface").
//
// What:
//
//   - Each type is a component.Condition[E]; Evaluate returns true while
//     the run should continue, mirroring counter.Loop's "Condition true
//     -> run body" contract.
//   - LessThanN (and so FixedIterations/FixedEvaluations) and
//     StepsWithoutImprovement expose Progress(s) (float64, error) in
//     [0, 1]: current/Max and steps/N respectively, capped at 1.
//     TargetHit's Progress(p, s) reports 0 until the target is hit, then
//     1. DistanceToOptGreaterThan has no Progress method.
//
// Why:
//
//   - LessThanN[T] is the one generic condition: it reads any
//     state.Scalar[uint64] counter and compares against a fixed bound,
//     which is exactly what FixedIterations and FixedEvaluations turn
//     out to be once counter.Iterations/Evaluations satisfy that
//     constraint — so they are implemented as thin aliases over it.
package termination
