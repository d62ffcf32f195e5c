// Package individual implements Individual, the pair of (solution,
// optional objective) that flows through every population in a run.
//
// What:
//
//   - Individual[E]: generic over the solution encoding E. The objective
//     field is an objective.Value interface, nil exactly when the
//     individual is unevaluated — Go's nil interface models spec.md's
//     Option<Objective> directly, with no extra wrapper type needed.
//   - Encoding[E]: the self-referencing Clone constraint an encoding must
//     satisfy so Individual.Clone can deep-copy the solution.
//
// Why:
//
//   - Mutating the solution through MutateSolution (rather than handing
//     out a bare pointer) lets the invariant "mutating the solution resets
//     the objective" live in one place instead of at every call site that
//     touches a solution.
package individual
