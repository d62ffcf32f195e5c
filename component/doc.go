// Package component implements the Component/Condition contract and the
// control-flow combinators (Block, Loop, Branch, Scope) that compose
// heuristics into a tree (spec.md §4.2).
//
// What:
//
//   - Component[E] / Condition[E]: the two-phase (Init, then Require for
//     preflight) plus one-phase-per-tick (Execute / Evaluate) contract
//     every leaf and composite implements.
//   - Base[E]: an embeddable no-op Init/Require so leaves that own no
//     state and read nothing only need to write Execute.
//   - Block, Loop, Branch, Scope: the four composites spec.md §4.2 names.
//   - Requirements / Preflight: the aggregated-validation machinery that
//     walks the tree once before any Execute call.
//
// Why:
//
//   - Go cannot express "same shape, two method names" once for both
//     Component and Condition without code generation, so the two
//     interfaces are declared independently but documented as
//     deliberately parallel (spec.md §4.2: "same shape as Component
//     except evaluate").
//
// Errors:
//
//	ErrParameter    - a constructor ("New...") received an out-of-range value.
//	ErrRequirement  - preflight found one or more unsatisfied Require calls.
package component
