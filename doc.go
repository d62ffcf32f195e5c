// Package mahf is a modular metaheuristic optimization framework: a
// small core of composable building blocks — a typed state registry, a
// population stack, and a Component/Condition tree — that representative
// algorithmic families (genetic-algorithm-style selection/generation/
// recombination/replacement, particle swarm, chemical reaction
// optimization, and self-adaptive differential evolution) are built from.
//
// What:
//
//   - state/    — the heterogeneous, borrow-checked registry every
//     stateful operator reads and writes through.
//   - population/ — the LIFO stack of populations that carries dataflow
//     between operators within one iteration.
//   - component/  — the Component/Condition contract plus Block/Loop/
//     Branch/Scope, the combinators that assemble operators into a run.
//   - individual/, objective/, problem/ — the data model: a solution
//     paired with an optional objective, against an external Problem
//     contract the core never defines a concrete instance of.
//   - operators/  — selection, generation, recombination, replacement,
//     and the three algorithmic cores (pso, cro, de) built on top of
//     them.
//   - evaluator/, termination/, counter/, rng/, log/, lens/ — the
//     supporting cast: objective evaluation, stopping conditions,
//     monotone counters, the single registry-resident RNG, and the
//     logging/lens surface for observing a run.
//
// A concrete run wires these together by hand — there is no built-in
// "algorithm" type to instantiate, only the components spec.md's design
// calls a representative cross-section of algorithmic families.
package mahf
