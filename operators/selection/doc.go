// Package selection implements the selection operator family spec.md
// §4.4 names: components that pop the current population and push a
// selection (a sub-multiset, duplicates allowed) on top of it, leaving
// the stack one deeper (spec.md §4.3).
//
// What:
//
//	All, None, CloneSingle, FullyRandom, RandomWithoutRepetition,
//	RouletteWheel, StochasticUniversalSampling, Tournament, LinearRank,
//	ExponentialRank.
//
// Why:
//
//   - Every selector draws exclusively from the registry's *rng.Random
//     (spec.md §5: "never a process-global RNG"), and every selector
//     that can fail on malformed input (Tournament on an empty
//     population, a fitness-weighted selector against an unevaluated
//     population) returns population.ErrStackLayout rather than
//     panicking, matching the teacher's builder-validation convention.
package selection
