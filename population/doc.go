// Package population implements the LIFO stack of populations that
// carries dataflow between selection, generation, recombination,
// evaluation, and replacement components (spec.md §3, §4.3).
//
// What:
//
//   - Population[E]: an ordered slice of individual.Individual[E].
//   - Stack[E]: the LIFO; operators push/pop whole populations. The
//     "current" population is the top of the stack.
//
// Why:
//
//   - Modeling the stack as an explicit type (rather than a bare
//     []Population passed around by convention) lets every operator
//     family validate the exact shape it requires — "one population",
//     "population + selection", "population + reactant + product" — and
//     fail with ErrStackLayout instead of panicking on an index that
//     should not be out of range (spec.md §4.3's violation policy).
//
// Errors:
//
//	ErrEmpty       - an operation needs at least one population and found none.
//	ErrStackLayout - an operator's expected stack shape was absent.
package population
