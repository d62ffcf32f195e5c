// Package recombination implements the recombination/crossover operator
// family spec.md §4.4 names. The pairwise crossovers pop one parent
// population and push offspring whose cardinality depends on keep_both
// (keeping both children doubles the output relative to keeping only
// the first), leaving stack depth unchanged (spec.md §4.3). The DE-style
// crossovers pop two populations (donor and base) and push one
// population of trial vectors of the same cardinality, so stack depth
// decreases by one.
//
// What:
//
//	NPointCrossover, UniformCrossover, ArithmeticCrossover,
//	CycleCrossover, DEBinomialCrossover, DEExponentialCrossover.
//
// Why:
//
//   - The pairwise crossovers (NPoint, Uniform, Cycle) are generic over
//     any slice-backed encoding via the same ~[]T structural constraint
//     generation uses, so one body serves real vectors, bit strings, and
//     permutations.
//   - The two DE crossovers consume the top *two* populations on the
//     stack rather than one — the donor (pushed last, by DEMutation) and
//     the base/target population it was derived from — and always keep
//     at least one coordinate from the base, so a trial vector can never
//     come out identical to the donor.
package recombination
