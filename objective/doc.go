// Package objective implements the two Objective variants an Individual
// can carry: Single, a totally ordered real, and Multi, a fixed-length
// vector compared by Pareto domination.
//
// What:
//
//   - Value: the shared interface both variants satisfy, so Individual
//     and the replacement/selection families can stay generic over which
//     kind of objective a Problem produces.
//   - Single: a finite-or-+Inf real. NaN and -Inf are rejected at
//     construction.
//   - Multi: a fixed-length vector of such reals, compared by Pareto
//     domination: Less means "dominates", Greater means "is dominated",
//     and incomparable vectors report ok=false.
//
// Why:
//
//   - Representing both kinds behind one interface (rather than making
//     every generic type in the module carry an extra Objective type
//     parameter) keeps Individual, Population, and the operator families
//     generic over only the solution encoding, matching how spec.md §9
//     recommends tagged-variant polymorphism over deeper genericity.
//
// Errors:
//
//	ErrIllegal - NaN or -Inf supplied to NewSingle/NewMulti.
package objective
