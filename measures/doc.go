// Package measures implements the three families of algorithm-observing
// state spec.md §3 names alongside diversity/step-size/convergence-rate
// registry state, and §4.6 lists among the standard lens projections:
// population diversity, step size between two population snapshots, and
// convergence rate of the best objective across iterations.
//
// Each family follows the same shape: an interface the concrete measure
// implements (DiversityMeasure, StepSizeMeasure, ConvergenceRateMeasure),
// a generic state type parameterized by the owning component's own Go
// type so two different measure components never collide in the
// registry (the same namespacing spec.md §3 asks of MutationRate<T>/
// MutationStrength<T>), and a shared Execute body every concrete measure
// component calls into.
//
// What:
//
//   - Diversity[M]: DimensionWiseDiversity, PairwiseDistanceDiversity,
//     TrueDiversity, DistanceToAveragePointDiversity,
//     MinimumIndividualDistance, RadiusDiversity.
//   - StepSize[M]: EuclideanStepSize, PositionalStepSize,
//     DimensionalStepSize, read against archive.IntermediateArchive.
//   - ConvergenceRate[M]: KnownOptimumIterationWiseConvergence,
//     KnownOptimumConvergenceProgressiveRate,
//     UnknownOptimumConvergenceProgressiveRate,
//     KnownOptimumLogarithmicConvergenceRate, read against
//     archive.BestIndividualsArchive.
package measures
