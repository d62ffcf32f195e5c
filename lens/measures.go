package lens

import (
	"github.com/mahf-opt/mahf/individual"
	"github.com/mahf-opt/mahf/measures"
)

// Diversity is the "diversity" lens spec.md §4.6 names: the normalized
// diversity value of the population as measured by the owning component
// M (e.g. measures.DimensionWiseDiversity[E]).
func Diversity[E individual.Encoding[E], M any]() Lens[E, float64] {
	return Shared[E, measures.Diversity[M], float64]("diversity", func(d measures.Diversity[M]) float64 {
		return d.Value()
	})
}

// StepSize is the "step size" lens: the mean of the per-entry step sizes
// between the previous and current population snapshot, as measured by
// the owning component M (e.g. measures.EuclideanStepSize[E]).
func StepSize[E individual.Encoding[E], M any]() Lens[E, float64] {
	return Shared[E, measures.StepSize[M], float64]("step-size", func(s measures.StepSize[M]) float64 {
		return s.Mean()
	})
}

// ConvergenceRate is the "convergence rate" lens: the most recently
// measured convergence rate of the best objective across iterations, as
// measured by the owning component M (e.g.
// measures.KnownOptimumConvergenceProgressiveRate[E]).
func ConvergenceRate[E individual.Encoding[E], M any]() Lens[E, float64] {
	return Shared[E, measures.ConvergenceRate[M], float64]("convergence-rate", func(c measures.ConvergenceRate[M]) float64 {
		return c.Value()
	})
}
