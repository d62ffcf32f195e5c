package measures

import (
	"math"

	"github.com/mahf-opt/mahf/archive"
	"github.com/mahf-opt/mahf/component"
	"github.com/mahf-opt/mahf/individual"
	"github.com/mahf-opt/mahf/objective"
	"github.com/mahf-opt/mahf/problem"
	"github.com/mahf-opt/mahf/state"
)

// ConvergenceRateMeasure is implemented by a component that reduces the
// previous and current best objective value to a single convergence
// rate scalar.
type ConvergenceRateMeasure[E individual.Encoding[E]] interface {
	Measure(p problem.Interface[E], previous, current float64) float64
}

// ConvergenceRate is the convergence rate of the best objective across
// iterations as measured by the owning component M.
type ConvergenceRate[M any] struct {
	value float64
}

// Value returns the most recently measured convergence rate.
func (c ConvergenceRate[M]) Value() float64 { return c.value }

func (c *ConvergenceRate[M]) update(v float64) { c.value = v }

// measureConvergenceRate is the shared Execute body every
// ConvergenceRateMeasure component calls into: read the last two
// entries of archive.BestIndividualsArchive[E] and fold their measured
// convergence rate into ConvergenceRate[M].
func measureConvergenceRate[E individual.Encoding[E], M any](cm ConvergenceRateMeasure[E], p problem.Interface[E], s *state.State) error {
	g, err := state.BorrowMut[archive.BestIndividualsArchive[E]](s)
	if err != nil {
		return err
	}
	individuals := g.Get().Individuals()
	g.Release()

	rate := 0.0
	if n := len(individuals); n > 1 {
		prev, curOK := singleValue(individuals[n-2])
		cur, prevOK := singleValue(individuals[n-1])
		if curOK && prevOK {
			rate = cm.Measure(p, prev, cur)
		}
	}

	e := state.EntryOf[ConvergenceRate[M]](s)
	e.OrInsert(ConvergenceRate[M]{})
	e.AndModify(func(c *ConvergenceRate[M]) { c.update(rate) })
	return nil
}

func singleValue[E individual.Encoding[E]](ind individual.Individual[E]) (float64, bool) {
	obj, ok := ind.Objective()
	if !ok {
		return 0, false
	}
	single, ok := obj.(objective.Single)
	if !ok {
		return 0, false
	}
	return single.Value(), true
}

func requireConvergenceInputs[E individual.Encoding[E]](r *component.Requirements, owner string) {
	component.Require[archive.BestIndividualsArchive[E]](r, owner)
}

// KnownOptimumIterationWiseConvergence measures the ratio of distances
// to a known optimum between the current and previous best objective.
type KnownOptimumIterationWiseConvergence[E individual.Encoding[E]] struct {
	component.Base[E]
}

func NewKnownOptimumIterationWiseConvergence[E individual.Encoding[E]]() *KnownOptimumIterationWiseConvergence[E] {
	return &KnownOptimumIterationWiseConvergence[E]{}
}

func (*KnownOptimumIterationWiseConvergence[E]) Require(_ problem.Interface[E], r *component.Requirements) {
	requireConvergenceInputs[E](r, "measures.KnownOptimumIterationWiseConvergence")
}

func (c *KnownOptimumIterationWiseConvergence[E]) Measure(p problem.Interface[E], previous, current float64) float64 {
	optimum, ok := knownOptimum(p)
	if !ok {
		return 0
	}
	denom := math.Abs(optimum - previous)
	if denom == 0 {
		return 0
	}
	return math.Abs(optimum-current) / denom
}

func (c *KnownOptimumIterationWiseConvergence[E]) Execute(p problem.Interface[E], s *state.State) error {
	return measureConvergenceRate[E, *KnownOptimumIterationWiseConvergence[E]](c, p, s)
}

// KnownOptimumConvergenceProgressiveRate measures the absolute distance
// of the current best objective to a known optimum.
type KnownOptimumConvergenceProgressiveRate[E individual.Encoding[E]] struct {
	component.Base[E]
}

func NewKnownOptimumConvergenceProgressiveRate[E individual.Encoding[E]]() *KnownOptimumConvergenceProgressiveRate[E] {
	return &KnownOptimumConvergenceProgressiveRate[E]{}
}

func (*KnownOptimumConvergenceProgressiveRate[E]) Require(_ problem.Interface[E], r *component.Requirements) {
	requireConvergenceInputs[E](r, "measures.KnownOptimumConvergenceProgressiveRate")
}

func (c *KnownOptimumConvergenceProgressiveRate[E]) Measure(p problem.Interface[E], _, current float64) float64 {
	optimum, ok := knownOptimum(p)
	if !ok {
		return 0
	}
	return math.Abs(optimum - current)
}

func (c *KnownOptimumConvergenceProgressiveRate[E]) Execute(p problem.Interface[E], s *state.State) error {
	return measureConvergenceRate[E, *KnownOptimumConvergenceProgressiveRate[E]](c, p, s)
}

// UnknownOptimumConvergenceProgressiveRate measures the absolute change
// of the best objective between the current and previous iteration,
// usable without a known optimum.
type UnknownOptimumConvergenceProgressiveRate[E individual.Encoding[E]] struct {
	component.Base[E]
}

func NewUnknownOptimumConvergenceProgressiveRate[E individual.Encoding[E]]() *UnknownOptimumConvergenceProgressiveRate[E] {
	return &UnknownOptimumConvergenceProgressiveRate[E]{}
}

func (*UnknownOptimumConvergenceProgressiveRate[E]) Require(_ problem.Interface[E], r *component.Requirements) {
	requireConvergenceInputs[E](r, "measures.UnknownOptimumConvergenceProgressiveRate")
}

func (c *UnknownOptimumConvergenceProgressiveRate[E]) Measure(_ problem.Interface[E], previous, current float64) float64 {
	return math.Abs(current - previous)
}

func (c *UnknownOptimumConvergenceProgressiveRate[E]) Execute(p problem.Interface[E], s *state.State) error {
	return measureConvergenceRate[E, *UnknownOptimumConvergenceProgressiveRate[E]](c, p, s)
}

// KnownOptimumLogarithmicConvergenceRate measures the base-10 logarithm
// of the current best objective's distance to a known optimum.
type KnownOptimumLogarithmicConvergenceRate[E individual.Encoding[E]] struct {
	component.Base[E]
}

func NewKnownOptimumLogarithmicConvergenceRate[E individual.Encoding[E]]() *KnownOptimumLogarithmicConvergenceRate[E] {
	return &KnownOptimumLogarithmicConvergenceRate[E]{}
}

func (*KnownOptimumLogarithmicConvergenceRate[E]) Require(_ problem.Interface[E], r *component.Requirements) {
	requireConvergenceInputs[E](r, "measures.KnownOptimumLogarithmicConvergenceRate")
}

func (c *KnownOptimumLogarithmicConvergenceRate[E]) Measure(p problem.Interface[E], _, current float64) float64 {
	optimum, ok := knownOptimum(p)
	if !ok {
		return 0
	}
	return math.Log10(math.Abs(optimum - current))
}

func (c *KnownOptimumLogarithmicConvergenceRate[E]) Execute(p problem.Interface[E], s *state.State) error {
	return measureConvergenceRate[E, *KnownOptimumLogarithmicConvergenceRate[E]](c, p, s)
}

func knownOptimum[E individual.Encoding[E]](p problem.Interface[E]) (float64, bool) {
	known, ok := p.(problem.KnownOptimum)
	if !ok {
		return 0, false
	}
	obj, ok := known.KnownOptimum()
	if !ok {
		return 0, false
	}
	single, ok := obj.(objective.Single)
	if !ok {
		return 0, false
	}
	return single.Value(), true
}
