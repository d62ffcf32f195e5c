package de

import (
	"math"

	"github.com/mahf-opt/mahf/component"
	"github.com/mahf-opt/mahf/individual"
	"github.com/mahf-opt/mahf/objective"
	"github.com/mahf-opt/mahf/population"
	"github.com/mahf-opt/mahf/rng"
	"github.com/mahf-opt/mahf/state"
)

func requireSwarmInputs[E individual.Encoding[E]](r *component.Requirements, owner string) {
	component.Require[*population.Stack[E]](r, owner)
	component.Require[*rng.Random](r, owner)
}

func requireHistoryInputs[E individual.Encoding[E]](r *component.Requirements, owner string) {
	requireSwarmInputs[E](r, owner)
	component.Require[*SHADEHistoryF](r, owner)
	component.Require[*SHADEHistoryCR](r, owner)
}

// currentPopulation peeks the top population without altering the stack,
// the shape SampleParameters needs since it only derives side-state.
func currentPopulation[E individual.Encoding[E]](s *state.State, owner string) (population.Population[E], error) {
	g, err := state.Borrow[*population.Stack[E]](s)
	if err != nil {
		return nil, err
	}
	defer g.Release()
	pop, err := (*g.Get()).Current()
	if err != nil {
		return nil, layoutf(owner, "%v", err)
	}
	return pop, nil
}

func popOffspringInput[E individual.Encoding[E]](s *state.State, owner string) (population.Population[E], error) {
	g, err := state.BorrowMut[*population.Stack[E]](s)
	if err != nil {
		return nil, err
	}
	defer g.Release()
	pop, err := (*g.Get()).Pop()
	if err != nil {
		return nil, layoutf(owner, "%v", err)
	}
	return pop, nil
}

func pushOffspring[E individual.Encoding[E]](s *state.State, pop population.Population[E]) error {
	g, err := state.BorrowMut[*population.Stack[E]](s)
	if err != nil {
		return err
	}
	defer g.Release()
	(*g.Get()).Push(pop)
	return nil
}

// popDonorAndBase pops the top two populations: the donor (pushed last)
// and the base/target population beneath it. Mirrors
// recombination.popDonorAndBase exactly, duplicated here because that
// helper is unexported.
func popDonorAndBase[E individual.Encoding[E]](s *state.State, owner string) (donor, base population.Population[E], err error) {
	g, err := state.BorrowMut[*population.Stack[E]](s)
	if err != nil {
		return nil, nil, err
	}
	defer g.Release()
	pops, err := (*g.Get()).PopN(owner, 2)
	if err != nil {
		return nil, nil, err
	}
	donor, base = pops[0], pops[1]
	if len(donor) != len(base) {
		(*g.Get()).Push(base)
		(*g.Get()).Push(donor)
		return nil, nil, layoutf(owner, "donor has %d individuals, base has %d", len(donor), len(base))
	}
	return donor, base, nil
}

func popOffspringAndParents[E individual.Encoding[E]](s *state.State, owner string) (offspring, parents population.Population[E], err error) {
	g, err := state.BorrowMut[*population.Stack[E]](s)
	if err != nil {
		return nil, nil, err
	}
	defer g.Release()
	pops, err := (*g.Get()).PopN(owner, 2)
	if err != nil {
		return nil, nil, err
	}
	return pops[0], pops[1], nil
}

func restoreTwo[E individual.Encoding[E]](s *state.State, offspring, parents population.Population[E]) error {
	g, err := state.BorrowMut[*population.Stack[E]](s)
	if err != nil {
		return err
	}
	defer g.Release()
	(*g.Get()).Push(parents)
	(*g.Get()).Push(offspring)
	return nil
}

func pushSurvivors[E individual.Encoding[E]](s *state.State, survivors population.Population[E]) error {
	g, err := state.BorrowMut[*population.Stack[E]](s)
	if err != nil {
		return err
	}
	defer g.Release()
	(*g.Get()).Push(survivors)
	return nil
}

func withRandom(s *state.State, fn func(*rng.Random) error) error {
	g, err := state.BorrowMut[*rng.Random](s)
	if err != nil {
		return err
	}
	defer g.Release()
	return fn(*g.Get())
}

// scalarOf extracts the raw scalar f(x); SHADE's improvement bookkeeping
// only makes sense against a Single objective.
func scalarOf(v objective.Value) (float64, error) {
	single, ok := v.(objective.Single)
	if !ok {
		return 0, parameterf("objective must be Single for SHADE, got %T", v)
	}
	return single.Value(), nil
}

// outranks reports whether a has the strictly better objective than b
// under the given direction.
func outranks[E individual.Encoding[E]](a, b individual.Individual[E], minimize bool) bool {
	oa, aok := a.Objective()
	ob, bok := b.Objective()
	if !aok {
		return false
	}
	if !bok {
		return true
	}
	ord, ok := oa.Compare(ob)
	if !ok {
		return false
	}
	if minimize {
		return ord == objective.Less
	}
	return ord == objective.Greater
}

// sampleCauchy draws from Cauchy(mu, gamma) via inverse-CDF, re-drawing
// until the result is positive, then clips results above 1 down to 1 —
// the resample-then-clip rule SHADE's F distribution uses.
func sampleCauchy(r *rng.Random, mu, gamma float64) float64 {
	for {
		u := r.Float64()
		x := mu + gamma*math.Tan(math.Pi*(u-0.5))
		if x > 0 {
			if x > 1 {
				return 1
			}
			return x
		}
	}
}

// sampleNormalClipped draws from Normal(mu, sigma) and clips the result
// into [0, 1].
func sampleNormalClipped(r *rng.Random, mu, sigma float64) float64 {
	x := mu + r.NormFloat64()*sigma
	switch {
	case x < 0:
		return 0
	case x > 1:
		return 1
	default:
		return x
	}
}
