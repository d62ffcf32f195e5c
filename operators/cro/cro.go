package cro

import (
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

func requireReactionInputs[E individual.Encoding[E]](r *component.Requirements, owner string) {
	requireSwarmInputs[E](r, owner)
	component.Require[*Molecules[E]](r, owner)
	component.Require[*EnergyBuffer](r, owner)
}

func popCurrent[E individual.Encoding[E]](s *state.State, owner string) (population.Population[E], error) {
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

func pushCurrent[E individual.Encoding[E]](s *state.State, pop population.Population[E]) error {
	g, err := state.BorrowMut[*population.Stack[E]](s)
	if err != nil {
		return err
	}
	defer g.Release()
	(*g.Get()).Push(pop)
	return nil
}

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

// energyOf extracts the raw scalar f(x); CRO's energy formulas only make
// sense against a Single objective.
func energyOf(v objective.Value) (float64, error) {
	single, ok := v.(objective.Single)
	if !ok {
		return 0, parameterf("objective must be Single for CRO, got %T", v)
	}
	return single.Value(), nil
}

// perturb returns a copy of x with independent N(0, sigma) noise added
// to every coordinate, the built-in product-generation step every
// reaction uses.
func perturb(r *rng.Random, x []float64, sigma float64) []float64 {
	out := make([]float64, len(x))
	for j := range x {
		out[j] = x[j] + r.NormFloat64()*sigma
	}
	return out
}

// blend returns the alpha-weighted combination of a and b.
func blend(a, b []float64, alpha float64) []float64 {
	out := make([]float64, len(a))
	for j := range out {
		out[j] = alpha*a[j] + (1-alpha)*b[j]
	}
	return out
}

// withRandom borrows the shared RNG for the duration of fn, whose error
// (if any) propagates out as the borrow's result.
func withRandom(s *state.State, fn func(*rng.Random) error) error {
	g, err := state.BorrowMut[*rng.Random](s)
	if err != nil {
		return err
	}
	defer g.Release()
	return fn(*g.Get())
}

func distinctPair(r *rng.Random, n int) (int, int) {
	i := r.Intn(n)
	j := r.Intn(n - 1)
	if j >= i {
		j++
	}
	return i, j
}
