package pso

import (
	"sort"

	"github.com/mahf-opt/mahf/component"
	"github.com/mahf-opt/mahf/individual"
	"github.com/mahf-opt/mahf/objective"
	"github.com/mahf-opt/mahf/population"
	"github.com/mahf-opt/mahf/rng"
	"github.com/mahf-opt/mahf/state"
)

func requireSwarmInputs[E individual.Encoding[E]](r *component.Requirements, owner string) {
	component.Require[*population.Stack[E]](r, owner)
}

func requirePSOReplacementInputs[E RealEncoding[E]](r *component.Requirements, owner string) {
	component.Require[*population.Stack[E]](r, owner)
	component.Require[*rng.Random](r, owner)
	component.Require[*Velocities[E]](r, owner)
	component.Require[*BestParticles[E]](r, owner)
}

// currentPopulation peeks the top population without removing it.
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

// popCurrent pops the top population to mutate in place; the caller must
// push the (possibly mutated) population back.
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

// popOffspringAndParents pops the top two populations: offspring (pushed
// last) and the parents beneath it.
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

// restoreTwo pushes parents then offspring back onto the stack, undoing
// popOffspringAndParents after a validation failure.
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

func withRandom(s *state.State, fn func(*rng.Random)) error {
	g, err := state.BorrowMut[*rng.Random](s)
	if err != nil {
		return err
	}
	defer g.Release()
	fn(*g.Get())
	return nil
}

// outranks reports whether a outranks b under the given direction. An
// unevaluated a never outranks; an unevaluated b always loses to an
// evaluated a.
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

// sortedByFitness returns indices into pop ordered best-first under the
// given direction (stable: ties keep original relative order).
func sortedByFitness[E individual.Encoding[E]](pop population.Population[E], minimize bool) []int {
	order := make([]int, len(pop))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return outranks[E](pop[order[i]], pop[order[j]], minimize)
	})
	return order
}

// sampleVelocity draws a velocity vector of dimension d uniformly from
// [-vmax, vmax]^d.
func sampleVelocity(r *rng.Random, d int, vmax float64) []float64 {
	v := make([]float64, d)
	for j := range v {
		v[j] = (r.Float64()*2 - 1) * vmax
	}
	return v
}

// clampVelocity clips every coordinate of v to [-vmax, vmax] in place.
func clampVelocity(v []float64, vmax float64) {
	for j := range v {
		if v[j] > vmax {
			v[j] = vmax
		} else if v[j] < -vmax {
			v[j] = -vmax
		}
	}
}
