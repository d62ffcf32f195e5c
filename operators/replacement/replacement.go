package replacement

import (
	"sort"

	"github.com/mahf-opt/mahf/component"
	"github.com/mahf-opt/mahf/individual"
	"github.com/mahf-opt/mahf/objective"
	"github.com/mahf-opt/mahf/population"
	"github.com/mahf-opt/mahf/rng"
	"github.com/mahf-opt/mahf/state"
)

func requireReplacementInputs[E individual.Encoding[E]](r *component.Requirements, owner string) {
	component.Require[*population.Stack[E]](r, owner)
}

// popOffspringAndParents pops the top two populations: offspring (pushed
// last by generation/recombination) and the parents beneath it.
func popOffspringAndParents[E individual.Encoding[E]](s *state.State, owner string) (offspring, parents population.Population[E], err error) {
	g, err := state.BorrowMut[*population.Stack[E]](s)
	if err != nil {
		return nil, nil, err
	}
	defer g.Release()
	stack := g.Get()
	pops, err := (*stack).PopN(owner, 2)
	if err != nil {
		return nil, nil, err
	}
	return pops[0], pops[1], nil
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

func withRandom[E individual.Encoding[E]](s *state.State, fn func(*rng.Random)) error {
	g, err := state.BorrowMut[*rng.Random](s)
	if err != nil {
		return err
	}
	defer g.Release()
	fn(*g.Get())
	return nil
}

// better reports whether pop[a] outranks pop[b] under the given
// direction. An unevaluated individual never outranks an evaluated one;
// two unevaluated individuals are tied.
func better[E individual.Encoding[E]](pop population.Population[E], a, b int, minimize bool) bool {
	oa, aok := pop[a].Objective()
	ob, bok := pop[b].Objective()
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
		return better[E](pop, order[i], order[j], minimize)
	})
	return order
}
