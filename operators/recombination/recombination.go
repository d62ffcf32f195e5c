package recombination

import (
	"github.com/mahf-opt/mahf/component"
	"github.com/mahf-opt/mahf/individual"
	"github.com/mahf-opt/mahf/population"
	"github.com/mahf-opt/mahf/rng"
	"github.com/mahf-opt/mahf/state"
)

// RealEncoding is satisfied by any encoding backed by a []float64,
// letting ArithmeticCrossover and the DE crossovers operate generically.
type RealEncoding[E any] interface {
	~[]float64
	individual.Encoding[E]
}

// Sequence is satisfied by any encoding backed by a slice of T,
// regardless of T — what NPointCrossover and UniformCrossover need,
// since they only splice positions and never interpret values.
type Sequence[E any, T any] interface {
	~[]T
	individual.Encoding[E]
}

// Permutation is Sequence restricted to a comparable element type, which
// CycleCrossover needs to detect the cycles shared by both parents.
type Permutation[E any, T comparable] interface {
	~[]T
	individual.Encoding[E]
}

func requireRecombinationInputs[E individual.Encoding[E]](r *component.Requirements, owner string) {
	component.Require[*population.Stack[E]](r, owner)
	component.Require[*rng.Random](r, owner)
}

// popParents pops the current population (the parents) to recombine.
func popParents[E individual.Encoding[E]](s *state.State, owner string) (population.Population[E], error) {
	g, err := state.BorrowMut[*population.Stack[E]](s)
	if err != nil {
		return nil, err
	}
	defer g.Release()
	stack := g.Get()
	pop, err := (*stack).Pop()
	if err != nil {
		return nil, layoutf(owner, "%v", err)
	}
	return pop, nil
}

// popDonorAndBase pops the top two populations: the donor (pushed last,
// typically a DEMutation result) and the base/target population beneath
// it, failing if fewer than two populations are present or their
// cardinalities differ.
func popDonorAndBase[E individual.Encoding[E]](s *state.State, owner string) (donor, base population.Population[E], err error) {
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
	donor, base = pops[0], pops[1]
	if len(donor) != len(base) {
		(*stack).Push(base)
		(*stack).Push(donor)
		return nil, nil, layoutf(owner, "donor has %d individuals, base has %d", len(donor), len(base))
	}
	return donor, base, nil
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

func withRandom(s *state.State, fn func(*rng.Random)) error {
	g, err := state.BorrowMut[*rng.Random](s)
	if err != nil {
		return err
	}
	defer g.Release()
	fn(*g.Get())
	return nil
}
