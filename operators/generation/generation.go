package generation

import (
	"github.com/mahf-opt/mahf/component"
	"github.com/mahf-opt/mahf/individual"
	"github.com/mahf-opt/mahf/population"
	"github.com/mahf-opt/mahf/rng"
	"github.com/mahf-opt/mahf/state"
)

// RealEncoding is satisfied by any encoding backed by a []float64,
// letting real-valued mutations (Normal, Uniform, PartialRandomSpread,
// IWOAdaptiveDeviationDelta, DEMutation) operate generically.
type RealEncoding[E any] interface {
	~[]float64
	individual.Encoding[E]
}

// BitEncoding is satisfied by any encoding backed by a []bool.
type BitEncoding[E any] interface {
	~[]bool
	individual.Encoding[E]
}

// Sequence is satisfied by any encoding backed by a slice of T,
// regardless of T — the constraint the order-permuting mutations
// (Scramble, Swap, Inversion, Insertion, Translocation) need, since they
// only rearrange elements and never interpret them.
type Sequence[E any, T any] interface {
	~[]T
	individual.Encoding[E]
}

func requireGenerationInputs[E individual.Encoding[E]](r *component.Requirements, owner string) {
	component.Require[*population.Stack[E]](r, owner)
	component.Require[*rng.Random](r, owner)
}

// popOffspringInput pops the top population (the selection) to mutate in
// place; the caller must push the (possibly mutated) population back.
func popOffspringInput[E individual.Encoding[E]](s *state.State, owner string) (population.Population[E], error) {
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

func pushOffspring[E individual.Encoding[E]](s *state.State, pop population.Population[E]) error {
	g, err := state.BorrowMut[*population.Stack[E]](s)
	if err != nil {
		return err
	}
	defer g.Release()
	(*g.Get()).Push(pop)
	return nil
}

func withRandom[T any](s *state.State, fn func(*rng.Random) T) (T, error) {
	g, err := state.BorrowMut[*rng.Random](s)
	var zero T
	if err != nil {
		return zero, err
	}
	defer g.Release()
	return fn(*g.Get()), nil
}

// withRandomVoid is withRandom for side-effecting mutations that
// produce no return value of their own.
func withRandomVoid(s *state.State, fn func(*rng.Random)) error {
	g, err := state.BorrowMut[*rng.Random](s)
	if err != nil {
		return err
	}
	defer g.Release()
	fn(*g.Get())
	return nil
}
