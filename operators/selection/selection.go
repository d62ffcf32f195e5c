package selection

import (
	"github.com/mahf-opt/mahf/component"
	"github.com/mahf-opt/mahf/individual"
	"github.com/mahf-opt/mahf/population"
	"github.com/mahf-opt/mahf/rng"
	"github.com/mahf-opt/mahf/state"
)

func requireSelectionInputs[E individual.Encoding[E]](r *component.Requirements, owner string) {
	component.Require[*population.Stack[E]](r, owner)
	component.Require[*rng.Random](r, owner)
}

func currentPopulation[E individual.Encoding[E]](s *state.State) (population.Population[E], error) {
	g, err := state.BorrowMut[*population.Stack[E]](s)
	if err != nil {
		return nil, err
	}
	defer g.Release()
	stack := *g.Get()
	return stack.Current()
}

func pushSelection[E individual.Encoding[E]](s *state.State, sel population.Population[E]) error {
	g, err := state.BorrowMut[*population.Stack[E]](s)
	if err != nil {
		return err
	}
	defer g.Release()
	(*g.Get()).Push(sel)
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

// withRandomVoid is withRandom for side-effecting selectors that produce
// no return value of their own.
func withRandomVoid(s *state.State, fn func(*rng.Random)) error {
	g, err := state.BorrowMut[*rng.Random](s)
	if err != nil {
		return err
	}
	defer g.Release()
	fn(*g.Get())
	return nil
}
