package selection

import (
	"github.com/mahf-opt/mahf/component"
	"github.com/mahf-opt/mahf/individual"
	"github.com/mahf-opt/mahf/population"
	"github.com/mahf-opt/mahf/problem"
	"github.com/mahf-opt/mahf/rng"
	"github.com/mahf-opt/mahf/state"
)

// All selects the entire current population unchanged.
type All[E individual.Encoding[E]] struct {
	component.Base[E]
}

func NewAll[E individual.Encoding[E]]() *All[E] { return &All[E]{} }

func (*All[E]) Require(_ problem.Interface[E], r *component.Requirements) {
	component.Require[*population.Stack[E]](r, "selection.All")
}

func (*All[E]) Execute(_ problem.Interface[E], s *state.State) error {
	pop, err := currentPopulation[E](s)
	if err != nil {
		return err
	}
	return pushSelection[E](s, pop.Clone())
}

// None always selects the empty population.
type None[E individual.Encoding[E]] struct {
	component.Base[E]
}

func NewNone[E individual.Encoding[E]]() *None[E] { return &None[E]{} }

func (*None[E]) Require(_ problem.Interface[E], r *component.Requirements) {
	component.Require[*population.Stack[E]](r, "selection.None")
}

func (*None[E]) Execute(_ problem.Interface[E], s *state.State) error {
	if _, err := currentPopulation[E](s); err != nil {
		return err
	}
	return pushSelection[E](s, population.Population[E]{})
}

// CloneSingle selects one individual, drawn uniformly at random, cloned
// K times.
type CloneSingle[E individual.Encoding[E]] struct {
	component.Base[E]
	K int
}

// NewCloneSingle returns a CloneSingle selector. k must be positive.
func NewCloneSingle[E individual.Encoding[E]](k int) (*CloneSingle[E], error) {
	if k <= 0 {
		return nil, parameterf("k must be positive, got %d", k)
	}
	return &CloneSingle[E]{K: k}, nil
}

func (*CloneSingle[E]) Require(_ problem.Interface[E], r *component.Requirements) {
	requireSelectionInputs[E](r, "selection.CloneSingle")
}

func (c *CloneSingle[E]) Execute(_ problem.Interface[E], s *state.State) error {
	pop, err := currentPopulation[E](s)
	if err != nil {
		return err
	}
	if len(pop) == 0 {
		return pushSelection[E](s, population.Population[E]{})
	}
	idx, err := withRandom(s, func(r *rng.Random) int { return r.Intn(len(pop)) })
	if err != nil {
		return err
	}
	sel := make(population.Population[E], c.K)
	for i := range sel {
		sel[i] = pop[idx].Clone()
	}
	return pushSelection[E](s, sel)
}

// FullyRandom selects N individuals uniformly at random with repetition.
type FullyRandom[E individual.Encoding[E]] struct {
	component.Base[E]
	N int
}

// NewFullyRandom returns a FullyRandom selector. n must be positive.
func NewFullyRandom[E individual.Encoding[E]](n int) (*FullyRandom[E], error) {
	if n <= 0 {
		return nil, parameterf("n must be positive, got %d", n)
	}
	return &FullyRandom[E]{N: n}, nil
}

func (*FullyRandom[E]) Require(_ problem.Interface[E], r *component.Requirements) {
	requireSelectionInputs[E](r, "selection.FullyRandom")
}

func (f *FullyRandom[E]) Execute(_ problem.Interface[E], s *state.State) error {
	pop, err := currentPopulation[E](s)
	if err != nil {
		return err
	}
	if len(pop) == 0 {
		return pushSelection[E](s, population.Population[E]{})
	}
	sel, err := withRandom(s, func(r *rng.Random) population.Population[E] {
		out := make(population.Population[E], f.N)
		for i := range out {
			out[i] = pop[r.Intn(len(pop))].Clone()
		}
		return out
	})
	if err != nil {
		return err
	}
	return pushSelection[E](s, sel)
}

// RandomWithoutRepetition selects N distinct indices uniformly at random,
// without replacement. N must not exceed the population size.
type RandomWithoutRepetition[E individual.Encoding[E]] struct {
	component.Base[E]
	N int
}

// NewRandomWithoutRepetition returns a RandomWithoutRepetition selector.
// n must be positive.
func NewRandomWithoutRepetition[E individual.Encoding[E]](n int) (*RandomWithoutRepetition[E], error) {
	if n <= 0 {
		return nil, parameterf("n must be positive, got %d", n)
	}
	return &RandomWithoutRepetition[E]{N: n}, nil
}

func (*RandomWithoutRepetition[E]) Require(_ problem.Interface[E], r *component.Requirements) {
	requireSelectionInputs[E](r, "selection.RandomWithoutRepetition")
}

func (rw *RandomWithoutRepetition[E]) Execute(_ problem.Interface[E], s *state.State) error {
	pop, err := currentPopulation[E](s)
	if err != nil {
		return err
	}
	if len(pop) == 0 {
		return pushSelection[E](s, population.Population[E]{})
	}
	if rw.N > len(pop) {
		return layoutf("selection.RandomWithoutRepetition", "n=%d exceeds population size %d", rw.N, len(pop))
	}
	sel, err := withRandom(s, func(r *rng.Random) population.Population[E] {
		perm := r.Perm(len(pop))[:rw.N]
		out := make(population.Population[E], rw.N)
		for i, idx := range perm {
			out[i] = pop[idx].Clone()
		}
		return out
	})
	if err != nil {
		return err
	}
	return pushSelection[E](s, sel)
}
