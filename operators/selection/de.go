package selection

import (
	"github.com/mahf-opt/mahf/component"
	"github.com/mahf-opt/mahf/individual"
	"github.com/mahf-opt/mahf/objective"
	"github.com/mahf-opt/mahf/population"
	"github.com/mahf-opt/mahf/problem"
	"github.com/mahf-opt/mahf/rng"
	"github.com/mahf-opt/mahf/state"
)

// deChunk assembles, for target index i, a chunk of 2*y+1 distinct
// individuals drawn from pop (excluding i): base followed by y (a,b)
// pairs, the layout generation.DEMutation expects.
func deChunk[E individual.Encoding[E]](r *rng.Random, pop population.Population[E], i, y, base int) population.Population[E] {
	chunk := make(population.Population[E], 0, 2*y+1)
	chunk = append(chunk, pop[base].Clone())
	need := 2 * y
	for _, j := range r.Perm(len(pop)) {
		if len(chunk) == need+1 {
			break
		}
		if j == i || j == base {
			continue
		}
		chunk = append(chunk, pop[j].Clone())
	}
	return chunk
}

func bestIndex[E individual.Encoding[E]](pop population.Population[E], minimize bool) int {
	best := 0
	for i := 1; i < len(pop); i++ {
		oi, iok := pop[i].Objective()
		ob, bok := pop[best].Objective()
		if !iok {
			continue
		}
		if !bok {
			best = i
			continue
		}
		ord, ok := oi.Compare(ob)
		if !ok {
			continue
		}
		if (minimize && ord == objective.Less) || (!minimize && ord == objective.Greater) {
			best = i
		}
	}
	return best
}

// DERand assembles, for every individual in the current population, a
// (2*Y+1)-sized chunk consumed by generation.DEMutation: a randomly
// drawn base followed by Y (a,b) pairs also drawn at random, all
// distinct from the target and from each other. The population must
// hold more than 2*Y+1 individuals.
type DERand[E individual.Encoding[E]] struct {
	component.Base[E]
	Y int
}

// NewDERand returns a DERand. y must be 1 or 2.
func NewDERand[E individual.Encoding[E]](y int) (*DERand[E], error) {
	if y != 1 && y != 2 {
		return nil, parameterf("y must be 1 or 2, got %d", y)
	}
	return &DERand[E]{Y: y}, nil
}

func (*DERand[E]) Require(_ problem.Interface[E], r *component.Requirements) {
	requireSelectionInputs[E](r, "selection.DERand")
}

func (d *DERand[E]) Execute(_ problem.Interface[E], s *state.State) error {
	pop, err := currentPopulation[E](s)
	if err != nil {
		return layoutf("selection.DERand", "%v", err)
	}
	chunk := 2*d.Y + 1
	if len(pop) <= chunk {
		return layoutf("selection.DERand", "need more than %d individuals, have %d", chunk, len(pop))
	}
	var sel population.Population[E]
	err = withRandomVoid(s, func(r *rng.Random) {
		sel = make(population.Population[E], 0, len(pop)*chunk)
		for i := range pop {
			base := r.Intn(len(pop) - 1)
			if base >= i {
				base++
			}
			sel = append(sel, deChunk[E](r, pop, i, d.Y, base)...)
		}
	})
	if err != nil {
		return err
	}
	return pushSelection[E](s, sel)
}

// DEBest is DERand with the base fixed to the fittest individual in the
// population under the given direction, rather than drawn at random —
// the DE/best/y variant.
type DEBest[E individual.Encoding[E]] struct {
	component.Base[E]
	Y        int
	Minimize bool
}

// NewDEBest returns a DEBest. y must be 1 or 2.
func NewDEBest[E individual.Encoding[E]](y int, minimize bool) (*DEBest[E], error) {
	if y != 1 && y != 2 {
		return nil, parameterf("y must be 1 or 2, got %d", y)
	}
	return &DEBest[E]{Y: y, Minimize: minimize}, nil
}

func (*DEBest[E]) Require(_ problem.Interface[E], r *component.Requirements) {
	requireSelectionInputs[E](r, "selection.DEBest")
}

func (d *DEBest[E]) Execute(_ problem.Interface[E], s *state.State) error {
	pop, err := currentPopulation[E](s)
	if err != nil {
		return layoutf("selection.DEBest", "%v", err)
	}
	chunk := 2*d.Y + 1
	if len(pop) <= chunk {
		return layoutf("selection.DEBest", "need more than %d individuals, have %d", chunk, len(pop))
	}
	best := bestIndex[E](pop, d.Minimize)
	var sel population.Population[E]
	err = withRandomVoid(s, func(r *rng.Random) {
		sel = make(population.Population[E], 0, len(pop)*chunk)
		for i := range pop {
			sel = append(sel, deChunk[E](r, pop, i, d.Y, best)...)
		}
	})
	if err != nil {
		return err
	}
	return pushSelection[E](s, sel)
}
