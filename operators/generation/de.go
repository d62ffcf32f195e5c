package generation

import (
	"github.com/mahf-opt/mahf/component"
	"github.com/mahf-opt/mahf/population"
	"github.com/mahf-opt/mahf/problem"
	"github.com/mahf-opt/mahf/state"
)

// DEMutation implements the classic differential-evolution donor
// construction. The current population is split into consecutive chunks
// of 2*Y+1 individuals; within each chunk the first individual is the
// base and the remaining 2*Y form Y difference pairs. Every coordinate of
// the base is shifted by F times the sum of the pairwise differences, and
// only the (mutated) bases survive — the output population has
// len(pop)/(2*Y+1) individuals. len(pop) must be a multiple of 2*Y+1.
type DEMutation[E RealEncoding[E]] struct {
	component.Base[E]
	Y int
	F float64
}

// NewDEMutation returns a DEMutation. y must be 1 or 2; f must lie in
// [0, 2].
func NewDEMutation[E RealEncoding[E]](y int, f float64) (*DEMutation[E], error) {
	if y != 1 && y != 2 {
		return nil, parameterf("y must be 1 or 2, got %d", y)
	}
	if f < 0 || f > 2 {
		return nil, parameterf("f must lie in [0, 2], got %v", f)
	}
	return &DEMutation[E]{Y: y, F: f}, nil
}

func (*DEMutation[E]) Require(_ problem.Interface[E], r *component.Requirements) {
	requireGenerationInputs[E](r, "generation.DEMutation")
}

func (m *DEMutation[E]) Execute(_ problem.Interface[E], s *state.State) error {
	chunk := 2*m.Y + 1
	pop, err := popOffspringInput[E](s, "generation.DEMutation")
	if err != nil {
		return err
	}
	if len(pop)%chunk != 0 {
		if pushErr := pushOffspring[E](s, pop); pushErr != nil {
			return pushErr
		}
		return layoutf("generation.DEMutation", "population size %d is not a multiple of 2*y+1=%d", len(pop), chunk)
	}

	bases := make(population.Population[E], 0, len(pop)/chunk)
	for start := 0; start < len(pop); start += chunk {
		group := pop[start : start+chunk]
		base := group[0].Clone()
		base.MutateSolution(func(sol *E) {
			v := []float64(*sol)
			for p := 1; p < len(group); p += 2 {
				a := []float64(group[p].Solution())
				b := []float64(group[p+1].Solution())
				for j := range v {
					v[j] += m.F * (a[j] - b[j])
				}
			}
		})
		bases = append(bases, base)
	}

	return pushOffspring[E](s, bases)
}
