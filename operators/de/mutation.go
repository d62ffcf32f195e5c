package de

import (
	"github.com/mahf-opt/mahf/component"
	"github.com/mahf-opt/mahf/population"
	"github.com/mahf-opt/mahf/problem"
	"github.com/mahf-opt/mahf/state"
)

// SHADEMutation is generation.DEMutation with a per-target mutation
// factor: the current population is split into consecutive chunks of
// 2*Y+1 individuals (as assembled by a DE-style selector), and chunk i's
// base is shifted by SHADEParamF.Values[i] times the sum of its Y
// difference pairs. len(pop) must be a multiple of 2*Y+1, and
// SHADEParamF must carry one entry per chunk.
type SHADEMutation[E RealEncoding[E]] struct {
	component.Base[E]
	Y int
}

// NewSHADEMutation returns a SHADEMutation. y must be 1 or 2.
func NewSHADEMutation[E RealEncoding[E]](y int) (*SHADEMutation[E], error) {
	if y != 1 && y != 2 {
		return nil, parameterf("y must be 1 or 2, got %d", y)
	}
	return &SHADEMutation[E]{Y: y}, nil
}

func (*SHADEMutation[E]) Require(_ problem.Interface[E], r *component.Requirements) {
	requireSwarmInputs[E](r, "de.SHADEMutation")
	component.Require[*SHADEParamF](r, "de.SHADEMutation")
}

func (m *SHADEMutation[E]) Execute(_ problem.Interface[E], s *state.State) error {
	chunk := 2*m.Y + 1
	pop, err := popOffspringInput[E](s, "de.SHADEMutation")
	if err != nil {
		return err
	}
	if len(pop)%chunk != 0 {
		if pushErr := pushOffspring[E](s, pop); pushErr != nil {
			return pushErr
		}
		return layoutf("de.SHADEMutation", "population size %d is not a multiple of 2*y+1=%d", len(pop), chunk)
	}

	fg, err := state.Borrow[*SHADEParamF](s)
	if err != nil {
		if pushErr := pushOffspring[E](s, pop); pushErr != nil {
			return pushErr
		}
		return err
	}
	defer fg.Release()
	fValues := (*fg.Get()).Values
	if len(fValues) != len(pop)/chunk {
		if pushErr := pushOffspring[E](s, pop); pushErr != nil {
			return pushErr
		}
		return layoutf("de.SHADEMutation", "SHADEParamF has %d entries, need %d", len(fValues), len(pop)/chunk)
	}

	bases := make(population.Population[E], 0, len(pop)/chunk)
	for start, idx := 0, 0; start < len(pop); start, idx = start+chunk, idx+1 {
		group := pop[start : start+chunk]
		f := fValues[idx]
		base := group[0].Clone()
		base.MutateSolution(func(sol *E) {
			v := []float64(*sol)
			for p := 1; p < len(group); p += 2 {
				a := []float64(group[p].Solution())
				b := []float64(group[p+1].Solution())
				for j := range v {
					v[j] += f * (a[j] - b[j])
				}
			}
		})
		bases = append(bases, base)
	}

	return pushOffspring[E](s, bases)
}
