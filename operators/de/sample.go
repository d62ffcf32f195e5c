package de

import (
	"github.com/mahf-opt/mahf/component"
	"github.com/mahf-opt/mahf/individual"
	"github.com/mahf-opt/mahf/problem"
	"github.com/mahf-opt/mahf/rng"
	"github.com/mahf-opt/mahf/state"
)

// SampleParameters draws one (F, CR) pair per individual in the current
// population: a history slot is picked uniformly at random, F is drawn
// from Cauchy(historyF[slot], 0.1) — re-drawn on a non-positive result,
// clipped to 1 above it — and CR from Normal(historyCR[slot], 0.1)
// clipped to [0, 1]. Results land in SHADEParamF/SHADEParamCR,
// index-aligned with the population; it does not itself touch the
// population stack.
type SampleParameters[E individual.Encoding[E]] struct {
	component.Base[E]
}

// NewSampleParameters returns a SampleParameters.
func NewSampleParameters[E individual.Encoding[E]]() *SampleParameters[E] {
	return &SampleParameters[E]{}
}

func (*SampleParameters[E]) Require(_ problem.Interface[E], r *component.Requirements) {
	requireHistoryInputs[E](r, "de.SampleParameters")
}

func (c *SampleParameters[E]) Execute(_ problem.Interface[E], s *state.State) error {
	pop, err := currentPopulation[E](s, "de.SampleParameters")
	if err != nil {
		return err
	}

	fg, err := state.Borrow[*SHADEHistoryF](s)
	if err != nil {
		return err
	}
	defer fg.Release()
	histF := (*fg.Get()).Values

	crg, err := state.Borrow[*SHADEHistoryCR](s)
	if err != nil {
		return err
	}
	defer crg.Release()
	histCR := (*crg.Get()).Values

	fValues := make([]float64, len(pop))
	crValues := make([]float64, len(pop))
	err = withRandom(s, func(r *rng.Random) error {
		for i := range pop {
			slot := r.Intn(len(histF))
			fValues[i] = sampleCauchy(r, histF[slot], 0.1)
			crValues[i] = sampleNormalClipped(r, histCR[slot], 0.1)
		}
		return nil
	})
	if err != nil {
		return err
	}

	state.Insert(s, &SHADEParamF{Values: fValues})
	state.Insert(s, &SHADEParamCR{Values: crValues})
	return nil
}
