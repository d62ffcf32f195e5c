package de

import (
	"github.com/mahf-opt/mahf/component"
	"github.com/mahf-opt/mahf/population"
	"github.com/mahf-opt/mahf/problem"
	"github.com/mahf-opt/mahf/rng"
	"github.com/mahf-opt/mahf/state"
)

// SHADECrossover is recombination.DEBinomialCrossover with a per-target
// crossover rate: trial[i] takes each coordinate from donor[i]
// independently with probability SHADEParamCR.Values[i], except one
// coordinate chosen at random which always comes from base[i]. Donor
// and base must have equal cardinality, matching SHADEParamCR's length.
type SHADECrossover[E RealEncoding[E]] struct {
	component.Base[E]
}

// NewSHADECrossover returns a SHADECrossover.
func NewSHADECrossover[E RealEncoding[E]]() *SHADECrossover[E] { return &SHADECrossover[E]{} }

func (*SHADECrossover[E]) Require(_ problem.Interface[E], r *component.Requirements) {
	requireSwarmInputs[E](r, "de.SHADECrossover")
	component.Require[*SHADEParamCR](r, "de.SHADECrossover")
}

func (c *SHADECrossover[E]) Execute(_ problem.Interface[E], s *state.State) error {
	donor, base, err := popDonorAndBase[E](s, "de.SHADECrossover")
	if err != nil {
		return err
	}

	crg, err := state.Borrow[*SHADEParamCR](s)
	if err != nil {
		if pushErr := restoreDonorBase[E](s, donor, base); pushErr != nil {
			return pushErr
		}
		return err
	}
	defer crg.Release()
	crValues := (*crg.Get()).Values
	if len(crValues) != len(base) {
		if pushErr := restoreDonorBase[E](s, donor, base); pushErr != nil {
			return pushErr
		}
		return layoutf("de.SHADECrossover", "SHADEParamCR has %d entries, need %d", len(crValues), len(base))
	}

	trials := make(population.Population[E], len(base))
	err = withRandom(s, func(r *rng.Random) error {
		for i := range base {
			d, b := []float64(donor[i].Solution()), []float64(base[i].Solution())
			trials[i] = base[i].Clone()
			trials[i].SetSolution(E(binomialTrial(r, b, d, crValues[i])))
		}
		return nil
	})
	if err != nil {
		return err
	}
	return pushOffspring[E](s, trials)
}

func binomialTrial(r *rng.Random, base, donor []float64, cr float64) []float64 {
	n := len(base)
	trial := make([]float64, n)
	keepBase := r.Intn(n)
	for j := 0; j < n; j++ {
		if j != keepBase && r.Float64() < cr {
			trial[j] = donor[j]
		} else {
			trial[j] = base[j]
		}
	}
	return trial
}

// restoreDonorBase pushes base then donor back, undoing popDonorAndBase
// after a validation failure.
func restoreDonorBase[E RealEncoding[E]](s *state.State, donor, base population.Population[E]) error {
	g, err := state.BorrowMut[*population.Stack[E]](s)
	if err != nil {
		return err
	}
	defer g.Release()
	(*g.Get()).Push(base)
	(*g.Get()).Push(donor)
	return nil
}
