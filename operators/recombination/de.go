package recombination

import (
	"github.com/mahf-opt/mahf/component"
	"github.com/mahf-opt/mahf/population"
	"github.com/mahf-opt/mahf/problem"
	"github.com/mahf-opt/mahf/rng"
	"github.com/mahf-opt/mahf/state"
)

// DEBinomialCrossover builds a trial vector from the top two stack
// populations — donor (pushed last) and base — by taking each
// coordinate from the donor independently with probability Pc, except
// one coordinate chosen at random which is always taken from the base,
// guaranteeing the trial is never identical to the donor. Donor and base
// must have equal cardinality; the result replaces both with one
// population of trial vectors.
type DEBinomialCrossover[E RealEncoding[E]] struct {
	component.Base[E]
	Pc float64
}

// NewDEBinomialCrossover returns a DEBinomialCrossover. pc must lie in
// [0, 1].
func NewDEBinomialCrossover[E RealEncoding[E]](pc float64) (*DEBinomialCrossover[E], error) {
	if pc < 0 || pc > 1 {
		return nil, parameterf("pc must lie in [0, 1], got %v", pc)
	}
	return &DEBinomialCrossover[E]{Pc: pc}, nil
}

func (*DEBinomialCrossover[E]) Require(_ problem.Interface[E], r *component.Requirements) {
	requireRecombinationInputs[E](r, "recombination.DEBinomialCrossover")
}

func (c *DEBinomialCrossover[E]) Execute(_ problem.Interface[E], s *state.State) error {
	donor, base, err := popDonorAndBase[E](s, "recombination.DEBinomialCrossover")
	if err != nil {
		return err
	}
	trials := make(population.Population[E], len(base))
	err = withRandom(s, func(r *rng.Random) {
		for i := range base {
			d, b := []float64(donor[i].Solution()), []float64(base[i].Solution())
			trials[i] = base[i].Clone()
			trials[i].SetSolution(E(binomialTrial(r, b, d, c.Pc)))
		}
	})
	if err != nil {
		return err
	}
	return pushOffspring[E](s, trials)
}

func binomialTrial(r *rng.Random, base, donor []float64, pc float64) []float64 {
	n := len(base)
	trial := make([]float64, n)
	keepBase := r.Intn(n)
	for j := 0; j < n; j++ {
		if j != keepBase && r.Float64() < pc {
			trial[j] = donor[j]
		} else {
			trial[j] = base[j]
		}
	}
	return trial
}

// DEExponentialCrossover builds a trial vector from the top two stack
// populations by copying a contiguous run of coordinates from the donor,
// starting at a random position and extending by Bernoulli(Pc) trials
// capped at n-1 coordinates, so at least one coordinate always remains
// from the base. Donor and base must have equal cardinality.
type DEExponentialCrossover[E RealEncoding[E]] struct {
	component.Base[E]
	Pc float64
}

// NewDEExponentialCrossover returns a DEExponentialCrossover. pc must lie
// in [0, 1].
func NewDEExponentialCrossover[E RealEncoding[E]](pc float64) (*DEExponentialCrossover[E], error) {
	if pc < 0 || pc > 1 {
		return nil, parameterf("pc must lie in [0, 1], got %v", pc)
	}
	return &DEExponentialCrossover[E]{Pc: pc}, nil
}

func (*DEExponentialCrossover[E]) Require(_ problem.Interface[E], r *component.Requirements) {
	requireRecombinationInputs[E](r, "recombination.DEExponentialCrossover")
}

func (c *DEExponentialCrossover[E]) Execute(_ problem.Interface[E], s *state.State) error {
	donor, base, err := popDonorAndBase[E](s, "recombination.DEExponentialCrossover")
	if err != nil {
		return err
	}
	trials := make(population.Population[E], len(base))
	err = withRandom(s, func(r *rng.Random) {
		for i := range base {
			d, b := []float64(donor[i].Solution()), []float64(base[i].Solution())
			trials[i] = base[i].Clone()
			trials[i].SetSolution(E(exponentialTrial(r, b, d, c.Pc)))
		}
	})
	if err != nil {
		return err
	}
	return pushOffspring[E](s, trials)
}

func exponentialTrial(r *rng.Random, base, donor []float64, pc float64) []float64 {
	n := len(base)
	trial := make([]float64, n)
	copy(trial, base)
	if n < 2 {
		return trial
	}
	l := r.Intn(n)
	for count := 0; ; count++ {
		trial[l] = donor[l]
		l = (l + 1) % n
		if count+1 >= n-1 {
			break
		}
		if r.Float64() >= pc {
			break
		}
	}
	return trial
}
