package generation

import (
	"math"

	"github.com/mahf-opt/mahf/component"
	"github.com/mahf-opt/mahf/counter"
	"github.com/mahf-opt/mahf/problem"
	"github.com/mahf-opt/mahf/rng"
	"github.com/mahf-opt/mahf/state"
)

// IWOAdaptiveDeviationDelta mutates every coordinate of every individual
// by N(0, sigma), where sigma anneals from Sigma0 down to Sigma1 over Max
// iterations following the invasive-weed-optimization schedule
//
//	sigma = Sigma1 + (1-progress)^M * (Sigma0-Sigma1)
//
// with progress read from the T counter (typically *counter.Iterations).
type IWOAdaptiveDeviationDelta[E RealEncoding[E], T state.Scalar[uint64]] struct {
	component.Base[E]
	Sigma0, Sigma1, M float64
	Max               uint64
	id                []any
}

// NewIWOAdaptiveDeviationDelta returns an IWOAdaptiveDeviationDelta driven
// by T. Sigma1 must not exceed Sigma0.
func NewIWOAdaptiveDeviationDelta[E RealEncoding[E], T state.Scalar[uint64]](sigma0, sigma1, m float64, max uint64, id ...any) (*IWOAdaptiveDeviationDelta[E, T], error) {
	if sigma1 > sigma0 {
		return nil, parameterf("sigma1 (%v) must not exceed sigma0 (%v)", sigma1, sigma0)
	}
	return &IWOAdaptiveDeviationDelta[E, T]{Sigma0: sigma0, Sigma1: sigma1, M: m, Max: max, id: id}, nil
}

// NewIWOAdaptiveDeviationDeltaByIterations is the common case: anneal
// against the loop's iteration counter.
func NewIWOAdaptiveDeviationDeltaByIterations[E RealEncoding[E]](sigma0, sigma1, m float64, max uint64) (*IWOAdaptiveDeviationDelta[E, *counter.Iterations], error) {
	return NewIWOAdaptiveDeviationDelta[E, *counter.Iterations](sigma0, sigma1, m, max)
}

func (c *IWOAdaptiveDeviationDelta[E, T]) Init(_ problem.Interface[E], s *state.State) error {
	state.EntryOf[MutationStrength[*IWOAdaptiveDeviationDelta[E, T]]](s).
		OrInsert(MutationStrength[*IWOAdaptiveDeviationDelta[E, T]]{})
	return nil
}

func (c *IWOAdaptiveDeviationDelta[E, T]) Require(_ problem.Interface[E], r *component.Requirements) {
	requireGenerationInputs[E](r, "generation.IWOAdaptiveDeviationDelta")
	component.Require[T](r, "generation.IWOAdaptiveDeviationDelta", c.id...)
	component.Require[MutationStrength[*IWOAdaptiveDeviationDelta[E, T]]](r, "generation.IWOAdaptiveDeviationDelta")
}

func (c *IWOAdaptiveDeviationDelta[E, T]) Execute(_ problem.Interface[E], s *state.State) error {
	progress, err := counter.Progress[T](s, c.Max, c.id...)
	if err != nil {
		return err
	}
	sigma := c.Sigma1 + math.Pow(1-progress, c.M)*(c.Sigma0-c.Sigma1)

	e := state.EntryOf[MutationStrength[*IWOAdaptiveDeviationDelta[E, T]]](s)
	e.OrInsert(MutationStrength[*IWOAdaptiveDeviationDelta[E, T]]{})
	e.AndModify(func(ms *MutationStrength[*IWOAdaptiveDeviationDelta[E, T]]) { ms.Set(sigma) })

	pop, err := popOffspringInput[E](s, "generation.IWOAdaptiveDeviationDelta")
	if err != nil {
		return err
	}
	err = withRandomVoid(s, func(r *rng.Random) {
		for i := range pop {
			pop[i].MutateSolution(func(sol *E) {
				v := []float64(*sol)
				for j := range v {
					v[j] += r.NormFloat64() * sigma
				}
			})
		}
	})
	if err != nil {
		return err
	}
	return pushOffspring[E](s, pop)
}
