package generation

import (
	"github.com/mahf-opt/mahf/component"
	"github.com/mahf-opt/mahf/problem"
	"github.com/mahf-opt/mahf/rng"
	"github.com/mahf-opt/mahf/state"
)

// NormalMutation adds N(0, StdDev) to each coordinate independently with
// probability Rm.
type NormalMutation[E RealEncoding[E]] struct {
	component.Base[E]
	StdDev float64
	Rm     float64
}

// NewNormalMutation returns a NormalMutation. stdDev must be positive;
// rm must lie in [0, 1].
func NewNormalMutation[E RealEncoding[E]](stdDev, rm float64) (*NormalMutation[E], error) {
	if stdDev <= 0 {
		return nil, parameterf("stdDev must be positive, got %v", stdDev)
	}
	if rm < 0 || rm > 1 {
		return nil, parameterf("rm must lie in [0, 1], got %v", rm)
	}
	return &NormalMutation[E]{StdDev: stdDev, Rm: rm}, nil
}

func (m *NormalMutation[E]) Init(_ problem.Interface[E], s *state.State) error {
	initMutationParams[*NormalMutation[E]](s, m.StdDev, m.Rm)
	return nil
}

func (*NormalMutation[E]) Require(_ problem.Interface[E], r *component.Requirements) {
	requireGenerationInputs[E](r, "generation.NormalMutation")
	requireMutationParams[*NormalMutation[E]](r, "generation.NormalMutation")
}

func (m *NormalMutation[E]) Execute(_ problem.Interface[E], s *state.State) error {
	stdDev, rm := mutationParams[*NormalMutation[E]](s, m.StdDev, m.Rm)
	pop, err := popOffspringInput[E](s, "generation.NormalMutation")
	if err != nil {
		return err
	}
	err = withRandomVoid(s, func(r *rng.Random) {
		for i := range pop {
			pop[i].MutateSolution(func(sol *E) {
				v := []float64(*sol)
				for j := range v {
					if r.Float64() < rm {
						v[j] += r.NormFloat64() * stdDev
					}
				}
			})
		}
	})
	if err != nil {
		return err
	}
	return pushOffspring[E](s, pop)
}

// UniformMutation adds a uniform random value in [-Bound, Bound] to each
// coordinate independently with probability Rm.
type UniformMutation[E RealEncoding[E]] struct {
	component.Base[E]
	Bound float64
	Rm    float64
}

// NewUniformMutation returns a UniformMutation. bound must be positive;
// rm must lie in [0, 1].
func NewUniformMutation[E RealEncoding[E]](bound, rm float64) (*UniformMutation[E], error) {
	if bound <= 0 {
		return nil, parameterf("bound must be positive, got %v", bound)
	}
	if rm < 0 || rm > 1 {
		return nil, parameterf("rm must lie in [0, 1], got %v", rm)
	}
	return &UniformMutation[E]{Bound: bound, Rm: rm}, nil
}

func (m *UniformMutation[E]) Init(_ problem.Interface[E], s *state.State) error {
	initMutationParams[*UniformMutation[E]](s, m.Bound, m.Rm)
	return nil
}

func (*UniformMutation[E]) Require(_ problem.Interface[E], r *component.Requirements) {
	requireGenerationInputs[E](r, "generation.UniformMutation")
	requireMutationParams[*UniformMutation[E]](r, "generation.UniformMutation")
}

func (m *UniformMutation[E]) Execute(_ problem.Interface[E], s *state.State) error {
	bound, rm := mutationParams[*UniformMutation[E]](s, m.Bound, m.Rm)
	pop, err := popOffspringInput[E](s, "generation.UniformMutation")
	if err != nil {
		return err
	}
	err = withRandomVoid(s, func(r *rng.Random) {
		for i := range pop {
			pop[i].MutateSolution(func(sol *E) {
				v := []float64(*sol)
				for j := range v {
					if r.Float64() < rm {
						v[j] += (r.Float64()*2 - 1) * bound
					}
				}
			})
		}
	})
	if err != nil {
		return err
	}
	return pushOffspring[E](s, pop)
}

// PartialRandomSpread resamples each coordinate uniformly within the
// problem's domain with probability Rm; the problem must implement
// problem.Domained.
type PartialRandomSpread[E RealEncoding[E]] struct {
	component.Base[E]
	Rm float64
}

// NewPartialRandomSpread returns a PartialRandomSpread. rm must lie in
// [0, 1].
func NewPartialRandomSpread[E RealEncoding[E]](rm float64) (*PartialRandomSpread[E], error) {
	if rm < 0 || rm > 1 {
		return nil, parameterf("rm must lie in [0, 1], got %v", rm)
	}
	return &PartialRandomSpread[E]{Rm: rm}, nil
}

func (*PartialRandomSpread[E]) Require(_ problem.Interface[E], r *component.Requirements) {
	requireGenerationInputs[E](r, "generation.PartialRandomSpread")
}

func (m *PartialRandomSpread[E]) Execute(p problem.Interface[E], s *state.State) error {
	domained, ok := p.(problem.Domained)
	if !ok {
		return parameterf("problem %q does not implement Domained", p.Name())
	}
	domain := domained.Domain()
	pop, err := popOffspringInput[E](s, "generation.PartialRandomSpread")
	if err != nil {
		return err
	}
	err = withRandomVoid(s, func(r *rng.Random) {
		for i := range pop {
			pop[i].MutateSolution(func(sol *E) {
				v := []float64(*sol)
				for j := range v {
					if j >= len(domain) {
						continue
					}
					if r.Float64() < m.Rm {
						lo, hi := domain[j].Min, domain[j].Max
						v[j] = lo + r.Float64()*(hi-lo)
					}
				}
			})
		}
	})
	if err != nil {
		return err
	}
	return pushOffspring[E](s, pop)
}
