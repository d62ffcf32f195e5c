package generation

import (
	"github.com/mahf-opt/mahf/component"
	"github.com/mahf-opt/mahf/problem"
	"github.com/mahf-opt/mahf/rng"
	"github.com/mahf-opt/mahf/state"
)

// BitFlipMutation flips each bit independently with probability Rm.
type BitFlipMutation[E BitEncoding[E]] struct {
	component.Base[E]
	Rm float64
}

// NewBitFlipMutation returns a BitFlipMutation. rm must lie in [0, 1].
func NewBitFlipMutation[E BitEncoding[E]](rm float64) (*BitFlipMutation[E], error) {
	if rm < 0 || rm > 1 {
		return nil, parameterf("rm must lie in [0, 1], got %v", rm)
	}
	return &BitFlipMutation[E]{Rm: rm}, nil
}

func (*BitFlipMutation[E]) Require(_ problem.Interface[E], r *component.Requirements) {
	requireGenerationInputs[E](r, "generation.BitFlipMutation")
}

func (m *BitFlipMutation[E]) Execute(_ problem.Interface[E], s *state.State) error {
	pop, err := popOffspringInput[E](s, "generation.BitFlipMutation")
	if err != nil {
		return err
	}
	err = withRandomVoid(s, func(r *rng.Random) {
		for i := range pop {
			pop[i].MutateSolution(func(sol *E) {
				v := []bool(*sol)
				for j := range v {
					if r.Float64() < m.Rm {
						v[j] = !v[j]
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
