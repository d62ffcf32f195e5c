package generation

import (
	"github.com/mahf-opt/mahf/component"
	"github.com/mahf-opt/mahf/problem"
	"github.com/mahf-opt/mahf/rng"
	"github.com/mahf-opt/mahf/state"
)

// ScrambleMutation shuffles the elements of a random contiguous segment,
// per individual, with probability Rm.
type ScrambleMutation[E Sequence[E, T], T any] struct {
	component.Base[E]
	Rm float64
}

// NewScrambleMutation returns a ScrambleMutation. rm must lie in [0, 1].
func NewScrambleMutation[E Sequence[E, T], T any](rm float64) (*ScrambleMutation[E, T], error) {
	if rm < 0 || rm > 1 {
		return nil, parameterf("rm must lie in [0, 1], got %v", rm)
	}
	return &ScrambleMutation[E, T]{Rm: rm}, nil
}

func (*ScrambleMutation[E, T]) Require(_ problem.Interface[E], r *component.Requirements) {
	requireGenerationInputs[E](r, "generation.ScrambleMutation")
}

func (m *ScrambleMutation[E, T]) Execute(_ problem.Interface[E], s *state.State) error {
	pop, err := popOffspringInput[E](s, "generation.ScrambleMutation")
	if err != nil {
		return err
	}
	err = withRandomVoid(s, func(r *rng.Random) {
		for i := range pop {
			if r.Float64() >= m.Rm {
				continue
			}
			pop[i].MutateSolution(func(sol *E) {
				v := []T(*sol)
				if len(v) < 2 {
					return
				}
				a, b := r.Intn(len(v)), r.Intn(len(v))
				if a > b {
					a, b = b, a
				}
				segment := v[a : b+1]
				r.Shuffle(len(segment), func(i, j int) { segment[i], segment[j] = segment[j], segment[i] })
			})
		}
	})
	if err != nil {
		return err
	}
	return pushOffspring[E](s, pop)
}

// SwapMutation picks NSwap distinct positions and rotates their values by
// one step (a circular multi-swap). NSwap must be at least 2.
type SwapMutation[E Sequence[E, T], T any] struct {
	component.Base[E]
	NSwap int
}

// NewSwapMutation returns a SwapMutation.
func NewSwapMutation[E Sequence[E, T], T any](nSwap int) (*SwapMutation[E, T], error) {
	if nSwap < 2 {
		return nil, parameterf("nSwap must be >= 2, got %d", nSwap)
	}
	return &SwapMutation[E, T]{NSwap: nSwap}, nil
}

func (*SwapMutation[E, T]) Require(_ problem.Interface[E], r *component.Requirements) {
	requireGenerationInputs[E](r, "generation.SwapMutation")
}

func (m *SwapMutation[E, T]) Execute(_ problem.Interface[E], s *state.State) error {
	pop, err := popOffspringInput[E](s, "generation.SwapMutation")
	if err != nil {
		return err
	}
	err = withRandomVoid(s, func(r *rng.Random) {
		for i := range pop {
			pop[i].MutateSolution(func(sol *E) {
				v := []T(*sol)
				if len(v) < m.NSwap {
					return
				}
				idx := r.Perm(len(v))[:m.NSwap]
				first := v[idx[0]]
				for k := 0; k < len(idx)-1; k++ {
					v[idx[k]] = v[idx[k+1]]
				}
				v[idx[len(idx)-1]] = first
			})
		}
	})
	if err != nil {
		return err
	}
	return pushOffspring[E](s, pop)
}

// InversionMutation reverses the elements of a random contiguous segment
// per individual.
type InversionMutation[E Sequence[E, T], T any] struct {
	component.Base[E]
}

// NewInversionMutation returns an InversionMutation.
func NewInversionMutation[E Sequence[E, T], T any]() *InversionMutation[E, T] {
	return &InversionMutation[E, T]{}
}

func (*InversionMutation[E, T]) Require(_ problem.Interface[E], r *component.Requirements) {
	requireGenerationInputs[E](r, "generation.InversionMutation")
}

func (m *InversionMutation[E, T]) Execute(_ problem.Interface[E], s *state.State) error {
	pop, err := popOffspringInput[E](s, "generation.InversionMutation")
	if err != nil {
		return err
	}
	err = withRandomVoid(s, func(r *rng.Random) {
		for i := range pop {
			pop[i].MutateSolution(func(sol *E) {
				v := []T(*sol)
				if len(v) < 2 {
					return
				}
				a, b := r.Intn(len(v)), r.Intn(len(v))
				if a > b {
					a, b = b, a
				}
				for lo, hi := a, b; lo < hi; lo, hi = lo+1, hi-1 {
					v[lo], v[hi] = v[hi], v[lo]
				}
			})
		}
	})
	if err != nil {
		return err
	}
	return pushOffspring[E](s, pop)
}

// InsertionMutation removes one element at a random position and
// reinserts it at another random position, per individual.
type InsertionMutation[E Sequence[E, T], T any] struct {
	component.Base[E]
}

// NewInsertionMutation returns an InsertionMutation.
func NewInsertionMutation[E Sequence[E, T], T any]() *InsertionMutation[E, T] {
	return &InsertionMutation[E, T]{}
}

func (*InsertionMutation[E, T]) Require(_ problem.Interface[E], r *component.Requirements) {
	requireGenerationInputs[E](r, "generation.InsertionMutation")
}

func (m *InsertionMutation[E, T]) Execute(_ problem.Interface[E], s *state.State) error {
	pop, err := popOffspringInput[E](s, "generation.InsertionMutation")
	if err != nil {
		return err
	}
	err = withRandomVoid(s, func(r *rng.Random) {
		for i := range pop {
			pop[i].MutateSolution(func(sol *E) {
				v := []T(*sol)
				if len(v) < 2 {
					return
				}
				from, to := r.Intn(len(v)), r.Intn(len(v))
				if from == to {
					return
				}
				elem := v[from]
				if from < to {
					copy(v[from:to], v[from+1:to+1])
				} else {
					copy(v[to+1:from+1], v[to:from])
				}
				v[to] = elem
			})
		}
	})
	if err != nil {
		return err
	}
	return pushOffspring[E](s, pop)
}

// TranslocationMutation excises a random contiguous segment and
// reinserts it at a random position among the remaining elements, per
// individual.
type TranslocationMutation[E Sequence[E, T], T any] struct {
	component.Base[E]
}

// NewTranslocationMutation returns a TranslocationMutation.
func NewTranslocationMutation[E Sequence[E, T], T any]() *TranslocationMutation[E, T] {
	return &TranslocationMutation[E, T]{}
}

func (*TranslocationMutation[E, T]) Require(_ problem.Interface[E], r *component.Requirements) {
	requireGenerationInputs[E](r, "generation.TranslocationMutation")
}

func (m *TranslocationMutation[E, T]) Execute(_ problem.Interface[E], s *state.State) error {
	pop, err := popOffspringInput[E](s, "generation.TranslocationMutation")
	if err != nil {
		return err
	}
	err = withRandomVoid(s, func(r *rng.Random) {
		for i := range pop {
			pop[i].MutateSolution(func(sol *E) {
				v := []T(*sol)
				n := len(v)
				if n < 3 {
					return
				}
				a, b := r.Intn(n), r.Intn(n)
				if a > b {
					a, b = b, a
				}
				segment := append([]T{}, v[a:b+1]...)
				rest := append(append([]T{}, v[:a]...), v[b+1:]...)
				insertAt := r.Intn(len(rest) + 1)
				out := append(append([]T{}, rest[:insertAt]...), segment...)
				out = append(out, rest[insertAt:]...)
				copy(v, out)
			})
		}
	})
	if err != nil {
		return err
	}
	return pushOffspring[E](s, pop)
}
