package termination

import (
	"github.com/mahf-opt/mahf/component"
	"github.com/mahf-opt/mahf/counter"
	"github.com/mahf-opt/mahf/individual"
	"github.com/mahf-opt/mahf/problem"
	"github.com/mahf-opt/mahf/state"
)

// LessThanN is the generic "run while counter < max" condition spec.md §6
// names: it reads any monotone uint64 counter T and compares it to Max.
// FixedIterations and FixedEvaluations are thin aliases over it.
type LessThanN[E individual.Encoding[E], T state.Scalar[uint64]] struct {
	component.Base[E]
	Owner string
	Max   uint64
	id    []any
}

// NewLessThanN returns a LessThanN condition over counter T, labelled
// owner for requirement-error messages.
func NewLessThanN[E individual.Encoding[E], T state.Scalar[uint64]](owner string, max uint64, id ...any) *LessThanN[E, T] {
	return &LessThanN[E, T]{Owner: owner, Max: max, id: id}
}

func (l *LessThanN[E, T]) Require(_ problem.Interface[E], r *component.Requirements) {
	component.Require[T](r, l.Owner, l.id...)
}

func (l *LessThanN[E, T]) Evaluate(_ problem.Interface[E], s *state.State) (bool, error) {
	cur, err := state.GetValue[uint64, T](s, l.id...)
	if err != nil {
		return false, err
	}
	return cur < l.Max, nil
}

// Progress returns min(1, current/Max).
func (l *LessThanN[E, T]) Progress(s *state.State) (float64, error) {
	return counter.Progress[T](s, l.Max, l.id...)
}

// FixedIterations stops the run once *counter.Iterations reaches max.
func FixedIterations[E individual.Encoding[E]](max uint64) *LessThanN[E, *counter.Iterations] {
	return NewLessThanN[E, *counter.Iterations]("termination.FixedIterations", max)
}

// FixedEvaluations stops the run once *counter.Evaluations reaches max.
func FixedEvaluations[E individual.Encoding[E]](max uint64) *LessThanN[E, *counter.Evaluations] {
	return NewLessThanN[E, *counter.Evaluations]("termination.FixedEvaluations", max)
}
