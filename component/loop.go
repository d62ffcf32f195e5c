package component

import (
	"github.com/mahf-opt/mahf/counter"
	"github.com/mahf-opt/mahf/individual"
	"github.com/mahf-opt/mahf/problem"
	"github.com/mahf-opt/mahf/state"
)

// Loop runs Body repeatedly while Condition evaluates true, incrementing
// a counter.Iterations after each completed Body execution (spec.md §4.2:
// "iteration k denotes k completed iterations"). Condition is evaluated
// before every iteration, including the first, so a Condition that is
// false from the start runs Body zero times.
type Loop[E individual.Encoding[E]] struct {
	Condition Condition[E]
	Body      Component[E]
}

// NewLoop returns a Loop that runs body while cond holds.
func NewLoop[E individual.Encoding[E]](cond Condition[E], body Component[E]) *Loop[E] {
	return &Loop[E]{Condition: cond, Body: body}
}

func (l *Loop[E]) Init(p problem.Interface[E], s *state.State) error {
	if !state.Has[*counter.Iterations](s) {
		state.Insert(s, &counter.Iterations{})
	}
	if err := l.Condition.Init(p, s); err != nil {
		return err
	}
	return l.Body.Init(p, s)
}

func (l *Loop[E]) Require(p problem.Interface[E], r *Requirements) {
	Require[*counter.Iterations](r, "component.Loop")
	l.Condition.Require(p, r)
	l.Body.Require(p, r)
}

func (l *Loop[E]) Execute(p problem.Interface[E], s *state.State) error {
	for {
		ok, err := l.Condition.Evaluate(p, s)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err := l.Body.Execute(p, s); err != nil {
			return err
		}
		guard, err := state.BorrowMut[*counter.Iterations](s)
		if err != nil {
			return err
		}
		(*guard.Get()).Inc()
		guard.Release()
	}
}
