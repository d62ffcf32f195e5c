package component

import (
	"github.com/mahf-opt/mahf/individual"
	"github.com/mahf-opt/mahf/problem"
	"github.com/mahf-opt/mahf/state"
)

// Scope runs Body inside a fresh, shadowing state frame: anything Body
// inserts is popped away (and any shadowed outer entries reappear) the
// moment Execute returns, regardless of whether Body errored (spec.md
// §4.2, §5 frame-stack semantics).
type Scope[E individual.Encoding[E]] struct {
	Body Component[E]
}

// NewScope returns a Scope wrapping body in its own frame.
func NewScope[E individual.Encoding[E]](body Component[E]) *Scope[E] {
	return &Scope[E]{Body: body}
}

func (sc *Scope[E]) Init(p problem.Interface[E], s *state.State) error {
	return sc.Body.Init(p, s)
}

func (sc *Scope[E]) Require(p problem.Interface[E], r *Requirements) {
	sc.Body.Require(p, r)
}

func (sc *Scope[E]) Execute(p problem.Interface[E], s *state.State) error {
	s.PushFrame()
	defer s.PopFrame()
	return sc.Body.Execute(p, s)
}
