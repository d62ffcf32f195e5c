package component

import (
	"github.com/mahf-opt/mahf/individual"
	"github.com/mahf-opt/mahf/problem"
	"github.com/mahf-opt/mahf/state"
)

// Branch runs Then if Condition evaluates true, otherwise Else. Else may
// be nil, in which case a false Condition is a no-op (spec.md §4.2).
type Branch[E individual.Encoding[E]] struct {
	Condition Condition[E]
	Then      Component[E]
	Else      Component[E]
}

// NewBranch returns a Branch; els may be nil.
func NewBranch[E individual.Encoding[E]](cond Condition[E], then, els Component[E]) *Branch[E] {
	return &Branch[E]{Condition: cond, Then: then, Else: els}
}

func (b *Branch[E]) Init(p problem.Interface[E], s *state.State) error {
	if err := b.Condition.Init(p, s); err != nil {
		return err
	}
	if err := b.Then.Init(p, s); err != nil {
		return err
	}
	if b.Else != nil {
		return b.Else.Init(p, s)
	}
	return nil
}

func (b *Branch[E]) Require(p problem.Interface[E], r *Requirements) {
	b.Condition.Require(p, r)
	b.Then.Require(p, r)
	if b.Else != nil {
		b.Else.Require(p, r)
	}
}

func (b *Branch[E]) Execute(p problem.Interface[E], s *state.State) error {
	ok, err := b.Condition.Evaluate(p, s)
	if err != nil {
		return err
	}
	if ok {
		return b.Then.Execute(p, s)
	}
	if b.Else != nil {
		return b.Else.Execute(p, s)
	}
	return nil
}
