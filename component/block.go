package component

import (
	"github.com/mahf-opt/mahf/individual"
	"github.com/mahf-opt/mahf/problem"
	"github.com/mahf-opt/mahf/state"
)

// Block runs a fixed sequence of components, in order, each call to
// Execute. It is the simplest composite: no branching, no looping, just
// sequencing (spec.md §4.2).
type Block[E individual.Encoding[E]] struct {
	Components []Component[E]
}

// NewBlock returns a Block running components in the given order.
func NewBlock[E individual.Encoding[E]](components ...Component[E]) *Block[E] {
	return &Block[E]{Components: components}
}

func (b *Block[E]) Init(p problem.Interface[E], s *state.State) error {
	for _, c := range b.Components {
		if err := c.Init(p, s); err != nil {
			return err
		}
	}
	return nil
}

func (b *Block[E]) Require(p problem.Interface[E], r *Requirements) {
	for _, c := range b.Components {
		c.Require(p, r)
	}
}

func (b *Block[E]) Execute(p problem.Interface[E], s *state.State) error {
	for _, c := range b.Components {
		if err := c.Execute(p, s); err != nil {
			return err
		}
	}
	return nil
}
