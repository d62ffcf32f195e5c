package de

import (
	"github.com/mahf-opt/mahf/component"
	"github.com/mahf-opt/mahf/individual"
	"github.com/mahf-opt/mahf/problem"
	"github.com/mahf-opt/mahf/state"
)

// InitializeSHADEHistory seeds both adaptation histories at length H,
// every slot 0.5. Run once, before the first SampleParameters.
type InitializeSHADEHistory[E individual.Encoding[E]] struct {
	component.Base[E]
	H int
}

// NewInitializeSHADEHistory returns an InitializeSHADEHistory. h must be
// positive.
func NewInitializeSHADEHistory[E individual.Encoding[E]](h int) (*InitializeSHADEHistory[E], error) {
	if h <= 0 {
		return nil, parameterf("h must be positive, got %d", h)
	}
	return &InitializeSHADEHistory[E]{H: h}, nil
}

func (*InitializeSHADEHistory[E]) Require(_ problem.Interface[E], _ *component.Requirements) {}

func (c *InitializeSHADEHistory[E]) Execute(_ problem.Interface[E], s *state.State) error {
	f, cr := NewSHADEHistory(c.H)
	state.Insert(s, f)
	state.Insert(s, cr)
	return nil
}
