package component

import (
	"github.com/mahf-opt/mahf/individual"
	"github.com/mahf-opt/mahf/problem"
	"github.com/mahf-opt/mahf/state"
)

// Preflight runs root.Init once, then walks root.Require to collect every
// declared requirement and validates all of them against s in a single
// pass, returning an aggregated *RequirementError rather than failing on
// the first component whose dependency is missing (spec.md §4.2).
func Preflight[E individual.Encoding[E]](root Component[E], p problem.Interface[E], s *state.State) error {
	if err := root.Init(p, s); err != nil {
		return err
	}
	var r Requirements
	root.Require(p, &r)
	return r.Validate(s)
}
