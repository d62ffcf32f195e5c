package termination

import (
	"github.com/mahf-opt/mahf/component"
	"github.com/mahf-opt/mahf/individual"
	"github.com/mahf-opt/mahf/lens"
	"github.com/mahf-opt/mahf/population"
	"github.com/mahf-opt/mahf/problem"
	"github.com/mahf-opt/mahf/state"
)

// TargetHit stops the run once the problem (if it implements
// problem.TargetHitter) reports the best objective has reached its
// success threshold. Against a problem without a target, it never stops
// the run (Evaluate always true).
type TargetHit[E individual.Encoding[E]] struct {
	component.Base[E]
	Minimize bool
}

// NewTargetHit returns a TargetHit condition.
func NewTargetHit[E individual.Encoding[E]](minimize bool) *TargetHit[E] {
	return &TargetHit[E]{Minimize: minimize}
}

func (*TargetHit[E]) Require(_ problem.Interface[E], r *component.Requirements) {
	component.Require[*population.Stack[E]](r, "termination.TargetHit")
}

func (t *TargetHit[E]) Evaluate(p problem.Interface[E], s *state.State) (bool, error) {
	hitter, ok := p.(problem.TargetHitter)
	if !ok {
		return true, nil
	}
	best, err := lens.BestObjective[E](t.Minimize).Extract(p, s)
	if err != nil {
		return false, err
	}
	if best == nil {
		return true, nil
	}
	return !hitter.TargetHit(best), nil
}

// Progress reports 0 while running, 1 once the target has been hit.
func (t *TargetHit[E]) Progress(p problem.Interface[E], s *state.State) (float64, error) {
	ok, err := t.Evaluate(p, s)
	if err != nil {
		return 0, err
	}
	if ok {
		return 0, nil
	}
	return 1, nil
}
