package termination

import (
	"math"

	"github.com/mahf-opt/mahf/component"
	"github.com/mahf-opt/mahf/individual"
	"github.com/mahf-opt/mahf/lens"
	"github.com/mahf-opt/mahf/objective"
	"github.com/mahf-opt/mahf/population"
	"github.com/mahf-opt/mahf/problem"
	"github.com/mahf-opt/mahf/state"
)

// DistanceToOptGreaterThan stops the run once the best single-objective
// value comes within D of the problem's known optimum (if it implements
// problem.KnownOptimum). Against a problem without a known optimum, or a
// multi-objective one, it never stops the run.
type DistanceToOptGreaterThan[E individual.Encoding[E]] struct {
	component.Base[E]
	D        float64
	Minimize bool
}

// NewDistanceToOptGreaterThan returns the condition. d must be
// non-negative.
func NewDistanceToOptGreaterThan[E individual.Encoding[E]](d float64, minimize bool) (*DistanceToOptGreaterThan[E], error) {
	if d < 0 {
		return nil, parameterf("distance threshold must be >= 0, got %v", d)
	}
	return &DistanceToOptGreaterThan[E]{D: d, Minimize: minimize}, nil
}

func (*DistanceToOptGreaterThan[E]) Require(_ problem.Interface[E], r *component.Requirements) {
	component.Require[*population.Stack[E]](r, "termination.DistanceToOptGreaterThan")
}

func (c *DistanceToOptGreaterThan[E]) Evaluate(p problem.Interface[E], s *state.State) (bool, error) {
	opter, ok := p.(problem.KnownOptimum)
	if !ok {
		return true, nil
	}
	opt, has := opter.KnownOptimum()
	if !has {
		return true, nil
	}
	best, err := lens.BestObjective[E](c.Minimize).Extract(p, s)
	if err != nil {
		return false, err
	}
	if best == nil {
		return true, nil
	}
	dist, ok := singleDistance(best, opt)
	if !ok {
		return true, nil
	}
	return dist > c.D, nil
}

func singleDistance(a, b objective.Value) (float64, bool) {
	av, ok := a.(objective.Single)
	if !ok {
		return 0, false
	}
	bv, ok := b.(objective.Single)
	if !ok {
		return 0, false
	}
	return math.Abs(av.Value() - bv.Value()), true
}
