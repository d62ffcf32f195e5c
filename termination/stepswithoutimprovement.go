package termination

import (
	"github.com/google/uuid"

	"github.com/mahf-opt/mahf/component"
	"github.com/mahf-opt/mahf/individual"
	"github.com/mahf-opt/mahf/lens"
	"github.com/mahf-opt/mahf/objective"
	"github.com/mahf-opt/mahf/population"
	"github.com/mahf-opt/mahf/problem"
	"github.com/mahf-opt/mahf/state"
)

type stepsTracker struct {
	best  objective.Value
	steps uint64
}

// StepsWithoutImprovement stops the run once N consecutive iterations
// have passed without the best objective (by Minimize's direction)
// improving. Each instance owns a private, uuid-namespaced tracker cell
// so two instances never collide in the registry (spec.md §9 PhantomId).
type StepsWithoutImprovement[E individual.Encoding[E]] struct {
	component.Base[E]
	N        uint64
	Minimize bool
	id       uuid.UUID
}

// NewStepsWithoutImprovement returns a StepsWithoutImprovement condition.
// n must be positive.
func NewStepsWithoutImprovement[E individual.Encoding[E]](n uint64, minimize bool) (*StepsWithoutImprovement[E], error) {
	if n == 0 {
		return nil, parameterf("n must be positive, got %d", n)
	}
	return &StepsWithoutImprovement[E]{N: n, Minimize: minimize, id: uuid.New()}, nil
}

func (c *StepsWithoutImprovement[E]) Init(_ problem.Interface[E], s *state.State) error {
	if !state.Has[*stepsTracker](s, c.id) {
		state.Insert(s, &stepsTracker{}, c.id)
	}
	return nil
}

func (c *StepsWithoutImprovement[E]) Require(_ problem.Interface[E], r *component.Requirements) {
	component.Require[*population.Stack[E]](r, "termination.StepsWithoutImprovement")
	component.Require[*stepsTracker](r, "termination.StepsWithoutImprovement", c.id)
}

func (c *StepsWithoutImprovement[E]) Evaluate(p problem.Interface[E], s *state.State) (bool, error) {
	best, err := lens.BestObjective[E](c.Minimize).Extract(p, s)
	if err != nil {
		return false, err
	}

	guard, err := state.BorrowMut[*stepsTracker](s, c.id)
	if err != nil {
		return false, err
	}
	defer guard.Release()
	tracker := *guard.Get()

	improved := tracker.best == nil && best != nil
	if !improved && tracker.best != nil && best != nil {
		ord, ok := best.Compare(tracker.best)
		if ok {
			if c.Minimize {
				improved = ord == objective.Less
			} else {
				improved = ord == objective.Greater
			}
		}
	}

	if improved {
		tracker.best = best
		tracker.steps = 0
	} else {
		tracker.steps++
	}
	return tracker.steps < c.N, nil
}

// Progress returns min(1, steps/N).
func (c *StepsWithoutImprovement[E]) Progress(s *state.State) (float64, error) {
	guard, err := state.Borrow[*stepsTracker](s, c.id)
	if err != nil {
		return 0, err
	}
	defer guard.Release()
	tracker := guard.Get()
	ratio := float64(tracker.steps) / float64(c.N)
	if ratio > 1 {
		ratio = 1
	}
	return ratio, nil
}
