package evaluator

import (
	"golang.org/x/sync/errgroup"

	"github.com/mahf-opt/mahf/component"
	"github.com/mahf-opt/mahf/counter"
	"github.com/mahf-opt/mahf/individual"
	"github.com/mahf-opt/mahf/population"
	"github.com/mahf-opt/mahf/problem"
	"github.com/mahf-opt/mahf/state"
)

func requireStack[E individual.Encoding[E]](r *component.Requirements, owner string) {
	component.Require[*population.Stack[E]](r, owner)
	component.Require[*counter.Evaluations](r, owner)
}

func ensureCounter(s *state.State) {
	if !state.Has[*counter.Evaluations](s) {
		state.Insert(s, &counter.Evaluations{})
	}
}

func addEvaluations(s *state.State, n int) error {
	if n == 0 {
		return nil
	}
	g, err := state.BorrowMut[*counter.Evaluations](s)
	if err != nil {
		return err
	}
	(*g.Get()).Add(uint64(n))
	g.Release()
	return nil
}

// Sequential evaluates every unevaluated individual of the top population
// in order.
type Sequential[E individual.Encoding[E]] struct {
	component.Base[E]
}

// NewSequential returns a Sequential evaluator.
func NewSequential[E individual.Encoding[E]]() *Sequential[E] { return &Sequential[E]{} }

func (*Sequential[E]) Init(_ problem.Interface[E], s *state.State) error {
	ensureCounter(s)
	return nil
}

func (*Sequential[E]) Require(_ problem.Interface[E], r *component.Requirements) {
	requireStack[E](r, "evaluator.Sequential")
}

func (*Sequential[E]) Execute(p problem.Interface[E], s *state.State) error {
	guard, err := state.BorrowMut[*population.Stack[E]](s)
	if err != nil {
		return err
	}
	stack := *guard.Get()
	pop, err := stack.Current()
	if err != nil {
		guard.Release()
		return err
	}
	evaluated := 0
	for i := range pop {
		if pop[i].Evaluated() {
			continue
		}
		obj, err := p.Evaluate(pop[i].Solution())
		if err != nil {
			guard.Release()
			return err
		}
		pop[i].SetObjective(obj)
		evaluated++
	}
	guard.Release()
	return addEvaluations(s, evaluated)
}

// Parallel evaluates every unevaluated individual of the top population by
// fanning out over a bounded worker pool. Each worker writes back only
// the objective of the individual it was handed; the registry is not
// touched while workers are running (spec.md §5).
type Parallel[E individual.Encoding[E]] struct {
	component.Base[E]
	Workers int
}

// NewParallel returns a Parallel evaluator bounded to workers concurrent
// Problem.Evaluate calls. workers must be positive.
func NewParallel[E individual.Encoding[E]](workers int) (*Parallel[E], error) {
	if workers <= 0 {
		return nil, parameterf("workers must be positive, got %d", workers)
	}
	return &Parallel[E]{Workers: workers}, nil
}

func (*Parallel[E]) Init(_ problem.Interface[E], s *state.State) error {
	ensureCounter(s)
	return nil
}

func (*Parallel[E]) Require(_ problem.Interface[E], r *component.Requirements) {
	requireStack[E](r, "evaluator.Parallel")
}

func (pe *Parallel[E]) Execute(p problem.Interface[E], s *state.State) error {
	guard, err := state.BorrowMut[*population.Stack[E]](s)
	if err != nil {
		return err
	}
	stack := *guard.Get()
	pop, err := stack.Current()
	if err != nil {
		guard.Release()
		return err
	}

	g := new(errgroup.Group)
	g.SetLimit(pe.Workers)
	evaluated := 0
	for i := range pop {
		if pop[i].Evaluated() {
			continue
		}
		i := i
		evaluated++
		g.Go(func() error {
			obj, err := p.Evaluate(pop[i].Solution())
			if err != nil {
				return err
			}
			pop[i].SetObjective(obj)
			return nil
		})
	}
	waitErr := g.Wait()
	guard.Release()
	if waitErr != nil {
		return waitErr
	}
	return addEvaluations(s, evaluated)
}
