package evaluator_test

import (
	"testing"

	"github.com/mahf-opt/mahf/component"
	"github.com/mahf-opt/mahf/counter"
	"github.com/mahf-opt/mahf/evaluator"
	"github.com/mahf-opt/mahf/individual"
	"github.com/mahf-opt/mahf/internal/testutil"
	"github.com/mahf-opt/mahf/population"
	"github.com/mahf-opt/mahf/state"
	"github.com/stretchr/testify/require"
)

func freshStack(s *state.State) {
	stack := population.NewStack[testutil.Vec]()
	stack.Push(population.Population[testutil.Vec]{
		individual.New[testutil.Vec](testutil.Vec{1, 2}),
		individual.New[testutil.Vec](testutil.Vec{3, 4}),
		individual.New[testutil.Vec](testutil.Vec{0, 0}),
	})
	state.Insert(s, stack)
}

func TestSequentialEvaluatesAllAndCounts(t *testing.T) {
	s := state.New()
	freshStack(s)
	p := testutil.NewSphere(2, 10)

	ev := evaluator.NewSequential[testutil.Vec]()
	require.NoError(t, component.Preflight[testutil.Vec](ev, p, s))
	require.NoError(t, ev.Execute(p, s))

	guard, err := state.Borrow[*population.Stack[testutil.Vec]](s)
	require.NoError(t, err)
	pop, err := (*guard.Get()).Current()
	require.NoError(t, err)
	guard.Release()
	require.True(t, pop.Evaluated())

	n, err := state.GetValue[uint64, *counter.Evaluations](s)
	require.NoError(t, err)
	require.Equal(t, uint64(3), n)
}

func TestSequentialSkipsAlreadyEvaluated(t *testing.T) {
	s := state.New()
	stack := population.NewStack[testutil.Vec]()
	obj, err := (&testutil.Sphere{Dim: 2, Lo: -1, Hi: 1}).Evaluate(testutil.Vec{0, 0})
	require.NoError(t, err)
	stack.Push(population.Population[testutil.Vec]{
		individual.NewEvaluated[testutil.Vec](testutil.Vec{0, 0}, obj),
		individual.New[testutil.Vec](testutil.Vec{5, 5}),
	})
	state.Insert(s, stack)
	p := testutil.NewSphere(2, 10)

	ev := evaluator.NewSequential[testutil.Vec]()
	require.NoError(t, component.Preflight[testutil.Vec](ev, p, s))
	require.NoError(t, ev.Execute(p, s))

	n, err := state.GetValue[uint64, *counter.Evaluations](s)
	require.NoError(t, err)
	require.Equal(t, uint64(1), n)
}

func TestParallelEvaluatesAll(t *testing.T) {
	s := state.New()
	freshStack(s)
	p := testutil.NewSphere(2, 10)

	ev, err := evaluator.NewParallel[testutil.Vec](4)
	require.NoError(t, err)
	require.NoError(t, component.Preflight[testutil.Vec](ev, p, s))
	require.NoError(t, ev.Execute(p, s))

	guard, err := state.Borrow[*population.Stack[testutil.Vec]](s)
	require.NoError(t, err)
	pop, err := (*guard.Get()).Current()
	require.NoError(t, err)
	guard.Release()
	require.True(t, pop.Evaluated())

	n, err := state.GetValue[uint64, *counter.Evaluations](s)
	require.NoError(t, err)
	require.Equal(t, uint64(3), n)
}

func TestNewParallelRejectsNonPositiveWorkers(t *testing.T) {
	_, err := evaluator.NewParallel[testutil.Vec](0)
	require.ErrorIs(t, err, evaluator.ErrParameter)
}
