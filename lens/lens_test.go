package lens_test

import (
	"testing"

	"github.com/mahf-opt/mahf/individual"
	"github.com/mahf-opt/mahf/internal/testutil"
	"github.com/mahf-opt/mahf/lens"
	"github.com/mahf-opt/mahf/objective"
	"github.com/mahf-opt/mahf/population"
	"github.com/mahf-opt/mahf/problem"
	"github.com/mahf-opt/mahf/state"
	"github.com/stretchr/testify/require"
)

func fixtureStack(t *testing.T) *state.State {
	t.Helper()
	s := state.New()
	stack := population.NewStack[testutil.Vec]()

	mk := func(v float64) individual.Individual[testutil.Vec] {
		obj, err := objective.NewSingle(v)
		require.NoError(t, err)
		return individual.NewEvaluated[testutil.Vec](testutil.Vec{v}, obj)
	}
	stack.Push(population.Population[testutil.Vec]{mk(3), mk(1), mk(2)})
	state.Insert(s, stack)
	return s
}

func TestPopulationSizeLens(t *testing.T) {
	s := fixtureStack(t)
	l := lens.PopulationSize[testutil.Vec]()
	n, err := l.Extract(nil, s)
	require.NoError(t, err)
	require.Equal(t, 3, n)
}

func TestBestObjectiveLensMinimize(t *testing.T) {
	s := fixtureStack(t)
	l := lens.BestObjective[testutil.Vec](true)
	best, err := l.Extract(nil, s)
	require.NoError(t, err)
	single, ok := best.(objective.Single)
	require.True(t, ok)
	require.Equal(t, 1.0, single.Value())
}

func TestBestSolutionLensMinimize(t *testing.T) {
	s := fixtureStack(t)
	l := lens.BestSolution[testutil.Vec](true)
	sol, err := l.Extract(nil, s)
	require.NoError(t, err)
	require.Equal(t, testutil.Vec{1}, sol)
}

func TestValueLens(t *testing.T) {
	s := state.New()
	p := testutil.NewSphere(2, 5)
	l := lens.Value[testutil.Vec, string]("problem-name", func(p problem.Interface[testutil.Vec], _ *state.State) (string, error) {
		return p.Name(), nil
	})
	name, err := l.Extract(p, s)
	require.NoError(t, err)
	require.Equal(t, "Sphere", name)
}
