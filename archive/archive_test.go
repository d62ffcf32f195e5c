package archive_test

import (
	"testing"

	"github.com/mahf-opt/mahf/archive"
	"github.com/mahf-opt/mahf/component"
	"github.com/mahf-opt/mahf/individual"
	"github.com/mahf-opt/mahf/internal/testutil"
	"github.com/mahf-opt/mahf/objective"
	"github.com/mahf-opt/mahf/population"
	"github.com/mahf-opt/mahf/state"
	"github.com/stretchr/testify/require"
)

func evaluated(t *testing.T, values ...[]float64) population.Population[testutil.Vec] {
	t.Helper()
	pop := make(population.Population[testutil.Vec], len(values))
	for i, v := range values {
		sum := 0.0
		for _, x := range v {
			sum += x * x
		}
		obj, err := objective.NewSingle(sum)
		require.NoError(t, err)
		pop[i] = individual.NewEvaluated[testutil.Vec](testutil.Vec(v), obj)
	}
	return pop
}

func seeded(t *testing.T, pop population.Population[testutil.Vec]) *state.State {
	t.Helper()
	s := state.New()
	stack := population.NewStack[testutil.Vec]()
	stack.Push(pop)
	state.Insert(s, stack)
	return s
}

func TestTrackBestIndividualAppendsOnePerExecute(t *testing.T) {
	s := seeded(t, evaluated(t, []float64{2, 0}, []float64{1, 0}, []float64{3, 0}))
	p := testutil.NewSphere(2, 5)

	op := archive.NewTrackBestIndividual[testutil.Vec](true)
	require.NoError(t, component.Preflight[testutil.Vec](op, p, s))
	require.NoError(t, op.Execute(p, s))
	require.NoError(t, op.Execute(p, s))

	g, err := state.Borrow[archive.BestIndividualsArchive[testutil.Vec]](s)
	require.NoError(t, err)
	defer g.Release()
	a := g.Get()
	require.Len(t, a.Individuals(), 2)
	for _, ind := range a.Individuals() {
		obj, ok := ind.Objective()
		require.True(t, ok)
		single, ok := obj.(objective.Single)
		require.True(t, ok)
		require.Equal(t, 1.0, single.Value())
	}
}

func TestTrackIntermediatePopulationOverwritesSnapshot(t *testing.T) {
	s := seeded(t, evaluated(t, []float64{1, 1}))
	p := testutil.NewSphere(2, 5)

	op := archive.NewTrackIntermediatePopulation[testutil.Vec]()
	require.NoError(t, component.Preflight[testutil.Vec](op, p, s))
	require.NoError(t, op.Execute(p, s))

	g, err := state.Borrow[*population.Stack[testutil.Vec]](s)
	require.NoError(t, err)
	require.NoError(t, (*g.Get()).Replace(evaluated(t, []float64{2, 2})))
	g.Release()
	require.NoError(t, op.Execute(p, s))

	ga, err := state.Borrow[archive.IntermediateArchive[testutil.Vec]](s)
	require.NoError(t, err)
	defer ga.Release()
	pop := ga.Get().Population()
	require.Len(t, pop, 1)
	require.Equal(t, testutil.Vec{2, 2}, pop[0].Solution())
}
