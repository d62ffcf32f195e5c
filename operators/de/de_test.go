package de_test

import (
	"testing"

	"github.com/mahf-opt/mahf/component"
	"github.com/mahf-opt/mahf/counter"
	"github.com/mahf-opt/mahf/individual"
	"github.com/mahf-opt/mahf/internal/testutil"
	"github.com/mahf-opt/mahf/objective"
	"github.com/mahf-opt/mahf/operators/de"
	"github.com/mahf-opt/mahf/population"
	"github.com/mahf-opt/mahf/rng"
	"github.com/mahf-opt/mahf/state"
	"github.com/stretchr/testify/require"
)

func evaluated(t *testing.T, values ...[]float64) population.Population[testutil.Vec] {
	t.Helper()
	pop := make(population.Population[testutil.Vec], len(values))
	for i, v := range values {
		obj, err := objective.NewSingle(sumSquares(v))
		require.NoError(t, err)
		pop[i] = individual.NewEvaluated[testutil.Vec](testutil.Vec(v), obj)
	}
	return pop
}

func sumSquares(v []float64) float64 {
	sum := 0.0
	for _, x := range v {
		sum += x * x
	}
	return sum
}

func seeded(t *testing.T, pop population.Population[testutil.Vec]) *state.State {
	t.Helper()
	s := state.New()
	state.Insert(s, rng.New(5))
	stack := population.NewStack[testutil.Vec]()
	stack.Push(pop)
	state.Insert(s, stack)
	state.Insert(s, &counter.Iterations{})
	return s
}

func top(t *testing.T, s *state.State) population.Population[testutil.Vec] {
	t.Helper()
	g, err := state.Borrow[*population.Stack[testutil.Vec]](s)
	require.NoError(t, err)
	defer g.Release()
	p, err := (*g.Get()).Current()
	require.NoError(t, err)
	return p
}

func TestInitializeSHADEHistorySeedsHalfEverySlot(t *testing.T) {
	s := state.New()
	op, err := de.NewInitializeSHADEHistory[testutil.Vec](5)
	require.NoError(t, err)
	p := testutil.NewSphere(2, 5)
	require.NoError(t, op.Execute(p, s))

	fg, err := state.Borrow[*de.SHADEHistoryF](s)
	require.NoError(t, err)
	defer fg.Release()
	for _, v := range (*fg.Get()).Values {
		require.Equal(t, 0.5, v)
	}
}

func TestNewInitializeSHADEHistoryRejectsNonPositiveH(t *testing.T) {
	_, err := de.NewInitializeSHADEHistory[testutil.Vec](0)
	require.ErrorIs(t, err, de.ErrParameter)
}

func withHistory(t *testing.T, s *state.State, h int) {
	t.Helper()
	p := testutil.NewSphere(2, 5)
	op, err := de.NewInitializeSHADEHistory[testutil.Vec](h)
	require.NoError(t, err)
	require.NoError(t, op.Execute(p, s))
}

func TestSampleParametersProducesOnePairPerIndividual(t *testing.T) {
	pop := evaluated(t, []float64{1, 1}, []float64{2, 2}, []float64{3, 3})
	s := seeded(t, pop)
	withHistory(t, s, 5)

	p := testutil.NewSphere(2, 5)
	op := de.NewSampleParameters[testutil.Vec]()
	require.NoError(t, component.Preflight[testutil.Vec](op, p, s))
	require.NoError(t, op.Execute(p, s))

	fg, err := state.Borrow[*de.SHADEParamF](s)
	require.NoError(t, err)
	defer fg.Release()
	fValues := (*fg.Get()).Values
	require.Len(t, fValues, 3)
	for _, f := range fValues {
		require.Greater(t, f, 0.0)
		require.LessOrEqual(t, f, 1.0)
	}

	crg, err := state.Borrow[*de.SHADEParamCR](s)
	require.NoError(t, err)
	defer crg.Release()
	crValues := (*crg.Get()).Values
	require.Len(t, crValues, 3)
	for _, cr := range crValues {
		require.GreaterOrEqual(t, cr, 0.0)
		require.LessOrEqual(t, cr, 1.0)
	}

	require.Equal(t, 3, len(top(t, s)))
}

func TestSHADEMutationRejectsUnalignedParamCount(t *testing.T) {
	pop := evaluated(t,
		[]float64{1, 1}, []float64{2, 2}, []float64{0, 0},
		[]float64{1, 0}, []float64{0, 1}, []float64{1, 1},
	)
	s := seeded(t, pop)
	state.Insert(s, &de.SHADEParamF{Values: []float64{0.5}})

	op, err := de.NewSHADEMutation[testutil.Vec](1)
	require.NoError(t, err)
	err = op.Execute(testutil.NewSphere(2, 5), s)
	require.ErrorIs(t, err, population.ErrStackLayout)
	require.Equal(t, 6, len(top(t, s)))
}

func TestSHADEAdaptationUpdateKeepsBetterAtIndex(t *testing.T) {
	parents := evaluated(t, []float64{3, 0}, []float64{0, 0})
	offspring := evaluated(t, []float64{0, 0}, []float64{5, 0})

	s := state.New()
	state.Insert(s, rng.New(1))
	stack := population.NewStack[testutil.Vec]()
	stack.Push(parents)
	stack.Push(offspring)
	state.Insert(s, stack)
	state.Insert(s, &counter.Iterations{})
	withHistory(t, s, 5)
	state.Insert(s, &de.SHADEParamF{Values: []float64{0.6, 0.6}})
	state.Insert(s, &de.SHADEParamCR{Values: []float64{0.9, 0.9}})

	op := de.NewSHADEAdaptationUpdate[testutil.Vec](true)
	require.NoError(t, component.Preflight[testutil.Vec](op, testutil.NewSphere(2, 5), s))
	require.NoError(t, op.Execute(testutil.NewSphere(2, 5), s))

	survivors := top(t, s)
	require.Equal(t, 2, len(survivors))
	require.Equal(t, testutil.Vec{0, 0}, survivors[0].Solution())
	require.Equal(t, testutil.Vec{0, 0}, survivors[1].Solution())

	fg, err := state.Borrow[*de.SHADEHistoryF](s)
	require.NoError(t, err)
	defer fg.Release()
	require.InDelta(t, 0.6, (*fg.Get()).Values[0], 1e-9)
}

func TestSHADEAdaptationUpdateCarriesPreviousSlotWhenNoImprovement(t *testing.T) {
	parents := evaluated(t, []float64{0, 0})
	offspring := evaluated(t, []float64{5, 5})

	s := state.New()
	state.Insert(s, rng.New(1))
	stack := population.NewStack[testutil.Vec]()
	stack.Push(parents)
	stack.Push(offspring)
	state.Insert(s, stack)
	state.Insert(s, &counter.Iterations{})
	withHistory(t, s, 5)
	state.Insert(s, &de.SHADEParamF{Values: []float64{0.6}})
	state.Insert(s, &de.SHADEParamCR{Values: []float64{0.9}})

	// iterations=0 -> k=0, prev slot = (0-1+5)%5 = 4: seed slot 4 so the
	// no-improvement branch's carry-forward is observable at slot 0.
	fg, err := state.BorrowMut[*de.SHADEHistoryF](s)
	require.NoError(t, err)
	(*fg.Get()).Values[4] = 0.42
	fg.Release()

	op := de.NewSHADEAdaptationUpdate[testutil.Vec](true)
	require.NoError(t, op.Execute(testutil.NewSphere(2, 5), s))

	fg2, err := state.Borrow[*de.SHADEHistoryF](s)
	require.NoError(t, err)
	defer fg2.Release()
	require.InDelta(t, 0.42, (*fg2.Get()).Values[0], 1e-9)
}
