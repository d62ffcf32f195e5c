package replacement_test

import (
	"testing"

	"github.com/mahf-opt/mahf/component"
	"github.com/mahf-opt/mahf/individual"
	"github.com/mahf-opt/mahf/internal/testutil"
	"github.com/mahf-opt/mahf/objective"
	"github.com/mahf-opt/mahf/operators/replacement"
	"github.com/mahf-opt/mahf/population"
	"github.com/mahf-opt/mahf/rng"
	"github.com/mahf-opt/mahf/state"
	"github.com/stretchr/testify/require"
)

func seeded(t *testing.T, parentValues, offspringValues []float64) *state.State {
	t.Helper()
	s := state.New()
	state.Insert(s, rng.New(4))
	stack := population.NewStack[testutil.Vec]()
	parents := make(population.Population[testutil.Vec], len(parentValues))
	for i, v := range parentValues {
		obj, err := objective.NewSingle(v)
		require.NoError(t, err)
		parents[i] = individual.NewEvaluated[testutil.Vec](testutil.Vec{v}, obj)
	}
	offspring := make(population.Population[testutil.Vec], len(offspringValues))
	for i, v := range offspringValues {
		obj, err := objective.NewSingle(v)
		require.NoError(t, err)
		offspring[i] = individual.NewEvaluated[testutil.Vec](testutil.Vec{v}, obj)
	}
	stack.Push(parents)
	stack.Push(offspring)
	state.Insert(s, stack)
	return s
}

func top(t *testing.T, s *state.State) population.Population[testutil.Vec] {
	t.Helper()
	g, err := state.Borrow[*population.Stack[testutil.Vec]](s)
	require.NoError(t, err)
	defer g.Release()
	pop, err := (*g.Get()).Current()
	require.NoError(t, err)
	return pop
}

func values(pop population.Population[testutil.Vec]) []float64 {
	out := make([]float64, len(pop))
	for i, ind := range pop {
		obj, _ := ind.Objective()
		out[i] = obj.(objective.Single).Value()
	}
	return out
}

func TestDiscardOffspringKeepsParents(t *testing.T) {
	s := seeded(t, []float64{1, 2}, []float64{9, 9})
	p := testutil.NewSphere(1, 5)
	op := replacement.NewDiscardOffspring[testutil.Vec]()
	require.NoError(t, component.Preflight[testutil.Vec](op, p, s))
	require.NoError(t, op.Execute(p, s))
	require.ElementsMatch(t, []float64{1, 2}, values(top(t, s)))
}

func TestGenerationalTruncatesOffspring(t *testing.T) {
	s := seeded(t, []float64{1, 2}, []float64{3, 4, 5})
	p := testutil.NewSphere(1, 5)
	op, err := replacement.NewGenerational[testutil.Vec](2)
	require.NoError(t, err)
	require.NoError(t, component.Preflight[testutil.Vec](op, p, s))
	require.NoError(t, op.Execute(p, s))
	require.Equal(t, []float64{3, 4}, values(top(t, s)))
}

func TestGenerationalErrorsWhenOffspringTooFew(t *testing.T) {
	s := seeded(t, []float64{1, 2}, []float64{3})
	p := testutil.NewSphere(1, 5)
	op, err := replacement.NewGenerational[testutil.Vec](2)
	require.NoError(t, err)
	require.NoError(t, component.Preflight[testutil.Vec](op, p, s))
	err = op.Execute(p, s)
	require.ErrorIs(t, err, population.ErrStackLayout)
}

func TestMergeConcatenates(t *testing.T) {
	s := seeded(t, []float64{1, 2}, []float64{3, 4})
	p := testutil.NewSphere(1, 5)
	op := replacement.NewMerge[testutil.Vec]()
	require.NoError(t, component.Preflight[testutil.Vec](op, p, s))
	require.NoError(t, op.Execute(p, s))
	require.ElementsMatch(t, []float64{1, 2, 3, 4}, values(top(t, s)))
}

func TestMuPlusLambdaKeepsFittestOfUnion(t *testing.T) {
	s := seeded(t, []float64{5, 1}, []float64{9, 2})
	p := testutil.NewSphere(1, 5)
	op, err := replacement.NewMuPlusLambda[testutil.Vec](2, true)
	require.NoError(t, err)
	require.NoError(t, component.Preflight[testutil.Vec](op, p, s))
	require.NoError(t, op.Execute(p, s))
	require.ElementsMatch(t, []float64{1, 2}, values(top(t, s)))
}

func TestMuCommaLambdaKeepsFittestOfOffspringOnly(t *testing.T) {
	s := seeded(t, []float64{0, 0}, []float64{9, 2, 3})
	p := testutil.NewSphere(1, 5)
	op, err := replacement.NewMuCommaLambda[testutil.Vec](2, true)
	require.NoError(t, err)
	require.NoError(t, component.Preflight[testutil.Vec](op, p, s))
	require.NoError(t, op.Execute(p, s))
	require.ElementsMatch(t, []float64{2, 3}, values(top(t, s)))
}

func TestRandomReplacementKeepsMaxIndividuals(t *testing.T) {
	s := seeded(t, []float64{1, 2}, []float64{3, 4})
	p := testutil.NewSphere(1, 5)
	op, err := replacement.NewRandomReplacement[testutil.Vec](3)
	require.NoError(t, err)
	require.NoError(t, component.Preflight[testutil.Vec](op, p, s))
	require.NoError(t, op.Execute(p, s))
	require.Len(t, top(t, s), 3)
}

func TestKeepBetterAtIndexPicksPerIndexMin(t *testing.T) {
	s := seeded(t, []float64{5, 1}, []float64{2, 9})
	p := testutil.NewSphere(1, 5)
	op := replacement.NewKeepBetterAtIndex[testutil.Vec](true)
	require.NoError(t, component.Preflight[testutil.Vec](op, p, s))
	require.NoError(t, op.Execute(p, s))
	require.Equal(t, []float64{2, 1}, values(top(t, s)))
}

func TestKeepBetterAtIndexRejectsUnequalCardinality(t *testing.T) {
	s := seeded(t, []float64{5, 1, 3}, []float64{2, 9})
	p := testutil.NewSphere(1, 5)
	op := replacement.NewKeepBetterAtIndex[testutil.Vec](true)
	require.NoError(t, component.Preflight[testutil.Vec](op, p, s))
	err := op.Execute(p, s)
	require.ErrorIs(t, err, population.ErrStackLayout)
}
