package recombination_test

import (
	"testing"

	"github.com/mahf-opt/mahf/component"
	"github.com/mahf-opt/mahf/individual"
	"github.com/mahf-opt/mahf/internal/testutil"
	"github.com/mahf-opt/mahf/operators/recombination"
	"github.com/mahf-opt/mahf/population"
	"github.com/mahf-opt/mahf/rng"
	"github.com/mahf-opt/mahf/state"
	"github.com/stretchr/testify/require"
)

func seededVec(t *testing.T, seed int64, vecs ...testutil.Vec) *state.State {
	t.Helper()
	s := state.New()
	state.Insert(s, rng.New(seed))
	stack := population.NewStack[testutil.Vec]()
	pop := make(population.Population[testutil.Vec], len(vecs))
	for i, v := range vecs {
		pop[i] = individual.New[testutil.Vec](v)
	}
	stack.Push(pop)
	state.Insert(s, stack)
	return s
}

func seededPerm(t *testing.T, seed int64, perms ...testutil.Perm) *state.State {
	t.Helper()
	s := state.New()
	state.Insert(s, rng.New(seed))
	stack := population.NewStack[testutil.Perm]()
	pop := make(population.Population[testutil.Perm], len(perms))
	for i, v := range perms {
		pop[i] = individual.New[testutil.Perm](v)
	}
	stack.Push(pop)
	state.Insert(s, stack)
	return s
}

func topVec(t *testing.T, s *state.State) population.Population[testutil.Vec] {
	t.Helper()
	g, err := state.Borrow[*population.Stack[testutil.Vec]](s)
	require.NoError(t, err)
	defer g.Release()
	pop, err := (*g.Get()).Current()
	require.NoError(t, err)
	return pop
}

func topPerm(t *testing.T, s *state.State) population.Population[testutil.Perm] {
	t.Helper()
	g, err := state.Borrow[*population.Stack[testutil.Perm]](s)
	require.NoError(t, err)
	defer g.Release()
	pop, err := (*g.Get()).Current()
	require.NoError(t, err)
	return pop
}

func TestNPointCrossoverKeepBothDoublesPopulation(t *testing.T) {
	s := seededVec(t, 1, testutil.Vec{0, 0, 0, 0}, testutil.Vec{1, 1, 1, 1})
	p := testutil.NewSphere(4, 5)
	op, err := recombination.NewNPointCrossover[testutil.Vec, float64](1.0, 2, true)
	require.NoError(t, err)
	require.NoError(t, component.Preflight[testutil.Vec](op, p, s))
	require.NoError(t, op.Execute(p, s))
	require.Len(t, topVec(t, s), 2)
}

func TestNPointCrossoverSingleChildWhenKeepBothFalse(t *testing.T) {
	s := seededVec(t, 1, testutil.Vec{0, 0, 0, 0}, testutil.Vec{1, 1, 1, 1})
	p := testutil.NewSphere(4, 5)
	op, err := recombination.NewNPointCrossover[testutil.Vec, float64](1.0, 2, false)
	require.NoError(t, err)
	require.NoError(t, component.Preflight[testutil.Vec](op, p, s))
	require.NoError(t, op.Execute(p, s))
	require.Len(t, topVec(t, s), 1)
}

func TestNewNPointCrossoverRejectsBadParameters(t *testing.T) {
	_, err := recombination.NewNPointCrossover[testutil.Vec, float64](2, 1, true)
	require.ErrorIs(t, err, recombination.ErrParameter)
	_, err = recombination.NewNPointCrossover[testutil.Vec, float64](0.5, 0, true)
	require.ErrorIs(t, err, recombination.ErrParameter)
}

func TestUniformCrossoverResetsObjective(t *testing.T) {
	s := seededVec(t, 3, testutil.Vec{0, 0}, testutil.Vec{1, 1})
	p := testutil.NewSphere(2, 5)
	op, err := recombination.NewUniformCrossover[testutil.Vec, float64](1.0, true)
	require.NoError(t, err)
	require.NoError(t, component.Preflight[testutil.Vec](op, p, s))
	require.NoError(t, op.Execute(p, s))

	for _, ind := range topVec(t, s) {
		_, ok := ind.Objective()
		require.False(t, ok)
	}
}

func TestArithmeticCrossoverBlendsWithinRange(t *testing.T) {
	s := seededVec(t, 5, testutil.Vec{0, 0}, testutil.Vec{10, 10})
	p := testutil.NewSphere(2, 20)
	op, err := recombination.NewArithmeticCrossover[testutil.Vec](1.0, true)
	require.NoError(t, err)
	require.NoError(t, component.Preflight[testutil.Vec](op, p, s))
	require.NoError(t, op.Execute(p, s))

	for _, ind := range topVec(t, s) {
		for _, x := range ind.Solution() {
			require.GreaterOrEqual(t, x, 0.0)
			require.LessOrEqual(t, x, 10.0)
		}
	}
}

func TestCycleCrossoverProducesValidPermutations(t *testing.T) {
	s := seededPerm(t, 2, testutil.Perm{0, 1, 2, 3, 4}, testutil.Perm{4, 3, 2, 1, 0})
	p := testutil.Zero[testutil.Perm]{}
	op, err := recombination.NewCycleCrossover[testutil.Perm, int](1.0)
	require.NoError(t, err)
	require.NoError(t, component.Preflight[testutil.Perm](op, p, s))
	require.NoError(t, op.Execute(p, s))

	pop := topPerm(t, s)
	require.Len(t, pop, 2)
	for _, ind := range pop {
		require.ElementsMatch(t, []int{0, 1, 2, 3, 4}, ind.Solution())
	}
}

func TestDEBinomialCrossoverKeepsAtLeastOneBaseCoordinate(t *testing.T) {
	s := state.New()
	state.Insert(s, rng.New(9))
	stack := population.NewStack[testutil.Vec]()
	base := population.Population[testutil.Vec]{individual.New[testutil.Vec](testutil.Vec{1, 1, 1})}
	donor := population.Population[testutil.Vec]{individual.New[testutil.Vec](testutil.Vec{9, 9, 9})}
	stack.Push(base)
	stack.Push(donor)
	state.Insert(s, stack)

	p := testutil.NewSphere(3, 10)
	op, err := recombination.NewDEBinomialCrossover[testutil.Vec](1.0)
	require.NoError(t, err)
	require.NoError(t, component.Preflight[testutil.Vec](op, p, s))
	require.NoError(t, op.Execute(p, s))

	trial := topVec(t, s)[0].Solution()
	hasBaseCoord := false
	for _, x := range trial {
		if x == 1 {
			hasBaseCoord = true
		}
	}
	require.True(t, hasBaseCoord)
}

func TestDEExponentialCrossoverKeepsAtLeastOneBaseCoordinate(t *testing.T) {
	s := state.New()
	state.Insert(s, rng.New(9))
	stack := population.NewStack[testutil.Vec]()
	base := population.Population[testutil.Vec]{individual.New[testutil.Vec](testutil.Vec{1, 1, 1})}
	donor := population.Population[testutil.Vec]{individual.New[testutil.Vec](testutil.Vec{9, 9, 9})}
	stack.Push(base)
	stack.Push(donor)
	state.Insert(s, stack)

	p := testutil.NewSphere(3, 10)
	op, err := recombination.NewDEExponentialCrossover[testutil.Vec](1.0)
	require.NoError(t, err)
	require.NoError(t, component.Preflight[testutil.Vec](op, p, s))
	require.NoError(t, op.Execute(p, s))

	trial := topVec(t, s)[0].Solution()
	hasBaseCoord := false
	for _, x := range trial {
		if x == 1 {
			hasBaseCoord = true
		}
	}
	require.True(t, hasBaseCoord)
}

func TestDECrossoverRejectsMismatchedCardinality(t *testing.T) {
	s := state.New()
	state.Insert(s, rng.New(9))
	stack := population.NewStack[testutil.Vec]()
	base := population.Population[testutil.Vec]{
		individual.New[testutil.Vec](testutil.Vec{1, 1}),
		individual.New[testutil.Vec](testutil.Vec{2, 2}),
	}
	donor := population.Population[testutil.Vec]{individual.New[testutil.Vec](testutil.Vec{9, 9})}
	stack.Push(base)
	stack.Push(donor)
	state.Insert(s, stack)

	p := testutil.NewSphere(2, 10)
	op, err := recombination.NewDEBinomialCrossover[testutil.Vec](1.0)
	require.NoError(t, err)
	require.NoError(t, component.Preflight[testutil.Vec](op, p, s))
	err = op.Execute(p, s)
	require.ErrorIs(t, err, population.ErrStackLayout)
}
