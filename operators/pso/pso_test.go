package pso_test

import (
	"testing"

	"github.com/mahf-opt/mahf/component"
	"github.com/mahf-opt/mahf/individual"
	"github.com/mahf-opt/mahf/internal/testutil"
	"github.com/mahf-opt/mahf/objective"
	"github.com/mahf-opt/mahf/operators/pso"
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
	state.Insert(s, rng.New(11))
	stack := population.NewStack[testutil.Vec]()
	stack.Push(pop)
	state.Insert(s, stack)
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

func TestInitializeVelocitiesSeedsOnePerParticle(t *testing.T) {
	pop := evaluated(t, []float64{1, 1}, []float64{2, 2}, []float64{3, 3})
	s := seeded(t, pop)
	p := testutil.NewSphere(2, 5)

	op, err := pso.NewInitializeVelocities[testutil.Vec](0.5)
	require.NoError(t, err)
	require.NoError(t, component.Preflight[testutil.Vec](op, p, s))
	require.NoError(t, op.Execute(p, s))

	g, err := state.Borrow[*pso.Velocities[testutil.Vec]](s)
	require.NoError(t, err)
	defer g.Release()
	v := *g.Get()
	require.Equal(t, 3, v.Len())
	for i := 0; i < v.Len(); i++ {
		for _, x := range v.At(i) {
			require.LessOrEqual(t, x, 0.5)
			require.GreaterOrEqual(t, x, -0.5)
		}
	}
}

func TestInitializeVelocitiesRejectsNonPositiveVMax(t *testing.T) {
	_, err := pso.NewInitializeVelocities[testutil.Vec](0)
	require.ErrorIs(t, err, pso.ErrParameter)
}

func TestInitializeBestsSeedsPersonalAndGlobalBest(t *testing.T) {
	pop := evaluated(t, []float64{3, 0}, []float64{1, 0}, []float64{2, 0})
	s := seeded(t, pop)
	p := testutil.NewSphere(2, 5)

	op := pso.NewInitializeBests[testutil.Vec](true)
	require.NoError(t, component.Preflight[testutil.Vec](op, p, s))
	require.NoError(t, op.Execute(p, s))

	bg, err := state.Borrow[*pso.BestParticles[testutil.Vec]](s)
	require.NoError(t, err)
	defer bg.Release()
	bests := *bg.Get()
	require.Equal(t, 3, bests.Len())
	require.Equal(t, testutil.Vec{3, 0}, bests.At(0).Solution())

	gg, err := state.Borrow[*pso.BestParticle[testutil.Vec]](s)
	require.NoError(t, err)
	defer gg.Release()
	global, ok := (*gg.Get()).Get()
	require.True(t, ok)
	require.Equal(t, testutil.Vec{1, 0}, global.Solution())
}

func withSwarmState(t *testing.T, s *state.State, pop population.Population[testutil.Vec], minimize bool) {
	t.Helper()
	p := testutil.NewSphere(2, 5)
	iv, err := pso.NewInitializeVelocities[testutil.Vec](1)
	require.NoError(t, err)
	require.NoError(t, iv.Execute(p, s))
	ib := pso.NewInitializeBests[testutil.Vec](minimize)
	require.NoError(t, ib.Execute(p, s))
	state.Insert(s, &pso.InertiaWeight{W: 0.7})
}

func TestVelocityPositionUpdateClampsVelocity(t *testing.T) {
	pop := evaluated(t, []float64{5, 5}, []float64{-5, -5})
	s := seeded(t, pop)
	withSwarmState(t, s, pop, true)

	p := testutil.NewSphere(2, 5)
	op, err := pso.NewVelocityPositionUpdate[testutil.Vec](2, 2, 0.3)
	require.NoError(t, err)
	require.NoError(t, component.Preflight[testutil.Vec](op, p, s))
	require.NoError(t, op.Execute(p, s))

	g, err := state.Borrow[*pso.Velocities[testutil.Vec]](s)
	require.NoError(t, err)
	defer g.Release()
	v := *g.Get()
	for i := 0; i < v.Len(); i++ {
		for _, x := range v.At(i) {
			require.LessOrEqual(t, x, 0.3)
			require.GreaterOrEqual(t, x, -0.3)
		}
	}
	require.Equal(t, 2, len(top(t, s)))
}

func TestVelocityPositionUpdateRejectsNonPositiveParams(t *testing.T) {
	_, err := pso.NewVelocityPositionUpdate[testutil.Vec](0, 1, 1)
	require.ErrorIs(t, err, pso.ErrParameter)
	_, err = pso.NewVelocityPositionUpdate[testutil.Vec](1, 1, 0)
	require.ErrorIs(t, err, pso.ErrParameter)
}

func TestUpdateBestsImprovesOnBetterObjective(t *testing.T) {
	pop := evaluated(t, []float64{3, 0}, []float64{5, 0})
	s := seeded(t, pop)
	withSwarmState(t, s, pop, true)

	improved := evaluated(t, []float64{1, 0}, []float64{9, 0})
	require.NoError(t, (func() error {
		g, err := state.BorrowMut[*population.Stack[testutil.Vec]](s)
		if err != nil {
			return err
		}
		defer g.Release()
		_, err = (*g.Get()).Pop()
		if err != nil {
			return err
		}
		(*g.Get()).Push(improved)
		return nil
	})())

	p := testutil.NewSphere(2, 5)
	op := pso.NewUpdateBests[testutil.Vec](true)
	require.NoError(t, component.Preflight[testutil.Vec](op, p, s))
	require.NoError(t, op.Execute(p, s))

	bg, err := state.Borrow[*pso.BestParticles[testutil.Vec]](s)
	require.NoError(t, err)
	defer bg.Release()
	bests := *bg.Get()
	require.Equal(t, testutil.Vec{1, 0}, bests.At(0).Solution())
	require.Equal(t, testutil.Vec{5, 0}, bests.At(1).Solution())

	gg, err := state.Borrow[*pso.BestParticle[testutil.Vec]](s)
	require.NoError(t, err)
	defer gg.Release()
	global, ok := (*gg.Get()).Get()
	require.True(t, ok)
	require.Equal(t, testutil.Vec{1, 0}, global.Solution())
}

func seededWithOffspring(t *testing.T, parents, offspring population.Population[testutil.Vec]) *state.State {
	t.Helper()
	s := seeded(t, parents)
	withSwarmState(t, s, parents, true)
	g, err := state.BorrowMut[*population.Stack[testutil.Vec]](s)
	require.NoError(t, err)
	defer g.Release()
	(*g.Get()).Push(offspring)
	return s
}

func TestReplaceNWorstPSOKeepsInvariants(t *testing.T) {
	parents := evaluated(t, []float64{0, 0}, []float64{1, 1}, []float64{9, 9})
	offspring := evaluated(t, []float64{2, 2})
	s := seededWithOffspring(t, parents, offspring)

	p := testutil.NewSphere(2, 5)
	op, err := pso.NewReplaceNWorstPSO[testutil.Vec](1, true, 1)
	require.NoError(t, err)
	require.NoError(t, component.Preflight[testutil.Vec](op, p, s))
	require.NoError(t, op.Execute(p, s))

	survivors := top(t, s)
	require.Len(t, survivors, 3)

	vg, err := state.Borrow[*pso.Velocities[testutil.Vec]](s)
	require.NoError(t, err)
	defer vg.Release()
	require.Equal(t, 3, (*vg.Get()).Len())

	bg, err := state.Borrow[*pso.BestParticles[testutil.Vec]](s)
	require.NoError(t, err)
	defer bg.Release()
	require.Equal(t, 3, (*bg.Get()).Len())
}

func TestReplaceNRandomPSORejectsTooFewOffspring(t *testing.T) {
	parents := evaluated(t, []float64{0, 0}, []float64{1, 1})
	offspring := evaluated(t, []float64{2, 2})
	s := seededWithOffspring(t, parents, offspring)

	p := testutil.NewSphere(2, 5)
	op, err := pso.NewReplaceNRandomPSO[testutil.Vec](2, 1)
	require.NoError(t, err)
	require.NoError(t, component.Preflight[testutil.Vec](op, p, s))
	err = op.Execute(p, s)
	require.ErrorIs(t, err, population.ErrStackLayout)

	require.Len(t, top(t, s), 1)
}
