package measures_test

import (
	"testing"

	"github.com/mahf-opt/mahf/archive"
	"github.com/mahf-opt/mahf/component"
	"github.com/mahf-opt/mahf/individual"
	"github.com/mahf-opt/mahf/internal/testutil"
	"github.com/mahf-opt/mahf/measures"
	"github.com/mahf-opt/mahf/population"
	"github.com/mahf-opt/mahf/state"
	"github.com/stretchr/testify/require"
)

func pushBest(t *testing.T, s *state.State, p *testutil.Sphere, track *archive.TrackBestIndividual[testutil.Vec], x []float64) {
	t.Helper()
	obj, err := p.Evaluate(testutil.Vec(x))
	require.NoError(t, err)
	ind := individual.NewEvaluated[testutil.Vec](testutil.Vec(x), obj)
	g, err := state.BorrowMut[*population.Stack[testutil.Vec]](s)
	require.NoError(t, err)
	require.NoError(t, (*g.Get()).Replace(population.Population[testutil.Vec]{ind}))
	g.Release()
	require.NoError(t, track.Execute(p, s))
}

func TestKnownOptimumConvergenceProgressiveRateMeasuresDistanceToOptimum(t *testing.T) {
	s := seeded(unevaluated([]float64{0, 0}))
	p := testutil.NewSphere(2, 5)

	track := archive.NewTrackBestIndividual[testutil.Vec](true)
	require.NoError(t, component.Preflight[testutil.Vec](track, p, s))
	pushBest(t, s, p, track, []float64{2, 0})
	pushBest(t, s, p, track, []float64{1, 0})

	op := measures.NewKnownOptimumConvergenceProgressiveRate[testutil.Vec]()
	require.NoError(t, component.Preflight[testutil.Vec](op, p, s))
	require.NoError(t, op.Execute(p, s))

	g, err := state.Borrow[measures.ConvergenceRate[*measures.KnownOptimumConvergenceProgressiveRate[testutil.Vec]]](s)
	require.NoError(t, err)
	defer g.Release()
	require.Equal(t, 1.0, g.Get().Value())
}

func TestUnknownOptimumConvergenceProgressiveRateMeasuresChange(t *testing.T) {
	s := seeded(unevaluated([]float64{0, 0}))
	p := testutil.NewSphere(2, 5)

	track := archive.NewTrackBestIndividual[testutil.Vec](true)
	require.NoError(t, component.Preflight[testutil.Vec](track, p, s))
	pushBest(t, s, p, track, []float64{2, 0})
	pushBest(t, s, p, track, []float64{1, 0})

	op := measures.NewUnknownOptimumConvergenceProgressiveRate[testutil.Vec]()
	require.NoError(t, component.Preflight[testutil.Vec](op, p, s))
	require.NoError(t, op.Execute(p, s))

	g, err := state.Borrow[measures.ConvergenceRate[*measures.UnknownOptimumConvergenceProgressiveRate[testutil.Vec]]](s)
	require.NoError(t, err)
	defer g.Release()
	require.Equal(t, 3.0, g.Get().Value())
}
