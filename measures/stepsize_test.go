package measures_test

import (
	"testing"

	"github.com/mahf-opt/mahf/archive"
	"github.com/mahf-opt/mahf/component"
	"github.com/mahf-opt/mahf/internal/testutil"
	"github.com/mahf-opt/mahf/measures"
	"github.com/mahf-opt/mahf/population"
	"github.com/mahf-opt/mahf/state"
	"github.com/stretchr/testify/require"
)

func TestEuclideanStepSizeMeasuresDistanceToSnapshot(t *testing.T) {
	s := seeded(unevaluated([]float64{0, 0}))
	p := testutil.NewSphere(2, 5)

	track := archive.NewTrackIntermediatePopulation[testutil.Vec]()
	require.NoError(t, component.Preflight[testutil.Vec](track, p, s))
	require.NoError(t, track.Execute(p, s))

	g, err := state.BorrowMut[*population.Stack[testutil.Vec]](s)
	require.NoError(t, err)
	require.NoError(t, (*g.Get()).Replace(unevaluated([]float64{3, 4})))
	g.Release()

	op := measures.NewEuclideanStepSize[testutil.Vec]()
	require.NoError(t, component.Preflight[testutil.Vec](op, p, s))
	require.NoError(t, op.Execute(p, s))

	ss, err := state.Borrow[measures.StepSize[*measures.EuclideanStepSize[testutil.Vec]]](s)
	require.NoError(t, err)
	defer ss.Release()
	require.Equal(t, 5.0, ss.Get().Mean())
}
