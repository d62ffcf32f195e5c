package generation_test

import (
	"testing"

	"github.com/mahf-opt/mahf/component"
	"github.com/mahf-opt/mahf/counter"
	"github.com/mahf-opt/mahf/internal/testutil"
	"github.com/mahf-opt/mahf/operators/generation"
	"github.com/mahf-opt/mahf/state"
	"github.com/stretchr/testify/require"
)

func TestNormalMutationPublishesStrengthAndRate(t *testing.T) {
	s := seededVec(t, testutil.Vec{1, 1})
	p := testutil.NewSphere(2, 5)
	op, err := generation.NewNormalMutation[testutil.Vec](0.5, 0.75)
	require.NoError(t, err)
	require.NoError(t, component.Preflight[testutil.Vec](op, p, s))

	g, err := state.Borrow[generation.MutationStrength[*generation.NormalMutation[testutil.Vec]]](s)
	require.NoError(t, err)
	require.Equal(t, 0.5, g.Get().Value())
	g.Release()

	gr, err := state.Borrow[generation.MutationRate[*generation.NormalMutation[testutil.Vec]]](s)
	require.NoError(t, err)
	require.Equal(t, 0.75, gr.Get().Value())
	gr.Release()
}

func TestNormalMutationReadsOverriddenStrength(t *testing.T) {
	s := seededVec(t, testutil.Vec{0, 0})
	p := testutil.NewSphere(2, 5)
	op, err := generation.NewNormalMutation[testutil.Vec](0.5, 1.0)
	require.NoError(t, err)
	require.NoError(t, component.Preflight[testutil.Vec](op, p, s))

	gm, err := state.BorrowMut[generation.MutationStrength[*generation.NormalMutation[testutil.Vec]]](s)
	require.NoError(t, err)
	gm.Get().Set(5.0)
	gm.Release()

	require.NoError(t, op.Execute(p, s))

	g, err := state.Borrow[generation.MutationStrength[*generation.NormalMutation[testutil.Vec]]](s)
	require.NoError(t, err)
	defer g.Release()
	require.Equal(t, 5.0, g.Get().Value())
}

func TestIWOAdaptiveDeviationDeltaPublishesSigma(t *testing.T) {
	s := seededVec(t, testutil.Vec{0, 0})
	state.Insert(s, &counter.Iterations{})
	p := testutil.NewSphere(2, 5)

	op, err := generation.NewIWOAdaptiveDeviationDeltaByIterations[testutil.Vec](3.0, 0.01, 2.0, 100)
	require.NoError(t, err)
	require.NoError(t, component.Preflight[testutil.Vec](op, p, s))
	require.NoError(t, op.Execute(p, s))

	g, err := state.Borrow[generation.MutationStrength[*generation.IWOAdaptiveDeviationDelta[testutil.Vec, *counter.Iterations]]](s)
	require.NoError(t, err)
	defer g.Release()
	require.InDelta(t, 3.0, g.Get().Value(), 1e-9)
}
