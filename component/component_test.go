package component_test

import (
	"testing"

	"github.com/mahf-opt/mahf/component"
	"github.com/mahf-opt/mahf/counter"
	"github.com/mahf-opt/mahf/internal/testutil"
	"github.com/mahf-opt/mahf/problem"
	"github.com/mahf-opt/mahf/state"
	"github.com/stretchr/testify/require"
)

// tally is a trivial Component that increments a *counter.Evaluations each
// Execute, used to observe Block/Loop/Branch ordering and counts.
type tally struct {
	component.Base[testutil.Vec]
}

func (tally) Execute(_ problem.Interface[testutil.Vec], s *state.State) error {
	guard, err := state.BorrowMut[*counter.Evaluations](s)
	if err != nil {
		return err
	}
	(*guard.Get()).Add(1)
	guard.Release()
	return nil
}

// underBudget is a Condition true while *counter.Iterations < Max.
type underBudget struct {
	component.Base[testutil.Vec]
	Max uint64
}

func (u underBudget) Evaluate(_ problem.Interface[testutil.Vec], s *state.State) (bool, error) {
	n, err := state.GetValue[uint64, *counter.Iterations](s)
	if err != nil {
		return false, err
	}
	return n < u.Max, nil
}

func newFixture() (*state.State, *testutil.Sphere) {
	s := state.New()
	state.Insert(s, &counter.Evaluations{})
	return s, testutil.NewSphere(2, 5)
}

func TestBlockRunsInOrder(t *testing.T) {
	s, p := newFixture()
	b := component.NewBlock[testutil.Vec](tally{}, tally{}, tally{})

	require.NoError(t, component.Preflight[testutil.Vec](b, p, s))
	require.NoError(t, b.Execute(p, s))

	n, err := state.GetValue[uint64, *counter.Evaluations](s)
	require.NoError(t, err)
	require.Equal(t, uint64(3), n)
}

func TestLoopIncrementsAfterBody(t *testing.T) {
	s, p := newFixture()
	loop := component.NewLoop[testutil.Vec](underBudget{Max: 5}, tally{})

	require.NoError(t, component.Preflight[testutil.Vec](loop, p, s))
	require.NoError(t, loop.Execute(p, s))

	iters, err := state.GetValue[uint64, *counter.Iterations](s)
	require.NoError(t, err)
	require.Equal(t, uint64(5), iters)

	evals, err := state.GetValue[uint64, *counter.Evaluations](s)
	require.NoError(t, err)
	require.Equal(t, uint64(5), evals)
}

func TestLoopFalseFromStartRunsZeroTimes(t *testing.T) {
	s, p := newFixture()
	loop := component.NewLoop[testutil.Vec](underBudget{Max: 0}, tally{})

	require.NoError(t, component.Preflight[testutil.Vec](loop, p, s))
	require.NoError(t, loop.Execute(p, s))

	evals, err := state.GetValue[uint64, *counter.Evaluations](s)
	require.NoError(t, err)
	require.Equal(t, uint64(0), evals)
}

func TestBranchTakesThenOrElse(t *testing.T) {
	s, p := newFixture()
	state.Insert(s, &counter.Iterations{})

	branch := component.NewBranch[testutil.Vec](underBudget{Max: 1}, tally{}, nil)
	require.NoError(t, component.Preflight[testutil.Vec](branch, p, s))
	require.NoError(t, branch.Execute(p, s))

	evals, err := state.GetValue[uint64, *counter.Evaluations](s)
	require.NoError(t, err)
	require.Equal(t, uint64(1), evals)

	// Drain the budget: Condition now false, Else is nil, so a no-op.
	state.SetValue[uint64, *counter.Iterations](s, 1)
	require.NoError(t, branch.Execute(p, s))
	evals, err = state.GetValue[uint64, *counter.Evaluations](s)
	require.NoError(t, err)
	require.Equal(t, uint64(1), evals)
}

func TestScopeUnwindsFrameAndKeepsParentValue(t *testing.T) {
	s, p := newFixture()
	state.Insert(s, &counter.Iterations{})
	state.SetValue[uint64, *counter.Iterations](s, 99)

	inner := component.NewBlock[testutil.Vec]()
	scope := component.NewScope[testutil.Vec](inner)
	require.NoError(t, component.Preflight[testutil.Vec](scope, p, s))

	require.Equal(t, 1, s.Depth())
	require.NoError(t, scope.Execute(p, s))
	require.Equal(t, 1, s.Depth())

	n, err := state.GetValue[uint64, *counter.Iterations](s)
	require.NoError(t, err)
	require.Equal(t, uint64(99), n)
}

func TestPreflightAggregatesMissingRequirements(t *testing.T) {
	s := state.New()
	p := testutil.NewSphere(2, 5)

	missing := missingRequirer{}
	err := component.Preflight[testutil.Vec](missing, p, s)
	require.Error(t, err)

	var reqErr *component.RequirementError
	require.ErrorAs(t, err, &reqErr)
	require.Len(t, reqErr.Missing, 1)
	require.Equal(t, "missingRequirer", reqErr.Missing[0].Owner)
}

type missingRequirer struct {
	component.Base[testutil.Vec]
}

func (missingRequirer) Require(_ problem.Interface[testutil.Vec], r *component.Requirements) {
	component.Require[*counter.Iterations](r, "missingRequirer")
}

func (missingRequirer) Execute(problem.Interface[testutil.Vec], *state.State) error { return nil }
