package individual_test

import (
	"testing"

	"github.com/mahf-opt/mahf/individual"
	"github.com/mahf-opt/mahf/objective"
	"github.com/stretchr/testify/require"
)

type vec []float64

func (v vec) Clone() vec {
	cp := make(vec, len(v))
	copy(cp, v)
	return cp
}

func vecEqual(a, b vec) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestNewIsUnevaluated(t *testing.T) {
	ind := individual.New[vec](vec{1, 2})
	_, ok := ind.Objective()
	require.False(t, ok)
	require.False(t, ind.Evaluated())
}

func TestSetSolutionResetsObjective(t *testing.T) {
	ind := individual.New[vec](vec{1, 2})
	obj, _ := objective.NewSingle(3.0)
	ind.SetObjective(obj)
	require.True(t, ind.Evaluated())

	ind.SetSolution(vec{9, 9})
	require.False(t, ind.Evaluated())
}

func TestMutateSolutionResetsObjective(t *testing.T) {
	ind := individual.New[vec](vec{1, 2})
	obj, _ := objective.NewSingle(3.0)
	ind.SetObjective(obj)

	ind.MutateSolution(func(s *vec) { (*s)[0] = 42 })
	require.False(t, ind.Evaluated())
	require.Equal(t, vec{42, 2}, ind.Solution())
}

func TestCloneIsDeep(t *testing.T) {
	ind := individual.New[vec](vec{1, 2})
	clone := ind.Clone()
	clone.MutateSolution(func(s *vec) { (*s)[0] = 999 })

	require.Equal(t, vec{1, 2}, ind.Solution())
	require.Equal(t, vec{999, 2}, clone.Solution())
}

func TestEqualComparesSolutionAndObjective(t *testing.T) {
	a := individual.New[vec](vec{1, 2})
	b := individual.New[vec](vec{1, 2})
	require.True(t, a.Equal(b, vecEqual))

	oa, _ := objective.NewSingle(1)
	ob, _ := objective.NewSingle(2)
	a.SetObjective(oa)
	require.False(t, a.Equal(b, vecEqual))
	b.SetObjective(ob)
	require.False(t, a.Equal(b, vecEqual))
	b.SetObjective(oa)
	require.True(t, a.Equal(b, vecEqual))
}
