package population_test

import (
	"testing"

	"github.com/mahf-opt/mahf/individual"
	"github.com/mahf-opt/mahf/population"
	"github.com/stretchr/testify/require"
)

type vec []float64

func (v vec) Clone() vec {
	cp := make(vec, len(v))
	copy(cp, v)
	return cp
}

func mkPop(n int) population.Population[vec] {
	p := make(population.Population[vec], n)
	for i := range p {
		p[i] = individual.New[vec](vec{float64(i)})
	}
	return p
}

func TestPushPopRoundTrip(t *testing.T) {
	s := population.NewStack[vec]()
	s.Push(mkPop(3))
	require.Equal(t, 1, s.Depth())

	p, err := s.Pop()
	require.NoError(t, err)
	require.Len(t, p, 3)
	require.Equal(t, 0, s.Depth())
}

func TestPopEmptyErrors(t *testing.T) {
	s := population.NewStack[vec]()
	_, err := s.Pop()
	require.ErrorIs(t, err, population.ErrEmpty)
}

func TestSelectionDepthIncreasesByOne(t *testing.T) {
	s := population.NewStack[vec]()
	s.Push(mkPop(5))
	current, err := s.Current()
	require.NoError(t, err)
	s.Push(current.Clone()) // selection pushes a sub-multiset on top
	require.Equal(t, 2, s.Depth())
}

func TestReplacementDepthDecreasesByOne(t *testing.T) {
	s := population.NewStack[vec]()
	s.Push(mkPop(5)) // parents
	s.Push(mkPop(5)) // offspring
	pops, err := s.PopN("replacement", 2)
	require.NoError(t, err)
	require.Len(t, pops, 2)
	s.Push(pops[1]) // surviving population
	require.Equal(t, 1, s.Depth())
}

func TestPopNErrorsWhenTooShallow(t *testing.T) {
	s := population.NewStack[vec]()
	s.Push(mkPop(3))
	_, err := s.PopN("cro.synthesis", 3)
	require.ErrorIs(t, err, population.ErrStackLayout)
}

func TestCloneIsDeep(t *testing.T) {
	p := mkPop(1)
	clone := p.Clone()
	ind := clone[0]
	ind.MutateSolution(func(s *vec) { (*s)[0] = 999 })
	clone[0] = ind
	require.Equal(t, vec{0}, p[0].Solution())
}
