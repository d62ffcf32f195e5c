package state_test

import (
	"testing"

	"github.com/mahf-opt/mahf/state"
	"github.com/stretchr/testify/require"
)

func TestGetMultipleMut2Distinct(t *testing.T) {
	s := state.New()
	state.Insert(s, counter{n: 1})
	state.Insert(s, marker{s: "x"})

	ga, gb, err := state.GetMultipleMut2[counter, marker](s)
	require.NoError(t, err)
	ga.Get().n = 2
	gb.Get().s = "y"
	ga.Release()
	gb.Release()

	g, err := state.Borrow[counter](s)
	require.NoError(t, err)
	require.Equal(t, 2, g.Get().n)
	g.Release()
}

func TestGetMultipleMut2DuplicateErrors(t *testing.T) {
	s := state.New()
	state.Insert(s, counter{n: 1})

	_, _, err := state.GetMultipleMut2[counter, counter](s)
	require.ErrorIs(t, err, state.ErrDuplicate)
}

func TestGetMultipleMut2MissingErrors(t *testing.T) {
	s := state.New()
	state.Insert(s, counter{n: 1})

	_, _, err := state.GetMultipleMut2[counter, marker](s)
	require.ErrorIs(t, err, state.ErrNotFound)
}

func TestGetMultipleMut3(t *testing.T) {
	type third struct{ f float64 }
	s := state.New()
	state.Insert(s, counter{n: 1})
	state.Insert(s, marker{s: "x"})
	state.Insert(s, third{f: 1.5})

	ga, gb, gc, err := state.GetMultipleMut3[counter, marker, third](s)
	require.NoError(t, err)
	ga.Release()
	gb.Release()
	gc.Release()
}
