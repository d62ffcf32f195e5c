package state_test

import (
	"testing"

	"github.com/mahf-opt/mahf/state"
	"github.com/stretchr/testify/require"
)

type iterations struct{ n uint64 }

func (i *iterations) Value() uint64    { return i.n }
func (i *iterations) SetValue(v uint64) { i.n = v }

func TestGetSetValue(t *testing.T) {
	s := state.New()
	state.Insert(s, &iterations{n: 0})

	v, err := state.GetValue[uint64, *iterations](s)
	require.NoError(t, err)
	require.Equal(t, uint64(0), v)

	require.NoError(t, state.SetValue[uint64, *iterations](s, 7))

	v, err = state.GetValue[uint64, *iterations](s)
	require.NoError(t, err)
	require.Equal(t, uint64(7), v)
}

func TestMustGetValuePanicsWhenMissing(t *testing.T) {
	s := state.New()
	require.Panics(t, func() {
		state.MustGetValue[uint64, *iterations](s)
	})
}
