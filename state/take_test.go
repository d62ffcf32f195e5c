package state_test

import (
	"errors"
	"testing"

	"github.com/mahf-opt/mahf/state"
	"github.com/stretchr/testify/require"
)

func TestTakeMutatesAndCallsBack(t *testing.T) {
	s := state.New()
	state.Insert(s, counter{n: 1})
	state.Insert(s, marker{s: "root"})

	err := state.Take(s, func(c *counter, inner *state.State) error {
		// The registry is called back into while c is detached.
		g, err := state.Borrow[marker](inner)
		if err != nil {
			return err
		}
		defer g.Release()
		c.n += len(g.Get().s)
		return nil
	})
	require.NoError(t, err)

	g, err := state.Borrow[counter](s)
	require.NoError(t, err)
	require.Equal(t, 1+len("root"), g.Get().n)
	g.Release()
}

func TestTakeRestoresOnError(t *testing.T) {
	s := state.New()
	state.Insert(s, counter{n: 1})

	sentinel := errors.New("boom")
	err := state.Take(s, func(c *counter, _ *state.State) error {
		c.n = 5
		return sentinel
	})
	require.ErrorIs(t, err, sentinel)
	require.True(t, state.Has[counter](s))

	g, err := state.Borrow[counter](s)
	require.NoError(t, err)
	require.Equal(t, 5, g.Get().n)
	g.Release()
}

func TestTakeRestoresOnPanic(t *testing.T) {
	s := state.New()
	state.Insert(s, counter{n: 1})

	func() {
		defer func() { _ = recover() }()
		_ = state.Take(s, func(c *counter, _ *state.State) error {
			c.n = 9
			panic("unwind")
		})
	}()

	require.True(t, state.Has[counter](s))
	g, err := state.Borrow[counter](s)
	require.NoError(t, err)
	require.Equal(t, 9, g.Get().n)
	g.Release()
}

func TestTakeMissingErrors(t *testing.T) {
	s := state.New()
	err := state.Take(s, func(c *counter, _ *state.State) error { return nil })
	require.ErrorIs(t, err, state.ErrNotFound)
}
