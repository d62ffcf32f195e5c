package state_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/mahf-opt/mahf/state"
	"github.com/stretchr/testify/require"
)

type counter struct{ n int }
type marker struct{ s string }

func TestInsertAndRead(t *testing.T) {
	s := state.New()

	_, had := state.Insert(s, counter{n: 1})
	require.False(t, had)

	g, err := state.Borrow[counter](s)
	require.NoError(t, err)
	require.Equal(t, 1, g.Get().n)
	g.Release()
}

func TestDistinctTypesDoNotCollide(t *testing.T) {
	s := state.New()
	state.Insert(s, counter{n: 5})

	_, err := state.Borrow[marker](s)
	require.ErrorIs(t, err, state.ErrNotFound)
}

func TestInsertReplacesTopFrameAndReturnsOld(t *testing.T) {
	s := state.New()
	state.Insert(s, counter{n: 1})
	old, had := state.Insert(s, counter{n: 2})
	require.True(t, had)
	require.Equal(t, 1, old.n)

	g, err := state.Borrow[counter](s)
	require.NoError(t, err)
	require.Equal(t, 2, g.Get().n)
	g.Release()
}

func TestScopeShadowsAndRestores(t *testing.T) {
	s := state.New()
	state.Insert(s, counter{n: 1})

	s.PushFrame()
	state.Insert(s, counter{n: 99})
	g, err := state.Borrow[counter](s)
	require.NoError(t, err)
	require.Equal(t, 99, g.Get().n)
	g.Release()
	s.PopFrame()

	g2, err := state.Borrow[counter](s)
	require.NoError(t, err)
	require.Equal(t, 1, g2.Get().n)
	g2.Release()
}

func TestPopRootFramePanics(t *testing.T) {
	s := state.New()
	require.Panics(t, func() { s.PopFrame() })
}

func TestExclusiveExcludesShared(t *testing.T) {
	s := state.New()
	state.Insert(s, counter{n: 1})

	mg, err := state.BorrowMut[counter](s)
	require.NoError(t, err)

	_, err = state.Borrow[counter](s)
	require.ErrorIs(t, err, state.ErrBorrowConflict)

	mg.Release()

	g, err := state.Borrow[counter](s)
	require.NoError(t, err)
	g.Release()
}

func TestSharedExcludesExclusive(t *testing.T) {
	s := state.New()
	state.Insert(s, counter{n: 1})

	g1, err := state.Borrow[counter](s)
	require.NoError(t, err)
	g2, err := state.Borrow[counter](s)
	require.NoError(t, err)

	_, err = state.BorrowMut[counter](s)
	require.ErrorIs(t, err, state.ErrBorrowConflict)

	g1.Release()
	_, err = state.BorrowMut[counter](s)
	require.ErrorIs(t, err, state.ErrBorrowConflict)

	g2.Release()
	mg, err := state.BorrowMut[counter](s)
	require.NoError(t, err)
	mg.Release()
}

func TestBorrowMutMutatesInPlace(t *testing.T) {
	s := state.New()
	state.Insert(s, counter{n: 1})

	mg, err := state.BorrowMut[counter](s)
	require.NoError(t, err)
	mg.Get().n = 42
	mg.Release()

	g, err := state.Borrow[counter](s)
	require.NoError(t, err)
	require.Equal(t, 42, g.Get().n)
	g.Release()
}

func TestNamespacedStateDoesNotCollide(t *testing.T) {
	s := state.New()
	state.Insert(s, counter{n: 1}, "a")
	state.Insert(s, counter{n: 2}, "b")

	ga, err := state.Borrow[counter](s, "a")
	require.NoError(t, err)
	require.Equal(t, 1, ga.Get().n)
	ga.Release()

	gb, err := state.Borrow[counter](s, "b")
	require.NoError(t, err)
	require.Equal(t, 2, gb.Get().n)
	gb.Release()
}

func TestRemoveErrorsWhenAbsent(t *testing.T) {
	s := state.New()
	_, err := state.Remove[counter](s)
	require.True(t, errors.Is(err, state.ErrNotFound))
}

func TestRemoveThenReinsert(t *testing.T) {
	s := state.New()
	state.Insert(s, counter{n: 7})
	v, err := state.Remove[counter](s)
	require.NoError(t, err)
	require.Equal(t, 7, v.n)
	require.False(t, state.Has[counter](s))
}

func TestContainsIsTopFrameOnly(t *testing.T) {
	s := state.New()
	state.Insert(s, counter{n: 1})
	s.PushFrame()
	require.False(t, state.Contains[counter](s))
	require.True(t, state.Has[counter](s))
	s.PopFrame()
}

func TestConcurrentSharedBorrowsAreSafe(t *testing.T) {
	s := state.New()
	state.Insert(s, counter{n: 0})

	var wg sync.WaitGroup
	const n = 64
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			g, err := state.Borrow[counter](s)
			if err == nil {
				_ = g.Get().n
				g.Release()
			}
		}()
	}
	wg.Wait()
}
