package state

// Take temporarily removes the first T from the registry, runs fn with a
// pointer to it and the registry itself, then reinserts the (possibly
// mutated) value into the frame it came from — even if fn returns an
// error or panics. This lets a component mutate its own state while
// calling back into the rest of State, something a live BorrowMut could
// not do (the component's own cell would conflict with itself).
//
// Take fails with ErrNotFound if no frame holds T, and does not itself
// take a borrow — callers relying on Take should not also hold a Borrow
// on the same T concurrently within fn, since the value is genuinely
// absent from the registry for the duration of the call.
func Take[T any](s *State, fn func(*T, *State) error, id ...any) error {
	k := keyOf[T](firstID(id))
	f, c, err := removeCellFor[T](s, k)
	if err != nil {
		return err
	}
	ptr, ok := c.value.(*T)
	if !ok {
		return notFoundf(k.typ, k.id)
	}
	defer func() {
		f.mu.Lock()
		f.cells[k] = c
		f.mu.Unlock()
	}()
	return fn(ptr, s)
}

// Holding is an alias for Take using the panic-safe-by-deferred-reinsert
// naming from spec.md §4.1; both share the same implementation.
func Holding[T any](s *State, fn func(*T, *State) error, id ...any) error {
	return Take(s, fn, id...)
}

// removeCellFor detaches the cell holding T from its frame without
// touching its value, so Take can restore it verbatim (including any
// outstanding borrow bookkeeping, though none should be outstanding since
// the value is only reachable through the registry).
func removeCellFor[T any](s *State, k key) (*frame, *cell, error) {
	for _, f := range s.snapshot() {
		f.mu.Lock()
		c, ok := f.cells[k]
		if ok {
			delete(f.cells, k)
		}
		f.mu.Unlock()
		if ok {
			return f, c, nil
		}
	}
	return nil, nil, notFoundf(k.typ, k.id)
}
