package state

// Insert places v into the top frame under type T (and, if id is given,
// under the (T, id) namespace). It returns any value of the same key
// previously occupying the top frame, shadowing — not removing — same-typed
// values in parent frames. Complexity: O(1).
//
// Internally every cell stores *T rather than T, so that BorrowMut can
// hand out a pointer into the registry's own storage instead of a copy
// that would need an explicit writeback step.
func Insert[T any](s *State, v T, id ...any) (old T, hadOld bool) {
	k := keyOf[T](firstID(id))
	f := s.top()
	f.mu.Lock()
	defer f.mu.Unlock()
	if prev, ok := f.cells[k]; ok {
		if ptr, ok := prev.value.(*T); ok {
			old, hadOld = *ptr, true
		}
	}
	boxed := v
	f.cells[k] = newCell(k.typ, k.id, &boxed)
	return old, hadOld
}

// Remove finds and removes the first T (searching top-down), returning it.
// It returns ErrNotFound if no frame holds a value of that type.
func Remove[T any](s *State, id ...any) (T, error) {
	k := keyOf[T](firstID(id))
	var zero T
	for _, f := range s.snapshot() {
		f.mu.Lock()
		c, ok := f.cells[k]
		if ok {
			delete(f.cells, k)
		}
		f.mu.Unlock()
		if ok {
			if ptr, ok := c.value.(*T); ok {
				return *ptr, nil
			}
		}
	}
	return zero, notFoundf(k.typ, k.id)
}

// Contains reports whether T is present in the top frame only.
func Contains[T any](s *State, id ...any) bool {
	k := keyOf[T](firstID(id))
	f := s.top()
	f.mu.RLock()
	defer f.mu.RUnlock()
	_, ok := f.cells[k]
	return ok
}

// Has reports whether T is present in any frame, top-down.
func Has[T any](s *State, id ...any) bool {
	k := keyOf[T](firstID(id))
	for _, f := range s.snapshot() {
		f.mu.RLock()
		_, ok := f.cells[k]
		f.mu.RUnlock()
		if ok {
			return true
		}
	}
	return false
}

// findCell returns the first cell holding T, searching frames top-down.
func findCell[T any](s *State, id any) (*cell, error) {
	k := keyOf[T](id)
	for _, f := range s.snapshot() {
		f.mu.RLock()
		c, ok := f.cells[k]
		f.mu.RUnlock()
		if ok {
			return c, nil
		}
	}
	return nil, notFoundf(k.typ, k.id)
}
