package state

// GetMultipleMut2 resolves exclusive borrows of A and B in one call. It
// fails with ErrDuplicate if A and B are the same type (the Go compiler
// already forbids aliasing at the type level when A and B are distinct
// named types, but instantiations like GetMultipleMut2[Iterations,
// Iterations] are still expressible and must be rejected at runtime), or
// ErrNotFound/ErrBorrowConflict as for a single BorrowMut.
//
// The implementation takes State's topology lock for its duration so that
// no Scope push/pop can change the frame set while the duplicate check and
// the borrows it guards are being established — the only place in this
// package that needs exclusive access to the registry itself rather than
// to one cell (spec.md §4.1 "Implementation obligation").
func GetMultipleMut2[A, B any](s *State, ids ...[2]any) (*MutGuard[A], *MutGuard[B], error) {
	idA, idB := pairIDs(ids)
	s.topology.Lock()
	defer s.topology.Unlock()
	if sameType[A, B](idA, idB) {
		return nil, nil, duplicatef(keyOf[A](idA).typ)
	}
	ga, err := borrowMutLocked[A](s, idA)
	if err != nil {
		return nil, nil, err
	}
	gb, err := borrowMutLocked[B](s, idB)
	if err != nil {
		ga.Release()
		return nil, nil, err
	}
	return ga, gb, nil
}

// GetMultipleMut3 is GetMultipleMut2 for three distinct types.
func GetMultipleMut3[A, B, C any](s *State, ids ...[3]any) (*MutGuard[A], *MutGuard[B], *MutGuard[C], error) {
	var idA, idB, idC any
	if len(ids) > 0 {
		idA, idB, idC = ids[0][0], ids[0][1], ids[0][2]
	}
	s.topology.Lock()
	defer s.topology.Unlock()
	if dup := firstDuplicate(
		keyOf[A](idA), keyOf[B](idB), keyOf[C](idC),
	); dup != nil {
		return nil, nil, nil, duplicatef(dup.typ)
	}
	ga, err := borrowMutLocked[A](s, idA)
	if err != nil {
		return nil, nil, nil, err
	}
	gb, err := borrowMutLocked[B](s, idB)
	if err != nil {
		ga.Release()
		return nil, nil, nil, err
	}
	gc, err := borrowMutLocked[C](s, idC)
	if err != nil {
		ga.Release()
		gb.Release()
		return nil, nil, nil, err
	}
	return ga, gb, gc, nil
}

// GetMultipleMut4 is GetMultipleMut2 for four distinct types.
func GetMultipleMut4[A, B, C, D any](s *State, ids ...[4]any) (*MutGuard[A], *MutGuard[B], *MutGuard[C], *MutGuard[D], error) {
	var idA, idB, idC, idD any
	if len(ids) > 0 {
		idA, idB, idC, idD = ids[0][0], ids[0][1], ids[0][2], ids[0][3]
	}
	s.topology.Lock()
	defer s.topology.Unlock()
	if dup := firstDuplicate(
		keyOf[A](idA), keyOf[B](idB), keyOf[C](idC), keyOf[D](idD),
	); dup != nil {
		return nil, nil, nil, nil, duplicatef(dup.typ)
	}
	ga, err := borrowMutLocked[A](s, idA)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	gb, err := borrowMutLocked[B](s, idB)
	if err != nil {
		ga.Release()
		return nil, nil, nil, nil, err
	}
	gc, err := borrowMutLocked[C](s, idC)
	if err != nil {
		ga.Release()
		gb.Release()
		return nil, nil, nil, nil, err
	}
	gd, err := borrowMutLocked[D](s, idD)
	if err != nil {
		ga.Release()
		gb.Release()
		gc.Release()
		return nil, nil, nil, nil, err
	}
	return ga, gb, gc, gd, nil
}

func pairIDs(ids [][2]any) (a, b any) {
	if len(ids) == 0 {
		return nil, nil
	}
	return ids[0][0], ids[0][1]
}

func sameType[A, B any](idA, idB any) bool {
	return keyOf[A](idA) == keyOf[B](idB)
}

func firstDuplicate(keys ...key) *key {
	for i := 0; i < len(keys); i++ {
		for j := i + 1; j < len(keys); j++ {
			if keys[i] == keys[j] {
				return &keys[i]
			}
		}
	}
	return nil
}

// borrowMutLocked is BorrowMut's body without re-acquiring s.topology,
// used by GetMultipleMut2/3/4 which already hold the write lock.
func borrowMutLocked[T any](s *State, id any) (*MutGuard[T], error) {
	k := keyOf[T](id)
	var found *cell
	for i := len(s.frames) - 1; i >= 0 && found == nil; i-- {
		f := s.frames[i]
		f.mu.RLock()
		c, ok := f.cells[k]
		f.mu.RUnlock()
		if ok {
			found = c
		}
	}
	if found == nil {
		return nil, notFoundf(k.typ, k.id)
	}
	if !found.tryExclusive() {
		return nil, conflictf(found.typ, found.id, Exclusive)
	}
	ptr, ok := found.value.(*T)
	if !ok {
		found.releaseExclusive()
		return nil, notFoundf(found.typ, found.id)
	}
	return &MutGuard[T]{cell: found, ptr: ptr}, nil
}
