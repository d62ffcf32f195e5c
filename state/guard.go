package state

// Guard is a RAII-style shared-borrow handle returned by Borrow. Call
// Release when done; an unreleased Guard permanently denies exclusive
// access to its cell for the remainder of the run, so components must
// release promptly — typically via defer immediately after a successful
// Borrow.
type Guard[T any] struct {
	cell *cell
	ptr  *T
}

// Get returns the borrowed value. Mutating the returned copy does not
// affect the registry; use BorrowMut for in-place mutation.
func (g *Guard[T]) Get() T { return *g.ptr }

// Release ends the shared borrow.
func (g *Guard[T]) Release() { g.cell.releaseShared() }

// MutGuard is the exclusive-borrow counterpart of Guard. Get returns a
// pointer into the cell's own storage, so writes through it are visible
// to the next borrow once Release runs.
type MutGuard[T any] struct {
	cell *cell
	ptr  *T
}

// Get returns a pointer to the borrowed value for in-place mutation.
func (g *MutGuard[T]) Get() *T { return g.ptr }

// Release ends the exclusive borrow.
func (g *MutGuard[T]) Release() { g.cell.releaseExclusive() }

// Borrow takes a shared borrow on the first T found (top-down). Many
// shared borrows on the same cell may coexist; it fails with
// ErrBorrowConflict if an exclusive borrow is outstanding, or ErrNotFound
// if no frame holds T.
func Borrow[T any](s *State, id ...any) (*Guard[T], error) {
	c, err := findCell[T](s, firstID(id))
	if err != nil {
		return nil, err
	}
	if !c.tryShared() {
		return nil, conflictf(c.typ, c.id, Shared)
	}
	ptr, ok := c.value.(*T)
	if !ok {
		c.releaseShared()
		return nil, notFoundf(c.typ, c.id)
	}
	return &Guard[T]{cell: c, ptr: ptr}, nil
}

// BorrowMut takes the single allowed exclusive borrow on the first T found
// (top-down). It fails with ErrBorrowConflict if any borrow (shared or
// exclusive) is outstanding on that cell, or ErrNotFound if absent.
func BorrowMut[T any](s *State, id ...any) (*MutGuard[T], error) {
	c, err := findCell[T](s, firstID(id))
	if err != nil {
		return nil, err
	}
	if !c.tryExclusive() {
		return nil, conflictf(c.typ, c.id, Exclusive)
	}
	ptr, ok := c.value.(*T)
	if !ok {
		c.releaseExclusive()
		return nil, notFoundf(c.typ, c.id)
	}
	return &MutGuard[T]{cell: c, ptr: ptr}, nil
}
