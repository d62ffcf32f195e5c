package state

// Entry gives modify-or-insert-default access to one (T, id) slot in the
// top frame, mirroring the occupied/vacant API described in spec.md §4.1.
// It holds an exclusive borrow for its lifetime; call Release when done.
type Entry[T any] struct {
	s  *State
	id any
}

// EntryOf opens an Entry for T (optionally namespaced by id) in the top
// frame. It does not itself borrow or allocate; OrInsert/OrInsertWith/
// AndModify do.
func EntryOf[T any](s *State, id ...any) *Entry[T] {
	return &Entry[T]{s: s, id: firstID(id)}
}

// Occupied reports whether the top frame already holds a T at this slot.
func (e *Entry[T]) Occupied() bool {
	return Contains[T](e.s, e.id)
}

// OrInsert returns the current value if present, inserting def into the
// top frame otherwise.
func (e *Entry[T]) OrInsert(def T) T {
	return e.OrInsertWith(func() T { return def })
}

// OrInsertWith is OrInsert with a lazily evaluated default, avoiding the
// cost of building def when it is not needed.
func (e *Entry[T]) OrInsertWith(make func() T) T {
	if g, err := BorrowMut[T](e.s, e.id); err == nil {
		defer g.Release()
		return *g.Get()
	}
	v := make()
	Insert(e.s, v, e.id)
	return v
}

// AndModify runs fn against the current value in place if present, and is
// a no-op otherwise. It returns the entry for chaining with OrInsert.
func (e *Entry[T]) AndModify(fn func(*T)) *Entry[T] {
	if g, err := BorrowMut[T](e.s, e.id); err == nil {
		fn(g.Get())
		g.Release()
	}
	return e
}
