package state

// Scalar is the constraint satisfied by state types that "deref to a
// primitive" (spec.md §4.1): counters, rates, and other owned types whose
// only interesting content is a single value V. GetValue/SetValue give
// components ergonomic access without an explicit Borrow/Release pair.
type Scalar[V any] interface {
	Value() V
}

// Settable is Scalar plus in-place mutation, required by SetValue.
type Settable[V any] interface {
	Scalar[V]
	SetValue(V)
}

// GetValue borrows T shared, reads its Value(), and releases — a one-line
// convenience for the common case of reading a scalar counter.
func GetValue[V any, T Scalar[V]](s *State, id ...any) (V, error) {
	var zero V
	g, err := Borrow[T](s, id...)
	if err != nil {
		return zero, err
	}
	defer g.Release()
	return g.Get().Value(), nil
}

// SetValue borrows T exclusively, calls SetValue(v), and releases.
func SetValue[V any, T Settable[V]](s *State, v V, id ...any) error {
	g, err := BorrowMut[T](s, id...)
	if err != nil {
		return err
	}
	defer g.Release()
	(*g.Get()).SetValue(v)
	return nil
}

// BorrowValue is GetValue without releasing the underlying cell's shared
// count bookkeeping cost being hidden from the caller; it is identical to
// GetValue and exists only so call sites can name their intent ("I am
// peeking at a scalar") the way spec.md §4.1 names it.
func BorrowValue[V any, T Scalar[V]](s *State, id ...any) (V, error) {
	return GetValue[V, T](s, id...)
}

// MustGetValue panics instead of returning an error, for ergonomic
// top-level use (spec.md §4.1 "Panicking variants exist ... fallible
// variants must always be available").
func MustGetValue[V any, T Scalar[V]](s *State, id ...any) V {
	v, err := GetValue[V, T](s, id...)
	if err != nil {
		panic(err)
	}
	return v
}

// MustBorrow is Borrow's panicking variant.
func MustBorrow[T any](s *State, id ...any) *Guard[T] {
	g, err := Borrow[T](s, id...)
	if err != nil {
		panic(err)
	}
	return g
}

// MustBorrowMut is BorrowMut's panicking variant.
func MustBorrowMut[T any](s *State, id ...any) *MutGuard[T] {
	g, err := BorrowMut[T](s, id...)
	if err != nil {
		panic(err)
	}
	return g
}
