package lens

import (
	"github.com/mahf-opt/mahf/individual"
	"github.com/mahf-opt/mahf/problem"
	"github.com/mahf-opt/mahf/state"
)

// Lens is a named, typed projection from (problem, state) to a value of
// type T. Extract must not panic; any registry failure is returned as an
// error rather than surfaced as a zero value.
type Lens[E individual.Encoding[E], T any] interface {
	Name() string
	Extract(p problem.Interface[E], s *state.State) (T, error)
	Clone() Lens[E, T]
}

// Erased is the type-erased counterpart of Lens, letting a log.Log hold a
// heterogeneous slice of lenses (population size as int, best objective
// as objective.Value, ...) without a type parameter of its own.
type Erased[E individual.Encoding[E]] interface {
	Name() string
	ExtractAny(p problem.Interface[E], s *state.State) (any, error)
	CloneAny() Erased[E]
}

type erase[E individual.Encoding[E], T any] struct {
	l Lens[E, T]
}

// Erase wraps a typed Lens so it can live alongside differently-typed
// lenses in one slice.
func Erase[E individual.Encoding[E], T any](l Lens[E, T]) Erased[E] {
	return erase[E, T]{l: l}
}

func (e erase[E, T]) Name() string { return e.l.Name() }

func (e erase[E, T]) ExtractAny(p problem.Interface[E], s *state.State) (any, error) {
	return e.l.Extract(p, s)
}

func (e erase[E, T]) CloneAny() Erased[E] { return erase[E, T]{l: e.l.Clone()} }

type fnLens[E individual.Encoding[E], T any] struct {
	name string
	fn   func(p problem.Interface[E], s *state.State) (T, error)
}

func (f fnLens[E, T]) Name() string { return f.name }

func (f fnLens[E, T]) Extract(p problem.Interface[E], s *state.State) (T, error) {
	return f.fn(p, s)
}

func (f fnLens[E, T]) Clone() Lens[E, T] { return f }

// Value constructs a Lens from a pure function of (problem, state) that
// touches no registry cell directly — e.g. deriving a value from the
// problem itself.
func Value[E individual.Encoding[E], T any](name string, fn func(p problem.Interface[E], s *state.State) (T, error)) Lens[E, T] {
	return fnLens[E, T]{name: name, fn: fn}
}

// Shared constructs a Lens that takes a shared borrow on S, projects it
// to T, and releases before returning — the read-only access mode.
func Shared[E individual.Encoding[E], S any, T any](name string, project func(S) T, id ...any) Lens[E, T] {
	return fnLens[E, T]{name: name, fn: func(_ problem.Interface[E], s *state.State) (T, error) {
		g, err := state.Borrow[S](s, id...)
		if err != nil {
			var zero T
			return zero, err
		}
		defer g.Release()
		return project(g.Get()), nil
	}}
}

// Exclusive constructs a Lens that takes an exclusive borrow on S,
// letting project both read and mutate the cell in place (e.g. folding a
// new sample into a running statistic) before releasing.
func Exclusive[E individual.Encoding[E], S any, T any](name string, project func(*S) T, id ...any) Lens[E, T] {
	return fnLens[E, T]{name: name, fn: func(_ problem.Interface[E], s *state.State) (T, error) {
		g, err := state.BorrowMut[S](s, id...)
		if err != nil {
			var zero T
			return zero, err
		}
		defer g.Release()
		return project(g.Get()), nil
	}}
}
