package component

import (
	"fmt"
	"reflect"

	"github.com/mahf-opt/mahf/individual"
	"github.com/mahf-opt/mahf/problem"
	"github.com/mahf-opt/mahf/state"
)

// Component is one unit of work in the tree: it may insert state it owns
// during Init, declare the state it reads during Require, and performs
// one unit of work per Execute call.
type Component[E individual.Encoding[E]] interface {
	Init(p problem.Interface[E], s *state.State) error
	Require(p problem.Interface[E], r *Requirements)
	Execute(p problem.Interface[E], s *state.State) error
}

// Condition is the predicate counterpart of Component: same lifecycle
// shape, but Evaluate returns a bool instead of performing a mutating
// unit of work. Conditions must not have externally observable side
// effects beyond their own internal tracking state (spec.md §4.2).
type Condition[E individual.Encoding[E]] interface {
	Init(p problem.Interface[E], s *state.State) error
	Require(p problem.Interface[E], r *Requirements)
	Evaluate(p problem.Interface[E], s *state.State) (bool, error)
}

// Base is embedded by leaves that own no state and read none, supplying
// no-op Init/Require so such a leaf only has to implement Execute (or
// Evaluate, for a Condition).
type Base[E individual.Encoding[E]] struct{}

func (Base[E]) Init(problem.Interface[E], *state.State) error   { return nil }
func (Base[E]) Require(problem.Interface[E], *Requirements) {}

// Requirements collects the (owner, type) pairs declared by Require calls
// across one preflight walk; Validate checks each against the registry.
type Requirements struct {
	reqs []requirement
}

type requirement struct {
	owner    string
	typeName string
	present  func(*state.State) bool
}

// Require records that owner reads T (optionally namespaced by id) from
// the registry. It is a free function, not a method, because Go methods
// cannot carry their own type parameters.
func Require[T any](r *Requirements, owner string, id ...any) {
	r.reqs = append(r.reqs, requirement{
		owner:    owner,
		typeName: typeName[T](),
		present:  func(s *state.State) bool { return state.Has[T](s, id...) },
	})
}

// Validate checks every recorded requirement against s, returning a
// single aggregated *RequirementError if any are unsatisfied, or nil.
func (r *Requirements) Validate(s *state.State) error {
	var missing []Missing
	for _, req := range r.reqs {
		if !req.present(s) {
			missing = append(missing, Missing{Owner: req.owner, Type: req.typeName})
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return &RequirementError{Missing: missing}
}

func typeName[T any]() string {
	t := reflect.TypeOf((*T)(nil)).Elem()
	return fmt.Sprintf("%v", t)
}
