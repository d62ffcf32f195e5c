// SPDX-License-Identifier: MIT
// Package state: sentinel error set.
//
// Error policy (matches the rest of the module):
//   - Only sentinel variables are exposed at package level.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are never wrapped with formatted strings at definition
//     site; call sites wrap with %w when context (type name, component)
//     is useful.
package state

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrNotFound indicates that no frame in the stack holds a value of
	// the requested type (and, if namespaced, the requested id).
	ErrNotFound = errors.New("state: not found")

	// ErrBorrowConflict indicates a borrow was refused because it would
	// violate the shared-xor-exclusive invariant on a cell.
	ErrBorrowConflict = errors.New("state: borrow conflict")

	// ErrDuplicate indicates a multi-borrow request named the same
	// (type, id) pair more than once.
	ErrDuplicate = errors.New("state: duplicate type in request")
)

// BorrowKind distinguishes the two ways a borrow can fail to be granted.
type BorrowKind int

const (
	// Shared means a shared (read) borrow was requested.
	Shared BorrowKind = iota
	// Exclusive means an exclusive (write) borrow was requested.
	Exclusive
)

func (k BorrowKind) String() string {
	if k == Exclusive {
		return "exclusive"
	}
	return "shared"
}

// notFoundf builds an ErrNotFound wrapped with the offending type name.
func notFoundf(t reflect.Type, id any) error {
	return fmt.Errorf("state: %s: %w", describe(t, id), ErrNotFound)
}

// conflictf builds an ErrBorrowConflict wrapped with type name and kind.
func conflictf(t reflect.Type, id any, kind BorrowKind) error {
	return fmt.Errorf("state: %s: %s borrow refused: %w", describe(t, id), kind, ErrBorrowConflict)
}

// duplicatef builds an ErrDuplicate wrapped with the offending type name.
func duplicatef(t reflect.Type) error {
	return fmt.Errorf("state: %s: %w", t, ErrDuplicate)
}

func describe(t reflect.Type, id any) string {
	if id == nil {
		return t.String()
	}
	return fmt.Sprintf("%s#%v", t, id)
}
