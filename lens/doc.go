// Package lens implements the Lens abstraction: a cloneable, named
// projection from (problem, state) to a value, used by the logging
// package to extract entries at trigger points without the logger
// itself knowing anything about operator-owned state (spec.md §4.6).
//
// What:
//
//   - Lens[E, T]: Name() plus Extract(problem, state) (T, error).
//   - Three constructors matching the registry's three access modes:
//     Value (a pure function of problem/state), Shared (borrows T from
//     the registry, releases immediately, returns a projected copy),
//     and Exclusive (borrows mutably, lets the projection mutate
//     component-owned tracking state, e.g. a running best-so-far).
//   - A handful of standard lenses: PopulationSize, BestObjective,
//     BestSolution.
//
// Why:
//
//   - Keeping Extract's signature fixed and pushing borrow-mode
//     selection into the constructor means Log (package log) can hold
//     a slice of Lens[E, any] without caring how each one reaches into
//     the registry.
//
// Errors:
//
//	Whatever the underlying state.Borrow/BorrowMut call returns
//	(state.ErrNotFound, state.ErrBorrowConflict), unwrapped.
package lens
