// Package state implements the heuristic framework's typed state registry:
// a stack of frames, each frame a map from Go type (plus an optional
// namespace id) to a borrow-checked, type-erased cell.
//
// What:
//
//   - State: the stack of frames. PushFrame/PopFrame implement Scope's
//     shadowing; Insert/Remove/Contains/Has operate on the frame stack.
//   - Cell: one value, wrapped with dynamic borrow tracking. Many
//     concurrent shared borrows, or exactly one exclusive borrow.
//   - Guard / MutGuard: RAII-style borrow handles released by Release().
//   - Entry: occupied/vacant API for modify-or-insert-default.
//   - GetMultipleMut2/3/4: simultaneous disjoint exclusive borrows of up
//     to four distinct types in one call.
//   - Take / Holding: temporarily move a T out of the registry so a
//     component can mutate its own state while calling back into the
//     rest of State.
//
// Why:
//
//   - Heuristic components own heterogeneous, dynamically-registered state
//     (counters, histories, per-particle memories). A single frame of
//     maps keyed by reflect.Type gives O(1) typed lookup without a
//     schema; the frame stack gives Scope a cheap, correct shadowing
//     model; per-cell borrow tracking catches aliasing bugs that a bare
//     map of interfaces would hide until they corrupted state silently.
//
// Errors:
//
//	ErrNotFound       - no frame contains the requested type (+id).
//	ErrBorrowConflict - a borrow was attempted that would violate the
//	                    shared-xor-exclusive invariant for a cell.
//	ErrDuplicate      - a multi-borrow request named the same type twice.
//
// Complexity:
//
//	Insert/Remove/Contains/Has: O(frames) to find the first matching type.
//	Borrow/BorrowMut:           O(1) plus the O(frames) lookup.
//	PushFrame/PopFrame:         O(1).
package state
