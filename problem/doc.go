// Package problem declares the external Problem contract the core
// consumes but never defines a concrete instance of (spec.md §6:
// "concrete benchmark problem definitions" are out of scope).
//
// What:
//
//   - Interface[E]: the minimal contract — a name and an Evaluate method
//     producing an objective.Value.
//   - Optional capability interfaces (Dimensioned, Domained, KnownOptimum,
//     TargetHitter): a Problem implementation opts into them by
//     implementing the extra method; components type-assert for them the
//     way net/http's ResponseWriter callers type-assert for Hijacker or
//     Flusher. This avoids forcing every Problem to implement methods
//     that only some termination conditions or initializers need.
//
// Why:
//
//   - spec.md describes Encoding/Objective as Problem-associated types.
//     Go has no associated types; encoding the Objective side as the
//     shared objective.Value interface (see package objective) and the
//     Encoding side as a type parameter E gives every component exactly
//     the genericity spec.md needs without a second type parameter
//     threaded through the whole module.
package problem
