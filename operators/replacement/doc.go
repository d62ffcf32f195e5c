// Package replacement implements the replacement operator family
// spec.md §4.4 names: components that pop the offspring and parent
// populations (offspring pushed last, so it sits on top) and push the
// surviving population — stack depth decreases by one, back to what it
// was before selection pushed its sub-multiset (spec.md §4.3).
//
// What:
//
//	DiscardOffspring, Generational, Merge, MuPlusLambda, MuCommaLambda,
//	RandomReplacement, KeepBetterAtIndex.
//
// Why:
//
//   - Every variant beyond DiscardOffspring/Merge needs a fitness
//     ordering, so Minimize is threaded the same way
//     operators/selection's Tournament does it: Compare's natural
//     Less/Greater is reinterpreted rather than renegotiated per caller.
package replacement
