// Package generation implements the generation/mutation operator family
// spec.md §4.4 names: components that pop a selection, produce offspring
// of the same cardinality (unless documented otherwise), and push the
// offspring back — stack depth unchanged (spec.md §4.3).
//
// What:
//
//	NormalMutation, UniformMutation, BitFlipMutation, PartialRandomSpread,
//	ScrambleMutation, SwapMutation, InversionMutation, InsertionMutation,
//	TranslocationMutation, IWOAdaptiveDeviationDelta, DEMutation.
//
// Why:
//
//   - Per-dimension mutations are generic over any slice-backed encoding
//     via a ~[]T type-set constraint, so the same ScrambleMutation body
//     serves both real vectors and permutations without duplication —
//     the one place this core leans on Go's structural generics rather
//     than mirroring spec.md's single Encoding associated type literally.
//
// NormalMutation and UniformMutation publish their deviation/rate
// parameters as MutationStrength[M]/MutationRate[M] registry state (M the
// owning component's own Go type) during Init and read the live registry
// value back during Execute, so an external adaptation component can
// override the value actually used without reaching into the mutation's
// constructor fields. IWOAdaptiveDeviationDelta only publishes: each
// Execute writes its annealed sigma into its MutationStrength[M], which
// it never reads back, and it publishes no MutationRate[M].
package generation
