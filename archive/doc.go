// Package archive implements the two archival registry state types
// spec.md §3 names alongside the algorithm-specific state row:
// BestIndividualsArchive and IntermediateArchive. Both are plain
// historical buffers other components (measures, in particular) read
// from; neither mutates the population stack.
//
// What:
//
//   - BestIndividualsArchive[E]: one archived best individual per
//     iteration it was asked to record, oldest first.
//   - IntermediateArchive[E]: the most recent population snapshot taken,
//     replaced wholesale on each update rather than accumulated.
//   - TrackBestIndividual[E] / TrackIntermediatePopulation[E]: the
//     owning components, wired into a run the same way any other
//     registry-resident state is seeded — by a dedicated component a
//     caller places in the pipeline where the snapshot should be taken.
package archive
