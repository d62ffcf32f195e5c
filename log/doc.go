// Package log implements the Log value spec.md §6 describes: two
// streams of entries — per-evaluation and per-iteration — filled by
// applying registered lenses at two fixed hook points, gated by
// user-registered trigger conditions. Logging is the only observability
// surface the core exposes; there is no other metrics/tracing layer.
//
// What:
//
//   - Log[E]: owns PerEvaluation and PerIteration record slices, plus
//     the triggers and lenses that fill them.
//   - RecordEvaluation / RecordIteration: the two hook points, for after
//     each objective evaluation and after each completed loop iteration
//     respectively. The caller invokes them; neither the evaluator nor
//     component.Loop calls them.
//   - Clone: a cloneable copy sharing trigger/lens function values but
//     owning independent record slices.
//   - MarshalYAML / UnmarshalYAML: gopkg.in/yaml.v3 hooks so a finished
//     Log serializes as a run record; any further encoding (CSV, binary)
//     is explicitly out of scope (spec.md §6 "Persistence: none").
//
// Why:
//
//   - A trigger-gated design means no entry is computed (and no lens
//     borrow taken) unless at least one registered trigger fires, so an
//     unconfigured Log costs nothing beyond the two no-op hook calls.
package log
