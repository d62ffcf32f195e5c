// Package cro implements the chemical-reaction-optimization core spec.md
// §4.4 marks a hard path: the molecule population's energy bookkeeping
// (kinetic energy, hit counters, personal bests) and the four reaction
// kinds that consume and update it.
//
// What:
//
//   - Molecule / Molecules: one molecule per individual, index-aligned
//     with the population, registry-resident like pso.Velocities.
//   - EnergyBuffer: the scalar pool reactions draw from and deposit into.
//   - InitializeMolecules: seeds Molecules/EnergyBuffer from the initial
//     evaluated population.
//   - OnWallCollision (1->1), Decomposition (1->2),
//     IntermolecularCollision (2->2), Synthesis (2->1): the four
//     reaction kinds, each popping the current population, acting on a
//     randomly drawn reactant (or pair), and pushing the result back —
//     net stack depth unchanged.
//
// Why:
//
//   - Each reaction is self-contained (it draws its own reactant(s),
//     perturbs them into product(s), and evaluates both directly against
//     the Problem) rather than split across separate
//     selection/generation/replacement components. spec.md's
//     "[population, reactant(s), product(s)]" stack shape would need the
//     reactant(s) a selection operator pops to carry back an index into
//     the base population so the right Molecule gets updated; Population
//     carries no such identity tag across a push. Folding selection,
//     perturbation and replacement into one component sidesteps that gap
//     while preserving every reaction's energy invariant, at the cost of
//     reactions not composing with the generic selection/generation
//     families the way GA operators do.
//   - Every reaction minimizes: CRO's energy framing (lower potential
//     energy is the better state) only makes sense for Single objectives
//     under minimization, so unlike replacement/pso there is no Minimize
//     field.
package cro
