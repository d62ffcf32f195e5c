package cro

import (
	"github.com/mahf-opt/mahf/individual"
	"github.com/mahf-opt/mahf/objective"
)

// RealEncoding is satisfied by any encoding backed by a []float64 — the
// only kind of solution a reaction's perturbation step can meaningfully
// act on.
type RealEncoding[E any] interface {
	~[]float64
	individual.Encoding[E]
}

// Molecule tracks one particle's reaction history: its current kinetic
// energy, how many ineffective collisions it has absorbed, the hit
// threshold a reaction may consult before forcing a decomposition, and
// the best individual it has ever held.
type Molecule[E individual.Encoding[E]] struct {
	KineticEnergy float64
	NumHit        int
	MinHit        int
	best          individual.Individual[E]
}

// NewMolecule returns a Molecule seeded with ke and minHit, its best
// initialized to best.
func NewMolecule[E individual.Encoding[E]](ke float64, minHit int, best individual.Individual[E]) *Molecule[E] {
	return &Molecule[E]{KineticEnergy: ke, MinHit: minHit, best: best}
}

// Best returns the molecule's best individual seen so far.
func (m *Molecule[E]) Best() individual.Individual[E] { return m.best }

// updateBest replaces Best with candidate if candidate has the lower
// (better) objective.
func (m *Molecule[E]) updateBest(candidate individual.Individual[E]) {
	if outranks[E](candidate, m.best) {
		m.best = candidate.Clone()
	}
}

// outranks reports whether a has the strictly lower (better) objective
// than b. CRO always minimizes: an unevaluated a never outranks, an
// unevaluated b always loses to an evaluated a.
func outranks[E individual.Encoding[E]](a, b individual.Individual[E]) bool {
	oa, aok := a.Objective()
	ob, bok := b.Objective()
	if !aok {
		return false
	}
	if !bok {
		return true
	}
	ord, ok := oa.Compare(ob)
	return ok && ord == objective.Less
}

// Molecules holds one Molecule per particle, index-aligned with the
// current population.
type Molecules[E individual.Encoding[E]] struct {
	mols []*Molecule[E]
}

// NewMolecules wraps mols as registry-resident molecule state.
func NewMolecules[E individual.Encoding[E]](mols []*Molecule[E]) *Molecules[E] {
	return &Molecules[E]{mols: mols}
}

// Len returns the number of tracked molecules.
func (m *Molecules[E]) Len() int { return len(m.mols) }

// At returns the molecule for particle i.
func (m *Molecules[E]) At(i int) *Molecule[E] { return m.mols[i] }

// RemoveAt deletes the molecule at i, shifting later entries down.
func (m *Molecules[E]) RemoveAt(i int) {
	m.mols = append(m.mols[:i], m.mols[i+1:]...)
}

// Append adds a molecule for a newly inserted particle.
func (m *Molecules[E]) Append(mol *Molecule[E]) { m.mols = append(m.mols, mol) }

// EnergyBuffer is the scalar pool reactions draw surplus energy from and
// deposit surplus energy into.
type EnergyBuffer struct {
	Value float64
}
