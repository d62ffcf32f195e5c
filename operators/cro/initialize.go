package cro

import (
	"github.com/mahf-opt/mahf/component"
	"github.com/mahf-opt/mahf/individual"
	"github.com/mahf-opt/mahf/problem"
	"github.com/mahf-opt/mahf/state"
)

// InitializeMolecules seeds one Molecule per particle in the current
// (evaluated) population, each with kinetic energy InitialKineticEnergy
// and hit threshold MinHit, and resets EnergyBuffer to InitialBuffer. Run
// once, before the first reaction; it overwrites any Molecules/
// EnergyBuffer already in the registry.
type InitializeMolecules[E individual.Encoding[E]] struct {
	component.Base[E]
	InitialKineticEnergy float64
	MinHit               int
	InitialBuffer        float64
}

// NewInitializeMolecules returns an InitializeMolecules. ke0 must be
// non-negative.
func NewInitializeMolecules[E individual.Encoding[E]](ke0 float64, minHit int, buffer0 float64) (*InitializeMolecules[E], error) {
	if ke0 < 0 {
		return nil, parameterf("initial kinetic energy must be non-negative, got %v", ke0)
	}
	return &InitializeMolecules[E]{InitialKineticEnergy: ke0, MinHit: minHit, InitialBuffer: buffer0}, nil
}

func (*InitializeMolecules[E]) Require(_ problem.Interface[E], r *component.Requirements) {
	requireSwarmInputs[E](r, "cro.InitializeMolecules")
}

func (c *InitializeMolecules[E]) Execute(_ problem.Interface[E], s *state.State) error {
	pop, err := currentPopulation[E](s, "cro.InitializeMolecules")
	if err != nil {
		return err
	}
	mols := make([]*Molecule[E], len(pop))
	for i := range pop {
		mols[i] = NewMolecule[E](c.InitialKineticEnergy, c.MinHit, pop[i].Clone())
	}
	state.Insert(s, NewMolecules[E](mols))
	state.Insert(s, &EnergyBuffer{Value: c.InitialBuffer})
	return nil
}
